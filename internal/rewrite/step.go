package rewrite

import "github.com/your_username/arischeck/internal/expr"

// Step returns every expression reachable from e by applying one rule of
// rules, in either direction, at any position in the tree — including
// replacing a k-operand subset of a larger flattened Associative node, so
// that a 2-ary law like Identity (A∧⊤ ≡ A) applies within an n-ary And.
func Step(rules RuleSet, e expr.Expression) []expr.Expression {
	return step(rules, e, true)
}

// step is Step with the RHS -> LHS direction applied only when bothWays.
func step(rules RuleSet, e expr.Expression, bothWays bool) []expr.Expression {
	var out []expr.Expression
	for _, r := range rules {
		out = append(out, applyRuleAt(r.LHS, r.RHS, e)...)
		if bothWays {
			out = append(out, applyRuleAt(r.RHS, r.LHS, e)...)
		}
	}
	out = append(out, stepChildren(rules, e, bothWays)...)
	return out
}

// applyRuleAt tries lhs -> rhs at the root of target, plus (if target is
// Associative) at every same-op k-operand subset.
func applyRuleAt(lhs, rhs, target expr.Expression) []expr.Expression {
	var out []expr.Expression
	if s, ok := match(lhs, target); ok {
		out = append(out, expr.CombineAssociativeOps(s.Apply(rhs)))
	}
	if pa, ok := lhs.(expr.Associative); ok {
		if ta, ok := target.(expr.Associative); ok && ta.Op == pa.Op && len(ta.Operands) > len(pa.Operands) {
			if s, combo, ok := matchSubset(pa, ta); ok {
				replaced := s.Apply(rhs)
				out = append(out, expr.CombineAssociativeOps(replaceSubset(ta, combo, replaced)))
			}
		}
	}
	return out
}

// replaceSubset removes the operands at indices (a sorted ascending combo)
// from a and appends replacement in their place.
func replaceSubset(a expr.Associative, combo []int, replacement expr.Expression) expr.Expression {
	removed := map[int]bool{}
	for _, i := range combo {
		removed[i] = true
	}
	var rest []expr.Expression
	for i, o := range a.Operands {
		if !removed[i] {
			rest = append(rest, o)
		}
	}
	rest = append(rest, replacement)
	if len(rest) == 1 {
		return rest[0]
	}
	return expr.Associative{Op: a.Op, Operands: rest}
}

// stepChildren returns, for each immediate child of e, the parent
// expressions formed by substituting in each one-step rewrite of that
// child.
func stepChildren(rules RuleSet, e expr.Expression, bothWays bool) []expr.Expression {
	var out []expr.Expression
	switch v := e.(type) {
	case expr.Not:
		for _, c := range step(rules, v.Operand, bothWays) {
			out = append(out, expr.Not{Operand: c})
		}
	case expr.Implication:
		for _, c := range step(rules, v.Left, bothWays) {
			out = append(out, expr.Implication{Left: c, Right: v.Right})
		}
		for _, c := range step(rules, v.Right, bothWays) {
			out = append(out, expr.Implication{Left: v.Left, Right: c})
		}
	case expr.Predicate:
		for i, arg := range v.Args {
			for _, c := range step(rules, arg, bothWays) {
				args := append([]expr.Expression(nil), v.Args...)
				args[i] = c
				out = append(out, expr.Predicate{Name: v.Name, Args: args})
			}
		}
	case expr.Associative:
		for i, o := range v.Operands {
			for _, c := range step(rules, o, bothWays) {
				ops := append([]expr.Expression(nil), v.Operands...)
				ops[i] = c
				out = append(out, expr.CombineAssociativeOps(expr.Associative{Op: v.Op, Operands: ops}))
			}
		}
	case expr.Quantifier:
		for _, c := range step(rules, v.Body, bothWays) {
			out = append(out, expr.Quantifier{Kind: v.Kind, Bound: v.Bound, Body: c})
		}
	}
	return out
}
