package expr

import (
	"sort"
	"strconv"
)

// NegateQuantifiers pushes negation through quantifiers to a fixpoint:
// ~forall x, P -> exists x, ~P and ~exists x, P -> forall x, ~P, applied
// recursively so no Not directly wraps a Quantifier anywhere in the result.
func NegateQuantifiers(e Expression) Expression {
	switch v := e.(type) {
	case Not:
		inner := NegateQuantifiers(v.Operand)
		if q, ok := inner.(Quantifier); ok {
			return Quantifier{Kind: q.Kind.Dual(), Bound: q.Bound, Body: NegateQuantifiers(Not{Operand: q.Body})}
		}
		return Not{Operand: inner}
	case Predicate:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = NegateQuantifiers(a)
		}
		return Predicate{Name: v.Name, Args: args}
	case Implication:
		return Implication{Left: NegateQuantifiers(v.Left), Right: NegateQuantifiers(v.Right)}
	case Associative:
		ops := make([]Expression, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = NegateQuantifiers(o)
		}
		return Associative{Op: v.Op, Operands: ops}
	case Quantifier:
		return Quantifier{Kind: v.Kind, Bound: v.Bound, Body: NegateQuantifiers(v.Body)}
	default:
		return e
	}
}

// NormalizeNullQuantifiers strips any quantifier whose bound variable does
// not occur free in its body: forall x, P -> P when x not free in P.
func NormalizeNullQuantifiers(e Expression) Expression {
	switch v := e.(type) {
	case Quantifier:
		body := NormalizeNullQuantifiers(v.Body)
		if !IsFree(v.Bound, body) {
			return body
		}
		return Quantifier{Kind: v.Kind, Bound: v.Bound, Body: body}
	case Predicate:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = NormalizeNullQuantifiers(a)
		}
		return Predicate{Name: v.Name, Args: args}
	case Not:
		return Not{Operand: NormalizeNullQuantifiers(v.Operand)}
	case Implication:
		return Implication{Left: NormalizeNullQuantifiers(v.Left), Right: NormalizeNullQuantifiers(v.Right)}
	case Associative:
		ops := make([]Expression, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = NormalizeNullQuantifiers(o)
		}
		return Associative{Op: v.Op, Operands: ops}
	default:
		return e
	}
}

// ReplacingBoundVars alpha-renames every quantifier's bound variable (and its
// bound occurrences) to a canonical name numbered by the quantifier's order
// of appearance ("v0", "v1", ...), so structurally-distinct but alpha-equivalent
// expressions compare Equal after this pass.
func ReplacingBoundVars(e Expression) Expression {
	counter := 0
	return replaceBoundVars(e, &counter)
}

func replaceBoundVars(e Expression, counter *int) Expression {
	switch v := e.(type) {
	case Quantifier:
		name := canonicalName(*counter)
		*counter++
		renamed := Subst(v.Body, v.Bound, Variable{Name: name})
		return Quantifier{Kind: v.Kind, Bound: name, Body: replaceBoundVars(renamed, counter)}
	case Predicate:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = replaceBoundVars(a, counter)
		}
		return Predicate{Name: v.Name, Args: args}
	case Not:
		return Not{Operand: replaceBoundVars(v.Operand, counter)}
	case Implication:
		return Implication{Left: replaceBoundVars(v.Left, counter), Right: replaceBoundVars(v.Right, counter)}
	case Associative:
		ops := make([]Expression, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = replaceBoundVars(o, counter)
		}
		return Associative{Op: v.Op, Operands: ops}
	default:
		return e
	}
}

func canonicalName(i int) string {
	return "v" + strconv.Itoa(i)
}

// SwapQuantifiers canonicalizes the order of a maximal run of adjacent
// same-kind quantifiers by sorting their bound names: forall x, forall y, P
// and forall y, forall x, P normalize identically.
func SwapQuantifiers(e Expression) Expression {
	switch v := e.(type) {
	case Quantifier:
		var names []string
		cur := Expression(v)
		for {
			q, ok := cur.(Quantifier)
			if !ok || q.Kind != v.Kind {
				break
			}
			names = append(names, q.Bound)
			cur = q.Body
		}
		body := SwapQuantifiers(cur)
		sorted := append([]string(nil), names...)
		sort.Strings(sorted)
		result := body
		for i := len(sorted) - 1; i >= 0; i-- {
			result = Quantifier{Kind: v.Kind, Bound: sorted[i], Body: result}
		}
		return result
	case Predicate:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = SwapQuantifiers(a)
		}
		return Predicate{Name: v.Name, Args: args}
	case Not:
		return Not{Operand: SwapQuantifiers(v.Operand)}
	case Implication:
		return Implication{Left: SwapQuantifiers(v.Left), Right: SwapQuantifiers(v.Right)}
	case Associative:
		ops := make([]Expression, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = SwapQuantifiers(o)
		}
		return Associative{Op: v.Op, Operands: ops}
	default:
		return e
	}
}

// AristoteleanSquare rewrites ~exists x, ~P to forall x, P and
// ~forall x, ~P to exists x, P, recursively to a fixpoint — the classical
// square-of-opposition identities relating the two quantifiers through
// double negation.
func AristoteleanSquare(e Expression) Expression {
	switch v := e.(type) {
	case Not:
		inner := AristoteleanSquare(v.Operand)
		if q, ok := inner.(Quantifier); ok {
			if innerNot, ok := q.Body.(Not); ok {
				return Quantifier{Kind: q.Kind.Dual(), Bound: q.Bound, Body: AristoteleanSquare(innerNot.Operand)}
			}
		}
		return Not{Operand: inner}
	case Predicate:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = AristoteleanSquare(a)
		}
		return Predicate{Name: v.Name, Args: args}
	case Implication:
		return Implication{Left: AristoteleanSquare(v.Left), Right: AristoteleanSquare(v.Right)}
	case Associative:
		ops := make([]Expression, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = AristoteleanSquare(o)
		}
		return Associative{Op: v.Op, Operands: ops}
	case Quantifier:
		return Quantifier{Kind: v.Kind, Bound: v.Bound, Body: AristoteleanSquare(v.Body)}
	default:
		return e
	}
}

// QuantifierDistribution pushes a quantifier into a matching connective as
// far as possible: forall x, (P∧Q) -> (forall x, P)∧(forall x, Q), and dually
// exists x, (P∨Q) -> (exists x, P)∨(exists x, Q). This direction always
// preserves equivalence (when the bound variable is not free in a conjunct,
// the quantifier there is vacuous, which NormalizeNullQuantifiers can still
// simplify), so it's safe to apply unconditionally and recursively.
func QuantifierDistribution(e Expression) Expression {
	switch v := e.(type) {
	case Quantifier:
		body := QuantifierDistribution(v.Body)
		matchOp := And
		if v.Kind == Existential {
			matchOp = Or
		}
		if assoc, ok := body.(Associative); ok && assoc.Op == matchOp {
			distributed := make([]Expression, len(assoc.Operands))
			for i, o := range assoc.Operands {
				distributed[i] = QuantifierDistribution(Quantifier{Kind: v.Kind, Bound: v.Bound, Body: o})
			}
			return Associative{Op: matchOp, Operands: distributed}
		}
		return Quantifier{Kind: v.Kind, Bound: v.Bound, Body: body}
	case Predicate:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = QuantifierDistribution(a)
		}
		return Predicate{Name: v.Name, Args: args}
	case Not:
		return Not{Operand: QuantifierDistribution(v.Operand)}
	case Implication:
		return Implication{Left: QuantifierDistribution(v.Left), Right: QuantifierDistribution(v.Right)}
	case Associative:
		ops := make([]Expression, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = QuantifierDistribution(o)
		}
		return Associative{Op: v.Op, Operands: ops}
	default:
		return e
	}
}
