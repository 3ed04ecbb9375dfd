// Package unify implements first-order unification over expression trees
// (internal/expr), producing an ordered substitution list. It is used both
// by the rewrite engine (internal/rewrite) to match rule patterns — where
// every expr.PatternVar is eligible for binding — and directly by quantifier
// rules (internal/rules) to find a witnessing term for a single bound
// variable (UnifyWrt).
package unify

import (
	"fmt"

	"github.com/your_username/arischeck/internal/expr"
)

// Binding pairs a variable name with the term it is bound to.
type Binding struct {
	Var  string
	Term expr.Expression
}

// Subst is an ordered list of bindings, applied left to right. Order matters
// because later bindings are built against expressions that may already
// contain earlier-bound variables.
type Subst []Binding

// Lookup returns the term bound to name, if any.
func (s Subst) Lookup(name string) (expr.Expression, bool) {
	for _, b := range s {
		if b.Var == name {
			return b.Term, true
		}
	}
	return nil, false
}

// Apply substitutes every binding in s into e, in order.
func (s Subst) Apply(e expr.Expression) expr.Expression {
	out := e
	for _, b := range s {
		out = substVarOrPattern(out, b.Var, b.Term)
	}
	return out
}

// substVarOrPattern substitutes name for replacement whether name is bound
// as an ordinary expr.Variable or as an expr.PatternVar, since Unify may
// produce bindings for either depending on the caller.
func substVarOrPattern(e expr.Expression, name string, replacement expr.Expression) expr.Expression {
	switch v := e.(type) {
	case expr.PatternVar:
		if v.Name == name {
			return replacement
		}
		return v
	case expr.Variable:
		if v.Name == name {
			return replacement
		}
		return v
	case expr.Predicate:
		args := make([]expr.Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = substVarOrPattern(a, name, replacement)
		}
		return expr.Predicate{Name: v.Name, Args: args}
	case expr.Not:
		return expr.Not{Operand: substVarOrPattern(v.Operand, name, replacement)}
	case expr.Implication:
		return expr.Implication{Left: substVarOrPattern(v.Left, name, replacement), Right: substVarOrPattern(v.Right, name, replacement)}
	case expr.Associative:
		ops := make([]expr.Expression, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = substVarOrPattern(o, name, replacement)
		}
		return expr.Associative{Op: v.Op, Operands: ops}
	case expr.Quantifier:
		if v.Bound == name {
			return v
		}
		return expr.Quantifier{Kind: v.Kind, Bound: v.Bound, Body: substVarOrPattern(v.Body, name, replacement)}
	default:
		return e
	}
}

// Compose returns the substitution equivalent to applying s1 then s2: every
// term already bound by s1 has s2 applied to it, and s2's bindings are
// appended.
func Compose(s1, s2 Subst) Subst {
	out := make(Subst, 0, len(s1)+len(s2))
	for _, b := range s1 {
		out = append(out, Binding{Var: b.Var, Term: s2.Apply(b.Term)})
	}
	out = append(out, s2...)
	return out
}

// Error reports a unification failure between two subexpressions.
type Error struct {
	Left, Right expr.Expression
	Reason      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot unify %s with %s: %s", e.Left, e.Right, e.Reason)
}

// IsVarFunc reports whether a given expr.Variable name is eligible to be
// bound during unification; names for which it returns false are treated as
// opaque constants that must match literally.
type IsVarFunc func(name string) bool

// NoPlainVars treats no expr.Variable as a unification variable: only
// expr.PatternVar nodes are eligible. Used by the rewrite engine, whose
// patterns use PatternVar exclusively.
func NoPlainVars(string) bool { return false }

// Unify finds a Subst making a and b structurally equal once applied, where
// every expr.PatternVar and every expr.Variable satisfying isVar is eligible
// for binding. Associative operands are matched positionally; callers that
// need commutative matching should try permutations (internal/rewrite does
// this for every Associative whose Op is commutative).
func Unify(a, b expr.Expression, isVar IsVarFunc) (Subst, error) {
	return unify(a, b, isVar)
}

// UnifyWrt finds a single term t such that substituting t for variable in
// general produces (up to canonical equality) specific, returning false if
// no such t exists. This is the witnessing-term search used by
// UniversalElimination/ExistentialIntroduction: general is the quantifier
// body with its bound variable left in place, specific is the candidate
// instantiated line.
func UnifyWrt(general, specific expr.Expression, variable string) (expr.Expression, bool) {
	isVar := func(name string) bool { return name == variable }
	s, err := unify(general, specific, isVar)
	if err != nil {
		return nil, false
	}
	term, ok := s.Lookup(variable)
	if !ok {
		// variable does not occur in general: any witness works, but there is
		// nothing to report back to the caller as "the" witness.
		return expr.Variable{Name: variable}, true
	}
	return term, true
}

func isBindable(e expr.Expression, isVar IsVarFunc) (string, bool) {
	switch v := e.(type) {
	case expr.PatternVar:
		return v.Name, true
	case expr.Variable:
		if isVar(v.Name) {
			return v.Name, true
		}
	}
	return "", false
}

func unify(a, b expr.Expression, isVar IsVarFunc) (Subst, error) {
	if name, ok := isBindable(a, isVar); ok {
		return bind(name, b)
	}
	if name, ok := isBindable(b, isVar); ok {
		return bind(name, a)
	}

	switch av := a.(type) {
	case expr.Contradiction:
		if _, ok := b.(expr.Contradiction); ok {
			return Subst{}, nil
		}
		return nil, &Error{Left: a, Right: b, Reason: "shape mismatch"}
	case expr.Variable:
		bv, ok := b.(expr.Variable)
		if ok && bv.Name == av.Name {
			return Subst{}, nil
		}
		return nil, &Error{Left: a, Right: b, Reason: "distinct constants"}
	case expr.Predicate:
		bv, ok := b.(expr.Predicate)
		if !ok || bv.Name != av.Name || len(bv.Args) != len(av.Args) {
			return nil, &Error{Left: a, Right: b, Reason: "predicate shape mismatch"}
		}
		s := Subst{}
		for i := range av.Args {
			arg1 := s.Apply(av.Args[i])
			arg2 := s.Apply(bv.Args[i])
			s2, err := unify(arg1, arg2, isVar)
			if err != nil {
				return nil, err
			}
			s = Compose(s, s2)
		}
		return s, nil
	case expr.Not:
		bv, ok := b.(expr.Not)
		if !ok {
			return nil, &Error{Left: a, Right: b, Reason: "shape mismatch"}
		}
		return unify(av.Operand, bv.Operand, isVar)
	case expr.Implication:
		bv, ok := b.(expr.Implication)
		if !ok {
			return nil, &Error{Left: a, Right: b, Reason: "shape mismatch"}
		}
		s1, err := unify(av.Left, bv.Left, isVar)
		if err != nil {
			return nil, err
		}
		s2, err := unify(s1.Apply(av.Right), s1.Apply(bv.Right), isVar)
		if err != nil {
			return nil, err
		}
		return Compose(s1, s2), nil
	case expr.Associative:
		bv, ok := b.(expr.Associative)
		if !ok || bv.Op != av.Op || len(bv.Operands) != len(av.Operands) {
			return nil, &Error{Left: a, Right: b, Reason: "associative shape mismatch"}
		}
		s := Subst{}
		for i := range av.Operands {
			o1 := s.Apply(av.Operands[i])
			o2 := s.Apply(bv.Operands[i])
			s2, err := unify(o1, o2, isVar)
			if err != nil {
				return nil, err
			}
			s = Compose(s, s2)
		}
		return s, nil
	case expr.Quantifier:
		bv, ok := b.(expr.Quantifier)
		if !ok || bv.Kind != av.Kind {
			return nil, &Error{Left: a, Right: b, Reason: "shape mismatch"}
		}
		renamedBody := bv.Body
		if bv.Bound != av.Bound {
			renamedBody = expr.Subst(bv.Body, bv.Bound, expr.Variable{Name: av.Bound})
		}
		return unify(av.Body, renamedBody, isVar)
	default:
		return nil, &Error{Left: a, Right: b, Reason: fmt.Sprintf("unhandled expression kind %T", a)}
	}
}

func bind(name string, t expr.Expression) (Subst, error) {
	if v, ok := t.(expr.Variable); ok && v.Name == name {
		return Subst{}, nil
	}
	if v, ok := t.(expr.PatternVar); ok && v.Name == name {
		return Subst{}, nil
	}
	if occurs(name, t) {
		return nil, &Error{Left: expr.Variable{Name: name}, Right: t, Reason: "occurs check failed"}
	}
	return Subst{{Var: name, Term: t}}, nil
}

func occurs(name string, t expr.Expression) bool {
	switch v := t.(type) {
	case expr.PatternVar:
		return v.Name == name
	case expr.Variable:
		return v.Name == name
	case expr.Predicate:
		for _, a := range v.Args {
			if occurs(name, a) {
				return true
			}
		}
		return false
	case expr.Not:
		return occurs(name, v.Operand)
	case expr.Implication:
		return occurs(name, v.Left) || occurs(name, v.Right)
	case expr.Associative:
		for _, o := range v.Operands {
			if occurs(name, o) {
				return true
			}
		}
		return false
	case expr.Quantifier:
		return occurs(name, v.Body)
	default:
		return false
	}
}
