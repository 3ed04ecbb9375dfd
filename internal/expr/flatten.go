package expr

import "sort"

// CombineAssociativeOps recursively flattens nested Associative nodes of the
// same Op into a single n-ary node: And(And(a,b),c) -> And(a,b,c). It is
// idempotent and is applied after every rewrite step that might have
// produced nested same-op Associative nodes.
func CombineAssociativeOps(e Expression) Expression {
	switch v := e.(type) {
	case Associative:
		var flat []Expression
		for _, o := range v.Operands {
			co := CombineAssociativeOps(o)
			if inner, ok := co.(Associative); ok && inner.Op == v.Op {
				flat = append(flat, inner.Operands...)
			} else {
				flat = append(flat, co)
			}
		}
		return Associative{Op: v.Op, Operands: flat}
	case Predicate:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = CombineAssociativeOps(a)
		}
		return Predicate{Name: v.Name, Args: args}
	case Not:
		return Not{Operand: CombineAssociativeOps(v.Operand)}
	case Implication:
		return Implication{Left: CombineAssociativeOps(v.Left), Right: CombineAssociativeOps(v.Right)}
	case Quantifier:
		return Quantifier{Kind: v.Kind, Bound: v.Bound, Body: CombineAssociativeOps(v.Body)}
	default:
		return e
	}
}

// SortCommutativeOps recursively sorts the operands of every commutative
// Associative node by Compare, so that structurally-equal-up-to-reordering
// expressions compare Equal after this pass.
func SortCommutativeOps(e Expression) Expression {
	switch v := e.(type) {
	case Associative:
		ops := make([]Expression, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = SortCommutativeOps(o)
		}
		if v.Op.Commutative() {
			sort.Slice(ops, func(i, j int) bool { return Compare(ops[i], ops[j]) < 0 })
		}
		return Associative{Op: v.Op, Operands: ops}
	case Predicate:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = SortCommutativeOps(a)
		}
		return Predicate{Name: v.Name, Args: args}
	case Not:
		return Not{Operand: SortCommutativeOps(v.Operand)}
	case Implication:
		return Implication{Left: SortCommutativeOps(v.Left), Right: SortCommutativeOps(v.Right)}
	case Quantifier:
		return Quantifier{Kind: v.Kind, Bound: v.Bound, Body: SortCommutativeOps(v.Body)}
	default:
		return e
	}
}

// CanonicalEqual reports whether a and b are equal once both sides are
// flattened and their commutative operands sorted: the equality notion used
// whenever a rule's Commutative flag is set.
func CanonicalEqual(a, b Expression) bool {
	ca := SortCommutativeOps(CombineAssociativeOps(a))
	cb := SortCommutativeOps(CombineAssociativeOps(b))
	return Equal(ca, cb)
}
