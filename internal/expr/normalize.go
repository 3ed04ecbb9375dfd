package expr

// NormalizeDeMorgans pushes negation inward through And/Or to a fixpoint:
// ~(a∧b∧c) -> ~a∨~b∨~c, ~(a∨b∨c) -> ~a∧~b∧~c, applied recursively and
// bottom-up so that no Not directly wraps an Associative And/Or anywhere in
// the result.
func NormalizeDeMorgans(e Expression) Expression {
	return CombineAssociativeOps(demorgan(e))
}

func demorgan(e Expression) Expression {
	switch v := e.(type) {
	case Not:
		inner := demorgan(v.Operand)
		if assoc, ok := inner.(Associative); ok && (assoc.Op == And || assoc.Op == Or) {
			negated := make([]Expression, len(assoc.Operands))
			for i, o := range assoc.Operands {
				negated[i] = demorgan(Not{Operand: o})
			}
			dualOp := Or
			if assoc.Op == Or {
				dualOp = And
			}
			return Associative{Op: dualOp, Operands: negated}
		}
		if nn, ok := inner.(Not); ok {
			// leave double negation alone; NormalizeDoubleNegation handles it.
			return Not{Operand: nn}
		}
		return Not{Operand: inner}
	case Predicate:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = demorgan(a)
		}
		return Predicate{Name: v.Name, Args: args}
	case Implication:
		return Implication{Left: demorgan(v.Left), Right: demorgan(v.Right)}
	case Associative:
		ops := make([]Expression, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = demorgan(o)
		}
		return Associative{Op: v.Op, Operands: ops}
	case Quantifier:
		return Quantifier{Kind: v.Kind, Bound: v.Bound, Body: demorgan(v.Body)}
	default:
		return e
	}
}

// NormalizeDoubleNegation collapses ~~a to a, recursively.
func NormalizeDoubleNegation(e Expression) Expression {
	switch v := e.(type) {
	case Not:
		inner := NormalizeDoubleNegation(v.Operand)
		if nn, ok := inner.(Not); ok {
			return nn.Operand
		}
		return Not{Operand: inner}
	case Predicate:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = NormalizeDoubleNegation(a)
		}
		return Predicate{Name: v.Name, Args: args}
	case Implication:
		return Implication{Left: NormalizeDoubleNegation(v.Left), Right: NormalizeDoubleNegation(v.Right)}
	case Associative:
		ops := make([]Expression, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = NormalizeDoubleNegation(o)
		}
		return Associative{Op: v.Op, Operands: ops}
	case Quantifier:
		return Quantifier{Kind: v.Kind, Bound: v.Bound, Body: NormalizeDoubleNegation(v.Body)}
	default:
		return e
	}
}

// NormalizeIdempotence removes duplicate operands (by Equal, after recursing
// into children first) from And/Or nodes, collapsing a singleton result to
// the bare remaining operand: a∧a -> a, a∨a∨b -> a∨b.
func NormalizeIdempotence(e Expression) Expression {
	switch v := e.(type) {
	case Associative:
		ops := make([]Expression, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = NormalizeIdempotence(o)
		}
		if v.Op != And && v.Op != Or {
			return Associative{Op: v.Op, Operands: ops}
		}
		var deduped []Expression
		for _, o := range ops {
			dup := false
			for _, seen := range deduped {
				if Equal(o, seen) {
					dup = true
					break
				}
			}
			if !dup {
				deduped = append(deduped, o)
			}
		}
		if len(deduped) == 1 {
			return deduped[0]
		}
		return Associative{Op: v.Op, Operands: deduped}
	case Predicate:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = NormalizeIdempotence(a)
		}
		return Predicate{Name: v.Name, Args: args}
	case Not:
		return Not{Operand: NormalizeIdempotence(v.Operand)}
	case Implication:
		return Implication{Left: NormalizeIdempotence(v.Left), Right: NormalizeIdempotence(v.Right)}
	case Quantifier:
		return Quantifier{Kind: v.Kind, Bound: v.Bound, Body: NormalizeIdempotence(v.Body)}
	default:
		return e
	}
}
