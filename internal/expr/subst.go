package expr

// Subst returns e with every free occurrence of variable name replaced by
// replacement, renaming bound variables of e as needed to avoid capturing
// replacement's free variables.
func Subst(e Expression, name string, replacement Expression) Expression {
	switch v := e.(type) {
	case Contradiction, PatternVar:
		return e
	case Variable:
		if v.Name == name {
			return replacement
		}
		return v
	case Predicate:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = Subst(a, name, replacement)
		}
		return Predicate{Name: v.Name, Args: args}
	case Not:
		return Not{Operand: Subst(v.Operand, name, replacement)}
	case Implication:
		return Implication{Left: Subst(v.Left, name, replacement), Right: Subst(v.Right, name, replacement)}
	case Associative:
		ops := make([]Expression, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = Subst(o, name, replacement)
		}
		return Associative{Op: v.Op, Operands: ops}
	case Quantifier:
		if v.Bound == name {
			// name is shadowed inside the body; nothing to substitute.
			return v
		}
		replFree := FreeVars(replacement)
		if _, captured := replFree[v.Bound]; !captured {
			return Quantifier{Kind: v.Kind, Bound: v.Bound, Body: Subst(v.Body, name, replacement)}
		}
		avoid := AllVars(v.Body)
		for n := range replFree {
			avoid[n] = struct{}{}
		}
		avoid[name] = struct{}{}
		fresh := FreshVar(v.Bound, avoid)
		renamedBody := Subst(v.Body, v.Bound, Variable{Name: fresh})
		return Quantifier{Kind: v.Kind, Bound: fresh, Body: Subst(renamedBody, name, replacement)}
	default:
		return e
	}
}

// SubstMany applies a batch of substitutions left-to-right (not
// simultaneously), matching how rule checks apply an ordered substitution
// list from unification.
func SubstMany(e Expression, names []string, replacements []Expression) Expression {
	out := e
	for i, n := range names {
		out = Subst(out, n, replacements[i])
	}
	return out
}

// AlphaRename renames e's top-level bound variable (if e is a Quantifier) to
// newName throughout its body. Prenex conversion and SwapQuantifiers do not
// call it; they rename through Subst directly.
func AlphaRename(e Expression, newName string) Expression {
	q, ok := e.(Quantifier)
	if !ok {
		return e
	}
	renamedBody := Subst(q.Body, q.Bound, Variable{Name: newName})
	return Quantifier{Kind: q.Kind, Bound: newName, Body: renamedBody}
}
