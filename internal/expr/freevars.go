package expr

// FreeVars returns the set of variable names with a free occurrence in e.
// A Variable used as a propositional atom and one used as a bound object
// variable are indistinguishable at this layer; FreeVars treats every
// Variable node's Name as a candidate free variable, which is exactly what
// Quantifier binding removes.
func FreeVars(e Expression) map[string]struct{} {
	out := map[string]struct{}{}
	collectFreeVars(e, out)
	return out
}

func collectFreeVars(e Expression, out map[string]struct{}) {
	switch v := e.(type) {
	case Contradiction:
	case Variable:
		out[v.Name] = struct{}{}
	case PatternVar:
	case Predicate:
		for _, a := range v.Args {
			collectFreeVars(a, out)
		}
	case Not:
		collectFreeVars(v.Operand, out)
	case Implication:
		collectFreeVars(v.Left, out)
		collectFreeVars(v.Right, out)
	case Associative:
		for _, o := range v.Operands {
			collectFreeVars(o, out)
		}
	case Quantifier:
		inner := map[string]struct{}{}
		collectFreeVars(v.Body, inner)
		delete(inner, v.Bound)
		for name := range inner {
			out[name] = struct{}{}
		}
	}
}

// IsFree reports whether name occurs free in e.
func IsFree(name string, e Expression) bool {
	_, ok := FreeVars(e)[name]
	return ok
}

// AllVars returns every variable name mentioned in e, bound or free.
func AllVars(e Expression) map[string]struct{} {
	out := map[string]struct{}{}
	collectAllVars(e, out)
	return out
}

func collectAllVars(e Expression, out map[string]struct{}) {
	switch v := e.(type) {
	case Variable:
		out[v.Name] = struct{}{}
	case Predicate:
		for _, a := range v.Args {
			collectAllVars(a, out)
		}
	case Not:
		collectAllVars(v.Operand, out)
	case Implication:
		collectAllVars(v.Left, out)
		collectAllVars(v.Right, out)
	case Associative:
		for _, o := range v.Operands {
			collectAllVars(o, out)
		}
	case Quantifier:
		out[v.Bound] = struct{}{}
		collectAllVars(v.Body, out)
	}
}

// FreshVar returns a name not present in avoid, derived from base.
func FreshVar(base string, avoid map[string]struct{}) string {
	if _, taken := avoid[base]; !taken {
		return base
	}
	for i := 0; ; i++ {
		cand := base + "'"
		for j := 0; j < i; j++ {
			cand += "'"
		}
		if _, taken := avoid[cand]; !taken {
			return cand
		}
	}
}
