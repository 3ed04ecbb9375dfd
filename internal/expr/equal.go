package expr

// Equal reports structural equality: Associative operand order matters here
// (callers that want order-insensitive comparison should SortCommutativeOps
// both sides first).
func Equal(a, b Expression) bool {
	switch av := a.(type) {
	case Contradiction:
		_, ok := b.(Contradiction)
		return ok
	case Variable:
		bv, ok := b.(Variable)
		return ok && av.Name == bv.Name
	case PatternVar:
		bv, ok := b.(PatternVar)
		return ok && av.Name == bv.Name
	case Predicate:
		bv, ok := b.(Predicate)
		if !ok || av.Name != bv.Name || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case Not:
		bv, ok := b.(Not)
		return ok && Equal(av.Operand, bv.Operand)
	case Implication:
		bv, ok := b.(Implication)
		return ok && Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)
	case Associative:
		bv, ok := b.(Associative)
		if !ok || av.Op != bv.Op || len(av.Operands) != len(bv.Operands) {
			return false
		}
		for i := range av.Operands {
			if !Equal(av.Operands[i], bv.Operands[i]) {
				return false
			}
		}
		return true
	case Quantifier:
		bv, ok := b.(Quantifier)
		return ok && av.Kind == bv.Kind && av.Bound == bv.Bound && Equal(av.Body, bv.Body)
	default:
		return false
	}
}

// typeRank orders distinct Expression kinds for Compare.
func typeRank(e Expression) int {
	switch e.(type) {
	case Contradiction:
		return 0
	case Variable:
		return 1
	case PatternVar:
		return 2
	case Predicate:
		return 3
	case Not:
		return 4
	case Implication:
		return 5
	case Associative:
		return 6
	case Quantifier:
		return 7
	default:
		return 8
	}
}

func cmpString(a, b string) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Compare is a total order over Expression, used by SortCommutativeOps and
// anywhere a canonical ordering of operands is needed. It does not imply any
// logical relationship, only a deterministic arbitrary one.
func Compare(a, b Expression) int {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		return cmpInt(ra, rb)
	}
	switch av := a.(type) {
	case Contradiction:
		return 0
	case Variable:
		return cmpString(av.Name, b.(Variable).Name)
	case PatternVar:
		return cmpString(av.Name, b.(PatternVar).Name)
	case Predicate:
		bv := b.(Predicate)
		if c := cmpString(av.Name, bv.Name); c != 0 {
			return c
		}
		if c := cmpInt(len(av.Args), len(bv.Args)); c != 0 {
			return c
		}
		for i := range av.Args {
			if c := Compare(av.Args[i], bv.Args[i]); c != 0 {
				return c
			}
		}
		return 0
	case Not:
		return Compare(av.Operand, b.(Not).Operand)
	case Implication:
		bv := b.(Implication)
		if c := Compare(av.Left, bv.Left); c != 0 {
			return c
		}
		return Compare(av.Right, bv.Right)
	case Associative:
		bv := b.(Associative)
		if c := cmpInt(int(av.Op), int(bv.Op)); c != 0 {
			return c
		}
		if c := cmpInt(len(av.Operands), len(bv.Operands)); c != 0 {
			return c
		}
		for i := range av.Operands {
			if c := Compare(av.Operands[i], bv.Operands[i]); c != 0 {
				return c
			}
		}
		return 0
	case Quantifier:
		bv := b.(Quantifier)
		if av.Kind != bv.Kind {
			return cmpInt(int(av.Kind), int(bv.Kind))
		}
		if c := cmpString(av.Bound, bv.Bound); c != 0 {
			return c
		}
		return Compare(av.Body, bv.Body)
	default:
		return 0
	}
}
