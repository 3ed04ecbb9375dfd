package rules

import "github.com/your_username/arischeck/internal/expr"

// operandsOf returns e's flattened operands if it is an Associative of op,
// and nil, false otherwise.
func operandsOf(e expr.Expression, op expr.Op) ([]expr.Expression, bool) {
	a, ok := e.(expr.Associative)
	if !ok || a.Op != op {
		return nil, false
	}
	return expr.CombineAssociativeOps(a).(expr.Associative).Operands, true
}

// occursAmong reports whether needle canonically equals one of haystack.
func occursAmong(needle expr.Expression, haystack []expr.Expression) bool {
	for _, h := range haystack {
		if expr.CanonicalEqual(needle, h) {
			return true
		}
	}
	return false
}

// sameSet reports whether a and b contain the same expressions up to
// CanonicalEqual as multisets: order is ignored, but each element of a must
// pair with a distinct element of b, so duplicate counts must match.
func sameSet(a, b []expr.Expression) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for i, y := range b {
			if used[i] {
				continue
			}
			if expr.CanonicalEqual(x, y) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func eq(a, b expr.Expression) bool { return expr.CanonicalEqual(a, b) }
