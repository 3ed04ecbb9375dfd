package rewrite

import (
	"github.com/your_username/arischeck/internal/expr"
	"github.com/your_username/arischeck/internal/unify"
)

// maxPermuteArity bounds the operand count for which matchCommutative tries
// every permutation; patterns in the catalog never exceed this, and bounding
// it keeps matching worst-case cheap.
const maxPermuteArity = 6

// match attempts to unify pattern against target, trying every operand
// permutation when both are Associative nodes of the same commutative Op
// and equal arity.
func match(pattern, target expr.Expression) (unify.Subst, bool) {
	pa, pIsAssoc := pattern.(expr.Associative)
	ta, tIsAssoc := target.(expr.Associative)
	if pIsAssoc && tIsAssoc && pa.Op == ta.Op && pa.Op.Commutative() && len(pa.Operands) == len(ta.Operands) && len(pa.Operands) <= maxPermuteArity {
		for _, perm := range permutations(len(ta.Operands)) {
			permuted := make([]expr.Expression, len(ta.Operands))
			for i, p := range perm {
				permuted[i] = ta.Operands[p]
			}
			if s, err := unify.Unify(pa, withOperands(ta, permuted), unify.NoPlainVars); err == nil {
				return s, true
			}
		}
		return nil, false
	}
	s, err := unify.Unify(pattern, target, unify.NoPlainVars)
	if err != nil {
		return nil, false
	}
	return s, true
}

// matchSubset tries to match pattern (expected to be Associative of op with
// k operands) against every size-k subset of target's operands (target must
// be Associative of the same op with n >= k operands), returning the
// substitution and the indices consumed on the first success.
func matchSubset(pattern expr.Associative, target expr.Associative) (unify.Subst, []int, bool) {
	k := len(pattern.Operands)
	n := len(target.Operands)
	if k > n {
		return nil, nil, false
	}
	for _, combo := range combinations(n, k) {
		subset := make([]expr.Expression, k)
		for i, idx := range combo {
			subset[i] = target.Operands[idx]
		}
		if s, ok := match(pattern, expr.Associative{Op: target.Op, Operands: subset}); ok {
			return s, combo, true
		}
	}
	return nil, nil, false
}

// withOperands is a small builder used by match's permutation search.
func withOperands(a expr.Associative, ops []expr.Expression) expr.Associative {
	return expr.Associative{Op: a.Op, Operands: ops}
}

func permutations(n int) [][]int {
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}
	var out [][]int
	var permute func(prefix []int, rest []int)
	permute = func(prefix []int, rest []int) {
		if len(rest) == 0 {
			out = append(out, append([]int(nil), prefix...))
			return
		}
		for i := range rest {
			next := append([]int(nil), rest[:i]...)
			next = append(next, rest[i+1:]...)
			permute(append(prefix, rest[i]), next)
		}
	}
	permute(nil, base)
	return out
}

func combinations(n, k int) [][]int {
	var out [][]int
	var combo func(start int, picked []int)
	combo = func(start int, picked []int) {
		if len(picked) == k {
			out = append(out, append([]int(nil), picked...))
			return
		}
		for i := start; i < n; i++ {
			combo(i+1, append(picked, i))
		}
	}
	combo(0, nil)
	return out
}
