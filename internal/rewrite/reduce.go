package rewrite

import (
	"sort"

	"github.com/your_username/arischeck/internal/expr"
)

// DefaultMaxSteps bounds Reduce's fixpoint iteration; rule sets used with
// Reduce are expected to be confluent and strictly decreasing in some
// measure (expression size, typically), so this bound is never expected to
// bind in practice — it exists only to guarantee termination on a
// misbehaving rule set instead of hanging.
const DefaultMaxSteps = 256

// DefaultMaxReachable bounds ReduceSet's breadth-first search over the
// one-step-rewrite graph.
const DefaultMaxReachable = 2048

func canonicalKey(e expr.Expression) string {
	return expr.SortCommutativeOps(expr.CombineAssociativeOps(e)).String()
}

// Reduce repeatedly applies the lexicographically-first available one-step
// rewrite (by String()), using each rule only in its LHS -> RHS direction,
// until no rule applies or maxSteps is reached, returning the resulting
// normal form. It is only meaningful for
// rule sets whose rewrite relation is confluent: two expressions related by
// the rules always Reduce to the same canonical form regardless of which
// step was picked at each branch.
func Reduce(rules RuleSet, e expr.Expression, maxSteps int) expr.Expression {
	cur := expr.CombineAssociativeOps(e)
	for i := 0; i < maxSteps; i++ {
		steps := step(rules, cur, false)
		if len(steps) == 0 {
			return cur
		}
		sort.Slice(steps, func(i, j int) bool { return steps[i].String() < steps[j].String() })
		next := steps[0]
		if next.String() == cur.String() {
			return cur
		}
		cur = next
	}
	return cur
}

// ReduceSet performs a breadth-first search over the one-step-rewrite graph
// rooted at e, returning every distinct (canonical-key) expression reached,
// up to maxNodes. It is the tool for equivalence rules whose rewrite
// relation is not confluent: rather than reducing both sides to a single
// normal form, we ask whether they share a reachable state.
func ReduceSet(rules RuleSet, e expr.Expression, maxNodes int) map[string]expr.Expression {
	visited := map[string]expr.Expression{}
	start := expr.CombineAssociativeOps(e)
	queue := []expr.Expression{start}
	visited[canonicalKey(start)] = start
	for len(queue) > 0 && len(visited) < maxNodes {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range Step(rules, cur) {
			key := canonicalKey(next)
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = next
			queue = append(queue, next)
			if len(visited) >= maxNodes {
				break
			}
		}
	}
	return visited
}

// ConfluentEqual reports whether a and b reduce to the same normal form
// under rules.
func ConfluentEqual(rules RuleSet, a, b expr.Expression) bool {
	ra := Reduce(rules, a, DefaultMaxSteps)
	rb := Reduce(rules, b, DefaultMaxSteps)
	return expr.CanonicalEqual(ra, rb)
}

// ReachableEqual reports whether b is reachable from a (or vice versa) by
// some sequence of one-step rewrites under rules, bounded by
// DefaultMaxReachable states explored from each side.
func ReachableEqual(rules RuleSet, a, b expr.Expression) bool {
	key := canonicalKey(b)
	if _, ok := ReduceSet(rules, a, DefaultMaxReachable)[key]; ok {
		return true
	}
	keyA := canonicalKey(a)
	_, ok := ReduceSet(rules, b, DefaultMaxReachable)[keyA]
	return ok
}
