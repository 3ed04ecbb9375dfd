package rules

import "github.com/your_username/arischeck/internal/expr"

// Checker decides whether a proof line's justification is valid, returning a
// CheckError describing the failure or nil on success.
type Checker func(ctx *Context) error

// trial is the outcome of one orientation attempt inside an order-insensitive
// combinator: the orientation holds, it definitely fails (the dependencies
// were in this order but the proof is wrong), or it's the wrong order
// entirely (e.g. the dependency assumed to be the implication isn't one) --
// the last case is silently discarded rather than folded into a OneOf.
// Mirrors the original any_order's three-outcome AnyOrderResult.
type trial struct {
	err        error
	wrongOrder bool
}

// trialOk reports that this orientation of the dependencies holds.
func trialOk() trial { return trial{} }

// trialErr reports a definite failure: this orientation applies, but the
// step doesn't check out under it.
func trialErr(err error) trial { return trial{err: err} }

// trialWrongOrder reports that this orientation doesn't apply at all, so it
// should be tried again under a different ordering rather than reported.
func trialWrongOrder() trial { return trial{wrongOrder: true} }

// anyOrder tries check against every permutation of deps, succeeding as soon
// as one reports trialOk. If none do: a single distinct definite error is
// returned directly, two or more distinct definite errors are wrapped in a
// OneOf, and if every permutation reported wrongOrder, fallthroughErr is
// returned. Used by rules like ConstructiveDilemma that cite an arbitrary
// number of order-insensitive dependencies.
func anyOrder(deps []expr.Expression, check func(ordered []expr.Expression) trial, fallthroughErr error) error {
	var errs []error
	ok := false
	perm := append([]expr.Expression(nil), deps...)
	permute(perm, 0, func(p []expr.Expression) bool {
		switch t := check(p); {
		case t.wrongOrder:
			// discarded: this orientation doesn't apply, not an error
		case t.err == nil:
			ok = true
		default:
			errs = append(errs, t.err)
		}
		return ok
	})
	if ok {
		return nil
	}
	return foldTrials(errs, fallthroughErr)
}

// eitherOrder is anyOrder specialized to two dependencies, used by rules
// like Modus Tollens where two dependencies may be cited in either order.
func eitherOrder(a, b expr.Expression, check func(first, second expr.Expression) trial, fallthroughErr error) error {
	return anyOrder([]expr.Expression{a, b}, func(ordered []expr.Expression) trial {
		return check(ordered[0], ordered[1])
	}, fallthroughErr)
}

// anyPermutation is anyOrder for rules like Constructive Dilemma that cite
// more than two order-insensitive dependencies.
func anyPermutation(deps []expr.Expression, check func(ordered []expr.Expression) trial, fallthroughErr error) error {
	return anyOrder(deps, check, fallthroughErr)
}

// foldTrials aggregates the definite errors collected across every
// permutation: zero collapses to the fallthrough error, one is returned
// directly, and two or more distinct errors are wrapped in a OneOf.
func foldTrials(errs []error, fallthroughErr error) error {
	var distinct []error
	seen := make(map[string]bool, len(errs))
	for _, e := range errs {
		key := e.Error()
		if seen[key] {
			continue
		}
		seen[key] = true
		distinct = append(distinct, e)
	}
	switch len(distinct) {
	case 0:
		return fallthroughErr
	case 1:
		return distinct[0]
	default:
		return OneOf{Errors: distinct}
	}
}

// permute calls emit with every permutation of a (in place, so emit must not
// retain its slice), stopping early if emit returns true.
func permute(a []expr.Expression, k int, emit func([]expr.Expression) bool) bool {
	if k == len(a) {
		return emit(a)
	}
	for i := k; i < len(a); i++ {
		a[k], a[i] = a[i], a[k]
		stop := permute(a, k+1, emit)
		a[k], a[i] = a[i], a[k]
		if stop {
			return true
		}
	}
	return false
}
