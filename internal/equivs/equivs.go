// Package equivs is the catalog of named Boolean, conditional, and
// quantifier equivalence bundles that internal/rules dispatches
// BooleanEquivalence/ConditionalEquivalence/QuantifierEquivalence steps to.
// Each entry pins how the rule was classified in the original
// implementation: either a single normal-form function (when the
// equivalence has one obvious canonical form, e.g. De Morgan) or a rewrite
// rule set checked either by confluent fixpoint reduction or by bounded
// non-confluent reachable-set search, plus the per-rule Commutative flag
// that decides whether operand order is normalized away before comparing.
package equivs

import (
	"github.com/your_username/arischeck/internal/expr"
	"github.com/your_username/arischeck/internal/rewrite"
)

// Strategy selects how an Equivalence's two sides are compared.
type Strategy int

const (
	// ByNormalize reduces each side with Normalize and compares structurally.
	ByNormalize Strategy = iota
	// ByReduceConfluent reduces each side to a rewrite-rule-set fixpoint,
	// valid only when the rule set is confluent.
	ByReduceConfluent
	// ByReduceNonConfluent checks whether the two sides share a state in
	// each other's bounded one-step-rewrite reachable set.
	ByReduceNonConfluent
)

// Equivalence is one named, checkable equivalence rule.
type Equivalence struct {
	Name        string
	Commutative bool
	Strategy    Strategy
	Normalize   func(expr.Expression) expr.Expression
	Rules       rewrite.RuleSet
	// Unimplemented marks a rule intentionally left unimplemented (only
	// AsymmetricTautology, per the original catalog).
	Unimplemented bool
}

// Check decides whether a and b are related by eq.
func Check(eq Equivalence, a, b expr.Expression) bool {
	if eq.Unimplemented {
		return false
	}
	if eq.Commutative {
		a = expr.SortCommutativeOps(expr.CombineAssociativeOps(a))
		b = expr.SortCommutativeOps(expr.CombineAssociativeOps(b))
	}
	switch eq.Strategy {
	case ByNormalize:
		return expr.Equal(eq.Normalize(a), eq.Normalize(b))
	case ByReduceConfluent:
		return rewrite.ConfluentEqual(eq.Rules, a, b)
	case ByReduceNonConfluent:
		return rewrite.ReachableEqual(eq.Rules, a, b)
	default:
		return false
	}
}

// Lookup returns the Equivalence registered under name.
func Lookup(name string) (Equivalence, bool) {
	eq, ok := catalog[name]
	return eq, ok
}

// Names returns every registered equivalence name, for diagnostics and
// tests asserting catalog completeness.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	return out
}
