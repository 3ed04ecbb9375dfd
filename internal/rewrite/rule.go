// Package rewrite applies named equivalence rules (internal/equivs) to
// expressions: pattern matching against expr.PatternVar templates, and two
// strategies for deciding whether two expressions are related by a rule set
// — Reduce (confluent fixpoint normalization) and ReduceSet (bounded
// non-confluent reachable-set search) — mirroring how the rule catalog
// checks Boolean/Conditional/Quantifier equivalence steps.
package rewrite

import "github.com/your_username/arischeck/internal/expr"

// Rule is one LHS <-> RHS equivalence template. Step and ReduceSet try both
// directions, since an equivalence holds both ways; Reduce applies only
// LHS -> RHS.
type Rule struct {
	Name string
	LHS  expr.Expression
	RHS  expr.Expression
}

// RuleSet is a named bundle of equivalence templates, e.g. the two
// Identity laws or the two Absorption laws.
type RuleSet []Rule
