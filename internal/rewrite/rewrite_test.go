package rewrite

import (
	"testing"

	"github.com/your_username/arischeck/internal/expr"
)

func identityRules() RuleSet {
	// A∧⊤ ≡ A (using the constant "true" as a stand-in nullary atom).
	return RuleSet{
		{Name: "and-identity", LHS: expr.Associative{Op: expr.And, Operands: []expr.Expression{
			expr.PatternVar{Name: "A"}, expr.MkVar("true"),
		}}, RHS: expr.PatternVar{Name: "A"}},
	}
}

func TestStepAppliesWithinLargerConjunction(t *testing.T) {
	e := expr.Associative{Op: expr.And, Operands: []expr.Expression{
		expr.MkVar("p"), expr.MkVar("q"), expr.MkVar("true"),
	}}
	steps := Step(identityRules(), e)
	found := false
	for _, s := range steps {
		if expr.CanonicalEqual(s, expr.Associative{Op: expr.And, Operands: []expr.Expression{expr.MkVar("p"), expr.MkVar("q")}}) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected p∧q among one-step rewrites of p∧q∧true, got %v", steps)
	}
}

func TestReduceConverges(t *testing.T) {
	e := expr.Associative{Op: expr.And, Operands: []expr.Expression{expr.MkVar("p"), expr.MkVar("true")}}
	got := Reduce(identityRules(), e, DefaultMaxSteps)
	if !expr.Equal(got, expr.MkVar("p")) {
		t.Fatalf("Reduce(p∧true) = %v, want p", got)
	}
}

func TestConfluentEqual(t *testing.T) {
	a := expr.Associative{Op: expr.And, Operands: []expr.Expression{expr.MkVar("p"), expr.MkVar("true")}}
	b := expr.MkVar("p")
	if !ConfluentEqual(identityRules(), a, b) {
		t.Fatalf("expected p∧true to confluently reduce to the same form as p")
	}
}

func commutationRules() RuleSet {
	return RuleSet{
		{Name: "and-comm", LHS: expr.Associative{Op: expr.And, Operands: []expr.Expression{
			expr.PatternVar{Name: "A"}, expr.PatternVar{Name: "B"},
		}}, RHS: expr.Associative{Op: expr.And, Operands: []expr.Expression{
			expr.PatternVar{Name: "B"}, expr.PatternVar{Name: "A"},
		}}},
	}
}

func TestReachableEqual(t *testing.T) {
	a := expr.Associative{Op: expr.And, Operands: []expr.Expression{expr.MkVar("p"), expr.MkVar("q")}}
	b := expr.Associative{Op: expr.And, Operands: []expr.Expression{expr.MkVar("q"), expr.MkVar("p")}}
	if !ReachableEqual(commutationRules(), a, b) {
		t.Fatalf("expected p∧q and q∧p to be mutually reachable under commutation")
	}
}
