package sat

import (
	"testing"

	"github.com/your_username/arischeck/internal/expr"
)

func TestSatisfiableSimple(t *testing.T) {
	e, err := expr.Parse("p & ~q")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	cnf, ok := expr.IntoCNF(e)
	if !ok {
		t.Fatalf("IntoCNF failed")
	}
	model, ok := Solve(cnf)
	if !ok {
		t.Fatalf("expected p&~q to be satisfiable")
	}
	if !model["p"] || model["q"] {
		t.Errorf("expected model p=true q=false, got %v", model)
	}
}

func TestUnsatContradiction(t *testing.T) {
	e, err := expr.Parse("p & ~p")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	cnf, ok := expr.IntoCNF(e)
	if !ok {
		t.Fatalf("IntoCNF failed")
	}
	if Satisfiable(cnf) {
		t.Errorf("expected p&~p to be unsatisfiable")
	}
}

func TestTautologyConsequenceViaUnsatNegation(t *testing.T) {
	// (p -> p) ∧ ~(p -> p) should be unsatisfiable, confirming p->p is a
	// tautology.
	e, err := expr.Parse("(p -> p) & ~(p -> p)")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	cnf, ok := expr.IntoCNF(e)
	if !ok {
		t.Fatalf("IntoCNF failed")
	}
	if Satisfiable(cnf) {
		t.Errorf("expected contradiction to be unsatisfiable")
	}
}
