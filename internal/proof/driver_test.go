package proof

import (
	"context"
	"errors"
	"testing"

	"github.com/your_username/arischeck/internal/expr"
)

func TestCheckAllSkipsPremisesAndReturnsInOrder(t *testing.T) {
	p := New()
	top := p.TopLevelProof()
	l0 := p.AddPremise(top, expr.MkVar("p"))
	l1 := p.AddLine(top, expr.MkVar("p"), Justification{Rule: "REITERATION", Deps: []LineRef{l0}})
	l2 := p.AddLine(top, expr.MkVar("q"), Justification{Rule: "REITERATION", Deps: []LineRef{l0}})

	calls := map[LineRef]bool{}
	verdicts, err := CheckAll(context.Background(), p, func(l LineRef) error {
		calls[l] = true
		if l == l2 {
			return errors.New("q does not reiterate p")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("CheckAll returned error: %v", err)
	}
	if len(verdicts) != 3 {
		t.Fatalf("expected 3 verdicts, got %d", len(verdicts))
	}
	if verdicts[l0].Err != nil {
		t.Errorf("premise line got checked: %v", verdicts[l0].Err)
	}
	if calls[l0] {
		t.Errorf("check func invoked for a premise line")
	}
	if verdicts[l1].Err != nil {
		t.Errorf("line 1 should pass, got %v", verdicts[l1].Err)
	}
	if verdicts[l2].Err == nil {
		t.Errorf("line 2 should fail")
	}
}
