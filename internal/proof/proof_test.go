package proof

import (
	"testing"

	"github.com/your_username/arischeck/internal/expr"
)

func TestLinearProofVisibility(t *testing.T) {
	p := New()
	top := p.TopLevelProof()
	l1 := p.AddPremise(top, expr.MkVar("p"))
	l2 := p.AddPremise(top, expr.Implication{Left: expr.MkVar("p"), Right: expr.MkVar("q")})
	l3 := p.AddLine(top, expr.MkVar("q"), Justification{Rule: "MODUS_PONENS", Deps: []LineRef{l1, l2}})

	if !p.Visible(l1, top, int(l3)+1) {
		t.Errorf("l1 should be visible to a step after it in the same subproof")
	}
	if p.Visible(l3, top, int(l1)) {
		t.Errorf("l3 should not be visible before it was written")
	}
}

func TestSubproofVisibility(t *testing.T) {
	p := New()
	top := p.TopLevelProof()
	outer := p.AddPremise(top, expr.MkVar("p"))
	sub := p.AddSubproof(top)
	inner := p.AddPremise(sub, expr.MkVar("q"))
	_ = inner

	// A step inside sub can see outer (enclosing) lines...
	if !p.Visible(outer, sub, 1000) {
		t.Errorf("lines from an enclosing subproof should be visible inside a nested one")
	}

	sibling := p.AddSubproof(top)
	// ...but a step in a sibling subproof cannot see into sub.
	if p.Visible(inner, sibling, 1000) {
		t.Errorf("a sibling subproof's lines should not be visible")
	}
}

func TestTransitiveDependencies(t *testing.T) {
	p := New()
	top := p.TopLevelProof()
	l1 := p.AddPremise(top, expr.MkVar("p"))
	l2 := p.AddLine(top, expr.MkVar("p"), Justification{Rule: "REITERATION", Deps: []LineRef{l1}})
	l3 := p.AddLine(top, expr.MkVar("p"), Justification{Rule: "REITERATION", Deps: []LineRef{l2}})

	deps := p.TransitiveDependencies(l3)
	seen := map[LineRef]bool{}
	for _, d := range deps {
		seen[d] = true
	}
	if !seen[l1] || !seen[l2] || !seen[l3] {
		t.Errorf("expected l1, l2, l3 all in transitive dependency set, got %v", deps)
	}
}

func TestContainedLinesAndJustifications(t *testing.T) {
	p := New()
	top := p.TopLevelProof()
	sub := p.AddSubproof(top)
	a := p.AddPremise(sub, expr.MkVar("p"))
	b := p.AddLine(sub, expr.MkVar("p"), Justification{Rule: "REITERATION", Deps: []LineRef{a}})

	lines := p.ContainedLines(sub)
	if len(lines) != 2 {
		t.Fatalf("expected 2 contained lines, got %d", len(lines))
	}
	justs := p.ContainedJustifications(sub)
	if len(justs) != 1 || justs[0].Rule != "REITERATION" {
		t.Fatalf("expected 1 REITERATION justification, got %v", justs)
	}
	_ = b
}
