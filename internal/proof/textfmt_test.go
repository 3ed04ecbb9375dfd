package proof

import (
	"strings"
	"testing"
)

func TestLoadTextParsesPremisesAndLines(t *testing.T) {
	src := `
# modus ponens
premise: p -> q
premise: p
q [MODUS_PONENS 1,2]
`
	p, err := LoadText(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}
	if p.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", p.LineCount())
	}
	premise, _ := p.LookupPremise(LineRef(2))
	if premise {
		t.Fatal("line 3 should not be a premise")
	}
	just, _ := p.LookupJustification(LineRef(2))
	if just.Rule != "MODUS_PONENS" {
		t.Errorf("Rule = %q", just.Rule)
	}
	if len(just.Deps) != 2 || just.Deps[0] != 0 || just.Deps[1] != 1 {
		t.Errorf("Deps = %v", just.Deps)
	}
}

func TestLoadTextParsesSubproofAndSubdeps(t *testing.T) {
	src := `
premise: p
subproof:
    premise: q
    q [REITERATION 2]
end
p [CONDITIONAL_PROOF ;1]
`
	p, err := LoadText(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}
	if p.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", p.LineCount())
	}
	just, _ := p.LookupJustification(LineRef(2))
	if just.Rule != "CONDITIONAL_PROOF" {
		t.Errorf("Rule = %q", just.Rule)
	}
	if len(just.SubDeps) != 1 {
		t.Fatalf("expected 1 subproof dep, got %d", len(just.SubDeps))
	}
}

func TestLoadTextRejectsUnmatchedEnd(t *testing.T) {
	if _, err := LoadText(strings.NewReader("end\n")); err == nil {
		t.Fatal("expected an error for unmatched end")
	}
}

func TestLoadTextRejectsUnclosedSubproof(t *testing.T) {
	src := "premise: p\nsubproof:\n  premise: q\n"
	if _, err := LoadText(strings.NewReader(src)); err == nil {
		t.Fatal("expected an error for an unclosed subproof")
	}
}
