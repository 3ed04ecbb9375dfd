package rules

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/your_username/arischeck/internal/expr"
	"github.com/your_username/arischeck/internal/proof"
)

// fixture is the shape of tests/testdata/*.yaml: a flat (no-subproof) proof
// plus, per derived line, the rule under test and whether it should check
// out. It exercises every rule the worked examples below name, decoded with
// gopkg.in/yaml.v3 the way a proof session's fixtures are kept in this repo.
type fixture struct {
	Name     string `yaml:"name"`
	Premises []string `yaml:"premises"`
	Lines    []struct {
		Expr string `yaml:"expr"`
		Rule string `yaml:"rule"`
		Deps []int  `yaml:"deps"`
		OK   bool   `yaml:"ok"`
	} `yaml:"lines"`
}

func loadFixtures(t *testing.T) []fixture {
	t.Helper()
	dir := filepath.Join("..", "..", "tests", "testdata")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	var out []fixture
	for _, ent := range entries {
		if ent.IsDir() || filepath.Ext(ent.Name()) != ".yaml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, ent.Name()))
		if err != nil {
			t.Fatalf("reading %s: %v", ent.Name(), err)
		}
		var f fixture
		if err := yaml.Unmarshal(data, &f); err != nil {
			t.Fatalf("unmarshaling %s: %v", ent.Name(), err)
		}
		out = append(out, f)
	}
	return out
}

func TestGoldenFixtures(t *testing.T) {
	for _, f := range loadFixtures(t) {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			p := proof.New()
			top := p.TopLevelProof()
			for _, src := range f.Premises {
				e, err := expr.Parse(src)
				if err != nil {
					t.Fatalf("parsing premise %q: %v", src, err)
				}
				p.AddPremise(top, e)
			}
			for _, line := range f.Lines {
				e, err := expr.Parse(line.Expr)
				if err != nil {
					t.Fatalf("parsing line %q: %v", line.Expr, err)
				}
				deps := make([]proof.LineRef, len(line.Deps))
				for i, d := range line.Deps {
					deps[i] = proof.LineRef(d - 1)
				}
				l := p.AddLine(top, e, proof.Justification{Rule: line.Rule, Deps: deps})

				ctx := &Context{Proof: p, Line: l, Conclusion: e, Subproof: top, Deps: deps}
				err = Check(line.Rule, ctx)
				if line.OK && err != nil {
					t.Errorf("%s: expected %s to check out, got error: %v", f.Name, line.Expr, err)
				}
				if !line.OK && err == nil {
					t.Errorf("%s: expected %s to fail %s, but it checked out", f.Name, line.Expr, line.Rule)
				}
			}
		})
	}
}
