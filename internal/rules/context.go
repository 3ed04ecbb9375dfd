package rules

import (
	"github.com/your_username/arischeck/internal/expr"
	"github.com/your_username/arischeck/internal/proof"
)

// Context is everything a Checker needs: the proof being checked, the line
// under justification, and the dependencies/sub-dependencies its
// justification cites.
type Context struct {
	Proof      *proof.Proof
	Line       proof.LineRef
	Conclusion expr.Expression
	Subproof   proof.SubproofRef
	Deps       []proof.LineRef
	SubDeps    []proof.SubproofRef
}

// RequireDeps fails unless exactly n line dependencies were supplied.
func (c *Context) RequireDeps(n int) error {
	if len(c.Deps) != n {
		return IncorrectDepCount{Expected: n, Got: len(c.Deps)}
	}
	return nil
}

// RequireMinDeps fails unless at least n line dependencies were supplied.
func (c *Context) RequireMinDeps(n int) error {
	if len(c.Deps) < n {
		return IncorrectDepCount{Expected: n, Got: len(c.Deps)}
	}
	return nil
}

// RequireSubDeps fails unless exactly n subproof dependencies were supplied.
func (c *Context) RequireSubDeps(n int) error {
	if len(c.SubDeps) != n {
		return IncorrectSubDepCount{Expected: n, Got: len(c.SubDeps)}
	}
	return nil
}

// Dep fetches the i-th line dependency's expression, checking it exists and
// is visible from this step.
func (c *Context) Dep(i int) (expr.Expression, error) {
	if i < 0 || i >= len(c.Deps) {
		return nil, Other{Msg: "internal error: dependency index out of range"}
	}
	l := c.Deps[i]
	e, ok := c.Proof.LookupExpr(l)
	if !ok {
		return nil, LineDoesNotExist{Line: l}
	}
	if !c.Proof.Visible(l, c.Subproof, c.Proof.LineSeq(c.Line)) {
		return nil, ReferencesLaterLine{Line: l}
	}
	return e, nil
}

// AllDeps fetches every line dependency's expression, in order.
func (c *Context) AllDeps() ([]expr.Expression, error) {
	out := make([]expr.Expression, len(c.Deps))
	for i := range c.Deps {
		e, err := c.Dep(i)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// subproofSteps fetches the step list of the i-th subproof dependency.
func (c *Context) subproofSteps(i int) ([]proof.Step, proof.SubproofRef, error) {
	if i < 0 || i >= len(c.SubDeps) {
		return nil, 0, Other{Msg: "internal error: subproof dependency index out of range"}
	}
	sp := c.SubDeps[i]
	steps, ok := c.Proof.LookupSubproof(sp)
	if !ok {
		return nil, 0, SubproofDoesNotExist{Sub: sp}
	}
	return steps, sp, nil
}

// SubDepPremises returns the premise expressions of the i-th subproof
// dependency, in order.
func (c *Context) SubDepPremises(i int) ([]expr.Expression, error) {
	steps, _, err := c.subproofSteps(i)
	if err != nil {
		return nil, err
	}
	var out []expr.Expression
	for _, st := range steps {
		if !st.IsLine() {
			continue
		}
		premise, _ := c.Proof.LookupPremise(st.Line())
		if !premise {
			break
		}
		e, _ := c.Proof.LookupExpr(st.Line())
		out = append(out, e)
	}
	return out, nil
}

// SubDepContainsLine reports whether target occurs (up to canonical
// equality) among any derived line anywhere inside the i-th subproof
// dependency, at any nesting depth -- matching the original checker's
// "the subproof somewhere proves this" condition used by ConditionalProof,
// NotIntroduction and DisjunctionElimination, rather than requiring it as
// the subproof's literal final line.
func (c *Context) SubDepContainsLine(i int, target expr.Expression) (bool, error) {
	_, sp, err := c.subproofSteps(i)
	if err != nil {
		return false, err
	}
	for _, l := range c.Proof.ContainedLines(sp) {
		if premise, _ := c.Proof.LookupPremise(l); premise {
			continue
		}
		e, _ := c.Proof.LookupExpr(l)
		if eq(e, target) {
			return true, nil
		}
	}
	return false, nil
}

// SubDepLines returns every derived (non-premise) expression anywhere inside
// the i-th subproof dependency.
func (c *Context) SubDepLines(i int) ([]expr.Expression, error) {
	_, sp, err := c.subproofSteps(i)
	if err != nil {
		return nil, err
	}
	var out []expr.Expression
	for _, l := range c.Proof.ContainedLines(sp) {
		if premise, _ := c.Proof.LookupPremise(l); premise {
			continue
		}
		e, _ := c.Proof.LookupExpr(l)
		out = append(out, e)
	}
	return out, nil
}

// SubDepRef returns the SubproofRef of the i-th subproof dependency.
func (c *Context) SubDepRef(i int) (proof.SubproofRef, error) {
	if i < 0 || i >= len(c.SubDeps) {
		return 0, Other{Msg: "internal error: subproof dependency index out of range"}
	}
	return c.SubDeps[i], nil
}
