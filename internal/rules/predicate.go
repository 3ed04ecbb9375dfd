package rules

import (
	"github.com/your_username/arischeck/internal/expr"
	"github.com/your_username/arischeck/internal/proof"
	"github.com/your_username/arischeck/internal/unify"
)

// checkUniversalInstantiation (∀-elimination) requires the dependency to be
// a universal quantifier and the conclusion to be its body with some term
// substituted for the bound variable.
func checkUniversalInstantiation(ctx *Context) error {
	if err := ctx.RequireDeps(1); err != nil {
		return err
	}
	dep, err := ctx.Dep(0)
	if err != nil {
		return err
	}
	q, ok := dep.(expr.Quantifier)
	if !ok || q.Kind != expr.Universal {
		return DepOfWrongForm{Dep: dep, Expected: "∀x, ..."}
	}
	witness, ok := unify.UnifyWrt(q.Body, ctx.Conclusion, q.Bound)
	if !ok {
		return ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: "an instance of " + q.Body.String()}
	}
	if !eq(expr.Subst(q.Body, q.Bound, witness), ctx.Conclusion) {
		return ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: "an instance of " + q.Body.String()}
	}
	return nil
}

// checkExistentialGeneralization (∃-introduction) requires the conclusion to
// be an existential quantifier whose body, instantiated at some term for the
// bound variable, matches the cited dependency.
func checkExistentialGeneralization(ctx *Context) error {
	if err := ctx.RequireDeps(1); err != nil {
		return err
	}
	dep, err := ctx.Dep(0)
	if err != nil {
		return err
	}
	q, ok := ctx.Conclusion.(expr.Quantifier)
	if !ok || q.Kind != expr.Existential {
		return ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: "∃x, ..."}
	}
	witness, ok := unify.UnifyWrt(q.Body, dep, q.Bound)
	if !ok {
		return DepOfWrongForm{Dep: dep, Expected: "an instance of " + q.Body.String()}
	}
	if !eq(expr.Subst(q.Body, q.Bound, witness), dep) {
		return DepOfWrongForm{Dep: dep, Expected: "an instance of " + q.Body.String()}
	}
	return nil
}

// checkExistentialInstantiation (∃-elimination) requires the dependency to be
// an existential quantifier and a subproof that assumes the body
// instantiated at a fresh name, contains a line equal to the conclusion, and
// does not let that name escape: it must not occur in any transitive
// dependency of the matching line that lies outside the subproof, nor in the
// conclusion itself. Grounded on ExistsElim and its
// generalizable_variable_counterexample helper in the original checker.
func checkExistentialInstantiation(ctx *Context) error {
	if err := ctx.RequireDeps(1); err != nil {
		return err
	}
	if err := ctx.RequireSubDeps(1); err != nil {
		return err
	}
	dep, err := ctx.Dep(0)
	if err != nil {
		return err
	}
	q, ok := dep.(expr.Quantifier)
	if !ok || q.Kind != expr.Existential {
		return DepOfWrongForm{Dep: dep, Expected: "∃x, ..."}
	}
	premises, err := ctx.SubDepPremises(0)
	if err != nil {
		return err
	}
	if len(premises) != 1 {
		return Other{Msg: "the subproof must assume exactly the instantiated body"}
	}
	skolem, ok := witnessName(q.Body, premises[0], q.Bound)
	if !ok {
		return DepOfWrongForm{Dep: premises[0], Expected: "an instance of " + q.Body.String()}
	}
	sp, err := ctx.SubDepRef(0)
	if err != nil {
		return err
	}
	inside := containedSet(ctx.Proof, sp)
	for _, l := range ctx.Proof.ContainedLines(sp) {
		if premise, _ := ctx.Proof.LookupPremise(l); premise {
			continue
		}
		e, _ := ctx.Proof.LookupExpr(l)
		if !eq(e, ctx.Conclusion) {
			continue
		}
		if dangling, ok := nameEscapes(ctx.Proof, l, inside, skolem); ok {
			return Other{Msg: "the skolem constant " + skolem + " occurs in dependency " + dangling.String() + " that's outside the subproof"}
		}
		if expr.IsFree(skolem, ctx.Conclusion) {
			return Other{Msg: "the skolem constant " + skolem + " escapes to the conclusion " + ctx.Conclusion.String()}
		}
		return nil
	}
	return Other{Msg: "couldn't find a subproof line equal to the conclusion (" + ctx.Conclusion.String() + ")"}
}

// checkUniversalGeneralization (∀-introduction) requires a subproof
// containing some line that unifies with the universal's body at a constant
// c, such that: c is fresh (does not occur free in any transitive dependency
// of that line lying outside the subproof), the generalization is uniform
// (substituting the bound name for c in the body is a no-op, i.e. the
// body doesn't already mention c elsewhere), and the subproof's own premises
// are not transitive dependencies of that line. Grounded on ForallIntro and
// its generalizable_variable_counterexample helper in the original checker.
func checkUniversalGeneralization(ctx *Context) error {
	if err := ctx.RequireSubDeps(1); err != nil {
		return err
	}
	q, ok := ctx.Conclusion.(expr.Quantifier)
	if !ok || q.Kind != expr.Universal {
		return ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: "∀x, ..."}
	}
	steps, sp, err := ctx.subproofSteps(0)
	if err != nil {
		return err
	}
	var subPremises []proof.LineRef
	for _, st := range steps {
		if !st.IsLine() {
			continue
		}
		if premise, _ := ctx.Proof.LookupPremise(st.Line()); premise {
			subPremises = append(subPremises, st.Line())
		}
	}
	inside := containedSet(ctx.Proof, sp)
	for _, l := range ctx.Proof.ContainedLines(sp) {
		e, _ := ctx.Proof.LookupExpr(l)
		constant, ok := witnessName(q.Body, e, q.Bound)
		if !ok {
			continue
		}
		if dangling, ok := nameEscapes(ctx.Proof, l, inside, constant); ok {
			return Other{Msg: "the constant " + constant + " occurs in dependency " + dangling.String() + " that's outside the subproof"}
		}
		tdeps := ctx.Proof.TransitiveDependencies(l)
		for _, prem := range subPremises {
			if containsLine(tdeps, prem) {
				return Other{Msg: "universal generalization should not make use of the subproof's own premises"}
			}
		}
		if !eq(expr.Subst(q.Body, constant, expr.Variable{Name: q.Bound}), q.Body) {
			return Other{Msg: "not all free occurrences of " + constant + " are replaced with " + q.Bound + " in " + q.Body.String()}
		}
		return nil
	}
	return DepOfWrongForm{Dep: q.Body, Expected: "a subproof line that unifies with " + q.Body.String()}
}

// witnessName finds a single variable name w such that substituting w for
// bound in general yields specific, returning ok=false if no such single
// variable witness exists (e.g. the instantiation used a compound term).
func witnessName(general, specific expr.Expression, bound string) (string, bool) {
	t, ok := unify.UnifyWrt(general, specific, bound)
	if !ok {
		return "", false
	}
	v, ok := t.(expr.Variable)
	if !ok {
		return "", false
	}
	if !eq(expr.Subst(general, bound, v), specific) {
		return "", false
	}
	return v.Name, true
}

// containedSet is the line-ref membership set of every line (premise or
// derived, at any nesting depth) inside sp, used to tell a transitive
// dependency reached from inside sp apart from one that escapes it.
func containedSet(p *proof.Proof, sp proof.SubproofRef) map[proof.LineRef]bool {
	set := make(map[proof.LineRef]bool)
	for _, l := range p.ContainedLines(sp) {
		set[l] = true
	}
	return set
}

// nameEscapes reports whether name occurs free in some transitive dependency
// of line that lies outside inside, returning that dependency's expression
// for the diagnostic.
func nameEscapes(p *proof.Proof, line proof.LineRef, inside map[proof.LineRef]bool, name string) (expr.Expression, bool) {
	for _, d := range p.TransitiveDependencies(line) {
		if inside[d] {
			continue
		}
		de, ok := p.LookupExpr(d)
		if ok && expr.IsFree(name, de) {
			return de, true
		}
	}
	return nil, false
}

func containsLine(haystack []proof.LineRef, needle proof.LineRef) bool {
	for _, l := range haystack {
		if l == needle {
			return true
		}
	}
	return false
}
