package rules

import "github.com/your_username/arischeck/internal/expr"

// checkModusTollens requires an implication and the negation of its
// consequent, cited in either order, concluding the negated antecedent.
func checkModusTollens(ctx *Context) error {
	if err := ctx.RequireDeps(2); err != nil {
		return err
	}
	deps, err := ctx.AllDeps()
	if err != nil {
		return err
	}
	return eitherOrder(deps[0], deps[1], func(implCandidate, negCandidate expr.Expression) trial {
		impl, ok := implCandidate.(expr.Implication)
		if !ok {
			return trialWrongOrder()
		}
		notQ := expr.MkNot(impl.Right)
		if !eq(notQ, negCandidate) {
			return trialErr(DoesNotOccur{Needle: notQ, Haystack: []expr.Expression{negCandidate}})
		}
		notP := expr.MkNot(impl.Left)
		if !eq(notP, ctx.Conclusion) {
			return trialErr(DoesNotOccur{Needle: notP, Haystack: []expr.Expression{ctx.Conclusion}})
		}
		return trialOk()
	}, DepDoesNotExist{ExpectedShape: expr.ImplPlaceholder(), Approximate: true})
}

// checkHypotheticalSyllogism chains two implications, cited in either order,
// into their transitive composite.
func checkHypotheticalSyllogism(ctx *Context) error {
	if err := ctx.RequireDeps(2); err != nil {
		return err
	}
	deps, err := ctx.AllDeps()
	if err != nil {
		return err
	}
	concl, conclIsImpl := ctx.Conclusion.(expr.Implication)
	return eitherOrder(deps[0], deps[1], func(first, second expr.Expression) trial {
		ab, ok := first.(expr.Implication)
		if !ok {
			return trialWrongOrder()
		}
		bc, ok := second.(expr.Implication)
		if !ok || !conclIsImpl {
			return trialWrongOrder()
		}
		if !eq(ab.Left, concl.Left) {
			return trialErr(DoesNotOccur{Needle: ab.Left, Haystack: []expr.Expression{concl.Left}})
		}
		if !eq(ab.Right, bc.Left) {
			return trialErr(DoesNotOccur{Needle: ab.Right, Haystack: []expr.Expression{bc.Left}})
		}
		if !eq(bc.Right, concl.Right) {
			return trialErr(DoesNotOccur{Needle: bc.Right, Haystack: []expr.Expression{concl.Right}})
		}
		return trialOk()
	}, DepDoesNotExist{ExpectedShape: expr.ImplPlaceholder(), Approximate: true})
}

// checkExcludedMiddle requires no dependencies and a conclusion of the form
// A ∨ ~A (in either order).
func checkExcludedMiddle(ctx *Context) error {
	if err := ctx.RequireDeps(0); err != nil {
		return err
	}
	disjuncts, ok := operandsOf(ctx.Conclusion, expr.Or)
	if !ok || len(disjuncts) != 2 {
		return ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: "A ∨ ~A"}
	}
	a, b := disjuncts[0], disjuncts[1]
	if na, ok := a.(expr.Not); ok && eq(na.Operand, b) {
		return nil
	}
	if nb, ok := b.(expr.Not); ok && eq(nb.Operand, a) {
		return nil
	}
	return ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: "A ∨ ~A"}
}

// checkConstructiveDilemma requires two implications and the disjunction of
// their antecedents, cited in any order, concluding the disjunction of their
// consequents.
func checkConstructiveDilemma(ctx *Context) error {
	if err := ctx.RequireDeps(3); err != nil {
		return err
	}
	deps, err := ctx.AllDeps()
	if err != nil {
		return err
	}
	return anyPermutation(deps, func(ordered []expr.Expression) trial {
		ab, ok1 := ordered[0].(expr.Implication)
		cd, ok2 := ordered[1].(expr.Implication)
		if !ok1 || !ok2 {
			return trialWrongOrder()
		}
		disjuncts, ok := operandsOf(ordered[2], expr.Or)
		if !ok || len(disjuncts) != 2 {
			return trialWrongOrder()
		}
		if !((eq(disjuncts[0], ab.Left) && eq(disjuncts[1], cd.Left)) ||
			(eq(disjuncts[1], ab.Left) && eq(disjuncts[0], cd.Left))) {
			return trialErr(DoesNotOccur{Needle: expr.Assoc(expr.Or, ab.Left, cd.Left), Haystack: disjuncts})
		}
		want := expr.Assoc(expr.Or, ab.Right, cd.Right)
		if !eq(ctx.Conclusion, want) {
			return trialErr(ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: want.String()})
		}
		return trialOk()
	}, OneOf{Errors: []error{
		DepDoesNotExist{ExpectedShape: expr.ImplPlaceholder(), Approximate: true},
		DepDoesNotExist{ExpectedShape: expr.AssocPlaceholder(expr.Or), Approximate: true},
	}})
}
