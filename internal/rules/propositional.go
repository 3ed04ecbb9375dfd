package rules

import "github.com/your_username/arischeck/internal/expr"

// checkReiteration requires the conclusion to repeat an earlier line
// verbatim (up to canonical reordering of commutative operands).
func checkReiteration(ctx *Context) error {
	if err := ctx.RequireDeps(1); err != nil {
		return err
	}
	dep, err := ctx.Dep(0)
	if err != nil {
		return err
	}
	if !eq(dep, ctx.Conclusion) {
		return ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: dep.String()}
	}
	return nil
}

// checkConjunction (∧-introduction) requires the conclusion to be the
// conjunction of every cited dependency, in any order.
func checkConjunction(ctx *Context) error {
	if err := ctx.RequireMinDeps(2); err != nil {
		return err
	}
	deps, err := ctx.AllDeps()
	if err != nil {
		return err
	}
	conjuncts, ok := operandsOf(ctx.Conclusion, expr.And)
	if !ok {
		return ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: "A ∧ B ∧ ..."}
	}
	if !sameSet(deps, conjuncts) {
		return Other{Msg: "conjunction conclusion does not match the cited dependencies"}
	}
	return nil
}

// checkSimplification (∧-elimination) requires the single dependency to be a
// conjunction and the conclusion to be one of its conjuncts.
func checkSimplification(ctx *Context) error {
	if err := ctx.RequireDeps(1); err != nil {
		return err
	}
	dep, err := ctx.Dep(0)
	if err != nil {
		return err
	}
	conjuncts, ok := operandsOf(dep, expr.And)
	if !ok {
		return DepOfWrongForm{Dep: dep, Expected: "A ∧ B ∧ ..."}
	}
	if !occursAmong(ctx.Conclusion, conjuncts) {
		return DoesNotOccur{Needle: ctx.Conclusion, Haystack: conjuncts}
	}
	return nil
}

// checkAddition (∨-introduction) requires the single dependency to occur as
// one disjunct of the conclusion.
func checkAddition(ctx *Context) error {
	if err := ctx.RequireDeps(1); err != nil {
		return err
	}
	dep, err := ctx.Dep(0)
	if err != nil {
		return err
	}
	disjuncts, ok := operandsOf(ctx.Conclusion, expr.Or)
	if !ok {
		return ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: "A ∨ B ∨ ..."}
	}
	if !occursAmong(dep, disjuncts) {
		return DoesNotOccur{Needle: dep, Haystack: disjuncts}
	}
	return nil
}

// checkDisjunctionElimination (∨-elimination, a.k.a. case proof) requires one
// dependency naming a disjunction and one subproof per disjunct, each
// assuming that disjunct and independently reaching the same conclusion.
func checkDisjunctionElimination(ctx *Context) error {
	if err := ctx.RequireDeps(1); err != nil {
		return err
	}
	dep, err := ctx.Dep(0)
	if err != nil {
		return err
	}
	disjuncts, ok := operandsOf(dep, expr.Or)
	if !ok {
		return DepOfWrongForm{Dep: dep, Expected: "A ∨ B ∨ ..."}
	}
	if err := ctx.RequireSubDeps(len(disjuncts)); err != nil {
		return err
	}
	for i := range ctx.SubDeps {
		contains, err := ctx.SubDepContainsLine(i, ctx.Conclusion)
		if err != nil {
			return err
		}
		if !contains {
			return Other{Msg: "every case subproof must reach the conclusion"}
		}
	}
	for _, d := range disjuncts {
		covered := false
		for i := range ctx.SubDeps {
			premises, err := ctx.SubDepPremises(i)
			if err != nil {
				return err
			}
			if len(premises) == 1 && eq(premises[0], d) {
				covered = true
				break
			}
		}
		if !covered {
			return DepDoesNotExist{ExpectedShape: d, Approximate: false}
		}
	}
	return nil
}

// checkConditionalProof (→-introduction) requires one subproof assuming the
// implication's antecedent and concluding its consequent.
func checkConditionalProof(ctx *Context) error {
	if err := ctx.RequireDeps(0); err != nil {
		return err
	}
	if err := ctx.RequireSubDeps(1); err != nil {
		return err
	}
	impl, ok := ctx.Conclusion.(expr.Implication)
	if !ok {
		return ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: "A -> B"}
	}
	premises, err := ctx.SubDepPremises(0)
	if err != nil {
		return err
	}
	if len(premises) != 1 || !eq(premises[0], impl.Left) {
		return Other{Msg: "the subproof must assume exactly the antecedent"}
	}
	contains, err := ctx.SubDepContainsLine(0, impl.Right)
	if err != nil {
		return err
	}
	if !contains {
		return DepDoesNotExist{ExpectedShape: impl.Right, Approximate: false}
	}
	return nil
}

// checkModusPonens (→-elimination) requires an implication and its
// antecedent among the two dependencies, cited in either order.
func checkModusPonens(ctx *Context) error {
	if err := ctx.RequireDeps(2); err != nil {
		return err
	}
	deps, err := ctx.AllDeps()
	if err != nil {
		return err
	}
	return eitherOrder(deps[0], deps[1], func(implCandidate, antecedentCandidate expr.Expression) trial {
		impl, ok := implCandidate.(expr.Implication)
		if !ok {
			return trialWrongOrder()
		}
		if !eq(impl.Left, antecedentCandidate) {
			return trialErr(DoesNotOccur{Needle: antecedentCandidate, Haystack: []expr.Expression{impl.Left}})
		}
		if !eq(ctx.Conclusion, impl.Right) {
			return trialErr(ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: impl.Right.String()})
		}
		return trialOk()
	}, DepDoesNotExist{ExpectedShape: expr.ImplPlaceholder(), Approximate: true})
}

// checkNotIntroduction (¬-introduction) requires one subproof assuming A and
// deriving a contradiction, concluding ¬A.
func checkNotIntroduction(ctx *Context) error {
	if err := ctx.RequireSubDeps(1); err != nil {
		return err
	}
	not, ok := ctx.Conclusion.(expr.Not)
	if !ok {
		return ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: "~A"}
	}
	premises, err := ctx.SubDepPremises(0)
	if err != nil {
		return err
	}
	if len(premises) != 1 || !eq(premises[0], not.Operand) {
		return Other{Msg: "the subproof must assume exactly the negated expression"}
	}
	contains, err := ctx.SubDepContainsLine(0, expr.Contradiction{})
	if err != nil {
		return err
	}
	if !contains {
		return DepDoesNotExist{ExpectedShape: expr.Contradiction{}, Approximate: false}
	}
	return nil
}

// checkNotElimination (double-negation elimination as a primitive inference,
// distinct from the DOUBLENEGATION_EQUIV equivalence) strips a double
// negation.
func checkNotElimination(ctx *Context) error {
	if err := ctx.RequireDeps(1); err != nil {
		return err
	}
	dep, err := ctx.Dep(0)
	if err != nil {
		return err
	}
	outer, ok := dep.(expr.Not)
	if !ok {
		return DepOfWrongForm{Dep: dep, Expected: "~~A"}
	}
	inner, ok := outer.Operand.(expr.Not)
	if !ok {
		return DepOfWrongForm{Dep: dep, Expected: "~~A"}
	}
	if !eq(ctx.Conclusion, inner.Operand) {
		return ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: inner.Operand.String()}
	}
	return nil
}

// checkContradictionIntroduction requires a pair of flatly contradictory
// dependencies, cited in either order, and a Contradiction conclusion.
func checkContradictionIntroduction(ctx *Context) error {
	if err := ctx.RequireDeps(2); err != nil {
		return err
	}
	if _, ok := ctx.Conclusion.(expr.Contradiction); !ok {
		return ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: "_|_"}
	}
	deps, err := ctx.AllDeps()
	if err != nil {
		return err
	}
	return expressionsContradict(deps[0], deps[1])
}

// checkContradictionElimination (ex falso quodlibet) lets any conclusion
// follow from a Contradiction dependency.
func checkContradictionElimination(ctx *Context) error {
	if err := ctx.RequireDeps(1); err != nil {
		return err
	}
	dep, err := ctx.Dep(0)
	if err != nil {
		return err
	}
	if _, ok := dep.(expr.Contradiction); !ok {
		return DepOfWrongForm{Dep: dep, Expected: "_|_"}
	}
	return nil
}

// chainElimChecker builds a Biconditional/Equivalence elimination checker:
// one dependency is the n-ary chain, the other (cited in either order) is
// either a single side or itself a sub-chain of sides being peeled away; the
// conclusion must be exactly whatever sides remain (a bare expression if one
// remains, otherwise a chain of the same connective).
func chainElimChecker(op expr.Op) Checker {
	return func(ctx *Context) error {
		if err := ctx.RequireDeps(2); err != nil {
			return err
		}
		deps, err := ctx.AllDeps()
		if err != nil {
			return err
		}
		return eitherOrder(deps[0], deps[1], func(chainCandidate, peelCandidate expr.Expression) trial {
			sides, ok := operandsOf(chainCandidate, op)
			if !ok {
				return trialWrongOrder()
			}
			var peel []expr.Expression
			if ps, ok := operandsOf(peelCandidate, op); ok {
				peel = ps
			} else {
				peel = []expr.Expression{peelCandidate}
			}
			for _, p := range peel {
				if !occursAmong(p, sides) {
					return trialErr(DoesNotOccur{Needle: p, Haystack: sides})
				}
			}
			var remaining []expr.Expression
			for _, s := range sides {
				if !occursAmong(s, peel) {
					remaining = append(remaining, s)
				}
			}
			want := expr.Assoc(op, remaining...)
			if !eq(ctx.Conclusion, want) {
				return trialErr(ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: want.String()})
			}
			return trialOk()
		}, DepDoesNotExist{ExpectedShape: expr.AssocPlaceholder(op), Approximate: true})
	}
}

var checkBiconditionalElimination = chainElimChecker(expr.Biconditional)
var checkEquivalenceElimination = chainElimChecker(expr.LogicalEquivalence)
