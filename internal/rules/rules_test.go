package rules

import (
	"testing"

	"github.com/your_username/arischeck/internal/expr"
	"github.com/your_username/arischeck/internal/proof"
)

func ctxFor(p *proof.Proof, line proof.LineRef, concl expr.Expression, sp proof.SubproofRef, deps []proof.LineRef, subdeps []proof.SubproofRef) *Context {
	return &Context{Proof: p, Line: line, Conclusion: concl, Subproof: sp, Deps: deps, SubDeps: subdeps}
}

func TestReiteration(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	l1 := p.AddPremise(top, expr.MkVar("p"))
	l2 := p.AddLine(top, expr.MkVar("p"), proof.Justification{Rule: "REITERATION", Deps: []proof.LineRef{l1}})

	ctx := ctxFor(p, l2, expr.MkVar("p"), top, []proof.LineRef{l1}, nil)
	if err := checkReiteration(ctx); err != nil {
		t.Fatalf("expected reiteration to hold, got %v", err)
	}

	bad := ctxFor(p, l2, expr.MkVar("q"), top, []proof.LineRef{l1}, nil)
	if err := checkReiteration(bad); err == nil {
		t.Fatalf("expected reiteration to fail for a mismatched conclusion")
	}
}

func TestConjunctionAndSimplification(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	l1 := p.AddPremise(top, expr.MkVar("p"))
	l2 := p.AddPremise(top, expr.MkVar("q"))
	conj := expr.Assoc(expr.And, expr.MkVar("p"), expr.MkVar("q"))
	l3 := p.AddLine(top, conj, proof.Justification{Rule: "CONJUNCTION", Deps: []proof.LineRef{l1, l2}})

	ctx := ctxFor(p, l3, conj, top, []proof.LineRef{l1, l2}, nil)
	if err := checkConjunction(ctx); err != nil {
		t.Fatalf("expected conjunction to hold, got %v", err)
	}

	l4 := p.AddLine(top, expr.MkVar("q"), proof.Justification{Rule: "SIMPLIFICATION", Deps: []proof.LineRef{l3}})
	simp := ctxFor(p, l4, expr.MkVar("q"), top, []proof.LineRef{l3}, nil)
	if err := checkSimplification(simp); err != nil {
		t.Fatalf("expected simplification to hold, got %v", err)
	}

	wrong := ctxFor(p, l4, expr.MkVar("r"), top, []proof.LineRef{l3}, nil)
	if err := checkSimplification(wrong); err == nil {
		t.Fatalf("expected simplification to fail for a non-conjunct")
	}
}

func TestAddition(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	l1 := p.AddPremise(top, expr.MkVar("p"))
	disj := expr.Assoc(expr.Or, expr.MkVar("p"), expr.MkVar("q"))
	l2 := p.AddLine(top, disj, proof.Justification{Rule: "ADDITION", Deps: []proof.LineRef{l1}})

	ctx := ctxFor(p, l2, disj, top, []proof.LineRef{l1}, nil)
	if err := checkAddition(ctx); err != nil {
		t.Fatalf("expected addition to hold, got %v", err)
	}
}

func TestModusPonensEitherOrder(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	impl := expr.MkImplies(expr.MkVar("p"), expr.MkVar("q"))
	l1 := p.AddPremise(top, impl)
	l2 := p.AddPremise(top, expr.MkVar("p"))
	l3 := p.AddLine(top, expr.MkVar("q"), proof.Justification{Rule: "MODUS_PONENS", Deps: []proof.LineRef{l1, l2}})

	ctx := ctxFor(p, l3, expr.MkVar("q"), top, []proof.LineRef{l1, l2}, nil)
	if err := checkModusPonens(ctx); err != nil {
		t.Fatalf("expected modus ponens in citation order to hold, got %v", err)
	}

	swapped := ctxFor(p, l3, expr.MkVar("q"), top, []proof.LineRef{l2, l1}, nil)
	if err := checkModusPonens(swapped); err != nil {
		t.Fatalf("expected modus ponens to hold regardless of citation order, got %v", err)
	}
}

func TestConditionalProofSearchesWholeSubproof(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	sub := p.AddSubproof(top)
	p.AddPremise(sub, expr.MkVar("p"))
	q := p.AddLine(sub, expr.MkVar("q"), proof.Justification{Rule: "REITERATION"})
	// an unrelated later line that should not matter
	p.AddLine(sub, expr.MkVar("r"), proof.Justification{Rule: "REITERATION"})
	_ = q

	concl := expr.MkImplies(expr.MkVar("p"), expr.MkVar("q"))
	line := p.AddLine(top, concl, proof.Justification{Rule: "CONDITIONAL_PROOF", SubDeps: []proof.SubproofRef{sub}})

	ctx := ctxFor(p, line, concl, top, nil, []proof.SubproofRef{sub})
	if err := checkConditionalProof(ctx); err != nil {
		t.Fatalf("expected conditional proof to hold when the consequent appears anywhere in the subproof, got %v", err)
	}
}

func TestNotIntroduction(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	sub := p.AddSubproof(top)
	p.AddPremise(sub, expr.MkVar("p"))
	p.AddLine(sub, expr.Contradiction{}, proof.Justification{Rule: "CONTRADICTION"})

	concl := expr.MkNot(expr.MkVar("p"))
	line := p.AddLine(top, concl, proof.Justification{Rule: "PROOF_BY_CONTRADICTION", SubDeps: []proof.SubproofRef{sub}})

	ctx := ctxFor(p, line, concl, top, nil, []proof.SubproofRef{sub})
	if err := checkNotIntroduction(ctx); err != nil {
		t.Fatalf("expected not-introduction to hold, got %v", err)
	}
}

func TestDisjunctionEliminationCasesNeedNotConsume(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	disj := expr.Assoc(expr.Or, expr.MkVar("p"), expr.MkVar("q"))
	disjLine := p.AddPremise(top, disj)

	subP := p.AddSubproof(top)
	p.AddPremise(subP, expr.MkVar("p"))
	p.AddLine(subP, expr.MkVar("r"), proof.Justification{Rule: "ADDITION"})

	subQ := p.AddSubproof(top)
	p.AddPremise(subQ, expr.MkVar("q"))
	p.AddLine(subQ, expr.MkVar("r"), proof.Justification{Rule: "ADDITION"})

	line := p.AddLine(top, expr.MkVar("r"), proof.Justification{Rule: "DISJUNCTIVE_SYLLOGISM", Deps: []proof.LineRef{disjLine}, SubDeps: []proof.SubproofRef{subP, subQ}})
	ctx := ctxFor(p, line, expr.MkVar("r"), top, []proof.LineRef{disjLine}, []proof.SubproofRef{subP, subQ})
	if err := checkDisjunctionElimination(ctx); err != nil {
		t.Fatalf("expected disjunction elimination to hold, got %v", err)
	}
}

func TestBiconditionalIntroFromChainAndImplications(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	pq := p.AddPremise(top, expr.MkImplies(expr.MkVar("p"), expr.MkVar("q")))
	qp := p.AddPremise(top, expr.MkImplies(expr.MkVar("q"), expr.MkVar("p")))

	concl := expr.Associative{Op: expr.Biconditional, Operands: []expr.Expression{expr.MkVar("p"), expr.MkVar("q")}}
	line := p.AddLine(top, concl, proof.Justification{Rule: "BICONDITIONAL_INTRO", Deps: []proof.LineRef{pq, qp}})

	ctx := ctxFor(p, line, concl, top, []proof.LineRef{pq, qp}, nil)
	if err := checkBiconditionalIntroduction(ctx); err != nil {
		t.Fatalf("expected biconditional introduction to hold, got %v", err)
	}
}

func TestBiconditionalElimPeelsOneSide(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	bicond := expr.Associative{Op: expr.Biconditional, Operands: []expr.Expression{expr.MkVar("p"), expr.MkVar("q")}}
	b := p.AddPremise(top, bicond)
	pv := p.AddPremise(top, expr.MkVar("p"))

	line := p.AddLine(top, expr.MkVar("q"), proof.Justification{Rule: "BICONDITIONAL_ELIM", Deps: []proof.LineRef{b, pv}})
	ctx := ctxFor(p, line, expr.MkVar("q"), top, []proof.LineRef{b, pv}, nil)
	if err := checkBiconditionalElimination(ctx); err != nil {
		t.Fatalf("expected biconditional elimination to hold, got %v", err)
	}
}

func TestModusTollens(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	impl := p.AddPremise(top, expr.MkImplies(expr.MkVar("p"), expr.MkVar("q")))
	notQ := p.AddPremise(top, expr.MkNot(expr.MkVar("q")))
	concl := expr.MkNot(expr.MkVar("p"))
	line := p.AddLine(top, concl, proof.Justification{Rule: "MODUS_TOLLENS", Deps: []proof.LineRef{impl, notQ}})

	ctx := ctxFor(p, line, concl, top, []proof.LineRef{impl, notQ}, nil)
	if err := checkModusTollens(ctx); err != nil {
		t.Fatalf("expected modus tollens to hold, got %v", err)
	}

	// Changing the conclusion to P (rather than ~P) means one citation order
	// (impl, notQ) resolves ~Q against notQ successfully but then fails to
	// find ~P among {P}, producing a definite DoesNotOccur error; the other
	// order (notQ, impl) is a WrongOrder since notQ isn't an Implication and
	// gets discarded. With exactly one distinct definite error, the result
	// must be that DoesNotOccur directly, not wrapped in a OneOf.
	wrongConcl := ctxFor(p, line, expr.MkVar("p"), top, []proof.LineRef{impl, notQ}, nil)
	err := checkModusTollens(wrongConcl)
	want := DoesNotOccur{Needle: expr.MkNot(expr.MkVar("p")), Haystack: []expr.Expression{expr.MkVar("p")}}
	got, ok := err.(DoesNotOccur)
	if !ok {
		t.Fatalf("expected DoesNotOccur directly for conclusion p, got %#v", err)
	}
	if got.Error() != want.Error() {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestHypotheticalSyllogism(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	pq := p.AddPremise(top, expr.MkImplies(expr.MkVar("p"), expr.MkVar("q")))
	qr := p.AddPremise(top, expr.MkImplies(expr.MkVar("q"), expr.MkVar("r")))
	concl := expr.MkImplies(expr.MkVar("p"), expr.MkVar("r"))
	line := p.AddLine(top, concl, proof.Justification{Rule: "HYPOTHETICAL_SYLLOGISM", Deps: []proof.LineRef{pq, qr}})

	ctx := ctxFor(p, line, concl, top, []proof.LineRef{pq, qr}, nil)
	if err := checkHypotheticalSyllogism(ctx); err != nil {
		t.Fatalf("expected hypothetical syllogism to hold, got %v", err)
	}
}

func TestExcludedMiddle(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	concl := expr.Assoc(expr.Or, expr.MkVar("p"), expr.MkNot(expr.MkVar("p")))
	line := p.AddLine(top, concl, proof.Justification{Rule: "EXCLUDED_MIDDLE"})
	ctx := ctxFor(p, line, concl, top, nil, nil)
	if err := checkExcludedMiddle(ctx); err != nil {
		t.Fatalf("expected excluded middle to hold, got %v", err)
	}
}

func TestConstructiveDilemma(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	pq := p.AddPremise(top, expr.MkImplies(expr.MkVar("p"), expr.MkVar("q")))
	rs := p.AddPremise(top, expr.MkImplies(expr.MkVar("r"), expr.MkVar("s")))
	pr := p.AddPremise(top, expr.Assoc(expr.Or, expr.MkVar("p"), expr.MkVar("r")))
	concl := expr.Assoc(expr.Or, expr.MkVar("q"), expr.MkVar("s"))
	line := p.AddLine(top, concl, proof.Justification{Rule: "CONSTRUCTIVE_DILEMMA", Deps: []proof.LineRef{pq, rs, pr}})

	ctx := ctxFor(p, line, concl, top, []proof.LineRef{pq, rs, pr}, nil)
	if err := checkConstructiveDilemma(ctx); err != nil {
		t.Fatalf("expected constructive dilemma to hold, got %v", err)
	}
}

func TestResolution(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	d1 := p.AddPremise(top, expr.Assoc(expr.Or, expr.MkVar("p"), expr.MkVar("q")))
	d2 := p.AddPremise(top, expr.Assoc(expr.Or, expr.MkNot(expr.MkVar("p")), expr.MkVar("r")))
	concl := expr.Assoc(expr.Or, expr.MkVar("q"), expr.MkVar("r"))
	line := p.AddLine(top, concl, proof.Justification{Rule: "RESOLUTION", Deps: []proof.LineRef{d1, d2}})

	ctx := ctxFor(p, line, concl, top, []proof.LineRef{d1, d2}, nil)
	if err := checkResolution(ctx); err != nil {
		t.Fatalf("expected resolution to hold, got %v", err)
	}
}

func TestTautologicalConsequence(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	l1 := p.AddPremise(top, expr.MkVar("p"))
	l2 := p.AddPremise(top, expr.MkImplies(expr.MkVar("p"), expr.MkVar("q")))
	line := p.AddLine(top, expr.MkVar("q"), proof.Justification{Rule: "TAUTOLOGICAL_CONSEQUENCE", Deps: []proof.LineRef{l1, l2}})

	ctx := ctxFor(p, line, expr.MkVar("q"), top, []proof.LineRef{l1, l2}, nil)
	if err := checkTautologicalConsequence(ctx); err != nil {
		t.Fatalf("expected tautological consequence to hold, got %v", err)
	}

	bad := ctxFor(p, line, expr.MkVar("r"), top, []proof.LineRef{l1, l2}, nil)
	if err := checkTautologicalConsequence(bad); err == nil {
		t.Fatalf("expected tautological consequence to fail for an unentailed conclusion")
	}
}

func TestUniversalInstantiation(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	q := expr.Quantifier{Kind: expr.Universal, Bound: "x", Body: expr.MkPred("P", expr.MkVar("x"))}
	l1 := p.AddPremise(top, q)
	concl := expr.MkPred("P", expr.MkVar("a"))
	line := p.AddLine(top, concl, proof.Justification{Rule: "UNIVERSAL_INSTANTIATION", Deps: []proof.LineRef{l1}})

	ctx := ctxFor(p, line, concl, top, []proof.LineRef{l1}, nil)
	if err := checkUniversalInstantiation(ctx); err != nil {
		t.Fatalf("expected universal instantiation to hold, got %v", err)
	}
}

func TestExistentialGeneralization(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	l1 := p.AddPremise(top, expr.MkPred("P", expr.MkVar("a")))
	concl := expr.Quantifier{Kind: expr.Existential, Bound: "x", Body: expr.MkPred("P", expr.MkVar("x"))}
	line := p.AddLine(top, concl, proof.Justification{Rule: "EXISTENTIAL_GENERALIZATION", Deps: []proof.LineRef{l1}})

	ctx := ctxFor(p, line, concl, top, []proof.LineRef{l1}, nil)
	if err := checkExistentialGeneralization(ctx); err != nil {
		t.Fatalf("expected existential generalization to hold, got %v", err)
	}
}

func TestExistentialInstantiation(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	exists := expr.Quantifier{Kind: expr.Existential, Bound: "x", Body: expr.MkPred("P", expr.MkVar("x"))}
	l1 := p.AddPremise(top, exists)

	sub := p.AddSubproof(top)
	p.AddPremise(sub, expr.MkPred("P", expr.MkVar("w")))
	p.AddLine(sub, expr.MkVar("q"), proof.Justification{Rule: "REITERATION"})

	line := p.AddLine(top, expr.MkVar("q"), proof.Justification{Rule: "EXISTENTIAL_INSTANTIATION", Deps: []proof.LineRef{l1}, SubDeps: []proof.SubproofRef{sub}})
	ctx := ctxFor(p, line, expr.MkVar("q"), top, []proof.LineRef{l1}, []proof.SubproofRef{sub})
	if err := checkExistentialInstantiation(ctx); err != nil {
		t.Fatalf("expected existential instantiation to hold, got %v", err)
	}
}

func TestExistentialInstantiationSkolemEscapeRejected(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	exists := expr.Quantifier{Kind: expr.Existential, Bound: "x", Body: expr.MkPred("P", expr.MkVar("x"))}
	l1 := p.AddPremise(top, exists)
	outside := p.AddLine(top, expr.MkPred("P", expr.MkVar("a")), proof.Justification{Rule: "REITERATION"})

	sub := p.AddSubproof(top)
	p.AddPremise(sub, expr.MkPred("P", expr.MkVar("a")))
	p.AddLine(sub, expr.MkVar("q"), proof.Justification{Rule: "REITERATION", Deps: []proof.LineRef{outside}})

	line := p.AddLine(top, expr.MkVar("q"), proof.Justification{Rule: "EXISTENTIAL_INSTANTIATION", Deps: []proof.LineRef{l1}, SubDeps: []proof.SubproofRef{sub}})
	ctx := ctxFor(p, line, expr.MkVar("q"), top, []proof.LineRef{l1}, []proof.SubproofRef{sub})
	if err := checkExistentialInstantiation(ctx); err == nil {
		t.Fatalf("expected existential instantiation to reject the skolem constant a escaping to a dependency outside the subproof")
	}
}

func TestUniversalGeneralization(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	sub := p.AddSubproof(top)
	p.AddLine(sub, expr.MkPred("P", expr.MkVar("w")), proof.Justification{Rule: "EMPTY_RULE"})

	concl := expr.Quantifier{Kind: expr.Universal, Bound: "x", Body: expr.MkPred("P", expr.MkVar("x"))}
	line := p.AddLine(top, concl, proof.Justification{Rule: "UNIVERSAL_GENERALIZATION", SubDeps: []proof.SubproofRef{sub}})
	ctx := ctxFor(p, line, concl, top, nil, []proof.SubproofRef{sub})
	if err := checkUniversalGeneralization(ctx); err != nil {
		t.Fatalf("expected universal generalization to hold, got %v", err)
	}
}

func TestEquivalenceDispatchCommutation(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	conj := expr.Assoc(expr.And, expr.MkVar("p"), expr.MkVar("q"))
	l1 := p.AddPremise(top, conj)
	concl := expr.Assoc(expr.And, expr.MkVar("q"), expr.MkVar("p"))
	line := p.AddLine(top, concl, proof.Justification{Rule: "COMMUTATION", Deps: []proof.LineRef{l1}})

	ctx := ctxFor(p, line, concl, top, []proof.LineRef{l1}, nil)
	if err := Check("COMMUTATION", ctx); err != nil {
		t.Fatalf("expected commutation to hold, got %v", err)
	}
}

func TestAsymmetricTautologyAlwaysUnimplemented(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	line := p.AddLine(top, expr.MkVar("p"), proof.Justification{Rule: "ASYMMETRIC_TAUTOLOGY"})
	ctx := ctxFor(p, line, expr.MkVar("p"), top, nil, nil)
	if err := checkAsymmetricTautology(ctx); err == nil {
		t.Fatalf("expected asymmetric tautology to be reported as unimplemented")
	}
}

func TestEmptyRuleAlwaysFails(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	line := p.AddLine(top, expr.MkVar("p"), proof.Justification{Rule: "EMPTY_RULE"})
	ctx := ctxFor(p, line, expr.MkVar("p"), top, nil, nil)
	if err := checkEmptyRule(ctx); err == nil {
		t.Fatalf("expected an unjustified line to fail checking")
	}
}

func TestUnknownRuleName(t *testing.T) {
	p := proof.New()
	top := p.TopLevelProof()
	line := p.AddLine(top, expr.MkVar("p"), proof.Justification{Rule: "NOT_A_REAL_RULE"})
	ctx := ctxFor(p, line, expr.MkVar("p"), top, nil, nil)
	if err := Check("NOT_A_REAL_RULE", ctx); err == nil {
		t.Fatalf("expected an unknown rule name to be rejected")
	}
}
