package expr

import "testing"

func mustParse(t *testing.T, src string) Expression {
	t.Helper()
	e, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return e
}

func TestParseAtoms(t *testing.T) {
	tests := []struct {
		src  string
		want Expression
	}{
		{"p", Variable{Name: "p"}},
		{"_|_", Contradiction{}},
		{"P(x, y)", Predicate{Name: "P", Args: []Expression{Variable{Name: "x"}, Variable{Name: "y"}}}},
		{"~p", Not{Operand: Variable{Name: "p"}}},
		{"p -> q", Implication{Left: Variable{Name: "p"}, Right: Variable{Name: "q"}}},
	}
	for _, tt := range tests {
		got := mustParse(t, tt.src)
		if !Equal(got, tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestParseQuantifier(t *testing.T) {
	got := mustParse(t, "forall x, P(x)")
	want := Quantifier{Kind: Universal, Bound: "x", Body: Predicate{Name: "P", Args: []Expression{Variable{Name: "x"}}}}
	if !Equal(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestParseImplicationRightAssociative(t *testing.T) {
	got := mustParse(t, "p -> q -> r")
	want := Implication{Left: Variable{Name: "p"}, Right: Implication{Left: Variable{Name: "q"}, Right: Variable{Name: "r"}}}
	if !Equal(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestParsePrecedence(t *testing.T) {
	got := mustParse(t, "p & q | r -> s")
	// & binds tighter than |, | binds tighter than ->
	want := Implication{
		Left: Associative{Op: Or, Operands: []Expression{
			Associative{Op: And, Operands: []Expression{Variable{Name: "p"}, Variable{Name: "q"}}},
			Variable{Name: "r"},
		}},
		Right: Variable{Name: "s"},
	}
	if !Equal(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestParseErrorUnbalancedParen(t *testing.T) {
	if _, err := Parse("(p & q"); err == nil {
		t.Errorf("expected error for unbalanced paren")
	}
}

func TestEqualIgnoresOperandOrderOnlyAfterSort(t *testing.T) {
	a := Associative{Op: And, Operands: []Expression{Variable{Name: "p"}, Variable{Name: "q"}}}
	b := Associative{Op: And, Operands: []Expression{Variable{Name: "q"}, Variable{Name: "p"}}}
	if Equal(a, b) {
		t.Errorf("Equal should be order-sensitive")
	}
	if !CanonicalEqual(a, b) {
		t.Errorf("CanonicalEqual should ignore commutative operand order")
	}
}

func TestFreeVars(t *testing.T) {
	e := mustParse(t, "forall x, P(x, y)")
	fv := FreeVars(e)
	if _, ok := fv["x"]; ok {
		t.Errorf("x should be bound, not free")
	}
	if _, ok := fv["y"]; !ok {
		t.Errorf("y should be free")
	}
}

func TestSubstCaptureAvoidance(t *testing.T) {
	// (forall x, P(x, y))[y := x] must rename the bound x to avoid capture.
	e := mustParse(t, "forall x, P(x, y)")
	result := Subst(e, "y", Variable{Name: "x"})
	q, ok := result.(Quantifier)
	if !ok {
		t.Fatalf("expected Quantifier, got %T", result)
	}
	if q.Bound == "x" {
		t.Errorf("bound variable should have been renamed to avoid capturing substituted x, got %q", q.Bound)
	}
}

func TestCombineAssociativeOpsFlattens(t *testing.T) {
	nested := Associative{Op: And, Operands: []Expression{
		Associative{Op: And, Operands: []Expression{Variable{Name: "a"}, Variable{Name: "b"}}},
		Variable{Name: "c"},
	}}
	flat := CombineAssociativeOps(nested)
	assoc, ok := flat.(Associative)
	if !ok || len(assoc.Operands) != 3 {
		t.Fatalf("expected flattened 3-operand And, got %v", flat)
	}
}

func TestNormalizeIdempotenceCollapsesToSingleton(t *testing.T) {
	e := Associative{Op: Or, Operands: []Expression{Variable{Name: "a"}, Variable{Name: "a"}}}
	got := NormalizeIdempotence(e)
	if !Equal(got, Variable{Name: "a"}) {
		t.Errorf("NormalizeIdempotence(a|a) = %v, want a", got)
	}
}

func TestNormalizeDeMorgans(t *testing.T) {
	e := mustParse(t, "~(p & q)")
	got := NormalizeDeMorgans(e)
	want := Associative{Op: Or, Operands: []Expression{Not{Operand: Variable{Name: "p"}}, Not{Operand: Variable{Name: "q"}}}}
	if !Equal(got, want) {
		t.Errorf("NormalizeDeMorgans(~(p&q)) = %v, want %v", got, want)
	}
}

func TestNegateQuantifiers(t *testing.T) {
	e := Not{Operand: Quantifier{Kind: Universal, Bound: "x", Body: Predicate{Name: "P", Args: []Expression{Variable{Name: "x"}}}}}
	got := NegateQuantifiers(e)
	want := Quantifier{Kind: Existential, Bound: "x", Body: Not{Operand: Predicate{Name: "P", Args: []Expression{Variable{Name: "x"}}}}}
	if !Equal(got, want) {
		t.Errorf("NegateQuantifiers = %v, want %v", got, want)
	}
}

func TestNormalizeNullQuantifiers(t *testing.T) {
	e := Quantifier{Kind: Universal, Bound: "x", Body: Variable{Name: "p"}}
	got := NormalizeNullQuantifiers(e)
	if !Equal(got, Variable{Name: "p"}) {
		t.Errorf("NormalizeNullQuantifiers = %v, want p", got)
	}
}

func TestSwapQuantifiers(t *testing.T) {
	a := mustParse(t, "forall x, forall y, P(x, y)")
	b := Quantifier{Kind: Universal, Bound: "y", Body: Quantifier{Kind: Universal, Bound: "x", Body: Predicate{Name: "P", Args: []Expression{Variable{Name: "x"}, Variable{Name: "y"}}}}}
	if !Equal(SwapQuantifiers(a), SwapQuantifiers(b)) {
		t.Errorf("SwapQuantifiers should normalize both orders identically")
	}
}

func TestAristoteleanSquare(t *testing.T) {
	e := Not{Operand: Quantifier{Kind: Existential, Bound: "x", Body: Not{Operand: Predicate{Name: "P", Args: []Expression{Variable{Name: "x"}}}}}}
	got := AristoteleanSquare(e)
	want := Quantifier{Kind: Universal, Bound: "x", Body: Predicate{Name: "P", Args: []Expression{Variable{Name: "x"}}}}
	if !Equal(got, want) {
		t.Errorf("AristoteleanSquare = %v, want %v", got, want)
	}
}

func TestQuantifierDistribution(t *testing.T) {
	e := Quantifier{Kind: Universal, Bound: "x", Body: Associative{Op: And, Operands: []Expression{
		Predicate{Name: "P", Args: []Expression{Variable{Name: "x"}}},
		Predicate{Name: "Q", Args: []Expression{Variable{Name: "x"}}},
	}}}
	got := QuantifierDistribution(e)
	want := Associative{Op: And, Operands: []Expression{
		Quantifier{Kind: Universal, Bound: "x", Body: Predicate{Name: "P", Args: []Expression{Variable{Name: "x"}}}},
		Quantifier{Kind: Universal, Bound: "x", Body: Predicate{Name: "Q", Args: []Expression{Variable{Name: "x"}}}},
	}}
	if !Equal(got, want) {
		t.Errorf("QuantifierDistribution = %v, want %v", got, want)
	}
}

func TestNormalizePrenexLaws(t *testing.T) {
	e := mustParse(t, "(forall x, P(x)) -> Q")
	got := NormalizePrenexLaws(e)
	q, ok := got.(Quantifier)
	if !ok {
		t.Fatalf("expected a leading quantifier, got %T: %v", got, got)
	}
	if q.Kind != Existential {
		t.Errorf("quantifier on the antecedent side of -> should flip to existential, got %v", q.Kind)
	}
}

func TestIntoCNFAndDisjuncts(t *testing.T) {
	e := mustParse(t, "p -> q")
	cnf, ok := IntoCNF(e)
	if !ok {
		t.Fatalf("IntoCNF should succeed on a quantifier-free formula")
	}
	if len(cnf.Clauses) != 1 || len(cnf.Clauses[0].Literals) != 2 {
		t.Fatalf("p -> q should CNF to a single 2-literal clause, got %+v", cnf)
	}

	or := mustParse(t, "p | q | r")
	ds := Disjuncts(or)
	if len(ds) != 3 {
		t.Errorf("Disjuncts(p|q|r) should have 3 elements, got %d", len(ds))
	}
}

func TestExpressionsContradict(t *testing.T) {
	p := Variable{Name: "p"}
	np := Not{Operand: Variable{Name: "p"}}
	if !ExpressionsContradict(p, np) {
		t.Errorf("p and ~p should contradict")
	}
	if ExpressionsContradict(p, Variable{Name: "q"}) {
		t.Errorf("p and q should not contradict")
	}
}
