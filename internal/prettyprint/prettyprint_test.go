package prettyprint

import (
	"testing"

	"github.com/your_username/arischeck/internal/expr"
)

func TestPrintOmitsUnnecessaryParens(t *testing.T) {
	// p -> q -> r should print without parenthesizing the right-associated chain.
	e := expr.MkImplies(expr.MkVar("p"), expr.MkImplies(expr.MkVar("q"), expr.MkVar("r")))
	got := Print(e)
	want := "p → q → r"
	if got != want {
		t.Errorf("Print(%v) = %q, want %q", e, got, want)
	}
}

func TestPrintParenthesizesLowerPrecedenceOnLeft(t *testing.T) {
	// (p -> q) -> r must keep its parens: a left-nested implication is not
	// the same formula as p -> q -> r.
	e := expr.MkImplies(expr.MkImplies(expr.MkVar("p"), expr.MkVar("q")), expr.MkVar("r"))
	got := Print(e)
	want := "(p → q) → r"
	if got != want {
		t.Errorf("Print(%v) = %q, want %q", e, got, want)
	}
}

func TestPrintAndOrPrecedence(t *testing.T) {
	e := expr.Assoc(expr.Or, expr.Assoc(expr.And, expr.MkVar("p"), expr.MkVar("q")), expr.MkVar("r"))
	got := Print(e)
	want := "p ∧ q ∨ r"
	if got != want {
		t.Errorf("Print(%v) = %q, want %q", e, got, want)
	}
}

func TestPrintASCIIFallback(t *testing.T) {
	e := expr.MkNot(expr.MkVar("p"))
	if got := PrintASCII(e); got != "~p" {
		t.Errorf("PrintASCII(%v) = %q, want ~p", e, got)
	}
}

func TestPrintQuantifier(t *testing.T) {
	e := expr.Quantifier{Kind: expr.Universal, Bound: "x", Body: expr.MkPred("P", expr.MkVar("x"))}
	if got := Print(e); got != "∀x. P(x)" {
		t.Errorf("Print(%v) = %q, want ∀x. P(x)", e, got)
	}
}
