// Package prettyprint renders expr.Expression trees as readable text, with
// Unicode (Print) or ASCII (PrintASCII) connectives, adding parentheses only
// where precedence actually requires them rather than around every compound
// subexpression the way Expression.String does. The output is for display:
// quantifiers print as "∀x. body" / "forall x. body", a form internal/expr's
// parser does not read back.
package prettyprint

import (
	"bytes"
	"strings"

	"github.com/your_username/arischeck/internal/expr"
)

// precedence, lowest to highest: quantifiers bind loosest, then
// biconditional/equivalence, then implication, then or, then and, then not.
func precedence(e expr.Expression) int {
	switch v := e.(type) {
	case expr.Quantifier:
		return 0
	case expr.Associative:
		switch v.Op {
		case expr.Biconditional, expr.LogicalEquivalence:
			return 1
		case expr.Or:
			return 3
		case expr.And:
			return 4
		default:
			return 5
		}
	case expr.Implication:
		return 2
	case expr.Not:
		return 5
	default:
		return 6
	}
}

// Printer accumulates rendered output with indent tracking, in the style of
// the teacher's CodePrinter (bytes.Buffer plus an indent counter).
type Printer struct {
	buf    bytes.Buffer
	indent int
	ascii  bool
}

// New returns a Printer using Unicode connectives (∧, ∨, ¬, →, ↔, ∀, ∃).
func New() *Printer { return &Printer{} }

// NewASCII returns a Printer using the ASCII spellings of every connective
// (useful for terminals or fixtures that can't render Unicode).
func NewASCII() *Printer { return &Printer{ascii: true} }

// String returns everything written so far.
func (p *Printer) String() string { return p.buf.String() }

func (p *Printer) write(s string) { p.buf.WriteString(s) }

func (p *Printer) writeIndent() {
	p.buf.WriteString(strings.Repeat("    ", p.indent))
}

// Print renders e at top level (no enclosing precedence) and returns the
// result, leaving the Printer's buffer untouched -- the one-shot entry point
// most callers want.
func Print(e expr.Expression) string {
	p := New()
	p.printExpr(e, -1)
	return p.String()
}

// PrintASCII is Print using only ASCII connective spellings.
func PrintASCII(e expr.Expression) string {
	p := NewASCII()
	p.printExpr(e, -1)
	return p.String()
}

func (p *Printer) op(sym, asciiSym string) string {
	if p.ascii {
		return asciiSym
	}
	return sym
}

func (p *Printer) printExpr(e expr.Expression, parentPrec int) {
	prec := precedence(e)
	needParens := prec < parentPrec
	if needParens {
		p.write("(")
	}
	switch v := e.(type) {
	case expr.Contradiction:
		p.write(p.op("⊥", "_|_"))
	case expr.Variable:
		p.write(v.Name)
	case expr.PatternVar:
		p.write("?" + v.Name)
	case expr.Predicate:
		p.write(v.Name)
		if len(v.Args) > 0 {
			p.write("(")
			for i, a := range v.Args {
				if i > 0 {
					p.write(", ")
				}
				p.printExpr(a, -1)
			}
			p.write(")")
		}
	case expr.Not:
		p.write(p.op("¬", "~"))
		p.printExpr(v.Operand, prec)
	case expr.Implication:
		p.printExpr(v.Left, prec+1)
		p.write(" " + p.op("→", "->") + " ")
		p.printExpr(v.Right, prec)
	case expr.Associative:
		sym := associativeSymbol(v.Op, p.ascii)
		for i, o := range v.Operands {
			if i > 0 {
				p.write(" " + sym + " ")
			}
			p.printExpr(o, prec+1)
		}
	case expr.Quantifier:
		p.write(p.op(v.Kind.String(), quantAscii(v.Kind)))
		p.write(v.Bound + ". ")
		p.printExpr(v.Body, prec)
	default:
		p.write(e.String())
	}
	if needParens {
		p.write(")")
	}
}

func associativeSymbol(op expr.Op, ascii bool) string {
	switch op {
	case expr.And:
		if ascii {
			return "/\\"
		}
		return "∧"
	case expr.Or:
		if ascii {
			return "\\/"
		}
		return "∨"
	case expr.Biconditional:
		if ascii {
			return "<->"
		}
		return "↔"
	case expr.LogicalEquivalence:
		if ascii {
			return "==="
		}
		return "≡"
	default:
		return op.String()
	}
}

func quantAscii(k expr.QuantKind) string {
	if k == expr.Universal {
		return "forall "
	}
	return "exists "
}

// PrintIndented renders e the way a multi-step proof listing would: each
// call starts a fresh line at the Printer's current indent, letting a driver
// print a full Fitch column by bumping Indent for nested subproofs.
func (p *Printer) PrintIndented(e expr.Expression) {
	p.writeIndent()
	p.printExpr(e, -1)
}

// Indent and Dedent track subproof nesting depth the way the teacher's
// CodePrinter does for blocks.
func (p *Printer) Indent()   { p.indent++ }
func (p *Printer) Dedent()   { p.indent-- }
func (p *Printer) Newline()  { p.buf.WriteString("\n") }
