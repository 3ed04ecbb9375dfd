// Package expr implements the expression algebra for classical propositional
// and first-order formulas: a tagged variant of nodes plus the structural
// equality, ordering, free-variable, substitution, flattening, normal-form,
// and CNF-conversion machinery the rule catalog is built on.
package expr

import (
	"fmt"
	"strings"
)

// Op identifies which n-ary commutative-associative connective an
// Associative node carries.
type Op int

const (
	And Op = iota
	Or
	Biconditional
	LogicalEquivalence
	Add
	Multiply
)

func (op Op) String() string {
	switch op {
	case And:
		return "∧"
	case Or:
		return "∨"
	case Biconditional:
		return "↔"
	case LogicalEquivalence:
		return "≡"
	case Add:
		return "+"
	case Multiply:
		return "*"
	default:
		return "?"
	}
}

// Commutative reports whether op's operands may be freely reordered for the
// purposes of equivalence checking (spec.md §4.1).
func (op Op) Commutative() bool {
	switch op {
	case And, Or, Biconditional, LogicalEquivalence, Add, Multiply:
		return true
	default:
		return false
	}
}

// QuantKind distinguishes universal from existential quantification.
type QuantKind int

const (
	Universal QuantKind = iota
	Existential
)

func (k QuantKind) String() string {
	if k == Universal {
		return "∀"
	}
	return "∃"
}

func (k QuantKind) Dual() QuantKind {
	if k == Universal {
		return Existential
	}
	return Universal
}

// Expression is the tagged-variant interface every formula node implements.
// It is a value type: Equal/Compare/String never consult pointer identity.
type Expression interface {
	fmt.Stringer
	isExpression()
}

// Contradiction is nullary absurdity, "_|_".
type Contradiction struct{}

func (Contradiction) isExpression() {}
func (Contradiction) String() string { return "_|_" }

// Variable is a lowercase identifier used as either a propositional atom or
// an object variable, disambiguated by context.
type Variable struct{ Name string }

func (Variable) isExpression()     {}
func (v Variable) String() string  { return v.Name }

// PatternVar is a rewrite-rule pattern variable: recognized only by the
// matcher in package rewrite, never produced by the parser or present in a
// proof's expressions.
type PatternVar struct{ Name string }

func (PatternVar) isExpression()    {}
func (v PatternVar) String() string { return "?" + v.Name }

// Predicate is an uninterpreted atomic formula; Args may be empty, in which
// case it is sugar for a propositional atom.
type Predicate struct {
	Name string
	Args []Expression
}

func (Predicate) isExpression() {}
func (p Predicate) String() string {
	if len(p.Args) == 0 {
		return p.Name
	}
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	return p.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Not is logical negation.
type Not struct{ Operand Expression }

func (Not) isExpression()      {}
func (n Not) String() string   { return "~" + parenIfCompound(n.Operand) }

// Implication is "Left -> Right".
type Implication struct{ Left, Right Expression }

func (Implication) isExpression() {}
func (i Implication) String() string {
	return parenIfCompound(i.Left) + " -> " + parenIfCompound(i.Right)
}

// Associative is the flattened n-ary form of a commutative-associative
// connective. len(Operands) must be >= 2 and must never directly contain
// another Associative node of the same Op (combine_associative_ops
// invariant).
type Associative struct {
	Op       Op
	Operands []Expression
}

func (Associative) isExpression() {}
func (a Associative) String() string {
	parts := make([]string, len(a.Operands))
	for i, o := range a.Operands {
		parts[i] = parenIfCompound(o)
	}
	return strings.Join(parts, " "+a.Op.String()+" ")
}

// Quantifier binds Body's free occurrences of Bound.
type Quantifier struct {
	Kind  QuantKind
	Bound string
	Body  Expression
}

func (Quantifier) isExpression() {}
func (q Quantifier) String() string {
	return fmt.Sprintf("%s%s, %s", q.Kind, q.Bound, q.Body)
}

func parenIfCompound(e Expression) string {
	switch e.(type) {
	case Variable, Predicate, Contradiction, PatternVar:
		return e.String()
	default:
		return "(" + e.String() + ")"
	}
}

// Assoc builds an Associative node, collapsing the len==1 case to the bare
// operand (callers that need the raw n-ary form for n>=2 should construct it
// directly).
func Assoc(op Op, operands ...Expression) Expression {
	if len(operands) == 1 {
		return operands[0]
	}
	return Associative{Op: op, Operands: operands}
}

// AssocPlaceholder is a shape-diagnostic placeholder used in error messages
// (e.g. ConclusionOfWrongForm) to describe "some Associative of op".
func AssocPlaceholder(op Op) Expression {
	return Associative{Op: op, Operands: []Expression{Variable{Name: "_"}, Variable{Name: "_"}}}
}

// ImplPlaceholder is the DepOfWrongForm/ConclusionOfWrongForm placeholder for
// "some Implication".
func ImplPlaceholder() Expression {
	return Implication{Left: Variable{Name: "_"}, Right: Variable{Name: "_"}}
}

// QuantPlaceholder is the placeholder for "some Quantifier of kind".
func QuantPlaceholder(kind QuantKind) Expression {
	return Quantifier{Kind: kind, Bound: "_", Body: Variable{Name: "_"}}
}

// NotPlaceholder is the placeholder for "some Not".
func NotPlaceholder() Expression { return Not{Operand: Variable{Name: "_"}} }

// Not/And/Or/Implies/Var/Pred convenience constructors, mirroring how the
// rule checks build expressions for comparison.

func MkNot(e Expression) Expression { return Not{Operand: e} }
func MkImplies(l, r Expression) Expression {
	return Implication{Left: l, Right: r}
}
func MkVar(name string) Expression { return Variable{Name: name} }
func MkPred(name string, args ...Expression) Expression {
	return Predicate{Name: name, Args: args}
}
