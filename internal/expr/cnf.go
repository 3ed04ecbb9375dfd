package expr

// Clause is a disjunction of literals, each either a bare atom or its
// negation. internal/sat identifies atoms by their String() form, so two
// atoms that print alike are treated as the same atom there.
type Clause struct {
	Literals []Literal
}

// Literal is one atom, possibly negated, inside a Clause.
type Literal struct {
	Atom     Expression
	Negated  bool
}

// CNF is a conjunction of Clauses, the representation TautologicalConsequence
// and Resolution reason over.
type CNF struct {
	Clauses []Clause
}

// IntoCNF converts e into conjunctive normal form. The second return value is
// false if e contains a Quantifier (CNF conversion here is propositional
// only; quantified formulas are out of scope for TautologicalConsequence and
// Resolution per spec.md).
func IntoCNF(e Expression) (*CNF, bool) {
	if hasQuantifier(e) {
		return nil, false
	}
	nnf := NormalizeDoubleNegation(NormalizeDeMorgans(eliminateImplications(e)))
	distributed := distributeOrOverAnd(nnf)
	return clausesFromCNFExpr(distributed), true
}

func hasQuantifier(e Expression) bool {
	switch v := e.(type) {
	case Quantifier:
		return true
	case Not:
		return hasQuantifier(v.Operand)
	case Implication:
		return hasQuantifier(v.Left) || hasQuantifier(v.Right)
	case Associative:
		for _, o := range v.Operands {
			if hasQuantifier(o) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// eliminateImplications rewrites a -> b as ~a ∨ b, recursively.
func eliminateImplications(e Expression) Expression {
	switch v := e.(type) {
	case Implication:
		return Associative{Op: Or, Operands: []Expression{
			Not{Operand: eliminateImplications(v.Left)},
			eliminateImplications(v.Right),
		}}
	case Not:
		return Not{Operand: eliminateImplications(v.Operand)}
	case Associative:
		ops := make([]Expression, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = eliminateImplications(o)
		}
		return Associative{Op: v.Op, Operands: ops}
	case Predicate:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = eliminateImplications(a)
		}
		return Predicate{Name: v.Name, Args: args}
	default:
		return e
	}
}

// distributeOrOverAnd applies the distributive law (a∧b)∨c -> (a∨c)∧(b∨c)
// to a fixpoint, after implications have been eliminated and negation pushed
// to the literals.
func distributeOrOverAnd(e Expression) Expression {
	e = eliminateImplications(e)
	e = CombineAssociativeOps(distributeStep(e))
	return e
}

func distributeStep(e Expression) Expression {
	switch v := e.(type) {
	case Associative:
		ops := make([]Expression, len(v.Operands))
		for i, o := range v.Operands {
			ops[i] = distributeStep(o)
		}
		if v.Op == Or {
			return distributeOrOperands(ops)
		}
		return CombineAssociativeOps(Associative{Op: v.Op, Operands: ops})
	default:
		return e
	}
}

// distributeOrOperands folds a list of or-operands left to right, expanding
// any conjunction encountered.
func distributeOrOperands(ops []Expression) Expression {
	result := ops[0]
	for _, next := range ops[1:] {
		result = distributePairwise(result, next)
	}
	return result
}

func distributePairwise(a, b Expression) Expression {
	aAnd, aIsAnd := a.(Associative)
	if aIsAnd && aAnd.Op == And {
		parts := make([]Expression, len(aAnd.Operands))
		for i, o := range aAnd.Operands {
			parts[i] = distributePairwise(o, b)
		}
		return CombineAssociativeOps(Associative{Op: And, Operands: parts})
	}
	bAnd, bIsAnd := b.(Associative)
	if bIsAnd && bAnd.Op == And {
		parts := make([]Expression, len(bAnd.Operands))
		for i, o := range bAnd.Operands {
			parts[i] = distributePairwise(a, o)
		}
		return CombineAssociativeOps(Associative{Op: And, Operands: parts})
	}
	return CombineAssociativeOps(Associative{Op: Or, Operands: []Expression{a, b}})
}

// clausesFromCNFExpr reads a fully-distributed quantifier-free expression
// (an And of Ors of literals, or a single Or of literals, or a single
// literal) into the Clause representation.
func clausesFromCNFExpr(e Expression) *CNF {
	if assoc, ok := e.(Associative); ok && assoc.Op == And {
		clauses := make([]Clause, len(assoc.Operands))
		for i, o := range assoc.Operands {
			clauses[i] = clauseFromOrExpr(o)
		}
		return &CNF{Clauses: clauses}
	}
	return &CNF{Clauses: []Clause{clauseFromOrExpr(e)}}
}

func clauseFromOrExpr(e Expression) Clause {
	if assoc, ok := e.(Associative); ok && assoc.Op == Or {
		lits := make([]Literal, len(assoc.Operands))
		for i, o := range assoc.Operands {
			lits[i] = literalFromExpr(o)
		}
		return Clause{Literals: lits}
	}
	return Clause{Literals: []Literal{literalFromExpr(e)}}
}

func literalFromExpr(e Expression) Literal {
	if n, ok := e.(Not); ok {
		return Literal{Atom: n.Operand, Negated: true}
	}
	return Literal{Atom: e}
}

// Disjuncts splits a (possibly) disjunctive expression into its top-level
// operands: a∨b∨c -> [a,b,c]. A non-Or expression is a singleton disjunct
// list containing itself.
func Disjuncts(e Expression) []Expression {
	if assoc, ok := e.(Associative); ok && assoc.Op == Or {
		return append([]Expression(nil), assoc.Operands...)
	}
	return []Expression{e}
}

// ExpressionsContradict reports whether a and b are syntactically
// complementary literals: one is Not of (canonically equal to) the other.
func ExpressionsContradict(a, b Expression) bool {
	if n, ok := a.(Not); ok && CanonicalEqual(n.Operand, b) {
		return true
	}
	if n, ok := b.(Not); ok && CanonicalEqual(n.Operand, a) {
		return true
	}
	return false
}
