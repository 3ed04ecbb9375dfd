// Package sat implements a small recursive DPLL satisfiability solver over
// internal/expr's CNF representation, used by TautologicalConsequence to
// decide whether a conclusion follows from a set of premises: premises ∧
// ¬conclusion is checked for unsatisfiability.
package sat

import "github.com/your_username/arischeck/internal/expr"

// Model maps atom keys (expr.Expression.String()) to the boolean value a
// satisfying assignment gives them.
type Model map[string]bool

// Solve returns a satisfying Model for cnf, or ok=false if cnf is
// unsatisfiable.
func Solve(cnf *expr.CNF) (Model, bool) {
	clauses := make([]clause, len(cnf.Clauses))
	for i, c := range cnf.Clauses {
		clauses[i] = clauseFrom(c)
	}
	assignment := Model{}
	result, ok := dpll(clauses, assignment)
	return result, ok
}

// Satisfiable reports whether cnf has any satisfying assignment.
func Satisfiable(cnf *expr.CNF) bool {
	_, ok := Solve(cnf)
	return ok
}

// literal is one clause entry: an atom key plus whether it's negated.
type literal struct {
	atom    string
	negated bool
}

type clause []literal

func clauseFrom(c expr.Clause) clause {
	out := make(clause, len(c.Literals))
	for i, l := range c.Literals {
		out[i] = literal{atom: l.Atom.String(), negated: l.Negated}
	}
	return out
}

// dpll recursively searches for a satisfying assignment by unit
// propagation, pure-literal elimination, then branching on the first
// unassigned atom.
func dpll(clauses []clause, assignment Model) (Model, bool) {
	clauses, assignment, ok := unitPropagate(clauses, assignment)
	if !ok {
		return nil, false
	}
	if len(clauses) == 0 {
		return assignment, true
	}
	clauses, assignment = eliminatePureLiterals(clauses, assignment)
	if len(clauses) == 0 {
		return assignment, true
	}
	for _, c := range clauses {
		if len(c) == 0 {
			return nil, false
		}
	}

	atom := clauses[0][0].atom
	for _, v := range []bool{true, false} {
		trial := cloneModel(assignment)
		trial[atom] = v
		reduced, ok := assumeLiteral(clauses, atom, v)
		if !ok {
			continue
		}
		if result, ok := dpll(reduced, trial); ok {
			return result, true
		}
	}
	return nil, false
}

func cloneModel(m Model) Model {
	out := make(Model, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// assumeLiteral removes every clause satisfied by atom=v and strips the
// complementary literal from the rest. ok is always true: a clause left
// with no literals is kept as an empty clause, which dpll and unitPropagate
// detect as a conflict.
func assumeLiteral(clauses []clause, atom string, v bool) ([]clause, bool) {
	var out []clause
	for _, c := range clauses {
		satisfied := false
		var next clause
		for _, l := range c {
			if l.atom == atom {
				litValue := !l.negated
				if litValue == v {
					satisfied = true
					break
				}
				continue // complementary literal: drop it
			}
			next = append(next, l)
		}
		if satisfied {
			continue
		}
		out = append(out, next)
	}
	return out, true
}

// unitPropagate repeatedly finds a unit clause (exactly one literal) and
// assumes it, until none remain or a conflict is found.
func unitPropagate(clauses []clause, assignment Model) ([]clause, Model, bool) {
	assignment = cloneModel(assignment)
	for {
		unitAtom, unitValue, found := findUnit(clauses)
		if !found {
			return clauses, assignment, true
		}
		if existing, already := assignment[unitAtom]; already && existing != unitValue {
			return nil, nil, false
		}
		assignment[unitAtom] = unitValue
		next, ok := assumeLiteral(clauses, unitAtom, unitValue)
		if !ok {
			return nil, nil, false
		}
		for _, c := range next {
			if len(c) == 0 {
				return nil, nil, false
			}
		}
		clauses = next
	}
}

func findUnit(clauses []clause) (string, bool, bool) {
	for _, c := range clauses {
		if len(c) == 1 {
			return c[0].atom, !c[0].negated, true
		}
	}
	return "", false, false
}

// eliminatePureLiterals assumes the value of any atom that appears with only
// one polarity across all remaining clauses.
func eliminatePureLiterals(clauses []clause, assignment Model) ([]clause, Model) {
	polarity := map[string]int{} // +1 only-positive, -1 only-negative, 0 mixed
	seen := map[string]bool{}
	for _, c := range clauses {
		for _, l := range c {
			sign := 1
			if l.negated {
				sign = -1
			}
			if !seen[l.atom] {
				seen[l.atom] = true
				polarity[l.atom] = sign
			} else if polarity[l.atom] != sign {
				polarity[l.atom] = 0
			}
		}
	}
	assignment = cloneModel(assignment)
	changed := false
	for atom, sign := range polarity {
		if sign == 0 {
			continue
		}
		assignment[atom] = sign > 0
		changed = true
	}
	if !changed {
		return clauses, assignment
	}
	out := clauses
	for atom, sign := range polarity {
		if sign == 0 {
			continue
		}
		out, _ = assumeLiteral(out, atom, sign > 0)
	}
	return out, assignment
}
