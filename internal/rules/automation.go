package rules

import (
	"github.com/your_username/arischeck/internal/expr"
	"github.com/your_username/arischeck/internal/sat"
)

// checkAsymmetricTautology is intentionally left unimplemented: deciding it
// in general needs full first-order validity checking, which this catalog
// does not attempt.
func checkAsymmetricTautology(ctx *Context) error {
	return Other{Msg: "not implemented"}
}

// checkResolution takes the union of both premises' disjuncts, removes
// whatever the conclusion's disjuncts already account for, and requires the
// remainder to be exactly two expressions that contradict each other -- the
// literal pair resolved away.
func checkResolution(ctx *Context) error {
	if err := ctx.RequireDeps(2); err != nil {
		return err
	}
	deps, err := ctx.AllDeps()
	if err != nil {
		return err
	}
	var premiseDisjuncts []expr.Expression
	for _, d := range append(expr.Disjuncts(deps[0]), expr.Disjuncts(deps[1])...) {
		if !occursAmong(d, premiseDisjuncts) {
			premiseDisjuncts = append(premiseDisjuncts, d)
		}
	}
	conclusionDisjuncts := expr.Disjuncts(ctx.Conclusion)

	var remainder []expr.Expression
	for _, d := range premiseDisjuncts {
		if !occursAmong(d, conclusionDisjuncts) {
			remainder = append(remainder, d)
		}
	}
	if len(remainder) != 2 {
		return Other{Msg: "the premise disjuncts not accounted for by the conclusion must be exactly two expressions that contradict each other"}
	}
	return expressionsContradict(remainder[0], remainder[1])
}

// expressionsContradict reports whether one of a, b is the flat negation of
// the other, cited in either order.
func expressionsContradict(a, b expr.Expression) error {
	return eitherOrder(a, b, func(i, j expr.Expression) trial {
		if n, ok := i.(expr.Not); ok && eq(n.Operand, j) {
			return trialOk()
		}
		return trialWrongOrder()
	}, Other{Msg: "expected one of {" + a.String() + ", " + b.String() + "} to be the negation of the other"})
}

// checkTautologicalConsequence decides, via DPLL, whether the conclusion is
// a classical consequence of its dependencies: premises ∧ ¬conclusion must
// be unsatisfiable.
func checkTautologicalConsequence(ctx *Context) error {
	deps, err := ctx.AllDeps()
	if err != nil {
		return err
	}
	operands := append(append([]expr.Expression(nil), deps...), expr.MkNot(ctx.Conclusion))
	combined := expr.Assoc(expr.And, operands...)
	cnf, ok := expr.IntoCNF(combined)
	if !ok {
		return Other{Msg: "tautological consequence cannot be checked on formulas containing quantifiers"}
	}
	if model, satisfiable := sat.Solve(cnf); satisfiable {
		return Other{Msg: "the premises do not tautologically entail the conclusion; counterexample: " + formatModel(model)}
	}
	return nil
}

func formatModel(m sat.Model) string {
	out := ""
	first := true
	for atom, v := range m {
		if !first {
			out += ", "
		}
		first = false
		if v {
			out += atom
		} else {
			out += "~" + atom
		}
	}
	return out
}
