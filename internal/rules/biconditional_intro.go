package rules

import "github.com/your_username/arischeck/internal/expr"

// chainConnective builds a biconditional/equivalence introduction checker
// parameterized over which n-ary connective (Biconditional or
// LogicalEquivalence) the rule introduces. BiconditionalIntroduction further
// restricts the conclusion to exactly two terms; EquivalenceIntroduction
// allows any chain length.
//
// Every line dependency must either be an Implication (an edge from its
// antecedent to its consequent) or already a chain of the same connective
// (every pair of its terms mutually edged, since they're already known
// equivalent). Every subproof dependency must assume a single premise and is
// taken to entail every line appearing anywhere inside it, contributing an
// edge from that premise to each such line.
//
// Reading the union of all those edges as a directed graph, the conclusion
// holds exactly when every one of its terms lies in a single strongly
// connected component: that is the condition under which all terms are
// mutually derivable from one another using only what was cited.
func chainConnective(op expr.Op, fixedArity int) Checker {
	return func(ctx *Context) error {
		terms, ok := operandsOf(ctx.Conclusion, op)
		if !ok {
			return ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: "a chain of " + op.String()}
		}
		if fixedArity > 0 && len(terms) != fixedArity {
			return ConclusionOfWrongForm{Conclusion: ctx.Conclusion, Expected: "exactly two terms"}
		}
		deps, err := ctx.AllDeps()
		if err != nil {
			return err
		}

		index := map[string]int{}
		nodeOf := func(e expr.Expression) int {
			key := expr.SortCommutativeOps(expr.CombineAssociativeOps(e)).String()
			if i, ok := index[key]; ok {
				return i
			}
			i := len(index)
			index[key] = i
			return i
		}
		var adj [][]int
		ensure := func(n int) {
			for len(adj) <= n {
				adj = append(adj, nil)
			}
		}
		addEdge := func(from, to expr.Expression) {
			f, t := nodeOf(from), nodeOf(to)
			ensure(f)
			ensure(t)
			adj[f] = append(adj[f], t)
		}

		for _, d := range deps {
			if chain, ok := operandsOf(d, op); ok {
				for _, e1 := range chain {
					for _, e2 := range chain {
						addEdge(e1, e2)
					}
				}
				continue
			}
			impl, ok := d.(expr.Implication)
			if !ok {
				return OneOf{Errors: []error{
					DepOfWrongForm{Dep: d, Expected: "a chain of " + op.String()},
					DepOfWrongForm{Dep: d, Expected: "A -> B"},
				}}
			}
			addEdge(impl.Left, impl.Right)
		}
		for i := range ctx.SubDeps {
			premises, err := ctx.SubDepPremises(i)
			if err != nil {
				return err
			}
			if len(premises) != 1 {
				return Other{Msg: "each introduction subproof must assume exactly one premise"}
			}
			lines, err := ctx.SubDepLines(i)
			if err != nil {
				return err
			}
			for _, l := range lines {
				addEdge(premises[0], l)
			}
		}

		termNodes := make([]int, len(terms))
		for i, t := range terms {
			termNodes[i] = nodeOf(t)
		}
		ensure(len(index) - 1)

		comps := tarjanSCC(len(adj), adj)
		compOf := make([]int, len(adj))
		for ci, comp := range comps {
			for _, n := range comp {
				compOf[n] = ci
			}
		}
		want := compOf[termNodes[0]]
		for _, n := range termNodes[1:] {
			if compOf[n] != want {
				return Other{Msg: "the cited dependencies do not mutually entail every term of the chain"}
			}
		}
		return nil
	}
}

var checkBiconditionalIntroduction = chainConnective(expr.Biconditional, 2)
var checkEquivalenceIntroduction = chainConnective(expr.LogicalEquivalence, 0)
