package expr

// prefixEntry is one quantifier pulled to the front during prenex
// conversion.
type prefixEntry struct {
	kind  QuantKind
	bound string
}

// NormalizePrenexLaws converts e to prenex normal form: every quantifier
// pulled to the front of the expression, innermost structure quantifier-free.
// Bound variables are renamed as needed to avoid capture when prefixes from
// independent subexpressions are merged.
func NormalizePrenexLaws(e Expression) Expression {
	prefix, matrix := toPrenex(e)
	result := matrix
	for i := len(prefix) - 1; i >= 0; i-- {
		result = Quantifier{Kind: prefix[i].kind, Bound: prefix[i].bound, Body: result}
	}
	return result
}

// toPrenex returns a quantifier prefix and a quantifier-free matrix
// equivalent to e.
func toPrenex(e Expression) ([]prefixEntry, Expression) {
	switch v := e.(type) {
	case Quantifier:
		prefix, matrix := toPrenex(v.Body)
		return append([]prefixEntry{{kind: v.Kind, bound: v.Bound}}, prefix...), matrix
	case Not:
		prefix, matrix := toPrenex(v.Operand)
		flipped := make([]prefixEntry, len(prefix))
		for i, p := range prefix {
			flipped[i] = prefixEntry{kind: p.kind.Dual(), bound: p.bound}
		}
		return flipped, Not{Operand: matrix}
	case Implication:
		lp, lm := toPrenex(v.Left)
		rp, rm := toPrenex(v.Right)
		lp = renameAwayFrom(lp, rp, &lm)
		flipped := make([]prefixEntry, len(lp))
		for i, p := range lp {
			flipped[i] = prefixEntry{kind: p.kind.Dual(), bound: p.bound}
		}
		return append(flipped, rp...), Implication{Left: lm, Right: rm}
	case Associative:
		if v.Op != And && v.Op != Or {
			return nil, v
		}
		var allPrefix []prefixEntry
		matrices := make([]Expression, len(v.Operands))
		for i, o := range v.Operands {
			p, m := toPrenex(o)
			p = renameAwayFrom(p, allPrefix, &m)
			allPrefix = append(allPrefix, p...)
			matrices[i] = m
		}
		return allPrefix, Associative{Op: v.Op, Operands: matrices}
	default:
		return nil, e
	}
}

// renameAwayFrom renames p's bound names (and the corresponding binders in
// *m, by substitution) so none collides with already-claimed names in prior.
func renameAwayFrom(p []prefixEntry, prior []prefixEntry, m *Expression) []prefixEntry {
	avoid := map[string]struct{}{}
	for _, e := range prior {
		avoid[e.bound] = struct{}{}
	}
	out := make([]prefixEntry, len(p))
	for i, entry := range p {
		if _, clash := avoid[entry.bound]; clash {
			fresh := FreshVar(entry.bound, avoid)
			*m = Subst(*m, entry.bound, Variable{Name: fresh})
			out[i] = prefixEntry{kind: entry.kind, bound: fresh}
		} else {
			out[i] = entry
		}
		avoid[out[i].bound] = struct{}{}
	}
	return out
}
