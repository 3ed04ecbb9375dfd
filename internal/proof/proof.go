// Package proof implements the arena-of-values-keyed-by-integer-handle
// storage for a Fitch-style proof: premises and derived lines live in a flat
// slice addressed by LineRef, nested subproofs live in a flat slice
// addressed by SubproofRef, and visibility/ordering between them is decided
// by walking the subproof parent chain plus each line's insertion sequence
// number.
package proof

import "github.com/your_username/arischeck/internal/expr"

// LineRef addresses one premise or derived line.
type LineRef int

// SubproofRef addresses one subproof, including the implicit top-level one.
type SubproofRef int

// NoSubproof is the sentinel (-1) meaning "no parent", as for the top-level
// proof.
const NoSubproof SubproofRef = -1

// Justification records how a non-premise line was derived: which rule,
// and which earlier lines/subproofs it cites.
type Justification struct {
	Rule    string
	Deps    []LineRef
	SubDeps []SubproofRef
}

type lineEntry struct {
	expr      expr.Expression
	premise   bool
	just      Justification
	subproof  SubproofRef
	seq       int
}

type stepKind int

const (
	stepLine stepKind = iota
	stepSubproof
)

// Step is one entry in a subproof's ordered body: either a line (premise or
// derived) or a nested subproof.
type Step struct {
	kind stepKind
	line LineRef
	sub  SubproofRef
}

// IsLine reports whether this Step is a line; Line is only meaningful if so.
func (s Step) IsLine() bool { return s.kind == stepLine }

// Line returns the LineRef of a line Step.
func (s Step) Line() LineRef { return s.line }

// IsSubproof reports whether this Step is a nested subproof.
func (s Step) IsSubproof() bool { return s.kind == stepSubproof }

// Subproof returns the SubproofRef of a subproof Step.
func (s Step) Subproof() SubproofRef { return s.sub }

type subproofEntry struct {
	parent SubproofRef
	steps  []Step
	seq    int
}

// Proof is a mutable arena built incrementally by a parser or builder, then
// queried read-only by the rule catalog during checking.
type Proof struct {
	lines      []lineEntry
	subproofs  []subproofEntry
	nextSeq    int
}

// New returns an empty Proof with its top-level subproof already created.
func New() *Proof {
	p := &Proof{}
	p.subproofs = append(p.subproofs, subproofEntry{parent: NoSubproof, seq: p.nextSeq})
	p.nextSeq++
	return p
}

// TopLevelProof returns the SubproofRef of the implicit outermost subproof.
func (p *Proof) TopLevelProof() SubproofRef { return 0 }

// AddSubproof creates a new empty subproof nested directly inside parent and
// appends it as a step of parent, returning its ref.
func (p *Proof) AddSubproof(parent SubproofRef) SubproofRef {
	ref := SubproofRef(len(p.subproofs))
	p.subproofs = append(p.subproofs, subproofEntry{parent: parent, seq: p.nextSeq})
	p.nextSeq++
	p.subproofs[parent].steps = append(p.subproofs[parent].steps, Step{kind: stepSubproof, sub: ref})
	return ref
}

// AddPremise appends a premise line to sp and returns its ref.
func (p *Proof) AddPremise(sp SubproofRef, e expr.Expression) LineRef {
	return p.addLine(sp, e, true, Justification{})
}

// AddLine appends a derived line, justified by j, to sp and returns its ref.
func (p *Proof) AddLine(sp SubproofRef, e expr.Expression, j Justification) LineRef {
	return p.addLine(sp, e, false, j)
}

func (p *Proof) addLine(sp SubproofRef, e expr.Expression, premise bool, j Justification) LineRef {
	ref := LineRef(len(p.lines))
	p.lines = append(p.lines, lineEntry{expr: e, premise: premise, just: j, subproof: sp, seq: p.nextSeq})
	p.nextSeq++
	p.subproofs[sp].steps = append(p.subproofs[sp].steps, Step{kind: stepLine, line: ref})
	return ref
}

// LookupExpr returns the expression at lineRef.
func (p *Proof) LookupExpr(lineRef LineRef) (expr.Expression, bool) {
	if int(lineRef) < 0 || int(lineRef) >= len(p.lines) {
		return nil, false
	}
	return p.lines[lineRef].expr, true
}

// LookupPremise reports whether lineRef is a premise (as opposed to a
// derived line).
func (p *Proof) LookupPremise(lineRef LineRef) (bool, bool) {
	if int(lineRef) < 0 || int(lineRef) >= len(p.lines) {
		return false, false
	}
	return p.lines[lineRef].premise, true
}

// LookupJustification returns the Justification of a derived line.
func (p *Proof) LookupJustification(lineRef LineRef) (Justification, bool) {
	if int(lineRef) < 0 || int(lineRef) >= len(p.lines) {
		return Justification{}, false
	}
	return p.lines[lineRef].just, true
}

// LookupSubproof returns the ordered steps of a subproof.
func (p *Proof) LookupSubproof(ref SubproofRef) ([]Step, bool) {
	if int(ref) < 0 || int(ref) >= len(p.subproofs) {
		return nil, false
	}
	return p.subproofs[ref].steps, true
}

// LineSubproof returns the subproof a line directly belongs to.
func (p *Proof) LineSubproof(lineRef LineRef) (SubproofRef, bool) {
	if int(lineRef) < 0 || int(lineRef) >= len(p.lines) {
		return NoSubproof, false
	}
	return p.lines[lineRef].subproof, true
}

// LineCount and SubproofCount expose the arena sizes, for enumeration by
// drivers that walk the whole proof.
func (p *Proof) LineCount() int      { return len(p.lines) }
func (p *Proof) SubproofCount() int  { return len(p.subproofs) }

func (p *Proof) lineSeq(l LineRef) int { return p.lines[l].seq }
func (p *Proof) subproofSeq(s SubproofRef) int { return p.subproofs[s].seq }

// LineSeq returns a line's insertion-order sequence number, for use as the
// beforeSeq argument to Visible when checking visibility from another line
// (rather than from a fixed point during proof construction).
func (p *Proof) LineSeq(l LineRef) int { return p.lineSeq(l) }

// isAncestor reports whether anc is sp itself or a subproof enclosing sp.
func (p *Proof) isAncestor(anc, sp SubproofRef) bool {
	for cur := sp; cur != NoSubproof; cur = p.subproofs[cur].parent {
		if cur == anc {
			return true
		}
	}
	return false
}

// Visible reports whether dep can be cited by a step located in subproof
// from, occurring at sequence number beforeSeq: dep's own subproof must
// enclose (or be) from, and dep must have been written earlier.
func (p *Proof) Visible(dep LineRef, from SubproofRef, beforeSeq int) bool {
	if int(dep) < 0 || int(dep) >= len(p.lines) {
		return false
	}
	depEntry := p.lines[dep]
	if depEntry.seq >= beforeSeq {
		return false
	}
	return p.isAncestor(depEntry.subproof, from)
}

// TransitiveDependencies returns every line transitively cited (directly or
// through an intervening subproof's own justifications) by lineRef's
// derivation, including lineRef itself.
func (p *Proof) TransitiveDependencies(lineRef LineRef) []LineRef {
	seen := map[LineRef]bool{}
	var walk func(l LineRef)
	walk = func(l LineRef) {
		if seen[l] {
			return
		}
		seen[l] = true
		entry := p.lines[l]
		if entry.premise {
			return
		}
		for _, d := range entry.just.Deps {
			walk(d)
		}
		for _, sd := range entry.just.SubDeps {
			for _, just := range p.ContainedJustifications(sd) {
				for _, d := range just.Deps {
					walk(d)
				}
			}
		}
	}
	walk(lineRef)
	out := make([]LineRef, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	return out
}

// ContainedJustifications returns the Justification of every derived line
// directly or transitively nested within sp (descending into nested
// subproofs).
func (p *Proof) ContainedJustifications(sp SubproofRef) []Justification {
	var out []Justification
	steps, ok := p.LookupSubproof(sp)
	if !ok {
		return nil
	}
	for _, st := range steps {
		if st.IsLine() {
			if j, ok := p.LookupJustification(st.Line()); ok {
				if premise, _ := p.LookupPremise(st.Line()); !premise {
					out = append(out, j)
				}
			}
		} else {
			out = append(out, p.ContainedJustifications(st.Subproof())...)
		}
	}
	return out
}

// ContainedLines returns every LineRef directly or transitively nested
// within sp, including premises.
func (p *Proof) ContainedLines(sp SubproofRef) []LineRef {
	var out []LineRef
	steps, ok := p.LookupSubproof(sp)
	if !ok {
		return nil
	}
	for _, st := range steps {
		if st.IsLine() {
			out = append(out, st.Line())
		} else {
			out = append(out, p.ContainedLines(st.Subproof())...)
		}
	}
	return out
}
