package proof

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/your_username/arischeck/internal/expr"
)

// LoadText parses the line-oriented proof source format cmd/arischeck and
// cmd/aris-checkd both accept:
//
//	premise: p -> q
//	premise: p
//	q [MODUS_PONENS 1,2]
//	subproof:
//	    premise: r
//	    r [REITERATION 4]
//	end
//
// Blank lines and lines starting with # are ignored. Every premise or
// derived line increments a 1-based display line number in the order
// written, and dependency lists in the source reference lines by that
// number; the LineRef each line is assigned (a 0-based arena index in
// insertion order) is that number minus one. Subproofs opened with
// "subproof:" are numbered in the order they open, starting at 1, and are
// cited after a semicolon in the justification, e.g. "p [CONDITIONAL_PROOF ;1]".
func LoadText(r io.Reader) (*Proof, error) {
	p := New()
	stack := []SubproofRef{p.TopLevelProof()}
	var subproofOrder []SubproofRef

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		cur := stack[len(stack)-1]

		switch {
		case raw == "end":
			if len(stack) == 1 {
				return nil, fmt.Errorf("line %d: unmatched end", lineno)
			}
			stack = stack[:len(stack)-1]

		case raw == "subproof:":
			sp := p.AddSubproof(cur)
			subproofOrder = append(subproofOrder, sp)
			stack = append(stack, sp)

		case strings.HasPrefix(raw, "premise:"):
			src := strings.TrimSpace(strings.TrimPrefix(raw, "premise:"))
			e, err := expr.Parse(src)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			p.AddPremise(cur, e)

		default:
			e, just, err := parseDerivedLine(raw, subproofOrder)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			p.AddLine(cur, e, just)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("unclosed subproof: missing %d \"end\"", len(stack)-1)
	}
	return p, nil
}

// parseDerivedLine parses "<expr> [RULE dep,dep,...;sub,sub,...]".
func parseDerivedLine(raw string, subproofOrder []SubproofRef) (expr.Expression, Justification, error) {
	open := strings.LastIndex(raw, "[")
	if open == -1 || !strings.HasSuffix(raw, "]") {
		return nil, Justification{}, fmt.Errorf("expected \"<expr> [RULE deps]\", got %q", raw)
	}
	exprSrc := strings.TrimSpace(raw[:open])
	just := strings.TrimSuffix(raw[open+1:], "]")

	e, err := expr.Parse(exprSrc)
	if err != nil {
		return nil, Justification{}, err
	}

	fields := strings.SplitN(strings.TrimSpace(just), " ", 2)
	rule := fields[0]
	var deps []LineRef
	var subdeps []SubproofRef
	if len(fields) == 2 {
		rest := strings.TrimSpace(fields[1])
		depPart, subPart, hasSub := strings.Cut(rest, ";")
		for _, tok := range splitNonEmpty(depPart, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil {
				return nil, Justification{}, fmt.Errorf("bad dependency %q: %w", tok, err)
			}
			deps = append(deps, LineRef(n-1))
		}
		if hasSub {
			for _, tok := range splitNonEmpty(subPart, ",") {
				n, err := strconv.Atoi(strings.TrimSpace(tok))
				if err != nil {
					return nil, Justification{}, fmt.Errorf("bad subproof dependency %q: %w", tok, err)
				}
				if n < 1 || n > len(subproofOrder) {
					return nil, Justification{}, fmt.Errorf("subproof %d has not been opened yet", n)
				}
				subdeps = append(subdeps, subproofOrder[n-1])
			}
		}
	}

	return e, Justification{Rule: rule, Deps: deps, SubDeps: subdeps}, nil
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, tok := range strings.Split(s, sep) {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
