package rules

import (
	"fmt"
	"strings"

	"github.com/your_username/arischeck/internal/expr"
	"github.com/your_username/arischeck/internal/proof"
)

// CheckError is the sum type every rule Check returns on failure. Every
// variant below implements it; a nil error means the step checks out.
type CheckError interface {
	error
	isCheckError()
}

// LineDoesNotExist reports a dependency naming a line not present in the
// proof at all.
type LineDoesNotExist struct{ Line proof.LineRef }

func (LineDoesNotExist) isCheckError() {}
func (e LineDoesNotExist) Error() string {
	return fmt.Sprintf("line %d does not exist", e.Line)
}

// SubproofDoesNotExist reports a sub-dependency naming a subproof not
// present in the proof at all.
type SubproofDoesNotExist struct{ Sub proof.SubproofRef }

func (SubproofDoesNotExist) isCheckError() {}
func (e SubproofDoesNotExist) Error() string {
	return fmt.Sprintf("subproof %d does not exist", e.Sub)
}

// ReferencesLaterLine reports a dependency that exists but appears after
// (or is not visible from) the step citing it.
type ReferencesLaterLine struct{ Line proof.LineRef }

func (ReferencesLaterLine) isCheckError() {}
func (e ReferencesLaterLine) Error() string {
	return fmt.Sprintf("line %d is not visible from this step", e.Line)
}

// IncorrectDepCount reports a rule invoked with the wrong number of line
// dependencies.
type IncorrectDepCount struct{ Expected, Got int }

func (IncorrectDepCount) isCheckError() {}
func (e IncorrectDepCount) Error() string {
	return fmt.Sprintf("expected %d dependencies, got %d", e.Expected, e.Got)
}

// IncorrectSubDepCount reports a rule invoked with the wrong number of
// subproof dependencies.
type IncorrectSubDepCount struct{ Expected, Got int }

func (IncorrectSubDepCount) isCheckError() {}
func (e IncorrectSubDepCount) Error() string {
	return fmt.Sprintf("expected %d subproof dependencies, got %d", e.Expected, e.Got)
}

// DepOfWrongForm reports a dependency whose top-level shape doesn't match
// what the rule requires (e.g. Modus Ponens needs an Implication).
type DepOfWrongForm struct {
	Dep      expr.Expression
	Expected string
}

func (DepOfWrongForm) isCheckError() {}
func (e DepOfWrongForm) Error() string {
	return fmt.Sprintf("dependency %s is not of the required form (%s)", e.Dep, e.Expected)
}

// ConclusionOfWrongForm reports that the line being justified doesn't have
// the shape the rule produces.
type ConclusionOfWrongForm struct {
	Conclusion expr.Expression
	Expected   string
}

func (ConclusionOfWrongForm) isCheckError() {}
func (e ConclusionOfWrongForm) Error() string {
	return fmt.Sprintf("conclusion %s is not of the required form (%s)", e.Conclusion, e.Expected)
}

// DoesNotOccur reports that a required subexpression (e.g. a disjunct, or
// the negation of one of the dependencies) was not found among the
// candidates the rule considered.
type DoesNotOccur struct {
	Needle   expr.Expression
	Haystack []expr.Expression
}

func (DoesNotOccur) isCheckError() {}
func (e DoesNotOccur) Error() string {
	parts := make([]string, len(e.Haystack))
	for i, h := range e.Haystack {
		parts[i] = h.String()
	}
	return fmt.Sprintf("%s does not occur among [%s]", e.Needle, strings.Join(parts, ", "))
}

// DepDoesNotExist is returned when a rule needs some dependency or subproof
// line of a given shape and none of the candidates it searched provided one
// -- e.g. DisjunctionElimination needing a case subproof assuming a given
// disjunct, or ImplicationIntroduction needing a subproof line equal to the
// consequent. ExpectedShape is the expression it was looking for; Approximate
// reports whether ExpectedShape is itself only a shape placeholder (e.g. "any
// conjunction") rather than the exact expression required.
type DepDoesNotExist struct {
	ExpectedShape expr.Expression
	Approximate   bool
}

func (DepDoesNotExist) isCheckError() {}
func (e DepDoesNotExist) Error() string {
	if e.Approximate {
		return fmt.Sprintf("something of the shape %s is required as a dependency, but it does not exist", e.ExpectedShape)
	}
	return fmt.Sprintf("%s is required as a dependency, but it does not exist", e.ExpectedShape)
}

// OneOf aggregates two or more distinct failures from trying alternative
// readings of the same step (e.g. AndElim trying "left" then "right"); it is
// itself only constructed when at least two distinct errors were produced,
// per the combinator contract (internal/rules.OneOf).
type OneOf struct{ Errors []error }

func (OneOf) isCheckError() {}
func (e OneOf) Error() string {
	parts := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("none of the alternatives held: %s", strings.Join(parts, "; "))
}

// Other is a catch-all for rule-specific messages that don't fit the other
// variants (also used for NotImplemented rules, e.g. AsymmetricTautology).
type Other struct{ Msg string }

func (Other) isCheckError() {}
func (e Other) Error() string { return e.Msg }
