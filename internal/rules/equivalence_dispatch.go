package rules

import "github.com/your_username/arischeck/internal/equivs"

// equivalenceChecker builds a Checker for a Boolean/Conditional/Quantifier
// equivalence rule: exactly one dependency, which must be equivalent to the
// conclusion under the named catalog entry (internal/equivs).
func equivalenceChecker(name string) Checker {
	return func(ctx *Context) error {
		if err := ctx.RequireDeps(1); err != nil {
			return err
		}
		dep, err := ctx.Dep(0)
		if err != nil {
			return err
		}
		equivalence, ok := equivs.Lookup(name)
		if !ok {
			return Other{Msg: "unknown equivalence " + name}
		}
		if equivalence.Unimplemented {
			return Other{Msg: name + " is not automatically checkable"}
		}
		if !equivs.Check(equivalence, dep, ctx.Conclusion) {
			return Other{Msg: dep.String() + " is not related to " + ctx.Conclusion.String() + " by " + name}
		}
		return nil
	}
}
