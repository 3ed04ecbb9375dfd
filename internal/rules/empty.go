package rules

// checkEmptyRule always fails: it is the placeholder justification on a
// proof line nobody has filled in yet.
func checkEmptyRule(ctx *Context) error {
	return Other{Msg: "this line has no justification yet"}
}
