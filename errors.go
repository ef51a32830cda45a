package linebreak

import "fmt"

// ParseError reports a malformed rule pattern string: an unrecognised
// token or an unbalanced bracket. It is fatal at [NewChecker] construction
// time; a rule set that fails to parse cannot be used.
type ParseError struct {
	Rule  string // the raw pattern string being parsed
	Token string // the offending token, if any
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("linebreak: parse error in rule %q: %s: %q", e.Rule, e.Msg, e.Token)
	}
	return fmt.Sprintf("linebreak: parse error in rule %q: %s", e.Rule, e.Msg)
}

// InvalidArgumentError reports a caller-supplied argument outside its
// required domain, e.g. a position outside [0, len(text)] passed to
// [Checker.IsBreakAt].
type InvalidArgumentError struct {
	Func string
	Msg  string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("linebreak: %s: %s", e.Func, e.Msg)
}

// invariantError reports a corrupted or impossible rule tree, e.g. an
// unknown pattern kind reaching the matcher. It should never occur for a
// rule set built by [ParseRules]; its presence indicates a bug in this
// package, not in caller input, so it panics rather than returning an
// error through the public API.
type invariantError struct {
	where string
	what  string
}

func (e *invariantError) Error() string {
	return fmt.Sprintf("linebreak: internal invariant failure in %s: %s", e.where, e.what)
}

func panicInvariant(where, what string) {
	panic(&invariantError{where: where, what: what})
}
