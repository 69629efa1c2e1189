package matchable

import "fmt"

// InvalidPatternError reports a string that was meant to compile as a
// regular expression but was rejected by the engine.
//
// Pattern holds the offending source text: the slash-delimited body for
// [Parse], or the whole input for [ParseRegexOnly] and direct compilation.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid value %q: expected a valid regex pattern", e.Pattern)
}

// Unwrap returns the underlying engine error.
func (e *InvalidPatternError) Unwrap() error { return e.Err }
