package matchable

import "strings"

// Parse classifies s as a literal or a pattern. A string that starts with
// "/" and contains at least one more "/" is split at the last slash into a
// pattern body and flag letters, and the body is compiled with
// [CompileFlags]. Anything else, including a leading slash with no closing
// slash, is returned verbatim as a literal.
//
// A string that satisfies the slash grammar but fails to compile is an
// [*InvalidPatternError]; it is not demoted to a literal.
func Parse(s string) (Matchable, error) {
	rest, ok := strings.CutPrefix(s, "/")
	if !ok {
		return Literal(s), nil
	}

	i := strings.LastIndexByte(rest, '/')
	if i < 0 {
		return Literal(s), nil
	}

	re, err := CompileFlags(rest[:i], ParseFlags(rest[i+1:]))
	if err != nil {
		return Matchable{}, err
	}

	return Pattern(re), nil
}

// MustParse is like [Parse] but panics when the pattern fails to compile.
func MustParse(s string) Matchable {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}
