package matchable

// RegexOnly always treats its input as a regular expression. No slash
// grammar is involved: the whole raw string is the pattern, compiled without
// flags, and there is no literal fallback. Use it for config fields where a
// plain string would be a mistake.
//
// The embedded [*Regexp] exposes the matching surface directly. The zero
// value holds no pattern; only [Regexp.String] and [Regexp.Flags] are safe
// on it.
type RegexOnly struct {
	*Regexp
}

// ParseRegexOnly compiles the whole of s as a pattern.
//
// Failures are reported as [*InvalidPatternError] carrying the full input.
func ParseRegexOnly(s string) (RegexOnly, error) {
	re, err := Compile(s)
	if err != nil {
		return RegexOnly{}, err
	}
	return RegexOnly{Regexp: re}, nil
}
