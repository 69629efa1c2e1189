package matchable

import (
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"

	"github.com/g-plane/matchable/internal/pcre"
)

// Regexp is a compiled pattern. Compilation selects coregex, an
// RE2-compatible engine with linear-time matching, unless the pattern uses
// PCRE-only features, in which case [regexp2] takes over. Exactly one backend
// field is set.
//
// A Regexp is immutable once compiled, except for [Regexp.Longest], which
// must be called before matching begins.
type Regexp struct {
	pattern string
	flags   Flags

	core *coregex.Regex
	pcre *regexp2.Regexp
}

// Compile parses pattern with no flags set.
//
// Failures are reported as [*InvalidPatternError].
func Compile(pattern string) (*Regexp, error) {
	return CompileFlags(pattern, 0)
}

// CompileFlags parses pattern with the given flags. On the coregex backend
// the flags become an inline "(?ims)" prefix; on the regexp2 backend they map
// to the engine's options. The source text reported by [Regexp.String] stays
// the bare pattern either way.
//
// Failures are reported as [*InvalidPatternError].
func CompileFlags(pattern string, flags Flags) (*Regexp, error) {
	if pcre.Required(pattern) {
		return compilePCRE(pattern, flags)
	}

	expr := pattern
	if flags != 0 {
		expr = "(?" + flags.String() + ")" + expr
	}
	core, err := coregex.Compile(expr)
	if err != nil {
		// The token scan is conservative; patterns it misses may still be
		// valid for the PCRE engine.
		if re, err2 := compilePCRE(pattern, flags); err2 == nil {
			return re, nil
		}
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}

	return &Regexp{pattern: pattern, flags: flags, core: core}, nil
}

func compilePCRE(pattern string, flags Flags) (*Regexp, error) {
	re, err := regexp2.Compile(pattern, flags.options())
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}
	return &Regexp{pattern: pattern, flags: flags, pcre: re}, nil
}

// MustCompile is like [Compile] but panics if the pattern cannot be parsed.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// QuoteMeta returns a string that escapes all regular expression
// metacharacters inside s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// String returns the source text the pattern was compiled from, without any
// flag decoration. It is safe to call on a nil receiver.
func (r *Regexp) String() string {
	if r == nil {
		return ""
	}
	return r.pattern
}

// Flags returns the flags the pattern was compiled with. It is safe to call
// on a nil receiver.
func (r *Regexp) Flags() Flags {
	if r == nil {
		return 0
	}
	return r.flags
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}
	return r.pcreMatchString(s)
}

// Match reports whether b contains any match of the pattern.
func (r *Regexp) Match(b []byte) bool {
	if r.core != nil {
		return r.core.Match(b)
	}
	return r.pcreMatchString(string(b))
}

// FindString returns the text of the leftmost match in s, or "" when there
// is no match.
func (r *Regexp) FindString(s string) string {
	if r.core != nil {
		return r.core.FindString(s)
	}
	return r.pcreFindString(s)
}

// FindStringIndex returns a two-element slice holding the byte offsets of
// the leftmost match in s, or nil when there is no match.
func (r *Regexp) FindStringIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringIndex(s)
	}
	return r.pcreFindStringIndex(s)
}

// FindStringSubmatch returns the leftmost match in s and its submatches, or
// nil when there is no match. Submatches that did not participate are "".
func (r *Regexp) FindStringSubmatch(s string) []string {
	if r.core != nil {
		return r.core.FindStringSubmatch(s)
	}
	return r.pcreFindStringSubmatch(s)
}

// FindAllString returns up to n successive matches in s; n < 0 means all
// matches. It returns nil when there is no match.
func (r *Regexp) FindAllString(s string, n int) []string {
	if r.core != nil {
		return r.core.FindAllString(s, n)
	}
	return r.pcreFindAllString(s, n)
}

// FindAllStringIndex returns the byte offsets of up to n successive matches
// in s; n < 0 means all matches. It returns nil when there is no match.
func (r *Regexp) FindAllStringIndex(s string, n int) [][]int {
	if r.core != nil {
		return r.core.FindAllStringIndex(s, n)
	}
	return r.pcreFindAllStringIndex(s, n)
}

// ReplaceAllString returns src with every match replaced by repl. Submatch
// references like $1 inside repl are expanded.
func (r *Regexp) ReplaceAllString(src, repl string) string {
	if r.core != nil {
		return r.core.ReplaceAllString(src, repl)
	}
	return r.pcreReplaceAllString(src, repl)
}

// Split slices s around matches of the pattern into at most n substrings;
// n < 0 means no limit.
func (r *Regexp) Split(s string, n int) []string {
	if r.core != nil {
		return r.core.Split(s, n)
	}
	return r.pcreSplit(s, n)
}

// Longest switches the pattern to leftmost-longest matching. It only
// applies to the coregex backend and must not be called concurrently with
// matches.
func (r *Regexp) Longest() {
	if r.core != nil {
		r.core.Longest()
	}
}
