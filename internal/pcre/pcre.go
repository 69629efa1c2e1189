package pcre

import "strings"

// tokens lists PCRE2-only syntax outside the RE2 subset accepted by coregex,
// based on pcre2syntax.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var tokens = []string{
	// Lookahead/lookbehind assertions, atomic and non-atomic.
	"(?=", "(?!", "(?<=", "(?<!",
	"(*pla:", "(*positive_lookahead:", "(*nla:", "(*negative_lookahead:",
	"(*plb:", "(*positive_lookbehind:", "(*nlb:", "(*negative_lookbehind:",
	"(?*", "(*napla:", "(*non_atomic_positive_lookahead:",
	"(?<*", "(*naplb:", "(*non_atomic_positive_lookbehind:",
	// Substring scan assertion and script runs.
	"(*scan_substring:", "(*scs:",
	"(*script_run:", "(*sr:", "(*atomic_script_run:", "(*asr:",
	// Backtracking control verbs.
	"(*ACCEPT)", "(*FAIL)", "(*F)", "(*MARK:", "(*:",
	"(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
	// Option setting.
	"(*LIMIT_DEPTH=", "(*LIMIT_HEAP=", "(*LIMIT_MATCH=",
	"(*CASELESS_RESTRICT)", "(*NOTEMPTY)", "(*NOTEMPTY_ATSTART)",
	"(*NO_AUTO_POSSESS)", "(*NO_DOTSTAR_ANCHOR)", "(*NO_JIT)",
	"(*NO_START_OPT)", "(*TURKISH_CASING)", "(*UTF)", "(*UCP)",
	// Newline conventions and what \R matches.
	"(*CR)", "(*LF)", "(*CRLF)", "(*ANYCRLF)", "(*ANY)", "(*NUL)",
	"(*BSR_ANYCRLF)", "(*BSR_UNICODE)",
	// Atomic, branch reset, conditional, and comment groups.
	"(?>", "(*atomic:", "(?|", "(?(", "(?#",
	// Recursion and subroutine calls.
	"(?R)", "(?P>", "(?&",
	// Perl extended character classes and callouts.
	"(?[", "(?C",
	// Escapes and character types RE2 does not support.
	`\C`, `\h`, `\H`, `\v`, `\V`, `\R`, `\X`, `\N`, `\K`,
	`\e`, `\f`, `\a`, `\o{`, `\x{`, `\p{`, `\P{`,
	// Named backreferences and subroutine calls.
	`\k<`, `\k'`, `\k{`, `\g<`, `\g'`, "(?P=",
	// Anchors beyond ^ and $.
	`\A`, `\Z`, `\z`, `\G`,
}

// Required reports whether pattern uses features only a PCRE-compatible
// engine can execute.
func Required(pattern string) bool {
	for _, tok := range tokens {
		if strings.Contains(pattern, tok) {
			return true
		}
	}
	return hasBackreference(pattern) || hasNonStdNamedGroup(pattern)
}

// hasBackreference reports \1 through \9 numbered backreferences, skipping
// escaped backslashes so `\\1` does not count.
func hasBackreference(pattern string) bool {
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}
		if !escaped && i+1 < len(pattern) {
			if next := pattern[i+1]; next >= '1' && next <= '9' {
				return true
			}
		}
		escaped = !escaped
	}
	return false
}

// hasNonStdNamedGroup reports (?<name>...) and (?'name'...) named groups.
// RE2 accepts the (?P<name>...) spelling only.
func hasNonStdNamedGroup(pattern string) bool {
	if strings.Contains(pattern, "(?P<") {
		return false
	}
	return strings.Contains(pattern, "(?<") || strings.Contains(pattern, "(?'")
}
