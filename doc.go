// Package matchable provides a config-friendly value that matches text
// against either an exact string or a compiled regular expression.
//
// Whether a raw string denotes a literal or a pattern is decided by [Parse]
// using a slash convention: a string enclosed in slashes, optionally followed
// by flag letters, compiles to a pattern, and any other string stays an
// exact-match literal. A leading slash without a closing one is not enough,
// so "/ab" remains the literal "/ab".
//
//	m := matchable.MustParse(`/-?\d+/`)
//	m.MatchString("-42") // true
//
//	m = matchable.MustParse("v1.2.3")
//	m.MatchString("v1.2.3") // true
//	m.MatchString("v1.2.30") // false
//
// Recognized flags are "i" (case-insensitive), "m" (multi-line anchors), and
// "s" (dot matches newline); unrecognized flag letters are ignored.
//
// [Matchable] and the pattern-only [RegexOnly] unmarshal from text, JSON, and
// YAML, bind as command-line flags, and decode from koanf- or viper-style
// config maps through [DecodeHook]. Patterns compile with coregex
// (RE2-compatible) and transparently fall back to [regexp2] when the pattern
// uses PCRE-only constructs such as lookarounds or backreferences.
package matchable
