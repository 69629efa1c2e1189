// Package pcre detects regular expression constructs that need a
// PCRE-compatible engine instead of the RE2 subset.
package pcre
