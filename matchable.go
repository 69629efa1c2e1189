package matchable

import "github.com/zeebo/xxh3"

// Matchable holds either an exact string or a compiled pattern and reports
// whether input text matches it. The zero value is the empty literal.
//
// A value never changes variant after construction and is cheap to copy.
// Compare values with [Matchable.Equal]: the == operator compares backend
// pointers for pattern values, not pattern text.
type Matchable struct {
	re  *Regexp // pattern variant when non-nil
	lit string  // literal variant otherwise
}

// Literal returns a value matching exactly s.
func Literal(s string) Matchable {
	return Matchable{lit: s}
}

// Pattern returns a value matching via the compiled pattern re. A nil re
// yields the zero value, the empty literal.
func Pattern(re *Regexp) Matchable {
	return Matchable{re: re}
}

// IsPattern reports whether the value holds a compiled pattern rather than
// a literal.
func (m Matchable) IsPattern() bool {
	return m.re != nil
}

// IsZero reports whether the value is the empty literal, the zero value.
func (m Matchable) IsZero() bool {
	return m.re == nil && m.lit == ""
}

// Regexp returns the underlying compiled pattern, or nil for literals.
func (m Matchable) Regexp() *Regexp {
	return m.re
}

// MatchString reports whether text matches the value. Literals compare
// byte-for-byte with no case folding or normalization; patterns search for a
// match anywhere in text.
func (m Matchable) MatchString(text string) bool {
	if m.re != nil {
		return m.re.MatchString(text)
	}
	return m.lit == text
}

// Match is [Matchable.MatchString] for a byte slice.
func (m Matchable) Match(b []byte) bool {
	if m.re != nil {
		return m.re.Match(b)
	}
	return m.lit == string(b)
}

// String returns the literal text, or for pattern values the pattern source
// without slashes or flags. It does not allocate.
func (m Matchable) String() string {
	if m.re != nil {
		return m.re.String()
	}
	return m.lit
}

// Equal reports whether two values are the same variant with the same text.
// Pattern values compare by source text alone, so flags and backend do not
// participate: "/ab/" and "/ab/i" parse to equal values.
func (m Matchable) Equal(o Matchable) bool {
	if m.re != nil || o.re != nil {
		return m.re != nil && o.re != nil && m.re.String() == o.re.String()
	}
	return m.lit == o.lit
}

// Hash returns a 64-bit hash of [Matchable.String], so values that are Equal
// hash identically. The variant does not participate, which means a literal
// and a pattern with the same text share a hash.
func (m Matchable) Hash() uint64 {
	return xxh3.HashString(m.String())
}
