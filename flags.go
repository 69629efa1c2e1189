package matchable

import "github.com/dlclark/regexp2"

// Flags control how a pattern is compiled. The zero value compiles the
// pattern exactly as written.
type Flags uint8

const (
	// IgnoreCase makes matching case-insensitive (flag letter "i").
	IgnoreCase Flags = 1 << iota
	// Multiline lets ^ and $ match at line boundaries (flag letter "m").
	Multiline
	// DotAll lets . match newlines (flag letter "s").
	DotAll
)

// ParseFlags interprets the flag letters that may follow a slash-delimited
// pattern. Recognized letters are "i", "m", and "s". Every other character
// is ignored, so duplicates and unknown letters are not an error.
func ParseFlags(s string) Flags {
	var f Flags
	for _, r := range s {
		switch r {
		case 'i':
			f |= IgnoreCase
		case 'm':
			f |= Multiline
		case 's':
			f |= DotAll
		}
	}
	return f
}

// String returns the enabled flag letters in canonical "ims" order.
func (f Flags) String() string {
	b := make([]byte, 0, 3)
	if f&IgnoreCase != 0 {
		b = append(b, 'i')
	}
	if f&Multiline != 0 {
		b = append(b, 'm')
	}
	if f&DotAll != 0 {
		b = append(b, 's')
	}
	return string(b)
}

// options maps the flags to their regexp2 equivalents.
func (f Flags) options() regexp2.RegexOptions {
	opts := regexp2.None
	if f&IgnoreCase != 0 {
		opts |= regexp2.IgnoreCase
	}
	if f&Multiline != 0 {
		opts |= regexp2.Multiline
	}
	if f&DotAll != 0 {
		opts |= regexp2.Singleline
	}
	return opts
}
