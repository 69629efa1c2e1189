package matchable

import (
	"flag"

	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*Matchable)(nil)
	_ flag.Getter = (*Matchable)(nil)
	_ pflag.Value = (*RegexOnly)(nil)
	_ flag.Getter = (*RegexOnly)(nil)
)

// Set implements [pflag.Value] and [flag.Value] by classifying s with
// [Parse], so a flag accepts either a literal or a "/pattern/flags" value.
func (m *Matchable) Set(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Type implements [pflag.Value].
func (m *Matchable) Type() string { return "matchable" }

// Get implements [flag.Getter], returning the current [Matchable].
func (m *Matchable) Get() any { return *m }

// Set implements [pflag.Value] and [flag.Value], compiling the whole of s
// as a pattern.
func (r *RegexOnly) Set(s string) error {
	v, err := ParseRegexOnly(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Type implements [pflag.Value].
func (r *RegexOnly) Type() string { return "regexp" }

// Get implements [flag.Getter], returning the underlying [*Regexp].
func (r *RegexOnly) Get() any { return r.Regexp }
