package matchable

import "encoding"

var (
	_ encoding.TextAppender    = Matchable{}
	_ encoding.TextMarshaler   = Matchable{}
	_ encoding.TextUnmarshaler = (*Matchable)(nil)
	_ encoding.TextAppender    = RegexOnly{}
	_ encoding.TextMarshaler   = RegexOnly{}
	_ encoding.TextUnmarshaler = (*RegexOnly)(nil)
)

// AppendText appends the textual form of m to b. Pattern values render in
// the parseable "/body/flags" form with flags in canonical order; literals
// render verbatim.
func (m Matchable) AppendText(b []byte) ([]byte, error) {
	if m.re == nil {
		return append(b, m.lit...), nil
	}
	b = append(b, '/')
	b = append(b, m.re.pattern...)
	b = append(b, '/')
	b = append(b, m.re.flags.String()...)
	return b, nil
}

// MarshalText implements [encoding.TextMarshaler]. The output round-trips
// through [Parse] for every pattern value and for any literal that does not
// itself satisfy the slash grammar.
func (m Matchable) MarshalText() ([]byte, error) {
	return m.AppendText(nil)
}

// UnmarshalText implements [encoding.TextUnmarshaler] by classifying text
// with [Parse].
func (m *Matchable) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// AppendText appends the bare pattern source to b.
func (r RegexOnly) AppendText(b []byte) ([]byte, error) {
	return append(b, r.Regexp.String()...), nil
}

// MarshalText implements [encoding.TextMarshaler], emitting the bare
// pattern source.
func (r RegexOnly) MarshalText() ([]byte, error) {
	return r.AppendText(nil)
}

// UnmarshalText implements [encoding.TextUnmarshaler], compiling the whole
// of text as a pattern.
func (r *RegexOnly) UnmarshalText(text []byte) error {
	v, err := ParseRegexOnly(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
