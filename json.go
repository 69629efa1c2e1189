package matchable

import "github.com/g-plane/matchable/internal/json"

// MarshalJSON encodes the value as a JSON string in its
// [Matchable.MarshalText] form.
func (m Matchable) MarshalJSON() ([]byte, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON decodes a JSON string and classifies it with [Parse]. Any
// other JSON value is an error, except null, which leaves the value
// unchanged per encoding/json convention.
func (m *Matchable) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalJSON encodes the pattern source as a JSON string.
func (r RegexOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Regexp.String())
}

// UnmarshalJSON decodes a JSON string and compiles the whole of it as a
// pattern. JSON null leaves the value unchanged.
func (r *RegexOnly) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseRegexOnly(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
