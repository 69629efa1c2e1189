package matchable

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = Matchable{}
	_ yaml.Unmarshaler = (*Matchable)(nil)
	_ yaml.Marshaler   = RegexOnly{}
	_ yaml.Unmarshaler = (*RegexOnly)(nil)
)

// MarshalYAML emits the value as a scalar in its [Matchable.MarshalText]
// form.
func (m Matchable) MarshalYAML() (any, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML decodes a string scalar and classifies it with [Parse].
// Non-string scalars are an error; see [DecodeHook] for lenient decoding.
func (m *Matchable) UnmarshalYAML(node *yaml.Node) error {
	s, err := yamlString(node)
	if err != nil {
		return err
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalYAML emits the bare pattern source as a scalar.
func (r RegexOnly) MarshalYAML() (any, error) {
	return r.Regexp.String(), nil
}

// UnmarshalYAML decodes a string scalar and compiles the whole of it as a
// pattern. Non-string scalars are an error.
func (r *RegexOnly) UnmarshalYAML(node *yaml.Node) error {
	s, err := yamlString(node)
	if err != nil {
		return err
	}
	v, err := ParseRegexOnly(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// yamlString returns the string content of node, following aliases. The
// yaml.v3 decoder hands any scalar to a string target using its raw text,
// so the tag check is what rejects bare numbers and booleans here.
func yamlString(node *yaml.Node) (string, error) {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return "", fmt.Errorf("line %d: cannot unmarshal %s into a string", node.Line, node.ShortTag())
	}
	return node.Value, nil
}
