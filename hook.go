package matchable

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

// DecodeHook returns a [mapstructure.DecodeHookFunc] that decodes config
// scalars into [Matchable] and [RegexOnly] fields, for koanf- and
// viper-style loaders. Non-string scalars are stringified with cast before
// classification, so a bare 404 in YAML becomes the literal "404" rather
// than a decode error.
func DecodeHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data any) (any, error) {
		switch t {
		case reflect.TypeFor[Matchable]():
			s, ok := scalarString(data)
			if !ok {
				return data, nil
			}
			return Parse(s)
		case reflect.TypeFor[RegexOnly]():
			s, ok := scalarString(data)
			if !ok {
				return data, nil
			}
			return ParseRegexOnly(s)
		}
		return data, nil
	}
}

// scalarString renders scalar config values as strings. Aggregates are left
// alone for mapstructure to reject with its own error.
func scalarString(data any) (string, bool) {
	switch reflect.ValueOf(data).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer:
		return "", false
	}
	s, err := cast.ToStringE(data)
	if err != nil {
		return "", false
	}
	return s, true
}
