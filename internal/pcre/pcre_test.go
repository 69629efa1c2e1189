package pcre

import "testing"

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{name: "plain", pattern: "a+b*c?", want: false},
		{name: "characterClass", pattern: `[a-z]\d+`, want: false},
		{name: "alternation", pattern: "cat|dog", want: false},
		{name: "inlineFlags", pattern: "(?im)^err", want: false},
		{name: "lookahead", pattern: "a(?=b)", want: true},
		{name: "negativeLookahead", pattern: "a(?!b)", want: true},
		{name: "lookbehind", pattern: "(?<=a)b", want: true},
		{name: "negativeLookbehind", pattern: "(?<!a)b", want: true},
		{name: "atomicGroup", pattern: "(?>ab)c", want: true},
		{name: "conditional", pattern: "(?(1)a|b)", want: true},
		{name: "comment", pattern: "(?#note)a", want: true},
		{name: "controlVerb", pattern: "a(*FAIL)", want: true},
		{name: "backreference", pattern: `(\w+) \1`, want: true},
		{name: "escapedBackslashDigit", pattern: `\\1`, want: false},
		{name: "namedBackreference", pattern: `(?P<w>\w+) \k<w>`, want: true},
		{name: "stdNamedGroup", pattern: `(?P<id>\d+)`, want: false},
		{name: "dotNetNamedGroup", pattern: `(?<id>\d+)`, want: true},
		{name: "quotedNamedGroup", pattern: `(?'id'\d+)`, want: true},
		{name: "hexBraceEscape", pattern: `\x{1F600}`, want: true},
		{name: "resetMatchStart", pattern: `foo\Kbar`, want: true},
		{name: "subjectStartAnchor", pattern: `\Afoo`, want: true},
		{name: "subjectEndAnchor", pattern: `foo\z`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Required(tt.pattern); got != tt.want {
				t.Fatalf("Required(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}
