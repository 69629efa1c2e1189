package matchable

// Bridging for the regexp2 backend. regexp2 reports match positions as rune
// offsets; everything here converts them to the byte offsets the rest of the
// package reports.

func (r *Regexp) pcreMatchString(s string) bool {
	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

func (r *Regexp) pcreFindString(s string) string {
	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}
	return m.String()
}

func (r *Regexp) pcreFindStringIndex(s string) []int {
	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}
	start, end := byteSpan(s, m.Index, m.Length)
	return []int{start, end}
}

func (r *Regexp) pcreFindStringSubmatch(s string) []string {
	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}
	groups := m.Groups()
	out := make([]string, len(groups))
	for i := range groups {
		out[i] = groups[i].String()
	}
	return out
}

func (r *Regexp) pcreFindAllString(s string, n int) []string {
	var out []string
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && len(out) >= n {
			break
		}
		out = append(out, m.String())
		m, err = r.pcre.FindNextMatch(m)
	}
	return out
}

func (r *Regexp) pcreFindAllStringIndex(s string, n int) [][]int {
	var out [][]int
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && len(out) >= n {
			break
		}
		start, end := byteSpan(s, m.Index, m.Length)
		out = append(out, []int{start, end})
		m, err = r.pcre.FindNextMatch(m)
	}
	return out
}

func (r *Regexp) pcreReplaceAllString(src, repl string) string {
	out, err := r.pcre.Replace(src, repl, -1, -1)
	if err != nil {
		return src
	}
	return out
}

func (r *Regexp) pcreSplit(s string, n int) []string {
	if n == 0 {
		return nil
	}
	parts := make([]string, 0)
	last := 0
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n > 0 && len(parts)+1 >= n {
			break
		}
		start, end := byteSpan(s, m.Index, m.Length)
		parts = append(parts, s[last:start])
		last = end
		m, err = r.pcre.FindNextMatch(m)
	}
	return append(parts, s[last:])
}

// byteSpan converts a rune offset and rune length into byte offsets in s.
func byteSpan(s string, runeStart, runeLen int) (int, int) {
	return byteOffset(s, runeStart), byteOffset(s, runeStart+runeLen)
}

// byteOffset returns the byte index of the rune at runeIndex, or len(s) when
// runeIndex is past the last rune.
func byteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == runeIndex {
			return i
		}
		n++
	}
	return len(s)
}
