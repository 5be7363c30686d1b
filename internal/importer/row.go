package importer

import "strings"

// Row is one parsed CSV record with its header names preserved in file
// order. Lookups go through Find so header spelling differences between
// institutions never leak into the parsers.
type Row struct {
	headers []string
	values  map[string]string
}

// NewRow builds a row from a header slice and the matching value slice.
// Short records pad with empty strings, long records drop the overflow.
func NewRow(headers, values []string) Row {
	m := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(values) {
			m[h] = values[i]
		} else {
			m[h] = ""
		}
	}
	return Row{headers: headers, values: m}
}

// Headers returns the raw header names in file order.
func (r Row) Headers() []string {
	return r.headers
}

// Find returns the value of the first column whose normalized header
// contains any of the candidate fragments, columns tried in file order
// and fragments in the caller's priority order. The second return is
// false when no column matches.
func (r Row) Find(candidates ...string) (string, bool) {
	for _, h := range r.headers {
		norm := normalizeHeader(h)
		for _, c := range candidates {
			if strings.Contains(norm, c) {
				return r.values[h], true
			}
		}
	}
	return "", false
}

// FindValue is Find without the presence flag, for callers that treat a
// missing column and an empty cell the same way.
func (r Row) FindValue(candidates ...string) string {
	v, _ := r.Find(candidates...)
	return v
}

// normalizeHeader lowercases and strips everything except letters,
// digits and spaces so "Posted Date" and "posted_date" compare equal.
func normalizeHeader(h string) string {
	var b strings.Builder
	b.Grow(len(h))
	for _, c := range strings.ToLower(h) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == ' ' {
			b.WriteRune(c)
		}
	}
	return strings.TrimSpace(b.String())
}
