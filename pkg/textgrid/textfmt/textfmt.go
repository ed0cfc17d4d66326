// Package textfmt provides the string padding helpers used to lay out grid cells.
//
// Widths are counted in Unicode code points, not display columns.
package textfmt

import "strings"

// Len returns the width of s in code points.
func Len(s string) int {
	return len([]rune(s))
}

// Repeat returns s repeated n times. A non-positive n yields "".
func Repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

// PadLeft right-justifies s in a field of width, prepending fill.
// A string already at or beyond width is returned unchanged.
func PadLeft(s string, width int, fill string) string {
	return Repeat(fill, width-Len(s)) + s
}

// PadRight left-justifies s in a field of width, appending fill.
func PadRight(s string, width int, fill string) string {
	return s + Repeat(fill, width-Len(s))
}

// PadCenter centers s in a field of width. The smaller half of the padding
// goes before s.
func PadCenter(s string, width int, fill string) string {
	total := width - Len(s)
	if total <= 0 {
		return s
	}
	before := total / 2
	return Repeat(fill, before) + s + Repeat(fill, total-before)
}

// Join concatenates parts with sep between them and wraps the result in
// prefix and suffix.
func Join(prefix string, parts []string, sep, suffix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for i, p := range parts {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(p)
	}
	b.WriteString(suffix)
	return b.String()
}
