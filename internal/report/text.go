package report

import (
	"strings"

	"golang.org/x/text/width"
)

// DisplayWidth counts terminal columns: East Asian wide and fullwidth runes
// take two.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// Truncate cuts s so it occupies at most n terminal columns.
func Truncate(s string, n int) string {
	if DisplayWidth(s) <= n {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := runeWidth(r)
		if used+w > n {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String()
}

// cell truncates s to n columns and pads it with spaces to exactly n.
func cell(s string, n int) string {
	return Pad(Truncate(s, n), n)
}

// Pad appends spaces to s until it occupies n columns.
func Pad(s string, n int) string {
	if pad := n - DisplayWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// rcell right-aligns s in n columns.
func rcell(s string, n int) string {
	s = Truncate(s, n)
	if pad := n - DisplayWidth(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

// orUnset renders an optional value, "(unset)" when absent or empty.
func orUnset(s *string) string {
	if s == nil || *s == "" {
		return unset
	}
	return *s
}

const unset = "(unset)"
