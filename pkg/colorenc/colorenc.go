// Package colorenc rewrites inline color markers into ANSI escape
// sequences for terminal output.
package colorenc

import "strings"

const (
	red   = "\x1b[0;31m"
	blue  = "\x1b[0;34m"
	green = "\x1b[0;32m"

	// Reset restores the terminal's default rendition. Encode appends it to
	// every processed string.
	Reset = "\x1b[0m"
)

// Encode replaces the markers @R, @B, and @G with the red, blue, and green
// escape sequences and appends a single trailing reset. A literal "@"
// immediately before a marker escapes it: "@@R" renders as the text "@R"
// with no color change. Strings without markers still receive the reset.
func Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(Reset))
	for i := 0; i < len(s); i++ {
		if s[i] != '@' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		if s[i+1] == '@' && i+2 < len(s) && colorOf(s[i+2]) != "" {
			b.WriteByte('@')
			b.WriteByte(s[i+2])
			i += 2
			continue
		}
		if c := colorOf(s[i+1]); c != "" {
			b.WriteString(c)
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	b.WriteString(Reset)
	return b.String()
}

func colorOf(c byte) string {
	switch c {
	case 'R':
		return red
	case 'B':
		return blue
	case 'G':
		return green
	default:
		return ""
	}
}
