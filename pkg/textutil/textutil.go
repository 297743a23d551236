// Package textutil provides text-wrapping helpers for terminal output.
package textutil

import (
	"errors"
	"fmt"
	"strings"
)

// StrategyConsole expands tab characters into spaces so wrapped lines keep
// their width budget on a terminal. It is the only implemented
// special-character handling strategy.
const StrategyConsole = "console"

// consoleTabWidth is the number of spaces a tab expands to under
// StrategyConsole.
const consoleTabWidth = 4

// ErrUnknownStrategy is returned when special-character handling requests a
// strategy the wrapper does not implement.
var ErrUnknownStrategy = errors.New("unknown special character handling strategy")

// Options control how WrapText splits text into lines.
type Options struct {
	// Trim collapses runs of spaces and tabs into single word separators.
	Trim bool

	// PreserveNewlines forces a line break wherever the input contains a
	// newline. When false newlines are treated as plain whitespace.
	PreserveNewlines bool

	// CollapseTabs rewrites special characters according to Strategy before
	// wrapping.
	CollapseTabs bool

	// Strategy names the special-character handling strategy used when
	// CollapseTabs is set.
	Strategy string

	// IndentContinuation prefixes every line after the first with
	// IndentString.
	IndentContinuation bool

	// IndentString is the prefix for continuation lines.
	IndentString string
}

type word struct {
	text       string
	breakAfter bool
}

// WrapText splits text into width-bounded lines. Words are packed greedily,
// each followed by its separator space; the final line is trimmed of
// trailing spaces. A single word longer than width is hard-split into
// width-sized chunks. The returned slice is finite and owned by the caller.
func WrapText(text string, width int, opts Options) ([]string, error) {
	if opts.CollapseTabs {
		if opts.Strategy != StrategyConsole {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, opts.Strategy)
		}
		text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", consoleTabWidth))
	}
	if width <= 0 {
		return []string{text}, nil
	}

	var lines []string
	push := func(line string) {
		if opts.IndentContinuation && len(lines) > 0 {
			line = opts.IndentString + line
		}
		lines = append(lines, line)
	}

	cur := ""
	for _, w := range splitWords(text, opts) {
		t := w.text
		// A word that cannot fit on any line is chunked.
		for len(t) > width {
			if cur != "" {
				push(cur)
				cur = ""
			}
			push(t[:width])
			t = t[width:]
		}
		if cur != "" && len(cur)+len(t) > width {
			push(cur)
			cur = ""
		}
		cur += t + " "
		if w.breakAfter {
			push(cur)
			cur = ""
		}
	}
	if trimmed := strings.TrimRight(cur, " "); trimmed != "" {
		push(trimmed)
	}
	return lines, nil
}

// splitWords tokenizes text into words, marking forced breaks at preserved
// newlines.
func splitWords(text string, opts Options) []word {
	if !opts.PreserveNewlines {
		text = strings.ReplaceAll(text, "\n", " ")
	}
	var fields []string
	if opts.Trim {
		fields = strings.FieldsFunc(text, func(r rune) bool { return r == ' ' || r == '\t' })
	} else {
		fields = strings.Split(text, " ")
	}
	var words []word
	for _, f := range fields {
		for {
			i := strings.IndexByte(f, '\n')
			if i < 0 {
				break
			}
			if i > 0 {
				words = append(words, word{text: f[:i], breakAfter: true})
			} else if len(words) > 0 {
				words[len(words)-1].breakAfter = true
			}
			f = f[i+1:]
		}
		if f != "" || !opts.Trim {
			words = append(words, word{text: f})
		}
	}
	return words
}

// Wrap splits text into lines of at most width columns, joining words with
// single spaces and dropping surrounding whitespace. Use WrapText for finer
// control over separators, newlines, and indentation.
func Wrap(text string, width int) []string {
	var lines []string
	cur := ""
	for _, w := range strings.Fields(text) {
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) > width:
			lines = append(lines, cur)
			cur = w
		default:
			cur += " " + w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
