package argparse

import (
	"os"

	"golang.org/x/term"
)

// WidthSentinel is returned by width probes that cannot determine the
// terminal size, e.g. when output is redirected or the host has no usable
// terminal.
const WidthSentinel = -1

// minTerminalWidth is the narrowest width the usage renderer lays out for.
// Narrower or unknown terminals fall back to it.
const minTerminalWidth = 80

// TerminalWidth reports the column count of the terminal attached to
// stdout, or WidthSentinel when the size query fails. It is the default
// width probe for new parsers.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return WidthSentinel
	}
	return width
}
