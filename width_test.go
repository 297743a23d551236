package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalWidth(t *testing.T) {
	// Depending on where the tests run stdout may or may not be a terminal;
	// either way the probe must report a positive width or the sentinel,
	// never anything else.
	width := TerminalWidth()
	if width != WidthSentinel {
		assert.Positive(t, width)
	}
}
