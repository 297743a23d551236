package colorenc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("markers become escape sequences", func(t *testing.T) {
		t.Parallel()
		got := Encode("This is a @Rsample text@B to be @Gformatted.")
		want := "This is a \x1b[0;31msample text\x1b[0;34m to be \x1b[0;32mformatted.\x1b[0m"
		assert.Equal(t, want, got)
	})
	t.Run("doubled at escapes the marker", func(t *testing.T) {
		t.Parallel()
		got := Encode("This is a @@Rsample text@@B to be @@Gformatted.")
		want := "This is a @Rsample text@B to be @Gformatted.\x1b[0m"
		assert.Equal(t, want, got)
	})
	t.Run("plain text still gets one reset", func(t *testing.T) {
		t.Parallel()
		got := Encode("This is a sample text with no encoders.")
		assert.Equal(t, "This is a sample text with no encoders."+Reset, got)
		assert.Equal(t, 1, strings.Count(got, Reset))
	})
	t.Run("exactly one trailing reset", func(t *testing.T) {
		t.Parallel()
		got := Encode("a@Rb@B")
		assert.True(t, strings.HasSuffix(got, Reset))
		assert.Equal(t, 1, strings.Count(got, Reset))
	})
	t.Run("lone at passes through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "user@host"+Reset, Encode("user@host"))
		assert.Equal(t, "trailing@"+Reset, Encode("trailing@"))
	})
	t.Run("unknown marker letter is literal", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "@X text"+Reset, Encode("@X text"))
	})
	t.Run("empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, Reset, Encode(""))
	})
}
