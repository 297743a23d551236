package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSimilar(t *testing.T) {
	t.Parallel()

	candidates := []string{"verbose", "version", "output", "quiet"}

	t.Run("exact match ranks first", func(t *testing.T) {
		t.Parallel()
		got := FindSimilar("verbose", candidates, 3)
		assert.Equal(t, "verbose", got[0])
	})
	t.Run("prefix match is suggested", func(t *testing.T) {
		t.Parallel()
		got := FindSimilar("ver", candidates, 3)
		assert.Equal(t, []string{"verbose", "version"}, got)
	})
	t.Run("near miss is suggested", func(t *testing.T) {
		t.Parallel()
		got := FindSimilar("verbos", candidates, 1)
		assert.Equal(t, []string{"verbose"}, got)
	})
	t.Run("dissimilar input yields nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, FindSimilar("zzzzzz", candidates, 3))
	})
	t.Run("result count is capped", func(t *testing.T) {
		t.Parallel()
		got := FindSimilar("ver", candidates, 1)
		assert.Len(t, got, 1)
	})
	t.Run("empty target yields nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, FindSimilar("", candidates, 3))
		assert.Empty(t, FindSimilar("ver", candidates, 0))
	})
	t.Run("case insensitive", func(t *testing.T) {
		t.Parallel()
		got := FindSimilar("VERBOSE", candidates, 1)
		assert.Equal(t, []string{"verbose"}, got)
	})
}
