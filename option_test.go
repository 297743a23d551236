package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption(t *testing.T) {
	t.Parallel()

	t.Run("default prefix", func(t *testing.T) {
		t.Parallel()
		opt := NewOption("f", "foo", TypeBoolean, "", "false", "Help text.")
		assert.Equal(t, "--", opt.Prefix)
	})
	t.Run("value required by type and default", func(t *testing.T) {
		t.Parallel()
		types := []OptionType{TypeGroup, TypeBoolean, TypeBit, TypeInteger, TypeFloat, TypeString}
		for _, typ := range types {
			opt := NewOption("f", "foo", typ, "", "", "Help text.")
			if typ == TypeBoolean {
				assert.False(t, opt.ValueRequired(), "boolean presence is its own value")
			} else {
				assert.True(t, opt.ValueRequired(), "type %s without a default requires a value", typ)
			}
		}
		withDefault := NewOption("f", "foo", TypeInteger, "", "42", "Help text.")
		assert.False(t, withDefault.ValueRequired())
	})
	t.Run("debug form", func(t *testing.T) {
		t.Parallel()
		opt := NewOption("f", "foo", TypeBoolean, "", "false", "Help text.")
		want := "<ArgparseOption shortName('f'), longName('foo'), value(''), optionType('BOOLEAN'), help('Help text.')>"
		assert.Equal(t, want, opt.String())
	})
	t.Run("debug form trims long help", func(t *testing.T) {
		t.Parallel()
		opt := NewOption("f", "foo", TypeBoolean, "", "false",
			"This help text is written so lengthy just because we want to test the trimming behavior.")
		assert.Contains(t, opt.String(), "help('This help text is wr...')")
	})
}

func TestOptionTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GROUP", TypeGroup.String())
	assert.Equal(t, "BOOLEAN", TypeBoolean.String())
	assert.Equal(t, "BIT", TypeBit.String())
	assert.Equal(t, "INTEGER", TypeInteger.String())
	assert.Equal(t, "FLOAT", TypeFloat.String())
	assert.Equal(t, "STRING", TypeString.String())
	assert.Equal(t, "UNKNOWN", OptionType(99).String())
}
