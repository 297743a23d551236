package argparse

import "fmt"

// DefaultPrefix precedes the long form of most command-line options.
const DefaultPrefix = "--"

// OptionType describes the kind of value an option accepts over the command
// line.
type OptionType int

const (
	// TypeGroup does not describe a value at all but the way options combine:
	// options of this type are mutually exclusive, only one of them may be
	// used in a single invocation.
	TypeGroup OptionType = iota

	// TypeBoolean options need no explicit value; their presence over the
	// command line means true, absence means the declared default.
	TypeBoolean

	// TypeBit options accept only the discrete values 0 and 1.
	TypeBit

	// TypeInteger options accept strings parseable as integer values.
	TypeInteger

	// TypeFloat options accept strings parseable as floating-point values.
	TypeFloat

	// TypeString options accept any value. Everything given over the command
	// line starts out as a string.
	TypeString
)

func (t OptionType) String() string {
	switch t {
	case TypeGroup:
		return "GROUP"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeBit:
		return "BIT"
	case TypeInteger:
		return "INTEGER"
	case TypeFloat:
		return "FLOAT"
	case TypeString:
		return "STRING"
	default:
		return "UNKNOWN"
	}
}

// typeHint returns the value placeholder rendered after an option's name in
// the usage text.
func (t OptionType) typeHint() string {
	switch t {
	case TypeBoolean:
		return "<BOOL>"
	case TypeBit:
		return "<BIT>"
	case TypeInteger:
		return "<INT>"
	case TypeFloat:
		return "<FLOAT>"
	default:
		return "<STRING>"
	}
}

// Option represents a single command-line option, declared by the host
// program before parsing.
type Option struct {
	// Prefix precedes the long name in the rendered usage text. Left empty it
	// defaults to "--" at registration. The token scanner always strips a
	// fixed two-character prefix, so a custom prefix affects rendering only.
	Prefix string

	// ShortName and LongName are the option's aliases. At least one must be
	// non-empty.
	ShortName string
	LongName  string

	// Type describes the values the option accepts.
	Type OptionType

	// Value is the option's effective value. It may be seeded at declaration
	// and is assigned by the parser when the option appears over the command
	// line. Values are opaque strings; no conformance check against the
	// declared type is performed.
	Value string

	// DefaultValue applies when the option is absent from the command line.
	DefaultValue string

	// Help is a short description shown in the usage text. It may contain
	// @R/@B/@G color markers.
	Help string
}

// NewOption declares an option with the default "--" prefix. value seeds the
// effective value, defaultValue applies when the option never appears over
// the command line.
func NewOption(shortName, longName string, typ OptionType, value, defaultValue, help string) *Option {
	return &Option{
		Prefix:       DefaultPrefix,
		ShortName:    shortName,
		LongName:     longName,
		Type:         typ,
		Value:        value,
		DefaultValue: defaultValue,
		Help:         help,
	}
}

// ValueRequired reports whether an explicit value must be given over the
// command line. Boolean options never require one; their presence alone is a
// value. Every other type requires one unless a default is declared.
func (o *Option) ValueRequired() bool {
	return o.Type != TypeBoolean && o.DefaultValue == ""
}

// String renders a debug form of the option. Long help texts are trimmed to
// keep the output readable.
func (o *Option) String() string {
	help := o.Help
	if len(help) > 23 {
		help = help[:20] + "..."
	}
	return fmt.Sprintf("<ArgparseOption shortName('%s'), longName('%s'), value('%s'), optionType('%s'), help('%s')>",
		o.ShortName, o.LongName, o.Value, o.Type, help)
}
