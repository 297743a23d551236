package argparse

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joshiayush/argparse/pkg/suggest"
)

// trueSentinel is the value boolean options receive when present over the
// command line without an explicit value.
const trueSentinel = "true"

// prefixLen is the number of characters stripped from the front of every
// option token before resolution. The strip is fixed at two characters
// regardless of the prefix declared on an option.
const prefixLen = len(DefaultPrefix)

// Parser holds the declared options for a program and parses its argument
// vector. All mutable state belongs to a single Parser bound to one
// invocation; parsers are not safe for concurrent use.
type Parser struct {
	progName    string
	usage       string
	description string
	epilog      string

	args     []string
	registry *registry

	stdout io.Writer
	stderr io.Writer
	width  func() int
	exit   func(int)
}

// ParserOptions specifies the collaborators and descriptive text for a
// Parser. Any nil field falls back to its default: the os.Stdout and
// os.Stderr sinks, the TerminalWidth probe, and os.Exit.
type ParserOptions struct {
	// ProgName overrides the program name derived from argv[0].
	ProgName string

	// Usage, Description, and Epilog are printed by PrintUsage. A non-empty
	// Usage replaces the generated usage text entirely.
	Usage       string
	Description string
	Epilog      string

	// Stdout and Stderr are the sinks for usage and error text.
	Stdout, Stderr io.Writer

	// TerminalWidth probes the terminal column count. It must return
	// WidthSentinel rather than fail when the width cannot be determined.
	TerminalWidth func() int

	// Exit terminates the process after a parse error. It must not return.
	Exit func(int)
}

// New creates a Parser for the given argument vector. argv carries the
// program name at index 0 followed by the tokens to parse, the way os.Args
// does. The vector is cloned so later mutation of argv does not affect the
// parser. The options parameter may be nil, in which case defaults are used.
func New(argv []string, options *ParserOptions) *Parser {
	options = checkAndSetParserOptions(options)
	progName := options.ProgName
	if progName == "" && len(argv) > 0 {
		// Basename with any extension dropped, so "./foo.exe" reports as
		// "foo" on every host.
		base := filepath.Base(argv[0])
		progName = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &Parser{
		progName:    progName,
		usage:       options.Usage,
		description: options.Description,
		epilog:      options.Epilog,
		args:        slices.Clone(argv),
		registry:    newRegistry(),
		stdout:      options.Stdout,
		stderr:      options.Stderr,
		width:       options.TerminalWidth,
		exit:        options.Exit,
	}
}

func checkAndSetParserOptions(opt *ParserOptions) *ParserOptions {
	if opt == nil {
		opt = &ParserOptions{}
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.TerminalWidth == nil {
		opt.TerminalWidth = TerminalWidth
	}
	if opt.Exit == nil {
		opt.Exit = os.Exit
	}
	return opt
}

// ProgName returns the program name the parser reports in usage and error
// text.
func (p *Parser) ProgName() string {
	return p.progName
}

// Register declares an option. It fails when the option declares neither a
// short nor a long name; the caller decides how to recover from that.
func (p *Parser) Register(opt *Option) error {
	return p.registry.register(opt)
}

// Parse consumes the argument vector given to New and assigns each
// recognized option its effective value. Any parse error is fatal: the usage
// text and an error line are written to stderr and the process exits with
// status 2.
//
// Mutual-exclusion groups are enforced per call: at most one group-typed
// option may be referenced in a single invocation.
func (p *Parser) Parse() {
	tokens := p.args
	if len(tokens) > 0 {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 && p.registry.len() > 0 {
		p.fatal(errors.New("Expected arguments but none is given."))
	}

	var lockedGroup string
	for _, token := range tokens {
		name := token
		value := ""
		hasValue := false
		if i := strings.Index(token, "="); i > 0 {
			name, value = token[:i], token[i+1:]
			hasValue = true
		}
		if len(name) >= prefixLen {
			name = name[prefixLen:]
		}

		opt, ok := p.registry.resolve(name)
		if !ok {
			p.fatalUnrecognized(name)
		}

		if opt.Type == TypeGroup {
			if lockedGroup != "" && lockedGroup != name {
				p.fatal(NewError(ErrGroupConflict,
					fmt.Errorf("%s and %s is a part of group, hence can be used only one at a time.",
						lockedGroup, name)))
			}
			lockedGroup = name
			if hasValue {
				opt.Value = value
			}
			continue
		}

		if hasValue {
			opt.Value = value
			continue
		}
		if opt.Type != TypeBoolean {
			p.fatal(NewError(ErrMissingValue, fmt.Errorf("Expected a value for argument %s.", name)))
		}
		opt.Value = trueSentinel
	}
}

// GetValue resolves name the way the parser does and returns the option's
// effective value: the parsed value when one was assigned, the declared
// default otherwise. The second return is false when name resolves to no
// registered option; unlike Parse, GetValue never terminates the process.
func (p *Parser) GetValue(name string) (string, bool) {
	opt, ok := p.registry.resolve(name)
	if !ok {
		return "", false
	}
	if opt.Value != "" {
		return opt.Value, true
	}
	return opt.DefaultValue, true
}

// fatalUnrecognized reports an unknown option token, suggesting close
// registered names when any exist.
func (p *Parser) fatalUnrecognized(name string) {
	message := fmt.Sprintf("Un-recognized argument %s.", name)
	if matches := suggest.FindSimilar(name, p.registry.names(), 1); len(matches) > 0 {
		message += fmt.Sprintf(" Did you mean %q?", matches[0])
	}
	p.fatal(NewError(ErrUnrecognizedArgument, errors.New(message)))
}

// fatal renders the usage text and the error line to stderr and terminates
// the process with status 2.
func (p *Parser) fatal(err error) {
	p.writeUsage(p.stderr)
	fmt.Fprintf(p.stderr, "%s: error: %v\n", p.progName, err)
	p.exit(2)
}
