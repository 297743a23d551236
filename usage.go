package argparse

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshiayush/argparse/pkg/colorenc"
	"github.com/joshiayush/argparse/pkg/textutil"
)

const (
	// optionIndent precedes every option entry in the usage text.
	optionIndent = "    "

	// helpIndent precedes every help line under an option entry.
	helpIndent = "        "
)

// RenderUsage builds the usage text for the registered options: a summary
// line naming every option, a parenthesized alternation of the
// mutual-exclusion group, and one entry per non-group option with its type
// hint and help text. The summary wraps against the probed terminal width,
// never narrower than 80 columns.
func (p *Parser) RenderUsage() string {
	width := p.width()
	if width < minTerminalWidth {
		// Covers the WidthSentinel probe failure case too.
		width = minTerminalWidth
	}

	var b strings.Builder
	header := "Usage: " + p.progName + " "
	b.WriteString(header)

	// The flag summary tracks a running width against the space left of the
	// header. Once a line fills up the summary continues on the next line,
	// left-padded to the header width, and the remaining budget doubles
	// rather than being recomputed from the terminal width.
	budget := width - len(header)
	pad := strings.Repeat(" ", len(header))
	lineWidth := 0
	var groups []string
	for _, opt := range p.registry.all() {
		if opt.Type == TypeGroup {
			groups = append(groups, canonicalName(opt))
			continue
		}
		entry := summaryEntry(opt)
		if lineWidth+len(entry) >= budget {
			b.WriteString("\n" + pad)
			budget *= 2
			lineWidth = 0
		}
		b.WriteString(entry)
		lineWidth += len(entry)
	}
	if len(groups) > 0 {
		b.WriteString("(" + strings.Join(groups, "|") + ")")
	}
	b.WriteString("\n\n")

	for _, opt := range p.registry.all() {
		if opt.Type == TypeGroup {
			continue
		}
		b.WriteString(optionIndent)
		switch {
		case opt.ShortName != "" && opt.LongName != "":
			fmt.Fprintf(&b, "-%s, %s%s=%s", opt.ShortName, opt.Prefix, opt.LongName, opt.Type.typeHint())
		case opt.LongName != "":
			fmt.Fprintf(&b, "%s%s=%s", opt.Prefix, opt.LongName, opt.Type.typeHint())
		default:
			fmt.Fprintf(&b, "-%s=%s", opt.ShortName, opt.Type.typeHint())
		}
		b.WriteByte('\n')
		if opt.Help == "" {
			continue
		}
		for _, line := range wrapHelp(opt.Help, width-len(helpIndent)) {
			b.WriteString(helpIndent + line + "\n")
		}
	}
	return b.String()
}

// summaryEntry renders one option for the flag summary, e.g. "[-f|--foo]".
func summaryEntry(opt *Option) string {
	var b strings.Builder
	b.WriteByte('[')
	if opt.ShortName != "" {
		b.WriteString("-" + opt.ShortName)
		if opt.LongName != "" {
			b.WriteByte('|')
		}
	}
	if opt.LongName != "" {
		b.WriteString(opt.Prefix + opt.LongName)
	}
	b.WriteByte(']')
	return b.String()
}

func wrapHelp(help string, width int) []string {
	lines, err := textutil.WrapText(help, width, textutil.Options{
		Trim:         true,
		CollapseTabs: true,
		Strategy:     textutil.StrategyConsole,
	})
	if err != nil {
		return []string{help}
	}
	return lines
}

// PrintUsage writes the usage text to stdout, followed by the description
// and the epilog when given. Every block passes through the color encoder,
// so inline @R/@B/@G markers render and each block carries a trailing reset.
func (p *Parser) PrintUsage() {
	p.writeUsage(p.stdout)
}

func (p *Parser) writeUsage(w io.Writer) {
	usage := p.usage
	if usage == "" {
		usage = p.RenderUsage()
	}
	fmt.Fprint(w, colorenc.Encode(usage+"\n"))
	if p.description != "" {
		fmt.Fprint(w, colorenc.Encode("\n"+p.description+"\n"))
	}
	if p.epilog != "" {
		fmt.Fprint(w, colorenc.Encode("\n"+p.epilog+"\n"))
	}
}

// WrapText wraps text the way the usage renderer does, translating strategy
// failures into this package's error taxonomy. See [textutil.WrapText].
func WrapText(text string, width int, opts textutil.Options) ([]string, error) {
	lines, err := textutil.WrapText(text, width, opts)
	if err != nil {
		return nil, NewError(ErrUnsupportedWrapStrategy, err)
	}
	return lines, nil
}
