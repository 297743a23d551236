// Package argparse provides command-line option declaration, parsing, and
// usage-text rendering for console programs. A program declares options with
// short and long aliases, value types, defaults, and mutual-exclusion groups;
// the parser then consumes the argument vector and either assigns each option
// its effective value or prints the usage text and terminates.
//
// The package favors explicit collaborators over hidden global state: the
// output sinks, the terminal-width probe, and the exit function are all
// injectable, which keeps parsers fully testable.
package argparse
