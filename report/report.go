// Package report carries diagnostics out of the scanner, parser,
// resolver, and interpreter without each of those packages importing
// fmt/os directly. Exit-status decisions stay in the caller; this
// package only formats each diagnostic and records what happened.
package report

import (
	"fmt"
	"io"

	"github.com/midbel/lox/token"
)

// Reporter receives diagnostics as pipeline stages find them. Static
// errors (scan/parse/resolve) and runtime errors are reported through
// separate methods so a single Reporter can track both kinds of
// failure independently.
type Reporter interface {
	Error(line int, message string)
	ErrorAt(tok token.Token, message string)
	RuntimeError(line int, message string)
}

// Console is the default Reporter: writes one line per diagnostic to
// w in "[line N]: WHERE: MESSAGE" format, and latches HadError /
// HadRuntimeError so callers can tell a clean run from a failed one.
type Console struct {
	w               io.Writer
	HadError        bool
	HadRuntimeError bool
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Reset clears both error flags, as required between REPL lines.
func (c *Console) Reset() {
	c.HadError = false
	c.HadRuntimeError = false
}

func (c *Console) Error(line int, message string) {
	c.report(line, "", message)
}

func (c *Console) ErrorAt(tok token.Token, message string) {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}
	c.report(tok.Line, where, message)
}

func (c *Console) RuntimeError(line int, message string) {
	fmt.Fprintf(c.w, "[line %d]: %s\n", line, message)
	c.HadRuntimeError = true
}

func (c *Console) report(line int, where, message string) {
	fmt.Fprintf(c.w, "[line %d]: %s: %s\n", line, where, message)
	c.HadError = true
}
