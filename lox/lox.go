// Package lox wires the pipeline together: scan -> parse -> resolve ->
// interpret, plus the REPL/file-running surface around it.
package lox

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/midbel/lox/interpreter"
	"github.com/midbel/lox/lexer"
	"github.com/midbel/lox/parser"
	"github.com/midbel/lox/report"
	"github.com/midbel/lox/resolver"
)

// Status distinguishes a clean run, a scan/parse/resolve error, and a
// runtime error, so a caller's exit code can tell them apart. The
// concrete values follow the sysexits convention (see DESIGN.md):
// 0 / 65 / 70.
type Status int

const (
	StatusOK      Status = 0
	StatusDataErr Status = 65
	StatusRuntime Status = 70
)

// Lox owns the process-wide error flags and the interpreter's global
// environment, so state (globals, declared functions) persists across
// REPL lines the way a real process would. Diagnostics (scan/parse/
// resolve/runtime errors) are written to a separate stream from
// program output, so a `print` statement and a syntax error never
// land in the same sink.
type Lox struct {
	out    io.Writer
	report *report.Console
	interp *interpreter.Interpreter
}

// New builds an interpreter that writes print output to out and
// diagnostics to diagnostics. The two are kept apart so redirecting
// one never captures the other.
func New(out, diagnostics io.Writer) *Lox {
	reporter := report.NewConsole(diagnostics)
	return &Lox{
		out:    out,
		report: reporter,
		interp: interpreter.New(reporter, out),
	}
}

// Run executes one chunk of source against the persistent interpreter
// state and returns the run's Status. It never panics: parser-internal
// panics are recovered by the parser itself.
func (l *Lox) Run(source string) Status {
	l.report.Reset()

	scan := lexer.New(source, l.report)
	tokens := scan.ScanTokens()

	p := parser.New(tokens, l.report)
	stmts := p.Parse()

	if l.report.HadError {
		return StatusDataErr
	}

	res := resolver.New(l.report)
	depths := res.Resolve(stmts)

	if l.report.HadError {
		return StatusDataErr
	}

	l.interp.Interpret(stmts, depths)
	if l.report.HadRuntimeError {
		return StatusRuntime
	}
	return StatusOK
}

// RunFile reads and runs a whole source file.
func RunFile(path string, out, diagnostics io.Writer) Status {
	data, err := os.ReadFile(path)
	if err != nil {
		return StatusDataErr
	}
	return New(out, diagnostics).Run(string(data))
}

// RunPrompt implements the REPL: one line at a time, `\`-continuation,
// `exit` to quit, error flags reset between iterations.
func RunPrompt(in io.Reader, out, diagnostics io.Writer) {
	l := New(out, diagnostics)
	scanner := bufio.NewScanner(in)

	for {
		io.WriteString(out, "> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		var lines []string
		for strings.HasSuffix(line, `\`) {
			lines = append(lines, strings.TrimSuffix(line, `\`))
			io.WriteString(out, "... ")
			if !scanner.Scan() {
				break
			}
			line = scanner.Text()
		}
		lines = append(lines, line)

		source := strings.Join(lines, "\n")
		if strings.TrimSpace(source) == "exit" {
			return
		}
		l.Run(source)
	}
}
