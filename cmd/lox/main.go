// Command lox is the interpreter's entry point: one positional source
// file argument, or an interactive prompt when none is given. The
// -ast flag prints the parsed syntax tree instead of running the
// program.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midbel/lox/ast"
	"github.com/midbel/lox/lexer"
	"github.com/midbel/lox/lox"
	"github.com/midbel/lox/parser"
	"github.com/midbel/lox/report"
)

func main() {
	dumpAST := flag.Bool("ast", false, "print the parsed syntax tree instead of running the program")
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "usage: lox [-ast] [script]")
		os.Exit(64)
	}

	if *dumpAST {
		if flag.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "usage: lox -ast script")
			os.Exit(64)
		}
		os.Exit(int(printAST(flag.Arg(0))))
	}

	if flag.NArg() == 1 {
		status := lox.RunFile(flag.Arg(0), os.Stdout, os.Stderr)
		os.Exit(int(status))
	}

	lox.RunPrompt(os.Stdin, os.Stdout, os.Stderr)
}

// printAST scans and parses path without interpreting it, writing the
// parenthesized syntax tree to standard output. It never executes the
// program, so it is safe to point at a script with a runtime error.
func printAST(path string) lox.Status {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return lox.StatusDataErr
	}

	reporter := report.NewConsole(os.Stderr)
	tokens := lexer.New(string(data), reporter).ScanTokens()
	stmts := parser.New(tokens, reporter).Parse()
	if reporter.HadError {
		return lox.StatusDataErr
	}

	var printer ast.Printer
	fmt.Print(printer.PrintStmts(stmts))
	return lox.StatusOK
}
