package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/midbel/lox/lexer"
	"github.com/midbel/lox/parser"
	"github.com/midbel/lox/report"
	"github.com/midbel/lox/resolver"
)

// run scans, parses, resolves and interprets source against a fresh
// interpreter, returning everything printed plus the reporter whose
// flags tell whether an error was reported. If a static error stops
// the run before interpretation, the returned text is the diagnostics.
func run(t *testing.T, source string) (string, *report.Console) {
	t.Helper()
	var buf bytes.Buffer
	rep := report.NewConsole(&buf)

	toks := lexer.New(source, rep).ScanTokens()
	stmts := parser.New(toks, rep).Parse()
	if rep.HadError {
		return buf.String(), rep
	}

	depths := resolver.New(rep).Resolve(stmts)
	if rep.HadError {
		return buf.String(), rep
	}

	var out bytes.Buffer
	New(rep, &out).Interpret(stmts, depths)
	return out.String(), rep
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestInterpretStringConcatenation(t *testing.T) {
	out, rep := run(t, `print "hello" + " " + "world";`)
	if rep.HadRuntimeError {
		t.Fatalf("unexpected runtime error")
	}
	if got := lines(out); len(got) != 1 || got[0] != "hello world" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestInterpretBlockShadowing(t *testing.T) {
	out, rep := run(t, `
		var a = 1;
		var b = 2;
		{
			var a = 3;
			print a + b;
		}
		print a;
	`)
	if rep.HadRuntimeError {
		t.Fatalf("unexpected runtime error")
	}
	got := lines(out)
	want := []string{"5", "1"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("unexpected output: %v", got)
	}
}

func TestInterpretClosureCounter(t *testing.T) {
	out, rep := run(t, `
		fun make() {
			var i = 0;
			fun inc() {
				i = i + 1;
				print i;
			}
			return inc;
		}
		var counter = make();
		counter();
		counter();
		counter();
	`)
	if rep.HadRuntimeError {
		t.Fatalf("unexpected runtime error")
	}
	got := lines(out)
	want := []string{"1", "2", "3"}
	for idx, w := range want {
		if idx >= len(got) || got[idx] != w {
			t.Fatalf("unexpected output: %v", got)
		}
	}
}

func TestInterpretSuperclassMethodOverride(t *testing.T) {
	out, rep := run(t, `
		class A {
			speak() { print "A"; }
		}
		class B < A {
			speak() {
				super.speak();
				print "B";
			}
		}
		B().speak();
	`)
	if rep.HadRuntimeError {
		t.Fatalf("unexpected runtime error")
	}
	got := lines(out)
	want := []string{"A", "B"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("unexpected output: %v", got)
	}
}

func TestInterpretInitializerAndFieldMutation(t *testing.T) {
	out, rep := run(t, `
		class P {
			init(x) {
				this.x = x;
			}
		}
		var p = P(7);
		print p.x;
		p.x = p.x + 1;
		print p.x;
	`)
	if rep.HadRuntimeError {
		t.Fatalf("unexpected runtime error")
	}
	got := lines(out)
	want := []string{"7", "8"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("unexpected output: %v", got)
	}
}

func TestInterpretTypeMismatchIsRuntimeError(t *testing.T) {
	out, rep := run(t, `print 1 + "a";`)
	if !rep.HadRuntimeError {
		t.Fatalf("expected a runtime error")
	}
	if out != "" {
		t.Fatalf("expected no stdout on runtime error, got %q", out)
	}
}

func TestInterpretUninitializedVariableIsNil(t *testing.T) {
	out, rep := run(t, `var x; print x;`)
	if rep.HadRuntimeError {
		t.Fatalf("unexpected runtime error")
	}
	if got := lines(out); len(got) != 1 || got[0] != "nil" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestInterpretReturnValueFromInitializerIsStaticError(t *testing.T) {
	_, rep := run(t, `class C { init() { return 42; } }`)
	if !rep.HadError {
		t.Fatalf("expected a static error, not a runtime one")
	}
	if rep.HadRuntimeError {
		t.Fatalf("expected the error to be caught before interpretation ran")
	}
}
