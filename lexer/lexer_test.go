package lexer

import (
	"io"
	"testing"

	"github.com/midbel/lox/report"
	"github.com/midbel/lox/token"
)

func scanKinds(t *testing.T, source string) []token.Kind {
	t.Helper()
	rep := report.NewConsole(io.Discard)
	toks := New(source, rep).ScanTokens()
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestScanTokensPunctuation(t *testing.T) {
	got := scanKinds(t, "(){},.-+;*")
	want := []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star,
		token.EOF,
	}
	assertKinds(t, got, want)
}

func TestScanTokensTwoCharOperators(t *testing.T) {
	got := scanKinds(t, "! != = == > >= < <=")
	want := []token.Kind{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual,
		token.EOF,
	}
	assertKinds(t, got, want)
}

func TestScanTokensComment(t *testing.T) {
	got := scanKinds(t, "// a comment\nvar")
	want := []token.Kind{token.Var, token.EOF}
	assertKinds(t, got, want)
}

func TestScanTokensString(t *testing.T) {
	rep := report.NewConsole(io.Discard)
	toks := New(`"hello world"`, rep).ScanTokens()
	if len(toks) != 2 {
		t.Fatalf("expected string token + EOF, got %d tokens", len(toks))
	}
	if toks[0].Kind != token.String || toks[0].Literal != "hello world" {
		t.Fatalf("unexpected string token: %+v", toks[0])
	}
}

func TestScanTokensUnterminatedString(t *testing.T) {
	rep := report.NewConsole(io.Discard)
	New(`"unterminated`, rep).ScanTokens()
	if !rep.HadError {
		t.Fatal("expected unterminated string to set HadError")
	}
}

func TestScanTokensNumber(t *testing.T) {
	rep := report.NewConsole(io.Discard)
	toks := New("123.45", rep).ScanTokens()
	if toks[0].Kind != token.Number || toks[0].Literal.(float64) != 123.45 {
		t.Fatalf("unexpected number token: %+v", toks[0])
	}
}

func TestScanTokensKeywordsAndIdentifiers(t *testing.T) {
	got := scanKinds(t, "class orange")
	want := []token.Kind{token.Class, token.Identifier, token.EOF}
	assertKinds(t, got, want)
}

func TestScanTokensLineTracking(t *testing.T) {
	rep := report.NewConsole(io.Discard)
	toks := New("var a = 1;\nvar b = 2;", rep).ScanTokens()
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		if tok.Line < 1 {
			t.Fatalf("token %v has invalid line", tok)
		}
	}
	last := toks[len(toks)-1]
	if last.Line != 2 {
		t.Fatalf("expected EOF on line 2, got %d", last.Line)
	}
}

func TestScanTokensUnexpectedCharacter(t *testing.T) {
	rep := report.NewConsole(io.Discard)
	New("@", rep).ScanTokens()
	if !rep.HadError {
		t.Fatal("expected unexpected character to set HadError")
	}
}

func assertKinds(t *testing.T, got, want []token.Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("kind count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kind %d: got %v want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}
