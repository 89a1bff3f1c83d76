package lexer

import (
	"testing"

	"github.com/AlexxNica/ts2re/internal/token"
)

func TestNextToken_Declaration(t *testing.T) {
	input := `declare namespace Foo {
	// commento di riga
	const version: string = "1.0";
	fn(...args: any[]): void; /* blocco */
	type F = (x?: number) => boolean;
}`

	want := []struct {
		kind   token.Kind
		lexeme string
	}{
		{token.Declare, "declare"},
		{token.Namespace, "namespace"},
		{token.Ident, "Foo"},
		{token.LBrace, "{"},
		{token.Const, "const"},
		{token.Ident, "version"},
		{token.Colon, ":"},
		{token.Ident, "string"},
		{token.Assign, "="},
		{token.String, "1.0"},
		{token.Semi, ";"},
		{token.Ident, "fn"},
		{token.LParen, "("},
		{token.Ellipsis, "..."},
		{token.Ident, "args"},
		{token.Colon, ":"},
		{token.Ident, "any"},
		{token.LBracket, "["},
		{token.RBracket, "]"},
		{token.RParen, ")"},
		{token.Colon, ":"},
		{token.Ident, "void"},
		{token.Semi, ";"},
		{token.Type, "type"},
		{token.Ident, "F"},
		{token.Assign, "="},
		{token.LParen, "("},
		{token.Ident, "x"},
		{token.Question, "?"},
		{token.Colon, ":"},
		{token.Ident, "number"},
		{token.RParen, ")"},
		{token.Arrow, "=>"},
		{token.Ident, "boolean"},
		{token.Semi, ";"},
		{token.RBrace, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, w := range want {
		tok := l.NextToken()
		if tok.Kind != w.kind || tok.Lexeme != w.lexeme {
			t.Fatalf("token %d: got (%s, %q), want (%s, %q)", i, tok.Kind, tok.Lexeme, w.kind, w.lexeme)
		}
	}
}

func TestNextToken_Positions(t *testing.T) {
	l := New("a\n  b")
	a := l.NextToken()
	b := l.NextToken()
	if a.Pos.Line != 1 || a.Pos.Column != 1 {
		t.Fatalf("a position = %+v", a.Pos)
	}
	if b.Pos.Line != 2 || b.Pos.Column != 3 {
		t.Fatalf("b position = %+v", b.Pos)
	}
}

func TestNextToken_StringEscapes(t *testing.T) {
	l := New(`'it\'s' "a\tb"`)
	first := l.NextToken()
	if first.Kind != token.String || first.Lexeme != "it's" {
		t.Fatalf("single-quoted = (%s, %q)", first.Kind, first.Lexeme)
	}
	second := l.NextToken()
	if second.Kind != token.String || second.Lexeme != "a\tb" {
		t.Fatalf("double-quoted = (%s, %q)", second.Kind, second.Lexeme)
	}
}

// Un token che termina esattamente a fine input deve conservare l'ultimo
// carattere del lessema.
func TestNextToken_FlushAtEOF(t *testing.T) {
	tok := New("number").NextToken()
	if tok.Kind != token.Ident || tok.Lexeme != "number" {
		t.Fatalf("identifier at end of input = (%s, %q)", tok.Kind, tok.Lexeme)
	}
	num := New("42").NextToken()
	if num.Kind != token.Number || num.Lexeme != "42" {
		t.Fatalf("number at end of input = (%s, %q)", num.Kind, num.Lexeme)
	}
}

func TestTokens_EndsWithEOF(t *testing.T) {
	toks := New("interface X {}").Tokens()
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("expected trailing EOF, got %v", toks)
	}
}
