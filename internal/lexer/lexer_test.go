package lexer_test

import (
	"testing"

	"github.com/go-test/deep"

	"lilc/internal/diag"
	"lilc/internal/lexer"
	"lilc/internal/source"
	"lilc/internal/token"
)

// makeTestLexer builds a lexer over an in-memory file and collects its diagnostics.
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lc", []byte(input))
	bag := diag.NewBag(100)
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

func collect(lx *lexer.Lexer) []token.Token {
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func TestLexer_Program(t *testing.T) {
	lx, bag := makeTestLexer(`struct S { int a; };
int f(int x, bool b) {
    // comment
    cin >> x; cout << "hi\n"; # other comment
    x++; x--;
    if (!b && x <= 10 || x >= 2) { return x.a; }
    while (x != 0) { x = x - 1 * 2 / 3; }
    return x == 1 < 2 > 3;
}`)
	got := kinds(collect(lx))
	want := []token.Kind{
		token.KwStruct, token.Ident, token.LBrace, token.KwInt, token.Ident, token.Semicolon, token.RBrace, token.Semicolon,
		token.KwInt, token.Ident, token.LParen, token.KwInt, token.Ident, token.Comma, token.KwBool, token.Ident, token.RParen, token.LBrace,
		token.KwCin, token.Read, token.Ident, token.Semicolon, token.KwCout, token.Write, token.StringLit, token.Semicolon,
		token.Ident, token.PlusPlus, token.Semicolon, token.Ident, token.MinusMinus, token.Semicolon,
		token.KwIf, token.LParen, token.Bang, token.Ident, token.AndAnd, token.Ident, token.LtEq, token.IntLit, token.OrOr,
		token.Ident, token.GtEq, token.IntLit, token.RParen, token.LBrace, token.KwReturn, token.Ident, token.Dot, token.Ident,
		token.Semicolon, token.RBrace,
		token.KwWhile, token.LParen, token.Ident, token.BangEq, token.IntLit, token.RParen, token.LBrace, token.Ident, token.Assign,
		token.Ident, token.Minus, token.IntLit, token.Star, token.IntLit, token.Slash, token.IntLit, token.Semicolon, token.RBrace,
		token.KwReturn, token.Ident, token.EqEq, token.IntLit, token.Lt, token.IntLit, token.Gt, token.IntLit, token.Semicolon,
		token.RBrace, token.EOF,
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatalf("token kinds differ: %v", diff)
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestLexer_SpansMatchText(t *testing.T) {
	input := "int  abc;\n  true"
	lx, _ := makeTestLexer(input)
	for _, tok := range collect(lx) {
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("%s: span text %q != token text %q", tok.Kind, got, tok.Text)
		}
	}
}

func TestLexer_Peek(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	p := lx.Peek()
	n := lx.Next()
	if p != n || n.Text != "a" {
		t.Fatalf("Peek %+v, Next %+v", p, n)
	}
	if lx.Next().Text != "b" || lx.Next().Kind != token.EOF || lx.Next().Kind != token.EOF {
		t.Fatalf("stream after Peek broken")
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
		kind  token.Kind
	}{
		{"unknown char", "$", diag.LexUnknownChar, token.Invalid},
		{"single amp", "&", diag.LexUnknownChar, token.Invalid},
		{"non ascii", "é", diag.LexUnknownChar, token.Invalid},
		{"unterminated", `"abc`, diag.LexUnterminatedString, token.Invalid},
		{"newline in string", "\"abc\nx", diag.LexUnterminatedString, token.Invalid},
		{"bad escape", `"a\qb"`, diag.LexBadEscape, token.StringLit},
		{"overflow", "99999999999", diag.LexIntOverflow, token.IntLit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, bag := makeTestLexer(tt.input)
			first := lx.Next()
			if first.Kind != tt.kind {
				t.Fatalf("first token kind = %s, want %s", first.Kind, tt.kind)
			}
			if bag.Len() != 1 || bag.Items()[0].Code != tt.code {
				t.Fatalf("diagnostics = %+v, want one %s", bag.Items(), tt.code.ID())
			}
		})
	}
}

func TestIntValue(t *testing.T) {
	if v, err := lexer.IntValue("2147483647"); err != nil || v != 2147483647 {
		t.Fatalf("IntValue(max) = %d, %v", v, err)
	}
	if v, err := lexer.IntValue("2147483648"); err == nil || v != lexer.MaxIntLit {
		t.Fatalf("IntValue(max+1) = %d, %v", v, err)
	}
}
