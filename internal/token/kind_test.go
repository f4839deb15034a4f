package token_test

import (
	"testing"

	"lilc/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k}
}

func TestLookupKeyword(t *testing.T) {
	for _, kw := range []string{"int", "bool", "void", "struct", "if", "else", "while", "return", "cin", "cout", "true", "false"} {
		k, ok := token.LookupKeyword(kw)
		if !ok {
			t.Errorf("%q not recognised as keyword", kw)
			continue
		}
		if k.String() != kw {
			t.Errorf("keyword %q has String() %q", kw, k.String())
		}
		if !tok(k).IsKeyword() {
			t.Errorf("%q: IsKeyword = false", kw)
		}
	}
	for _, ident := range []string{"Int", "main", "structs", "string", ""} {
		if _, ok := token.LookupKeyword(ident); ok {
			t.Errorf("%q must not be a keyword", ident)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	if !tok(token.IntLit).IsLiteral() || !tok(token.KwTrue).IsLiteral() {
		t.Errorf("literal predicates broken")
	}
	if tok(token.Ident).IsLiteral() {
		t.Errorf("ident reported as literal")
	}
	if !tok(token.KwVoid).IsTypeKeyword() || tok(token.KwStruct).IsTypeKeyword() {
		t.Errorf("type keyword predicate broken")
	}
	for _, k := range []token.Kind{token.LBrace, token.Write, token.Assign, token.Dot} {
		if !tok(k).IsPunctOrOp() {
			t.Errorf("%s: IsPunctOrOp = false", k)
		}
	}
	if tok(token.KwCout).IsPunctOrOp() || tok(token.EOF).IsPunctOrOp() {
		t.Errorf("IsPunctOrOp too wide")
	}
	if token.Kind(250).String() != "Kind(?)" {
		t.Errorf("unknown kind string = %q", token.Kind(250).String())
	}
}
