package lexer

import (
	"lilc/internal/diag"
	"lilc/internal/token"
)

// scanString scans "..." with escapes \n \t \' \" \\ \?.
// A bad escape is reported but the literal is kept; a string without a closing
// quote on its line becomes an Invalid token.
func (lx *Lexer) scanString() token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	badEscape := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case '"':
			lx.cursor.Bump()
			tok := lx.make(token.StringLit, m)
			if badEscape {
				lx.errLex(diag.LexBadEscape, tok.Span, "string literal with bad escaped character")
			}
			return tok
		case '\n':
			return lx.unterminated(m)
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
				return lx.unterminated(m)
			}
			if !isEscape(lx.cursor.Peek()) {
				badEscape = true
			}
			lx.bumpRune()
		default:
			lx.bumpRune()
		}
	}
	return lx.unterminated(m)
}

func (lx *Lexer) unterminated(m Mark) token.Token {
	tok := lx.make(token.Invalid, m)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

func isEscape(b byte) bool {
	switch b {
	case 'n', 't', '\'', '"', '\\', '?':
		return true
	}
	return false
}
