package lexer

import (
	"lilc/internal/diag"
	"lilc/internal/token"
)

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	m := lx.cursor.Mark()
	b := lx.cursor.Bump()

	// двухсимвольные операторы
	two := func(next byte, pair, single token.Kind) token.Token {
		if lx.cursor.Eat(next) {
			return lx.make(pair, m)
		}
		return lx.make(single, m)
	}

	switch b {
	case '{':
		return lx.make(token.LBrace, m)
	case '}':
		return lx.make(token.RBrace, m)
	case '(':
		return lx.make(token.LParen, m)
	case ')':
		return lx.make(token.RParen, m)
	case ';':
		return lx.make(token.Semicolon, m)
	case ',':
		return lx.make(token.Comma, m)
	case '.':
		return lx.make(token.Dot, m)
	case '*':
		return lx.make(token.Star, m)
	case '/':
		return lx.make(token.Slash, m)
	case '+':
		return two('+', token.PlusPlus, token.Plus)
	case '-':
		return two('-', token.MinusMinus, token.Minus)
	case '!':
		return two('=', token.BangEq, token.Bang)
	case '=':
		return two('=', token.EqEq, token.Assign)
	case '<':
		if lx.cursor.Eat('<') {
			return lx.make(token.Write, m)
		}
		return two('=', token.LtEq, token.Lt)
	case '>':
		if lx.cursor.Eat('>') {
			return lx.make(token.Read, m)
		}
		return two('=', token.GtEq, token.Gt)
	case '&':
		if lx.cursor.Eat('&') {
			return lx.make(token.AndAnd, m)
		}
	case '|':
		if lx.cursor.Eat('|') {
			return lx.make(token.OrOr, m)
		}
	default:
		if b >= 0x80 {
			// не-ASCII: съедаем руну целиком
			lx.cursor.Reset(m)
			lx.bumpRune()
		}
	}

	tok := lx.make(token.Invalid, m)
	lx.errLex(diag.LexUnknownChar, tok.Span, "illegal character "+quoteText(tok.Text))
	return tok
}

func quoteText(s string) string {
	return "'" + s + "'"
}
