package lexer

import (
	"math"
	"strconv"

	"lilc/internal/diag"
	"lilc/internal/token"
)

// MaxIntLit is the largest integer literal value; larger literals clamp to it.
const MaxIntLit = math.MaxInt32

func (lx *Lexer) scanNumber() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.make(token.IntLit, m)
	if _, err := IntValue(tok.Text); err != nil {
		lx.warnLex(diag.LexIntOverflow, tok.Span, "integer literal too large; using max value")
	}
	return tok
}

// IntValue converts an IntLit text into its value. Out-of-range text yields
// MaxIntLit together with the conversion error.
func IntValue(text string) (int32, error) {
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return MaxIntLit, err
	}
	return int32(v), nil
}
