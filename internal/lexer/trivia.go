package lexer

// skipTrivia consumes whitespace and line comments ("//" and "#").
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f':
			lx.cursor.Bump()
		case b == '#':
			lx.skipLine()
		case b == '/':
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '/' {
				lx.skipLine()
				continue
			}
			return
		default:
			return
		}
	}
}

func (lx *Lexer) skipLine() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}
