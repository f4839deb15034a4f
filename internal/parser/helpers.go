package parser

import (
	"lilc/internal/diag"
	"lilc/internal/source"
	"lilc/internal/token"
)

// advance consumes the next token and remembers its span.
func (p *Parser) advance() token.Token {
	p.peek()
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan points at the next token, or just past the last one at EOF.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF {
		return p.lastSpan.ZeroideToEnd()
	}
	return peek.Span
}

// expect consumes a token of kind k or reports code.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.getDiagnosticSpan()
	if k == token.Semicolon {
		// ';' забыли после предыдущего токена: указываем туда
		sp = p.lastSpan.ZeroideToEnd()
	}
	p.report(code, sp, msg, p.peek().Text).Emit()
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, p.getDiagnosticSpan(), msg, p.peek().Text).Emit()
}

// report counts the error and returns a builder, or nil once the budget is spent.
func (p *Parser) report(code diag.Code, sp source.Span, msg, subject string) *diag.ReportBuilder {
	p.opts.CurrentErrors++
	if p.opts.Reporter == nil || p.opts.MaxErrors > 0 && p.opts.CurrentErrors > p.opts.MaxErrors {
		return nil
	}
	return diag.ReportError(p.opts.Reporter, code, sp, msg).WithSubject(subject)
}

// resyncStmt skips past the next ';' or stops before '}' / EOF.
func (p *Parser) resyncStmt() {
	for {
		switch p.peek().Kind {
		case token.EOF, token.RBrace:
			return
		case token.Semicolon:
			p.advance()
			return
		}
		p.advance()
	}
}

// text returns the source covered by sp in the file being parsed.
func (p *Parser) text(sp source.Span) string {
	if p.fs != nil {
		return p.fs.Text(sp)
	}
	content := p.lx.File().Content
	if sp.Start > sp.End || int(sp.End) > len(content) {
		return ""
	}
	return string(content[sp.Start:sp.End])
}
