package parser

import (
	"lilc/internal/ast"
	"lilc/internal/diag"
	"lilc/internal/source"
	"lilc/internal/token"
)

// parseBlock parses `'{' (varDecl | stmt)* '}'`, keeping items in source order.
func (p *Parser) parseBlock() (ast.Block, bool) {
	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return ast.Block{}, false
	}
	block := ast.Block{Items: make([]ast.BlockItem, 0, 4)}

	for !p.atOr(token.RBrace, token.EOF) {
		if p.opts.Enough() {
			break
		}
		if p.atTypeStart() {
			decl, ok := p.parseDecl(true)
			if !ok {
				p.resyncStmt()
				continue
			}
			block.Items = append(block.Items, ast.DeclItem(decl))
			continue
		}
		stmt, ok := p.parseStmt()
		if !ok {
			p.resyncStmt()
			continue
		}
		block.Items = append(block.Items, ast.StmtItem(stmt))
	}

	if !p.closeBrace(open.Span, "block") {
		return ast.Block{}, false
	}
	block.Span = open.Span.Cover(p.lastSpan)
	return block, true
}

func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.peek().Kind {
	case token.KwCin:
		return p.parseStreamStmt(token.Read, ast.StmtRead)
	case token.KwCout:
		return p.parseStreamStmt(token.Write, ast.StmtWrite)
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.LBrace:
		// вложенные блоки в lil-C не предусмотрены
		p.err(diag.SynExpectStatement, "nested blocks are not allowed here")
		return ast.NoStmtID, false
	}
	return p.parseExprStmt()
}

// parseStreamStmt parses `cin >> loc ;` and `cout << exp ;`.
func (p *Parser) parseStreamStmt(op token.Kind, kind ast.StmtKind) (ast.StmtID, bool) {
	start := p.advance().Span
	if _, ok := p.expect(op, diag.SynUnexpectedToken, "expected '"+op.String()+"'"); !ok {
		return ast.NoStmtID, false
	}
	var (
		expr ast.ExprID
		ok   bool
	)
	if kind == ast.StmtRead {
		expr, ok = p.parseUnary()
	} else {
		expr, ok = p.parseExpr()
	}
	if !ok {
		return ast.NoStmtID, false
	}
	return p.finishSimple(kind, start, expr)
}

func (p *Parser) parseIfStmt() (ast.StmtID, bool) {
	start := p.advance().Span
	cond, ok := p.parseCond()
	if !ok {
		return ast.NoStmtID, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.at(token.KwElse) {
		return p.arenas.Stmts.NewIf(start.Cover(then.Span), cond, then), true
	}
	p.advance()
	els, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewIfElse(start.Cover(els.Span), cond, then, els), true
}

func (p *Parser) parseWhileStmt() (ast.StmtID, bool) {
	start := p.advance().Span
	cond, ok := p.parseCond()
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewWhile(start.Cover(body.Span), cond, body), true
}

// parseCond parses `'(' exp ')'`.
func (p *Parser) parseCond() (ast.ExprID, bool) {
	open, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('")
	if !ok {
		return ast.NoExprID, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if !p.closeParen(open.Span) {
		return ast.NoExprID, false
	}
	return cond, true
}

func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	start := p.advance().Span
	if p.at(token.Semicolon) {
		return p.finishSimple(ast.StmtReturn, start, ast.NoExprID)
	}
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.finishSimple(ast.StmtReturn, start, expr)
}

// parseExprStmt handles assignment, call, `loc ++;` and `loc --;`.
func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	start := p.peek().Span
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	switch p.peek().Kind {
	case token.PlusPlus:
		p.advance()
		return p.finishSimple(ast.StmtPostInc, start, expr)
	case token.MinusMinus:
		p.advance()
		return p.finishSimple(ast.StmtPostDec, start, expr)
	}

	var kind ast.StmtKind
	switch p.arenas.Exprs.Get(expr).Kind {
	case ast.ExprAssign:
		kind = ast.StmtAssign
	case ast.ExprCall:
		kind = ast.StmtCall
	default:
		sp := p.arenas.Exprs.Get(expr).Span
		p.report(diag.SynExpectStatement, sp, "expression statement must be an assignment or a call", p.text(sp)).Emit()
		return ast.NoStmtID, false
	}
	return p.finishSimple(kind, start, expr)
}

// finishSimple expects the closing ';' and allocates the statement.
func (p *Parser) finishSimple(kind ast.StmtKind, start source.Span, expr ast.ExprID) (ast.StmtID, bool) {
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after statement"); !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewSimple(kind, start.Cover(p.lastSpan), expr), true
}
