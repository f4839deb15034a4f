package parser

import (
	"lilc/internal/ast"
	"lilc/internal/diag"
	"lilc/internal/lexer"
	"lilc/internal/source"
	"lilc/internal/token"
)

// binaryOps maps an operator token to its AST op and precedence.
// Higher binds tighter; all binary operators are left-associative.
var binaryOps = map[token.Kind]struct {
	op   ast.ExprBinaryOp
	prec int
}{
	token.OrOr:   {ast.ExprBinaryOr, 1},
	token.AndAnd: {ast.ExprBinaryAnd, 2},
	token.EqEq:   {ast.ExprBinaryEq, 3},
	token.BangEq: {ast.ExprBinaryNotEq, 3},
	token.Lt:     {ast.ExprBinaryLess, 4},
	token.Gt:     {ast.ExprBinaryGreater, 4},
	token.LtEq:   {ast.ExprBinaryLessEq, 4},
	token.GtEq:   {ast.ExprBinaryGreaterEq, 4},
	token.Plus:   {ast.ExprBinaryAdd, 5},
	token.Minus:  {ast.ExprBinarySub, 5},
	token.Star:   {ast.ExprBinaryMul, 6},
	token.Slash:  {ast.ExprBinaryDiv, 6},
}

// parseExpr parses an expression; `=` is the loosest and right-associative.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	lhs, ok := p.parseBinary(1)
	if !ok {
		return ast.NoExprID, false
	}
	if !p.at(token.Assign) {
		return lhs, true
	}
	p.advance()
	rhs, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewAssign(p.exprSpan(lhs).Cover(p.exprSpan(rhs)), lhs, rhs), true
}

// parseBinary is precedence climbing over binaryOps.
func (p *Parser) parseBinary(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		info, isOp := binaryOps[p.peek().Kind]
		if !isOp || info.prec < minPrec {
			return left, true
		}
		p.advance()
		right, ok := p.parseBinary(info.prec + 1)
		if !ok {
			return ast.NoExprID, false
		}
		sp := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.arenas.Exprs.NewBinary(sp, info.op, left, right)
	}
}

func (p *Parser) parseUnary() (ast.ExprID, bool) {
	var op ast.ExprUnaryOp
	switch p.peek().Kind {
	case token.Minus:
		op = ast.ExprUnaryNeg
	case token.Bang:
		op = ast.ExprUnaryNot
	default:
		return p.parsePrimary()
	}
	start := p.advance().Span
	operand, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewUnary(start.Cover(p.exprSpan(operand)), op, operand), true
}

func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.peek()
	strs := p.arenas.StringsInterner
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		v, _ := lexer.IntValue(tok.Text) // переполнение уже отрепорчено лексером
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitInt, strs.Intern(tok.Text), v), true
	case token.StringLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitString, strs.Intern(tok.Text), 0), true
	case token.KwTrue:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitTrue, strs.Intern(tok.Text), 1), true
	case token.KwFalse:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitFalse, strs.Intern(tok.Text), 0), true
	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		if !p.closeParen(tok.Span) {
			return ast.NoExprID, false
		}
		return inner, true
	case token.Ident:
		return p.parseLocOrCall()
	default:
		p.err(diag.SynExpectExpression, "expected expression, got "+describe(tok))
		return ast.NoExprID, false
	}
}

// parseLocOrCall parses `ID '(' args ')'` or `ID {'.' ID}`.
func (p *Parser) parseLocOrCall() (ast.ExprID, bool) {
	tok := p.advance()
	ident := p.arenas.Exprs.NewIdent(tok.Span, p.arenas.StringsInterner.Intern(tok.Text))

	if p.at(token.LParen) {
		return p.parseCallArgs(ident)
	}

	loc := ident
	for p.at(token.Dot) {
		p.advance()
		field, fieldSpan, ok := p.parseIdent()
		if !ok {
			return ast.NoExprID, false
		}
		loc = p.arenas.Exprs.NewMember(p.exprSpan(loc).Cover(fieldSpan), loc, field, fieldSpan)
	}
	return loc, true
}

func (p *Parser) parseCallArgs(callee ast.ExprID) (ast.ExprID, bool) {
	open := p.advance() // (
	args := make([]ast.ExprID, 0, 2)
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if !p.closeParen(open.Span) {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewCall(p.exprSpan(callee).Cover(p.lastSpan), callee, args), true
}

// closeParen consumes ')' or reports the unclosed '(' at open.
func (p *Parser) closeParen(open source.Span) bool {
	if p.at(token.RParen) {
		p.advance()
		return true
	}
	p.report(diag.SynUnclosedDelimiter, p.getDiagnosticSpan(), "expected ')'", p.peek().Text).
		WithNote(open, "opened here").
		Emit()
	return false
}

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	return p.arenas.Exprs.Get(id).Span
}
