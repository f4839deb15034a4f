package parser

import (
	"lilc/internal/ast"
	"lilc/internal/diag"
	"lilc/internal/source"
	"lilc/internal/token"
)

func (p *Parser) atTypeStart() bool {
	return p.atOr(token.KwInt, token.KwBool, token.KwVoid, token.KwStruct)
}

var primitiveTypes = map[token.Kind]ast.TypeKind{
	token.KwInt:  ast.TypeInt,
	token.KwBool: ast.TypeBool,
	token.KwVoid: ast.TypeVoid,
}

// parseType parses `int | bool | void | struct ID`.
func (p *Parser) parseType() (ast.TypeID, bool) {
	tok := p.peek()
	if kind, ok := primitiveTypes[tok.Kind]; ok {
		p.advance()
		return p.arenas.Types.NewPrimitive(kind, tok.Span), true
	}
	if tok.Kind == token.KwStruct {
		p.advance()
		name, nameSpan, ok := p.parseIdent()
		if !ok {
			return ast.NoTypeID, false
		}
		return p.arenas.Types.NewStruct(tok.Span.Cover(nameSpan), name, nameSpan), true
	}
	p.err(diag.SynExpectType, "expected type, got "+describe(tok))
	return ast.NoTypeID, false
}

// parseDecl parses one declaration. Inside a block (local) only variable
// declarations are allowed.
func (p *Parser) parseDecl(local bool) (ast.DeclID, bool) {
	start := p.peek().Span

	typ, ok := p.parseType()
	if !ok {
		return ast.NoDeclID, false
	}

	// struct S { ... };
	if p.at(token.LBrace) {
		te := p.arenas.Types.Get(typ)
		if local || te.Kind != ast.TypeStruct {
			p.err(diag.SynUnexpectedToken, "struct declarations are only allowed at top level")
			return ast.NoDeclID, false
		}
		return p.parseStructBody(start, te.Name, te.NameSpan)
	}

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoDeclID, false
	}

	if p.at(token.LParen) {
		if local {
			p.err(diag.SynUnexpectedToken, "function declarations are only allowed at top level")
			return ast.NoDeclID, false
		}
		return p.parseFnDecl(start, typ, name, nameSpan)
	}

	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after variable declaration"); !ok {
		return ast.NoDeclID, false
	}
	return p.arenas.Decls.NewVar(start.Cover(p.lastSpan), name, nameSpan, typ), true
}

// parseStructBody parses `'{' varDecl+ '}' ';'` after `struct ID`.
func (p *Parser) parseStructBody(start source.Span, name source.StringID, nameSpan source.Span) (ast.DeclID, bool) {
	open := p.advance() // {

	fields := make([]ast.DeclID, 0, 4)
	for !p.atOr(token.RBrace, token.EOF) {
		if !p.atTypeStart() {
			p.err(diag.SynExpectType, "expected field declaration, got "+describe(p.peek()))
			p.resyncStmt()
			continue
		}
		field, ok := p.parseDecl(true)
		if !ok {
			p.resyncStmt()
			continue
		}
		fields = append(fields, field)
	}

	if !p.closeBrace(open.Span, "struct body") {
		return ast.NoDeclID, false
	}
	if len(fields) == 0 {
		label := p.arenas.Name(name)
		p.report(diag.SynExpectType, open.Span.Cover(p.lastSpan), "struct "+label+" must declare at least one field", label).Emit()
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after struct declaration"); !ok {
		return ast.NoDeclID, false
	}
	return p.arenas.Decls.NewStruct(start.Cover(p.lastSpan), name, nameSpan, fields), true
}

// parseFnDecl parses the formals and body after `type ID`.
func (p *Parser) parseFnDecl(start source.Span, result ast.TypeID, name source.StringID, nameSpan source.Span) (ast.DeclID, bool) {
	open := p.advance() // (
	params := make([]ast.DeclID, 0, 2)
	if !p.at(token.RParen) {
		for {
			formal, ok := p.parseFormal()
			if !ok {
				p.skipTo(token.RParen)
				break
			}
			params = append(params, formal)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if !p.at(token.RParen) {
		p.report(diag.SynUnclosedDelimiter, p.getDiagnosticSpan(), "expected ')' to close parameter list", p.peek().Text).
			WithNote(open.Span, "opened here").
			Emit()
		p.skipTo(token.RParen)
		if !p.at(token.RParen) {
			return ast.NoDeclID, false
		}
	}
	p.advance()

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoDeclID, false
	}
	return p.arenas.Decls.NewFn(start.Cover(body.Span), name, nameSpan, result, params, body), true
}

// parseFormal parses `type ID` or `struct ID ID`.
func (p *Parser) parseFormal() (ast.DeclID, bool) {
	start := p.peek().Span
	typ, ok := p.parseType()
	if !ok {
		return ast.NoDeclID, false
	}
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoDeclID, false
	}
	return p.arenas.Decls.NewFormal(start.Cover(nameSpan), name, nameSpan, typ), true
}

// skipTo advances until k or a statement boundary, without consuming k.
func (p *Parser) skipTo(k token.Kind) {
	for !p.atOr(k, token.EOF, token.LBrace, token.RBrace, token.Semicolon) {
		p.advance()
	}
}

// closeBrace consumes '}' or reports the unclosed '{' at open.
func (p *Parser) closeBrace(open source.Span, what string) bool {
	if p.at(token.RBrace) {
		p.advance()
		return true
	}
	p.report(diag.SynUnclosedDelimiter, p.getDiagnosticSpan(), "expected '}' to close "+what, p.peek().Text).
		WithNote(open, "opened here").
		Emit()
	return false
}
