package parser

import (
	"context"
	"slices"
	"strconv"

	"lilc/internal/ast"
	"lilc/internal/diag"
	"lilc/internal/lexer"
	"lilc/internal/source"
	"lilc/internal/token"
	"lilc/internal/trace"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File   ast.FileID
	Errors uint
}

// Parser holds the state of one file's parse.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span последнего съеденного токена
}

// ParseFile parses a whole lil-C program into arenas and returns its FileID.
// The parse always produces a File; declarations that failed to parse are dropped.
func ParseFile(ctx context.Context, fs *source.FileSet, lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	span := trace.BeginCtx(ctx, trace.ScopePass, "parse")
	defer span.End("")

	start := source.Span{File: lx.File().ID}
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.NewFile(start),
		fs:       fs,
		opts:     opts,
		lastSpan: start,
	}
	p.parseDecls()
	span.WithExtra("decls", strconv.Itoa(len(arenas.Files.Get(p.file).Decls)))
	return Result{File: p.file, Errors: p.opts.CurrentErrors}
}

func (p *Parser) peek() token.Token {
	tok := p.lx.Peek()
	// Invalid уже отрепорчен лексером: просто пропускаем
	for tok.Kind == token.Invalid {
		p.lx.Next()
		tok = p.lx.Peek()
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// parseDecls is the top-level loop: decl* EOF.
func (p *Parser) parseDecls() {
	first := p.peek().Span
	for !p.at(token.EOF) {
		if p.opts.Enough() {
			break
		}
		declID, ok := p.parseDecl(false)
		if !ok {
			p.resyncTop()
			continue
		}
		p.arenas.PushDecl(p.file, declID)
	}
	p.arenas.Files.Get(p.file).Span = first.Cover(p.lastSpan)
}

// resyncTop skips to just after the next ';' or '}' at top level, or to a
// token that can start a declaration.
func (p *Parser) resyncTop() {
	for !p.at(token.EOF) {
		switch p.peek().Kind {
		case token.Semicolon, token.RBrace:
			p.advance()
			return
		case token.KwInt, token.KwBool, token.KwVoid, token.KwStruct:
			return
		}
		p.advance()
	}
}

// parseIdent expects an identifier and interns it.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		return p.arenas.StringsInterner.Intern(tok.Text), tok.Span, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got "+describe(p.peek()))
	return source.NoStringID, p.getDiagnosticSpan(), false
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of file"
	}
	return "\"" + tok.Text + "\""
}
