package parser

import (
	"context"
	"testing"

	"lilc/internal/ast"
	"lilc/internal/diag"
	"lilc/internal/lexer"
	"lilc/internal/source"
)

type parsed struct {
	builder *ast.Builder
	file    ast.FileID
	bag     *diag.Bag
}

// parseSnippet runs lexer and parser over src and collects every diagnostic.
func parseSnippet(t *testing.T, src string) parsed {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("snippet.lil", []byte(src))
	bag := diag.NewBag(100)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	b := ast.NewBuilder(ast.Hints{}, nil)
	res := ParseFile(context.Background(), fs, lx, b, Options{Reporter: rep, MaxErrors: 50})
	return parsed{builder: b, file: res.File, bag: bag}
}

func (p parsed) decls() []ast.DeclID {
	return p.builder.Files.Get(p.file).Decls
}

func (p parsed) codes() []diag.Code {
	out := make([]diag.Code, 0, p.bag.Len())
	for _, d := range p.bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

// fnBody returns the body of the top-level function declared at index i.
func (p parsed) fnBody(t *testing.T, i int) ast.Block {
	t.Helper()
	fn, ok := p.builder.Decls.Fn(p.decls()[i])
	if !ok {
		t.Fatalf("decl %d is not a function", i)
	}
	return fn.Body
}

func (p parsed) name(id ast.DeclID) string {
	return p.builder.Name(p.builder.Decls.Get(id).Name)
}
