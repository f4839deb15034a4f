// Package unparse prints an AST back as canonical lil-C source, optionally
// annotated with the types recorded by name analysis.
package unparse

import (
	"errors"
	"io"

	"lilc/internal/ast"
	"lilc/internal/types"
)

type Options struct {
	// Annotate appends the resolved type label to every identifier use and
	// field access: x(int), v(S).a(int), f(int,bool->void).
	Annotate bool
	// Types renders the annotations. Annotate is ignored without it.
	Types       *types.Interner
	IndentWidth int
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	if o.Types == nil {
		o.Annotate = false
	}
	return o
}

type printer struct {
	builder *ast.Builder
	w       *writer
	opt     Options
}

// Format returns the canonical text of file.
func Format(b *ast.Builder, fid ast.FileID, opt Options) ([]byte, error) {
	if b == nil {
		return nil, errors.New("unparse: nil builder")
	}
	if !fid.IsValid() {
		return nil, errors.New("unparse: invalid file id")
	}
	file := b.Files.Get(fid)
	if file == nil {
		return nil, errors.New("unparse: missing ast file")
	}
	opt = opt.withDefaults()
	p := printer{builder: b, w: newWriter(opt.IndentWidth), opt: opt}
	for _, declID := range file.Decls {
		p.printDecl(declID)
	}
	return p.w.Bytes(), nil
}

// Write prints file to w. See Format.
func Write(w io.Writer, b *ast.Builder, fid ast.FileID, opt Options) error {
	out, err := Format(b, fid, opt)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func (p *printer) name(id ast.DeclID) string {
	return p.builder.Name(p.builder.Decls.Get(id).Name)
}

// annotation writes "(label)" after a use when annotating.
func (p *printer) annotation(t types.TypeID) {
	if !p.opt.Annotate {
		return
	}
	p.w.WriteString("(")
	p.w.WriteString(types.Label(p.opt.Types, t))
	p.w.WriteString(")")
}
