package unparse

import "lilc/internal/ast"

func (p *printer) printDecl(id ast.DeclID) {
	decl := p.builder.Decls.Get(id)
	if decl == nil {
		return
	}
	switch decl.Kind {
	case ast.DeclVar:
		p.printVar(id)
		p.w.WriteString(";")
		p.w.Newline()
	case ast.DeclFn:
		p.printFn(id)
	case ast.DeclStruct:
		p.printStruct(id)
	default:
		ast.Unhandled("unparse", "decl", decl.Kind)
	}
}

// printVar writes "type name" without the terminator; formals reuse it.
func (p *printer) printVar(id ast.DeclID) {
	data, ok := p.builder.Decls.Var(id)
	if !ok {
		return
	}
	p.printType(data.Type)
	p.w.WriteString(" ")
	p.w.WriteString(p.name(id))
}

func (p *printer) printType(id ast.TypeID) {
	te := p.builder.Types.Get(id)
	if te == nil {
		p.w.WriteString("?")
		return
	}
	if te.Kind == ast.TypeStruct {
		p.w.WriteString("struct ")
		p.w.WriteString(p.builder.Name(te.Name))
		return
	}
	p.w.WriteString(te.Kind.String())
}

func (p *printer) printStruct(id ast.DeclID) {
	data, ok := p.builder.Decls.Struct(id)
	if !ok {
		return
	}
	p.w.WriteString("struct ")
	p.w.WriteString(p.name(id))
	p.w.WriteString(" {")
	p.w.Newline()
	p.w.indent()
	for _, field := range data.Fields {
		p.printVar(field)
		p.w.WriteString(";")
		p.w.Newline()
	}
	p.w.dedent()
	p.w.WriteString("};")
	p.w.Newline()
}

func (p *printer) printFn(id ast.DeclID) {
	fn, ok := p.builder.Decls.Fn(id)
	if !ok {
		return
	}
	p.printType(fn.Result)
	p.w.WriteString(" ")
	p.w.WriteString(p.name(id))
	p.w.WriteString("(")
	for i, param := range fn.Params {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.printVar(param)
	}
	p.w.WriteString(") ")
	p.printBlock(fn.Body)
	p.w.Newline()
}

// printBlock writes "{ ... }" and leaves the cursor right after the brace.
func (p *printer) printBlock(b ast.Block) {
	p.w.WriteString("{")
	p.w.Newline()
	p.w.indent()
	for _, item := range b.Items {
		switch {
		case item.Decl.IsValid():
			p.printDecl(item.Decl)
		case item.Stmt.IsValid():
			p.printStmt(item.Stmt)
		}
	}
	p.w.dedent()
	p.w.WriteString("}")
}
