package unparse

import "lilc/internal/ast"

// printTop prints a statement-level expression; only there an assignment
// goes without parentheses.
func (p *printer) printTop(id ast.ExprID) {
	if data, ok := p.builder.Exprs.Assign(id); ok {
		p.printExpr(data.Target)
		p.w.WriteString(" = ")
		p.printTop(data.Value)
		return
	}
	p.printExpr(id)
}

func (p *printer) printExpr(id ast.ExprID) {
	expr := p.builder.Exprs.Get(id)
	if expr == nil {
		return
	}
	exprs := p.builder.Exprs
	switch expr.Kind {
	case ast.ExprLit:
		lit, _ := exprs.Literal(id)
		p.w.WriteString(p.builder.Name(lit.Value))
	case ast.ExprIdent:
		data, _ := exprs.Ident(id)
		p.w.WriteString(p.builder.Name(data.Name))
		p.annotation(data.Type)
	case ast.ExprMember:
		data, _ := exprs.Member(id)
		p.printExpr(data.Target)
		p.w.WriteString(".")
		p.w.WriteString(p.builder.Name(data.Field))
		p.annotation(data.Type)
	case ast.ExprAssign:
		p.w.WriteString("(")
		p.printTop(id)
		p.w.WriteString(")")
	case ast.ExprCall:
		data, _ := exprs.Call(id)
		p.printExpr(data.Callee)
		p.w.WriteString("(")
		for i, arg := range data.Args {
			if i > 0 {
				p.w.WriteString(", ")
			}
			p.printExpr(arg)
		}
		p.w.WriteString(")")
	case ast.ExprUnary:
		data, _ := exprs.Unary(id)
		p.w.WriteString("(")
		p.w.WriteString(data.Op.String())
		p.printExpr(data.Operand)
		p.w.WriteString(")")
	case ast.ExprBinary:
		data, _ := exprs.Binary(id)
		p.w.WriteString("(")
		p.printExpr(data.Left)
		p.w.WriteString(" " + data.Op.String() + " ")
		p.printExpr(data.Right)
		p.w.WriteString(")")
	default:
		ast.Unhandled("unparse", "expr", expr.Kind)
	}
}
