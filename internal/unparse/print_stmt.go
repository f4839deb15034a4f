package unparse

import "lilc/internal/ast"

func (p *printer) printStmt(id ast.StmtID) {
	stmt := p.builder.Stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtAssign, ast.StmtCall:
		p.printTop(stmt.Expr)
	case ast.StmtPostInc:
		p.printExpr(stmt.Expr)
		p.w.WriteString("++")
	case ast.StmtPostDec:
		p.printExpr(stmt.Expr)
		p.w.WriteString("--")
	case ast.StmtRead:
		p.w.WriteString("cin >> ")
		p.printExpr(stmt.Expr)
	case ast.StmtWrite:
		p.w.WriteString("cout << ")
		p.printExpr(stmt.Expr)
	case ast.StmtReturn:
		p.w.WriteString("return")
		if stmt.Expr.IsValid() {
			p.w.WriteString(" ")
			p.printTop(stmt.Expr)
		}
	case ast.StmtIf, ast.StmtIfElse:
		p.printIf(id, stmt)
		return
	case ast.StmtWhile:
		data, _ := p.builder.Stmts.While(id)
		p.w.WriteString("while (")
		p.printExpr(data.Cond)
		p.w.WriteString(") ")
		p.printBlock(data.Body)
		p.w.Newline()
		return
	default:
		ast.Unhandled("unparse", "stmt", stmt.Kind)
	}
	p.w.WriteString(";")
	p.w.Newline()
}

func (p *printer) printIf(id ast.StmtID, stmt *ast.Stmt) {
	data, _ := p.builder.Stmts.If(id)
	p.w.WriteString("if (")
	p.printExpr(data.Cond)
	p.w.WriteString(") ")
	p.printBlock(data.Then)
	if stmt.Kind == ast.StmtIfElse {
		p.w.WriteString(" else ")
		p.printBlock(data.Else)
	}
	p.w.Newline()
}
