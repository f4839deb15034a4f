package symbols

import (
	"fmt"

	"lilc/internal/ast"
	"lilc/internal/diag"
)

// walkItems visits block items in source order in the current scope.
func (fr *fileResolver) walkItems(items []ast.BlockItem) {
	for _, it := range items {
		if it.Decl.IsValid() {
			fr.declareValue(it.Decl, SymbolVar)
			continue
		}
		fr.walkStmt(it.Stmt)
	}
}

// walkNested visits block in its own Block scope.
func (fr *fileResolver) walkNested(stmtID ast.StmtID, block ast.Block) {
	owner := ScopeOwner{Kind: ScopeOwnerStmt, Stmt: stmtID}
	fr.resolver.WithScope(ScopeBlock, owner, block.Span, func(ScopeID) {
		fr.walkItems(block.Items)
	})
}

func (fr *fileResolver) walkStmt(id ast.StmtID) {
	stmt := fr.builder.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtAssign, ast.StmtPostInc, ast.StmtPostDec, ast.StmtRead,
		ast.StmtWrite, ast.StmtCall, ast.StmtReturn:
		fr.walkExpr(stmt.Expr)
	case ast.StmtIf, ast.StmtIfElse:
		data, _ := fr.builder.Stmts.If(id)
		fr.walkExpr(data.Cond)
		fr.walkNested(id, data.Then)
		if stmt.Kind == ast.StmtIfElse {
			fr.walkNested(id, data.Else)
		}
	case ast.StmtWhile:
		data, _ := fr.builder.Stmts.While(id)
		fr.walkExpr(data.Cond)
		fr.walkNested(id, data.Body)
	default:
		ast.Unhandled("names", "stmt", stmt.Kind)
	}
}

func (fr *fileResolver) walkExpr(id ast.ExprID) {
	if !id.IsValid() {
		return
	}
	exprs := fr.builder.Exprs
	expr := exprs.Get(id)
	switch expr.Kind {
	case ast.ExprLit:
	case ast.ExprIdent:
		fr.resolveIdent(id)
	case ast.ExprMember:
		fr.resolveMember(id)
	case ast.ExprAssign:
		data, _ := exprs.Assign(id)
		fr.walkExpr(data.Target)
		fr.walkExpr(data.Value)
	case ast.ExprCall:
		data, _ := exprs.Call(id)
		fr.walkExpr(data.Callee)
		for _, arg := range data.Args {
			fr.walkExpr(arg)
		}
	case ast.ExprUnary:
		data, _ := exprs.Unary(id)
		fr.walkExpr(data.Operand)
	case ast.ExprBinary:
		data, _ := exprs.Binary(id)
		fr.walkExpr(data.Left)
		fr.walkExpr(data.Right)
	default:
		ast.Unhandled("names", "expr", expr.Kind)
	}
}

// resolveIdent binds an identifier use and annotates it with the symbol's
// type, or reports it and annotates Error.
func (fr *fileResolver) resolveIdent(id ast.ExprID) (*Symbol, bool) {
	data, _ := fr.builder.Exprs.Ident(id)
	symID, ok := fr.resolver.Lookup(data.Name)
	if !ok {
		name := fr.name(data.Name)
		fr.report(diag.SemaUndeclared, fr.builder.Exprs.Get(id).Span,
			fmt.Sprintf("undeclared identifier %q", name), name)
		fr.builder.Exprs.SetType(id, fr.builtins.Error)
		return nil, false
	}
	sym := fr.table.Symbols.Get(symID)
	fr.result.Bindings[id] = symID
	fr.builder.Exprs.SetType(id, sym.Type)
	return sym, true
}

// resolveMember checks `loc.field`. Only an identifier bound to a struct
// instance may stand on the left.
func (fr *fileResolver) resolveMember(id ast.ExprID) {
	exprs := fr.builder.Exprs
	data, _ := exprs.Member(id)
	exprs.SetType(id, fr.builtins.Error)

	target := exprs.Get(data.Target)
	if target.Kind != ast.ExprIdent {
		fr.walkExpr(data.Target)
		if t, ok := exprs.AnnotatedType(data.Target); ok && fr.table.Types.IsError(t) {
			return
		}
		fr.report(diag.SemaDotAccessOnNonStruct, target.Span,
			"dot-access of non-struct type", "")
		return
	}

	sym, ok := fr.resolveIdent(data.Target)
	if !ok || fr.table.Types.IsError(sym.Type) {
		return
	}
	if sym.Kind != SymbolStructInstance {
		name := fr.name(sym.Name)
		fr.report(diag.SemaDotAccessOnNonStruct, target.Span,
			fmt.Sprintf("dot-access of non-struct type %q", name), name)
		return
	}

	fieldType, ok := fr.resolver.FieldType(sym.StructName, data.Field)
	if !ok {
		field := fr.name(data.Field)
		fr.report(diag.SemaInvalidStructField, data.FieldSpan,
			fmt.Sprintf("invalid struct field name %q", field), field)
		return
	}
	exprs.SetType(id, fieldType)
}
