package sema

import (
	"lilc/internal/ast"
	"lilc/internal/diag"
	"lilc/internal/trace"
	"lilc/internal/types"
)

func (tc *typeChecker) checkTopDecl(id ast.DeclID) {
	decl := tc.builder.Decls.Get(id)
	switch decl.Kind {
	case ast.DeclVar, ast.DeclStruct:
		// nothing to type
	case ast.DeclFn:
		tc.checkFn(id)
	default:
		ast.Unhandled("types", "decl", decl.Kind)
	}
}

func (tc *typeChecker) checkFn(id ast.DeclID) {
	decl := tc.builder.Decls.Get(id)
	data, _ := tc.builder.Decls.Fn(id)
	node := trace.Begin(tc.tracer, trace.ScopeNode, "fn:"+tc.builder.Name(decl.Name), tc.span.ID())
	defer node.End("")

	tc.fnResult = tc.builtins.Error
	if tc.symbols != nil {
		if info, ok := tc.types.FnInfo(tc.symbols.FnTypes[id]); ok {
			tc.fnResult = info.Result
		}
	}
	tc.checkItems(data.Body.Items)
	tc.fnResult = tc.builtins.Error
}

func (tc *typeChecker) checkItems(items []ast.BlockItem) {
	for _, it := range items {
		if it.Decl.IsValid() {
			if kind := tc.builder.Decls.Get(it.Decl).Kind; kind != ast.DeclVar {
				ast.Unhandled("types", "decl", kind)
			}
			continue
		}
		tc.checkStmt(it.Stmt)
	}
}

func (tc *typeChecker) checkStmt(id ast.StmtID) {
	stmt := tc.builder.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtAssign, ast.StmtCall:
		tc.exprType(stmt.Expr)
	case ast.StmtPostInc, ast.StmtPostDec:
		tc.checkIncDec(stmt.Expr)
	case ast.StmtRead:
		tc.exprType(stmt.Expr)
		if !tc.builder.Exprs.IsLocation(stmt.Expr) {
			tc.report(diag.SemaAssignToNonLvalue, stmt.Expr, "cin >> needs a variable or field to read into")
		}
	case ast.StmtWrite:
		t := tc.exprType(stmt.Expr)
		switch {
		case tc.types.IsFn(t):
			tc.report(diag.SemaBadWriteType, stmt.Expr, "attempt to write a function")
		case tc.types.IsStruct(t):
			tc.report(diag.SemaBadWriteType, stmt.Expr, "attempt to write a struct")
		}
	case ast.StmtIf, ast.StmtIfElse:
		data, _ := tc.builder.Stmts.If(id)
		tc.checkCond(data.Cond, "if")
		tc.checkItems(data.Then.Items)
		if stmt.Kind == ast.StmtIfElse {
			tc.checkItems(data.Else.Items)
		}
	case ast.StmtWhile:
		data, _ := tc.builder.Stmts.While(id)
		tc.checkCond(data.Cond, "while")
		tc.checkItems(data.Body.Items)
	case ast.StmtReturn:
		tc.checkReturn(stmt)
	default:
		ast.Unhandled("types", "stmt", stmt.Kind)
	}
}

func (tc *typeChecker) checkIncDec(id ast.ExprID) {
	t := tc.exprType(id)
	if !tc.builder.Exprs.IsLocation(id) {
		tc.report(diag.SemaAssignToNonLvalue, id, "++ and -- need a variable or field")
		return
	}
	if !tc.types.IsError(t) && t != tc.builtins.Int {
		tc.report(diag.SemaBadArithmeticOperand, id, "arithmetic operator applied to non-numeric operand")
	}
}

func (tc *typeChecker) checkCond(id ast.ExprID, what string) {
	t := tc.exprType(id)
	if !tc.types.IsError(t) && t != tc.builtins.Bool {
		tc.report(diag.SemaBadConditionType, id, "non-bool expression used as "+what+" condition")
	}
}

func (tc *typeChecker) checkReturn(stmt *ast.Stmt) {
	want := tc.fnResult
	if !stmt.Expr.IsValid() {
		if !tc.types.IsError(want) && !tc.types.IsVoid(want) {
			diag.ReportError(tc.reporter, diag.SemaMissingReturnValue, stmt.Span, "missing return value").
				WithSubject(types.Label(tc.types, want)).
				Emit()
		}
		return
	}

	got := tc.exprType(stmt.Expr)
	switch {
	case tc.types.IsError(want):
	case tc.types.IsVoid(want):
		tc.report(diag.SemaReturnFromVoid, stmt.Expr, "return with a value in a void function")
	case !tc.types.IsError(got) && got != want:
		tc.report(diag.SemaReturnTypeMismatch, stmt.Expr,
			"bad return value: got "+types.Label(tc.types, got)+", want "+types.Label(tc.types, want))
	}
}
