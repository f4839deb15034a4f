package sema

import (
	"lilc/internal/ast"
	"lilc/internal/diag"
)

// report emits an error at expr's span with expr's name or literal as subject.
func (tc *typeChecker) report(code diag.Code, expr ast.ExprID, msg string) {
	diag.ReportError(tc.reporter, code, tc.builder.Exprs.Get(expr).Span, msg).
		WithSubject(tc.subject(expr)).
		Emit()
}

// subject is the identifier, field name or literal text of expr, else "".
func (tc *typeChecker) subject(expr ast.ExprID) string {
	exprs := tc.builder.Exprs
	if data, ok := exprs.Ident(expr); ok {
		return tc.builder.Name(data.Name)
	}
	if data, ok := exprs.Member(expr); ok {
		return tc.builder.Name(data.Field)
	}
	if data, ok := exprs.Literal(expr); ok {
		return tc.builder.Name(data.Value)
	}
	if data, ok := exprs.Call(expr); ok {
		return tc.subject(data.Callee)
	}
	return ""
}
