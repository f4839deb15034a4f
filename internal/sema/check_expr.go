package sema

import (
	"fmt"

	"lilc/internal/ast"
	"lilc/internal/diag"
	"lilc/internal/types"
)

// exprType computes and records the type of id. Invalid ids type as Error.
func (tc *typeChecker) exprType(id ast.ExprID) types.TypeID {
	if !id.IsValid() {
		return tc.builtins.Error
	}
	t := tc.computeType(id)
	tc.result.ExprTypes[id] = t
	return t
}

func (tc *typeChecker) computeType(id ast.ExprID) types.TypeID {
	exprs := tc.builder.Exprs
	expr := exprs.Get(id)
	switch expr.Kind {
	case ast.ExprLit:
		lit, _ := exprs.Literal(id)
		switch lit.Kind {
		case ast.LitInt:
			return tc.builtins.Int
		case ast.LitString:
			return tc.builtins.String
		case ast.LitTrue, ast.LitFalse:
			return tc.builtins.Bool
		default:
			ast.Unhandled("types", "literal", lit.Kind)
		}
	case ast.ExprIdent, ast.ExprMember:
		// name analysis already annotated these; a missing annotation counts as Error
		if t, _ := exprs.AnnotatedType(id); t != types.NoTypeID {
			return t
		}
		return tc.builtins.Error
	case ast.ExprUnary:
		return tc.unaryType(id)
	case ast.ExprBinary:
		return tc.binaryType(id)
	case ast.ExprAssign:
		return tc.assignType(id)
	case ast.ExprCall:
		return tc.callType(id)
	default:
		ast.Unhandled("types", "expr", expr.Kind)
	}
	return tc.builtins.Error
}

// expectOperand reports operand when its type is neither want nor Error.
func (tc *typeChecker) expectOperand(operand ast.ExprID, t, want types.TypeID, code diag.Code, msg string) {
	if tc.types.IsError(t) || t == want {
		return
	}
	tc.report(code, operand, msg)
}

const (
	msgArith      = "arithmetic operator applied to non-numeric operand"
	msgRelational = "relational operator applied to non-numeric operand"
	msgLogical    = "logical operator applied to non-bool operand"
)

func (tc *typeChecker) unaryType(id ast.ExprID) types.TypeID {
	data, _ := tc.builder.Exprs.Unary(id)
	t := tc.exprType(data.Operand)
	switch data.Op {
	case ast.ExprUnaryNeg:
		tc.expectOperand(data.Operand, t, tc.builtins.Int, diag.SemaBadArithmeticOperand, msgArith)
		return tc.builtins.Int
	case ast.ExprUnaryNot:
		tc.expectOperand(data.Operand, t, tc.builtins.Bool, diag.SemaBadLogicalOperand, msgLogical)
		return tc.builtins.Bool
	default:
		ast.Unhandled("types", "unary", data.Op)
		return tc.builtins.Error
	}
}

func (tc *typeChecker) binaryType(id ast.ExprID) types.TypeID {
	data, _ := tc.builder.Exprs.Binary(id)
	lt := tc.exprType(data.Left)
	rt := tc.exprType(data.Right)

	both := func(want types.TypeID, code diag.Code, msg string) {
		tc.expectOperand(data.Left, lt, want, code, msg)
		tc.expectOperand(data.Right, rt, want, code, msg)
	}
	switch {
	case data.Op.IsArithmetic():
		both(tc.builtins.Int, diag.SemaBadArithmeticOperand, msgArith)
		return tc.builtins.Int
	case data.Op.IsLogical():
		both(tc.builtins.Bool, diag.SemaBadLogicalOperand, msgLogical)
		return tc.builtins.Bool
	case data.Op.IsRelational():
		both(tc.builtins.Int, diag.SemaBadRelationalOperand, msgRelational)
		return tc.builtins.Bool
	case data.Op.IsEquality():
		tc.checkEquality(id, lt, rt)
		return tc.builtins.Bool
	default:
		ast.Unhandled("types", "binary", data.Op)
		return tc.builtins.Error
	}
}

func (tc *typeChecker) checkEquality(id ast.ExprID, lt, rt types.TypeID) {
	if tc.types.IsError(lt) || tc.types.IsError(rt) {
		return
	}
	switch {
	case tc.types.IsVoid(lt) || tc.types.IsVoid(rt):
		tc.report(diag.SemaBadEqualityOperand, id, "equality operator applied to void function results")
	case tc.types.IsFn(lt) || tc.types.IsFn(rt):
		tc.report(diag.SemaBadEqualityOperand, id, "equality operator applied to functions")
	case lt != rt:
		tc.report(diag.SemaBadEqualityOperand, id,
			fmt.Sprintf("type mismatch: %s and %s", types.Label(tc.types, lt), types.Label(tc.types, rt)))
	}
}

// assignType checks `target = value`; the expression has the target's type.
func (tc *typeChecker) assignType(id ast.ExprID) types.TypeID {
	data, _ := tc.builder.Exprs.Assign(id)
	lt := tc.exprType(data.Target)
	rt := tc.exprType(data.Value)

	if !tc.builder.Exprs.IsLocation(data.Target) {
		tc.report(diag.SemaAssignToNonLvalue, data.Target, "left side of assignment is not a variable or field")
		return lt
	}
	if tc.types.IsError(lt) || tc.types.IsError(rt) {
		return lt
	}
	switch {
	case tc.types.IsFn(lt) || tc.types.IsFn(rt):
		tc.report(diag.SemaAssignFromFnOrStruct, id, "function assignment")
	case tc.types.IsStruct(lt) || tc.types.IsStruct(rt):
		tc.report(diag.SemaAssignFromFnOrStruct, id, "struct assignment")
	case lt != rt:
		tc.report(diag.SemaAssignTypeMismatch, id,
			fmt.Sprintf("type mismatch: cannot assign %s to %s", types.Label(tc.types, rt), types.Label(tc.types, lt)))
	}
	return lt
}

// callType checks a call against the callee's Fn type. Argument types are
// compared only when the count matches.
func (tc *typeChecker) callType(id ast.ExprID) types.TypeID {
	data, _ := tc.builder.Exprs.Call(id)
	ct := tc.exprType(data.Callee)
	args := make([]types.TypeID, len(data.Args))
	for i, arg := range data.Args {
		args[i] = tc.exprType(arg)
	}

	if tc.types.IsError(ct) {
		return tc.builtins.Error
	}
	info, ok := tc.types.FnInfo(ct)
	if !ok {
		tc.report(diag.SemaBadCallee, data.Callee, "attempt to call a non-function")
		return tc.builtins.Error
	}
	if len(args) != len(info.Params) {
		diag.ReportError(tc.reporter, diag.SemaArgCountMismatch, tc.builder.Exprs.Get(id).Span,
			fmt.Sprintf("function call with wrong number of args: got %d, want %d", len(args), len(info.Params))).
			WithSubject(tc.subject(data.Callee)).
			Emit()
		return info.Result
	}
	for i, arg := range data.Args {
		want := info.Params[i]
		if tc.types.IsError(args[i]) || tc.types.IsError(want) || args[i] == want {
			continue
		}
		tc.report(diag.SemaArgTypeMismatch, arg,
			fmt.Sprintf("type of actual %d does not match formal: got %s, want %s",
				i+1, types.Label(tc.types, args[i]), types.Label(tc.types, want)))
	}
	return info.Result
}
