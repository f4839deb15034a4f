package symbols

import (
	"fmt"

	"lilc/internal/ast"
	"lilc/internal/diag"
	"lilc/internal/source"
	"lilc/internal/types"
)

// typeProblem is a diagnostic found while resolving a written type, kept
// until the caller decides where it belongs in the report order.
type typeProblem struct {
	code    diag.Code
	span    source.Span
	msg     string
	subject string
}

func (fr *fileResolver) emit(p *typeProblem) {
	if p != nil {
		fr.report(p.code, p.span, p.msg, p.subject)
	}
}

// valueType resolves the written type of a variable or formal. void and
// unknown structs are reported and yield the Error sentinel; structName is
// set when the type names a visible struct.
func (fr *fileResolver) valueType(id ast.DeclID) (typ types.TypeID, structName source.StringID) {
	typ, structName, problem := fr.resolveValueType(id)
	fr.emit(problem)
	return typ, structName
}

func (fr *fileResolver) resolveValueType(id ast.DeclID) (types.TypeID, source.StringID, *typeProblem) {
	decl := fr.builder.Decls.Get(id)
	data, ok := fr.builder.Decls.Var(id)
	if !ok {
		ast.Unhandled("names", "decl", decl.Kind)
	}
	te := fr.builder.Types.Get(data.Type)
	switch te.Kind {
	case ast.TypeInt:
		return fr.builtins.Int, source.NoStringID, nil
	case ast.TypeBool:
		return fr.builtins.Bool, source.NoStringID, nil
	case ast.TypeVoid:
		name := fr.name(decl.Name)
		return fr.builtins.Error, source.NoStringID, &typeProblem{
			code:    diag.SemaNonFunctionVoid,
			span:    decl.NameSpan,
			msg:     fmt.Sprintf("non-function declared void %q", name),
			subject: name,
		}
	case ast.TypeStruct:
		st, ok := fr.resolver.LookupStruct(te.Name)
		if !ok {
			return fr.builtins.Error, source.NoStringID, fr.invalidStruct(te)
		}
		return st.Type, te.Name, nil
	default:
		ast.Unhandled("names", "type", te.Kind)
		return types.NoTypeID, source.NoStringID, nil
	}
}

func (fr *fileResolver) invalidStruct(te *ast.TypeExpr) *typeProblem {
	name := fr.name(te.Name)
	return &typeProblem{
		code:    diag.SemaInvalidStructType,
		span:    te.NameSpan,
		msg:     fmt.Sprintf("invalid name of struct type %q", name),
		subject: name,
	}
}

// declareValue declares a VarDecl or formal in the current scope.
func (fr *fileResolver) declareValue(id ast.DeclID, kind SymbolKind) {
	typ, structName := fr.valueType(id)
	fr.declareResolved(id, kind, typ, structName)
}

func (fr *fileResolver) declareResolved(id ast.DeclID, kind SymbolKind, typ types.TypeID, structName source.StringID) {
	decl := fr.builder.Decls.Get(id)
	sym := Symbol{
		Name: decl.Name,
		Kind: kind,
		Type: typ,
		Span: decl.NameSpan,
		Decl: id,
	}
	if structName != source.NoStringID {
		sym.Kind = SymbolStructInstance
		sym.StructName = structName
	}
	if symID, ok := fr.resolver.Declare(sym); ok {
		fr.result.DeclSymbols[id] = symID
	}
}

// declareStruct records the fields as written and declares the struct.
// Unknown struct field types are not reported.
func (fr *fileResolver) declareStruct(id ast.DeclID) {
	decl := fr.builder.Decls.Get(id)
	data, _ := fr.builder.Decls.Struct(id)

	fields := make([]Field, 0, len(data.Fields))
	for _, fieldID := range data.Fields {
		field := fr.builder.Decls.Get(fieldID)
		fdata, _ := fr.builder.Decls.Var(fieldID)
		fields = append(fields, Field{
			Name: field.Name,
			Type: fr.fieldType(fr.builder.Types.Get(fdata.Type)),
			Span: field.NameSpan,
		})
	}

	if symID, ok := fr.resolver.DeclareStruct(decl.Name, decl.NameSpan, Symbol{Decl: id}, fields); ok {
		fr.result.DeclSymbols[id] = symID
	}
}

func (fr *fileResolver) fieldType(te *ast.TypeExpr) types.TypeID {
	switch te.Kind {
	case ast.TypeInt:
		return fr.builtins.Int
	case ast.TypeBool:
		return fr.builtins.Bool
	case ast.TypeVoid:
		return fr.builtins.Void
	case ast.TypeStruct:
		if st, ok := fr.resolver.LookupStruct(te.Name); ok {
			return st.Type
		}
		return fr.builtins.Error
	default:
		ast.Unhandled("names", "type", te.Kind)
		return types.NoTypeID
	}
}

// resultType resolves a function's declared result; void is allowed here.
func (fr *fileResolver) resultType(te *ast.TypeExpr) (types.TypeID, *typeProblem) {
	if te.Kind == ast.TypeVoid {
		return fr.builtins.Void, nil
	}
	if te.Kind == ast.TypeStruct {
		st, ok := fr.resolver.LookupStruct(te.Name)
		if !ok {
			return fr.builtins.Error, fr.invalidStruct(te)
		}
		return st.Type, nil
	}
	return fr.fieldType(te), nil
}

type formalInfo struct {
	typ        types.TypeID
	structName source.StringID
	problem    *typeProblem
}

// declareFn declares the function before its body so direct recursion
// resolves, then analyses formals and body in one function scope.
// Formal types are resolved up front for the Fn type, but their
// diagnostics follow the function name's own.
func (fr *fileResolver) declareFn(id ast.DeclID) {
	decl := fr.builder.Decls.Get(id)
	data, _ := fr.builder.Decls.Fn(id)

	result, resultProblem := fr.resultType(fr.builder.Types.Get(data.Result))
	formals := make([]formalInfo, len(data.Params))
	params := make([]types.TypeID, len(data.Params))
	for i, paramID := range data.Params {
		typ, structName, problem := fr.resolveValueType(paramID)
		formals[i] = formalInfo{typ: typ, structName: structName, problem: problem}
		params[i] = typ
	}
	fnType := fr.table.Types.RegisterFn(params, result)
	fr.result.FnTypes[id] = fnType

	if symID, ok := fr.resolver.Declare(Symbol{
		Name: decl.Name,
		Kind: SymbolFunction,
		Type: fnType,
		Span: decl.NameSpan,
		Decl: id,
	}); ok {
		fr.result.DeclSymbols[id] = symID
	}
	fr.emit(resultProblem)

	owner := ScopeOwner{Kind: ScopeOwnerDecl, Decl: id}
	fr.resolver.WithScope(ScopeFunction, owner, decl.Span, func(ScopeID) {
		for i, paramID := range data.Params {
			fr.emit(formals[i].problem)
			fr.declareResolved(paramID, SymbolParam, formals[i].typ, formals[i].structName)
		}
		fr.walkItems(data.Body.Items)
	})
}
