package symbols

import (
	"lilc/internal/ast"
	"lilc/internal/source"
	"lilc/internal/types"
)

// SymbolKind classifies what a declared name stands for.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVar
	SymbolParam
	SymbolFunction
	SymbolStruct
	SymbolStructInstance // variable or formal of struct type
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVar:
		return "var"
	case SymbolParam:
		return "param"
	case SymbolFunction:
		return "function"
	case SymbolStruct:
		return "struct"
	case SymbolStructInstance:
		return "struct-instance"
	default:
		return "invalid"
	}
}

// Field is one struct member as written in the declaration.
type Field struct {
	Name source.StringID
	Type types.TypeID
	Span source.Span
}

// Symbol is the record of one declared name.
type Symbol struct {
	Name  source.StringID
	Kind  SymbolKind
	Type  types.TypeID
	Span  source.Span
	Scope ScopeID
	Decl  ast.DeclID

	// Fields is set for SymbolStruct only.
	Fields []Field
	// StructName is set for SymbolStructInstance; it is looked up again
	// whenever a field type is needed.
	StructName source.StringID
}

// Field returns the first field called name.
func (s *Symbol) Field(name source.StringID) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
