package ast

import "lilc/internal/source"

// TypeKind enumerates written type expressions.
type TypeKind uint8

const (
	TypeInt TypeKind = iota
	TypeBool
	TypeVoid
	TypeStruct // struct Name
)

func (k TypeKind) String() string {
	switch k {
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeVoid:
		return "void"
	case TypeStruct:
		return "struct"
	default:
		return "TypeKind(?)"
	}
}

// TypeExpr is a type as written in a declaration.
// Name and NameSpan are only set for TypeStruct.
type TypeExpr struct {
	Kind     TypeKind
	Span     source.Span
	Name     source.StringID
	NameSpan source.Span
}

type Types struct {
	Arena *Arena[TypeExpr]
}

func NewTypes(capHint uint) *Types {
	return &Types{Arena: NewArena[TypeExpr](capHint)}
}

func (t *Types) NewPrimitive(kind TypeKind, sp source.Span) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{Kind: kind, Span: sp}))
}

func (t *Types) NewStruct(sp source.Span, name source.StringID, nameSpan source.Span) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{Kind: TypeStruct, Span: sp, Name: name, NameSpan: nameSpan}))
}

func (t *Types) Get(id TypeID) *TypeExpr {
	return t.Arena.Get(uint32(id))
}
