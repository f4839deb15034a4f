package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type (nothing annotated yet).
const NoTypeID TypeID = 0

// Kind enumerates the lil-C type variants.
type Kind uint8

const (
	KindInvalid Kind = iota
	// KindError is the sentinel for expressions whose type could not be determined.
	// Every check against it passes silently.
	KindError
	KindVoid
	KindBool
	KindInt
	KindString
	KindStruct
	KindFn
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindError:
		return "error"
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindStruct:
		return "struct"
	case KindFn:
		return "fn"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Type is a compact descriptor; Payload indexes the struct or fn side tables.
type Type struct {
	Kind    Kind
	Payload uint32
}
