package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the primitive types and the error sentinel.
type Builtins struct {
	Error  TypeID
	Void   TypeID
	Bool   TypeID
	Int    TypeID
	String TypeID
}

// Interner hands out stable TypeIDs. Primitives are shared, function types are
// deduplicated structurally, and every RegisterStruct call yields a fresh nominal type.
// An Interner belongs to one compilation unit and is not safe for concurrent use.
type Interner struct {
	types    []Type
	index    map[Type]TypeID
	builtins Builtins
	structs  []StructInfo
	fns      []FnInfo
}

// NewInterner constructs an interner seeded with built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[Type]TypeID, 16),
	}
	in.types = append(in.types, Type{Kind: KindInvalid}) // slot 0 == NoTypeID
	in.structs = append(in.structs, StructInfo{})
	in.fns = append(in.fns, FnInfo{})
	in.builtins.Error = in.Intern(Type{Kind: KindError})
	in.builtins.Void = in.Intern(Type{Kind: KindVoid})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Int = in.Intern(Type{Kind: KindInt})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	if id, ok := in.index[t]; ok {
		return id
	}
	return in.internRaw(t)
}

func (in *Interner) internRaw(t Type) TypeID {
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, t)
	in.index[t] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if in == nil || id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// KindOf returns the kind of id, KindInvalid for unknown ids.
func (in *Interner) KindOf(id TypeID) Kind {
	tt, _ := in.Lookup(id)
	return tt.Kind
}

// IsError reports whether id should be treated as the error sentinel.
// A missing annotation (NoTypeID) counts as one.
func (in *Interner) IsError(id TypeID) bool {
	k := in.KindOf(id)
	return k == KindError || k == KindInvalid
}

func (in *Interner) IsFn(id TypeID) bool     { return in.KindOf(id) == KindFn }
func (in *Interner) IsStruct(id TypeID) bool { return in.KindOf(id) == KindStruct }
func (in *Interner) IsVoid(id TypeID) bool   { return in.KindOf(id) == KindVoid }

// Len reports the number of distinct types, the NoTypeID slot included.
func (in *Interner) Len() int {
	return len(in.types)
}
