package types

import (
	"fmt"

	"fortio.org/safecast"

	"lilc/internal/source"
)

// StructInfo stores metadata for a struct type. Field lists live on the
// declaring symbol, not here.
type StructInfo struct {
	Name  source.StringID
	Label string
	Decl  source.Span
}

// RegisterStruct allocates a fresh nominal struct type. Two declarations with
// the same name (in different scopes) get different TypeIDs.
func (in *Interner) RegisterStruct(name source.StringID, label string, decl source.Span) TypeID {
	in.structs = append(in.structs, StructInfo{Name: name, Label: label, Decl: decl})
	slot, err := safecast.Conv[uint32](len(in.structs) - 1)
	if err != nil {
		panic(fmt.Errorf("struct info overflow: %w", err))
	}
	return in.internRaw(Type{Kind: KindStruct, Payload: slot})
}

// StructInfo returns metadata for the provided struct TypeID.
func (in *Interner) StructInfo(id TypeID) (*StructInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindStruct {
		return nil, false
	}
	return &in.structs[tt.Payload], true
}
