package types

import (
	"testing"

	"lilc/internal/source"
)

func TestInternerBuiltins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	ids := []TypeID{b.Error, b.Void, b.Bool, b.Int, b.String}
	seen := map[TypeID]bool{}
	for _, id := range ids {
		if id == NoTypeID {
			t.Fatalf("builtin not initialized")
		}
		if seen[id] {
			t.Fatalf("builtin %d shared between kinds", id)
		}
		seen[id] = true
	}
	if in.Intern(Type{Kind: KindInt}) != b.Int {
		t.Fatalf("primitive not deduplicated")
	}
	if !in.IsError(b.Error) || !in.IsError(NoTypeID) || in.IsError(b.Int) {
		t.Fatalf("IsError misclassifies")
	}
}

func TestRegisterFnDeduplicates(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	f1 := in.RegisterFn([]TypeID{b.Int, b.Bool}, b.Void)
	f2 := in.RegisterFn([]TypeID{b.Int, b.Bool}, b.Void)
	f3 := in.RegisterFn([]TypeID{b.Bool, b.Int}, b.Void)
	if f1 != f2 {
		t.Fatalf("identical signatures must share a TypeID")
	}
	if f1 == f3 {
		t.Fatalf("parameter order must matter")
	}
	info, ok := in.FnInfo(f1)
	if !ok || len(info.Params) != 2 || info.Result != b.Void {
		t.Fatalf("FnInfo = %+v, %v", info, ok)
	}
	if _, ok := in.FnInfo(b.Int); ok {
		t.Fatalf("FnInfo on int must fail")
	}
}

func TestStructsAreNominal(t *testing.T) {
	in := NewInterner()
	strs := source.NewInterner()
	name := strs.Intern("S")
	s1 := in.RegisterStruct(name, "S", source.Span{})
	s2 := in.RegisterStruct(name, "S", source.Span{Start: 10, End: 11})
	if s1 == s2 {
		t.Fatalf("each struct declaration must get its own type")
	}
	if !in.IsStruct(s1) || in.IsFn(s1) {
		t.Fatalf("struct predicates broken")
	}
	info, ok := in.StructInfo(s2)
	if !ok || info.Decl.Start != 10 || info.Name != name {
		t.Fatalf("StructInfo = %+v, %v", info, ok)
	}
}

func TestLabel(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	s := in.RegisterStruct(source.NoStringID, "Point", source.Span{})
	tests := []struct {
		id   TypeID
		want string
	}{
		{b.Int, "int"},
		{b.Bool, "bool"},
		{b.Void, "void"},
		{b.String, "string"},
		{b.Error, "<error>"},
		{s, "Point"},
		{in.RegisterFn([]TypeID{b.Int, s}, b.Bool), "int,Point->bool"},
		{in.RegisterFn(nil, b.Void), "->void"},
		{NoTypeID, "?"},
	}
	for _, tt := range tests {
		if got := Label(in, tt.id); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
