package ast

import "lilc/internal/source"

type DeclKind uint8

const (
	DeclVar DeclKind = iota
	DeclFormal
	DeclFn
	DeclStruct
)

func (k DeclKind) String() string {
	switch k {
	case DeclVar:
		return "VarDecl"
	case DeclFormal:
		return "FormalDecl"
	case DeclFn:
		return "FnDecl"
	case DeclStruct:
		return "StructDecl"
	default:
		return "DeclKind(?)"
	}
}

// Decl holds what every declaration has; the rest lives in the per-kind payload.
type Decl struct {
	Kind     DeclKind
	Span     source.Span
	Name     source.StringID
	NameSpan source.Span
	Payload  PayloadID
}

// DeclVarData is the payload of both DeclVar and DeclFormal.
type DeclVarData struct {
	Type TypeID
}

type DeclFnData struct {
	Result TypeID
	Params []DeclID // DeclFormal
	Body   Block
}

type DeclStructData struct {
	Fields []DeclID // DeclVar
}

type Decls struct {
	Arena   *Arena[Decl]
	Vars    *Arena[DeclVarData]
	Fns     *Arena[DeclFnData]
	Structs *Arena[DeclStructData]
}

func NewDecls(capHint uint) *Decls {
	return &Decls{
		Arena:   NewArena[Decl](capHint),
		Vars:    NewArena[DeclVarData](capHint),
		Fns:     NewArena[DeclFnData](capHint / 4),
		Structs: NewArena[DeclStructData](capHint / 8),
	}
}

func (d *Decls) new(kind DeclKind, sp source.Span, name source.StringID, nameSpan source.Span, payload PayloadID) DeclID {
	return DeclID(d.Arena.Allocate(Decl{
		Kind:     kind,
		Span:     sp,
		Name:     name,
		NameSpan: nameSpan,
		Payload:  payload,
	}))
}

func (d *Decls) Get(id DeclID) *Decl {
	return d.Arena.Get(uint32(id))
}

func (d *Decls) NewVar(sp source.Span, name source.StringID, nameSpan source.Span, typ TypeID) DeclID {
	payload := d.Vars.Allocate(DeclVarData{Type: typ})
	return d.new(DeclVar, sp, name, nameSpan, PayloadID(payload))
}

func (d *Decls) NewFormal(sp source.Span, name source.StringID, nameSpan source.Span, typ TypeID) DeclID {
	payload := d.Vars.Allocate(DeclVarData{Type: typ})
	return d.new(DeclFormal, sp, name, nameSpan, PayloadID(payload))
}

// Var returns the payload of a DeclVar or DeclFormal.
func (d *Decls) Var(id DeclID) (*DeclVarData, bool) {
	decl := d.Get(id)
	if decl == nil || (decl.Kind != DeclVar && decl.Kind != DeclFormal) {
		return nil, false
	}
	return d.Vars.Get(uint32(decl.Payload)), true
}

func (d *Decls) NewFn(sp source.Span, name source.StringID, nameSpan source.Span, result TypeID, params []DeclID, body Block) DeclID {
	payload := d.Fns.Allocate(DeclFnData{Result: result, Params: params, Body: body})
	return d.new(DeclFn, sp, name, nameSpan, PayloadID(payload))
}

func (d *Decls) Fn(id DeclID) (*DeclFnData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclFn {
		return nil, false
	}
	return d.Fns.Get(uint32(decl.Payload)), true
}

func (d *Decls) NewStruct(sp source.Span, name source.StringID, nameSpan source.Span, fields []DeclID) DeclID {
	payload := d.Structs.Allocate(DeclStructData{Fields: fields})
	return d.new(DeclStruct, sp, name, nameSpan, PayloadID(payload))
}

func (d *Decls) Struct(id DeclID) (*DeclStructData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclStruct {
		return nil, false
	}
	return d.Structs.Get(uint32(decl.Payload)), true
}
