package ast

import (
	"lilc/internal/source"
	"lilc/internal/types"
)

// Exprs manages allocation of expressions and their per-kind payloads.
type Exprs struct {
	Arena    *Arena[Expr]
	Literals *Arena[ExprLiteralData]
	Idents   *Arena[ExprIdentData]
	Members  *Arena[ExprMemberData]
	Assigns  *Arena[ExprAssignData]
	Calls    *Arena[ExprCallData]
	Unaries  *Arena[ExprUnaryData]
	Binaries *Arena[ExprBinaryData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Literals: NewArena[ExprLiteralData](capHint / 4),
		Idents:   NewArena[ExprIdentData](capHint / 2),
		Members:  NewArena[ExprMemberData](capHint / 8),
		Assigns:  NewArena[ExprAssignData](capHint / 8),
		Calls:    NewArena[ExprCallData](capHint / 8),
		Unaries:  NewArena[ExprUnaryData](capHint / 8),
		Binaries: NewArena[ExprBinaryData](capHint / 4),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: PayloadID(payload)}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) payload(id ExprID, kind ExprKind) (uint32, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != kind {
		return 0, false
	}
	return uint32(expr.Payload), true
}

func (e *Exprs) NewLiteral(span source.Span, kind ExprLitKind, value source.StringID, intValue int32) ExprID {
	return e.new(ExprLit, span, e.Literals.Allocate(ExprLiteralData{Kind: kind, Value: value, Int: intValue}))
}

func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	p, ok := e.payload(id, ExprLit)
	if !ok {
		return nil, false
	}
	return e.Literals.Get(p), true
}

func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	return e.new(ExprIdent, span, e.Idents.Allocate(ExprIdentData{Name: name}))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	p, ok := e.payload(id, ExprIdent)
	if !ok {
		return nil, false
	}
	return e.Idents.Get(p), true
}

func (e *Exprs) NewMember(span source.Span, target ExprID, field source.StringID, fieldSpan source.Span) ExprID {
	return e.new(ExprMember, span, e.Members.Allocate(ExprMemberData{Target: target, Field: field, FieldSpan: fieldSpan}))
}

func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	p, ok := e.payload(id, ExprMember)
	if !ok {
		return nil, false
	}
	return e.Members.Get(p), true
}

func (e *Exprs) NewAssign(span source.Span, target, value ExprID) ExprID {
	return e.new(ExprAssign, span, e.Assigns.Allocate(ExprAssignData{Target: target, Value: value}))
}

func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	p, ok := e.payload(id, ExprAssign)
	if !ok {
		return nil, false
	}
	return e.Assigns.Get(p), true
}

func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	return e.new(ExprCall, span, e.Calls.Allocate(ExprCallData{Callee: callee, Args: args}))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	p, ok := e.payload(id, ExprCall)
	if !ok {
		return nil, false
	}
	return e.Calls.Get(p), true
}

func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	return e.new(ExprUnary, span, e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand}))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	p, ok := e.payload(id, ExprUnary)
	if !ok {
		return nil, false
	}
	return e.Unaries.Get(p), true
}

func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	return e.new(ExprBinary, span, e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right}))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	p, ok := e.payload(id, ExprBinary)
	if !ok {
		return nil, false
	}
	return e.Binaries.Get(p), true
}

// SetType writes the resolved-type annotation of an Ident or Member node.
// It is the only mutation allowed after construction; other kinds return false.
func (e *Exprs) SetType(id ExprID, t types.TypeID) bool {
	if data, ok := e.Ident(id); ok {
		data.Type = t
		return true
	}
	if data, ok := e.Member(id); ok {
		data.Type = t
		return true
	}
	return false
}

// AnnotatedType returns the annotation of an Ident or Member node.
func (e *Exprs) AnnotatedType(id ExprID) (types.TypeID, bool) {
	if data, ok := e.Ident(id); ok {
		return data.Type, true
	}
	if data, ok := e.Member(id); ok {
		return data.Type, true
	}
	return types.NoTypeID, false
}

// IsLocation reports whether id may appear on the left of '=' or after 'cin >>'.
func (e *Exprs) IsLocation(id ExprID) bool {
	expr := e.Get(id)
	return expr != nil && (expr.Kind == ExprIdent || expr.Kind == ExprMember)
}
