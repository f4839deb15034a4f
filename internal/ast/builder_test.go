package ast

import (
	"errors"
	"testing"

	"lilc/internal/source"
	"lilc/internal/types"
)

func TestArenaIsOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil {
		t.Fatalf("index 0 must be nil")
	}
	id := a.Allocate(42)
	if id != 1 || *a.Get(id) != 42 || a.Len() != 1 {
		t.Fatalf("Allocate/Get mismatch: id=%d", id)
	}
	if a.Get(2) != nil {
		t.Fatalf("out of range index must be nil")
	}
}

func TestBuilderDeclsAndAccessors(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	x := b.StringsInterner.Intern("x")
	intType := b.Types.NewPrimitive(TypeInt, source.Span{})

	file := b.NewFile(source.Span{})
	v := b.Decls.NewVar(source.Span{}, x, source.Span{}, intType)
	b.PushDecl(file, v)

	if got := b.Files.Get(file).Decls; len(got) != 1 || got[0] != v {
		t.Fatalf("PushDecl: %v", got)
	}
	data, ok := b.Decls.Var(v)
	if !ok || data.Type != intType {
		t.Fatalf("Var payload = %+v, %v", data, ok)
	}
	if _, ok := b.Decls.Fn(v); ok {
		t.Fatalf("Fn accessor accepted a VarDecl")
	}
	if b.Name(b.Decls.Get(v).Name) != "x" {
		t.Fatalf("Name lookup broken")
	}
}

func TestSetTypeOnlyOnIdentAndMember(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	tin := types.NewInterner()
	intT := tin.Builtins().Int

	v := b.StringsInterner.Intern("v")
	a := b.StringsInterner.Intern("a")
	id := b.Exprs.NewIdent(source.Span{}, v)
	member := b.Exprs.NewMember(source.Span{}, id, a, source.Span{})
	lit := b.Exprs.NewLiteral(source.Span{}, LitInt, b.StringsInterner.Intern("1"), 1)

	if !b.Exprs.SetType(id, intT) || !b.Exprs.SetType(member, intT) {
		t.Fatalf("SetType rejected ident/member")
	}
	if b.Exprs.SetType(lit, intT) {
		t.Fatalf("SetType accepted a literal")
	}
	if got, ok := b.Exprs.AnnotatedType(member); !ok || got != intT {
		t.Fatalf("AnnotatedType = %d, %v", got, ok)
	}
	if !b.Exprs.IsLocation(member) || b.Exprs.IsLocation(lit) {
		t.Fatalf("IsLocation misclassifies")
	}
}

func TestBinaryOpClasses(t *testing.T) {
	for op := ExprBinaryAdd; op <= ExprBinaryGreaterEq; op++ {
		n := 0
		for _, f := range []bool{op.IsArithmetic(), op.IsLogical(), op.IsEquality(), op.IsRelational()} {
			if f {
				n++
			}
		}
		if n != 1 {
			t.Errorf("operator %s belongs to %d classes", op, n)
		}
	}
}

func TestUnhandledPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		var uk *UnhandledKindError
		if !ok || !errors.As(err, &uk) {
			t.Fatalf("expected *UnhandledKindError panic, got %v", r)
		}
		if uk.Category != "stmt" || uk.Kind.String() != "WhileStmt" {
			t.Fatalf("unexpected payload %+v", uk)
		}
	}()
	Unhandled("types", "stmt", StmtWhile)
}
