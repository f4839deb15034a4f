package ast

import "lilc/internal/source"

type StmtKind uint8

const (
	StmtAssign StmtKind = iota // exp '=' exp ';'
	StmtPostInc
	StmtPostDec
	StmtRead  // cin >> loc;
	StmtWrite // cout << exp;
	StmtIf
	StmtIfElse
	StmtWhile
	StmtCall
	StmtReturn
)

func (k StmtKind) String() string {
	switch k {
	case StmtAssign:
		return "AssignStmt"
	case StmtPostInc:
		return "PostIncStmt"
	case StmtPostDec:
		return "PostDecStmt"
	case StmtRead:
		return "ReadStmt"
	case StmtWrite:
		return "WriteStmt"
	case StmtIf:
		return "IfStmt"
	case StmtIfElse:
		return "IfElseStmt"
	case StmtWhile:
		return "WhileStmt"
	case StmtCall:
		return "CallStmt"
	case StmtReturn:
		return "ReturnStmt"
	default:
		return "StmtKind(?)"
	}
}

// Stmt is a statement node. Simple statements keep their single expression
// in Expr (NoExprID for a bare return); structured ones use a payload.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Expr    ExprID
	Payload PayloadID
}

// StmtIfData is shared by StmtIf (Else unused) and StmtIfElse.
type StmtIfData struct {
	Cond ExprID
	Then Block
	Else Block
}

type StmtWhileData struct {
	Cond ExprID
	Body Block
}

type Stmts struct {
	Arena  *Arena[Stmt]
	Ifs    *Arena[StmtIfData]
	Whiles *Arena[StmtWhileData]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{
		Arena:  NewArena[Stmt](capHint),
		Ifs:    NewArena[StmtIfData](capHint / 4),
		Whiles: NewArena[StmtWhileData](capHint / 8),
	}
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewSimple creates any statement kind that carries only an expression.
func (s *Stmts) NewSimple(kind StmtKind, sp source.Span, expr ExprID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: sp, Expr: expr}))
}

func (s *Stmts) NewIf(sp source.Span, cond ExprID, then Block) StmtID {
	payload := s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then})
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtIf, Span: sp, Payload: PayloadID(payload)}))
}

func (s *Stmts) NewIfElse(sp source.Span, cond ExprID, then, els Block) StmtID {
	payload := s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then, Else: els})
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtIfElse, Span: sp, Payload: PayloadID(payload)}))
}

func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	stmt := s.Get(id)
	if stmt == nil || (stmt.Kind != StmtIf && stmt.Kind != StmtIfElse) {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewWhile(sp source.Span, cond ExprID, body Block) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body})
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtWhile, Span: sp, Payload: PayloadID(payload)}))
}

func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}
