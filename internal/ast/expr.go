package ast

import (
	"lilc/internal/source"
	"lilc/internal/types"
)

type ExprKind uint8

const (
	ExprLit ExprKind = iota
	ExprIdent
	ExprMember // target.field
	ExprAssign
	ExprCall
	ExprUnary
	ExprBinary
)

func (k ExprKind) String() string {
	switch k {
	case ExprLit:
		return "Literal"
	case ExprIdent:
		return "Ident"
	case ExprMember:
		return "DotAccess"
	case ExprAssign:
		return "Assign"
	case ExprCall:
		return "Call"
	case ExprUnary:
		return "Unary"
	case ExprBinary:
		return "Binary"
	default:
		return "ExprKind(?)"
	}
}

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type ExprLitKind uint8

const (
	LitInt ExprLitKind = iota
	LitString
	LitTrue
	LitFalse
)

func (k ExprLitKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitString:
		return "string"
	case LitTrue:
		return "true"
	case LitFalse:
		return "false"
	default:
		return "ExprLitKind(?)"
	}
}

// ExprLiteralData keeps the literal text as written (strings with quotes and
// escapes); Int is the clamped value of an int literal.
type ExprLiteralData struct {
	Kind  ExprLitKind
	Value source.StringID
	Int   int32
}

// ExprIdentData is an identifier use. Type is filled in by name analysis.
type ExprIdentData struct {
	Name source.StringID
	Type types.TypeID
}

// ExprMemberData is a field access. Type is filled in by name analysis.
type ExprMemberData struct {
	Target    ExprID
	Field     source.StringID
	FieldSpan source.Span
	Type      types.TypeID
}

type ExprAssignData struct {
	Target ExprID
	Value  ExprID
}

type ExprCallData struct {
	Callee ExprID // always an Ident in parsed programs
	Args   []ExprID
}

type ExprUnaryOp uint8

const (
	ExprUnaryNeg ExprUnaryOp = iota // -
	ExprUnaryNot                    // !
)

func (op ExprUnaryOp) String() string {
	if op == ExprUnaryNot {
		return "!"
	}
	return "-"
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

type ExprBinaryOp uint8

const (
	ExprBinaryAdd ExprBinaryOp = iota
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryAnd
	ExprBinaryOr
	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryGreater
	ExprBinaryLessEq
	ExprBinaryGreaterEq
)

var binaryOpText = [...]string{
	ExprBinaryAdd:       "+",
	ExprBinarySub:       "-",
	ExprBinaryMul:       "*",
	ExprBinaryDiv:       "/",
	ExprBinaryAnd:       "&&",
	ExprBinaryOr:        "||",
	ExprBinaryEq:        "==",
	ExprBinaryNotEq:     "!=",
	ExprBinaryLess:      "<",
	ExprBinaryGreater:   ">",
	ExprBinaryLessEq:    "<=",
	ExprBinaryGreaterEq: ">=",
}

func (op ExprBinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

// IsArithmetic reports + - * /.
func (op ExprBinaryOp) IsArithmetic() bool { return op <= ExprBinaryDiv }

// IsLogical reports && ||.
func (op ExprBinaryOp) IsLogical() bool { return op == ExprBinaryAnd || op == ExprBinaryOr }

// IsEquality reports == !=.
func (op ExprBinaryOp) IsEquality() bool { return op == ExprBinaryEq || op == ExprBinaryNotEq }

// IsRelational reports < > <= >=.
func (op ExprBinaryOp) IsRelational() bool {
	return op >= ExprBinaryLess && op <= ExprBinaryGreaterEq
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}
