package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadEscape          Code = 1003
	LexIntOverflow        Code = 1004

	// Синтаксические
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectSemicolon   Code = 2002
	SynExpectIdentifier  Code = 2003
	SynExpectType        Code = 2004
	SynExpectExpression  Code = 2005
	SynUnclosedDelimiter Code = 2006
	SynExpectStatement   Code = 2007

	// Семантические: разрешение имён
	SemaInfo                 Code = 3000
	SemaMultiplyDeclared     Code = 3001
	SemaUndeclared           Code = 3002
	SemaNonFunctionVoid      Code = 3003
	SemaInvalidStructType    Code = 3004
	SemaInvalidStructField   Code = 3005
	SemaDotAccessOnNonStruct Code = 3006

	// Семантические: типы
	SemaBadArithmeticOperand Code = 3101
	SemaBadRelationalOperand Code = 3102
	SemaBadLogicalOperand    Code = 3103
	SemaBadEqualityOperand   Code = 3104
	SemaAssignTypeMismatch   Code = 3105
	SemaAssignFromFnOrStruct Code = 3106
	SemaAssignToNonLvalue    Code = 3107
	SemaBadCallee            Code = 3108
	SemaArgCountMismatch     Code = 3109
	SemaArgTypeMismatch      Code = 3110
	SemaBadConditionType     Code = 3111
	SemaReturnFromVoid       Code = 3112
	SemaMissingReturnValue   Code = 3113
	SemaReturnTypeMismatch   Code = 3114
	SemaBadWriteType         Code = 3115

	// I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Проект
	ProjInvalidConfig Code = 5001

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexInfo:               "Lexical information",
	LexUnknownChar:        "Illegal character",
	LexUnterminatedString: "Unterminated string literal",
	LexBadEscape:          "String literal with bad escape sequence",
	LexIntOverflow:        "Integer literal too large",

	SynInfo:              "Syntax information",
	SynUnexpectedToken:   "Unexpected token",
	SynExpectSemicolon:   "Expected ';'",
	SynExpectIdentifier:  "Expected identifier",
	SynExpectType:        "Expected type",
	SynExpectExpression:  "Expected expression",
	SynUnclosedDelimiter: "Unclosed delimiter",
	SynExpectStatement:   "Expected statement",

	SemaInfo:                 "Semantic information",
	SemaMultiplyDeclared:     "Multiply declared identifier",
	SemaUndeclared:           "Undeclared identifier",
	SemaNonFunctionVoid:      "Non-function declared void",
	SemaInvalidStructType:    "Invalid name of struct type",
	SemaInvalidStructField:   "Invalid struct field name",
	SemaDotAccessOnNonStruct: "Dot-access of non-struct type",

	SemaBadArithmeticOperand: "Arithmetic operator applied to non-numeric operand",
	SemaBadRelationalOperand: "Relational operator applied to non-numeric operand",
	SemaBadLogicalOperand:    "Logical operator applied to non-bool operand",
	SemaBadEqualityOperand:   "Equality operator applied to incompatible operands",
	SemaAssignTypeMismatch:   "Type mismatch",
	SemaAssignFromFnOrStruct: "Function or struct assignment",
	SemaAssignToNonLvalue:    "Assignment to non-location",
	SemaBadCallee:            "Attempt to call a non-function",
	SemaArgCountMismatch:     "Function call with wrong number of args",
	SemaArgTypeMismatch:      "Type of actual does not match type of formal",
	SemaBadConditionType:     "Non-bool expression used as a condition",
	SemaReturnFromVoid:       "Return with a value in a void function",
	SemaMissingReturnValue:   "Missing return value",
	SemaReturnTypeMismatch:   "Bad return value",
	SemaBadWriteType:         "Attempt to write a function or struct",

	IOLoadFileError:  "I/O load file error",
	IOWriteFileError: "I/O write file error",

	ProjInvalidConfig: "Invalid project configuration",

	ObsInfo:    "Observability information",
	ObsTimings: "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
