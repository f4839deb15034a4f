package token

// Kind represents the category of a source token.
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	Ident
	IntLit
	StringLit

	// keywords
	KwInt
	KwBool
	KwVoid
	KwStruct
	KwIf
	KwElse
	KwWhile
	KwReturn
	KwCin
	KwCout
	KwTrue
	KwFalse

	// punctuation
	LBrace    // {
	RBrace    // }
	LParen    // (
	RParen    // )
	Semicolon // ;
	Comma     // ,
	Dot       // .

	// operators
	Write      // <<
	Read       // >>
	PlusPlus   // ++
	MinusMinus // --
	Plus       // +
	Minus      // -
	Star       // *
	Slash      // /
	Bang       // !
	AndAnd     // &&
	OrOr       // ||
	EqEq       // ==
	BangEq     // !=
	Lt         // <
	Gt         // >
	LtEq       // <=
	GtEq       // >=
	Assign     // =
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	IntLit:     "IntLit",
	StringLit:  "StringLit",
	KwInt:      "int",
	KwBool:     "bool",
	KwVoid:     "void",
	KwStruct:   "struct",
	KwIf:       "if",
	KwElse:     "else",
	KwWhile:    "while",
	KwReturn:   "return",
	KwCin:      "cin",
	KwCout:     "cout",
	KwTrue:     "true",
	KwFalse:    "false",
	LBrace:     "{",
	RBrace:     "}",
	LParen:     "(",
	RParen:     ")",
	Semicolon:  ";",
	Comma:      ",",
	Dot:        ".",
	Write:      "<<",
	Read:       ">>",
	PlusPlus:   "++",
	MinusMinus: "--",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Bang:       "!",
	AndAnd:     "&&",
	OrOr:       "||",
	EqEq:       "==",
	BangEq:     "!=",
	Lt:         "<",
	Gt:         ">",
	LtEq:       "<=",
	GtEq:       ">=",
	Assign:     "=",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
