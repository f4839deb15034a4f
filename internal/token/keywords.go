package token

var keywords = map[string]Kind{
	"int":    KwInt,
	"bool":   KwBool,
	"void":   KwVoid,
	"struct": KwStruct,
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
	"return": KwReturn,
	"cin":    KwCin,
	"cout":   KwCout,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword reports whether ident is a keyword. Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
