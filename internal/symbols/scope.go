package symbols

import (
	"lilc/internal/ast"
	"lilc/internal/source"
)

// ScopeKind enumerates scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeGlobal             // top-level declarations of the program
	ScopeFunction           // formals and the outermost body block
	ScopeBlock              // if/else/while bodies
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// ScopeOwnerKind says which AST construct opened a scope.
type ScopeOwnerKind uint8

const (
	ScopeOwnerUnknown ScopeOwnerKind = iota
	ScopeOwnerFile
	ScopeOwnerDecl
	ScopeOwnerStmt
)

type ScopeOwner struct {
	Kind ScopeOwnerKind
	File ast.FileID
	Decl ast.DeclID
	Stmt ast.StmtID
}

// Scope is one lexical scope. Each name appears at most once in NameIndex;
// Symbols keeps insertion order.
type Scope struct {
	Kind      ScopeKind
	Parent    ScopeID
	Owner     ScopeOwner
	Span      source.Span
	NameIndex map[source.StringID]SymbolID
	Symbols   []SymbolID
	Children  []ScopeID
}
