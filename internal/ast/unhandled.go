package ast

import "fmt"

// UnhandledKindError is raised (via panic) when a traversal meets a node kind it
// has no case for. It marks a compiler defect, never a problem in the input.
type UnhandledKindError struct {
	Pass     string // "names", "types", "unparse"
	Category string // "decl", "stmt", "expr", "type"
	Kind     fmt.Stringer
}

func (e *UnhandledKindError) Error() string {
	return fmt.Sprintf("internal compiler error: %s pass has no case for %s %s", e.Pass, e.Category, e.Kind)
}

// Unhandled panics with an *UnhandledKindError.
func Unhandled(pass, category string, kind fmt.Stringer) {
	panic(&UnhandledKindError{Pass: pass, Category: category, Kind: kind})
}
