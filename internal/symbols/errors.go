package symbols

import "fmt"

// StackError is the panic value for a broken scope discipline: popping an
// empty stack or popping a scope other than the one expected.
type StackError struct {
	Op       string
	Expected ScopeID
	Top      ScopeID
	Depth    int
}

func (e *StackError) Error() string {
	if e.Depth == 0 {
		return fmt.Sprintf("symbols: %s on empty scope stack", e.Op)
	}
	return fmt.Sprintf("symbols: %s expected scope #%d on top, found #%d (depth %d)", e.Op, e.Expected, e.Top, e.Depth)
}
