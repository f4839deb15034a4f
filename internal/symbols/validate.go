package symbols

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks the structural invariants of the table: parent and child
// links agree, every symbol sits in the scope that indexes it, and no name is
// indexed twice in one scope. It returns all problems joined, or nil.
func (t *Table) Validate() error {
	var errs []error
	for id := ScopeID(1); int(id) <= t.Scopes.Len(); id++ {
		scope := t.Scopes.Get(id)
		if scope.Kind == ScopeInvalid {
			errs = append(errs, fmt.Errorf("scope %d has invalid kind", id))
		}
		if scope.Parent.IsValid() {
			parent := t.Scopes.Get(scope.Parent)
			switch {
			case parent == nil || scope.Parent == id:
				errs = append(errs, fmt.Errorf("scope %d has invalid parent %d", id, scope.Parent))
			case !slices.Contains(parent.Children, id):
				errs = append(errs, fmt.Errorf("scope %d parent %d missing backlink", id, scope.Parent))
			}
		}
		for _, child := range scope.Children {
			if c := t.Scopes.Get(child); c == nil || c.Parent != id {
				errs = append(errs, fmt.Errorf("scope %d child %d missing parent backlink", id, child))
			}
		}
		if len(scope.NameIndex) != len(scope.Symbols) {
			errs = append(errs, fmt.Errorf("scope %d indexes %d names for %d symbols", id, len(scope.NameIndex), len(scope.Symbols)))
		}
		for _, symID := range scope.Symbols {
			sym := t.Symbols.Get(symID)
			if sym == nil {
				errs = append(errs, fmt.Errorf("scope %d lists unknown symbol %d", id, symID))
				continue
			}
			if sym.Scope != id {
				errs = append(errs, fmt.Errorf("symbol %d listed in scope %d but owned by %d", symID, id, sym.Scope))
			}
			if scope.NameIndex[sym.Name] != symID {
				errs = append(errs, fmt.Errorf("scope %d name index does not point at symbol %d", id, symID))
			}
		}
	}
	return errors.Join(errs...)
}
