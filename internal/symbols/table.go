package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"lilc/internal/source"
	"lilc/internal/types"
)

type Hints struct{ Scopes, Symbols uint }

// Table owns every scope and symbol of one compilation unit, open or closed.
// It outlives the name analysis pass so that later stages and dumps can read it.
type Table struct {
	Scopes  *Scopes
	Symbols *Symbols
	Strings *source.Interner
	Types   *types.Interner
}

// NewTable builds an empty table. Nil strings or types get fresh interners.
func NewTable(h Hints, strings *source.Interner, typesIn *types.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbol capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	if typesIn == nil {
		typesIn = types.NewInterner()
	}
	return &Table{
		Scopes:  NewScopes(scopeCap),
		Symbols: NewSymbols(symCap),
		Strings: strings,
		Types:   typesIn,
	}
}

// Name returns the text of a symbol name.
func (t *Table) Name(id source.StringID) string {
	s, _ := t.Strings.Lookup(id)
	return s
}
