package symbols

import (
	"fmt"

	"lilc/internal/diag"
	"lilc/internal/source"
	"lilc/internal/types"
)

type ResolverOptions struct {
	Reporter diag.Reporter
}

// Resolver is the scope stack over a Table: the innermost open scope is last.
type Resolver struct {
	table    *Table
	reporter diag.Reporter
	stack    []ScopeID
}

// NewResolver starts with an empty stack; the caller opens the global scope.
func NewResolver(table *Table, opts ResolverOptions) *Resolver {
	return &Resolver{
		table:    table,
		reporter: opts.Reporter,
		stack:    make([]ScopeID, 0, 8),
	}
}

func (r *Resolver) Table() *Table { return r.table }

// Depth is the number of open scopes.
func (r *Resolver) Depth() int { return len(r.stack) }

// CurrentScope returns the innermost open scope, or NoScopeID.
func (r *Resolver) CurrentScope() ScopeID {
	if len(r.stack) == 0 {
		return NoScopeID
	}
	return r.stack[len(r.stack)-1]
}

// Enter opens a new empty scope nested in the current one.
func (r *Resolver) Enter(kind ScopeKind, owner ScopeOwner, span source.Span) ScopeID {
	id := r.table.Scopes.New(kind, r.CurrentScope(), owner, span)
	r.stack = append(r.stack, id)
	return id
}

// Leave closes the innermost scope, which must be expected. The closed scope
// stays in the table. Panics with *StackError on an empty stack or a mismatch.
func (r *Resolver) Leave(expected ScopeID) {
	top := r.CurrentScope()
	if !top.IsValid() || expected.IsValid() && top != expected {
		panic(&StackError{Op: "leave", Expected: expected, Top: top, Depth: len(r.stack)})
	}
	r.stack = r.stack[:len(r.stack)-1]
}

// WithScope runs fn inside a fresh scope and closes it on every exit path.
func (r *Resolver) WithScope(kind ScopeKind, owner ScopeOwner, span source.Span, fn func(ScopeID)) {
	id := r.Enter(kind, owner, span)
	defer r.Leave(id)
	fn(id)
}

// Declare inserts sym into the current scope unless the name is already
// there; a clash reports SemaMultiplyDeclared and keeps the first symbol.
// Shadowing names of outer scopes is allowed.
func (r *Resolver) Declare(sym Symbol) (SymbolID, bool) {
	scopeID := r.CurrentScope()
	scope := r.table.Scopes.Get(scopeID)
	if scope == nil {
		panic(&StackError{Op: "declare"})
	}
	if prev, exists := scope.NameIndex[sym.Name]; exists {
		r.reportDuplicate(sym.Name, sym.Span, r.table.Symbols.Get(prev))
		return NoSymbolID, false
	}
	sym.Scope = scopeID
	id := r.table.Symbols.New(&sym)
	scope.NameIndex[sym.Name] = id
	scope.Symbols = append(scope.Symbols, id)
	return id, true
}

// DeclareStruct declares a struct symbol with its fields and gives it a
// fresh nominal type. Duplicate names are handled like Declare.
func (r *Resolver) DeclareStruct(name source.StringID, span source.Span, decl Symbol, fields []Field) (SymbolID, bool) {
	if prev, exists := r.LookupLocal(name); exists {
		r.reportDuplicate(name, span, r.table.Symbols.Get(prev))
		return NoSymbolID, false
	}
	decl.Name = name
	decl.Span = span
	decl.Kind = SymbolStruct
	decl.Fields = fields
	decl.Type = r.table.Types.RegisterStruct(name, r.table.Name(name), span)
	return r.Declare(decl)
}

// Lookup searches from the innermost scope outwards.
func (r *Resolver) Lookup(name source.StringID) (SymbolID, bool) {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if scope := r.table.Scopes.Get(r.stack[i]); scope != nil {
			if id, ok := scope.NameIndex[name]; ok {
				return id, true
			}
		}
	}
	return NoSymbolID, false
}

// LookupLocal searches the current scope only.
func (r *Resolver) LookupLocal(name source.StringID) (SymbolID, bool) {
	scope := r.table.Scopes.Get(r.CurrentScope())
	if scope == nil {
		return NoSymbolID, false
	}
	id, ok := scope.NameIndex[name]
	return id, ok
}

// LookupStruct finds the visible struct symbol called name.
func (r *Resolver) LookupStruct(name source.StringID) (*Symbol, bool) {
	id, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	sym := r.table.Symbols.Get(id)
	if sym == nil || sym.Kind != SymbolStruct {
		return nil, false
	}
	return sym, true
}

// FieldType returns the type of fieldName in the struct visible as structName.
func (r *Resolver) FieldType(structName, fieldName source.StringID) (types.TypeID, bool) {
	st, ok := r.LookupStruct(structName)
	if !ok {
		return types.NoTypeID, false
	}
	f, ok := st.Field(fieldName)
	if !ok {
		return types.NoTypeID, false
	}
	return f.Type, true
}

func (r *Resolver) Symbol(id SymbolID) *Symbol {
	return r.table.Symbols.Get(id)
}

func (r *Resolver) reportDuplicate(name source.StringID, span source.Span, prev *Symbol) {
	if r.reporter == nil {
		return
	}
	nameStr := r.table.Name(name)
	b := diag.ReportError(r.reporter, diag.SemaMultiplyDeclared, span,
		fmt.Sprintf("multiply declared identifier %q", nameStr)).
		WithSubject(nameStr)
	if prev != nil && prev.Span != (source.Span{}) {
		b.WithNote(prev.Span, "previous declaration here")
	}
	b.Emit()
}
