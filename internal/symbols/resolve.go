package symbols

import (
	"strconv"

	"lilc/internal/ast"
	"lilc/internal/diag"
	"lilc/internal/source"
	"lilc/internal/trace"
	"lilc/internal/types"
)

// ResolveOptions controls one name analysis run.
type ResolveOptions struct {
	Table    *Table          // nil: a fresh table over builder's interner
	Types    *types.Interner // used when Table is nil
	Hints    Hints
	Reporter diag.Reporter
	Tracer   trace.Tracer
	Parent   uint64 // parent trace span
	Validate bool   // run Table.Validate after the walk
}

// Result is everything name analysis produced for one file.
type Result struct {
	Table  *Table
	File   ast.FileID
	Global ScopeID

	// Bindings maps every resolved Ident use to its symbol.
	Bindings map[ast.ExprID]SymbolID
	// DeclSymbols maps each successfully declared Decl to its symbol.
	DeclSymbols map[ast.DeclID]SymbolID
	// FnTypes holds the Fn type of every function declaration, duplicates included.
	FnTypes map[ast.DeclID]types.TypeID

	OK          bool
	Diagnostics []*diag.Diagnostic
}

// ResolveFile runs name analysis over fileID: it fills the table, annotates
// Ident and Member nodes with their types and reports naming errors. It never
// stops early.
func ResolveFile(builder *ast.Builder, fileID ast.FileID, opts ResolveOptions) Result {
	table := opts.Table
	if table == nil {
		table = NewTable(opts.Hints, builder.StringsInterner, opts.Types)
	}
	counter := &diag.CountingReporter{Next: opts.Reporter}

	result := Result{
		Table:       table,
		File:        fileID,
		Bindings:    make(map[ast.ExprID]SymbolID),
		DeclSymbols: make(map[ast.DeclID]SymbolID),
		FnTypes:     make(map[ast.DeclID]types.TypeID),
	}

	file := builder.Files.Get(fileID)
	if file == nil {
		result.OK = true
		return result
	}

	span := trace.Begin(opts.Tracer, trace.ScopePass, "names", opts.Parent)
	defer func() {
		span.WithExtra("symbols", strconv.Itoa(table.Symbols.Len())).
			WithExtra("diagnostics", strconv.Itoa(counter.Total())).
			End("")
	}()

	fr := fileResolver{
		builder:  builder,
		table:    table,
		result:   &result,
		resolver: NewResolver(table, ResolverOptions{Reporter: counter}),
		reporter: counter,
		builtins: table.Types.Builtins(),
		tracer:   opts.Tracer,
		span:     span,
	}

	owner := ScopeOwner{Kind: ScopeOwnerFile, File: fileID}
	fr.resolver.WithScope(ScopeGlobal, owner, file.Span, func(global ScopeID) {
		result.Global = global
		for _, declID := range file.Decls {
			fr.handleTopDecl(declID)
		}
	})

	if opts.Validate {
		if err := table.Validate(); err != nil {
			panic(err)
		}
	}

	result.OK = counter.Total() == 0
	result.Diagnostics = counter.Items()
	return result
}

type fileResolver struct {
	builder  *ast.Builder
	table    *Table
	result   *Result
	resolver *Resolver
	reporter diag.Reporter
	builtins types.Builtins
	tracer   trace.Tracer
	span     *trace.Span
}

func (fr *fileResolver) name(id source.StringID) string {
	return fr.builder.Name(id)
}

func (fr *fileResolver) report(code diag.Code, sp source.Span, msg, subject string) {
	diag.ReportError(fr.reporter, code, sp, msg).WithSubject(subject).Emit()
}

func (fr *fileResolver) handleTopDecl(id ast.DeclID) {
	decl := fr.builder.Decls.Get(id)
	node := trace.Begin(fr.tracer, trace.ScopeNode, decl.Kind.String()+":"+fr.name(decl.Name), fr.span.ID())
	defer node.End("")

	switch decl.Kind {
	case ast.DeclVar:
		fr.declareValue(id, SymbolVar)
	case ast.DeclStruct:
		fr.declareStruct(id)
	case ast.DeclFn:
		fr.declareFn(id)
	default:
		ast.Unhandled("names", "decl", decl.Kind)
	}
}
