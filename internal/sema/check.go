package sema

import (
	"strconv"

	"lilc/internal/ast"
	"lilc/internal/diag"
	"lilc/internal/symbols"
	"lilc/internal/trace"
	"lilc/internal/types"
)

// Options configure a type analysis run over one file.
type Options struct {
	Reporter diag.Reporter
	// Symbols is the name analysis result for the same file. Function result
	// types come from it; without it returns are not checked.
	Symbols *symbols.Result
	// Types defaults to Symbols.Table.Types, then to a fresh interner.
	Types  *types.Interner
	Tracer trace.Tracer
	Parent uint64
}

// Result stores what type analysis produced.
type Result struct {
	TypeInterner *types.Interner
	// ExprTypes holds the type of every expression visited.
	ExprTypes   map[ast.ExprID]types.TypeID
	OK          bool
	Diagnostics []*diag.Diagnostic
}

// Check computes expression types bottom-up and checks statement rules. It
// visits every node even when name analysis failed; a check whose operand has
// the Error type passes silently.
func Check(builder *ast.Builder, fileID ast.FileID, opts Options) (res Result) {
	res.ExprTypes = make(map[ast.ExprID]types.TypeID)
	switch {
	case opts.Types != nil:
		res.TypeInterner = opts.Types
	case opts.Symbols != nil && opts.Symbols.Table != nil:
		res.TypeInterner = opts.Symbols.Table.Types
	default:
		res.TypeInterner = types.NewInterner()
	}
	counter := &diag.CountingReporter{Next: opts.Reporter}
	defer func() {
		res.OK = counter.Total() == 0
		res.Diagnostics = counter.Items()
	}()

	if builder == nil || !fileID.IsValid() {
		return res
	}
	file := builder.Files.Get(fileID)
	if file == nil {
		return res
	}

	span := trace.Begin(opts.Tracer, trace.ScopePass, "types", opts.Parent)
	defer func() {
		span.WithExtra("exprs", strconv.Itoa(len(res.ExprTypes))).
			WithExtra("diagnostics", strconv.Itoa(counter.Total())).
			End("")
	}()

	tc := typeChecker{
		builder:  builder,
		reporter: counter,
		symbols:  opts.Symbols,
		types:    res.TypeInterner,
		builtins: res.TypeInterner.Builtins(),
		result:   &res,
		tracer:   opts.Tracer,
		span:     span,
	}
	for _, declID := range file.Decls {
		tc.checkTopDecl(declID)
	}
	return res
}

type typeChecker struct {
	builder  *ast.Builder
	reporter diag.Reporter
	symbols  *symbols.Result
	types    *types.Interner
	builtins types.Builtins
	result   *Result
	tracer   trace.Tracer
	span     *trace.Span

	// fnResult is the declared result of the function being checked;
	// Error when it is unknown.
	fnResult types.TypeID
}
