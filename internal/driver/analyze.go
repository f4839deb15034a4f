package driver

import (
	"context"
	"fmt"
	"strconv"

	"lilc/internal/ast"
	"lilc/internal/diag"
	"lilc/internal/lexer"
	"lilc/internal/observ"
	"lilc/internal/parser"
	"lilc/internal/project"
	"lilc/internal/sema"
	"lilc/internal/source"
	"lilc/internal/symbols"
	"lilc/internal/token"
	"lilc/internal/trace"
	"lilc/internal/unparse"
)

// Result is everything one file's analysis produced. On a cache hit only
// FileSet, File, Bag, Output, Stage and the flags are filled.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	FileID  ast.FileID
	Bag     *diag.Bag
	Builder *ast.Builder
	Symbols *symbols.Result
	Sema    *sema.Result
	// Output is the unparsed program, annotated when Options.Annotate is set.
	Output []byte

	// Stage is the last pass that ran.
	Stage   Stage
	NamesOK bool
	TypesOK bool
	Cached  bool
	Timing  *observ.Report
}

// OK reports whether the file is well-formed up to the requested stage.
// A pass that failed makes the result not OK even when the bag limit
// dropped its diagnostics.
func (r *Result) OK() bool {
	if r == nil || r.Bag.HasErrors() {
		return false
	}
	if r.Stage.runsNames() && !r.NamesOK {
		return false
	}
	return !r.Stage.runsTypes() || r.TypesOK
}

// AnalyzeFile loads path and runs it through the pipeline up to opts.Stage.
func AnalyzeFile(ctx context.Context, path string, opts Options) (*Result, error) {
	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}
	ph := phases{timer: timer, observer: opts.Observer}

	load := ph.begin(observ.PhaseLoad)
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	ph.end(load, "")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return analyzeLoaded(ctx, fs, fileID, opts, ph), nil
}

// AnalyzeSource runs the pipeline over an in-memory program named name.
func AnalyzeSource(ctx context.Context, name string, content []byte, opts Options) *Result {
	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return analyzeLoaded(ctx, fs, fileID, opts, phases{timer: timer, observer: opts.Observer})
}

func analyzeLoaded(ctx context.Context, fs *source.FileSet, fileID source.FileID, opts Options, ph phases) *Result {
	file := fs.Get(fileID)
	span := trace.BeginCtx(ctx, trace.ScopeFile, file.Path)
	defer span.End("")
	ctx = trace.WithParent(ctx, span)

	var key project.Digest
	if opts.Cache != nil {
		key = cacheKey(file.Content, opts)
		if res, ok := loadCached(opts.Cache, key, fs, file, opts.Stage.orDefault()); ok {
			span.Point("cache", "hit")
			return res
		}
	}

	res := runPipeline(ctx, fs, file, opts, ph)
	if ph.timer != nil {
		report := ph.timer.Report()
		res.Timing = &report
		appendTimingDiagnostic(res.Bag, fileTimings(file.Path, report))
	}
	if opts.Cache != nil {
		if err := storeCached(opts.Cache, key, res); err != nil {
			span.Point("cache", "store failed: "+err.Error())
		}
	}
	return res
}

func runPipeline(ctx context.Context, fs *source.FileSet, file *source.File, opts Options, ph phases) *Result {
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}
	res := &Result{FileSet: fs, File: file, Bag: bag, Stage: opts.Stage.orDefault()}
	tracer := trace.FromContext(ctx)
	parent := trace.ParentFromContext(ctx)

	tok := ph.begin(observ.PhaseTokenize)
	count := tokenizeInto(file, reporter)
	ph.end(tok, "tokens="+strconv.Itoa(count))

	// лексические ошибки уже собраны выше, второй лексер молчит
	parse := ph.begin(observ.PhaseParse)
	builder := ast.NewBuilder(ast.Hints{}, nil)
	lx := lexer.New(file, lexer.Options{})
	pr := parser.ParseFile(ctx, fs, lx, builder, parser.Options{
		Reporter:  reporter,
		MaxErrors: uint(max(opts.MaxDiagnostics, 0)),
	})
	res.Builder, res.FileID = builder, pr.File
	ph.end(parse, "decls="+strconv.Itoa(len(builder.Files.Get(pr.File).Decls)))

	if opts.Stage.runsNames() {
		names := ph.begin(observ.PhaseNames)
		sr := symbols.ResolveFile(builder, pr.File, symbols.ResolveOptions{
			Reporter: reporter,
			Tracer:   tracer,
			Parent:   parent,
			Validate: true,
		})
		res.Symbols = &sr
		res.NamesOK = sr.OK
		ph.end(names, "symbols="+strconv.Itoa(sr.Table.Symbols.Len()))
	}

	if opts.Stage.runsTypes() {
		types := ph.begin(observ.PhaseTypes)
		tr := sema.Check(builder, pr.File, sema.Options{
			Reporter: reporter,
			Symbols:  res.Symbols,
			Tracer:   tracer,
			Parent:   parent,
		})
		res.Sema = &tr
		res.TypesOK = tr.OK
		ph.end(types, "exprs="+strconv.Itoa(len(tr.ExprTypes)))
	}

	up := ph.begin(observ.PhaseUnparse)
	uopts := unparse.Options{Annotate: opts.Annotate && res.Symbols != nil, IndentWidth: opts.IndentWidth}
	if res.Symbols != nil {
		uopts.Types = res.Symbols.Table.Types
	}
	out, err := unparse.Format(builder, pr.File, uopts)
	if err != nil {
		// FileID из ParseFile всегда валиден; сюда попадаем только при поломке арен
		panic(fmt.Errorf("unparse %s: %w", file.Path, err))
	}
	res.Output = out
	ph.end(up, "bytes="+strconv.Itoa(len(out)))
	return res
}

// tokenizeInto scans the whole file once, reporting lexical diagnostics.
func tokenizeInto(file *source.File, reporter diag.Reporter) int {
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	n := 0
	for lx.Next().Kind != token.EOF {
		n++
	}
	return n
}
