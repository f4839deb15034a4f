package driver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"lilc/internal/diag"
	"lilc/internal/observ"
)

const validProgram = `struct P { int x; int y; };
int f(int a) { return a + 1; }
int main() {
    struct P p;
    p.x = f(2);
    cout << p.x;
    return 0;
}
`

func codesOf(res *Result) []diag.Code {
	var out []diag.Code
	for _, d := range res.Bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func TestAnalyzeSourceValid(t *testing.T) {
	res := AnalyzeSource(context.Background(), "ok.lc", []byte(validProgram), Options{Annotate: true})
	be.Equal(t, res.Bag.Len(), 0)
	be.True(t, res.NamesOK)
	be.True(t, res.TypesOK)
	be.True(t, res.OK())
	be.True(t, strings.Contains(string(res.Output), "p(P).x(int) = f(int->int)(2);"))
}

func TestAnalyzeStageSyntaxStopsEarly(t *testing.T) {
	res := AnalyzeSource(context.Background(), "s.lc", []byte("void f() { y = 1; }\n"), Options{Stage: StageSyntax, Annotate: true})
	be.Equal(t, res.Symbols, nil)
	be.Equal(t, res.Sema, nil)
	be.Equal(t, res.Bag.Len(), 0)
	be.Equal(t, string(res.Output), "void f() {\n    y = 1;\n}\n")
}

func TestAnalyzeStageNames(t *testing.T) {
	res := AnalyzeSource(context.Background(), "n.lc", []byte("void f() { y = 1 + true; }\n"), Options{Stage: StageNames})
	be.Equal(t, codesOf(res), []diag.Code{diag.SemaUndeclared})
	be.True(t, !res.NamesOK)
	be.Equal(t, res.Sema, nil)
}

func TestAnalyzeTypesRunAfterNameErrors(t *testing.T) {
	src := "void f() {\n    y = 1;\n    cout << 1 + true;\n}\n"
	res := AnalyzeSource(context.Background(), "t.lc", []byte(src), Options{})
	be.Equal(t, codesOf(res), []diag.Code{diag.SemaUndeclared, diag.SemaBadArithmeticOperand})
	be.True(t, !res.NamesOK)
	be.True(t, !res.TypesOK)
}

// cappedSource puts a warning ahead of a name error, so a limit of one
// keeps only the warning.
const cappedSource = "int f() { int y; y = 99999999999; return y; }\nint x;\nint x;\n"

func TestAnalyzeLimitDoesNotHideErrors(t *testing.T) {
	res := AnalyzeSource(context.Background(), "cap.lc", []byte(cappedSource), Options{MaxDiagnostics: 1})
	be.Equal(t, codesOf(res), []diag.Code{diag.LexIntOverflow})
	be.True(t, !res.NamesOK)
	be.True(t, res.TypesOK)
	be.True(t, res.Bag.HasErrors())
	be.True(t, !res.OK())

	total, errs := res.Bag.Dropped()
	be.Equal(t, total, 1)
	be.Equal(t, errs, 1)
}

func TestTimingsOnFullBagAreNotDropped(t *testing.T) {
	res := AnalyzeSource(context.Background(), "cap.lc", []byte(cappedSource), Options{MaxDiagnostics: 1, EnableTimings: true})
	be.Equal(t, codesOf(res), []diag.Code{diag.LexIntOverflow, diag.ObsTimings})
	total, _ := res.Bag.Dropped()
	be.Equal(t, total, 1)
}

func TestResultOKFollowsPassFlags(t *testing.T) {
	res := &Result{Bag: diag.NewBag(0), Stage: StageNames, NamesOK: true}
	be.True(t, res.OK())
	res.Stage = StageTypes
	be.True(t, !res.OK())
	res.TypesOK = true
	be.True(t, res.OK())
	res.Stage, res.NamesOK, res.TypesOK = StageSyntax, false, false
	be.True(t, res.OK())
}

func TestAnalyzeReportsEachLexErrorOnce(t *testing.T) {
	res := AnalyzeSource(context.Background(), "l.lc", []byte("int @x;\n"), Options{})
	be.Equal(t, codesOf(res), []diag.Code{diag.LexUnknownChar})
}

func TestAnalyzeTimings(t *testing.T) {
	res := AnalyzeSource(context.Background(), "tm.lc", []byte("int x;\n"), Options{EnableTimings: true})
	be.True(t, res.Timing != nil)

	var names []string
	for _, p := range res.Timing.Phases {
		names = append(names, p.Name)
	}
	be.Equal(t, names, []string{observ.PhaseTokenize, observ.PhaseParse, observ.PhaseNames, observ.PhaseTypes, observ.PhaseUnparse})

	items := res.Bag.Items()
	be.Equal(t, len(items), 1)
	be.Equal(t, items[0].Code, diag.ObsTimings)
	var payload timingPayload
	be.Err(t, json.Unmarshal([]byte(items[0].Notes[0].Msg), &payload), nil)
	be.Equal(t, payload.Kind, "file")
	be.Equal(t, len(payload.Phases), 5)
	be.True(t, payload.Slowest != "")
	be.True(t, strings.HasPrefix(items[0].Message, "file timings: "))
}

func TestAnalyzeFileObserverAndLoadError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.lc")
	be.Err(t, os.WriteFile(path, []byte("int x;\n"), 0o600), nil)

	var started []string
	res, err := AnalyzeFile(context.Background(), path, Options{Observer: func(ev PhaseEvent) {
		if ev.Status == PhaseStart {
			started = append(started, ev.Name)
		}
	}})
	be.Err(t, err, nil)
	be.True(t, res.OK())
	be.Equal(t, started[0], observ.PhaseLoad)
	be.Equal(t, started[len(started)-1], observ.PhaseUnparse)

	_, err = AnalyzeFile(context.Background(), filepath.Join(dir, "missing.lc"), Options{})
	be.Err(t, err, os.ErrNotExist)
}

func TestParseStage(t *testing.T) {
	for in, want := range map[string]Stage{"": StageTypes, "Syntax": StageSyntax, " names ": StageNames, "types": StageTypes} {
		got, err := ParseStage(in)
		be.Err(t, err, nil)
		be.Equal(t, got, want)
	}
	_, err := ParseStage("codegen")
	be.Err(t, err)
}
