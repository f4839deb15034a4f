package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/nalgeon/be"

	"lilc/internal/ast"
	"lilc/internal/observ"
)

func TestAnalyzeDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.lc":        "int y;\nint y;\n",
		"a.lc":        "int x;\n",
		"sub/c.lc":    "void f() { return 1; }\n",
		"ignored.txt": "not lil",
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		be.Err(t, os.MkdirAll(filepath.Dir(path), 0o755), nil)
		be.Err(t, os.WriteFile(path, []byte(body), 0o600), nil)
	}

	progress := make(chan ProgressEvent)
	final := make(map[string]ProgressStatus)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ev := range progress {
			if ev.Status == StatusDone || ev.Status == StatusError {
				final[ev.File] = ev.Status
			}
		}
	}()

	results, err := AnalyzeDir(context.Background(), dir, Options{}, 2, progress)
	wg.Wait()
	be.Err(t, err, nil)
	be.Equal(t, len(results), 3)

	be.Equal(t, results[0].Path, filepath.Join(dir, "a.lc"))
	be.Equal(t, results[1].Path, filepath.Join(dir, "b.lc"))
	be.Equal(t, results[2].Path, filepath.Join(dir, "sub", "c.lc"))
	be.True(t, results[0].Result.OK())
	be.True(t, !results[1].Result.NamesOK)
	be.True(t, !results[2].Result.TypesOK)

	be.Equal(t, final[results[0].Path], StatusDone)
	be.Equal(t, final[results[1].Path], StatusError)
}

func TestAnalyzeDirEmpty(t *testing.T) {
	results, err := AnalyzeDir(context.Background(), t.TempDir(), Options{}, 0, nil)
	be.Err(t, err, nil)
	be.Equal(t, len(results), 0)
}

func TestAnalyzeDirRecoversPanics(t *testing.T) {
	dir := t.TempDir()
	be.Err(t, os.WriteFile(filepath.Join(dir, "a.lc"), []byte("int x;\n"), 0o600), nil)

	opts := Options{Observer: func(ev PhaseEvent) {
		if ev.Name == observ.PhaseTypes && ev.Status == PhaseStart {
			panic(&ast.UnhandledKindError{Pass: "types", Category: "stmt", Kind: ast.StmtWhile})
		}
	}}
	results, err := AnalyzeDir(context.Background(), dir, opts, 1, nil)
	be.Equal(t, len(results), 0)

	var internal *InternalError
	be.True(t, errors.As(err, &internal))
	be.Equal(t, internal.File, filepath.Join(dir, "a.lc"))

	var unhandled *ast.UnhandledKindError
	be.True(t, errors.As(err, &unhandled))
	be.Equal(t, unhandled.Pass, "types")
}
