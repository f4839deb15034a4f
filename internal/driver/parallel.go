package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SourceExt is the extension AnalyzeDir picks up.
const SourceExt = ".lc"

// ProgressStatus is the per-file state reported to a progress sink.
type ProgressStatus uint8

const (
	StatusQueued ProgressStatus = iota
	StatusWorking
	StatusDone
	StatusError
)

// ProgressEvent reports a per-file phase change during AnalyzeDir.
type ProgressEvent struct {
	File   string
	Phase  string // set with StatusWorking
	Status ProgressStatus
}

// DirResult is one file of a directory analysis.
type DirResult struct {
	Path   string
	Result *Result
	Err    error // load failure; Result is nil then
}

// InternalError carries a panic raised while analyzing one file of a
// directory. The panic value is usually *ast.UnhandledKindError or
// *symbols.StackError.
type InternalError struct {
	File  string
	Value any
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal compiler error in %s: %v", e.File, e.Value)
}

func (e *InternalError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// ListSources возвращает отсортированный список всех *.lc файлов в директории
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// AnalyzeDir analyzes every *.lc file under dir with at most jobs files in
// flight. Results come back sorted by path. progress, when not nil, receives
// events for every file and is closed before AnalyzeDir returns.
func AnalyzeDir(ctx context.Context, dir string, opts Options, jobs int, progress chan<- ProgressEvent) ([]DirResult, error) {
	if progress != nil {
		defer close(progress)
	}
	files, err := ListSources(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	emit := func(ev ProgressEvent) {
		if progress != nil {
			progress <- ev
		}
	}
	for _, path := range files {
		emit(ProgressEvent{File: path, Status: StatusQueued})
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]DirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() (err error) {
			// паника в горутине не дойдёт до recover в main
			defer func() {
				if r := recover(); r != nil {
					err = &InternalError{File: path, Value: r}
				}
			}()
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			fileOpts := opts
			fileOpts.Observer = func(ev PhaseEvent) {
				if ev.Status == PhaseStart {
					emit(ProgressEvent{File: path, Phase: ev.Name, Status: StatusWorking})
				}
				if opts.Observer != nil {
					opts.Observer(ev)
				}
			}
			res, loadErr := AnalyzeFile(gctx, path, fileOpts)
			results[i] = DirResult{Path: path, Result: res, Err: loadErr}
			status := StatusDone
			if loadErr != nil || !res.OK() {
				status = StatusError
			}
			emit(ProgressEvent{File: path, Status: status})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
