package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lilc/internal/driver"
	"lilc/internal/ui"
)

type dirOutcome struct {
	results []driver.DirResult
	err     error
}

// runDirWithUI analyzes dir while a progress model renders the per-file
// phases; AnalyzeDir closes the events channel, which ends the program.
func runDirWithUI(ctx context.Context, title, dir string, opts driver.Options, jobs int) ([]driver.DirResult, error) {
	files, err := driver.ListSources(dir)
	if err != nil {
		return nil, err
	}
	events := make(chan driver.ProgressEvent, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		res, err := driver.AnalyzeDir(ctx, dir, opts, jobs, events)
		outcomeCh <- dirOutcome{results: res, err: err}
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
