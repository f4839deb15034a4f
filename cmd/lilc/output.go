package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"lilc/internal/diag"
	"lilc/internal/diagfmt"
	"lilc/internal/driver"
	"lilc/internal/source"
)

// printDiagnostics writes bag in the chosen format; it sorts the bag first.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, s *settings) error {
	bag.Sort()
	if s.quiet {
		bag.Filter(func(d *diag.Diagnostic) bool { return d.Severity.IsError() })
	}
	switch s.format {
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         s.pathMode,
			IncludeNotes:     true,
		})
	case "short":
		diagfmt.Short(w, bag, fs, s.pathMode)
	default:
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     s.color,
			Context:   1,
			PathMode:  s.pathMode,
			ShowNotes: true,
		})
	}
	if dropped, errs := bag.Dropped(); dropped > 0 && s.format != "json" {
		msg := fmt.Sprintf("... %d more diagnostic(s) not shown, %d of them errors", dropped, errs)
		if limit := bag.Cap(); limit > 0 {
			msg += fmt.Sprintf(" (limit %d)", limit)
		}
		fmt.Fprintln(w, msg)
	}
	return nil
}

type fileReport struct {
	Path string `json:"path"`
	diagfmt.DiagnosticsOutput
}

// printDirJSON prints one JSON document covering every file of a directory run.
func printDirJSON(w io.Writer, results []driver.DirResult, s *settings) error {
	reports := make([]fileReport, 0, len(results))
	for _, r := range results {
		if r.Result == nil {
			continue
		}
		r.Result.Bag.Sort()
		reports = append(reports, fileReport{
			Path: r.Path,
			DiagnosticsOutput: diagfmt.BuildDiagnosticsOutput(r.Result.Bag, r.Result.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				PathMode:         s.pathMode,
				IncludeNotes:     true,
			}),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Files []fileReport `json:"files"`
	}{reports})
}

// reportInfraError prints a failure that has no source position, such as an
// unreadable input or a broken lilc.toml, in diagnostic style.
func reportInfraError(w io.Writer, code diag.Code, err error, colored bool) {
	sev := color.New(color.FgRed, color.Bold)
	if colored {
		sev.EnableColor()
	} else {
		sev.DisableColor()
	}
	fmt.Fprintf(w, "%s: %s\n", sev.Sprintf("%s %s", diag.SevError, code.ID()), err)
}
