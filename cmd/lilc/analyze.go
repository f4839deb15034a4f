package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lilc/internal/diag"
	"lilc/internal/driver"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] <input> <output>",
	Short: "Check a lil-C program and write it back annotated with types",
	Long: `Analyze runs name and type analysis over <input> and writes the program,
unparsed with every identifier annotated by its resolved type, to <output>.
Diagnostics go to stderr.`,
	Args: cobra.ExactArgs(2),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json|short)")
	analyzeCmd.Flags().Bool("annotate", true, "annotate identifiers with their types")
	analyzeCmd.Flags().Bool("disk-cache", false, "reuse results cached on disk")
	analyzeCmd.Flags().Bool("fullpath", false, "emit absolute file paths in diagnostics")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	input, output := args[0], args[1]

	s, err := resolveSettings(cmd, input)
	if err != nil {
		return configFailure(cmd, err)
	}
	s.openCache(cmd)
	return analyzeToFile(cmd.Context(), input, output, s, cmd.ErrOrStderr())
}

// analyzeToFile is the body of `lilc analyze`. The output file is written
// even when analysis reports errors; <error> labels show where.
func analyzeToFile(ctx context.Context, input, output string, s *settings, stderr io.Writer) error {
	res, err := driver.AnalyzeFile(ctx, input, s.opts)
	if err != nil {
		reportInfraError(stderr, diag.IOLoadFileError, err, s.color)
		return errDiagnostics
	}
	if err := printDiagnostics(stderr, res.Bag, res.FileSet, s); err != nil {
		return err
	}
	if err := os.WriteFile(output, res.Output, 0o644); err != nil {
		reportInfraError(stderr, diag.IOWriteFileError, fmt.Errorf("write %s: %w", output, err), s.color)
		return errDiagnostics
	}
	if !res.OK() {
		return errDiagnostics
	}
	return nil
}

// configFailure reports a broken lilc.toml as a diagnostic and anything else
// as a plain error.
func configFailure(cmd *cobra.Command, err error) error {
	var cfgErr *configError
	if errors.As(err, &cfgErr) {
		colored, _ := colorEnabled("auto", os.Stderr)
		reportInfraError(cmd.ErrOrStderr(), diag.ProjInvalidConfig, err, colored)
		return errDiagnostics
	}
	return err
}
