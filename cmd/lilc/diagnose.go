package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lilc/internal/diag"
	"lilc/internal/driver"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file.lc|directory>",
	Short: "Run diagnostics on a lil-C source file or directory",
	Long:  `Run diagnostics to find syntax, name and type errors in a lil-C file or in all *.lc files within a directory`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	diagCmd.Flags().String("stage", "types", "last analysis stage to run (syntax|names|types)")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	diagCmd.Flags().String("ui", "auto", "show a progress UI for directories (auto|on|off)")
	diagCmd.Flags().Bool("disk-cache", false, "reuse results cached on disk")
	diagCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

// runDiagnose executes the "diag" command. It exits non-zero when any file
// reports an error diagnostic.
func runDiagnose(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	target := args[0]

	s, err := resolveSettings(cmd, target)
	if err != nil {
		return configFailure(cmd, err)
	}
	s.openCache(cmd)

	info, err := os.Stat(target)
	if err != nil {
		reportInfraError(cmd.ErrOrStderr(), diag.IOLoadFileError, err, s.color)
		return errDiagnostics
	}
	if info.IsDir() {
		return diagnoseDir(cmd.Context(), target, s, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
	return diagnoseFile(cmd.Context(), target, s, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func diagnoseFile(ctx context.Context, path string, s *settings, stdout, stderr io.Writer) error {
	res, err := driver.AnalyzeFile(ctx, path, s.opts)
	if err != nil {
		reportInfraError(stderr, diag.IOLoadFileError, err, s.color)
		return errDiagnostics
	}
	if err := printDiagnostics(stdout, res.Bag, res.FileSet, s); err != nil {
		return err
	}
	if !res.OK() {
		return errDiagnostics
	}
	return nil
}

func diagnoseDir(ctx context.Context, dir string, s *settings, stdout, stderr io.Writer) error {
	var (
		results []driver.DirResult
		err     error
	)
	if shouldUseTUI(s.ui, s.quiet) {
		results, err = runDirWithUI(ctx, "lilc diag "+dir, dir, s.opts, s.jobs)
	} else {
		results, err = driver.AnalyzeDir(ctx, dir, s.opts, s.jobs, nil)
	}
	if err != nil {
		return err
	}

	failed := 0
	if s.format == "json" {
		if err := printDirJSON(stdout, results, s); err != nil {
			return err
		}
	}
	for _, r := range results {
		if r.Err != nil {
			reportInfraError(stderr, diag.IOLoadFileError, r.Err, s.color)
			failed++
			continue
		}
		if !r.Result.OK() {
			failed++
		}
		if s.format != "json" {
			if err := printDiagnostics(stdout, r.Result.Bag, r.Result.FileSet, s); err != nil {
				return err
			}
		}
	}
	if !s.quiet && s.format != "json" {
		fmt.Fprintf(stderr, "%d file(s) checked, %d with errors\n", len(results), failed)
	}
	if failed > 0 {
		return errDiagnostics
	}
	return nil
}
