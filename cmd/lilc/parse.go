package main

import (
	"github.com/spf13/cobra"

	"lilc/internal/diag"
	"lilc/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.lc",
	Short: "Parse a lil-C file and print it back in canonical form",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Int("indent", 4, "spaces per indentation level")
}

func runParse(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	s, err := resolveSettings(cmd, args[0])
	if err != nil {
		return configFailure(cmd, err)
	}
	s.opts.Stage = driver.StageSyntax
	s.opts.Annotate = false
	s.opts.IndentWidth, _ = cmd.Flags().GetInt("indent")

	res, err := driver.AnalyzeFile(cmd.Context(), args[0], s.opts)
	if err != nil {
		reportInfraError(cmd.ErrOrStderr(), diag.IOLoadFileError, err, s.color)
		return errDiagnostics
	}
	if res.Bag.Len() > 0 {
		if err := printDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, s); err != nil {
			return err
		}
	}
	if _, err := cmd.OutOrStdout().Write(res.Output); err != nil {
		return err
	}
	if !res.OK() {
		return errDiagnostics
	}
	return nil
}
