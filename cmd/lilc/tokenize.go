package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lilc/internal/diag"
	"lilc/internal/diagfmt"
	"lilc/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.lc",
	Short: "Tokenize a lil-C source file",
	Long:  `Tokenize breaks down a lil-C source file into its constituent tokens, one per line`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	s, err := resolveSettings(cmd, filePath)
	if err != nil {
		return configFailure(cmd, err)
	}
	// токены в stdout, диагностики в stderr
	s.format = "pretty"

	result, err := driver.Tokenize(filePath, s.opts.MaxDiagnostics)
	if err != nil {
		reportInfraError(cmd.ErrOrStderr(), diag.IOLoadFileError, err, s.color)
		return errDiagnostics
	}
	if result.Bag.Len() > 0 {
		if err := printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, s); err != nil {
			return err
		}
	}

	if format == "json" {
		err = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	} else {
		err = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}
