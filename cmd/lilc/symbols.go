package main

import (
	"github.com/spf13/cobra"

	"lilc/internal/diag"
	"lilc/internal/driver"
	"lilc/internal/symbols"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols [flags] file.lc",
	Short: "Print the scope tree and symbol table of a lil-C file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSymbols,
}

func runSymbols(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	s, err := resolveSettings(cmd, args[0])
	if err != nil {
		return configFailure(cmd, err)
	}
	s.opts.Stage = driver.StageNames
	// дамп нужен живой таблице, кэш её не хранит
	s.opts.Cache = nil

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
	if err := symbols.Dump(cmd.OutOrStdout(), res.Symbols.Table, res.FileSet); err != nil {
		return err
	}
	if !res.OK() {
		return errDiagnostics
	}
	return nil
}
