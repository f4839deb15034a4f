package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lilc/internal/driver"
	"lilc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lilc",
	Short: "lil-C semantic analyzer",
	Long:  `lilc checks names and types of lil-C programs and prints them back annotated with resolved types`,
	// ошибки печатаем сами, чтобы не дублировать вывод cobra
	SilenceErrors: true,
}

// errDiagnostics means the run completed but reported error diagnostics;
// they are already printed, so main only sets the exit code.
var errDiagnostics = errors.New("errors reported")

// stopObservers flushes the tracer and stops profilers once the command ends.
var stopObservers func()

const (
	exitOK       = 0
	exitFailure  = 1
	exitInternal = 2
)

// main registers subcommands and persistent flags, runs the root command and
// maps the outcome onto the process exit code.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(versionCmd)

	addPersistentFlags(rootCmd)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		stopProfiling, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		stopTracing, err := setupTracing(cmd)
		if err != nil {
			stopProfiling()
			return err
		}
		stopObservers = func() {
			stopTracing()
			stopProfiling()
		}
		return nil
	}

	os.Exit(run(os.Stderr))
}

// addPersistentFlags registers the global flags on the root command.
func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	cmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	cmd.PersistentFlags().Bool("timings", false, "show timing information")
	cmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show (0 = unlimited)")
	cmd.PersistentFlags().String("config", "", "path to lilc.toml (default: search upward from the input)")
	cmd.PersistentFlags().String("trace", "", "write trace events to a file (- for stderr)")
	cmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|pass|file|debug)")
	cmd.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both)")
	cmd.PersistentFlags().String("trace-format", "auto", "trace event format (auto|text|ndjson)")
	cmd.PersistentFlags().Duration("trace-heartbeat", 0, "emit a trace heartbeat at this interval")
	cmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	cmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this file on exit")
	cmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to this file")
}

// run executes rootCmd and turns panics into an internal compiler error.
func run(stderr io.Writer) (code int) {
	defer func() {
		if stopObservers != nil {
			stopObservers()
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			reportInternal(stderr, r)
			code = exitInternal
		}
	}()

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errDiagnostics):
		return exitFailure
	}
	var internal *driver.InternalError
	if errors.As(err, &internal) {
		reportInternal(stderr, internal.Value)
		return exitInternal
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitFailure
}

func reportInternal(w io.Writer, fault any) {
	msg := fmt.Sprint(fault)
	if !strings.HasPrefix(msg, "internal compiler error") {
		msg = "internal compiler error: " + msg
	}
	fmt.Fprintln(w, msg)
	dumpTraceRing(w)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
