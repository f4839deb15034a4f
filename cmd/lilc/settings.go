package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"lilc/internal/diagfmt"
	"lilc/internal/driver"
	"lilc/internal/project"
)

// settings is the effective configuration of one command run: built-in
// defaults, then lilc.toml, then explicitly set flags.
type settings struct {
	manifest *project.Manifest
	opts     driver.Options
	format   string
	color    bool
	quiet    bool
	cache    bool
	cacheDir string
	pathMode diagfmt.PathMode
	jobs     int
	ui       uiMode
}

// loadManifest reads --config when given, otherwise searches upward from
// the input. A missing file is not an error.
func loadManifest(cmd *cobra.Command, input string) (*project.Manifest, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if explicit != "" {
		return project.LoadConfig(explicit)
	}
	start := input
	if info, statErr := os.Stat(input); statErr != nil || !info.IsDir() {
		start = filepath.Dir(input)
	}
	m, _, err := project.Load(start)
	return m, err
}

// configError marks a lilc.toml that could not be found, read or validated.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func resolveSettings(cmd *cobra.Command, input string) (*settings, error) {
	m, err := loadManifest(cmd, input)
	if err != nil {
		return nil, &configError{err: err}
	}
	cfg := m.Config
	s := &settings{
		manifest: m,
		format:   cfg.Check.Format,
		cache:    cfg.Cache.Enabled,
		cacheDir: cfg.Cache.Dir,
		opts: driver.Options{
			MaxDiagnostics: cfg.Check.MaxDiagnostics,
			Annotate:       cfg.Output.Annotate,
		},
	}
	// относительный dir из lilc.toml считается от корня проекта
	if m.IsDefined("cache.dir") && !filepath.IsAbs(s.cacheDir) {
		s.cacheDir = filepath.Join(m.Root, s.cacheDir)
	}
	stage := cfg.Check.Stage

	root := cmd.Root().PersistentFlags()
	if s.quiet, err = root.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.opts.EnableTimings, err = root.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if root.Changed("max-diagnostics") {
		if s.opts.MaxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	colorFlag, err := root.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	if s.color, err = colorEnabled(colorFlag, os.Stderr); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Lookup("format") != nil && flags.Changed("format") {
		s.format, _ = flags.GetString("format")
	}
	if flags.Lookup("stage") != nil && flags.Changed("stage") {
		stage, _ = flags.GetString("stage")
	}
	if flags.Lookup("annotate") != nil && flags.Changed("annotate") {
		s.opts.Annotate, _ = flags.GetBool("annotate")
	}
	if flags.Lookup("disk-cache") != nil && flags.Changed("disk-cache") {
		s.cache, _ = flags.GetBool("disk-cache")
	}
	if flags.Lookup("jobs") != nil {
		s.jobs, _ = flags.GetInt("jobs")
	}
	if flags.Lookup("ui") != nil {
		value, _ := flags.GetString("ui")
		if s.ui, err = readUIMode(value); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("fullpath") != nil {
		if full, _ := flags.GetBool("fullpath"); full {
			s.pathMode = diagfmt.PathModeAbsolute
		}
	}

	if s.opts.Stage, err = driver.ParseStage(stage); err != nil {
		return nil, err
	}
	switch s.format {
	case "pretty", "json", "short":
	default:
		return nil, fmt.Errorf("unknown format %q (want pretty|json|short)", s.format)
	}
	if s.opts.MaxDiagnostics < 0 {
		return nil, fmt.Errorf("--max-diagnostics must be >= 0, got %d", s.opts.MaxDiagnostics)
	}
	return s, nil
}

// openCache opens the disk cache when enabled; a cache that cannot be
// opened only costs speed, so it is reported and skipped.
func (s *settings) openCache(cmd *cobra.Command) {
	if !s.cache {
		return
	}
	c, err := driver.OpenDiskCache("lilc", s.cacheDir)
	if err != nil {
		if !s.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: disk cache disabled: %v\n", err)
		}
		return
	}
	s.opts.Cache = c
}

func colorEnabled(mode string, f *os.File) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	case "", "auto":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}
