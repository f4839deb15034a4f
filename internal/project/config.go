package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig wraps every semantic problem found in lilc.toml.
var ErrInvalidConfig = errors.New("invalid lilc.toml")

var (
	validStages  = []string{"syntax", "names", "types"}
	validFormats = []string{"pretty", "json", "short"}
)

type Config struct {
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`
	Cache  CacheConfig  `toml:"cache"`
}

type CheckConfig struct {
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Stage          string `toml:"stage"`
	Format         string `toml:"format"`
}

type OutputConfig struct {
	Annotate bool `toml:"annotate"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Defaults are the values used for keys the file leaves out.
func Defaults() Config {
	return Config{
		Check:  CheckConfig{MaxDiagnostics: 100, Stage: "types", Format: "pretty"},
		Output: OutputConfig{Annotate: true},
	}
}

// Manifest is a loaded lilc.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
	// Defined lists the dotted keys present in the file, e.g. "check.stage".
	// Flags use it to tell an explicit false or 0 from an absent key.
	Defined map[string]bool
}

// IsDefined reports whether the file set the dotted key.
func (m *Manifest) IsDefined(key string) bool {
	return m != nil && m.Defined[key]
}

// LoadConfig decodes path over Defaults. Unknown keys and out-of-range
// values yield an error wrapping ErrInvalidConfig.
func LoadConfig(path string) (*Manifest, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	defined := make(map[string]bool)
	for _, k := range meta.Keys() {
		defined[k.String()] = true
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg, Defined: defined}, nil
}

// Load finds lilc.toml above startDir and loads it. Without a file it
// returns a manifest holding Defaults and ok=false.
func Load(startDir string) (m *Manifest, ok bool, err error) {
	path, found, err := FindConfig(startDir)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return &Manifest{Config: Defaults(), Defined: map[string]bool{}}, false, nil
	}
	m, err = LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

func (c Config) validate() error {
	if c.Check.MaxDiagnostics < 0 {
		return fmt.Errorf("[check].max_diagnostics must be >= 0: %w", ErrInvalidConfig)
	}
	if !slices.Contains(validStages, c.Check.Stage) {
		return fmt.Errorf("[check].stage must be one of %s, got %q: %w",
			strings.Join(validStages, "|"), c.Check.Stage, ErrInvalidConfig)
	}
	if !slices.Contains(validFormats, c.Check.Format) {
		return fmt.Errorf("[check].format must be one of %s, got %q: %w",
			strings.Join(validFormats, "|"), c.Check.Format, ErrInvalidConfig)
	}
	return nil
}
