package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[check]\nstage = \"names\"\n\n[output]\nannotate = false\n")

	m, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if m.Config.Check.Stage != "names" {
		t.Errorf("stage = %q, want names", m.Config.Check.Stage)
	}
	if m.Config.Check.Format != "pretty" || m.Config.Check.MaxDiagnostics != 100 {
		t.Errorf("defaults lost: %+v", m.Config.Check)
	}
	if m.Config.Output.Annotate {
		t.Error("annotate = true, want explicit false")
	}
	if !m.IsDefined("output.annotate") || m.IsDefined("check.format") {
		t.Errorf("defined keys = %v", m.Defined)
	}
	if m.Root != dir {
		t.Errorf("root = %q, want %q", m.Root, dir)
	}
}

func TestLoadConfigRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":  "[check]\nstrict = true\n",
		"bad stage":    "[check]\nstage = \"codegen\"\n",
		"bad format":   "[check]\nformat = \"xml\"\n",
		"negative max": "[check]\nmax_diagnostics = -1\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), body)
			_, err := LoadConfig(path)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfigSyntaxError(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[check\n")
	_, err := LoadConfig(path)
	if err == nil || errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want a TOML parse error", err)
	}
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindConfig(nested)
	if err != nil || !ok {
		t.Fatalf("FindConfig: ok=%v err=%v", ok, err)
	}
	if path != filepath.Join(root, ConfigName) {
		t.Errorf("path = %q", path)
	}

	m, ok, err := Load(nested)
	if err != nil || !ok || m.Root != root {
		t.Errorf("Load root = %q %v %v", m.Root, ok, err)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	m, ok, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Skip("a lilc.toml exists above the temp dir")
	}
	if m.Config != Defaults() {
		t.Errorf("config = %+v, want defaults", m.Config)
	}
}

func TestDigest(t *testing.T) {
	a := Sum([]byte("int x;"))
	b := Sum([]byte("int y;"))
	if a == b || a.IsZero() {
		t.Fatal("distinct inputs must hash differently")
	}
	if Combine(a, b) == Combine(b, a) {
		t.Error("Combine must be order-sensitive")
	}
	if len(a.String()) != 64 {
		t.Errorf("hex digest length %d", len(a.String()))
	}
}
