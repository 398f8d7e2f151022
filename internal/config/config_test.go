package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.LineLength != 75 {
		t.Fatalf("default line length = %d, want 75", cfg.LineLength)
	}
	if !cfg.IgnoreIndented {
		t.Fatalf("expected ignore_indented to default to true")
	}
	if cfg.AlternateCapitalHandling {
		t.Fatalf("expected alternate_capital_handling to default to false")
	}
	if cfg.Jobs != 0 {
		t.Fatalf("default jobs = %d, want 0", cfg.Jobs)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.LineLength = 0
	if err := cfg.Validate(); !errors.Is(err, ErrLineLength) {
		t.Fatalf("expected line length error, got: %v", err)
	}

	cfg = Default()
	cfg.Jobs = -1
	if err := cfg.Validate(); !errors.Is(err, ErrJobs) {
		t.Fatalf("expected jobs error, got: %v", err)
	}
}

func TestLoadFileOverridesSubset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "matfmt.toml")
	src := "line_length = 100\nalternate_capital_handling = true\n"
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := LoadFile(path, Default())
	if err != nil {
		t.Fatalf("load config file: %v", err)
	}
	if cfg.LineLength != 100 {
		t.Fatalf("line length = %d, want 100", cfg.LineLength)
	}
	if !cfg.AlternateCapitalHandling {
		t.Fatalf("expected alternate_capital_handling to be overridden to true")
	}
	if !cfg.IgnoreIndented {
		t.Fatalf("ignore_indented lost its base value")
	}
}

func TestLoadFileRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "matfmt.toml")
	if err := os.WriteFile(path, []byte("line_lenght = 80\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	_, err := LoadFile(path, Default())
	if err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Fatalf("expected unknown key error, got: %v", err)
	}
}

func TestLoadFileRejectsBadTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "matfmt.toml")
	if err := os.WriteFile(path, []byte("line_length = = 80\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	_, err := LoadFile(path, Default())
	if err == nil || !strings.Contains(err.Error(), "failed to parse TOML") {
		t.Fatalf("expected TOML parse error, got: %v", err)
	}
}

func TestDiscoverMissingFileKeepsBase(t *testing.T) {
	t.Parallel()

	cfg, err := Discover(t.TempDir(), Default())
	if err != nil {
		t.Fatalf("discover in empty dir: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("discover changed config without a file: %+v", cfg)
	}
}

func TestDiscoverLoadsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("line_length = 60\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Discover(dir, Default())
	if err != nil {
		t.Fatalf("discover config: %v", err)
	}
	if cfg.LineLength != 60 {
		t.Fatalf("line length = %d, want 60", cfg.LineLength)
	}
}
