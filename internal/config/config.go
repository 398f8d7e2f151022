package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = "matfmt.toml"

// Config carries the resolved reflow settings.
type Config struct {
	LineLength               int
	IgnoreIndented           bool
	AlternateCapitalHandling bool
	// Jobs bounds how many files are processed concurrently; 0 means one
	// worker per CPU.
	Jobs int
}

var (
	// ErrLineLength indicates a non-positive line length.
	ErrLineLength = errors.New("line length must be a positive integer")
	// ErrJobs indicates a negative worker count.
	ErrJobs = errors.New("jobs must not be negative")
)

// Default returns the built-in settings: wrap at 75 columns, leave
// inner-indented comments alone.
func Default() Config {
	return Config{LineLength: 75, IgnoreIndented: true}
}

func (c Config) Validate() error {
	if c.LineLength <= 0 {
		return fmt.Errorf("%w: %d", ErrLineLength, c.LineLength)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%w: %d", ErrJobs, c.Jobs)
	}
	return nil
}

type fileConfig struct {
	LineLength               int64 `toml:"line_length"`
	IgnoreIndented           bool  `toml:"ignore_indented"`
	AlternateCapitalHandling bool  `toml:"alternate_capital_handling"`
	Jobs                     int64 `toml:"jobs"`
}

// LoadFile applies the settings from a TOML file on top of base. Keys
// absent from the file keep their base values; unknown keys are errors.
func LoadFile(path string, base Config) (Config, error) {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	out := base
	if meta.IsDefined("line_length") {
		n, err := safecast.Conv[int](fc.LineLength)
		if err != nil {
			return Config{}, fmt.Errorf("%s: line_length: %w", path, err)
		}
		out.LineLength = n
	}
	if meta.IsDefined("ignore_indented") {
		out.IgnoreIndented = fc.IgnoreIndented
	}
	if meta.IsDefined("alternate_capital_handling") {
		out.AlternateCapitalHandling = fc.AlternateCapitalHandling
	}
	if meta.IsDefined("jobs") {
		n, err := safecast.Conv[int](fc.Jobs)
		if err != nil {
			return Config{}, fmt.Errorf("%s: jobs: %w", path, err)
		}
		out.Jobs = n
	}
	return out, nil
}

// Discover loads DefaultFileName from dir when present, otherwise
// returns base untouched.
func Discover(dir string, base Config) (Config, error) {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return Config{}, fmt.Errorf("stat config %q: %w", path, err)
	}
	return LoadFile(path, base)
}
