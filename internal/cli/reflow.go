package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/matfmt/matfmt/internal/config"
	"github.com/matfmt/matfmt/internal/reflow"
	"github.com/matfmt/matfmt/internal/runner"
)

type reflowFlags struct {
	configPath     string
	lineLength     int
	ignoreIndented bool
	altCapital     bool
	jobs           int
}

var (
	changedColor = color.New(color.FgYellow)
	failedColor  = color.New(color.FgRed)
)

// resolveConfig layers the optional TOML file and explicitly set flags on
// top of the defaults, then validates the result.
func resolveConfig(cmd *cobra.Command, flags reflowFlags) (config.Config, error) {
	cfg := config.Default()
	var err error
	if flags.configPath != "" {
		cfg, err = config.LoadFile(flags.configPath, cfg)
	} else {
		cfg, err = config.Discover(".", cfg)
	}
	if err != nil {
		return config.Config{}, err
	}

	fs := cmd.Flags()
	if fs.Changed("line-length") {
		cfg.LineLength = flags.lineLength
	}
	if fs.Changed("ignore-indented") {
		cfg.IgnoreIndented = flags.ignoreIndented
	}
	if fs.Changed("alternate-capital-handling") {
		cfg.AlternateCapitalHandling = flags.altCapital
	}
	if fs.Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runReflow(cmd *cobra.Command, args []string, cfg config.Config, opts Options) error {
	ropts := reflow.Options{
		LineLength:               cfg.LineLength,
		IgnoreIndented:           cfg.IgnoreIndented,
		AlternateCapitalHandling: cfg.AlternateCapitalHandling,
	}

	paths := make([]string, 0, len(args))
	for _, arg := range args {
		if p := strings.TrimSpace(arg); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 || (len(paths) == 1 && paths[0] == "-") {
		return reflowStdin(opts, ropts)
	}

	results := runner.Process(cmd.Context(), paths, ropts, cfg.Jobs)
	changed := 0
	failed := 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			failedColor.Fprintf(opts.Stderr, "matfmt: %v\n", res.Err)
		case res.Changed:
			changed++
			changedColor.Fprintf(opts.Stderr, "reflowed %s\n", res.Path)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	if changed > 0 {
		return fmt.Errorf("%w: %d of %d files", runner.ErrFilesChanged, changed, len(results))
	}
	return nil
}

func reflowStdin(opts Options, ropts reflow.Options) error {
	src, err := io.ReadAll(opts.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	_, err = io.WriteString(opts.Stdout, reflow.Text(string(src), ropts))
	return err
}
