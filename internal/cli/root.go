package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

type Options struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	BuildInfo BuildInfo
}

func Run(args []string, opts Options) error {
	resolved := normalizeOptions(opts)
	root := newRootCmd(resolved)
	root.SetArgs(args)
	return root.Execute()
}

func normalizeOptions(opts Options) Options {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return opts
}

func newRootCmd(opts Options) *cobra.Command {
	flags := reflowFlags{}
	cmd := &cobra.Command{
		Use:           "matfmt [file ...]",
		Short:         "Reflow MATLAB comments to a maximum line length",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runReflow(cmd, args, cfg, opts)
		},
	}
	cmd.SetIn(opts.Stdin)
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)

	fs := cmd.Flags()
	fs.StringVar(&flags.configPath, "config", "", "path to a matfmt.toml config file")
	fs.IntVar(&flags.lineLength, "line-length", 75, "maximum comment line length in columns")
	fs.BoolVar(&flags.ignoreIndented, "ignore-indented", true, "leave comments with inner indentation untouched")
	fs.BoolVar(&flags.altCapital, "alternate-capital-handling", false, "start a new comment block at lines beginning with a capital letter")
	fs.IntVar(&flags.jobs, "jobs", 0, "number of files to process concurrently (0 = one per CPU)")

	cmd.AddCommand(newVersionCmd(opts))
	return cmd
}
