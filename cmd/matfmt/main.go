package main

import (
	"errors"
	"log"
	"os"

	"github.com/matfmt/matfmt/cli"
	"github.com/matfmt/matfmt/internal/runner"
)

// Overridden at build time via -ldflags.
var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

func main() {
	err := cli.Run(os.Args[1:], cli.Options{
		BuildInfo: cli.BuildInfo{
			Version:   version,
			Commit:    commit,
			BuildDate: buildDate,
		},
	})
	if err == nil {
		return
	}
	logger := log.New(os.Stderr, "matfmt: ", 0)
	if !errors.Is(err, runner.ErrFilesChanged) {
		logger.Print(err)
	}
	os.Exit(1)
}
