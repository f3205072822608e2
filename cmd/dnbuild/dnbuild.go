package main

import (
	"log/slog"
	"os"

	"github.com/diligentgraphics/dnbuild/internal"
	"github.com/diligentgraphics/dnbuild/internal/cli"
	"github.com/diligentgraphics/dnbuild/internal/runner"
)

// The entry point for dnbuild.
//
// Initializes logging, records startup information, and executes the root
// command. A failing tool's exit status becomes the process exit status;
// any other error exits with 1.
func main() {
	slog.SetDefault(cli.NewLogger(os.Stderr))

	slog.Debug("build", "info", internal.Info())

	slog.Debug("dnbuild is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(runner.ExitCode(err))
	}
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
