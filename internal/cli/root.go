package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/diligentgraphics/dnbuild/internal"
)

// Represents the root command for dnbuild.
type Root struct {
	Quiet   bool       `short:"q" xor:"verbosity" help:"Only report warnings and errors."`
	Verbose bool       `short:"v" xor:"verbosity" help:"Echo every command line."`
	Debug   bool       `short:"d" xor:"verbosity" help:"Enable debug output."`
	Build   BuildCmd   `cmd:"" default:"withargs" help:"Build native binaries, then optionally pack and test the .NET binding."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parsed command line of the running process.
var RootCmd Root

// Parses arguments, configures logging, and runs the selected command.
func Execute() error {
	return execute(os.Args[1:], os.Exit)
}

func execute(args []string, exit func(int)) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	parser, err := newParser(&RootCmd, ctx, exit)
	if err != nil {
		return err
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		parser.FatalIfErrorf(err)
		return err
	}

	configureLogger(&RootCmd)

	return kongCtx.Run()
}

// Creates the kong parser for root, binding ctx for command Run methods.
func newParser(root *Root, ctx context.Context, exit func(int)) (*kong.Kong, error) {
	return kong.New(root,
		kong.Name(internal.Name),
		kong.Description("Builds the native graphics library for Windows and packs its .NET binding."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Vars{
			"version": internal.Info().String(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
}

// Configures the global logger based on CLI flags.
func configureLogger(root *Root) {
	switch {
	case root.Debug:
		internal.SetVerbosity(internal.VerbosityDebug)
	case root.Verbose:
		internal.SetVerbosity(internal.VerbosityVerbose)
	case root.Quiet:
		internal.SetVerbosity(internal.VerbosityQuiet)
	}

	slog.SetDefault(NewLogger(os.Stderr))
}

// Creates a text logger at the current verbosity, grouped under the program
// name.
func NewLogger(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: internal.LogLevel()})
	return slog.New(handler.WithGroup(internal.Name))
}

// Whether command lines should be logged at info level.
func echoCommands() bool {
	v := internal.CurrentVerbosity()
	return v == internal.VerbosityVerbose || v == internal.VerbosityDebug
}
