package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/diligentgraphics/dnbuild/internal/native"
	"github.com/diligentgraphics/dnbuild/internal/pipeline"
	"github.com/diligentgraphics/dnbuild/internal/project"
	"github.com/diligentgraphics/dnbuild/internal/runner"
	"github.com/joho/godotenv"
)

// Represents the 'dnbuild build' command.
type BuildCmd struct {
	Configuration project.Configuration  `short:"c" required:"" placeholder:"CONFIG" help:"Build configuration: debug or release."`
	DotnetTests   bool                   `negatable:"" xor:"dotnet" help:"Pack the .NET binding as a local build and run the .NET tests."`
	DotnetPublish bool                   `negatable:"" xor:"dotnet" help:"Pack the .NET binding for publishing."`
	FreeMemory    bool                   `negatable:"" help:"Delete intermediate build files after the native builds."`
	OnCollision   native.CollisionPolicy `default:"skip" placeholder:"POLICY" help:"What to do when two staged binaries share a canonical name: skip, overwrite, or error."`
	Root          string                 `short:"C" type:"existingdir" default:"." help:"Repository root."`
	Config        string                 `type:"existingfile" placeholder:"PATH" help:"Project configuration file (YAML). Defaults to <root>/dnbuild.yaml, then the user configuration."`
	EnvFile       string                 `type:"existingfile" placeholder:"PATH" help:"Dotenv file whose variables are passed to every tool."`
}

// Executes the build command.
//
// Resolves the project, then runs the pipeline against the real tools.
func (c *BuildCmd) Run(ctx context.Context) error {
	opts, env, err := c.options()
	if err != nil {
		return err
	}

	r := runner.New(env)
	r.Echo = echoCommands()

	return pipeline.Run(ctx, r, opts)
}

// Builds pipeline options and the tool environment from the flags.
func (c *BuildCmd) options() (pipeline.Options, map[string]string, error) {
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return pipeline.Options{}, nil, err
	}

	p, source, err := project.Resolve(root, c.Config)
	if err != nil {
		return pipeline.Options{}, nil, err
	}
	if source != "" {
		slog.Info("loaded project configuration", "file", source)
	}

	var env map[string]string
	if c.EnvFile != "" {
		env, err = godotenv.Read(c.EnvFile)
		if err != nil {
			return pipeline.Options{}, nil, fmt.Errorf("read %s: %w", c.EnvFile, err)
		}
		slog.Debug("loaded tool environment", "file", c.EnvFile, "vars", len(env))
	}

	opts := pipeline.Options{
		Layout:     project.NewLayout(root, p, c.Configuration),
		Mode:       c.mode(),
		FreeMemory: c.FreeMemory,
		Collision:  c.OnCollision,
	}
	return opts, env, nil
}

func (c *BuildCmd) mode() pipeline.Mode {
	switch {
	case c.DotnetTests:
		return pipeline.ModeTest
	case c.DotnetPublish:
		return pipeline.ModePublish
	}
	return pipeline.ModeNone
}
