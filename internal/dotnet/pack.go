package dotnet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/diligentgraphics/dnbuild/internal/project"
	"github.com/diligentgraphics/dnbuild/internal/runner"
	"github.com/diligentgraphics/dnbuild/internal/version"
)

// Stamps, builds, and packs the managed binding project.
//
// The project is built once per architecture, then packed once; the
// package bundles the staged native binaries of every architecture.
func Pack(ctx context.Context, r runner.Runner, l project.Layout, local bool) error {
	slog.Info("packing managed binding", "config", l.Config, "local", local)

	_, err := version.Stamp(ctx, r, version.Options{
		Root:       l.Root,
		Dir:        l.ProjectOutputDir(),
		Local:      local,
		Versioning: l.Project.Versioning,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPack, err)
	}

	for _, a := range l.Project.Archs {
		if err := r.Run(ctx, build(l, a)); err != nil {
			return fmt.Errorf("%w: build %s: %w", ErrPack, a.Name, err)
		}
	}

	pack := runner.Command{
		Name: "dotnet",
		Args: []string{"pack", "-c", l.Config.String(), l.ProjectDir()},
		Dir:  l.Root,
	}
	if err := r.Run(ctx, pack); err != nil {
		return fmt.Errorf("%w: %w", ErrPack, err)
	}

	slog.Info("packed managed binding", "dir", l.PackageDir())
	return nil
}

func build(l project.Layout, a project.Arch) runner.Command {
	return runner.Command{
		Name: "dotnet",
		Args: []string{"build", "-c", l.Config.String(), "-p:Platform=" + a.Name, l.ProjectDir()},
		Dir:  l.Root,
	}
}
