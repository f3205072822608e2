package native

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/diligentgraphics/dnbuild/internal/project"
	"github.com/diligentgraphics/dnbuild/internal/runner"
)

// Controls a native build.
type Options struct {
	Layout    project.Layout  // Paths and configuration.
	Arch      project.Arch    // Target architecture.
	Collision CollisionPolicy // How staging resolves canonical name clashes.
}

// Configures and builds the install target for one architecture, then
// stages the installed binaries.
func Build(ctx context.Context, r runner.Runner, opts Options) error {
	l, a := opts.Layout, opts.Arch

	slog.Info("building native library", "arch", a.Name, "config", l.Config)

	configure := runner.Command{
		Name: "cmake",
		Args: []string{
			"-S", l.Root,
			"-B", l.BuildDir(a),
			"-D", "CMAKE_BUILD_TYPE=" + l.Config.String(),
			"-D", "CMAKE_INSTALL_PREFIX=" + l.InstallDir(a),
			"-A", a.Platform,
			"-D", "DILIGENT_BUILD_CORE_TESTS=ON",
		},
		Dir: l.Root,
	}
	if err := r.Run(ctx, configure); err != nil {
		return fmt.Errorf("%w: configure %s: %w", ErrBuild, a.Name, err)
	}

	build := runner.Command{
		Name: "cmake",
		Args: []string{"--build", l.BuildDir(a), "--target", "install", "--config", l.Config.String()},
		Dir:  l.Root,
	}
	if err := r.Run(ctx, build); err != nil {
		return fmt.Errorf("%w: build %s: %w", ErrBuild, a.Name, err)
	}

	staged, err := Stage(l.InstallBinDir(a), l.StagedDir(a), opts.Collision)
	if err != nil {
		return fmt.Errorf("%w: stage %s: %w", ErrBuild, a.Name, err)
	}

	slog.Info("staged native binaries", "arch", a.Name, "dir", l.StagedDir(a), "files", len(staged))
	return nil
}
