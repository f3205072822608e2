package dotnet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/diligentgraphics/dnbuild/internal/project"
	"github.com/diligentgraphics/dnbuild/internal/runner"
	"github.com/diligentgraphics/dnbuild/internal/version"
	"github.com/magefile/mage/sh"
)

// Runs the native and managed GPU tests for one architecture.
//
// The test project is stamped as a local build, fed the packages produced
// by [Pack], and restored without any cached packages. Every backend is
// then run in order; the first failure stops the whole step.
func Test(ctx context.Context, r runner.Runner, l project.Layout, a project.Arch) error {
	slog.Info("testing managed binding", "arch", a.Name, "config", l.Config)

	_, err := version.Stamp(ctx, r, version.Options{
		Root:       l.Root,
		Dir:        l.TestsOutputDir(),
		Local:      true,
		Versioning: l.Project.Versioning,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTest, err)
	}

	copied, err := copyPackages(l.PackageDir(), l.LocalPackagesDir())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTest, err)
	}
	slog.Info("copied packages to local feed", "count", copied, "dir", l.LocalPackagesDir())

	if err := restore(ctx, r, l); err != nil {
		return fmt.Errorf("%w: %w", ErrTest, err)
	}

	for _, backend := range l.Project.Tests.Backends {
		if err := testBackend(ctx, r, l, a, backend); err != nil {
			return fmt.Errorf("%w: %s/%s: %w", ErrTest, a.Name, backend, err)
		}
	}
	return nil
}

// Deletes the restored package cache and restores the test project.
func restore(ctx context.Context, r runner.Runner, l project.Layout) error {
	if err := sh.Rm(l.RestoreCacheDir()); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	return r.Run(ctx, runner.Command{
		Name: "dotnet",
		Args: []string{"restore", "--no-cache", l.TestsDir()},
		Dir:  l.Root,
	})
}

// Runs the native tests, shares their assets, and runs the managed tests
// for a single graphics backend.
func testBackend(ctx context.Context, r runner.Runner, l project.Layout, a project.Arch, backend string) error {
	slog.Info("running tests", "arch", a.Name, "backend", backend)

	for _, filter := range l.Project.Tests.NativeTests {
		cmd := runner.Command{
			Name: l.NativeTestExe(a),
			Args: []string{"--mode=" + backend, "--gtest_filter=" + filter},
			Dir:  l.TestAssetsDir(),
		}
		if err := r.Run(ctx, cmd); err != nil {
			return err
		}
	}

	copied, err := copyAssets(l.TestAssetsDir(), l.ManagedAssetsDir(), l.Project.Tests.AssetMarker)
	if err != nil {
		return err
	}
	slog.Debug("copied test assets", "count", copied, "dir", l.ManagedAssetsDir())

	return r.Run(ctx, runner.Command{
		Name: "dotnet",
		Args: []string{"test", "-c", l.Config.String(), "-p:Platform=" + a.Name, l.TestsDir()},
		Dir:  l.Root,
		Env:  map[string]string{l.Project.Tests.BackendEnv: backend},
	})
}
