package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diligentgraphics/dnbuild/internal/project"
	"github.com/diligentgraphics/dnbuild/internal/runner"
	"github.com/diligentgraphics/dnbuild/internal/runner/runnertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Returns a recorder that simulates CMake installs, dotnet pack, and git.
func fakeTools(t *testing.T, l project.Layout) *runnertest.Recorder {
	t.Helper()

	return runnertest.New().
		On("cmake --build", func(cmd runner.Command) (string, error) {
			for _, a := range l.Project.Archs {
				if cmd.Args[1] != l.BuildDir(a) {
					continue
				}
				bin := l.InstallBinDir(a)
				if err := os.MkdirAll(bin, 0755); err != nil {
					return "", err
				}
				if err := os.MkdirAll(filepath.Join(l.BuildDir(a), "CMakeFiles"), 0755); err != nil {
					return "", err
				}
				return "", os.WriteFile(filepath.Join(bin, "GraphicsEngineD3D12_"+a.Name+".dll"), []byte(a.Name), 0644)
			}
			return "", nil
		}).
		On("dotnet pack", func(runner.Command) (string, error) {
			if err := os.MkdirAll(l.PackageDir(), 0755); err != nil {
				return "", err
			}
			return "", os.WriteFile(filepath.Join(l.PackageDir(), "Core.1.2.0.nupkg"), []byte("pkg"), 0644)
		}).
		On("git tag", func(runner.Command) (string, error) {
			return "v1.2.0\nv1.1.0", nil
		})
}

// Reduces recorded commands to "tool subcommand" pairs for readability.
func summarize(lines []string, l project.Layout) []string {
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		name := fields[0]
		for _, a := range l.Project.Archs {
			if name == l.NativeTestExe(a) {
				name = "native-test"
			}
		}
		if len(fields) > 1 {
			name += " " + fields[1]
		}
		result = append(result, name)
	}
	return result
}

func TestRunReleaseNativeOnly(t *testing.T) {
	l := project.NewLayout(t.TempDir(), project.Default(), project.Release)
	rec := fakeTools(t, l)

	require.NoError(t, Run(context.Background(), rec, Options{Layout: l}))

	assert.Equal(t, []string{
		"cmake -S", "cmake --build",
		"cmake -S", "cmake --build",
	}, summarize(rec.Lines(), l))

	for _, a := range l.Project.Archs {
		assert.FileExists(t, filepath.Join(l.StagedDir(a), "GraphicsEngineD3D12.dll"))
		assert.DirExists(t, filepath.Join(l.BuildDir(a), "CMakeFiles"), "no reclaim without --free-memory")
	}
	assert.NoFileExists(t, filepath.Join(l.ProjectOutputDir(), "Version.props"))
}

func TestRunDebugPublish(t *testing.T) {
	l := project.NewLayout(t.TempDir(), project.Default(), project.Debug)
	rec := fakeTools(t, l)

	require.NoError(t, Run(context.Background(), rec, Options{Layout: l, Mode: ModePublish}))

	assert.Equal(t, []string{
		"cmake -S", "cmake --build",
		"cmake -S", "cmake --build",
		"git tag",
		"dotnet build", "dotnet build",
		"dotnet pack",
	}, summarize(rec.Lines(), l))

	builds := rec.Matching("dotnet build")
	require.Len(t, builds, 2)
	assert.Contains(t, builds[0].Args, "-p:Platform=x86")
	assert.Contains(t, builds[1].Args, "-p:Platform=x64")

	data, err := os.ReadFile(filepath.Join(l.ProjectOutputDir(), "Version.props"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<PackageGitVersion>1.2.0</PackageGitVersion>")
	assert.Empty(t, rec.Matching("dotnet test"))
}

func TestRunTests(t *testing.T) {
	l := project.NewLayout(t.TempDir(), project.Default(), project.Debug)
	require.NoError(t, os.MkdirAll(l.TestAssetsDir(), 0755))
	rec := fakeTools(t, l)

	require.NoError(t, Run(context.Background(), rec, Options{Layout: l, Mode: ModeTest, FreeMemory: true}))

	perArch := []string{
		"git tag", "dotnet restore",
		"native-test --mode=d3d11", "native-test --mode=d3d11", "dotnet test",
		"native-test --mode=d3d12", "native-test --mode=d3d12", "dotnet test",
	}
	want := []string{
		"cmake -S", "cmake --build",
		"cmake -S", "cmake --build",
		"git tag", "dotnet build", "dotnet build", "dotnet pack",
	}
	want = append(want, perArch...)
	want = append(want, perArch...)
	assert.Equal(t, want, summarize(rec.Lines(), l))

	for _, a := range l.Project.Archs {
		assert.NoDirExists(t, filepath.Join(l.BuildDir(a), "CMakeFiles"))
		assert.DirExists(t, l.InstallDir(a))
	}

	data, err := os.ReadFile(filepath.Join(l.ProjectOutputDir(), "Version.props"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "1.2.0-local")
	assert.FileExists(t, filepath.Join(l.LocalPackagesDir(), "Core.1.2.0.nupkg"))
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	l := project.NewLayout(t.TempDir(), project.Default(), project.Release)
	rec := fakeTools(t, l).Fail("cmake -S", 7)

	err := Run(context.Background(), rec, Options{Layout: l, Mode: ModePublish})
	require.ErrorIs(t, err, ErrPipeline)
	assert.ErrorIs(t, err, runner.ErrCommandFailed)
	assert.Equal(t, 7, runner.ExitCode(err))
	assert.Equal(t, []string{"cmake -S"}, summarize(rec.Lines(), l))
}

func TestRunRejectsUnknownMode(t *testing.T) {
	l := project.NewLayout(t.TempDir(), project.Default(), project.Release)
	rec := fakeTools(t, l)

	err := Run(context.Background(), rec, Options{Layout: l, Mode: Mode(9)})
	assert.ErrorIs(t, err, ErrMode)
	assert.Empty(t, rec.Commands())
}

func TestRunCancelled(t *testing.T) {
	l := project.NewLayout(t.TempDir(), project.Default(), project.Release)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, fakeTools(t, l), Options{Layout: l})
	assert.ErrorIs(t, err, context.Canceled)
}
