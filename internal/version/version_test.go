package version

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

func tagsRunner(tags ...string) *runnertest.Recorder {
	return runnertest.New().On("git tag", func(runner.Command) (string, error) {
		return strings.Join(tags, "\n"), nil
	})
}

func TestLatest(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{name: "git order", tags: []string{"v1.2.0", "v1.1.0"}, want: "1.2.0"},
		{name: "unsorted", tags: []string{"v2.4.0", "v2.10.1", "v2.5"}, want: "2.10.1"},
		{name: "prerelease lower", tags: []string{"v3.0.0-beta", "v2.9.9"}, want: "3.0.0-beta"},
		{name: "release above prerelease", tags: []string{"v3.0.0-beta", "v3.0.0"}, want: "3.0.0"},
		{name: "non-semver ignored", tags: []string{"vnext", "v1.0.0"}, want: "1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tagsRunner(tt.tags...)
			got, err := Latest(context.Background(), rec, "/repo", "v*")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			cmds := rec.Commands()
			require.Len(t, cmds, 1)
			assert.Equal(t, "git tag --list v* --sort=-v:refname", cmds[0].String())
			assert.Equal(t, "/repo", cmds[0].Dir)
		})
	}
}

func TestLatestNoTags(t *testing.T) {
	for _, tags := range [][]string{nil, {"vnext", "latest"}} {
		_, err := Latest(context.Background(), tagsRunner(tags...), "", "v*")
		assert.ErrorIs(t, err, ErrNoTags)
	}
}

func TestLatestNoTagsNamesIgnored(t *testing.T) {
	_, err := Latest(context.Background(), tagsRunner("v2.5.6.1", "v2.5.5.9"), "", "v*")
	require.ErrorIs(t, err, ErrNoTags)
	assert.Contains(t, err.Error(), "v2.5.6.1, v2.5.5.9")
}

func TestLatestQueryFailure(t *testing.T) {
	rec := runnertest.New().Fail("git", 128)
	_, err := Latest(context.Background(), rec, "", "v*")
	require.ErrorIs(t, err, ErrVersionQuery)
	assert.ErrorIs(t, err, runner.ErrCommandFailed)
	assert.Equal(t, 128, runner.ExitCode(err))
}

func TestStamp(t *testing.T) {
	tests := []struct {
		name  string
		local bool
		want  string
	}{
		{name: "release", local: false, want: "1.2.0"},
		{name: "local", local: true, want: "1.2.0-local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "build", ".NET", "Graphics", "GraphicsEngine.NET")
			v, err := Stamp(context.Background(), tagsRunner("v1.2.0", "v1.1.0"), Options{
				Dir:        dir,
				Local:      tt.local,
				Versioning: project.Default().Versioning,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)

			data, err := os.ReadFile(filepath.Join(dir, "Version.props"))
			require.NoError(t, err)
			assert.Equal(t, "<Project>\n"+
				"\t<PropertyGroup>\n"+
				"\t\t<PackageGitVersion>"+tt.want+"</PackageGitVersion>\n"+
				"\t</PropertyGroup>\n"+
				"</Project>\n", string(data))
		})
	}
}

func TestStampNoTagsWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	_, err := Stamp(context.Background(), tagsRunner(), Options{Dir: dir, Local: true, Versioning: project.Default().Versioning})
	require.ErrorIs(t, err, ErrNoTags)
	assert.NoDirExists(t, dir)
}

func TestWritePropsEscapes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Custom.props")
	require.NoError(t, WriteProps(path, "Ver", "1.0.0+a&b"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<Ver>1.0.0+a&amp;b</Ver>")
}
