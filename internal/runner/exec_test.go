package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeEnv(t *testing.T) {
	tests := []struct {
		name      string
		base      []string
		overrides [][]string
		want      []string
	}{
		{
			name:      "override existing key",
			base:      []string{"A=1", "B=2"},
			overrides: [][]string{{"A=override"}},
			want:      []string{"A=override", "B=2"},
		},
		{
			name:      "later layer wins",
			base:      []string{"A=1"},
			overrides: [][]string{{"A=2"}, {"A=3"}},
			want:      []string{"A=3"},
		},
		{
			name: "both empty",
			want: []string{},
		},
		{
			name: "value with equals sign",
			base: []string{"CMD=foo=bar"},
			want: []string{"CMD=foo=bar"},
		},
		{
			name:      "malformed entries skipped",
			base:      []string{"NOEQUALS", "A=1", "="},
			overrides: [][]string{{"ALSO_BAD", "B=2"}},
			want:      []string{"A=1", "B=2"},
		},
		{
			name:      "drive entries kept",
			base:      []string{"=C:=C:\\src", "A=1"},
			overrides: [][]string{{"=C:=C:\\build"}},
			want:      []string{"=C:=C:\\build", "A=1"},
		},
		{
			name:      "base order kept",
			base:      []string{"Z=1", "A=1"},
			overrides: [][]string{{"Z=2", "M=1"}},
			want:      []string{"Z=2", "A=1", "M=1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeEnv(tt.base, tt.overrides...))
		})
	}
}

func TestMergeEnvFoldsCase(t *testing.T) {
	saved := envKey
	t.Cleanup(func() { envKey = saved })
	envKey = strings.ToUpper

	got := mergeEnv(
		[]string{"Path=C:\\Windows", "diligent_gapi=d3d11"},
		environ(map[string]string{"PATH": "C:\\vcpkg;C:\\Windows"}),
		environ(map[string]string{"DILIGENT_GAPI": "d3d12"}),
	)
	assert.Equal(t, []string{"PATH=C:\\vcpkg;C:\\Windows", "DILIGENT_GAPI=d3d12"}, got)
}

func TestMergeEnvKeepsCaseOnUnix(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("variable names are case-insensitive on windows")
	}
	got := mergeEnv([]string{"Path=a"}, []string{"PATH=b"})
	assert.Equal(t, []string{"Path=a", "PATH=b"}, got)
}

func TestCommandString(t *testing.T) {
	cmd := Command{Name: "dotnet", Args: []string{"test", "-c", "Release", "C:\\Program Files\\x", ""}}
	assert.Equal(t, `dotnet test -c Release "C:\Program Files\x" ""`, cmd.String())
}

func TestCommandEnviron(t *testing.T) {
	cmd := Command{Env: map[string]string{"B": "2", "A": "1"}}
	assert.Equal(t, []string{"A=1", "B=2"}, cmd.Environ())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("plain")))
}

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunFailure(t *testing.T) {
	requireShell(t)

	var stdout bytes.Buffer
	e := &Exec{Stdout: &stdout, Stderr: &stdout}
	err := e.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo out; exit 3"}})

	require.ErrorIs(t, err, ErrCommandFailed)
	assert.Equal(t, 3, ExitCode(err))
	assert.Equal(t, "out\n", stdout.String())
}

func TestExecOutputLayersEnvironment(t *testing.T) {
	requireShell(t)

	e := New(map[string]string{"LAYER_A": "base", "LAYER_B": "base"})
	out, err := e.Output(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "echo $LAYER_A-$LAYER_B"},
		Env:  map[string]string{"LAYER_B": "cmd"},
	})

	require.NoError(t, err)
	assert.Equal(t, "base-cmd", out)
}

func TestExecOutputWorkdir(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	out, err := New(nil).Output(context.Background(), Command{Name: "sh", Args: []string{"-c", "pwd -P"}, Dir: dir})
	require.NoError(t, err)

	resolved, err := filepathEval(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, out)
}

func TestExecOutputCarriesToolOutput(t *testing.T) {
	requireShell(t)

	_, err := New(nil).Output(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo fatal: not a git repository >&2; exit 128"}})
	require.ErrorIs(t, err, ErrCommandFailed)
	assert.Contains(t, err.Error(), "fatal: not a git repository")
	assert.Equal(t, 128, ExitCode(err))
}

func TestExecNotStarted(t *testing.T) {
	err := New(nil).Run(context.Background(), Command{Name: "dnbuild-no-such-tool"})
	require.ErrorIs(t, err, ErrNotStarted)
	assert.Equal(t, 1, ExitCode(err))
}
