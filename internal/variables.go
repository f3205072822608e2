package internal

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

const (

	// Program name, used for the logger group and the config directory.
	Name = "dnbuild"

	// Placeholder for build metadata that was not injected.
	undefined = "(undefined)"

	// Branch whose builds carry no stage suffix.
	releaseBranch = "master"
)

// Set with -ldflags "-X github.com/diligentgraphics/dnbuild/internal.<name>=...".
var (
	version   = "" // Release number (e.g., "v2.5.6")
	stage     = "" // Branch the binary was built from (e.g., "master")
	gitCommit = "" // Commit hash (e.g., "a1b2c3d4")

	rawVerbosity = "" // Default verbosity ("quiet", "verbose", "debug")
)

// Metadata injected into the binary at link time.
type BuildInfo struct {
	Version string // Release number without the "v" prefix.
	Stage   string // Lowercased branch name.
	Commit  string // Commit hash.
	Host    string // GOOS/GOARCH of the running binary.
	Local   bool   // Set when any linker variable is missing.
}

// Returns the metadata of the running binary. Missing values read
// "(undefined)".
func Info() BuildInfo {
	v, s, c := strings.TrimSpace(version), strings.TrimSpace(stage), strings.TrimSpace(gitCommit)
	return BuildInfo{
		Version: orUndefined(strings.TrimPrefix(strings.ToLower(v), "v")),
		Stage:   orUndefined(strings.ToLower(s)),
		Commit:  orUndefined(c),
		Host:    runtime.GOOS + "/" + runtime.GOARCH,
		Local:   v == "" || s == "" || c == "",
	}
}

// Formats the metadata as "<version>[+<stage>] <commit> [<host>]", or
// "(local)" for developer builds.
func (b BuildInfo) String() string {
	if b.Local {
		return "(local)"
	}

	suffix := ""
	if b.Stage != releaseBranch {
		suffix = "+" + b.Stage
	}
	return fmt.Sprintf("%s%s %s [%s]", b.Version, suffix, b.Commit, b.Host)
}

// Implements [slog.LogValuer].
func (b BuildInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("version", b.Version),
		slog.String("stage", b.Stage),
		slog.String("commit", b.Commit),
		slog.String("host", b.Host),
		slog.Bool("local", b.Local),
	)
}

func orUndefined(s string) string {
	if s == "" {
		return undefined
	}
	return s
}
