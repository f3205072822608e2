package runner

import (
	"context"
	"maps"
	"runtime"
	"slices"
	"strings"
)

// Describes one external tool invocation.
type Command struct {
	Name string            // Program to run, looked up in PATH when not a path.
	Args []string          // Arguments, passed without shell interpretation.
	Dir  string            // Working directory. Empty uses the current directory.
	Env  map[string]string // Variables overlaid on the runner's environment.
}

// Runs external commands.
type Runner interface {

	// Runs the command, streaming its output. Blocks until it exits.
	Run(ctx context.Context, cmd Command) error

	// Runs the command and returns its trimmed standard output.
	Output(ctx context.Context, cmd Command) (string, error)
}

// Returns the command line as a single string, quoting arguments that
// contain spaces.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, p := range append([]string{c.Name}, c.Args...) {
		if p == "" || strings.ContainsAny(p, " \t\"") {
			p = `"` + strings.ReplaceAll(p, `"`, `\"`) + `"`
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " ")
}

// Formats the overrides as sorted "key=value" strings.
func (c Command) Environ() []string {
	return environ(c.Env)
}

// Formats a variable map as sorted "key=value" strings.
func environ(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for _, k := range slices.Sorted(maps.Keys(env)) {
		result = append(result, k+"="+env[k])
	}
	return result
}

// Returns the key used to match variables across layers. Windows
// variable names are case-insensitive.
var envKey = func(name string) string {
	if runtime.GOOS == "windows" {
		return strings.ToUpper(name)
	}
	return name
}

// Merges override env vars on top of a base env slice.
//
// Later overrides win and take the position of the entry they replace.
// Malformed entries (no "=") are dropped. Per-drive entries such as
// "=C:=C:\" are kept.
func mergeEnv(base []string, overrides ...[]string) []string {
	merged := make([]string, 0, len(base))
	index := make(map[string]int, len(base))
	for _, set := range append([][]string{base}, overrides...) {
		for _, entry := range set {
			name, ok := envName(entry)
			if !ok {
				continue
			}
			key := envKey(name)
			if i, seen := index[key]; seen {
				merged[i] = entry
				continue
			}
			index[key] = len(merged)
			merged = append(merged, entry)
		}
	}
	return merged
}

// Returns the variable name of a "key=value" entry. A leading "=" belongs
// to the name.
func envName(entry string) (string, bool) {
	start := 0
	if strings.HasPrefix(entry, "=") {
		start = 1
	}
	i := strings.IndexByte(entry[start:], '=')
	if i < 0 || start+i == 0 {
		return "", false
	}
	return entry[:start+i], true
}
