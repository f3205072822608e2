// Package runnertest provides a recording [runner.Runner] for tests.
package runnertest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/diligentgraphics/dnbuild/internal/runner"
	"github.com/magefile/mage/mg"
)

// Simulates the effect of a command. A non-nil error fails the command.
type Hook func(cmd runner.Command) (output string, err error)

// Records commands instead of executing them.
//
// Hooks are matched by program name, then by the first argument
// ("dotnet pack"), the more specific match winning.
type Recorder struct {
	mu       sync.Mutex
	commands []runner.Command
	hooks    map[string]Hook
}

// Creates an empty [Recorder].
func New() *Recorder {
	return &Recorder{hooks: make(map[string]Hook)}
}

// Registers a hook for commands matching key ("git" or "git tag").
func (r *Recorder) On(key string, h Hook) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks[key] = h
	return r
}

// Registers a hook that fails matching commands with the given exit code.
func (r *Recorder) Fail(key string, code int) *Recorder {
	return r.On(key, func(cmd runner.Command) (string, error) {
		return "", fmt.Errorf("%w: %w", runner.ErrCommandFailed, mg.Fatalf(code, "%s: exit code %d", cmd.Name, code))
	})
}

func (r *Recorder) Run(ctx context.Context, cmd runner.Command) error {
	_, err := r.Output(ctx, cmd)
	return err
}

func (r *Recorder) Output(ctx context.Context, cmd runner.Command) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	h := r.hook(cmd)
	r.mu.Unlock()

	if h == nil {
		return "", nil
	}
	return h(cmd)
}

func (r *Recorder) hook(cmd runner.Command) Hook {
	if len(cmd.Args) > 0 {
		if h, ok := r.hooks[cmd.Name+" "+cmd.Args[0]]; ok {
			return h
		}
	}
	return r.hooks[cmd.Name]
}

// Returns the recorded commands in order.
func (r *Recorder) Commands() []runner.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]runner.Command(nil), r.commands...)
}

// Returns the recorded command lines in order.
func (r *Recorder) Lines() []string {
	cmds := r.Commands()
	lines := make([]string, len(cmds))
	for i, c := range cmds {
		lines[i] = c.String()
	}
	return lines
}

// Returns the recorded commands whose line starts with prefix.
func (r *Recorder) Matching(prefix string) []runner.Command {
	var result []runner.Command
	for _, c := range r.Commands() {
		if strings.HasPrefix(c.String(), prefix) {
			result = append(result, c)
		}
	}
	return result
}
