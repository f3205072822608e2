package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Runs commands on the host with os/exec.
type Exec struct {
	Env    map[string]string // Variables added to every command, below per-command overrides.
	Echo   bool              // Log command lines at info rather than debug level.
	Stdout io.Writer         // Destination for streamed standard output. Nil uses os.Stdout.
	Stderr io.Writer         // Destination for streamed standard error. Nil uses os.Stderr.
}

// Creates an [Exec] runner whose commands all see the given variables.
func New(env map[string]string) *Exec {
	return &Exec{Env: env}
}

// Runs the command, streaming output to the runner's writers.
//
// Blocks until the command exits. A non-zero exit status is returned as an
// error wrapping [ErrCommandFailed].
func (e *Exec) Run(ctx context.Context, cmd Command) error {
	e.log(cmd)

	c := e.build(ctx, cmd)
	c.Stdout = orDefault(e.Stdout, os.Stdout)
	c.Stderr = orDefault(e.Stderr, os.Stderr)

	if err := c.Run(); err != nil {
		return commandError(ctx, cmd, err, "")
	}
	return nil
}

// Runs the command and returns its standard output with surrounding
// whitespace removed.
//
// On failure the error includes whatever the command printed, so callers
// can surface the tool's own diagnostics.
func (e *Exec) Output(ctx context.Context, cmd Command) (string, error) {
	e.log(cmd)

	var stdout, stderr bytes.Buffer
	c := e.build(ctx, cmd)
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		output := strings.TrimSpace(stderr.String() + "\n" + stdout.String())
		return "", commandError(ctx, cmd, err, output)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Builds the os/exec command with the layered environment.
func (e *Exec) build(ctx context.Context, cmd Command) *exec.Cmd {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = mergeEnv(os.Environ(), environ(e.Env), cmd.Environ())
	return c
}

func (e *Exec) log(cmd Command) {
	level := slog.LevelDebug
	if e.Echo {
		level = slog.LevelInfo
	}
	attrs := []any{"command", cmd.String()}
	if cmd.Dir != "" {
		attrs = append(attrs, "dir", cmd.Dir)
	}
	if len(cmd.Env) > 0 {
		attrs = append(attrs, "env", cmd.Environ())
	}
	slog.Log(context.Background(), level, "run", attrs...)
}

// Converts an os/exec error into a pipeline error.
//
// The result wraps [ErrCommandFailed] (or [ErrNotStarted]) and an mg error
// carrying the exit status.
func commandError(ctx context.Context, cmd Command, err error, output string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %s: %w", ErrCommandFailed, cmd.Name, ctxErr)
	}

	if !sh.CmdRan(err) {
		return fmt.Errorf("%w: %s: %w", ErrNotStarted, cmd.Name, err)
	}

	code := sh.ExitStatus(err)
	msg := fmt.Sprintf("running %q failed with exit code %d", cmd.String(), code)
	if output != "" {
		msg += "\n" + output
	}
	return fmt.Errorf("%w: %w", ErrCommandFailed, mg.Fatal(code, msg))
}

// Returns the exit status to report for err.
//
// Nil maps to 0. Errors carrying an exit status (failed commands) map to
// that status; everything else maps to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var status interface{ ExitStatus() int }
	if errors.As(err, &status) && status.ExitStatus() > 0 {
		return status.ExitStatus()
	}
	return 1
}

func orDefault(w io.Writer, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
