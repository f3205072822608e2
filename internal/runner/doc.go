// Package runner executes the external tools the pipeline drives.
//
// A [Command] names a program, its arguments, an optional working directory,
// and environment overrides. Overrides are layered on top of the runner's
// base environment, which is itself layered on the process environment, so
// per-command state (such as the graphics backend for a managed test run)
// never leaks into the process or into other commands.
//
// [Exec] runs commands with os/exec, streaming their output to the
// terminal. A command that exits non-zero yields an error wrapping
// [ErrCommandFailed] that also carries the child's exit status; [ExitCode]
// recovers it so the CLI can exit with the same code.
//
// Example usage:
//
//	r := runner.New(nil)
//	err := r.Run(ctx, runner.Command{
//	    Name: "cmake",
//	    Args: []string{"--build", "build/Win64", "--target", "install"},
//	})
//	if err != nil {
//	    os.Exit(runner.ExitCode(err))
//	}
package runner
