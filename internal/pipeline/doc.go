// Package pipeline runs the build-and-release sequence end to end.
//
// The sequence is fixed:
//
//  1. Build and stage the native library for every architecture.
//  2. Optionally reclaim disk space in every architecture's build tree.
//  3. Depending on the mode, pack the managed binding and run the tests for
//     every architecture ([ModeTest]), pack it for publishing
//     ([ModePublish]), or stop ([ModeNone]).
//
// Steps run one at a time and the first failure ends the run. External
// tools are invoked through a [runner.Runner], so the sequence can be
// exercised without CMake or the dotnet CLI installed.
//
// Example usage:
//
//	err := pipeline.Run(ctx, runner.New(nil), pipeline.Options{
//	    Layout: project.NewLayout(root, project.Default(), project.Release),
//	    Mode:   pipeline.ModePublish,
//	})
//	if err != nil {
//	    return err
//	}
package pipeline
