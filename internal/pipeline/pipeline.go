package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/diligentgraphics/dnbuild/internal/dotnet"
	"github.com/diligentgraphics/dnbuild/internal/native"
	"github.com/diligentgraphics/dnbuild/internal/project"
	"github.com/diligentgraphics/dnbuild/internal/runner"
)

// Selects what happens after the native builds.
type Mode int

const (
	ModeNone    Mode = iota // Native builds only.
	ModeTest                // Pack as a local build, then run the tests.
	ModePublish             // Pack for publishing.
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeTest:
		return "test"
	case ModePublish:
		return "publish"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Controls a pipeline run.
type Options struct {
	Layout     project.Layout         // Repository, tables, and configuration.
	Mode       Mode                   // Managed steps to run.
	FreeMemory bool                   // Reclaim build trees after the native builds.
	Collision  native.CollisionPolicy // Staging rename policy.
}

// Runs the pipeline.
//
// Blocks until every step has finished or one has failed. Cancelling ctx
// stops the running tool and the pipeline.
func Run(ctx context.Context, r runner.Runner, opts Options) error {
	if opts.Mode < ModeNone || opts.Mode > ModePublish {
		return fmt.Errorf("%w: %s", ErrMode, opts.Mode)
	}

	l := opts.Layout
	start := time.Now()

	slog.Info("running pipeline",
		"root", l.Root,
		"config", l.Config,
		"mode", opts.Mode,
		"free-memory", opts.FreeMemory,
		"archs", len(l.Project.Archs),
	)

	for _, a := range l.Project.Archs {
		if err := native.Build(ctx, r, native.Options{Layout: l, Arch: a, Collision: opts.Collision}); err != nil {
			return fmt.Errorf("%w: %w", ErrPipeline, err)
		}
	}

	if opts.FreeMemory {
		for _, a := range l.Project.Archs {
			if err := native.Reclaim(l, a); err != nil {
				return fmt.Errorf("%w: reclaim %s: %w", ErrPipeline, a.Name, err)
			}
		}
	}

	if err := runManaged(ctx, r, l, opts.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrPipeline, err)
	}

	slog.Info("pipeline finished", "elapsed", time.Since(start).Round(time.Second))
	return nil
}

// Runs the managed steps selected by mode.
func runManaged(ctx context.Context, r runner.Runner, l project.Layout, mode Mode) error {
	switch mode {
	case ModeTest:
		if err := dotnet.Pack(ctx, r, l, true); err != nil {
			return err
		}
		for _, a := range l.Project.Archs {
			if err := dotnet.Test(ctx, r, l, a); err != nil {
				return err
			}
		}
	case ModePublish:
		return dotnet.Pack(ctx, r, l, false)
	}
	return nil
}
