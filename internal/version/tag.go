package version

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/diligentgraphics/dnbuild/internal/runner"
	"golang.org/x/mod/semver"
)

// Returns the highest tag matching pattern in the repository at dir, with
// its one-character prefix removed.
//
// git is asked to sort by version already; tags are re-sorted by semantic
// version so the result does not depend on the git client, and tags that
// are not semantic versions are ignored. Fails with [ErrNoTags] when
// nothing matches.
func Latest(ctx context.Context, r runner.Runner, dir, pattern string) (string, error) {
	out, err := r.Output(ctx, runner.Command{
		Name: "git",
		Args: []string{"tag", "--list", pattern, "--sort=-v:refname"},
		Dir:  dir,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrVersionQuery, err)
	}

	tag, ignored := highest(strings.Fields(out))
	if tag == "" {
		if len(ignored) > 0 {
			return "", fmt.Errorf("%w: pattern %q (ignored non-semver tags: %s)", ErrNoTags, pattern, strings.Join(ignored, ", "))
		}
		return "", fmt.Errorf("%w: pattern %q", ErrNoTags, pattern)
	}

	slog.Debug("latest tag", "tag", tag, "ignored", ignored)
	return tag[1:], nil
}

// Returns the highest semantic-version tag ("" if there is none) and the
// tags skipped for not being semantic versions. Ties keep git's order.
func highest(tags []string) (string, []string) {
	var valid, ignored []string
	for _, t := range tags {
		if semver.IsValid(normalize(t)) {
			valid = append(valid, t)
		} else {
			ignored = append(ignored, t)
		}
	}
	if len(valid) == 0 {
		return "", ignored
	}

	slices.SortStableFunc(valid, func(a, b string) int {
		return semver.Compare(normalize(b), normalize(a))
	})
	return valid[0], ignored
}

// Maps a tag to the "v"-prefixed form semver expects, whatever its own
// one-character prefix.
func normalize(tag string) string {
	if tag == "" {
		return tag
	}
	return "v" + tag[1:]
}
