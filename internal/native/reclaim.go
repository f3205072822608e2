package native

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/diligentgraphics/dnbuild/internal/project"
	"github.com/magefile/mage/sh"
)

// Deletes every top-level entry of the architecture's build folder except
// the test binaries and the install prefix.
//
// Entries that vanish concurrently are ignored. A missing build folder is an
// error.
func Reclaim(l project.Layout, a project.Arch) error {
	dir := l.BuildDir(a)
	slog.Info("reclaiming disk space", "arch", a.Name, "dir", dir)

	removed, err := reclaimDir(dir, project.TestsFolder, project.InstallFolder)
	if err != nil {
		return err
	}

	slog.Info("reclaimed disk space", "arch", a.Name, "removed", removed)
	return nil
}

// Removes all entries of dir whose names are not in keep. Returns the
// number of entries removed.
func reclaimDir(dir string, keep ...string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	removed := 0
	for _, entry := range entries {
		if slices.Contains(keep, entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		slog.Debug("remove", "path", path, "dir", entry.IsDir())
		if err := sh.Rm(path); err != nil {
			return removed, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}
		removed++
	}
	return removed, nil
}
