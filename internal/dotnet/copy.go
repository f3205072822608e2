package dotnet

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/diligentgraphics/dnbuild/internal/paths"
	"github.com/otiai10/copy"
)

// Extension of NuGet packages.
const packageExt = ".nupkg"

// Copies every package in src into the local feed dst.
//
// dst is created if absent. Returns the number of packages copied.
func copyPackages(src, dst string) (int, error) {
	if err := os.MkdirAll(dst, paths.DefaultDirMode); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	copied := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), packageExt) {
			continue
		}
		if err := copy.Copy(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return copied, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}
		copied++
	}
	return copied, nil
}

// Copies every file under src whose name contains marker into dst.
//
// The tree is flattened: files land directly in dst, later files replacing
// earlier ones of the same name. Modification times and permissions are
// preserved. Returns the number of files copied.
func copyAssets(src, dst, marker string) (int, error) {
	if err := os.MkdirAll(dst, paths.DefaultDirMode); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	copied := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.Contains(d.Name(), marker) {
			return nil
		}
		if err := copy.Copy(path, filepath.Join(dst, d.Name()), copy.Options{PreserveTimes: true}); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	return copied, nil
}
