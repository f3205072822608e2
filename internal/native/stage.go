package native

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/diligentgraphics/dnbuild/internal/paths"
	"github.com/magefile/mage/sh"
	"github.com/otiai10/copy"
)

// Decides what happens when a staged file's canonical name is taken.
type CollisionPolicy string

const (
	CollisionSkip      CollisionPolicy = "skip"      // Keep the file under its original name and warn.
	CollisionOverwrite CollisionPolicy = "overwrite" // Replace the file holding the canonical name.
	CollisionError     CollisionPolicy = "error"     // Fail the stage.
)

// Implements encoding.TextUnmarshaler so the policy can be used as a flag.
func (p *CollisionPolicy) UnmarshalText(text []byte) error {
	switch v := CollisionPolicy(strings.ToLower(string(text))); v {
	case CollisionSkip, CollisionOverwrite, CollisionError:
		*p = v
		return nil
	}
	return fmt.Errorf("unknown collision policy %q (want skip, overwrite, or error)", text)
}

// Returns the name the managed loader expects for a built file.
//
// The stem (up to the first dot) is cut at its first underscore and the
// last extension is kept: "GraphicsEngineD3D12_64d.dll" becomes
// "GraphicsEngineD3D12.dll". Names without an extension keep none. Names
// whose stem would be empty, such as "_hidden.dll", are left unchanged.
func CanonicalName(name string) string {
	stem, _, _ := strings.Cut(name, ".")
	stem, _, _ = strings.Cut(stem, "_")

	ext := filepath.Ext(name)
	if stem == "" {
		return name
	}
	return stem + ext
}

// Replaces the contents of dst with the regular files of src, then renames
// them to their canonical names.
//
// dst is created if absent and emptied otherwise. Returns the final file
// names in dst.
func Stage(src, dst string, policy CollisionPolicy) ([]string, error) {
	if err := clearDir(dst); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		if err := copy.Copy(from, to, copy.Options{PreserveTimes: true}); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}
	}

	return canonicalize(dst, policy)
}

// Creates dir if needed and removes everything inside it.
func clearDir(dir string) error {
	if err := os.MkdirAll(dir, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	for _, entry := range entries {
		if err := sh.Rm(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}
	}
	return nil
}

// Renames every file in dir to its canonical name, in lexical order.
func canonicalize(dir string, policy CollisionPolicy) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		canonical := CanonicalName(name)
		if canonical == name {
			continue
		}

		from := filepath.Join(dir, name)
		to := filepath.Join(dir, canonical)

		_, err := os.Lstat(to)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		case policy == CollisionError:
			return nil, fmt.Errorf("%w: cannot rename %s, %s already exists", ErrNameCollision, name, canonical)
		case policy == CollisionOverwrite:
			slog.Warn("overwriting staged file", "file", canonical, "with", name)
			if err := os.Remove(to); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
			}
		default:
			slog.Warn("canonical name taken, keeping original name", "file", name, "canonical", canonical)
			continue
		}

		slog.Debug("rename", "from", name, "to", canonical)
		if err := os.Rename(from, to); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}
	}

	return listNames(dir)
}

func listNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}
