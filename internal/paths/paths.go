package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	programName = "dnbuild"

	// Name of the project-local configuration file, looked up in the
	// repository root.
	ProjectConfigName = "dnbuild.yaml"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Directory holding user-level configuration.
//
//	Linux:   $XDG_CONFIG_HOME/dnbuild
//	Windows: %LOCALAPPDATA%\dnbuild
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, programName)
}

// Path to the user-level configuration file.
func UserConfig() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Path to the project-local configuration file under root.
func ProjectConfig(root string) string {
	return filepath.Join(root, ProjectConfigName)
}

// Returns the first existing file among candidates, or "" when none exists.
//
// Empty candidates are skipped.
func FirstExisting(candidates ...string) string {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c
		}
	}
	return ""
}
