package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

const stateDirName = ".nltklayer"

// HomeDir returns the current user's home directory, or "." when it cannot be
// determined.
func HomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// StatePath joins elem under the per-user state directory (~/.nltklayer).
func StatePath(elem ...string) string {
	return filepath.Join(append([]string{HomeDir(), stateDirName}, elem...)...)
}

// ExpandHome resolves a leading "~" against the home directory. Empty and
// absolute paths are returned unchanged; relative paths are cleaned.
func ExpandHome(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if path == "~" {
		return HomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(HomeDir(), path[2:])
	}
	return filepath.Clean(path)
}
