// Package paths centralizes filesystem path resolution for pydev.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ResolveVenvDir returns the virtual environment directory for a project.
// If dir already ends in the venv directory name it is returned as-is, so
// callers may pass either the project directory or the venv itself.
func ResolveVenvDir(dir, venvName string) string {
	if venvName == "" {
		venvName = "venv"
	}
	if dir == "" {
		dir = "."
	}
	dir = filepath.Clean(dir)
	if filepath.Base(dir) == venvName {
		return dir
	}
	return filepath.Join(dir, venvName)
}

// ActivateScript returns the path of the venv's shell activation script.
func ActivateScript(venvDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvDir, "Scripts", "activate")
	}
	return filepath.Join(venvDir, "bin", "activate")
}

// VenvPython returns the path of the venv's python interpreter.
func VenvPython(venvDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvDir, "Scripts", "python.exe")
	}
	return filepath.Join(venvDir, "bin", "python")
}

// StateDir returns pydev's per-user state directory (~/.pydev).
// Falls back to a relative .pydev when the home directory is unknown.
func StateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pydev"
	}
	return filepath.Join(home, ".pydev")
}

// DefaultLogPath returns the default log file location.
func DefaultLogPath() string {
	return filepath.Join(StateDir(), "pydev.log")
}

// DefaultHistoryPath returns the default install-run ledger location.
func DefaultHistoryPath() string {
	return filepath.Join(StateDir(), "pydev.db")
}

// DefaultConfigDir returns the directory searched for config.yaml.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "pydev")
}

// ExpandHome replaces a leading ~/ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}
