package infrastructure

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	domain "github.com/zjrosen/pydev/internal/python/domain"
)

// defaultKnownPaths defines the priority-ordered locations checked for an
// interpreter before falling back to PATH lookup.
var defaultKnownPaths = []string{
	"~/.local/bin/{name}",      // Common binary location
	"/opt/homebrew/bin/{name}", // Apple Silicon Mac (Homebrew)
	"/usr/local/bin/{name}",    // Intel Mac / Linux
}

// ExecutableFinder locates an executable by checking known paths first,
// then PATH.
type ExecutableFinder struct {
	name       string
	knownPaths []string
}

// FinderOption configures an ExecutableFinder.
type FinderOption func(*ExecutableFinder)

// WithKnownPaths replaces the default known-path templates. Templates may
// contain {name} and a leading ~.
func WithKnownPaths(paths ...string) FinderOption {
	return func(f *ExecutableFinder) {
		f.knownPaths = paths
	}
}

// NewExecutableFinder creates a finder for the named executable.
// Names containing a path separator are treated as explicit paths and only
// checked for existence.
func NewExecutableFinder(name string, opts ...FinderOption) *ExecutableFinder {
	f := &ExecutableFinder{name: name, knownPaths: defaultKnownPaths}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Find returns the resolved executable path.
// Returns an error wrapping domain.ErrExecutableNotFound when nothing
// matches.
func (f *ExecutableFinder) Find() (string, error) {
	if strings.ContainsRune(f.name, os.PathSeparator) {
		if _, err := os.Stat(f.name); err == nil {
			return f.name, nil
		}
		return "", fmt.Errorf("%s: %w", f.name, domain.ErrExecutableNotFound)
	}

	for _, template := range f.knownPaths {
		candidate := strings.ReplaceAll(template, "{name}", f.name)
		if strings.HasPrefix(candidate, "~/") {
			home, err := os.UserHomeDir()
			if err != nil {
				continue
			}
			candidate = filepath.Join(home, candidate[2:])
		}
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	path, err := exec.LookPath(f.name)
	if err != nil {
		return "", fmt.Errorf("%s: %w", f.name, domain.ErrExecutableNotFound)
	}
	return path, nil
}
