package workspace

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zjrosen/pydev/internal/log"
)

// CollectMetadataDirs walks a package directory and returns every directory
// whose base name matches one of the glob patterns. Matched directories are
// not descended into, and the venv directory is never entered.
func CollectMetadataDirs(root, venvName string, patterns []string) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || path == root {
			return nil
		}
		if d.Name() == venvName {
			return filepath.SkipDir
		}
		for _, pattern := range patterns {
			ok, err := filepath.Match(pattern, d.Name())
			if err != nil {
				return err
			}
			if ok {
				matches = append(matches, path)
				return filepath.SkipDir
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// StripMetadata removes every matched metadata directory under root and
// returns the removed paths.
func StripMetadata(root, venvName string, patterns []string) ([]string, error) {
	matches, err := CollectMetadataDirs(root, venvName, patterns)
	if err != nil {
		return nil, err
	}
	for _, dir := range matches {
		if err := os.RemoveAll(dir); err != nil {
			return nil, err
		}
		log.Debug(log.CatResolve, "removed metadata dir", "path", dir)
	}
	return matches, nil
}
