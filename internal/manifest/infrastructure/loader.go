// Package infrastructure reads package manifests off disk.
package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/pydev/internal/log"
	domain "github.com/zjrosen/pydev/internal/manifest/domain"

	gocache "github.com/patrickmn/go-cache"
)

// manifestFiles are checked in order; the first present file wins.
var manifestFiles = []string{"setup.cfg", "pyproject.toml"}

// Loader reads manifests with an mtime-keyed cache in front, so watch mode
// can re-resolve on every event without re-parsing unchanged files.
type Loader struct {
	cache *gocache.Cache
}

// NewLoader creates a manifest loader.
func NewLoader() *Loader {
	return &Loader{cache: gocache.New(gocache.NoExpiration, 0)}
}

// Load reads the manifest of the package rooted at dir.
// Returns domain.ErrNoManifest when dir has no recognized manifest file.
func (l *Loader) Load(dir string) (*domain.Manifest, error) {
	for _, name := range manifestFiles {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		key := fmt.Sprintf("%s|%d|%d", path, info.ModTime().UnixNano(), info.Size())
		if cached, ok := l.cache.Get(key); ok {
			return cached.(*domain.Manifest), nil
		}

		var m *domain.Manifest
		switch name {
		case "setup.cfg":
			m, err = ReadSetupCfg(path)
		case "pyproject.toml":
			m, err = ReadPyProject(path)
		}
		if err != nil {
			return nil, err
		}
		log.Debug(log.CatResolve, "parsed manifest", "path", path, "requirements", len(m.Requirements))
		l.cache.Set(key, m, gocache.NoExpiration)
		return m, nil
	}
	return nil, fmt.Errorf("%s: %w", dir, domain.ErrNoManifest)
}

// IsPackage reports whether dir contains a recognized manifest file.
func (l *Loader) IsPackage(dir string) bool {
	for _, name := range manifestFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}
