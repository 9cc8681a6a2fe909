// Package workspace models a checkout of sibling Python packages.
//
// A package is a directory with a manifest; a dependency is "local" exactly
// when a sibling directory with a matching normalized name is itself a
// package. That heuristic is the whole locality model.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/pydev/internal/log"
	domain "github.com/zjrosen/pydev/internal/manifest/domain"
	infra "github.com/zjrosen/pydev/internal/manifest/infrastructure"
)

// Package is a Python package checkout, identified by its directory name.
type Package struct {
	Name     string // directory base name
	Dir      string // absolute path
	Manifest *domain.Manifest
}

// NormalizedName returns the package's directory name in normalized form.
func (p *Package) NormalizedName() string {
	return domain.NormalizeName(p.Name)
}

// Workspace resolves packages and their local siblings.
type Workspace struct {
	loader *infra.Loader
}

// New creates a Workspace backed by the given manifest loader.
func New(loader *infra.Loader) *Workspace {
	return &Workspace{loader: loader}
}

// LoadPackage loads the package rooted at dir.
// Returns manifest domain.ErrNoManifest when dir is not a package.
func (w *Workspace) LoadPackage(dir string) (*Package, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	m, err := w.loader.Load(abs)
	if err != nil {
		return nil, err
	}
	return &Package{
		Name:     filepath.Base(abs),
		Dir:      abs,
		Manifest: m,
	}, nil
}

// FindSibling looks next to pkg for a directory whose normalized name
// matches the requirement and which is itself a package. The bool result
// reports whether the requirement is local.
func (w *Workspace) FindSibling(pkg *Package, req domain.Requirement) (*Package, bool) {
	parent := filepath.Dir(pkg.Dir)

	// Fast path: the dependency name is the literal directory name.
	exact := filepath.Join(parent, req.Name)
	if w.loader.IsPackage(exact) {
		sibling, err := w.LoadPackage(exact)
		if err == nil {
			return sibling, true
		}
	}

	want := req.NormalizedName()
	entries, err := os.ReadDir(parent)
	if err != nil {
		log.Warn(log.CatResolve, "cannot scan workspace", "dir", parent, "error", err.Error())
		return nil, false
	}
	for _, entry := range entries {
		if !entry.IsDir() || domain.NormalizeName(entry.Name()) != want {
			continue
		}
		dir := filepath.Join(parent, entry.Name())
		if !w.loader.IsPackage(dir) {
			continue
		}
		sibling, err := w.LoadPackage(dir)
		if err != nil {
			log.Warn(log.CatResolve, "sibling has unreadable manifest", "dir", dir, "error", err.Error())
			return nil, false
		}
		return sibling, true
	}
	return nil, false
}
