package infrastructure

import (
	"fmt"
	"os"

	domain "github.com/zjrosen/pydev/internal/manifest/domain"

	"github.com/pelletier/go-toml/v2"
)

// pyprojectFile models the slice of pyproject.toml pydev cares about.
type pyprojectFile struct {
	Project struct {
		Name         string   `toml:"name"`
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
}

// ReadPyProject extracts requirements from a pyproject.toml [project]
// table. Only "name>=version"-shaped entries become requirements; pinned,
// bounded, extra'd or marked entries are never local-install candidates.
func ReadPyProject(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	var file pyprojectFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	m := &domain.Manifest{Path: path}
	for _, entry := range file.Project.Dependencies {
		if req, ok := domain.ParseRequirement(entry); ok {
			m.Requirements = append(m.Requirements, req)
		}
	}
	return m, nil
}
