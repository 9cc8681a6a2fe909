package domain

import "errors"

// ErrNoManifest indicates a directory contains neither a setup.cfg nor a
// pyproject.toml.
var ErrNoManifest = errors.New("no package manifest found")

// Manifest is the parsed dependency declaration of one package directory.
type Manifest struct {
	Path         string // manifest file the requirements came from
	Requirements []Requirement
}

// Names returns the declared requirement names, in declaration order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Requirements))
	for i, r := range m.Requirements {
		names[i] = r.Name
	}
	return names
}
