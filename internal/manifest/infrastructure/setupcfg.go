package infrastructure

import (
	"bufio"
	"fmt"
	"os"

	domain "github.com/zjrosen/pydev/internal/manifest/domain"
)

// ReadSetupCfg extracts requirements from a setup.cfg by scanning every
// line for "name>=version" entries. setup.cfg values are Python-style
// multiline blocks, so a whole-file line scan is both simpler and more
// faithful than an ini parse: anything requirement-shaped is a dependency
// entry, nothing else in the file looks like one.
func ReadSetupCfg(path string) (*domain.Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	m := &domain.Manifest{Path: path}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if req, ok := domain.ParseRequirement(scanner.Text()); ok {
			m.Requirements = append(m.Requirements, req)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return m, nil
}
