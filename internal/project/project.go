// Package project reads per-project overrides from a .pydev.yaml file in
// the project directory. Overrides sit on top of the user config, so one
// project can pin an interpreter or test runner without touching global
// settings.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/pydev/internal/config"
	"github.com/zjrosen/pydev/internal/log"

	"gopkg.in/yaml.v3"
)

// OverridesFile is the per-project override file name.
const OverridesFile = ".pydev.yaml"

// Overrides holds the subset of configuration a project may override.
type Overrides struct {
	Python       string   `yaml:"python"`
	VenvDir      string   `yaml:"venv_dir"`
	PipArgs      []string `yaml:"pip_args"`
	TestRunner   string   `yaml:"test_runner"`
	TestArgs     []string `yaml:"test_args"`
	MetadataDirs []string `yaml:"metadata_dirs"`
}

// Load reads dir's override file. A missing file returns nil, nil.
func Load(dir string) (*Overrides, error) {
	path := filepath.Join(dir, OverridesFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	log.Debug(log.CatConfig, "loaded project overrides", "path", path)
	return &o, nil
}

// Apply merges the overrides into cfg. Empty fields leave cfg untouched.
func (o *Overrides) Apply(cfg *config.Config) {
	if o == nil {
		return
	}
	if o.Python != "" {
		cfg.Python = o.Python
	}
	if o.VenvDir != "" {
		cfg.VenvDir = o.VenvDir
	}
	if len(o.PipArgs) > 0 {
		cfg.PipArgs = o.PipArgs
	}
	if o.TestRunner != "" {
		cfg.TestRunner = o.TestRunner
	}
	if len(o.TestArgs) > 0 {
		cfg.TestArgs = o.TestArgs
	}
	if len(o.MetadataDirs) > 0 {
		cfg.MetadataDirs = o.MetadataDirs
	}
}
