// Package config provides configuration types and defaults for pydev.
package config

import (
	"fmt"
	"time"

	"github.com/zjrosen/pydev/internal/paths"
)

// HistoryConfig controls the install-run ledger.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"` // SQLite database file
}

// TracingConfig controls the optional OpenTelemetry tracer.
type TracingConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Exporter string `mapstructure:"exporter"` // "stdout" or "otlp"
	Endpoint string `mapstructure:"endpoint"` // OTLP gRPC endpoint, e.g. "localhost:4317"
}

// Config holds all configuration options for pydev.
type Config struct {
	// Python is the interpreter used to create virtual environments.
	Python string `mapstructure:"python"`

	// VenvDir is the virtual environment directory name inside a project.
	VenvDir string `mapstructure:"venv_dir"`

	// PipArgs are extra arguments appended to every pip invocation
	// (e.g. ["--index-url", "https://pypi.internal/simple"]).
	PipArgs []string `mapstructure:"pip_args"`

	// TestRunner is the module run via `python -m` by pydev test.
	TestRunner string `mapstructure:"test_runner"`

	// TestArgs are default arguments passed to the test runner.
	TestArgs []string `mapstructure:"test_args"`

	// MetadataDirs are directory-name glob patterns stripped by update/clean.
	MetadataDirs []string `mapstructure:"metadata_dirs"`

	// WatchDebounce is the quiet period before watch mode reinstalls.
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`

	// Color controls styled output: "auto", "always" or "never".
	Color string `mapstructure:"color"`

	History HistoryConfig `mapstructure:"history"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// DefaultMetadataDirs returns the directory patterns considered generated
// metadata. These match what editable installs and test runs leave behind.
func DefaultMetadataDirs() []string {
	return []string{"*.egg-info", "__pycache__", ".pytest_cache", "build"}
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		Python:        "python3",
		VenvDir:       "venv",
		TestRunner:    "pytest",
		MetadataDirs:  DefaultMetadataDirs(),
		WatchDebounce: 500 * time.Millisecond,
		Color:         "auto",
		History: HistoryConfig{
			Enabled: true,
			Path:    paths.DefaultHistoryPath(),
		},
		Tracing: TracingConfig{
			Exporter: "stdout",
		},
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.Python == "" {
		return fmt.Errorf("python: interpreter is required")
	}
	if c.VenvDir == "" {
		return fmt.Errorf("venv_dir: directory name is required")
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color: must be auto, always or never, got %q", c.Color)
	}
	if c.Tracing.Enabled {
		switch c.Tracing.Exporter {
		case "stdout":
		case "otlp":
			if c.Tracing.Endpoint == "" {
				return fmt.Errorf("tracing.endpoint: required for the otlp exporter")
			}
		default:
			return fmt.Errorf("tracing.exporter: must be stdout or otlp, got %q", c.Tracing.Exporter)
		}
	}
	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("history.path: required when history is enabled")
	}
	return nil
}
