package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zjrosen/pydev/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	o, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Nil(t, o)
}

func TestLoad_ParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `
python: python3.11
test_runner: unittest
test_args: ["discover", "-s", "test"]
metadata_dirs: ["*.egg-info"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, OverridesFile), []byte(content), 0600))

	o, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, o)
	require.Equal(t, "python3.11", o.Python)
	require.Equal(t, "unittest", o.TestRunner)
	require.Equal(t, []string{"discover", "-s", "test"}, o.TestArgs)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, OverridesFile), []byte("python: [broken"), 0600))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestApply_MergesOnlySetFields(t *testing.T) {
	cfg := config.Default()
	o := &Overrides{Python: "pypy3", MetadataDirs: []string{"build"}}

	o.Apply(&cfg)
	require.Equal(t, "pypy3", cfg.Python)
	require.Equal(t, []string{"build"}, cfg.MetadataDirs)
	// Untouched fields keep their defaults.
	require.Equal(t, "venv", cfg.VenvDir)
	require.Equal(t, "pytest", cfg.TestRunner)
}

func TestApply_NilReceiverIsNoop(t *testing.T) {
	cfg := config.Default()
	var o *Overrides
	o.Apply(&cfg)
	require.Equal(t, config.Default(), cfg)
}
