package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate_MissingPython(t *testing.T) {
	cfg := Default()
	cfg.Python = ""
	require.ErrorContains(t, cfg.Validate(), "python")
}

func TestValidate_BadColor(t *testing.T) {
	cfg := Default()
	cfg.Color = "rainbow"
	require.ErrorContains(t, cfg.Validate(), "color")
}

func TestValidate_Tracing(t *testing.T) {
	testCases := []struct {
		name    string
		tracing TracingConfig
		wantErr string
	}{
		{"disabled ignores exporter", TracingConfig{Enabled: false, Exporter: "bogus"}, ""},
		{"stdout ok", TracingConfig{Enabled: true, Exporter: "stdout"}, ""},
		{"otlp requires endpoint", TracingConfig{Enabled: true, Exporter: "otlp"}, "tracing.endpoint"},
		{"otlp with endpoint ok", TracingConfig{Enabled: true, Exporter: "otlp", Endpoint: "localhost:4317"}, ""},
		{"unknown exporter", TracingConfig{Enabled: true, Exporter: "jaeger"}, "tracing.exporter"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Tracing = tc.tracing
			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "python3", cfg.Python)
	require.Equal(t, "venv", cfg.VenvDir)
	require.Equal(t, 500*time.Millisecond, cfg.WatchDebounce)
}

func TestLoad_FileOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
python: python3.12
venv_dir: .venv
test_runner: unittest
watch_debounce: 2s
metadata_dirs:
  - "*.egg-info"
history:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "python3.12", cfg.Python)
	require.Equal(t, ".venv", cfg.VenvDir)
	require.Equal(t, "unittest", cfg.TestRunner)
	require.Equal(t, 2*time.Second, cfg.WatchDebounce)
	require.Equal(t, []string{"*.egg-info"}, cfg.MetadataDirs)
	require.False(t, cfg.History.Enabled)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PYDEV_PYTHON", "pypy3")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "pypy3", cfg.Python)
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: sometimes\n"), 0600))

	_, err := Load(path)
	require.ErrorContains(t, err, "color")
}
