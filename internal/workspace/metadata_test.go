package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var testPatterns = []string{"*.egg-info", "__pycache__", ".pytest_cache", "build"}

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0755))
	}
}

func TestCollectMetadataDirs(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"src/servicecontrol",
		"src/service_control.egg-info",
		"src/servicecontrol/__pycache__",
		".pytest_cache",
		"build",
		"test",
	)

	matches, err := CollectMetadataDirs(root, "venv", testPatterns)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		filepath.Join(root, "src/service_control.egg-info"),
		filepath.Join(root, "src/servicecontrol/__pycache__"),
		filepath.Join(root, ".pytest_cache"),
		filepath.Join(root, "build"),
	}, matches)
}

func TestCollectMetadataDirs_SkipsVenv(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "venv/lib/python3.12/site-packages/__pycache__")

	matches, err := CollectMetadataDirs(root, "venv", testPatterns)
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestStripMetadata(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "src/pkg.egg-info", "src/pkg", "__pycache__")
	require.NoError(t, os.WriteFile(filepath.Join(root, "src/pkg/__init__.py"), []byte(""), 0600))

	removed, err := StripMetadata(root, "venv", testPatterns)
	require.NoError(t, err)
	require.Len(t, removed, 2)

	// Sources are untouched, metadata is gone.
	require.FileExists(t, filepath.Join(root, "src/pkg/__init__.py"))
	require.NoDirExists(t, filepath.Join(root, "src/pkg.egg-info"))
	require.NoDirExists(t, filepath.Join(root, "__pycache__"))
}

func TestStripMetadata_NothingToDo(t *testing.T) {
	removed, err := StripMetadata(t.TempDir(), "venv", testPatterns)
	require.NoError(t, err)
	require.Empty(t, removed)
}
