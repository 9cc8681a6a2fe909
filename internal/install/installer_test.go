package install

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	ledgerdomain "github.com/zjrosen/pydev/internal/ledger/domain"
	infra "github.com/zjrosen/pydev/internal/manifest/infrastructure"
	pydomain "github.com/zjrosen/pydev/internal/python/domain"
	"github.com/zjrosen/pydev/internal/resolve"
	"github.com/zjrosen/pydev/internal/workspace"

	"github.com/stretchr/testify/require"
)

// fakeRunner implements application.Runner against the filesystem only.
type fakeRunner struct {
	created   []string // venv dirs created
	installed []string // package dirs installed, in call order
	upgrades  int

	failCreate  bool
	failPackage string // base name of the package dir to fail on
}

func (f *fakeRunner) CreateVenv(_ context.Context, venvDir string) error {
	if f.failCreate {
		// Leave a partial directory behind, as a crashed interpreter would.
		_ = os.MkdirAll(venvDir, 0755)
		return pydomain.ErrVenvCreate
	}
	if err := os.MkdirAll(filepath.Join(venvDir, "bin"), 0755); err != nil {
		return err
	}
	f.created = append(f.created, venvDir)
	return os.WriteFile(filepath.Join(venvDir, "bin", "python"), []byte(""), 0755)
}

func (f *fakeRunner) InstallEditable(_ context.Context, _ pydomain.Venv, pkgDir string, upgrade bool) error {
	if filepath.Base(pkgDir) == f.failPackage {
		return errors.New("pip exited 1")
	}
	if upgrade {
		f.upgrades++
	}
	f.installed = append(f.installed, filepath.Base(pkgDir))
	return nil
}

func (f *fakeRunner) RunTests(_ context.Context, _ pydomain.Venv, _ string, _ []string) error {
	return nil
}

// memoryLedger records saved runs in memory.
type memoryLedger struct {
	runs []*ledgerdomain.Run
}

func (m *memoryLedger) Save(run *ledgerdomain.Run) error {
	m.runs = append(m.runs, run)
	return nil
}

func (m *memoryLedger) List(int) ([]*ledgerdomain.Run, error) {
	return m.runs, nil
}

// newFixture builds a sibling workspace and returns an installer over it.
func newFixture(t *testing.T, pkgs map[string][]string) (string, *Installer, *fakeRunner, *memoryLedger) {
	t.Helper()
	root := t.TempDir()
	for name, deps := range pkgs {
		dir := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(dir, 0755))
		content := "[options]\ninstall_requires =\n"
		for _, dep := range deps {
			content += "    " + dep + ">=0.1\n"
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, "setup.cfg"), []byte(content), 0600))
	}

	ws := workspace.New(infra.NewLoader())
	runner := &fakeRunner{}
	ledger := &memoryLedger{}
	installer := &Installer{
		Workspace: ws,
		Resolver:  resolve.New(ws),
		Runner:    runner,
		VenvName:  "venv",
		Ledger:    ledger,
	}
	return root, installer, runner, ledger
}

func TestInstall_BottomUpOrder(t *testing.T) {
	root, installer, runner, ledger := newFixture(t, map[string][]string{
		"app":  {"lib"},
		"lib":  {"base"},
		"base": nil,
	})

	result, err := installer.Install(context.Background(), filepath.Join(root, "app"), false)
	require.NoError(t, err)

	require.Equal(t, []string{"base", "lib", "app"}, runner.installed)
	require.Equal(t, []string{"base", "lib", "app"}, result.Installed)
	require.True(t, result.CreatedVenv)
	require.True(t, result.Venv.Exists())

	require.Len(t, ledger.runs, 1)
	require.Equal(t, ledgerdomain.StatusOK, ledger.runs[0].Status)
	require.Equal(t, 3, ledger.runs[0].Packages)
	require.Equal(t, "app", ledger.runs[0].Root)
}

func TestInstall_ReusesExistingVenv(t *testing.T) {
	root, installer, runner, _ := newFixture(t, map[string][]string{"app": nil})
	appDir := filepath.Join(root, "app")

	_, err := installer.Install(context.Background(), appDir, false)
	require.NoError(t, err)
	_, err = installer.Install(context.Background(), appDir, false)
	require.NoError(t, err)

	require.Len(t, runner.created, 1, "venv should be created once")
}

func TestInstall_FailureRemovesCreatedVenv(t *testing.T) {
	root, installer, runner, ledger := newFixture(t, map[string][]string{
		"app": {"lib"},
		"lib": nil,
	})
	runner.failPackage = "lib"
	appDir := filepath.Join(root, "app")

	_, err := installer.Install(context.Background(), appDir, false)
	require.Error(t, err)

	require.NoDirExists(t, filepath.Join(appDir, "venv"))
	require.Len(t, ledger.runs, 1)
	require.Equal(t, ledgerdomain.StatusFailed, ledger.runs[0].Status)
	require.Equal(t, "pip exited 1", ledger.runs[0].Detail)
}

func TestInstall_FailurePreservesPreexistingVenv(t *testing.T) {
	root, installer, runner, _ := newFixture(t, map[string][]string{
		"app": {"lib"},
		"lib": nil,
	})
	appDir := filepath.Join(root, "app")

	// First install creates the venv.
	_, err := installer.Install(context.Background(), appDir, false)
	require.NoError(t, err)

	runner.failPackage = "lib"
	_, err = installer.Install(context.Background(), appDir, false)
	require.Error(t, err)

	require.DirExists(t, filepath.Join(appDir, "venv"), "pre-existing venv must survive a failed run")
}

func TestEnsureVenv_CreateFailureRemovesPartialVenv(t *testing.T) {
	root, installer, runner, _ := newFixture(t, map[string][]string{"app": nil})
	runner.failCreate = true
	appDir := filepath.Join(root, "app")

	_, _, err := installer.EnsureVenv(context.Background(), appDir)
	require.ErrorIs(t, err, pydomain.ErrVenvCreate)
	require.NoDirExists(t, filepath.Join(appDir, "venv"))
}

func TestInstall_CycleFails(t *testing.T) {
	root, installer, _, _ := newFixture(t, map[string][]string{
		"a": {"b"},
		"b": {"a"},
	})

	_, err := installer.Install(context.Background(), filepath.Join(root, "a"), false)
	var cycle *resolve.CycleError
	require.ErrorAs(t, err, &cycle)
}

func TestUpdate_UpgradesAndStripsTopDown(t *testing.T) {
	root, installer, runner, _ := newFixture(t, map[string][]string{
		"app": {"lib"},
		"lib": nil,
	})
	appDir := filepath.Join(root, "app")
	libDir := filepath.Join(root, "lib")
	require.NoError(t, os.MkdirAll(filepath.Join(appDir, "src", "app.egg-info"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(libDir, "lib.egg-info"), 0755))

	result, removed, err := installer.Update(context.Background(), appDir, []string{"*.egg-info"})
	require.NoError(t, err)
	require.Equal(t, 2, runner.upgrades)
	require.Equal(t, []string{"lib", "app"}, result.Installed)

	// Top-down: root's metadata stripped before the dependency's.
	require.Equal(t, []string{
		filepath.Join(appDir, "src", "app.egg-info"),
		filepath.Join(libDir, "lib.egg-info"),
	}, removed)
}

func TestClean_RemovesVenvAndMetadata(t *testing.T) {
	root, installer, _, _ := newFixture(t, map[string][]string{
		"app": {"lib"},
		"lib": nil,
	})
	appDir := filepath.Join(root, "app")

	_, err := installer.Install(context.Background(), appDir, false)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(appDir, "__pycache__"), 0755))

	removed, err := installer.Clean(appDir, []string{"__pycache__"})
	require.NoError(t, err)
	require.Contains(t, removed, filepath.Join(appDir, "venv"))
	require.Contains(t, removed, filepath.Join(appDir, "__pycache__"))
	require.NoDirExists(t, filepath.Join(appDir, "venv"))
}

func TestClean_NoVenvIsFine(t *testing.T) {
	root, installer, _, _ := newFixture(t, map[string][]string{"app": nil})

	removed, err := installer.Clean(filepath.Join(root, "app"), []string{"__pycache__"})
	require.NoError(t, err)
	require.Empty(t, removed)
}

func TestInstall_NoLedgerConfigured(t *testing.T) {
	root, installer, _, _ := newFixture(t, map[string][]string{"app": nil})
	installer.Ledger = nil

	_, err := installer.Install(context.Background(), filepath.Join(root, "app"), false)
	require.NoError(t, err)
}
