package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	infra "github.com/zjrosen/pydev/internal/manifest/infrastructure"
	"github.com/zjrosen/pydev/internal/resolve"
	"github.com/zjrosen/pydev/internal/ui/styles"
	"github.com/zjrosen/pydev/internal/workspace"

	"github.com/stretchr/testify/require"
)

func plansFixture(t *testing.T) *resolve.Plan {
	t.Helper()
	require.NoError(t, styles.SetColorMode("never"))

	root := t.TempDir()
	write := func(name, content string) {
		dir := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "setup.cfg"), []byte(content), 0600))
	}
	write("service-control-api", "[options]\ninstall_requires =\n    enough-tools>=1.0\n    requests>=2.28\n")
	write("enough-tools", "[options]\ninstall_requires =\n    pyyaml>=6.0\n")

	ws := workspace.New(infra.NewLoader())
	pkg, err := ws.LoadPackage(filepath.Join(root, "service-control-api"))
	require.NoError(t, err)
	plan, err := resolve.New(ws).Resolve(pkg)
	require.NoError(t, err)
	return plan
}

func TestRenderTree(t *testing.T) {
	plan := plansFixture(t)

	tree := renderTree(plan.Root)
	lines := strings.Split(strings.TrimRight(tree, "\n"), "\n")

	require.Equal(t, "service-control-api", lines[0])
	require.Contains(t, tree, "├── enough-tools")
	require.Contains(t, tree, "│   └── pyyaml>=6.0")
	require.Contains(t, tree, "└── requests>=2.28")
}

func TestRenderOrder(t *testing.T) {
	plan := plansFixture(t)

	order := renderOrder(plan)
	lines := strings.Split(strings.TrimRight(order, "\n"), "\n")

	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "1. enough-tools")
	require.Contains(t, lines[1], "2. service-control-api")
}
