package cmd

import (
	"github.com/zjrosen/pydev/internal/paths"
	pydomain "github.com/zjrosen/pydev/internal/python/domain"

	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test [dir] [-- runner args...]",
	Short: "Run the project's tests inside its venv",
	Long: `Run the configured test runner (pytest by default) with the project venv's
interpreter. Arguments after -- go to the runner unchanged:

    pydev test -- -k test_login -x

The runner's exit code propagates, so CI and git hooks can rely on it.`,
	RunE: runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	// Positional args before -- select the directory; everything after --
	// belongs to the test runner.
	extra := []string{}
	dirArgs := args
	if at := cmd.ArgsLenAtDash(); at >= 0 {
		dirArgs = args[:at]
		extra = args[at:]
	}
	dir := argDir(dirArgs)

	tc, err := newToolchain(dir)
	if err != nil {
		return err
	}
	defer tc.close()

	pkg, err := tc.ws.LoadPackage(dir)
	if err != nil {
		return err
	}

	venv := pydomain.Venv{Dir: paths.ResolveVenvDir(pkg.Dir, tc.cfg.VenvDir)}
	return tc.runner.RunTests(cmd.Context(), venv, pkg.Dir, extra)
}
