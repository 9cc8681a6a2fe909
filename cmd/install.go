package cmd

import (
	"fmt"
	"strings"

	"github.com/zjrosen/pydev/internal/ui/styles"

	"github.com/spf13/cobra"
)

var installUpgrade bool

var installCmd = &cobra.Command{
	Use:   "install [dir]",
	Short: "Install a package and its local dependencies editable",
	Long: `Resolve the package's local dependency closure — requirements whose
sibling directories are themselves packages — and pip-install every member
editable into the project venv, dependencies first, the package itself
last. The venv is created when missing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVarP(&installUpgrade, "upgrade", "U", false, "pass --upgrade to pip")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	dir := argDir(args)
	tc, err := newToolchain(dir)
	if err != nil {
		return err
	}
	defer tc.close()

	result, err := tc.installer.Install(cmd.Context(), dir, installUpgrade)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s installed %d package(s)\n%s\n",
		styles.Success.Render("✓"),
		len(result.Installed),
		styles.Wrap(strings.Join(result.Installed, ", "), 80))
	return nil
}
