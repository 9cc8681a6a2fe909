package cmd

import (
	"fmt"
	"strings"

	"github.com/zjrosen/pydev/internal/ui/styles"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update [dir]",
	Short: "Reinstall with --upgrade and strip generated metadata",
	Long: `Reinstall the package and its local dependencies editable with pip's
--upgrade, then remove the metadata directories the installs generated
(*.egg-info, __pycache__ and friends), the package's own tree first and
each local dependency after it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	dir := argDir(args)
	tc, err := newToolchain(dir)
	if err != nil {
		return err
	}
	defer tc.close()

	result, removed, err := tc.installer.Update(cmd.Context(), dir, tc.cfg.MetadataDirs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s updated %d package(s)\n%s\n",
		styles.Success.Render("✓"),
		len(result.Installed),
		styles.Wrap(strings.Join(result.Installed, ", "), 80))
	for _, d := range removed {
		fmt.Fprintln(out, styles.Muted.Render("removed "+d))
	}
	return nil
}
