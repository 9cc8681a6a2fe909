package cmd

import (
	"fmt"

	"github.com/zjrosen/pydev/internal/ui/styles"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [dir]",
	Short: "Remove the venv and all generated metadata",
	Long: `Remove the project's virtual environment and strip generated metadata
directories from the project and every local dependency. Source trees are
left untouched; the next install rebuilds everything removed here.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	dir := argDir(args)
	tc, err := newToolchain(dir)
	if err != nil {
		return err
	}
	defer tc.close()

	removed, err := tc.installer.Clean(dir, tc.cfg.MetadataDirs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(removed) == 0 {
		fmt.Fprintln(out, styles.Muted.Render("nothing to remove"))
		return nil
	}
	for _, d := range removed {
		fmt.Fprintln(out, styles.Muted.Render("removed "+d))
	}
	fmt.Fprintf(out, "%s removed %d item(s)\n", styles.Success.Render("✓"), len(removed))
	return nil
}
