package cmd

import (
	"fmt"
	"strings"

	"github.com/zjrosen/pydev/internal/ledger/domain"
	"github.com/zjrosen/pydev/internal/ui/styles"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent install runs",
	Long: `List recent install and update runs from the ledger, newest first. The
ledger records every run's outcome, package count and duration; disable it
with history.enabled: false in the config.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled (history.enabled: false)")
	}
	tc, err := newToolchain(".")
	if err != nil {
		return err
	}
	defer tc.close()
	if tc.installer.Ledger == nil {
		return fmt.Errorf("ledger unavailable at %s", cfg.History.Path)
	}

	runs, err := tc.installer.Ledger.List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, styles.Muted.Render("no runs recorded"))
		return nil
	}
	fmt.Fprint(out, renderRuns(runs))
	return nil
}

// renderRuns formats runs as an aligned table, newest first.
func renderRuns(runs []*domain.Run) string {
	rootWidth := len("package")
	for _, r := range runs {
		if len(r.Root) > rootWidth {
			rootWidth = len(r.Root)
		}
	}

	var sb strings.Builder
	sb.WriteString(styles.Muted.Render(fmt.Sprintf("%-16s  %-6s  %s  %4s  %8s",
		"when", "status", styles.PadRight("package", rootWidth), "pkgs", "took")) + "\n")

	for _, r := range runs {
		status := styles.Success.Render("ok    ")
		if r.Status == domain.StatusFailed {
			status = styles.Error.Render("failed")
		}
		sb.WriteString(fmt.Sprintf("%s  %s  %s  %4d  %8s",
			r.StartedAt.Format("2006-01-02 15:04"),
			status,
			styles.PadRight(r.Root, rootWidth),
			r.Packages,
			styles.FormatDuration(r.Duration())))
		if r.Detail != "" {
			sb.WriteString("  " + styles.Muted.Render(r.Detail))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
