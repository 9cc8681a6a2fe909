package cmd

import (
	"fmt"

	"github.com/zjrosen/pydev/internal/paths"
	"github.com/zjrosen/pydev/internal/ui/styles"

	"github.com/spf13/cobra"
)

var activateCmd = &cobra.Command{
	Use:   "activate [dir]",
	Short: "Create the project venv and print how to enter it",
	Long: `Create the project's virtual environment if it does not exist and print
the shell command that activates it. A child process cannot change its
parent shell's environment, so wire it through eval:

    eval "$(pydev activate)"

or define a shell function that does the same.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runActivate,
}

var activatePathOnly bool

func init() {
	activateCmd.Flags().BoolVar(&activatePathOnly, "path", false, "print only the activate script path")
	rootCmd.AddCommand(activateCmd)
}

func runActivate(cmd *cobra.Command, args []string) error {
	dir := argDir(args)
	tc, err := newToolchain(dir)
	if err != nil {
		return err
	}
	defer tc.close()

	venv, created, err := tc.installer.EnsureVenv(cmd.Context(), dir)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Success.Render("created venv")+" "+venv.Dir)
	}

	// Only the source line (or bare path) goes to stdout, so eval and
	// command substitution get nothing else.
	if activatePathOnly {
		fmt.Fprintln(cmd.OutOrStdout(), paths.ActivateScript(venv.Dir))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "source %s\n", paths.ActivateScript(venv.Dir))
	return nil
}
