// Package cmd wires the pydev command-line interface.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/zjrosen/pydev/internal/config"
	"github.com/zjrosen/pydev/internal/infrastructure/sqlite"
	"github.com/zjrosen/pydev/internal/install"
	"github.com/zjrosen/pydev/internal/log"
	infra "github.com/zjrosen/pydev/internal/manifest/infrastructure"
	"github.com/zjrosen/pydev/internal/paths"
	"github.com/zjrosen/pydev/internal/project"
	pyinfra "github.com/zjrosen/pydev/internal/python/infrastructure"
	"github.com/zjrosen/pydev/internal/resolve"
	"github.com/zjrosen/pydev/internal/tracing"
	"github.com/zjrosen/pydev/internal/ui/styles"
	"github.com/zjrosen/pydev/internal/workspace"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	logFile string
	verbose bool

	cfg             config.Config
	tracingShutdown func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "pydev",
	Short: "Editable installs across sibling Python packages",
	Long: `pydev manages development environments for Python packages that live as
sibling directories in one checkout. It creates virtual environments,
installs a package and its local dependencies editable in the right order,
runs tests inside the venv, and strips the metadata that editable installs
leave behind.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if logFile == "" {
			logFile = paths.DefaultLogPath()
		}
		if err := log.Init(logFile, verbose); err != nil {
			return fmt.Errorf("initializing log: %w", err)
		}

		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = c

		if err := styles.SetColorMode(cfg.Color); err != nil {
			return err
		}

		shutdown, err := tracing.Setup(cmd.Context(), cfg.Tracing)
		if err != nil {
			return err
		}
		tracingShutdown = shutdown
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/pydev/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file (default ~/.pydev/pydev.log)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command and exits the process on failure. A wrapped
// tool's exit code (pytest, pip) propagates unchanged so scripts can branch
// on it.
func Execute() {
	err := rootCmd.Execute()

	if tracingShutdown != nil {
		if sdErr := tracingShutdown(context.Background()); sdErr != nil {
			log.ErrorErr(log.CatCLI, "tracing shutdown failed", sdErr)
		}
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("error:")+" "+err.Error())
		var exit *exec.ExitError
		if errors.As(err, &exit) && exit.ExitCode() > 0 {
			os.Exit(exit.ExitCode())
		}
		os.Exit(1)
	}
}

// toolchain bundles everything a command needs for one project directory:
// the effective config (user config plus .pydev.yaml overrides), the
// interpreter runner, and the installer with its optional ledger.
type toolchain struct {
	cfg       config.Config
	ws        *workspace.Workspace
	runner    *pyinfra.ExecRunner
	installer *install.Installer

	db *sqlite.DB
}

func newToolchain(dir string) (*toolchain, error) {
	eff := cfg
	overrides, err := project.Load(dir)
	if err != nil {
		return nil, err
	}
	overrides.Apply(&eff)

	ws := workspace.New(infra.NewLoader())
	runner := &pyinfra.ExecRunner{
		Python:     eff.Python,
		PipArgs:    eff.PipArgs,
		TestRunner: eff.TestRunner,
		TestArgs:   eff.TestArgs,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
	installer := &install.Installer{
		Workspace: ws,
		Resolver:  resolve.New(ws),
		Runner:    runner,
		VenvName:  eff.VenvDir,
		Out:       os.Stderr,
	}

	tc := &toolchain{cfg: eff, ws: ws, runner: runner, installer: installer}
	if eff.History.Enabled {
		db, err := sqlite.NewDB(eff.History.Path)
		if err != nil {
			// A broken ledger must not block installs.
			log.ErrorErr(log.CatDB, "history unavailable", err, "path", eff.History.Path)
		} else {
			tc.db = db
			installer.Ledger = db.RunRepository()
		}
	}
	return tc, nil
}

func (t *toolchain) close() {
	if t.db != nil {
		_ = t.db.Close()
	}
}

// argDir returns the project directory from an optional positional
// argument, defaulting to the current directory.
func argDir(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "."
}
