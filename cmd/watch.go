package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/zjrosen/pydev/internal/log"
	"github.com/zjrosen/pydev/internal/resolve"
	"github.com/zjrosen/pydev/internal/ui/styles"
	"github.com/zjrosen/pydev/internal/watch"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Reinstall whenever a manifest changes",
	Long: `Install the package and its local dependencies, then keep watching every
manifest in the closure (setup.cfg, pyproject.toml) and reinstall after
each change. Newly added local dependencies are picked up because each
reinstall re-resolves the closure. Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := argDir(args)
	tc, err := newToolchain(dir)
	if err != nil {
		return err
	}
	defer tc.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.ErrOrStderr()
	reinstall := func(ctx context.Context) {
		result, err := tc.installer.Install(ctx, dir, false)
		if err != nil {
			fmt.Fprintln(out, styles.Error.Render("install failed:")+" "+err.Error())
			return
		}
		fmt.Fprintf(out, "%s installed %d package(s)\n",
			styles.Success.Render("✓"), len(result.Installed))
	}

	// Initial install also gives us the manifest set to watch.
	pkg, err := tc.ws.LoadPackage(dir)
	if err != nil {
		return err
	}
	plan, err := resolve.New(tc.ws).Resolve(pkg)
	if err != nil {
		return err
	}
	reinstall(ctx)

	manifests := make([]string, 0, len(plan.Order))
	for _, p := range plan.Order {
		manifests = append(manifests, p.Manifest.Path)
	}
	fmt.Fprintf(out, "watching %d manifest(s), Ctrl-C to stop\n", len(manifests))

	w := &watch.Watcher{
		Paths:    manifests,
		Debounce: tc.cfg.WatchDebounce,
		OnChange: reinstall,
	}
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info(log.CatWatch, "watch stopped", "dir", dir)
	return nil
}
