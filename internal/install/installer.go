// Package install sequences the editable-install workflow: ensure a venv,
// resolve the local dependency closure, install bottom-up, record the run.
package install

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	ledgerapp "github.com/zjrosen/pydev/internal/ledger/application"
	ledgerdomain "github.com/zjrosen/pydev/internal/ledger/domain"
	"github.com/zjrosen/pydev/internal/log"
	"github.com/zjrosen/pydev/internal/paths"
	pyapp "github.com/zjrosen/pydev/internal/python/application"
	pydomain "github.com/zjrosen/pydev/internal/python/domain"
	"github.com/zjrosen/pydev/internal/resolve"
	"github.com/zjrosen/pydev/internal/workspace"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies install spans; the tracer is a noop unless tracing
// is enabled at startup.
const tracerName = "github.com/zjrosen/pydev/internal/install"

// Installer orchestrates venv creation and editable installs.
type Installer struct {
	Workspace *workspace.Workspace
	Resolver  *resolve.Resolver
	Runner    pyapp.Runner

	// VenvName is the venv directory name inside a project (e.g. "venv").
	VenvName string

	// Ledger records install runs; nil disables recording.
	Ledger ledgerapp.RunRepository

	// Out receives human-readable progress lines.
	Out io.Writer
}

// Result describes a completed install.
type Result struct {
	Plan        *resolve.Plan
	Venv        pydomain.Venv
	CreatedVenv bool
	Installed   []string // package names in install order
}

// EnsureVenv makes sure the project has a virtual environment, creating
// one when missing. A creation failure removes the partial venv directory
// before returning.
func (i *Installer) EnsureVenv(ctx context.Context, projectDir string) (pydomain.Venv, bool, error) {
	venv := pydomain.Venv{Dir: paths.ResolveVenvDir(projectDir, i.VenvName)}
	if venv.Exists() {
		return venv, false, nil
	}
	if err := i.Runner.CreateVenv(ctx, venv.Dir); err != nil {
		if rmErr := os.RemoveAll(venv.Dir); rmErr != nil {
			log.ErrorErr(log.CatPython, "failed to remove partial venv", rmErr, "dir", venv.Dir)
		}
		return pydomain.Venv{}, false, err
	}
	return venv, true, nil
}

// Install resolves projectDir's local dependency closure and installs every
// package editable, bottom-up, the root last. If this call created the venv
// and any install fails, the venv is removed again.
func (i *Installer) Install(ctx context.Context, projectDir string, upgrade bool) (*Result, error) {
	pkg, err := i.Workspace.LoadPackage(projectDir)
	if err != nil {
		return nil, err
	}

	plan, err := i.Resolver.Resolve(pkg)
	if err != nil {
		return nil, err
	}

	venv, created, err := i.EnsureVenv(ctx, pkg.Dir)
	if err != nil {
		return nil, err
	}

	run := &ledgerdomain.Run{
		ID:        uuid.NewString(),
		Root:      pkg.Name,
		Dir:       pkg.Dir,
		StartedAt: time.Now(),
	}

	result := &Result{Plan: plan, Venv: venv, CreatedVenv: created}
	tracer := otel.Tracer(tracerName)

	ctx, rootSpan := tracer.Start(ctx, "install",
		trace.WithAttributes(
			attribute.String("package", pkg.Name),
			attribute.Int("plan.packages", len(plan.Order)),
			attribute.Bool("upgrade", upgrade),
		))
	defer rootSpan.End()

	for idx, p := range plan.Order {
		i.progress("installing %s (%d/%d)", p.Name, idx+1, len(plan.Order))

		_, span := tracer.Start(ctx, "install.package",
			trace.WithAttributes(attribute.String("package", p.Name)))
		err := i.Runner.InstallEditable(ctx, venv, p.Dir, upgrade)
		span.End()

		if err != nil {
			if created {
				log.Warn(log.CatPython, "install failed, removing venv created by this run", "dir", venv.Dir)
				if rmErr := os.RemoveAll(venv.Dir); rmErr != nil {
					log.ErrorErr(log.CatPython, "failed to remove venv", rmErr, "dir", venv.Dir)
				}
			}
			i.record(run, ledgerdomain.StatusFailed, len(result.Installed), err.Error())
			return nil, err
		}
		result.Installed = append(result.Installed, p.Name)
	}

	i.record(run, ledgerdomain.StatusOK, len(result.Installed), "")
	return result, nil
}

// Update re-installs the tree with --upgrade and then strips generated
// metadata directories top-down: the root first, then each local
// dependency in reverse install order.
func (i *Installer) Update(ctx context.Context, projectDir string, patterns []string) (*Result, []string, error) {
	result, err := i.Install(ctx, projectDir, true)
	if err != nil {
		return nil, nil, err
	}

	var removed []string
	order := result.Plan.Order
	for idx := len(order) - 1; idx >= 0; idx-- {
		dirs, err := workspace.StripMetadata(order[idx].Dir, i.VenvName, patterns)
		if err != nil {
			return result, removed, fmt.Errorf("stripping metadata in %s: %w", order[idx].Name, err)
		}
		removed = append(removed, dirs...)
	}
	return result, removed, nil
}

// Clean removes the project's venv and strips metadata from the project
// and every local dependency.
func (i *Installer) Clean(projectDir string, patterns []string) ([]string, error) {
	pkg, err := i.Workspace.LoadPackage(projectDir)
	if err != nil {
		return nil, err
	}
	plan, err := i.Resolver.Resolve(pkg)
	if err != nil {
		return nil, err
	}

	venvDir := paths.ResolveVenvDir(pkg.Dir, i.VenvName)
	var removed []string
	if _, err := os.Stat(venvDir); err == nil {
		if err := os.RemoveAll(venvDir); err != nil {
			return nil, fmt.Errorf("removing venv: %w", err)
		}
		removed = append(removed, venvDir)
	}

	for idx := len(plan.Order) - 1; idx >= 0; idx-- {
		dirs, err := workspace.StripMetadata(plan.Order[idx].Dir, i.VenvName, patterns)
		if err != nil {
			return removed, fmt.Errorf("stripping metadata in %s: %w", plan.Order[idx].Name, err)
		}
		removed = append(removed, dirs...)
	}
	return removed, nil
}

func (i *Installer) progress(format string, args ...any) {
	if i.Out != nil {
		fmt.Fprintf(i.Out, format+"\n", args...)
	}
}

func (i *Installer) record(run *ledgerdomain.Run, status ledgerdomain.Status, packages int, detail string) {
	if i.Ledger == nil {
		return
	}
	run.Status = status
	run.Packages = packages
	run.Detail = detail
	run.FinishedAt = time.Now()
	if err := i.Ledger.Save(run); err != nil {
		// Ledger trouble must never fail an install.
		log.ErrorErr(log.CatDB, "failed to record run", err, "run", run.ID)
	}
}
