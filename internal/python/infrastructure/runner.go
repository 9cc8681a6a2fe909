// Package infrastructure runs python tooling through os/exec.
package infrastructure

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/zjrosen/pydev/internal/log"
	application "github.com/zjrosen/pydev/internal/python/application"
	domain "github.com/zjrosen/pydev/internal/python/domain"
)

// ExecRunner implements application.Runner by spawning the interpreter.
type ExecRunner struct {
	// Python is the interpreter used for venv creation; venv operations
	// use the venv's own interpreter.
	Python string

	// PipArgs are appended to every pip invocation.
	PipArgs []string

	// TestRunner is the module run for tests (e.g. "pytest").
	TestRunner string

	// TestArgs are default test runner arguments, before per-call extras.
	TestArgs []string

	// Stdout and Stderr receive the wrapped tools' output.
	Stdout io.Writer
	Stderr io.Writer
}

// Ensure ExecRunner implements application.Runner at compile time.
var _ application.Runner = (*ExecRunner)(nil)

// CreateVenv creates a virtual environment at venvDir using the configured
// interpreter. Returns an error wrapping domain.ErrVenvCreate on failure;
// cleanup of a partial venv is the caller's responsibility.
func (r *ExecRunner) CreateVenv(ctx context.Context, venvDir string) error {
	python, err := NewExecutableFinder(r.Python).Find()
	if err != nil {
		return err
	}
	log.Info(log.CatPython, "creating venv", "python", python, "dir", venvDir)

	if err := r.run(ctx, python, filepath.Dir(venvDir), buildVenvArgs(venvDir)); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrVenvCreate, err)
	}
	return nil
}

// InstallEditable installs pkgDir into the venv in editable mode.
func (r *ExecRunner) InstallEditable(ctx context.Context, venv domain.Venv, pkgDir string, upgrade bool) error {
	if !venv.Exists() {
		return domain.ErrNoVenv
	}
	log.Info(log.CatPython, "installing editable", "pkg", pkgDir, "upgrade", upgrade)

	args := buildEditableArgs(pkgDir, upgrade, r.PipArgs)
	if err := r.run(ctx, venv.Python(), pkgDir, args); err != nil {
		return fmt.Errorf("installing %s: %w", filepath.Base(pkgDir), err)
	}
	return nil
}

// RunTests runs the configured test runner inside the venv. The wrapped
// tool's error is returned unchanged so its exit code can propagate.
func (r *ExecRunner) RunTests(ctx context.Context, venv domain.Venv, dir string, extraArgs []string) error {
	if !venv.Exists() {
		return domain.ErrNoVenv
	}
	log.Info(log.CatPython, "running tests", "runner", r.TestRunner, "dir", dir)

	return r.run(ctx, venv.Python(), dir, buildTestArgs(r.TestRunner, r.TestArgs, extraArgs))
}

func (r *ExecRunner) run(ctx context.Context, python, dir string, args []string) error {
	cmd := exec.CommandContext(ctx, python, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	log.Debug(log.CatPython, "exec", "python", python, "args", fmt.Sprint(args), "dir", dir)
	return cmd.Run()
}
