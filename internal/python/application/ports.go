// Package application defines ports (interfaces) for python tooling
// operations. The abstraction allows installer and command tests to run
// against fakes instead of a real interpreter.
package application

import (
	"context"

	domain "github.com/zjrosen/pydev/internal/python/domain"
)

// Runner executes python tooling operations.
type Runner interface {
	// CreateVenv creates a virtual environment at venvDir.
	CreateVenv(ctx context.Context, venvDir string) error

	// InstallEditable installs the package rooted at pkgDir into the venv
	// in editable mode. With upgrade set, already-satisfied requirements
	// are upgraded.
	InstallEditable(ctx context.Context, venv domain.Venv, pkgDir string, upgrade bool) error

	// RunTests runs the configured test runner inside the venv with dir as
	// the working directory. Returns the wrapped tool's error unchanged so
	// callers can propagate its exit code.
	RunTests(ctx context.Context, venv domain.Venv, dir string, extraArgs []string) error
}
