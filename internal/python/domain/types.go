// Package domain provides domain types for python tooling operations.
package domain

import (
	"os"

	"github.com/zjrosen/pydev/internal/paths"
)

// Venv is a project's virtual environment directory.
type Venv struct {
	Dir string
}

// Python returns the path of the venv's interpreter.
func (v Venv) Python() string {
	return paths.VenvPython(v.Dir)
}

// ActivateScript returns the path of the venv's shell activation script.
func (v Venv) ActivateScript() string {
	return paths.ActivateScript(v.Dir)
}

// Exists reports whether the venv has a usable interpreter.
func (v Venv) Exists() bool {
	_, err := os.Stat(v.Python())
	return err == nil
}
