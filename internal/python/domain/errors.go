package domain

import "errors"

// Python-specific errors for venv and install operations.
var (
	// ErrExecutableNotFound indicates the interpreter could not be located.
	ErrExecutableNotFound = errors.New("executable not found")

	// ErrNoVenv indicates the project has no virtual environment yet.
	ErrNoVenv = errors.New("no virtual environment (run `pydev activate` first)")

	// ErrVenvCreate indicates virtual environment creation failed.
	ErrVenvCreate = errors.New("virtual environment creation failed")
)
