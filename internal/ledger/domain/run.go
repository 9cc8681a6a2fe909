// Package domain provides domain types for the install-run ledger.
package domain

import "time"

// Status is the outcome of an install run.
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Run records one install or update invocation.
type Run struct {
	ID         string // uuid
	Root       string // root package name
	Dir        string // project directory
	Status     Status
	Packages   int    // local packages installed
	Detail     string // failure detail, empty on success
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the run took.
func (r *Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
