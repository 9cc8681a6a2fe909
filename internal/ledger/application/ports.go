// Package application defines ports for the install-run ledger.
package application

import domain "github.com/zjrosen/pydev/internal/ledger/domain"

// RunRepository persists and lists install runs.
type RunRepository interface {
	Save(run *domain.Run) error
	// List returns runs newest first, up to limit (0 means no limit).
	List(limit int) ([]*domain.Run, error)
}
