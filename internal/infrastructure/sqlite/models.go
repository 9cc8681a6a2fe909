package sqlite

import (
	"time"

	domain "github.com/zjrosen/pydev/internal/ledger/domain"
)

// runModel represents a database row of the runs table.
// Time values are stored as Unix timestamps.
type runModel struct {
	ID         string
	Root       string
	Dir        string
	Status     string
	Packages   int
	Detail     string
	StartedAt  int64
	FinishedAt int64
}

// toRunModel converts a domain Run to its database row.
func toRunModel(r *domain.Run) *runModel {
	return &runModel{
		ID:         r.ID,
		Root:       r.Root,
		Dir:        r.Dir,
		Status:     string(r.Status),
		Packages:   r.Packages,
		Detail:     r.Detail,
		StartedAt:  r.StartedAt.Unix(),
		FinishedAt: r.FinishedAt.Unix(),
	}
}

// toDomain converts a database row back to a domain Run.
func (m *runModel) toDomain() *domain.Run {
	return &domain.Run{
		ID:         m.ID,
		Root:       m.Root,
		Dir:        m.Dir,
		Status:     domain.Status(m.Status),
		Packages:   m.Packages,
		Detail:     m.Detail,
		StartedAt:  time.Unix(m.StartedAt, 0),
		FinishedAt: time.Unix(m.FinishedAt, 0),
	}
}
