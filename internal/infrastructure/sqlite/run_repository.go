package sqlite

import (
	"database/sql"
	"fmt"

	application "github.com/zjrosen/pydev/internal/ledger/application"
	domain "github.com/zjrosen/pydev/internal/ledger/domain"
)

// runRepository implements application.RunRepository using SQLite.
type runRepository struct {
	db *sql.DB
}

// newRunRepository creates a new runRepository instance.
func newRunRepository(db *sql.DB) *runRepository {
	return &runRepository{db: db}
}

// Ensure runRepository implements application.RunRepository.
var _ application.RunRepository = (*runRepository)(nil)

// Save persists a run. Runs are insert-only; saving the same ID twice
// replaces the row, which covers the started/finished double-write.
func (r *runRepository) Save(run *domain.Run) error {
	model := toRunModel(run)
	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO runs (id, root, dir, status, packages, detail, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		model.ID, model.Root, model.Dir, model.Status, model.Packages, model.Detail,
		model.StartedAt, model.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// List returns runs newest first, up to limit (0 means no limit).
func (r *runRepository) List(limit int) ([]*domain.Run, error) {
	query := `SELECT id, root, dir, status, packages, detail, started_at, finished_at
			  FROM runs
			  ORDER BY started_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []*domain.Run
	for rows.Next() {
		var m runModel
		if err := rows.Scan(&m.ID, &m.Root, &m.Dir, &m.Status, &m.Packages, &m.Detail, &m.StartedAt, &m.FinishedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, m.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}
