package migrations

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", "file::memory:")
	require.NoError(t, err, "ncruces driver should open :memory: database")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// TestRun_FreshDB verifies all migrations apply to an empty database.
func TestRun_FreshDB(t *testing.T) {
	db := openMemoryDB(t)

	require.NoError(t, Run(db))

	var tableName string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='runs'`).Scan(&tableName)
	require.NoError(t, err, "runs table should exist")
	require.Equal(t, "runs", tableName)
}

// TestRun_Idempotent verifies running migrations twice doesn't error.
func TestRun_Idempotent(t *testing.T) {
	db := openMemoryDB(t)

	require.NoError(t, Run(db), "first migration run should succeed")
	require.NoError(t, Run(db), "second migration run should not error")
}

// TestRun_Schema verifies the runs table has the expected columns.
func TestRun_Schema(t *testing.T) {
	db := openMemoryDB(t)
	require.NoError(t, Run(db))

	rows, err := db.Query(`PRAGMA table_info(runs)`)
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	columns := map[string]bool{}
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notnull    int
			dfltValue  sql.NullString
			primaryKey int
		)
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notnull, &dfltValue, &primaryKey))
		columns[name] = true
	}
	require.NoError(t, rows.Err())

	for _, want := range []string{"id", "root", "dir", "status", "packages", "detail", "started_at", "finished_at"} {
		require.True(t, columns[want], "missing column %s", want)
	}
}

func TestWithInstance_NilConfig(t *testing.T) {
	db := openMemoryDB(t)
	_, err := WithInstance(db, nil)
	require.ErrorIs(t, err, ErrNilConfig)
}
