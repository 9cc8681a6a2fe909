// Package sqlite provides SQLite database infrastructure for pydev.
// It handles connection lifecycle, migrations, and the run repository.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/pydev/internal/infrastructure/migrations"
	application "github.com/zjrosen/pydev/internal/ledger/application"
	"github.com/zjrosen/pydev/internal/log"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB manages the SQLite connection backing the install-run ledger.
type DB struct {
	conn *sql.DB
	path string
}

// NewDB opens the ledger database, configures pragmas, and runs migrations.
// Creates the parent directory if it doesn't exist.
func NewDB(path string) (*DB, error) {
	log.Debug(log.CatDB, "opening ledger", "path", path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		log.ErrorErr(log.CatDB, "failed to create ledger directory", err, "path", dir)
		return nil, fmt.Errorf("creating ledger directory %s: %w", dir, err)
	}

	conn, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		log.ErrorErr(log.CatDB, "failed to open ledger", err, "path", path)
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		log.ErrorErr(log.CatDB, "failed to ping ledger", err, "path", path)
		return nil, fmt.Errorf("pinging ledger: %w", err)
	}

	// WAL mode so a watch-mode install doesn't block a history read.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if err := migrations.Run(conn); err != nil {
		_ = conn.Close()
		log.ErrorErr(log.CatDB, "failed to run migrations", err)
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	log.Info(log.CatDB, "ledger initialized", "path", path)
	return &DB{conn: conn, path: path}, nil
}

// Close releases database resources.
func (db *DB) Close() error {
	if db.conn != nil {
		log.Debug(log.CatDB, "closing ledger", "path", db.path)
		return db.conn.Close()
	}
	return nil
}

// RunRepository returns a RunRepository backed by this connection.
func (db *DB) RunRepository() application.RunRepository {
	return newRunRepository(db.conn)
}

// Connection returns the underlying *sql.DB for testing purposes.
func (db *DB) Connection() *sql.DB {
	return db.conn
}
