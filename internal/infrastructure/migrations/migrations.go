// Package migrations provides database migration support for pydev.
//
// It ships a SQLite migration driver compatible with ncruces/go-sqlite3
// (CGO-free). The stock golang-migrate sqlite3 driver imports
// github.com/mattn/go-sqlite3 and would collide with the ncruces driver's
// "sqlite3" registration, so a small driver of our own wraps the already
// open *sql.DB instead.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var migrationsFS embed.FS

// Run applies all pending migrations to db. Already up to date is not an
// error.
func Run(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return fmt.Errorf("loading embedded migrations: %w", err)
	}

	driver, err := WithInstance(db, &Config{})
	if err != nil {
		return fmt.Errorf("creating migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
