// Package migrations applies the embedded SQL schema with golang-migrate.
// It is the alternative to introspection-based table creation, selected with
// database.schema_mode = "migrate".
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var MigrationFiles embed.FS

// Status is the migration state after Run.
type Status struct {
	FromVersion uint
	ToVersion   uint
	Dirty       bool
	Applied     bool
}

// Run applies pending migrations. With autoMigrate false it only reports the
// current version. A dirty single-step baseline is forced back to its version
// before applying, since every statement in it is idempotent.
func Run(db *sql.DB, autoMigrate bool) (Status, error) {
	sourceDriver, err := iofs.New(MigrationFiles, ".")
	if err != nil {
		return Status{}, fmt.Errorf("failed to create migration source: %w", err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return Status{}, fmt.Errorf("failed to create database driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return Status{}, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return Status{}, fmt.Errorf("failed to get current migration version: %w", err)
	}
	status := Status{FromVersion: version, ToVersion: version, Dirty: dirty}

	if dirty {
		slog.Warn("Database is in dirty state - migration was interrupted",
			"version", version,
			"action", "forcing version and re-applying")
		if err := m.Force(int(version)); err != nil {
			return status, fmt.Errorf("failed to recover dirty migration state at version %d: %w", version, err)
		}
	}

	if !autoMigrate {
		slog.Info("Auto-migration disabled, skipping migrations",
			"current_version", version,
			"dirty", dirty)
		return status, nil
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("Database schema is up to date", "version", version)
			return status, nil
		}
		return status, fmt.Errorf("failed to run migrations: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return status, fmt.Errorf("failed to get updated migration version: %w", err)
	}
	status.ToVersion = newVersion
	status.Applied = true

	slog.Info("Database migrations completed",
		"from_version", version,
		"to_version", newVersion)
	return status, nil
}
