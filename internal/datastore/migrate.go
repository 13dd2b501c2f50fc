package datastore

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kademeqms/altscore/schema"
)

//go:embed migrations
var migrationsFS embed.FS

// Scope selects which schema a migration applies to.
type Scope string

// All migration scopes supported.
const (
	DataScope Scope = "data"
	RunsScope Scope = "runs"
)

// migrationsTable keeps data and runs versions apart when they share a database.
func (s Scope) migrationsTable() string {
	return "altscore_" + string(s) + "_migrations"
}

// backendDir names the migration subdirectory of a backend.
func backendDir(backend schema.DatabaseBackend) string {
	if backend == schema.PostgreSQLBackend {
		return "postgres"
	}
	return string(backend)
}

// newMigrate builds a migrate instance over an open database.
// The returned instance must not be closed while db is in use elsewhere.
func newMigrate(db *sql.DB, backend schema.DatabaseBackend, scope Scope) (*migrate.Migrate, error) {
	var driver database.Driver
	var err error
	switch backend {
	case schema.SQLiteBackend:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{MigrationsTable: scope.migrationsTable()})
	case schema.MySQLBackend:
		driver, err = mysql.WithInstance(db, &mysql.Config{MigrationsTable: scope.migrationsTable()})
	case schema.PostgreSQLBackend:
		driver, err = postgres.WithInstance(db, &postgres.Config{MigrationsTable: scope.migrationsTable()})
	default:
		return nil, fmt.Errorf("migrations are not supported for backend: %s", backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s migrate driver: %w", backend, err)
	}

	sub, err := fs.Sub(migrationsFS, "migrations/"+string(scope)+"/"+backendDir(backend))
	if err != nil {
		return nil, fmt.Errorf("failed to access migrations directory: %w", err)
	}
	sourceDriver, err := iofs.New(sub, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "altscore", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// migrateUp brings a freshly opened store to the latest schema version.
func migrateUp(db *sql.DB, backend schema.DatabaseBackend, scope Scope) error {
	m, err := newMigrate(db, backend, scope)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate %s schema: %w", scope, err)
	}
	return nil
}

// Migrate runs database migrations for a store scope.
//   - If targetVersion < 0, it migrates to the latest version.
//   - If targetVersion == 0, it rolls back all migrations.
//   - If targetVersion > 0, it migrates to the specified version.
func Migrate(scope Scope, backend schema.DatabaseBackend, connStr string, targetVersion int) error {
	if backend == schema.NoneBackend {
		return fmt.Errorf("migrations are not supported for NoneBackend")
	}

	defaultPath := GetDataDBFilePath()
	if scope == RunsScope {
		defaultPath = GetRunsDBFilePath()
	}
	db, err := openDB(backend, connStr, defaultPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	m, err := newMigrate(db, backend, scope)
	if err != nil {
		return err
	}

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in a dirty state at version %d. Please fix manually or force version", currentVersion)
	}

	switch {
	case targetVersion < 0:
		err = m.Up()
	case targetVersion == 0:
		err = m.Down()
	default:
		err = m.Migrate(uint(targetVersion))
	}
	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Printf("No migration needed. The %s schema is already at version %d\n", scope, currentVersion)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to migrate %s schema: %w", scope, err)
	}

	newVersion, _, _ := m.Version()
	fmt.Printf("Successfully migrated the %s schema from version %d to version %d\n", scope, currentVersion, newVersion)
	return nil
}
