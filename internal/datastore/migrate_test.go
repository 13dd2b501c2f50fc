package datastore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kademeqms/altscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_NoneBackend(t *testing.T) {
	err := Migrate(DataScope, schema.NoneBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")
}

func TestMigrate_SQLiteData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data.db")

	require.NoError(t, Migrate(DataScope, schema.SQLiteBackend, dbPath, -1))
	_, err := os.Stat(dbPath)
	assert.NoError(t, err)

	// Already latest
	assert.NoError(t, Migrate(DataScope, schema.SQLiteBackend, dbPath, -1))

	// Down to the benchmarks table only, then all the way down and up again
	assert.NoError(t, Migrate(DataScope, schema.SQLiteBackend, dbPath, 1))
	assert.NoError(t, Migrate(DataScope, schema.SQLiteBackend, dbPath, 0))
	assert.NoError(t, Migrate(DataScope, schema.SQLiteBackend, dbPath, -1))

	store, err := NewDataStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Len(t, status.TableSizes, len(dataTables))
}

func TestMigrate_SharedDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "shared.db")

	require.NoError(t, Migrate(DataScope, schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, Migrate(RunsScope, schema.SQLiteBackend, dbPath, -1))

	// Rolling back runs leaves the data schema in place
	require.NoError(t, Migrate(RunsScope, schema.SQLiteBackend, dbPath, 0))
	store, err := NewDataStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	_, err = store.GetStatus()
	assert.NoError(t, err)
}

func TestMigrationsTable(t *testing.T) {
	assert.Equal(t, "altscore_data_migrations", DataScope.migrationsTable())
	assert.Equal(t, "altscore_runs_migrations", RunsScope.migrationsTable())
}

func TestBackendDir(t *testing.T) {
	assert.Equal(t, "sqlite", backendDir(schema.SQLiteBackend))
	assert.Equal(t, "mysql", backendDir(schema.MySQLBackend))
	assert.Equal(t, "postgres", backendDir(schema.PostgreSQLBackend))
}
