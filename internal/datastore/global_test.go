package datastore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kademeqms/altscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearData_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data.db")
	store, err := NewDataStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	require.NoError(t, ClearData(schema.SQLiteBackend, dbPath, ""))
	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))

	// Missing files are fine
	assert.NoError(t, ClearData(schema.SQLiteBackend, dbPath, ""))
}

func TestClearStore_Validation(t *testing.T) {
	assert.Error(t, ClearData(schema.SQLiteBackend, "", ""))
	assert.Error(t, ClearRuns("oracle", "", ""))
	assert.NoError(t, ClearRuns(schema.NoneBackend, "", ""))
}

func TestTableLists(t *testing.T) {
	assert.Equal(t, prosConsTable, dataTables[0])
	assert.Equal(t, benchmarksTable, dataTables[len(dataTables)-1])
	assert.Equal(t, []string{resultsTable, runsTable}, runTables)
}

func TestStoreManager(t *testing.T) {
	data := &MockDataStore{}
	runs := &MockRunStore{}
	mgr := NewStoreManager(data, runs)
	assert.Same(t, data, mgr.GetDataStore())
	assert.Same(t, runs, mgr.GetRunStore())

	empty := NewStoreManager(nil, nil)
	assert.Nil(t, empty.GetDataStore())
	assert.Nil(t, empty.GetRunStore())
}
