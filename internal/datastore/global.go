package datastore

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
)

// Table names.
const (
	benchmarksTable   = "altscore_benchmarks"
	alternativesTable = "altscore_alternatives"
	criteriaTable     = "altscore_criteria"
	scoresTable       = "altscore_scores"
	prosConsTable     = "altscore_pros_cons"
	runsTable         = "altscore_evaluation_runs"
	resultsTable      = "altscore_evaluation_results"
)

// dataTables lists data tables children first, the order they can be dropped in.
var dataTables = []string{prosConsTable, scoresTable, criteriaTable, alternativesTable, benchmarksTable}

// runTables lists run tables children first.
var runTables = []string{resultsTable, runsTable}

// Global Manager instance for main logic.
var (
	Manager   = &StoreManagerImpl{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetDataDBFilePath returns the path to the SQLite DB file for benchmark data.
func GetDataDBFilePath() string {
	return contract.GetDataDBFilePath()
}

// GetRunsDBFilePath returns the path to the SQLite DB file for evaluation runs.
func GetRunsDBFilePath() string {
	return contract.GetRunsDBFilePath()
}

// InitStores initializes the global manager with the data and run stores.
// runsBackend can be empty to skip run tracking entirely.
func InitStores(dataBackend schema.DatabaseBackend, dataConnStr string, runsBackend schema.DatabaseBackend, runsConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		dataStore, err := NewDataStore(dataBackend, dataConnStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize data store: %w", err)
			return
		}

		var runStore contract.RunStore
		if runsBackend != "" {
			runStore, err = NewRunStore(runsBackend, runsConnStr)
			if err != nil {
				_ = dataStore.Close()
				initErr = fmt.Errorf("failed to initialize run store: %w", err)
				return
			}
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.data = dataStore
		Manager.runs = runStore
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() {
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.data != nil {
			_ = Manager.data.Close()
		}
		if Manager.runs != nil {
			_ = Manager.runs.Close()
		}
	})
}

// ClearData removes all benchmark data for the backend.
// For SQLite, it deletes the database file.
// For MySQL/PostgreSQL, it drops the data tables and their migration history.
func ClearData(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	return clearStore(backend, dbFilePath, connStr, append(dataTables, DataScope.migrationsTable()))
}

// ClearRuns removes the evaluation run history for the backend.
func ClearRuns(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	return clearStore(backend, dbFilePath, connStr, append(runTables, RunsScope.migrationsTable()))
}

func clearStore(backend schema.DatabaseBackend, dbFilePath, connStr string, tables []string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		driverName, _ := driverFor(backend)
		for _, table := range tables {
			if err := clearSQLTable(driverName, connStr, quoteTableName(table, backend)); err != nil {
				return err
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, quotedTable string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quotedTable)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", quotedTable, err)
	}
	return nil
}
