package cmd

import (
	"fmt"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/internal/datastore"
	"github.com/kademeqms/altscore/internal/outwriter"
	"github.com/kademeqms/altscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeMigrateSetup only validates config. It does NOT open the stores,
// which would apply every migration before the requested one runs.
func storeMigrateSetup(_ *cobra.Command, _ []string) error {
	return configSetup()
}

// storeCmd focused on benchmark data management.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the benchmark data store",
	Long: `Inspect, clear and migrate the database holding benchmarks and scores.

Supported backends: SQLite (default), MySQL, PostgreSQL

Subcommands:
  status  - Show entity counts and connection info
  clear   - Remove all benchmark data
  migrate - Run schema migrations for the data or runs store

Examples:
  # Check the default SQLite store
  altscore store status

  # Use PostgreSQL (set connection string via env variable)
  ALTSCORE_DATA_BACKEND=postgresql ALTSCORE_DATA_DB_CONNECT="host=... dbname=altscore" altscore store status`,
}

// storeStatusCmd shows data store status.
var storeStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display data store statistics and connection details",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := dataStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		if err := outwriter.NewOutWriter().WriteDataStatus(status, cfg); err != nil {
			contract.LogFatal("Failed to write store status", err)
		}
	},
}

// storeClearCmd clears the data store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all benchmarks, alternatives, criteria and scores",
	Long: `Delete all benchmark data from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the data tables and their migration history

Evaluation runs are kept; use 'altscore runs clear' for those.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return configSetup()
	},
	Run: func(_ *cobra.Command, _ []string) {
		path := storeFilePath(cfg.DataBackend, cfg.DataDBConnect, contract.GetDataDBFilePath())
		if err := datastore.ClearData(cfg.DataBackend, path, cfg.DataDBConnect); err != nil {
			contract.LogFatal("Failed to clear data", err)
		}
		fmt.Println("Benchmark data cleared successfully.")
	},
}

// storeMigrateCmd runs database migrations.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the data or runs store.

Stores are migrated to the latest version automatically when opened. Use
this command to roll back or to pin a specific version.

Examples:
  # Migrate the data store to the latest version
  altscore store migrate

  # Roll the run store back to version 1
  altscore store migrate --scope runs --runs-backend sqlite --target-version 1`,
	PreRunE: storeMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		scope := datastore.Scope(viper.GetString("scope"))

		var backend schema.DatabaseBackend
		var connStr string
		switch scope {
		case datastore.DataScope:
			backend, connStr = cfg.DataBackend, cfg.DataDBConnect
		case datastore.RunsScope:
			backend, connStr = cfg.RunsBackend, cfg.RunsDBConnect
		default:
			contract.LogFatal("Invalid argument", fmt.Errorf("scope %q must be data or runs", scope))
		}

		if err := datastore.Migrate(scope, backend, connStr, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
		fmt.Printf("Migrated %s store on %s.\n", scope, backend)
	},
}
