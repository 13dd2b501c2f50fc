package cmd

import (
	"errors"
	"fmt"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/internal/datastore"
	"github.com/kademeqms/altscore/internal/outwriter"
	"github.com/kademeqms/altscore/schema"
	"github.com/spf13/cobra"
)

// runsSetup validates config and opens only the run store.
// The data store is left closed so run history can be inspected on its own.
func runsSetup() error {
	if err := configSetup(); err != nil {
		return err
	}
	runs, err := datastore.NewRunStore(cfg.RunsBackend, cfg.RunsDBConnect)
	if err != nil {
		return fmt.Errorf("failed to initialize run tracking: %w", err)
	}
	storeManager = datastore.NewStoreManager(nil, runs)
	return nil
}

// runsSetupWrapper wraps runsSetup to provide PreRunE for runs commands.
func runsSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsSetup()
}

// closeRunStore releases the run store opened by runsSetup.
func closeRunStore(_ *cobra.Command, _ []string) {
	if storeManager == nil || storeManager.GetRunStore() == nil {
		return
	}
	if err := storeManager.GetRunStore().Close(); err != nil {
		contract.LogWarn("Failed to close run store", err)
	}
}

// storeFilePath resolves the SQLite file a backend writes to.
func storeFilePath(backend schema.DatabaseBackend, connStr, fallback string) string {
	if backend == schema.SQLiteBackend && connStr != "" {
		return connStr
	}
	return fallback
}

// runsCmd focused on evaluation run history.
//
// Note: runs subcommands open only the run store instead of the full
// sharedSetup, so the data store is never migrated or locked by them.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage the history of evaluation runs",
	Long: `Manage the evaluation runs recorded by 'altscore rank'.

Each ranking made with --runs-backend set is stored as a run (benchmark,
timing, configuration) plus one result row per ranked alternative. The
history can be exported to Parquet for BI tools.

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, default)

Subcommands:
  status - Show run statistics and connection info
  export - Export runs and results to Parquet files
  clear  - Remove all recorded runs

Examples:
  # Track runs in SQLite and look at the history
  altscore rank 1 --runs-backend sqlite
  altscore runs status --runs-backend sqlite

  # Export to history.evaluation_runs.parquet and history.evaluation_results.parquet
  altscore runs export --runs-backend sqlite --output-file history`,
	PersistentPostRun: closeRunStore,
}

// runsStatusCmd shows run store status.
var runsStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display run tracking statistics and connection details",
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := storeManager.GetRunStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get run status", err)
		}
		if err := outwriter.NewOutWriter().WriteRunsStatus(status, cfg); err != nil {
			contract.LogFatal("Failed to write run status", err)
		}
	},
}

// runsExportCmd exports run history to Parquet files.
var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for BI tools and analytics",
	Long: `Export all evaluation runs and results to two Parquet files.

The file names are derived from --output-file: "history" produces
history.evaluation_runs.parquet and history.evaluation_results.parquet.`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.RunsBackend == schema.NoneBackend {
			contract.LogFatal("Failed to export runs", errors.New("run tracking is disabled; set --runs-backend"))
		}
		if err := datastore.ExportRuns(storeManager.GetRunStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export runs", err)
		}
	},
}

// runsClearCmd clears run history.
var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded evaluation runs",
	Long: `Delete the evaluation run history from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the run tables and their migration history`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return configSetup()
	},
	Run: func(_ *cobra.Command, _ []string) {
		path := storeFilePath(cfg.RunsBackend, cfg.RunsDBConnect, contract.GetRunsDBFilePath())
		if err := datastore.ClearRuns(cfg.RunsBackend, path, cfg.RunsDBConnect); err != nil {
			contract.LogFatal("Failed to clear runs", err)
		}
		fmt.Println("Evaluation runs cleared successfully.")
	},
}
