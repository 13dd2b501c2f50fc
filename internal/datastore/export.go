package datastore

import (
	"errors"
	"fmt"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/internal/parquet"
)

// ExportRuns exports the evaluation-run history to two Parquet files
// named after outputFile.
func ExportRuns(store contract.RunStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("run tracking is disabled; set --runs-backend")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no evaluation runs found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total evaluation runs: %d\n", status.TotalRuns)
	fmt.Printf("Total result records: %d\n", status.TotalResults)

	runs, err := store.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve evaluation runs: %w", err)
	}
	results, err := store.ListResults()
	if err != nil {
		return fmt.Errorf("failed to retrieve evaluation results: %w", err)
	}

	runsFile := outputFile + ".evaluation_runs.parquet"
	if err := parquet.WriteEvaluationRunsParquet(parquet.ConvertRunRecords(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write evaluation runs: %w", err)
	}
	fmt.Printf("Exported %d evaluation runs to: %s\n", len(runs), runsFile)

	resultsFile := outputFile + ".evaluation_results.parquet"
	if err := parquet.WriteEvaluationResultsParquet(parquet.ConvertResultRecords(results), resultsFile); err != nil {
		return fmt.Errorf("failed to write evaluation results: %w", err)
	}
	fmt.Printf("Exported %d result records to: %s\n", len(results), resultsFile)
	return nil
}
