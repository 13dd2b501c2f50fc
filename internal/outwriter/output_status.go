package outwriter

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
)

const statusTimeFormat = "2006-01-02 15:04:05"

// PrintDataStatus prints data store status information. JSON is honoured;
// every other mode prints plain lines.
func PrintDataStatus(status schema.DataStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error { return writeJSON(w, status) }, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		fmt.Fprintf(w, "Data Backend: %s\n", status.Backend)
		fmt.Fprintf(w, "Connected: %t\n", status.Connected)
		if !status.Connected {
			return nil
		}
		fmt.Fprintf(w, "Benchmarks: %d\n", status.Benchmarks)
		fmt.Fprintf(w, "Alternatives: %d\n", status.Alternatives)
		fmt.Fprintf(w, "Criteria: %d\n", status.Criteria)
		fmt.Fprintf(w, "Scores: %d\n", status.Scores)
		if status.Scores > 0 {
			fmt.Fprintf(w, "Last Score: %s\n", status.LastScoreAt.Format(statusTimeFormat))
		}
		return writeTableSizes(w, status.TableSizes)
	}, "Wrote status")
}

// PrintRunsStatus prints evaluation run store status information.
func PrintRunsStatus(status schema.RunsStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error { return writeJSON(w, status) }, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		fmt.Fprintf(w, "Runs Backend: %s\n", status.Backend)
		fmt.Fprintf(w, "Connected: %t\n", status.Connected)
		if !status.Connected {
			return nil
		}
		fmt.Fprintf(w, "Total Runs: %d\n", status.TotalRuns)
		if status.TotalRuns > 0 {
			fmt.Fprintf(w, "Last Run ID: %d\n", status.LastRunID)
			fmt.Fprintf(w, "Last Run: %s\n", status.LastRunTime.Format(statusTimeFormat))
			fmt.Fprintf(w, "Oldest Run: %s\n", status.OldestRunTime.Format(statusTimeFormat))
			fmt.Fprintf(w, "Total Results: %d\n", status.TotalResults)
		}
		return writeTableSizes(w, status.TableSizes)
	}, "Wrote status")
}

// writeTableSizes prints row counts in table name order.
func writeTableSizes(w io.Writer, sizes map[string]int64) error {
	if len(sizes) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Table Sizes:"); err != nil {
		return err
	}
	for _, table := range slices.Sorted(maps.Keys(sizes)) {
		if _, err := fmt.Fprintf(w, "  %s: %d rows\n", table, sizes[table]); err != nil {
			return err
		}
	}
	return nil
}
