package cmd

import (
	"fmt"
	"strings"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/internal/outwriter"
	"github.com/kademeqms/altscore/schema"
	"github.com/spf13/cobra"
)

// benchCmd groups benchmark management.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Manage benchmarks (comparison sets)",
	Long: `Create, list and delete benchmarks.

A benchmark owns the alternatives being compared, the weighted criteria they
are scored against, and every score and pro/con attached to them.

Subcommands:
  create - Create a new benchmark
  list   - List all benchmarks
  delete - Delete a benchmark and everything it owns

Examples:
  # Create a benchmark
  altscore bench create "Laptop suppliers 2026" --category hardware

  # List benchmarks as JSON
  altscore bench list --output json`,
}

// benchCreateCmd creates a benchmark.
var benchCreateCmd = &cobra.Command{
	Use:     "create <title>",
	Short:   "Create a new benchmark",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		category, _ := cmd.Flags().GetString("category")
		status, _ := cmd.Flags().GetString("status")
		b, err := dataStore().CreateBenchmark(rootCtx, schema.Benchmark{
			Title:    strings.TrimSpace(args[0]),
			Category: category,
			Status:   status,
		})
		if err != nil {
			contract.LogFatal("Failed to create benchmark", err)
		}
		fmt.Printf("Created benchmark %d: %s\n", b.ID, b.Title)
	},
}

// benchListCmd lists benchmarks.
var benchListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all benchmarks",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		benchmarks, err := dataStore().ListBenchmarks(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to list benchmarks", err)
		}
		if err := outwriter.NewOutWriter().WriteBenchmarks(benchmarks, cfg); err != nil {
			contract.LogFatal("Failed to write benchmarks", err)
		}
	},
}

// benchDeleteCmd deletes a benchmark.
var benchDeleteCmd = &cobra.Command{
	Use:   "delete <benchmark-id>",
	Short: "Delete a benchmark with its alternatives, criteria and scores",
	Long: `Delete a benchmark.

Deletion cascades: every alternative, criterion, score and pro/con of the
benchmark is removed too. Evaluation runs already recorded are kept.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		id, err := contract.ParseID("benchmark", args[0])
		if err != nil {
			contract.LogFatal("Invalid argument", err)
		}
		if err := dataStore().DeleteBenchmark(rootCtx, id); err != nil {
			contract.LogFatal("Failed to delete benchmark", err)
		}
		fmt.Printf("Deleted benchmark %d.\n", id)
	},
}
