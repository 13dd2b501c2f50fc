package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/internal/outwriter"
	"github.com/kademeqms/altscore/schema"
	"github.com/spf13/cobra"
)

// criterionCmd groups criterion management.
var criterionCmd = &cobra.Command{
	Use:   "criterion",
	Short: "Manage the weighted criteria of a benchmark",
	Long: `Add, list and delete the criteria alternatives are scored against.

Weights are percentages but are not required to sum to 100: a manual
composite is always averaged over the weights that actually have a score.

Examples:
  # Add a criterion worth 40%
  altscore criterion add 1 "Delivery reliability" 40 --unit points`,
}

// criterionAddCmd adds a criterion.
var criterionAddCmd = &cobra.Command{
	Use:     "add <benchmark-id> <name> <weight>",
	Short:   "Add a weighted criterion to a benchmark",
	Args:    cobra.ExactArgs(3),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		benchmarkID, err := contract.ParseID("benchmark", args[0])
		if err != nil {
			contract.LogFatal("Invalid argument", err)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(args[2]), 64)
		if err != nil {
			contract.LogFatal("Invalid argument", fmt.Errorf("weight %q is not a number", args[2]))
		}

		c := schema.Criterion{BenchmarkID: benchmarkID, Name: strings.TrimSpace(args[1]), Weight: weight}
		c.Category, _ = cmd.Flags().GetString("category")
		c.Unit, _ = cmd.Flags().GetString("unit")
		c.OrderIndex, _ = cmd.Flags().GetInt("order")

		created, err := dataStore().AddCriterion(rootCtx, c)
		if err != nil {
			contract.LogFatal("Failed to add criterion", err)
		}
		fmt.Printf("Added criterion %d: %s (weight %g)\n", created.ID, created.Name, created.Weight)
	},
}

// criterionListCmd lists the criteria of a benchmark.
var criterionListCmd = &cobra.Command{
	Use:     "list <benchmark-id>",
	Short:   "List the criteria of a benchmark",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		benchmarkID, err := contract.ParseID("benchmark", args[0])
		if err != nil {
			contract.LogFatal("Invalid argument", err)
		}
		criteria, err := dataStore().ListCriteria(rootCtx, benchmarkID)
		if err != nil {
			contract.LogFatal("Failed to list criteria", err)
		}
		if err := outwriter.NewOutWriter().WriteCriteria(criteria, cfg); err != nil {
			contract.LogFatal("Failed to write criteria", err)
		}
	},
}

// criterionDeleteCmd deletes a criterion.
var criterionDeleteCmd = &cobra.Command{
	Use:     "delete <criterion-id>",
	Short:   "Delete a criterion with its scores",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		id, err := contract.ParseID("criterion", args[0])
		if err != nil {
			contract.LogFatal("Invalid argument", err)
		}
		if err := dataStore().DeleteCriterion(rootCtx, id); err != nil {
			contract.LogFatal("Failed to delete criterion", err)
		}
		fmt.Printf("Deleted criterion %d.\n", id)
	},
}
