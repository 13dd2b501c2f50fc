package cmd

import (
	"github.com/kademeqms/altscore/core"
	"github.com/kademeqms/altscore/internal/contract"
	"github.com/spf13/cobra"
)

// benchmarkRunner adapts a core executor to a command taking a benchmark id.
func benchmarkRunner(name string, executor core.ExecutorFunc) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, args []string) {
		benchmarkID, err := contract.ParseID("benchmark", args[0])
		if err != nil {
			contract.LogFatal("Invalid argument", err)
		}
		if err := executor(rootCtx, cfg, storeManager, benchmarkID); err != nil {
			contract.LogFatal("Cannot run "+name, err)
		}
	}
}

// rankCmd ranks the alternatives of a benchmark.
var rankCmd = &cobra.Command{
	Use:   "rank <benchmark-id>",
	Short: "Rank the alternatives of a benchmark by composite score",
	Long: `Compute the composite score of every alternative and print them best first.

An alternative with at least one manual score is ranked by its weighted
criteria. Every other alternative falls back to the automatic engine, which
scores its intrinsic attributes (cost, quality, time, risk, ...) against the
rest of the benchmark. Ties keep the manual display order.

When --runs-backend is set, each ranking is recorded as an evaluation run.

Examples:
  # Top 5 with the contribution breakdown
  altscore rank 1 --limit 5 --explain

  # Count manual scores with the weight they were saved with
  altscore rank 1 --weight-policy frozen --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     benchmarkRunner("rank", core.ExecuteRank),
}

// matrixCmd prints the criteria matrix.
var matrixCmd = &cobra.Command{
	Use:   "matrix <benchmark-id>",
	Short: "Show every manual score as an alternative x criterion matrix",
	Long: `Print a matrix with one row per alternative and one column per criterion.

Missing scores are left blank. The last column holds the composite average.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     benchmarkRunner("matrix", core.ExecuteMatrix),
}

// bestCmd prints the best-value report.
var bestCmd = &cobra.Command{
	Use:   "best <benchmark-id>",
	Short: "Mark the best value of each attribute across alternatives",
	Long: `Show which alternative holds the best value of each intrinsic attribute.

Cost-like attributes (price, lead time, ...) prefer the lowest value,
benefit-like attributes (quality, warranty, ...) the highest. Ties go to the
first alternative in display order.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     benchmarkRunner("best-value report", core.ExecuteBest),
}

// weightsCmd prints the automatic weight table.
var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show the automatic engine's attribute weights",
	Long: `Display the weight of every attribute used by the automatic engine.

Defaults can be overridden under the 'weights' key of the config file:

  weights:
    unit_price: 20
    quality_score: 15`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWeights(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot show weights", err)
		}
	},
}
