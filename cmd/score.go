package cmd

import (
	"fmt"

	"github.com/kademeqms/altscore/core"
	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/internal/events"
	"github.com/spf13/cobra"
)

// newMutationService wires the score mutation path to the configured event bus.
// The returned func closes the publisher.
func newMutationService() (*core.MutationService, func()) {
	publisher := events.NewPublisher(cfg)
	return core.NewMutationService(dataStore(), publisher), func() {
		if err := publisher.Close(); err != nil {
			contract.LogWarn("Failed to close event publisher", err)
		}
	}
}

// scoreCmd groups manual score management.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Record manual scores against criteria",
	Long: `Record evaluator scores for an alternative against a criterion.

There is at most one score per (alternative, criterion) pair: setting it again
replaces the previous value. Raw input is clamped to 0-100, and input that is
not a number counts as 0.

Examples:
  # Score alternative 4 on criterion 2
  altscore score set 4 2 87.5`,
}

// scoreSetCmd sets one score.
var scoreSetCmd = &cobra.Command{
	Use:     "set <alternative-id> <criterion-id> <raw-score>",
	Short:   "Set the score of an alternative on a criterion",
	Args:    cobra.ExactArgs(3),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		altID, err := contract.ParseID("alternative", args[0])
		if err != nil {
			contract.LogFatal("Invalid argument", err)
		}
		critID, err := contract.ParseID("criterion", args[1])
		if err != nil {
			contract.LogFatal("Invalid argument", err)
		}

		scores, closeEvents := newMutationService()
		defer closeEvents()
		saved, err := scores.SetScore(rootCtx, altID, critID, args[2])
		if err != nil {
			contract.LogFatal("Failed to set score", err)
		}
		fmt.Printf("Score saved: normalized %.*f, weighted %.*f\n",
			cfg.Precision, saved.NormalizedScore, cfg.Precision, saved.WeightedScore)
	},
}
