package cmd

import (
	"fmt"
	"strings"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/internal/outwriter"
	"github.com/kademeqms/altscore/schema"
	"github.com/spf13/cobra"
)

// proconCmd groups pros/cons management.
var proconCmd = &cobra.Command{
	Use:   "procon",
	Short: "Note advantages and disadvantages of alternatives",
	Long: `Attach free-text advantages (pro) and disadvantages (con) to alternatives.

Pros and cons never affect scores; they are shown next to the ranking.

Examples:
  altscore procon add 4 pro "Local warehouse"
  altscore procon add 4 con "No weekend support"
  altscore procon list 1`,
}

// proconAddCmd adds a pro or con.
var proconAddCmd = &cobra.Command{
	Use:     "add <alternative-id> <pro|con> <description>",
	Short:   "Add an advantage or disadvantage",
	Args:    cobra.ExactArgs(3),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		altID, err := contract.ParseID("alternative", args[0])
		if err != nil {
			contract.LogFatal("Invalid argument", err)
		}
		kind, ok := schema.ParseProConKind(args[1])
		if !ok {
			contract.LogFatal("Invalid argument", fmt.Errorf("kind %q must be pro or con", args[1]))
		}
		pc, err := dataStore().AddProCon(rootCtx, schema.ProCon{
			AlternativeID: altID,
			Kind:          kind,
			Description:   strings.TrimSpace(args[2]),
		})
		if err != nil {
			contract.LogFatal("Failed to add pro/con", err)
		}
		fmt.Printf("Added %s %d to alternative %d.\n", pc.Kind, pc.ID, pc.AlternativeID)
	},
}

// proconListCmd lists the pros and cons of a benchmark.
var proconListCmd = &cobra.Command{
	Use:     "list <benchmark-id>",
	Short:   "List the pros and cons of every alternative in a benchmark",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		benchmarkID, err := contract.ParseID("benchmark", args[0])
		if err != nil {
			contract.LogFatal("Invalid argument", err)
		}
		items, err := dataStore().ListProsCons(rootCtx, benchmarkID)
		if err != nil {
			contract.LogFatal("Failed to list pros/cons", err)
		}
		if err := outwriter.NewOutWriter().WriteProsCons(items, cfg); err != nil {
			contract.LogFatal("Failed to write pros/cons", err)
		}
	},
}
