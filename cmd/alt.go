package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/internal/datastore"
	"github.com/kademeqms/altscore/internal/outwriter"
	"github.com/kademeqms/altscore/schema"
	"github.com/spf13/cobra"
)

// altCmd groups alternative management.
var altCmd = &cobra.Command{
	Use:   "alt",
	Short: "Manage the alternatives of a benchmark",
	Long: `Add, list, delete and bulk-import alternatives.

An alternative carries optional intrinsic attributes (price, quality, lead
time, risk level, ...). Attributes left out are "not applicable" and never
count as zero when the automatic engine scores the alternative.

Subcommands:
  add    - Add an alternative to a benchmark
  list   - List the alternatives of a benchmark
  delete - Delete an alternative with its scores and pros/cons
  import - Import benchmarks and alternatives from YAML or JSON files

Examples:
  # Add a supplier with a few attributes
  altscore alt add 1 "Acme Corp" --attr unit_price=120 --attr quality_score=85 --attr risk_level=low

  # Import every YAML file under a directory
  altscore alt import ./suppliers --pattern "**/*.yaml"`,
}

// altAddCmd adds an alternative.
var altAddCmd = &cobra.Command{
	Use:     "add <benchmark-id> <name>",
	Short:   "Add an alternative to a benchmark",
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		benchmarkID, err := contract.ParseID("benchmark", args[0])
		if err != nil {
			contract.LogFatal("Invalid argument", err)
		}
		alt := schema.Alternative{BenchmarkID: benchmarkID, Name: strings.TrimSpace(args[1])}
		alt.Code, _ = cmd.Flags().GetString("code")
		alt.Description, _ = cmd.Flags().GetString("description")
		alt.Currency, _ = cmd.Flags().GetString("currency")
		alt.SupportAvailability, _ = cmd.Flags().GetString("support")
		alt.RankOrder, _ = cmd.Flags().GetInt("rank-order")

		attrs, _ := cmd.Flags().GetStringSlice("attr")
		if err := applyAttributes(&alt, attrs); err != nil {
			contract.LogFatal("Invalid attribute", err)
		}

		created, err := dataStore().AddAlternative(rootCtx, alt)
		if err != nil {
			contract.LogFatal("Failed to add alternative", err)
		}
		fmt.Printf("Added alternative %d: %s\n", created.ID, created.Name)
	},
}

// altListCmd lists the alternatives of a benchmark.
var altListCmd = &cobra.Command{
	Use:     "list <benchmark-id>",
	Short:   "List the alternatives of a benchmark",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		benchmarkID, err := contract.ParseID("benchmark", args[0])
		if err != nil {
			contract.LogFatal("Invalid argument", err)
		}
		alts, err := dataStore().ListAlternatives(rootCtx, benchmarkID)
		if err != nil {
			contract.LogFatal("Failed to list alternatives", err)
		}
		if err := outwriter.NewOutWriter().WriteAlternatives(alts, cfg); err != nil {
			contract.LogFatal("Failed to write alternatives", err)
		}
	},
}

// altDeleteCmd deletes an alternative.
var altDeleteCmd = &cobra.Command{
	Use:     "delete <alternative-id>",
	Short:   "Delete an alternative with its scores and pros/cons",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		id, err := contract.ParseID("alternative", args[0])
		if err != nil {
			contract.LogFatal("Invalid argument", err)
		}
		if err := dataStore().DeleteAlternative(rootCtx, id); err != nil {
			contract.LogFatal("Failed to delete alternative", err)
		}
		fmt.Printf("Deleted alternative %d.\n", id)
	},
}

// altImportCmd bulk-imports alternatives.
var altImportCmd = &cobra.Command{
	Use:   "import <directory>",
	Short: "Import benchmarks and alternatives from YAML or JSON files",
	Long: `Import every file under a directory that matches a doublestar pattern.

Each file is a YAML (or JSON) document with an optional benchmark header,
criteria, alternatives, and per-alternative scores and pros/cons. Scores go
through the same path as 'altscore score set', so they are clamped and
announced on the event bus like interactive edits.

Examples:
  # One benchmark per file
  altscore alt import ./benchmarks

  # Merge JSON files into benchmark 3
  altscore alt import ./extra --pattern "**/*.json" --benchmark 3`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		pattern, _ := cmd.Flags().GetString("pattern")
		benchmarkID, _ := cmd.Flags().GetInt64("benchmark")

		scores, closeEvents := newMutationService()
		defer closeEvents()
		setScore := func(ctx context.Context, alternativeID, criterionID int64, raw string) error {
			_, err := scores.SetScore(ctx, alternativeID, criterionID, raw)
			return err
		}

		summary, err := datastore.ImportFiles(rootCtx, dataStore(), args[0], pattern, benchmarkID, setScore)
		if err != nil {
			contract.LogFatal("Import failed", err)
		}
		fmt.Printf("Imported %d file(s): %d benchmark(s), %d alternative(s), %d criteria, %d score(s), %d pro/con(s).\n",
			summary.Files, summary.Benchmarks, summary.Alternatives, summary.Criteria, summary.Scores, summary.ProsCons)
	},
}

// applyAttributes sets key=value attribute pairs on an alternative.
// Numeric attributes are parsed as floats; risk_level keeps its label.
func applyAttributes(alt *schema.Alternative, pairs []string) error {
	fields := make(map[schema.AttributeKey]**float64)
	for _, f := range alt.AttributeFields() {
		fields[f.Key] = f.Value
	}

	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("attribute %q must be key=value", pair)
		}
		key := schema.AttributeKey(strings.ToLower(strings.TrimSpace(name)))
		value = strings.TrimSpace(value)

		if key == schema.RiskLevel {
			alt.RiskLevel = schema.StringPtr(value)
			continue
		}
		field, ok := fields[key]
		if !ok {
			return fmt.Errorf("unknown attribute %q", name)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("attribute %s: %q is not a number", key, value)
		}
		*field = schema.Float64Ptr(v)
	}
	return nil
}
