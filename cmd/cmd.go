// Package cmd defines the command-line interface for altscore.
package cmd

import (
	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(altCmd)
	rootCmd.AddCommand(criterionCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(proconCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	benchCmd.AddCommand(benchCreateCmd, benchListCmd, benchDeleteCmd)
	altCmd.AddCommand(altAddCmd, altListCmd, altDeleteCmd, altImportCmd)
	criterionCmd.AddCommand(criterionAddCmd, criterionListCmd, criterionDeleteCmd)
	scoreCmd.AddCommand(scoreSetCmd)
	proconCmd.AddCommand(proconAddCmd, proconListCmd)
	runsCmd.AddCommand(runsStatusCmd, runsExportCmd, runsClearCmd)
	storeCmd.AddCommand(storeStatusCmd, storeClearCmd, storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of alternatives to display (0 = all)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("emoji", "", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("weight-policy", string(schema.CurrentWeightPolicy), "Weight of manual scores: current or frozen")
	rootCmd.PersistentFlags().String("data-backend", string(schema.SQLiteBackend), "Data backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("data-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("runs-backend", "", "Evaluation run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("runs-db-connect", "", "Database connection string for run tracking (must differ from data-db-connect)")
	rootCmd.PersistentFlags().String("events-brokers", "", "Comma-separated Kafka brokers for score change events")
	rootCmd.PersistentFlags().String("events-topic", contract.DefaultEventsTopic, "Kafka topic for score change events")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of rankCmd to Viper
	rankCmd.Flags().Bool("explain", false, "Include the per-criterion or per-attribute breakdown")
	if err := viper.BindPFlags(rankCmd.Flags()); err != nil {
		contract.LogFatal("Error binding rank flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("listen", contract.DefaultListenAddr, "Address for the HTTP API to listen on")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	storeMigrateCmd.Flags().String("scope", "data", "Store to migrate: data or runs")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}

	// Entity flags are read straight from the command, not from config
	benchCreateCmd.Flags().String("category", "", "Benchmark category")
	benchCreateCmd.Flags().String("status", "", "Benchmark status")

	altAddCmd.Flags().String("code", "", "Short code of the alternative")
	altAddCmd.Flags().String("description", "", "Free-text description")
	altAddCmd.Flags().String("currency", "", "Currency of the monetary attributes")
	altAddCmd.Flags().String("support", "", "Support availability, e.g. 24/7")
	altAddCmd.Flags().Int("rank-order", 0, "Manual display order")
	altAddCmd.Flags().StringSlice("attr", nil, "Attribute as key=value, repeatable (e.g. unit_price=120, risk_level=low)")

	altImportCmd.Flags().String("pattern", "**/*.{yaml,yml,json}", "Doublestar pattern of files to import, relative to the directory")
	altImportCmd.Flags().Int64("benchmark", 0, "Import every file into this benchmark instead of creating one per file")

	criterionAddCmd.Flags().String("category", "", "Criterion category")
	criterionAddCmd.Flags().String("unit", "", "Unit of the raw score")
	criterionAddCmd.Flags().Int("order", 0, "Display order")
}
