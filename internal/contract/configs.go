package contract

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/kademeqms/altscore/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 0 // all alternatives
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultEventsTopic = "altscore.score-changed"
	DefaultListenAddr  = ":8080"
)

// DateTimeFormat is the timestamp layout of human-readable output.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for scoring and reporting.
// This struct is the "final, validated" config.
type Config struct {
	ResultLimit  int
	Explain      bool
	Precision    int
	Output       schema.OutputMode
	OutputFile   string
	Width        int // Terminal width override (0 = auto-detect)
	WeightPolicy schema.WeightPolicy

	DataBackend   schema.DatabaseBackend
	DataDBConnect string // Please use env var as this is plaintext

	RunsBackend   schema.DatabaseBackend
	RunsDBConnect string // Please use env var as this is plaintext

	EventBrokers []string
	EventTopic   string

	ListenAddr string

	// CustomWeights holds the automatic weight overrides from the config file.
	CustomWeights map[schema.AttributeKey]float64

	// ComputedWeights is the final automatic weight table, defaults + custom overrides.
	ComputedWeights map[schema.AttributeKey]float64

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Limit         int    `mapstructure:"limit"`
	Precision     int    `mapstructure:"precision"`
	Output        string `mapstructure:"output"`
	OutputFile    string `mapstructure:"output-file"`
	Width         int    `mapstructure:"width"`
	Emoji         string `mapstructure:"emoji"`
	Color         string `mapstructure:"color"`
	WeightPolicy  string `mapstructure:"weight-policy"`
	DataBackend   string `mapstructure:"data-backend"`
	DataDBConnect string `mapstructure:"data-db-connect"`
	RunsBackend   string `mapstructure:"runs-backend"`
	RunsDBConnect string `mapstructure:"runs-db-connect"`
	EventsBrokers string `mapstructure:"events-brokers"`
	EventsTopic   string `mapstructure:"events-topic"`

	// --- Fields from rankCmd.Flags() ---
	Explain bool `mapstructure:"explain"`

	// --- Fields from serveCmd.Flags() ---
	Listen string `mapstructure:"listen"`

	// --- Custom automatic weights from config file ---
	Weights map[string]float64 `mapstructure:"weights"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.EventBrokers = slices.Clone(c.EventBrokers)
	if c.CustomWeights != nil {
		clone.CustomWeights = maps.Clone(c.CustomWeights)
	}
	if c.ComputedWeights != nil {
		clone.ComputedWeights = maps.Clone(c.ComputedWeights)
	}
	return &clone
}

// EventsEnabled reports whether score events should be published.
func (c *Config) EventsEnabled() bool {
	return len(c.EventBrokers) > 0
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	processEvents(cfg, input)
	return processCustomWeights(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates data and run backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Data Backend Validation ---
	cfg.DataBackend = schema.DatabaseBackend(strings.ToLower(input.DataBackend))
	if cfg.DataBackend == "" {
		cfg.DataBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.DataBackend]; !ok || cfg.DataBackend == schema.NoneBackend {
		return fmt.Errorf("invalid data backend '%s'. must be sqlite, mysql, postgresql", input.DataBackend)
	}
	cfg.DataDBConnect = input.DataDBConnect
	if err := ValidateDatabaseConnectionString(cfg.DataBackend, cfg.DataDBConnect); err != nil {
		return fmt.Errorf("data-db-connect: %w", err)
	}

	// --- Runs Backend Validation ---
	cfg.RunsBackend = schema.DatabaseBackend(strings.ToLower(input.RunsBackend))
	if cfg.RunsBackend == "" {
		cfg.RunsBackend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.RunsBackend]; !ok {
		return fmt.Errorf("invalid runs backend '%s'. must be sqlite, mysql, postgresql, none", input.RunsBackend)
	}
	cfg.RunsDBConnect = input.RunsDBConnect
	if err := ValidateDatabaseConnectionString(cfg.RunsBackend, cfg.RunsDBConnect); err != nil {
		return fmt.Errorf("runs-db-connect: %w", err)
	}

	// Data and runs may share a server, but not a SQLite file
	if cfg.DataBackend == schema.SQLiteBackend && cfg.RunsBackend == schema.SQLiteBackend {
		dataPath := cfg.DataDBConnect
		if dataPath == "" {
			dataPath = GetDataDBFilePath()
		}
		runsPath := cfg.RunsDBConnect
		if runsPath == "" {
			runsPath = GetRunsDBFilePath()
		}
		if dataPath == runsPath {
			return fmt.Errorf("data and runs storage must use different SQLite database files. Both resolve to %q", dataPath)
		}
	}

	return nil
}

// validateSimpleInputs processes and validates all non-backend fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Explain = input.Explain
	cfg.Width = input.Width
	cfg.ListenAddr = strings.TrimSpace(input.Listen)
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}

	emojis, err := ParseBoolString(defaultString(input.Emoji, "no"))
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(defaultString(input.Color, "yes"))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d, where 0 means all (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 0 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(defaultString(input.Output, string(schema.TextOut))))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	// --- 3. Weight Policy Validation ---
	cfg.WeightPolicy = schema.WeightPolicy(strings.ToLower(defaultString(input.WeightPolicy, string(schema.CurrentWeightPolicy))))
	if _, ok := schema.ValidWeightPolicies[cfg.WeightPolicy]; !ok {
		return fmt.Errorf("invalid weight policy '%s'. must be current, frozen", input.WeightPolicy)
	}

	return nil
}

// processEvents splits the broker list and applies the default topic.
func processEvents(cfg *Config, input *ConfigRawInput) {
	cfg.EventBrokers = nil
	for b := range strings.SplitSeq(input.EventsBrokers, ",") {
		if trimmed := strings.TrimSpace(b); trimmed != "" {
			cfg.EventBrokers = append(cfg.EventBrokers, trimmed)
		}
	}
	cfg.EventTopic = defaultString(strings.TrimSpace(input.EventsTopic), DefaultEventsTopic)
}

// ProcessWeightsRawInput converts the raw weights map into automatic weight overrides.
// Keys must name a weighted attribute; risk level is fixed and cannot be overridden.
func ProcessWeightsRawInput(raw map[string]float64) (map[schema.AttributeKey]float64, error) {
	defaults := schema.GetDefaultWeights()
	result := make(map[schema.AttributeKey]float64, len(raw))
	for name, weight := range raw {
		key := schema.AttributeKey(strings.ToLower(strings.TrimSpace(name)))
		if _, ok := defaults[key]; !ok {
			return nil, fmt.Errorf("unknown weight key %q", name)
		}
		if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			return nil, fmt.Errorf("weight for %s must be a non-negative number, got %v", key, weight)
		}
		result[key] = weight
	}
	return result, nil
}

// processCustomWeights converts the raw input into cfg.CustomWeights and
// computes the final automatic weight table.
func processCustomWeights(cfg *Config, input *ConfigRawInput) error {
	weights, err := ProcessWeightsRawInput(input.Weights)
	if err != nil {
		return err
	}
	cfg.CustomWeights = weights

	cfg.ComputedWeights = schema.GetDefaultWeights()
	maps.Copy(cfg.ComputedWeights, cfg.CustomWeights)
	return nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
