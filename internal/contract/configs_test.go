package contract

import (
	"path/filepath"
	"testing"

	"github.com/kademeqms/altscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Limit:       10,
		Precision:   1,
		Output:      "text",
		DataBackend: "sqlite",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{name: "valid minimal config", mutate: func(*ConfigRawInput) {}},
		{name: "limit zero means all", mutate: func(in *ConfigRawInput) { in.Limit = 0 }},
		{name: "negative limit", mutate: func(in *ConfigRawInput) { in.Limit = -1 }, expectError: true},
		{name: "limit too large", mutate: func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 }, expectError: true},
		{name: "precision too large", mutate: func(in *ConfigRawInput) { in.Precision = 9 }, expectError: true},
		{name: "invalid output", mutate: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: true},
		{name: "uppercase output", mutate: func(in *ConfigRawInput) { in.Output = "JSON" }},
		{name: "invalid weight policy", mutate: func(in *ConfigRawInput) { in.WeightPolicy = "latest" }, expectError: true},
		{name: "frozen weight policy", mutate: func(in *ConfigRawInput) { in.WeightPolicy = "frozen" }},
		{name: "invalid color", mutate: func(in *ConfigRawInput) { in.Color = "maybe" }, expectError: true},
		{name: "none data backend", mutate: func(in *ConfigRawInput) { in.DataBackend = "none" }, expectError: true},
		{name: "unknown data backend", mutate: func(in *ConfigRawInput) { in.DataBackend = "oracle" }, expectError: true},
		{
			name: "mysql without connection",
			mutate: func(in *ConfigRawInput) {
				in.DataBackend = "mysql"
			},
			expectError: true,
		},
		{
			name: "postgres with connection",
			mutate: func(in *ConfigRawInput) {
				in.DataBackend = "postgresql"
				in.DataDBConnect = "host=localhost port=5432 user=u password=p dbname=altscore"
			},
		},
		{
			name: "same sqlite file for data and runs",
			mutate: func(in *ConfigRawInput) {
				in.RunsBackend = "sqlite"
				in.DataDBConnect = filepath.Join(t.TempDir(), "same.db")
				in.RunsDBConnect = in.DataDBConnect
			},
			expectError: true,
		},
		{
			name:        "unknown weight key",
			mutate:      func(in *ConfigRawInput) { in.Weights = map[string]float64{"price": 10} },
			expectError: true,
		},
		{
			name:        "risk weight is fixed",
			mutate:      func(in *ConfigRawInput) { in.Weights = map[string]float64{"risk_level": 20} },
			expectError: true,
		},
		{
			name:        "negative weight",
			mutate:      func(in *ConfigRawInput) { in.Weights = map[string]float64{"unit_price": -1} },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{}))

	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.DataBackend)
	assert.Equal(t, schema.NoneBackend, cfg.RunsBackend)
	assert.Equal(t, schema.CurrentWeightPolicy, cfg.WeightPolicy)
	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, DefaultEventsTopic, cfg.EventTopic)
	assert.False(t, cfg.EventsEnabled())
	assert.True(t, cfg.UseColors)
	assert.False(t, cfg.UseEmojis)
	assert.Equal(t, schema.GetDefaultWeights(), cfg.ComputedWeights)
}

func TestProcessAndValidateWeightsAndEvents(t *testing.T) {
	input := validInput()
	input.Weights = map[string]float64{"Quality_Score": 40, "unit_price": 0}
	input.EventsBrokers = " kafka-1:9092, ,kafka-2:9092 "
	input.EventsTopic = "scores"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, 40.0, cfg.ComputedWeights[schema.QualityScore])
	assert.Equal(t, 0.0, cfg.ComputedWeights[schema.UnitPrice])
	assert.Equal(t, 20.0, cfg.ComputedWeights[schema.PerformanceScore])
	assert.Len(t, cfg.CustomWeights, 2)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.EventBrokers)
	assert.Equal(t, "scores", cfg.EventTopic)
	assert.True(t, cfg.EventsEnabled())
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		EventBrokers:    []string{"a:9092"},
		CustomWeights:   map[schema.AttributeKey]float64{schema.UnitPrice: 5},
		ComputedWeights: schema.GetDefaultWeights(),
	}
	clone := cfg.Clone()
	clone.EventBrokers[0] = "b:9092"
	clone.CustomWeights[schema.UnitPrice] = 99
	clone.ComputedWeights[schema.QualityScore] = 99

	assert.Equal(t, "a:9092", cfg.EventBrokers[0])
	assert.Equal(t, 5.0, cfg.CustomWeights[schema.UnitPrice])
	assert.Equal(t, 25.0, cfg.ComputedWeights[schema.QualityScore])
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "u:p@tcp(localhost:3306)/altscore"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "localhost:3306"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost"))
}
