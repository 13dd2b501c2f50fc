package cmd

import (
	"testing"

	"github.com/kademeqms/altscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyAttributes(t *testing.T) {
	var alt schema.Alternative
	err := applyAttributes(&alt, []string{"unit_price=120.5", " Quality_Score = 85 ", "risk_level=Low"})
	require.NoError(t, err)

	require.NotNil(t, alt.UnitPrice)
	assert.InDelta(t, 120.5, *alt.UnitPrice, 1e-9)
	require.NotNil(t, alt.QualityScore)
	assert.InDelta(t, 85.0, *alt.QualityScore, 1e-9)
	require.NotNil(t, alt.RiskLevel)
	assert.Equal(t, "Low", *alt.RiskLevel)
	assert.Nil(t, alt.LeadTimeDays)
}

func TestApplyAttributes_BlankRiskIsNotApplicable(t *testing.T) {
	alt := schema.Alternative{RiskLevel: schema.StringPtr("high")}
	require.NoError(t, applyAttributes(&alt, []string{"risk_level="}))
	assert.Nil(t, alt.RiskLevel)
}

func TestApplyAttributes_Errors(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
		want  string
	}{
		{"missing separator", []string{"unit_price"}, "must be key=value"},
		{"unknown key", []string{"colour=red"}, "unknown attribute"},
		{"not a number", []string{"lead_time_days=soon"}, "is not a number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var alt schema.Alternative
			err := applyAttributes(&alt, tt.pairs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStoreFilePath(t *testing.T) {
	assert.Equal(t, "/tmp/data.db", storeFilePath(schema.SQLiteBackend, "/tmp/data.db", "/home/x/.db"))
	assert.Equal(t, "/home/x/.db", storeFilePath(schema.SQLiteBackend, "", "/home/x/.db"))
	assert.Equal(t, "/home/x/.db", storeFilePath(schema.MySQLBackend, "user:pass@tcp(db:3306)/altscore", "/home/x/.db"))
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"bench", "create"}, {"alt", "import"}, {"criterion", "add"}, {"score", "set"},
		{"procon", "list"}, {"rank"}, {"matrix"}, {"best"}, {"weights"},
		{"runs", "export"}, {"store", "migrate"}, {"serve"}, {"mcp"}, {"version"},
	} {
		found, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], found.Name(), path)
	}
}
