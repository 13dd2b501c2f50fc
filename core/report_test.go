package core

import (
	"testing"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Precision:    1,
		Output:       schema.JSONOut,
		Width:        200,
		WeightPolicy: schema.CurrentWeightPolicy,
		DataBackend:  schema.SQLiteBackend,
	}
}

// manualSnapshot has two manually scored alternatives and one that falls
// back to the automatic engine.
//
//	Acme:   quality 90 (w60) + cost 50 (w40) -> 74 / 100 -> 74
//	Globex: quality 70 (w60)                 -> 42 / 60  -> 70
func manualSnapshot() *schema.Snapshot {
	alts := []schema.Alternative{
		{ID: 1, BenchmarkID: 9, Name: "Acme", UnitPrice: schema.Float64Ptr(100), QualityScore: schema.Float64Ptr(70)},
		{ID: 2, BenchmarkID: 9, Name: "Globex", UnitPrice: schema.Float64Ptr(80), QualityScore: schema.Float64Ptr(90)},
		{ID: 3, BenchmarkID: 9, Name: "Initech"},
	}
	criteria := []schema.Criterion{
		{ID: 11, BenchmarkID: 9, Name: "Quality", Weight: 60},
		{ID: 12, BenchmarkID: 9, Name: "Cost", Weight: 40},
	}
	snap := &schema.Snapshot{
		Benchmark:    schema.Benchmark{ID: 9, Title: "Vendors"},
		Alternatives: alts,
		Criteria:     criteria,
		Scores: map[schema.ScoreKey]schema.Score{
			{AlternativeID: 1, CriterionID: 11}: {AlternativeID: 1, CriterionID: 11, RawValue: 90, NormalizedScore: 90, WeightedScore: 54},
			{AlternativeID: 1, CriterionID: 12}: {AlternativeID: 1, CriterionID: 12, RawValue: 50, NormalizedScore: 50, WeightedScore: 20},
			{AlternativeID: 2, CriterionID: 11}: {AlternativeID: 2, CriterionID: 11, RawValue: 70, NormalizedScore: 70, WeightedScore: 7},
		},
		ProsCons: map[int64][]schema.ProCon{
			1: {{ID: 1, AlternativeID: 1, Kind: schema.ProKind, Description: "Fast"}},
			3: {{ID: 2, AlternativeID: 3, Kind: schema.ConKind, Description: "Unknown vendor"}},
		},
	}
	return snap
}

func TestBuildRanking(t *testing.T) {
	snap := manualSnapshot()
	ranking := BuildRanking(snap, testConfig())
	require.Len(t, ranking, 3)

	assert.Equal(t, "Acme", ranking[0].Name)
	assert.Equal(t, 1, ranking[0].Rank)
	assert.InDelta(t, 74.0, ranking[0].Average, 1e-9)
	assert.InDelta(t, 100.0, ranking[0].MaxWeight, 1e-9)
	assert.False(t, ranking[0].IsAutoCalculated)
	assert.Equal(t, "Medium", ranking[0].Label)

	assert.Equal(t, "Globex", ranking[1].Name)
	assert.InDelta(t, 70.0, ranking[1].Average, 1e-9)
	assert.InDelta(t, 60.0, ranking[1].MaxWeight, 1e-9)

	assert.Equal(t, "Initech", ranking[2].Name)
	assert.True(t, ranking[2].IsAutoCalculated)
	assert.Equal(t, 3, ranking[2].Rank)
}

func TestBuildRanking_Limit(t *testing.T) {
	cfg := testConfig()
	cfg.ResultLimit = 1
	ranking := BuildRanking(manualSnapshot(), cfg)
	require.Len(t, ranking, 1)
	assert.Equal(t, "Acme", ranking[0].Name)
}

func TestBuildRanking_FrozenPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.WeightPolicy = schema.FrozenWeightPolicy

	// Globex's stored weighted score (7) is stale; frozen sums it as stored
	ranking := BuildRanking(manualSnapshot(), cfg)
	var globex schema.RankedAlternative
	for _, r := range ranking {
		if r.Name == "Globex" {
			globex = r
		}
	}
	assert.InDelta(t, 7.0, globex.Total, 1e-9)
	assert.InDelta(t, 7.0/60*100, globex.Average, 1e-9)
}

func TestBuildRanking_DoesNotMutateSnapshot(t *testing.T) {
	snap := manualSnapshot()
	_ = BuildRanking(snap, testConfig())
	assert.Equal(t, "Acme", snap.Alternatives[0].Name)
	assert.Equal(t, "Globex", snap.Alternatives[1].Name)
	assert.Len(t, snap.Scores, 3)
}

func TestBuildComparisonReport(t *testing.T) {
	cfg := testConfig()
	cfg.ResultLimit = 2
	report := BuildComparisonReport(manualSnapshot(), cfg)

	assert.Equal(t, "Vendors", report.Benchmark.Title)
	require.Len(t, report.Ranking, 2)
	require.Contains(t, report.ProsCons, int64(1))
	assert.Equal(t, "Fast", report.ProsCons[1][0].Description)
	// Initech is not ranked, so its cons are left out
	assert.NotContains(t, report.ProsCons, int64(3))
}

func TestBuildMatrix(t *testing.T) {
	matrix := BuildMatrix(manualSnapshot(), testConfig())
	assert.Len(t, matrix.Criteria, 2)
	require.Len(t, matrix.Rows, 3)

	acme := matrix.Rows[0]
	assert.Equal(t, "Acme", acme.AlternativeName)
	assert.Equal(t, "manual", acme.Mode)
	assert.InDelta(t, 74.0, acme.Average, 1e-9)
	require.Len(t, acme.Cells, 2)
	require.NotNil(t, acme.Cells[1].NormalizedScore)
	assert.Equal(t, 50.0, *acme.Cells[1].NormalizedScore)

	globex := matrix.Rows[1]
	assert.Nil(t, globex.Cells[1].RawValue)
	assert.Nil(t, globex.Cells[1].WeightedScore)

	assert.Equal(t, "auto", matrix.Rows[2].Mode)
}

func TestBuildBestValueReport(t *testing.T) {
	snap := manualSnapshot()
	snap.Alternatives[0].RiskLevel = schema.StringPtr("medium")
	report := BuildBestValueReport(snap)

	entries := make(map[schema.AttributeKey]schema.BestValueEntry)
	for _, e := range report.Entries {
		entries[e.Key] = e
	}
	require.Contains(t, entries, schema.UnitPrice)
	assert.Equal(t, "Globex", entries[schema.UnitPrice].AlternativeName)
	assert.Equal(t, 80.0, entries[schema.UnitPrice].Value)
	assert.Equal(t, schema.CostPolarity, entries[schema.UnitPrice].Polarity)

	require.Contains(t, entries, schema.QualityScore)
	assert.Equal(t, int64(2), entries[schema.QualityScore].AlternativeID)
	assert.NotContains(t, entries, schema.RiskLevel)
	assert.NotContains(t, entries, schema.ROIPercentage)

	require.Len(t, report.Cells, 3)
	for _, cell := range report.Cells[1].Values {
		if cell.Key == schema.UnitPrice {
			assert.True(t, cell.IsBest)
		}
	}
	for _, cell := range report.Cells[0].Values {
		if cell.Key == schema.RiskLevel {
			assert.Equal(t, "medium", cell.Text)
			assert.False(t, cell.IsBest)
		}
		if cell.Key == schema.UnitPrice {
			assert.False(t, cell.IsBest)
		}
	}
}

func TestBuildWeightTable(t *testing.T) {
	cfg := testConfig()
	rows := BuildWeightTable(cfg)
	require.Len(t, rows, len(schema.AutoAttributes))

	defaults := schema.GetDefaultWeights()
	for _, row := range rows {
		assert.False(t, row.Overridden)
		if row.Kind == schema.Categorical {
			assert.Equal(t, schema.RiskWeight, row.Weight)
			continue
		}
		assert.Equal(t, defaults[row.Key], row.Weight, row.Key)
	}

	cfg.CustomWeights = map[schema.AttributeKey]float64{schema.UnitPrice: 40}
	cfg.ComputedWeights = schema.GetDefaultWeights()
	cfg.ComputedWeights[schema.UnitPrice] = 40
	for _, row := range BuildWeightTable(cfg) {
		if row.Key == schema.UnitPrice {
			assert.True(t, row.Overridden)
			assert.Equal(t, 40.0, row.Weight)
		}
	}
}
