package algo

import (
	"math"
	"testing"

	"github.com/kademeqms/altscore/schema"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCost(t *testing.T) {
	tests := []struct {
		name     string
		v, lo    float64
		hi       float64
		expected float64
	}{
		{"cheapest", 100, 100, 300, 100},
		{"middle", 200, 100, 300, 50},
		{"most expensive", 300, 100, 300, 0},
		{"all identical", 42, 42, 42, 100},
		{"below range clamps", 50, 100, 300, 100},
		{"above range clamps", 400, 100, 300, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NormalizeCost(tt.v, tt.lo, tt.hi), 1e-9)
		})
	}
}

func TestNormalizeCapped(t *testing.T) {
	assert.InDelta(t, 50.0, NormalizeCapped(30, 60), 1e-9, "warranty months")
	assert.InDelta(t, 100.0, NormalizeCapped(120, 60), 1e-9, "warranty beyond ceiling")
	assert.InDelta(t, 40.0, NormalizeCapped(20, 50), 1e-9, "customer references")
	assert.InDelta(t, 75.0, NormalizeCapped(75, 100), 1e-9, "roi")
	assert.InDelta(t, 100.0, NormalizeCapped(250, 100), 1e-9, "roi capped")
	assert.Zero(t, NormalizeCapped(-10, 100))
	assert.Zero(t, NormalizeCapped(10, 0))
}

func TestNormalizePassThrough(t *testing.T) {
	assert.Equal(t, 73.0, NormalizePassThrough(73))
	assert.Equal(t, 100.0, NormalizePassThrough(140))
	assert.Equal(t, 0.0, NormalizePassThrough(-5))
}

func TestNormalize_OutOfRangeInputsAreClamped(t *testing.T) {
	// Negative ROI counts as zero however large the loss
	assert.Zero(t, NormalizeCapped(-50, 100))
	assert.Equal(t, NormalizeCapped(-5, 100), NormalizeCapped(-50, 100))
	assert.Equal(t, 100.0, NormalizePassThrough(130), "quality above 100")
	assert.Equal(t, 100.0, NormalizeCapped(130, 100), "roi above 100")
}

func TestRiskScore(t *testing.T) {
	tests := []struct {
		label    string
		expected float64
	}{
		{"Low", 100},
		{"low", 100},
		{" LOW ", 100},
		{"Medium", 70},
		{"High", 40},
		{"Critical", 10},
		{"Düşük", 100},
		{"Orta", 70},
		{"Yüksek", 40},
		{"YÜKSEK", 40},
		{"Kritik", 10},
		{"KRİTİK", 10},
		{"Severe", 50},
		{"", 50},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, RiskScore(tt.label))
		})
	}
}

func TestHasRisk(t *testing.T) {
	assert.False(t, HasRisk(nil))
	blank := "  "
	assert.False(t, HasRisk(&blank))
	assert.True(t, HasRisk(schema.StringPtr("Low")))
}

func TestComputeBounds(t *testing.T) {
	alts := []schema.Alternative{
		{ID: 1, UnitPrice: schema.Float64Ptr(200)},
		{ID: 2},
		{ID: 3, UnitPrice: schema.Float64Ptr(50)},
		{ID: 4, UnitPrice: schema.Float64Ptr(125)},
	}
	lo, hi, ok := ComputeBounds(alts, schema.UnitPrice)
	assert.True(t, ok)
	assert.Equal(t, 50.0, lo)
	assert.Equal(t, 200.0, hi)

	_, _, ok = ComputeBounds(alts, schema.MaintenanceCost)
	assert.False(t, ok)

	bounds := ComputeAllBounds(alts)
	assert.Equal(t, Bound{Lo: 50, Hi: 200}, bounds[schema.UnitPrice])
	_, ok = bounds[schema.QualityScore]
	assert.False(t, ok, "pass-through attributes have no bounds")
}

// FuzzNormalizeCost checks that cost sub-scores stay within [0, 100].
func FuzzNormalizeCost(f *testing.F) {
	f.Add(100.0, 100.0, 300.0)
	f.Add(5.0, 5.0, 5.0)
	f.Add(-1e300, 0.0, 1e300)
	f.Fuzz(func(t *testing.T, v, a, b float64) {
		for _, x := range []float64{v, a, b} {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				t.Skip()
			}
		}
		lo, hi := math.Min(a, b), math.Max(a, b)
		got := NormalizeCost(v, lo, hi)
		if math.IsNaN(got) || got < 0 || got > 100 {
			t.Fatalf("NormalizeCost(%v, %v, %v) = %v, want within [0, 100]", v, lo, hi, got)
		}
	})
}
