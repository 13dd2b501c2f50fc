package algo

import (
	"math"
	"testing"

	"github.com/kademeqms/altscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priced(id int64, price float64) schema.Alternative {
	return schema.Alternative{ID: id, Name: "alt", UnitPrice: schema.Float64Ptr(price)}
}

// TestAutoScoreUnitPriceScenario covers three alternatives scored on price alone.
func TestAutoScoreUnitPriceScenario(t *testing.T) {
	alts := []schema.Alternative{priced(1, 100), priced(2, 200), priced(3, 300)}

	expected := []struct {
		total   float64
		average float64
	}{
		{15, 100},
		{7.5, 50},
		{0, 0},
	}

	for i, alt := range alts {
		res := AutoScore(alt, alts, nil)
		assert.True(t, res.IsAutoCalculated)
		assert.InDelta(t, 15.0, res.MaxWeight, 1e-9)
		assert.InDelta(t, expected[i].total, res.Total, 1e-9)
		assert.InDelta(t, expected[i].average, res.Average, 1e-9)
		assert.InDelta(t, expected[i].total, res.Breakdown[string(schema.UnitPrice)], 1e-9)
	}
}

func TestAutoScoreIdenticalValuesGetFullCredit(t *testing.T) {
	alts := []schema.Alternative{priced(1, 80), priced(2, 80), {ID: 3}}

	for _, alt := range alts[:2] {
		res := AutoScore(alt, alts, nil)
		assert.InDelta(t, 15.0, res.Total, 1e-9)
		assert.InDelta(t, 100.0, res.Average, 1e-9)
	}

	res := AutoScore(alts[2], alts, nil)
	assert.Zero(t, res.Total)
	assert.Zero(t, res.MaxWeight)
	assert.Zero(t, res.Average, "nothing present means average 0")
}

func TestAutoScoreSkipsAbsentAttributes(t *testing.T) {
	alt := schema.Alternative{
		ID:           1,
		QualityScore: schema.Float64Ptr(90),
		RiskLevel:    schema.StringPtr("Medium"),
	}

	res := AutoScore(alt, []schema.Alternative{alt}, nil)

	// quality 90 * 25/100 + risk 70 * 10/100
	assert.InDelta(t, 22.5+7, res.Total, 1e-9)
	assert.InDelta(t, 35.0, res.MaxWeight, 1e-9)
	assert.InDelta(t, 29.5/35*100, res.Average, 1e-9)
	assert.Len(t, res.Breakdown, 2)
}

func TestAutoScoreDeliveryLeadShareSlot(t *testing.T) {
	alts := []schema.Alternative{
		{ID: 1, DeliveryTimeDays: schema.Float64Ptr(10), LeadTimeDays: schema.Float64Ptr(99)},
		{ID: 2, DeliveryTimeDays: schema.Float64Ptr(30)},
		{ID: 3, LeadTimeDays: schema.Float64Ptr(5)},
	}

	first := AutoScore(alts[0], alts, nil)
	assert.InDelta(t, 15.0, first.MaxWeight, 1e-9, "one slot even with both present")
	assert.InDelta(t, 100.0, first.Average, 1e-9, "delivery preferred; 10 is the fastest delivery")
	_, usedLead := first.Breakdown[string(schema.LeadTimeDays)]
	assert.False(t, usedLead)

	second := AutoScore(alts[1], alts, nil)
	assert.InDelta(t, 0.0, second.Average, 1e-9)

	third := AutoScore(alts[2], alts, nil)
	assert.InDelta(t, 15.0, third.MaxWeight, 1e-9)
	assert.Contains(t, third.Breakdown, string(schema.LeadTimeDays))
}

func TestAutoScoreCappedAndRisk(t *testing.T) {
	alt := schema.Alternative{
		ID:                      1,
		ROIPercentage:           schema.Float64Ptr(150),
		WarrantyPeriodMonths:    schema.Float64Ptr(30),
		CustomerReferencesCount: schema.Float64Ptr(25),
		RiskLevel:               schema.StringPtr("Unheard-of"),
	}
	res := AutoScore(alt, []schema.Alternative{alt}, nil)

	assert.InDelta(t, 15.0, res.Breakdown[string(schema.ROIPercentage)], 1e-9)
	assert.InDelta(t, 5.0, res.Breakdown[string(schema.WarrantyPeriodMonths)], 1e-9)
	assert.InDelta(t, 5.0, res.Breakdown[string(schema.CustomerReferencesCount)], 1e-9)
	assert.InDelta(t, 5.0, res.Breakdown[string(schema.RiskLevel)], 1e-9)
	assert.InDelta(t, 45.0, res.MaxWeight, 1e-9)
}

func TestAutoScoreWeightOverride(t *testing.T) {
	alt := schema.Alternative{ID: 1, QualityScore: schema.Float64Ptr(50), PerformanceScore: schema.Float64Ptr(100)}
	weights := schema.GetDefaultWeights()
	weights[schema.QualityScore] = 0

	res := AutoScore(alt, []schema.Alternative{alt}, weights)
	assert.InDelta(t, 20.0, res.MaxWeight, 1e-9)
	assert.InDelta(t, 100.0, res.Average, 1e-9)
}

func TestAutoScoreIsIdempotent(t *testing.T) {
	alts := []schema.Alternative{priced(1, 10), priced(2, 20)}
	alts[0].QualityScore = schema.Float64Ptr(70)
	before := alts[0]

	first := AutoScore(alts[0], alts, nil)
	second := AutoScore(alts[0], alts, nil)

	require.Equal(t, first, second)
	assert.Equal(t, before, alts[0], "inputs are not mutated")
}

// FuzzAutoScoreAverageBounds checks that automatic averages stay within [0, 100].
func FuzzAutoScoreAverageBounds(f *testing.F) {
	f.Add(100.0, 300.0, 95.0, 250.0, 72.0, "Low")
	f.Add(-5.0, 0.0, -40.0, -1.0, 1000.0, "Kritik")
	f.Add(0.0, 0.0, 0.0, 0.0, 0.0, "")
	f.Fuzz(func(t *testing.T, priceA, priceB, quality, roi, warranty float64, risk string) {
		for _, x := range []float64{priceA, priceB, quality, roi, warranty} {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				t.Skip()
			}
		}
		alts := []schema.Alternative{
			{
				ID:                   1,
				UnitPrice:            schema.Float64Ptr(priceA),
				QualityScore:         schema.Float64Ptr(quality),
				ROIPercentage:        schema.Float64Ptr(roi),
				WarrantyPeriodMonths: schema.Float64Ptr(warranty),
				RiskLevel:            &risk,
			},
			{ID: 2, UnitPrice: schema.Float64Ptr(priceB)},
		}
		for _, alt := range alts {
			res := AutoScore(alt, alts, nil)
			if math.IsNaN(res.Average) || res.Average < 0 || res.Average > 100+1e-9 {
				t.Fatalf("average %v out of range for %+v", res.Average, alt)
			}
		}
	})
}
