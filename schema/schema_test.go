package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotScoreFor(t *testing.T) {
	snap := Snapshot{
		Criteria: []Criterion{{ID: 1, Weight: 30}, {ID: 2, Weight: 20}},
		Scores: map[ScoreKey]Score{
			{AlternativeID: 10, CriterionID: 1}: {AlternativeID: 10, CriterionID: 1, NormalizedScore: 80},
		},
	}

	s, ok := snap.ScoreFor(10, 1)
	assert.True(t, ok)
	assert.Equal(t, 80.0, s.NormalizedScore)
	assert.Equal(t, ScoreKey{AlternativeID: 10, CriterionID: 1}, s.Key())

	_, ok = snap.ScoreFor(1, 10)
	assert.False(t, ok, "keys are ordered pairs")

	c, ok := snap.CriterionByID(2)
	assert.True(t, ok)
	assert.Equal(t, 20.0, c.Weight)
	_, ok = snap.CriterionByID(3)
	assert.False(t, ok)
}

func TestAttributeValueCoversFields(t *testing.T) {
	var alt Alternative
	for i, f := range alt.AttributeFields() {
		*f.Value = Float64Ptr(float64(i + 1))
	}
	for i, f := range alt.AttributeFields() {
		v := alt.AttributeValue(f.Key)
		if assert.NotNil(t, v, f.Key) {
			assert.Equal(t, float64(i+1), *v, f.Key)
		}
	}
	assert.Nil(t, alt.AttributeValue(RiskLevel))
	assert.Len(t, alt.AttributeFields(), len(DisplayAttributes)-1)
}

func TestDefaultWeightsMatchTable(t *testing.T) {
	weights := GetDefaultWeights()
	for _, spec := range AutoAttributes {
		if spec.Kind == Categorical {
			_, ok := weights[spec.Key]
			assert.False(t, ok, "risk weight is fixed")
			continue
		}
		w, ok := weights[spec.Key]
		assert.True(t, ok, spec.Key)
		assert.Positive(t, w, spec.Key)
	}
	_, ok := weights[LeadTimeDays]
	assert.False(t, ok, "lead time shares the delivery slot")
	assert.Len(t, weights, len(AutoAttributes)-1)
}
