package algo

import (
	"github.com/kademeqms/altscore/schema"
)

// AutoScorer scores alternatives from their intrinsic attributes.
// It holds the bounds of one alternative set and never mutates it.
type AutoScorer struct {
	bounds  map[schema.AttributeKey]Bound
	weights map[schema.AttributeKey]float64
}

// NewAutoScorer prepares an AutoScorer over the full alternative set.
// A nil weights map uses the default weight table.
func NewAutoScorer(all []schema.Alternative, weights map[schema.AttributeKey]float64) *AutoScorer {
	if weights == nil {
		weights = schema.GetDefaultWeights()
	}
	return &AutoScorer{bounds: ComputeAllBounds(all), weights: weights}
}

// AutoScore computes the automatic composite of alt relative to all.
func AutoScore(alt schema.Alternative, all []schema.Alternative, weights map[schema.AttributeKey]float64) schema.CompositeResult {
	return NewAutoScorer(all, weights).Score(alt)
}

// Score computes the automatic composite of one alternative.
// Absent attributes add nothing to either the total or the max weight.
func (s *AutoScorer) Score(alt schema.Alternative) schema.CompositeResult {
	breakdown := make(map[string]float64)
	var total, maxWeight float64

	for _, spec := range schema.AutoAttributes {
		if spec.Kind == schema.Categorical {
			if !HasRisk(alt.RiskLevel) {
				continue
			}
			contribution := RiskScore(*alt.RiskLevel) * schema.RiskWeight / 100
			breakdown[string(spec.Key)] = contribution
			total += contribution
			maxWeight += schema.RiskWeight
			continue
		}

		key := spec.Key
		value := alt.AttributeValue(key)
		if value == nil && spec.Fallback != "" {
			key = spec.Fallback
			value = alt.AttributeValue(key)
		}
		if value == nil {
			continue
		}

		weight := s.weights[spec.Key]
		contribution := Normalize(spec, *value, s.bounds[key]) * weight / 100
		breakdown[string(key)] = contribution
		total += contribution
		maxWeight += weight
	}

	var average float64
	if maxWeight > 0 {
		average = total / maxWeight * 100
	}

	return schema.CompositeResult{
		Total:            total,
		Average:          average,
		IsAutoCalculated: true,
		MaxWeight:        maxWeight,
		Breakdown:        breakdown,
	}
}
