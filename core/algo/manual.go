package algo

import (
	"strconv"

	"github.com/kademeqms/altscore/schema"
)

// ManualScore aggregates one alternative's manual scores over all criteria.
// ok is false when no score contributed any weight, which tells the caller
// to fall back to the automatic engine.
func ManualScore(altID int64, criteria []schema.Criterion, scores map[schema.ScoreKey]schema.Score, policy schema.WeightPolicy) (schema.CompositeResult, bool) {
	breakdown := make(map[string]float64)
	var total, totalWeight float64

	for _, c := range criteria {
		score, found := scores[schema.ScoreKey{AlternativeID: altID, CriterionID: c.ID}]
		if !found {
			continue
		}

		var contribution float64
		switch policy {
		case schema.FrozenWeightPolicy:
			if score.WeightedScore == 0 {
				continue
			}
			contribution = score.WeightedScore
		default:
			contribution = score.NormalizedScore * c.Weight / 100
		}

		breakdown[criterionLabel(c)] = contribution
		total += contribution
		totalWeight += c.Weight
	}

	if totalWeight <= 0 {
		return schema.CompositeResult{Total: total, Breakdown: breakdown}, false
	}

	return schema.CompositeResult{
		Total:     total,
		Average:   total / totalWeight * 100,
		MaxWeight: totalWeight,
		Breakdown: breakdown,
	}, true
}

// criterionLabel keys a breakdown entry by criterion name, falling back to its id.
func criterionLabel(c schema.Criterion) string {
	if c.Name != "" {
		return c.Name
	}
	return "criterion_" + strconv.FormatInt(c.ID, 10)
}
