package algo

import (
	"github.com/kademeqms/altscore/schema"
)

// CompositeOptions tunes ComputeComposites.
type CompositeOptions struct {
	Weights map[schema.AttributeKey]float64 // nil uses the default table
	Policy  schema.WeightPolicy             // empty means current
}

// ComputeComposites picks the scoring engine per alternative and returns the
// composite of every alternative in the snapshot, keyed by alternative id.
// The snapshot is never mutated.
func ComputeComposites(snap *schema.Snapshot, opts CompositeOptions) map[int64]schema.CompositeResult {
	result := make(map[int64]schema.CompositeResult, len(snap.Alternatives))
	if len(snap.Alternatives) == 0 {
		return result
	}

	policy := opts.Policy
	if policy == "" {
		policy = schema.CurrentWeightPolicy
	}

	auto := NewAutoScorer(snap.Alternatives, opts.Weights)
	for _, alt := range snap.Alternatives {
		if len(snap.Criteria) > 0 {
			if manual, ok := ManualScore(alt.ID, snap.Criteria, snap.Scores, policy); ok {
				result[alt.ID] = manual
				continue
			}
		}
		result[alt.ID] = auto.Score(alt)
	}
	return result
}
