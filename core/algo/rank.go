package algo

import (
	"sort"

	"github.com/kademeqms/altscore/schema"
)

// RankAlternatives sorts a copy of alts by composite average in descending
// order and returns the top 'limit' alternatives. Ties keep their input order.
// A limit of zero or less returns every alternative.
func RankAlternatives(alts []schema.Alternative, composites map[int64]schema.CompositeResult, limit int) []schema.Alternative {
	ranked := make([]schema.Alternative, len(alts))
	copy(ranked, alts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return composites[ranked[i].ID].Average > composites[ranked[j].ID].Average
	})
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}
