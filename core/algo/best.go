package algo

import (
	"strings"

	"github.com/kademeqms/altscore/schema"
)

var (
	costMarkers    = []string{"price", "cost", "days", "hours"}
	benefitMarkers = []string{"score", "percentage", "count", "months"}
)

// ClassifyKey tells whether a lower or higher value of key is better.
// Cost markers are checked first; risk level never has a polarity.
func ClassifyKey(key schema.AttributeKey) schema.Polarity {
	k := string(key)
	if key == schema.RiskLevel {
		return schema.NoPolarity
	}
	for _, m := range costMarkers {
		if strings.Contains(k, m) {
			return schema.CostPolarity
		}
	}
	for _, m := range benefitMarkers {
		if strings.Contains(k, m) {
			return schema.BenefitPolarity
		}
	}
	return schema.NoPolarity
}

// BestValue returns the alternative with the best value for key: the
// smallest for cost keys, the largest for benefit keys. Absent values are
// skipped and the first alternative wins a tie.
func BestValue(alts []schema.Alternative, key schema.AttributeKey) (int64, bool) {
	polarity := ClassifyKey(key)
	if polarity == schema.NoPolarity {
		return 0, false
	}

	var (
		bestID  int64
		bestVal float64
		found   bool
	)
	for i := range alts {
		v := alts[i].AttributeValue(key)
		if v == nil {
			continue
		}
		better := !found ||
			(polarity == schema.CostPolarity && *v < bestVal) ||
			(polarity == schema.BenefitPolarity && *v > bestVal)
		if better {
			bestID, bestVal, found = alts[i].ID, *v, true
		}
	}
	return bestID, found
}

// BestValues computes BestValue for every key; keys without a winner are omitted.
func BestValues(alts []schema.Alternative, keys []schema.AttributeKey) map[schema.AttributeKey]int64 {
	best := make(map[schema.AttributeKey]int64, len(keys))
	for _, key := range keys {
		if id, ok := BestValue(alts, key); ok {
			best[key] = id
		}
	}
	return best
}

// IsBest reports whether altID holds the best value for key.
func IsBest(best map[schema.AttributeKey]int64, altID int64, key schema.AttributeKey) bool {
	id, ok := best[key]
	return ok && id == altID
}
