package algo

import (
	"math"
	"strings"

	"github.com/kademeqms/altscore/schema"
	"golang.org/x/text/cases"
)

// Risk level sub-scores.
const (
	riskLowScore      = 100.0
	riskMediumScore   = 70.0
	riskHighScore     = 40.0
	riskCriticalScore = 10.0
	riskUnknownScore  = 50.0
)

// riskScores maps case-folded risk labels to sub-scores.
// The Turkish labels are accepted as aliases.
var riskScores = map[string]float64{
	"low":      riskLowScore,
	"düşük":    riskLowScore,
	"medium":   riskMediumScore,
	"orta":     riskMediumScore,
	"high":     riskHighScore,
	"yüksek":   riskHighScore,
	"critical": riskCriticalScore,
	"kritik":   riskCriticalScore,
}

// Bound holds the min and max of the present values of one attribute.
type Bound struct {
	Lo float64
	Hi float64
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ComputeBounds returns the min and max of key across the alternatives that
// have a value for it. ok is false when none do.
func ComputeBounds(alts []schema.Alternative, key schema.AttributeKey) (lo, hi float64, ok bool) {
	for i := range alts {
		v := alts[i].AttributeValue(key)
		if v == nil {
			continue
		}
		if !ok {
			lo, hi, ok = *v, *v, true
			continue
		}
		lo = math.Min(lo, *v)
		hi = math.Max(hi, *v)
	}
	return lo, hi, ok
}

// ComputeAllBounds returns bounds for every cost-range attribute, including
// fallbacks, so a whole set can be scored without rescanning it.
func ComputeAllBounds(alts []schema.Alternative) map[schema.AttributeKey]Bound {
	bounds := make(map[schema.AttributeKey]Bound)
	add := func(key schema.AttributeKey) {
		if lo, hi, ok := ComputeBounds(alts, key); ok {
			bounds[key] = Bound{Lo: lo, Hi: hi}
		}
	}
	for _, spec := range schema.AutoAttributes {
		if spec.Kind != schema.CostRange {
			continue
		}
		add(spec.Key)
		if spec.Fallback != "" {
			add(spec.Fallback)
		}
	}
	return bounds
}

// NormalizeCost scores a lower-is-better value within [lo, hi].
// When every present value is identical the value gets full credit.
func NormalizeCost(v, lo, hi float64) float64 {
	if hi == lo {
		return 100
	}
	offset, span := v-lo, hi-lo
	if math.IsInf(offset, 0) || math.IsInf(span, 0) {
		offset, span = v/2-lo/2, hi/2-lo/2
	}
	return clamp(100-(offset/span)*100, 0, 100)
}

// NormalizeCapped scores a higher-is-better value against a reference ceiling.
func NormalizeCapped(v, ceiling float64) float64 {
	if ceiling <= 0 {
		return 0
	}
	return clamp(v/ceiling*100, 0, 100)
}

// NormalizePassThrough keeps an already 0-100 value, bounded to that range.
func NormalizePassThrough(v float64) float64 {
	return clamp(v, 0, 100)
}

// RiskScore maps a risk label to its sub-score. Unknown labels score 50.
func RiskScore(label string) float64 {
	if s, ok := riskScores[foldRisk(label)]; ok {
		return s
	}
	return riskUnknownScore
}

// foldRisk case-folds a label. The combining dot left behind by folding a
// Turkish dotted capital I is dropped so "KRİTİK" matches "kritik".
func foldRisk(label string) string {
	folded := cases.Fold().String(strings.TrimSpace(label))
	return strings.ReplaceAll(folded, "\u0307", "")
}

// HasRisk reports whether a risk level is present.
func HasRisk(level *string) bool {
	return level != nil && strings.TrimSpace(*level) != ""
}

// Normalize computes the 0-100 sub-score of value for the given attribute spec.
// bound is only consulted for cost-range attributes.
func Normalize(spec schema.AttributeSpec, value float64, bound Bound) float64 {
	switch spec.Kind {
	case schema.CostRange:
		return NormalizeCost(value, bound.Lo, bound.Hi)
	case schema.CappedRatio:
		return NormalizeCapped(value, spec.Ceiling)
	case schema.PassThrough:
		return NormalizePassThrough(value)
	default:
		return 0
	}
}
