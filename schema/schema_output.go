package schema

// RankedAlternative adds presentation data to an Alternative and its composite.
type RankedAlternative struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	Alternative
	CompositeResult
}

// GetPlainLabel returns a plain text label for a composite average.
func GetPlainLabel(average float64) string {
	switch {
	case average >= 80:
		return "High"
	case average >= 60:
		return "Medium"
	default:
		return "Low"
	}
}

// ScoringModeName names the engine that produced a composite.
func ScoringModeName(auto bool) string {
	if auto {
		return "auto"
	}
	return "manual"
}

// EnrichRanking adds rank and label to an already ordered list of alternatives.
// Alternatives without a composite receive a zero result.
func EnrichRanking(alts []Alternative, composites map[int64]CompositeResult) []RankedAlternative {
	output := make([]RankedAlternative, len(alts))
	for i, a := range alts {
		c := composites[a.ID]
		output[i] = RankedAlternative{
			Rank:            i + 1,
			Label:           GetPlainLabel(c.Average),
			Alternative:     a,
			CompositeResult: c,
		}
	}
	return output
}
