package schema

// MatrixCell is one (alternative, criterion) cell of the criteria matrix.
type MatrixCell struct {
	CriterionID     int64    `json:"criterion_id"`
	RawValue        *float64 `json:"raw_value,omitempty"`
	NormalizedScore *float64 `json:"normalized_score,omitempty"`
	WeightedScore   *float64 `json:"weighted_score,omitempty"`
}

// MatrixRow is one alternative's row in the criteria matrix.
type MatrixRow struct {
	AlternativeID   int64        `json:"alternative_id"`
	AlternativeName string       `json:"alternative_name"`
	Cells           []MatrixCell `json:"cells"`
	Average         float64      `json:"average"`
	Mode            string       `json:"mode"`
}

// CriteriaMatrix has criteria as columns and alternatives as rows.
type CriteriaMatrix struct {
	Benchmark Benchmark   `json:"benchmark"`
	Criteria  []Criterion `json:"criteria"`
	Rows      []MatrixRow `json:"rows"`
}

// BestValueEntry names the winning alternative of one attribute column.
type BestValueEntry struct {
	Key             AttributeKey `json:"key"`
	Polarity        Polarity     `json:"polarity"`
	AlternativeID   int64        `json:"alternative_id"`
	AlternativeName string       `json:"alternative_name"`
	Value           float64      `json:"value"`
}

// BestValueReport is the report of best values for a benchmark.
// Cells holds every displayed attribute value per alternative, with
// the "is best" annotation consumers highlight.
type BestValueReport struct {
	Benchmark Benchmark          `json:"benchmark"`
	Entries   []BestValueEntry   `json:"entries"`
	Cells     []BestValueCellRow `json:"cells"`
}

// BestValueCellRow is one alternative's attribute row in a best-value report.
type BestValueCellRow struct {
	AlternativeID   int64           `json:"alternative_id"`
	AlternativeName string          `json:"alternative_name"`
	Values          []AttributeCell `json:"values"`
}

// AttributeCell is one raw attribute value with its best-value flag.
type AttributeCell struct {
	Key    AttributeKey `json:"key"`
	Value  *float64     `json:"value,omitempty"`
	Text   string       `json:"text,omitempty"` // categorical values such as risk level
	IsBest bool         `json:"is_best"`
}

// WeightRow is one row of the effective automatic weight table.
type WeightRow struct {
	Key        AttributeKey   `json:"key"`
	Kind       NormalizerKind `json:"kind"`
	Weight     float64        `json:"weight"`
	Overridden bool           `json:"overridden"`
}

// ComparisonReport is the full ranking report of one benchmark.
type ComparisonReport struct {
	Benchmark Benchmark           `json:"benchmark"`
	Ranking   []RankedAlternative `json:"ranking"`
	ProsCons  map[int64][]ProCon  `json:"pros_cons,omitempty"`
}
