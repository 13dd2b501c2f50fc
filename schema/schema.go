// Package schema has models, constants and labels for all parts of altscore.
package schema

import "time"

// Benchmark is a comparison set that owns alternatives and criteria.
type Benchmark struct {
	ID        int64     `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Category  string    `json:"category,omitempty" yaml:"category"`
	Status    string    `json:"status,omitempty" yaml:"status"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
}

// Alternative is one compared option (a supplier, a product, a process option).
// Every attribute is optional: a nil pointer means "not applicable" and is
// excluded from scoring, it is never treated as zero.
type Alternative struct {
	ID                  int64  `json:"id" yaml:"id"`
	BenchmarkID         int64  `json:"benchmark_id" yaml:"-"`
	Name                string `json:"name" yaml:"name"`
	Code                string `json:"code,omitempty" yaml:"code"`
	Description         string `json:"description,omitempty" yaml:"description"`
	Currency            string `json:"currency,omitempty" yaml:"currency"`
	SupportAvailability string `json:"support_availability,omitempty" yaml:"support_availability"`
	RankOrder           int    `json:"rank_order" yaml:"rank_order"`

	UnitPrice                 *float64 `json:"unit_price,omitempty" yaml:"unit_price"`
	TotalCostOfOwnership      *float64 `json:"total_cost_of_ownership,omitempty" yaml:"total_cost_of_ownership"`
	ROIPercentage             *float64 `json:"roi_percentage,omitempty" yaml:"roi_percentage"`
	MaintenanceCost           *float64 `json:"maintenance_cost,omitempty" yaml:"maintenance_cost"`
	QualityScore              *float64 `json:"quality_score,omitempty" yaml:"quality_score"`
	PerformanceScore          *float64 `json:"performance_score,omitempty" yaml:"performance_score"`
	ReliabilityScore          *float64 `json:"reliability_score,omitempty" yaml:"reliability_score"`
	AfterSalesServiceScore    *float64 `json:"after_sales_service_score,omitempty" yaml:"after_sales_service_score"`
	TechnicalSupportScore     *float64 `json:"technical_support_score,omitempty" yaml:"technical_support_score"`
	WarrantyPeriodMonths      *float64 `json:"warranty_period_months,omitempty" yaml:"warranty_period_months"`
	DocumentationQualityScore *float64 `json:"documentation_quality_score,omitempty" yaml:"documentation_quality_score"`
	DeliveryTimeDays          *float64 `json:"delivery_time_days,omitempty" yaml:"delivery_time_days"`
	LeadTimeDays              *float64 `json:"lead_time_days,omitempty" yaml:"lead_time_days"`
	ImplementationTimeDays    *float64 `json:"implementation_time_days,omitempty" yaml:"implementation_time_days"`
	TrainingRequiredHours     *float64 `json:"training_required_hours,omitempty" yaml:"training_required_hours"`
	EnergyEfficiencyScore     *float64 `json:"energy_efficiency_score,omitempty" yaml:"energy_efficiency_score"`
	EnvironmentalImpactScore  *float64 `json:"environmental_impact_score,omitempty" yaml:"environmental_impact_score"`
	EaseOfUseScore            *float64 `json:"ease_of_use_score,omitempty" yaml:"ease_of_use_score"`
	ScalabilityScore          *float64 `json:"scalability_score,omitempty" yaml:"scalability_score"`
	CompatibilityScore        *float64 `json:"compatibility_score,omitempty" yaml:"compatibility_score"`
	InnovationScore           *float64 `json:"innovation_score,omitempty" yaml:"innovation_score"`
	MarketReputationScore     *float64 `json:"market_reputation_score,omitempty" yaml:"market_reputation_score"`
	CustomerReferencesCount   *float64 `json:"customer_references_count,omitempty" yaml:"customer_references_count"`
	RiskLevel                 *string  `json:"risk_level,omitempty" yaml:"risk_level"`
}

// Criterion is a user-defined, weighted axis of evaluation.
// Weight is expected to be a percentage, but weights across a benchmark are
// not required to sum to 100.
type Criterion struct {
	ID          int64   `json:"id" yaml:"id"`
	BenchmarkID int64   `json:"benchmark_id" yaml:"-"`
	Name        string  `json:"name" yaml:"name"`
	Weight      float64 `json:"weight" yaml:"weight"`
	Category    string  `json:"category,omitempty" yaml:"category"`
	Unit        string  `json:"unit,omitempty" yaml:"unit"`
	OrderIndex  int     `json:"order_index" yaml:"order_index"`
}

// ScoreKey identifies the single Score allowed per (alternative, criterion) pair.
type ScoreKey struct {
	AlternativeID int64
	CriterionID   int64
}

// Score is one manual evaluation of an alternative against a criterion.
type Score struct {
	ID              int64     `json:"id"`
	AlternativeID   int64     `json:"alternative_id"`
	CriterionID     int64     `json:"criterion_id"`
	RawValue        float64   `json:"raw_value"`
	NormalizedScore float64   `json:"normalized_score"` // RawValue clamped to [0,100]
	WeightedScore   float64   `json:"weighted_score"`   // NormalizedScore * weight / 100 at save time
	UpdatedAt       time.Time `json:"updated_at"`
}

// Key returns the composite key of the score.
func (s Score) Key() ScoreKey {
	return ScoreKey{AlternativeID: s.AlternativeID, CriterionID: s.CriterionID}
}

// ProConKind tells an advantage from a disadvantage.
type ProConKind string

// All pro/con kinds supported.
const (
	ProKind ProConKind = "pro"
	ConKind ProConKind = "con"
)

// ProCon is a free-text advantage or disadvantage noted for an alternative.
type ProCon struct {
	ID            int64      `json:"id"`
	AlternativeID int64      `json:"alternative_id"`
	Kind          ProConKind `json:"kind"`
	Description   string     `json:"description"`
}

// CompositeResult is the derived, never persisted, score of one alternative.
type CompositeResult struct {
	Total            float64            `json:"total"`              // Sum of contributions
	Average          float64            `json:"average"`            // Comparable 0-100 figure
	IsAutoCalculated bool               `json:"is_auto_calculated"` // True when the automatic engine produced it
	MaxWeight        float64            `json:"max_weight"`         // Denominator used for Average
	Breakdown        map[string]float64 `json:"breakdown,omitempty"`
}

// Snapshot is the immutable view the scoring engine works on.
type Snapshot struct {
	Benchmark    Benchmark
	Alternatives []Alternative
	Criteria     []Criterion
	Scores       map[ScoreKey]Score
	ProsCons     map[int64][]ProCon
}

// ScoreFor returns the score for a pair, if one exists.
func (s *Snapshot) ScoreFor(alternativeID, criterionID int64) (Score, bool) {
	score, ok := s.Scores[ScoreKey{AlternativeID: alternativeID, CriterionID: criterionID}]
	return score, ok
}

// CriterionByID looks up a criterion of the snapshot.
func (s *Snapshot) CriterionByID(id int64) (Criterion, bool) {
	for _, c := range s.Criteria {
		if c.ID == id {
			return c, true
		}
	}
	return Criterion{}, false
}
