package schema

// Custom string types for type safety.
type (
	// AttributeKey names an intrinsic attribute column of an Alternative.
	AttributeKey string

	// NormalizerKind selects how a raw attribute becomes a 0-100 sub-score.
	NormalizerKind string

	// Polarity tells whether a lower or a higher raw value is preferable.
	Polarity string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for persistence.
	DatabaseBackend string

	// WeightPolicy selects which weight a manual score is counted with.
	WeightPolicy string
)

// Attribute keys, named after their storage columns.
const (
	UnitPrice                 AttributeKey = "unit_price"
	TotalCostOfOwnership      AttributeKey = "total_cost_of_ownership"
	ROIPercentage             AttributeKey = "roi_percentage"
	MaintenanceCost           AttributeKey = "maintenance_cost"
	QualityScore              AttributeKey = "quality_score"
	PerformanceScore          AttributeKey = "performance_score"
	ReliabilityScore          AttributeKey = "reliability_score"
	AfterSalesServiceScore    AttributeKey = "after_sales_service_score"
	TechnicalSupportScore     AttributeKey = "technical_support_score"
	WarrantyPeriodMonths      AttributeKey = "warranty_period_months"
	DocumentationQualityScore AttributeKey = "documentation_quality_score"
	DeliveryTimeDays          AttributeKey = "delivery_time_days"
	LeadTimeDays              AttributeKey = "lead_time_days"
	ImplementationTimeDays    AttributeKey = "implementation_time_days"
	TrainingRequiredHours     AttributeKey = "training_required_hours"
	EnergyEfficiencyScore     AttributeKey = "energy_efficiency_score"
	EnvironmentalImpactScore  AttributeKey = "environmental_impact_score"
	EaseOfUseScore            AttributeKey = "ease_of_use_score"
	ScalabilityScore          AttributeKey = "scalability_score"
	CompatibilityScore        AttributeKey = "compatibility_score"
	InnovationScore           AttributeKey = "innovation_score"
	MarketReputationScore     AttributeKey = "market_reputation_score"
	CustomerReferencesCount   AttributeKey = "customer_references_count"
	RiskLevel                 AttributeKey = "risk_level"
)

// All normalizer kinds supported.
const (
	CostRange   NormalizerKind = "cost_range"   // 100 - (v-lo)/(hi-lo)*100
	CappedRatio NormalizerKind = "capped_ratio" // min(v/ceiling*100, 100)
	PassThrough NormalizerKind = "pass_through" // already 0-100
	Categorical NormalizerKind = "categorical"  // risk level lookup
)

// All polarities supported.
const (
	CostPolarity    Polarity = "cost"    // lower is better
	BenefitPolarity Polarity = "benefit" // higher is better
	NoPolarity      Polarity = "none"    // never marked best
)

// All output modes supported.
const (
	CSVOut  OutputMode = "csv"
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All weight policies supported.
const (
	// CurrentWeightPolicy recomputes each manual contribution from the stored
	// normalized score and the criterion's current weight.
	CurrentWeightPolicy WeightPolicy = "current" // default
	// FrozenWeightPolicy sums the weighted score stored at save time.
	FrozenWeightPolicy WeightPolicy = "frozen"
)

// RiskWeight is the fixed weight of the categorical risk level.
const RiskWeight = 10.0

// AttributeSpec describes how the automatic engine treats one attribute slot.
type AttributeSpec struct {
	Key      AttributeKey
	Kind     NormalizerKind
	Ceiling  float64      // reference ceiling for CappedRatio
	Fallback AttributeKey // used when Key is absent; the two share one weight slot
}

// AutoAttributes is the ordered attribute table of the automatic engine.
var AutoAttributes = []AttributeSpec{
	{Key: UnitPrice, Kind: CostRange},
	{Key: TotalCostOfOwnership, Kind: CostRange},
	{Key: ROIPercentage, Kind: CappedRatio, Ceiling: 100},
	{Key: MaintenanceCost, Kind: CostRange},
	{Key: QualityScore, Kind: PassThrough},
	{Key: PerformanceScore, Kind: PassThrough},
	{Key: ReliabilityScore, Kind: PassThrough},
	{Key: AfterSalesServiceScore, Kind: PassThrough},
	{Key: TechnicalSupportScore, Kind: PassThrough},
	{Key: WarrantyPeriodMonths, Kind: CappedRatio, Ceiling: 60},
	{Key: DocumentationQualityScore, Kind: PassThrough},
	{Key: DeliveryTimeDays, Kind: CostRange, Fallback: LeadTimeDays},
	{Key: ImplementationTimeDays, Kind: CostRange},
	{Key: TrainingRequiredHours, Kind: CostRange},
	{Key: EnergyEfficiencyScore, Kind: PassThrough},
	{Key: EnvironmentalImpactScore, Kind: PassThrough},
	{Key: EaseOfUseScore, Kind: PassThrough},
	{Key: ScalabilityScore, Kind: PassThrough},
	{Key: CompatibilityScore, Kind: PassThrough},
	{Key: InnovationScore, Kind: PassThrough},
	{Key: MarketReputationScore, Kind: PassThrough},
	{Key: CustomerReferencesCount, Kind: CappedRatio, Ceiling: 50},
	{Key: RiskLevel, Kind: Categorical},
}

// DisplayAttributes lists every attribute column in report order.
var DisplayAttributes = []AttributeKey{
	UnitPrice, TotalCostOfOwnership, ROIPercentage, MaintenanceCost,
	QualityScore, PerformanceScore, ReliabilityScore,
	AfterSalesServiceScore, TechnicalSupportScore, WarrantyPeriodMonths, DocumentationQualityScore,
	DeliveryTimeDays, LeadTimeDays, ImplementationTimeDays, TrainingRequiredHours,
	EnergyEfficiencyScore, EnvironmentalImpactScore,
	EaseOfUseScore, ScalabilityScore, CompatibilityScore, InnovationScore,
	MarketReputationScore, CustomerReferencesCount, RiskLevel,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidWeightPolicies lists all valid weight policies.
var ValidWeightPolicies = map[WeightPolicy]struct{}{
	CurrentWeightPolicy: {},
	FrozenWeightPolicy:  {},
}

// GetDefaultWeights returns the fixed weight table of the automatic engine.
// Delivery and lead time share the delivery_time_days slot.
// Risk level is not part of the table; it always weighs RiskWeight.
func GetDefaultWeights() map[AttributeKey]float64 {
	return map[AttributeKey]float64{
		UnitPrice:                 15,
		TotalCostOfOwnership:      20,
		ROIPercentage:             15,
		MaintenanceCost:           10,
		QualityScore:              25,
		PerformanceScore:          20,
		ReliabilityScore:          20,
		AfterSalesServiceScore:    15,
		TechnicalSupportScore:     15,
		WarrantyPeriodMonths:      10,
		DocumentationQualityScore: 10,
		DeliveryTimeDays:          15,
		ImplementationTimeDays:    10,
		TrainingRequiredHours:     10,
		EnergyEfficiencyScore:     10,
		EnvironmentalImpactScore:  10,
		EaseOfUseScore:            15,
		ScalabilityScore:          15,
		CompatibilityScore:        15,
		InnovationScore:           10,
		MarketReputationScore:     15,
		CustomerReferencesCount:   10,
	}
}

// AttributeValue returns the numeric value of an attribute, nil when absent.
// RiskLevel is categorical and always yields nil here.
func (a *Alternative) AttributeValue(key AttributeKey) *float64 {
	switch key {
	case UnitPrice:
		return a.UnitPrice
	case TotalCostOfOwnership:
		return a.TotalCostOfOwnership
	case ROIPercentage:
		return a.ROIPercentage
	case MaintenanceCost:
		return a.MaintenanceCost
	case QualityScore:
		return a.QualityScore
	case PerformanceScore:
		return a.PerformanceScore
	case ReliabilityScore:
		return a.ReliabilityScore
	case AfterSalesServiceScore:
		return a.AfterSalesServiceScore
	case TechnicalSupportScore:
		return a.TechnicalSupportScore
	case WarrantyPeriodMonths:
		return a.WarrantyPeriodMonths
	case DocumentationQualityScore:
		return a.DocumentationQualityScore
	case DeliveryTimeDays:
		return a.DeliveryTimeDays
	case LeadTimeDays:
		return a.LeadTimeDays
	case ImplementationTimeDays:
		return a.ImplementationTimeDays
	case TrainingRequiredHours:
		return a.TrainingRequiredHours
	case EnergyEfficiencyScore:
		return a.EnergyEfficiencyScore
	case EnvironmentalImpactScore:
		return a.EnvironmentalImpactScore
	case EaseOfUseScore:
		return a.EaseOfUseScore
	case ScalabilityScore:
		return a.ScalabilityScore
	case CompatibilityScore:
		return a.CompatibilityScore
	case InnovationScore:
		return a.InnovationScore
	case MarketReputationScore:
		return a.MarketReputationScore
	case CustomerReferencesCount:
		return a.CustomerReferencesCount
	default:
		return nil
	}
}

// AttributeFields returns pointers to every numeric attribute field, keyed by
// attribute, so stores can scan into or bind from them in one place.
func (a *Alternative) AttributeFields() []AttributeField {
	return []AttributeField{
		{UnitPrice, &a.UnitPrice},
		{TotalCostOfOwnership, &a.TotalCostOfOwnership},
		{ROIPercentage, &a.ROIPercentage},
		{MaintenanceCost, &a.MaintenanceCost},
		{QualityScore, &a.QualityScore},
		{PerformanceScore, &a.PerformanceScore},
		{ReliabilityScore, &a.ReliabilityScore},
		{AfterSalesServiceScore, &a.AfterSalesServiceScore},
		{TechnicalSupportScore, &a.TechnicalSupportScore},
		{WarrantyPeriodMonths, &a.WarrantyPeriodMonths},
		{DocumentationQualityScore, &a.DocumentationQualityScore},
		{DeliveryTimeDays, &a.DeliveryTimeDays},
		{LeadTimeDays, &a.LeadTimeDays},
		{ImplementationTimeDays, &a.ImplementationTimeDays},
		{TrainingRequiredHours, &a.TrainingRequiredHours},
		{EnergyEfficiencyScore, &a.EnergyEfficiencyScore},
		{EnvironmentalImpactScore, &a.EnvironmentalImpactScore},
		{EaseOfUseScore, &a.EaseOfUseScore},
		{ScalabilityScore, &a.ScalabilityScore},
		{CompatibilityScore, &a.CompatibilityScore},
		{InnovationScore, &a.InnovationScore},
		{MarketReputationScore, &a.MarketReputationScore},
		{CustomerReferencesCount, &a.CustomerReferencesCount},
	}
}

// AttributeField binds an attribute key to its field on an Alternative.
type AttributeField struct {
	Key   AttributeKey
	Value **float64
}
