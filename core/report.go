package core

import (
	"github.com/kademeqms/altscore/core/algo"
	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
)

// compositeOptions builds scoring options from the validated config.
func compositeOptions(cfg *contract.Config) algo.CompositeOptions {
	return algo.CompositeOptions{Weights: cfg.ComputedWeights, Policy: cfg.WeightPolicy}
}

// BuildRanking scores every alternative of the snapshot and returns the top
// cfg.ResultLimit of them, ranked and labelled.
func BuildRanking(snap *schema.Snapshot, cfg *contract.Config) []schema.RankedAlternative {
	composites := algo.ComputeComposites(snap, compositeOptions(cfg))
	ranked := algo.RankAlternatives(snap.Alternatives, composites, cfg.ResultLimit)
	return schema.EnrichRanking(ranked, composites)
}

// BuildComparisonReport returns the ranking together with the pros and cons
// of the ranked alternatives.
func BuildComparisonReport(snap *schema.Snapshot, cfg *contract.Config) schema.ComparisonReport {
	ranking := BuildRanking(snap, cfg)
	prosCons := make(map[int64][]schema.ProCon)
	for _, r := range ranking {
		if items := snap.ProsCons[r.ID]; len(items) > 0 {
			prosCons[r.ID] = items
		}
	}
	return schema.ComparisonReport{
		Benchmark: snap.Benchmark,
		Ranking:   ranking,
		ProsCons:  prosCons,
	}
}

// BuildMatrix lays out the stored scores as alternatives by criteria, in
// store order, with each alternative's composite average.
func BuildMatrix(snap *schema.Snapshot, cfg *contract.Config) schema.CriteriaMatrix {
	composites := algo.ComputeComposites(snap, compositeOptions(cfg))
	rows := make([]schema.MatrixRow, 0, len(snap.Alternatives))
	for _, alt := range snap.Alternatives {
		row := schema.MatrixRow{
			AlternativeID:   alt.ID,
			AlternativeName: alt.Name,
			Cells:           make([]schema.MatrixCell, 0, len(snap.Criteria)),
			Average:         composites[alt.ID].Average,
			Mode:            schema.ScoringModeName(composites[alt.ID].IsAutoCalculated),
		}
		for _, c := range snap.Criteria {
			cell := schema.MatrixCell{CriterionID: c.ID}
			if score, ok := snap.ScoreFor(alt.ID, c.ID); ok {
				cell.RawValue = schema.Float64Ptr(score.RawValue)
				cell.NormalizedScore = schema.Float64Ptr(score.NormalizedScore)
				cell.WeightedScore = schema.Float64Ptr(score.WeightedScore)
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}
	return schema.CriteriaMatrix{Benchmark: snap.Benchmark, Criteria: snap.Criteria, Rows: rows}
}

// BuildBestValueReport finds the best alternative of every displayed attribute
// and annotates every attribute cell with it.
func BuildBestValueReport(snap *schema.Snapshot) schema.BestValueReport {
	best := algo.BestValues(snap.Alternatives, schema.DisplayAttributes)
	byID := make(map[int64]*schema.Alternative, len(snap.Alternatives))
	for i := range snap.Alternatives {
		byID[snap.Alternatives[i].ID] = &snap.Alternatives[i]
	}

	report := schema.BestValueReport{Benchmark: snap.Benchmark}
	for _, key := range schema.DisplayAttributes {
		id, ok := best[key]
		if !ok {
			continue
		}
		winner := byID[id]
		report.Entries = append(report.Entries, schema.BestValueEntry{
			Key:             key,
			Polarity:        algo.ClassifyKey(key),
			AlternativeID:   id,
			AlternativeName: winner.Name,
			Value:           *winner.AttributeValue(key),
		})
	}

	for i := range snap.Alternatives {
		alt := &snap.Alternatives[i]
		row := schema.BestValueCellRow{AlternativeID: alt.ID, AlternativeName: alt.Name}
		for _, key := range schema.DisplayAttributes {
			cell := schema.AttributeCell{Key: key, Value: alt.AttributeValue(key), IsBest: algo.IsBest(best, alt.ID, key)}
			if key == schema.RiskLevel && alt.RiskLevel != nil {
				cell.Text = *alt.RiskLevel
			}
			row.Values = append(row.Values, cell)
		}
		report.Cells = append(report.Cells, row)
	}
	return report
}

// BuildWeightTable returns the effective automatic weight table in scoring order.
func BuildWeightTable(cfg *contract.Config) []schema.WeightRow {
	weights := cfg.ComputedWeights
	if weights == nil {
		weights = schema.GetDefaultWeights()
	}
	rows := make([]schema.WeightRow, 0, len(schema.AutoAttributes))
	for _, spec := range schema.AutoAttributes {
		row := schema.WeightRow{Key: spec.Key, Kind: spec.Kind, Weight: weights[spec.Key]}
		if spec.Kind == schema.Categorical {
			row.Weight = schema.RiskWeight
		}
		_, row.Overridden = cfg.CustomWeights[spec.Key]
		rows = append(rows, row)
	}
	return rows
}
