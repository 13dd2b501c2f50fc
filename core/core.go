// Package core has core logic for scoring, ranking and score mutation.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/internal/outwriter"
	"github.com/kademeqms/altscore/schema"
)

// ExecutorFunc defines the function signature for executing per-benchmark reports.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, benchmarkID int64) error

// LoadSnapshot reads a benchmark snapshot and prints the header unless suppressed.
func LoadSnapshot(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, benchmarkID int64) (*schema.Snapshot, error) {
	store := mgr.GetDataStore()
	if store == nil {
		return nil, fmt.Errorf("data store is not initialized")
	}
	snap, err := store.LoadSnapshot(ctx, benchmarkID)
	if err != nil {
		return nil, err
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogBenchmarkHeader(cfg, snap)
	}
	return snap, nil
}

// ExecuteRank computes composites for a benchmark, ranks them, records the
// run when run tracking is enabled and prints the report.
// It serves as the main entry point for the 'rank' command.
func ExecuteRank(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, benchmarkID int64) error {
	start := time.Now()
	report, err := RankBenchmark(ctx, cfg, mgr, benchmarkID)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteRanking(report, cfg, time.Since(start))
}

// RankBenchmark builds the comparison report of a benchmark and records the
// run when run tracking is enabled. Nothing is printed besides the header.
func RankBenchmark(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, benchmarkID int64) (schema.ComparisonReport, error) {
	start := time.Now()
	snap, err := LoadSnapshot(ctx, cfg, mgr, benchmarkID)
	if err != nil {
		return schema.ComparisonReport{}, err
	}
	report := BuildComparisonReport(snap, cfg)
	recordRun(ctx, cfg, mgr.GetRunStore(), benchmarkID, start, report.Ranking)
	return report, nil
}

// ExecuteMatrix prints the criteria matrix of a benchmark.
func ExecuteMatrix(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, benchmarkID int64) error {
	snap, err := LoadSnapshot(ctx, cfg, mgr, benchmarkID)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteMatrix(BuildMatrix(snap, cfg), cfg)
}

// ExecuteBest prints the best value per attribute of a benchmark.
func ExecuteBest(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, benchmarkID int64) error {
	snap, err := LoadSnapshot(ctx, cfg, mgr, benchmarkID)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteBestValues(BuildBestValueReport(snap), cfg)
}

// ExecuteWeights prints the effective automatic weight table.
func ExecuteWeights(_ context.Context, cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteWeights(BuildWeightTable(cfg), cfg)
}

// recordRun stores the ranking as an evaluation run. Tracking failures are
// reported as warnings and never fail the command.
func recordRun(ctx context.Context, cfg *contract.Config, runs contract.RunStore, benchmarkID int64, start time.Time, ranking []schema.RankedAlternative) {
	if runs == nil {
		return
	}
	configParams := map[string]any{
		"weight_policy":  string(cfg.WeightPolicy),
		"result_limit":   cfg.ResultLimit,
		"custom_weights": len(cfg.CustomWeights),
	}
	runID, err := runs.BeginRun(benchmarkID, start, configParams)
	if err != nil {
		contract.LogWarn("Evaluation run tracking initialization failed", err)
		return
	}
	if runID == 0 {
		return // tracking disabled
	}
	ctx = withRunID(ctx, runID)

	evaluatedAt := time.Now()
	for _, r := range ranking {
		if err := recordResult(ctx, runs, evaluatedAt, r); err != nil {
			contract.LogWarn("Failed to record evaluation result", err)
		}
	}
	if err := runs.EndRun(runID, time.Now(), len(ranking)); err != nil {
		contract.LogWarn("Failed to finalize evaluation run", err)
	}
}

// recordResult stores a single ranked composite under the run in ctx.
func recordResult(ctx context.Context, runs contract.RunStore, evaluatedAt time.Time, r schema.RankedAlternative) error {
	runID, ok := getRunID(ctx)
	if !ok {
		return nil
	}
	return runs.RecordResult(runID, schema.EvaluationResultRecord{
		RunID:            runID,
		AlternativeID:    r.ID,
		AlternativeName:  r.Name,
		EvaluatedAt:      evaluatedAt,
		Rank:             int32(r.Rank),
		Total:            r.Total,
		Average:          r.Average,
		MaxWeight:        r.MaxWeight,
		IsAutoCalculated: r.IsAutoCalculated,
		ScoreLabel:       r.Label,
	})
}
