// Package parquet exports evaluation-run history to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/kademeqms/altscore/schema"
	"github.com/parquet-go/parquet-go"
)

// EvaluationRun is one recorded ranking run.
// This struct maps to the altscore_evaluation_runs table.
type EvaluationRun struct {
	RunID       int64     `parquet:"run_id,snappy"`
	BenchmarkID int64     `parquet:"benchmark_id,snappy"`
	StartTime   time.Time `parquet:"start_time,snappy"`

	// Nullable until the run finished
	EndTime       *time.Time `parquet:"end_time,optional,snappy"`
	RunDurationMs *int32     `parquet:"run_duration_ms,optional,snappy"`

	TotalAlternatives int32 `parquet:"total_alternatives,snappy"`

	// ConfigParams contains the JSON-encoded scoring parameters
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// EvaluationResult is one ranked composite of a run.
// This struct maps to the altscore_evaluation_results table.
type EvaluationResult struct {
	RunID            int64     `parquet:"run_id,snappy"`
	AlternativeID    int64     `parquet:"alternative_id,snappy"`
	AlternativeName  string    `parquet:"alternative_name,snappy"`
	EvaluatedAt      time.Time `parquet:"evaluated_at,snappy"`
	Rank             int32     `parquet:"rank,snappy"`
	Total            float64   `parquet:"total,snappy"`
	Average          float64   `parquet:"average,snappy"`
	MaxWeight        float64   `parquet:"max_weight,snappy"`
	IsAutoCalculated bool      `parquet:"is_auto_calculated,snappy"`
	ScoreLabel       string    `parquet:"score_label,snappy"`
}

// writeParquet writes rows to a new Parquet file, inferring the schema from T.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteEvaluationRunsParquet writes evaluation runs to a Parquet file.
func WriteEvaluationRunsParquet(data []EvaluationRun, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteEvaluationResultsParquet writes evaluation results to a Parquet file.
func WriteEvaluationResultsParquet(data []EvaluationResult, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertRunRecords converts store records for Parquet export.
func ConvertRunRecords(records []schema.EvaluationRunRecord) []EvaluationRun {
	result := make([]EvaluationRun, len(records))
	for i, record := range records {
		result[i] = EvaluationRun{
			RunID:             record.RunID,
			BenchmarkID:       record.BenchmarkID,
			StartTime:         record.StartTime,
			EndTime:           record.EndTime,
			RunDurationMs:     record.RunDurationMs,
			TotalAlternatives: record.TotalAlternatives,
			ConfigParams:      record.ConfigParams,
		}
	}
	return result
}

// ConvertResultRecords converts store records for Parquet export.
func ConvertResultRecords(records []schema.EvaluationResultRecord) []EvaluationResult {
	result := make([]EvaluationResult, len(records))
	for i, record := range records {
		result[i] = EvaluationResult{
			RunID:            record.RunID,
			AlternativeID:    record.AlternativeID,
			AlternativeName:  record.AlternativeName,
			EvaluatedAt:      record.EvaluatedAt,
			Rank:             record.Rank,
			Total:            record.Total,
			Average:          record.Average,
			MaxWeight:        record.MaxWeight,
			IsAutoCalculated: record.IsAutoCalculated,
			ScoreLabel:       record.ScoreLabel,
		}
	}
	return result
}
