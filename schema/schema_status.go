package schema

import "time"

// DataStatus represents the status of the benchmark data store.
type DataStatus struct {
	Backend      string           `json:"backend"`
	Connected    bool             `json:"connected"`
	Benchmarks   int              `json:"benchmarks"`
	Alternatives int              `json:"alternatives"`
	Criteria     int              `json:"criteria"`
	Scores       int              `json:"scores"`
	LastScoreAt  time.Time        `json:"last_score_at"`
	TableSizes   map[string]int64 `json:"table_sizes"`
}

// RunsStatus represents the status of the evaluation run store.
type RunsStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int              `json:"total_runs"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TotalResults  int              `json:"total_results"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}

// EvaluationRunRecord represents a row from the altscore_evaluation_runs table.
type EvaluationRunRecord struct {
	RunID             int64
	BenchmarkID       int64
	StartTime         time.Time
	EndTime           *time.Time
	RunDurationMs     *int32
	TotalAlternatives int32
	ConfigParams      *string
}

// EvaluationResultRecord represents a row from the altscore_evaluation_results table.
type EvaluationResultRecord struct {
	RunID            int64
	AlternativeID    int64
	AlternativeName  string
	EvaluatedAt      time.Time
	Rank             int32
	Total            float64
	Average          float64
	MaxWeight        float64
	IsAutoCalculated bool
	ScoreLabel       string
}
