// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"errors"
	"time"

	"github.com/kademeqms/altscore/schema"
)

// Sentinel errors returned by data stores and the mutation service.
var (
	ErrBenchmarkNotFound   = errors.New("benchmark not found")
	ErrAlternativeNotFound = errors.New("alternative not found")
	ErrCriterionNotFound   = errors.New("criterion not found")
)

// StoreManager defines the interface for managing persistence stores.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetDataStore() DataStore
	GetRunStore() RunStore
}

// DataStore defines the operations on benchmarks, alternatives, criteria,
// scores and pros/cons.
type DataStore interface {
	// --- Benchmarks ---

	CreateBenchmark(ctx context.Context, b schema.Benchmark) (schema.Benchmark, error)
	GetBenchmark(ctx context.Context, id int64) (schema.Benchmark, error)
	ListBenchmarks(ctx context.Context) ([]schema.Benchmark, error)
	DeleteBenchmark(ctx context.Context, id int64) error

	// --- Alternatives and criteria ---

	AddAlternative(ctx context.Context, alt schema.Alternative) (schema.Alternative, error)
	GetAlternative(ctx context.Context, id int64) (schema.Alternative, error)
	// ListAlternatives returns alternatives ordered by rank_order, then id.
	ListAlternatives(ctx context.Context, benchmarkID int64) ([]schema.Alternative, error)
	DeleteAlternative(ctx context.Context, id int64) error

	AddCriterion(ctx context.Context, c schema.Criterion) (schema.Criterion, error)
	GetCriterion(ctx context.Context, id int64) (schema.Criterion, error)
	// ListCriteria returns criteria ordered by order_index, then id.
	ListCriteria(ctx context.Context, benchmarkID int64) ([]schema.Criterion, error)
	DeleteCriterion(ctx context.Context, id int64) error

	// --- Scores and pros/cons ---

	// UpsertScore updates the score of the (alternative, criterion) pair in
	// place or inserts it, and returns the persisted record.
	UpsertScore(ctx context.Context, s schema.Score) (schema.Score, error)
	ListScores(ctx context.Context, benchmarkID int64) ([]schema.Score, error)

	AddProCon(ctx context.Context, pc schema.ProCon) (schema.ProCon, error)
	ListProsCons(ctx context.Context, benchmarkID int64) ([]schema.ProCon, error)

	// LoadSnapshot reads everything the scoring engine needs for one benchmark.
	LoadSnapshot(ctx context.Context, benchmarkID int64) (*schema.Snapshot, error)

	// GetStatus returns status information about the data store.
	GetStatus() (schema.DataStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// RunStore defines the interface for tracking evaluation runs and their results.
type RunStore interface {
	// BeginRun creates a new evaluation run and returns its unique ID.
	BeginRun(benchmarkID int64, startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the evaluation run with completion data.
	EndRun(runID int64, endTime time.Time, totalAlternatives int) error

	// RecordResult stores one ranked composite of a run.
	RecordResult(runID int64, result schema.EvaluationResultRecord) error

	// GetStatus returns status information about the run store.
	GetStatus() (schema.RunsStatus, error)

	// ListRuns and ListResults return the full history, oldest first.
	ListRuns() ([]schema.EvaluationRunRecord, error)
	ListResults() ([]schema.EvaluationResultRecord, error)

	// Close closes the underlying connection.
	Close() error
}

// EventPublisher announces score changes to other consumers.
type EventPublisher interface {
	PublishScoreChanged(ctx context.Context, score schema.Score) error
	Close() error
}
