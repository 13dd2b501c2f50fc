// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"time"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRanking prints a ranking report using the configured output format.
func (ow *OutWriter) WriteRanking(report schema.ComparisonReport, cfg *contract.Config, duration time.Duration) error {
	return PrintRanking(report, cfg, duration)
}

// WriteMatrix prints the criteria matrix using the configured output format.
func (ow *OutWriter) WriteMatrix(matrix schema.CriteriaMatrix, cfg *contract.Config) error {
	return PrintMatrix(matrix, cfg)
}

// WriteBestValues prints the best-value report using the configured output format.
func (ow *OutWriter) WriteBestValues(report schema.BestValueReport, cfg *contract.Config) error {
	return PrintBestValues(report, cfg)
}

// WriteWeights prints the automatic weight table using the configured output format.
func (ow *OutWriter) WriteWeights(rows []schema.WeightRow, cfg *contract.Config) error {
	return PrintWeights(rows, cfg)
}

// WriteBenchmarks prints a list of benchmarks.
func (ow *OutWriter) WriteBenchmarks(benchmarks []schema.Benchmark, cfg *contract.Config) error {
	return PrintBenchmarks(benchmarks, cfg)
}

// WriteAlternatives prints a list of alternatives.
func (ow *OutWriter) WriteAlternatives(alts []schema.Alternative, cfg *contract.Config) error {
	return PrintAlternatives(alts, cfg)
}

// WriteCriteria prints a list of criteria.
func (ow *OutWriter) WriteCriteria(criteria []schema.Criterion, cfg *contract.Config) error {
	return PrintCriteria(criteria, cfg)
}

// WriteProsCons prints the pros and cons of one alternative.
func (ow *OutWriter) WriteProsCons(items []schema.ProCon, cfg *contract.Config) error {
	return PrintProsCons(items, cfg)
}

// WriteDataStatus prints the status of the benchmark data store.
func (ow *OutWriter) WriteDataStatus(status schema.DataStatus, cfg *contract.Config) error {
	return PrintDataStatus(status, cfg)
}

// WriteRunsStatus prints the status of the evaluation run store.
func (ow *OutWriter) WriteRunsStatus(status schema.RunsStatus, cfg *contract.Config) error {
	return PrintRunsStatus(status, cfg)
}

// LogBenchmarkHeader prints a concise, 2-line header for a benchmark report.
func LogBenchmarkHeader(cfg *contract.Config, snap *schema.Snapshot) {
	title := snap.Benchmark.Title
	if title == "" {
		title = fmt.Sprintf("benchmark_%d", snap.Benchmark.ID)
	}
	if cfg.UseEmojis {
		fmt.Printf("📋 Benchmark: %s (Policy: %s)\n", title, cfg.WeightPolicy)
		fmt.Printf("🧮 Alternatives: %d, Criteria: %d\n", len(snap.Alternatives), len(snap.Criteria))
		return
	}
	fmt.Printf("Benchmark: %s (Policy: %s)\n", title, cfg.WeightPolicy)
	fmt.Printf("Alternatives: %d, Criteria: %d\n", len(snap.Alternatives), len(snap.Criteria))
}
