// Package main provides a performance benchmarking tool for the altscore ranking engine.
// It builds synthetic benchmarks of increasing size, ranks each one several times,
// treating the first run as cold and averaging the rest as warm,
// and writes CSV output for performance analysis and documentation.
//
// Usage: go run benchmark/main.go [output-csv]
//
//	output-csv: Where to write results (default: benchmark_results.csv)
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/kademeqms/altscore/core"
	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/internal/datastore"
	"github.com/kademeqms/altscore/schema"
)

// BenchmarkResult holds the timing of one benchmark size and scoring mix.
type BenchmarkResult struct {
	Alternatives int
	Criteria     int
	ManualShare  float64
	ColdTime     time.Duration
	WarmTime     time.Duration
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Sizes        []int
	Criteria     int
	ManualShares []float64 // share of alternatives carrying manual scores
	WarmRuns     int
	Seed         uint64
}

func main() {
	outputFile := "benchmark_results.csv"
	if len(os.Args) == 2 {
		outputFile = os.Args[1]
	} else if len(os.Args) > 2 {
		fmt.Printf("Usage: %s [output-csv]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		Sizes:        []int{10, 100, 1000, 5000},
		Criteria:     8,
		ManualShares: []float64{0, 0.5, 1},
		WarmRuns:     5,
		Seed:         42,
	}

	results := runBenchmarks(config)
	if err := saveResults(results, outputFile); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}
	printSummary(results)
}

// runBenchmarks ranks every configured size and scoring mix.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	cfg := &contract.Config{
		WeightPolicy:    schema.CurrentWeightPolicy,
		ComputedWeights: schema.GetDefaultWeights(),
	}

	var results []BenchmarkResult
	for _, size := range config.Sizes {
		for _, share := range config.ManualShares {
			snap := syntheticSnapshot(size, config.Criteria, share, config.Seed)
			fmt.Printf("Ranking %d alternatives (%.0f%% manual)\n", size, share*100)

			cold := timeRanking(snap, cfg)
			var warmTotal time.Duration
			for range config.WarmRuns {
				warmTotal += timeRanking(snap, cfg)
			}
			results = append(results, BenchmarkResult{
				Alternatives: size,
				Criteria:     config.Criteria,
				ManualShare:  share,
				ColdTime:     cold,
				WarmTime:     warmTotal / time.Duration(max(config.WarmRuns, 1)),
			})
		}
	}
	return results
}

// timeRanking measures one full comparison report.
func timeRanking(snap *schema.Snapshot, cfg *contract.Config) time.Duration {
	start := time.Now()
	_ = core.BuildComparisonReport(snap, cfg)
	return time.Since(start)
}

// syntheticSnapshot generates a benchmark with random attributes and scores.
func syntheticSnapshot(size, criteriaCount int, manualShare float64, seed uint64) *schema.Snapshot {
	rng := rand.New(rand.NewPCG(seed, uint64(size)))
	risks := []string{"low", "medium", "high", "critical"}

	criteria := make([]schema.Criterion, criteriaCount)
	for i := range criteria {
		criteria[i] = schema.Criterion{
			ID:          int64(i + 1),
			BenchmarkID: 1,
			Name:        "criterion_" + strconv.Itoa(i+1),
			Weight:      float64(5 + rng.IntN(30)),
			OrderIndex:  i,
		}
	}

	alts := make([]schema.Alternative, size)
	var scores []schema.Score
	for i := range alts {
		alt := schema.Alternative{
			ID:          int64(i + 1),
			BenchmarkID: 1,
			Name:        "alt_" + strconv.Itoa(i+1),
			RankOrder:   i,
			RiskLevel:   schema.StringPtr(risks[rng.IntN(len(risks))]),
		}
		for _, f := range alt.AttributeFields() {
			// Leave some attributes not applicable
			if rng.Float64() < 0.2 {
				continue
			}
			*f.Value = schema.Float64Ptr(rng.Float64() * 100)
		}
		alts[i] = alt

		if rng.Float64() >= manualShare {
			continue
		}
		for _, c := range criteria {
			raw := rng.Float64() * 100
			normalized, weighted := core.DeriveScore(raw, c.Weight)
			scores = append(scores, schema.Score{
				AlternativeID:   alt.ID,
				CriterionID:     c.ID,
				RawValue:        raw,
				NormalizedScore: normalized,
				WeightedScore:   weighted,
			})
		}
	}

	b := schema.Benchmark{ID: 1, Title: fmt.Sprintf("synthetic-%d", size)}
	return datastore.BuildSnapshot(b, alts, criteria, scores, nil)
}

// saveResults writes the benchmark results to a CSV file.
func saveResults(results []BenchmarkResult, outputFile string) error {
	file, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"Alternatives", "Criteria", "Manual Share", "Cold (ms)", "Warm (ms)"}); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			strconv.Itoa(r.Alternatives),
			strconv.Itoa(r.Criteria),
			strconv.FormatFloat(r.ManualShare, 'f', 2, 64),
			formatMillis(r.ColdTime),
			formatMillis(r.WarmTime),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	fmt.Printf("Results saved to %s\n", outputFile)
	return nil
}

func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d.Microseconds())/1000, 'f', 3, 64)
}

// printSummary prints a human-readable summary of the benchmark results.
func printSummary(results []BenchmarkResult) {
	fmt.Println("\nBenchmark Summary:")
	fmt.Printf("%-14s %-8s %-8s %-12s %-12s\n", "Alternatives", "Criteria", "Manual", "Cold (ms)", "Warm (ms)")
	for _, r := range results {
		fmt.Printf("%-14d %-8d %-8.2f %-12s %-12s\n",
			r.Alternatives, r.Criteria, r.ManualShare, formatMillis(r.ColdTime), formatMillis(r.WarmTime))
	}
}
