package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
)

const (
	contributionMinimum = 0.01
	topNContributors    = 3
)

// contribution is one entry of a composite breakdown.
type contribution struct {
	Name  string
	Value float64
}

// formatTopContributors lists the largest breakdown entries of a composite.
func formatTopContributors(r *schema.RankedAlternative) string {
	var parts []contribution
	for k, v := range r.Breakdown {
		if math.Abs(v) >= contributionMinimum {
			parts = append(parts, contribution{Name: k, Value: v})
		}
	}
	if len(parts) == 0 {
		return "Not applicable"
	}

	// Name breaks ties so the output is deterministic
	sort.Slice(parts, func(i, j int) bool {
		if parts[i].Value != parts[j].Value {
			return parts[i].Value > parts[j].Value
		}
		return parts[i].Name < parts[j].Name
	})

	limit := min(len(parts), topNContributors)
	names := make([]string, 0, limit)
	for i := range limit {
		names = append(names, parts[i].Name)
	}
	return strings.Join(names, " > ")
}

// PrintRanking outputs a ranking report, dispatching on the configured format.
func PrintRanking(report schema.ComparisonReport, cfg *contract.Config, duration time.Duration) error {
	return dispatch(cfg,
		func(w io.Writer) error { return writeJSON(w, report) },
		func(w io.Writer) error { return writeRankingCSV(w, report, cfg) },
		func(w io.Writer) error { return writeRankingTable(w, report, cfg, duration) },
	)
}

// writeRankingTable generates and writes the human-readable ranking.
func writeRankingTable(w io.Writer, report schema.ComparisonReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	nameWidth := GetMaxTableNameWidth(cfg)

	headers := []string{"Rank", "Alternative", "Total", "Average", "Label", "Mode"}
	if cfg.Explain {
		headers = append(headers, "Explain")
	}

	var data [][]string
	for i := range report.Ranking {
		r := &report.Ranking[i]
		row := []string{
			strconv.Itoa(r.Rank),
			contract.TruncateText(r.Name, nameWidth),
			fmtFloat(r.Total),
			fmtFloat(r.Average),
			labelFor(cfg, r.Average),
			schema.ScoringModeName(r.IsAutoCalculated),
		}
		if cfg.Explain {
			row = append(row, formatTopContributors(r))
		}
		data = append(data, row)
	}
	if err := writeTable(w, headers, data); err != nil {
		return err
	}

	if err := writeProsConsSection(w, report); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Showing top %d alternatives of %q\n", len(report.Ranking), report.Benchmark.Title); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Scoring completed in %v. Data backend: %s\n", duration, cfg.DataBackend)
	return err
}

// writeProsConsSection prints pros and cons below the table, in ranking order.
func writeProsConsSection(w io.Writer, report schema.ComparisonReport) error {
	for _, r := range report.Ranking {
		pros, cons := schema.SplitProsCons(report.ProsCons[r.ID])
		if len(pros) == 0 && len(cons) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n", r.Name); err != nil {
			return err
		}
		for _, p := range pros {
			if _, err := fmt.Fprintf(w, "  + %s\n", p); err != nil {
				return err
			}
		}
		for _, c := range cons {
			if _, err := fmt.Fprintf(w, "  - %s\n", c); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeRankingCSV writes one record per ranked alternative.
func writeRankingCSV(w io.Writer, report schema.ComparisonReport, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	header := []string{"rank", "id", "name", "total", "average", "max_weight", "label", "mode"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range report.Ranking {
			rec := []string{
				strconv.Itoa(r.Rank),
				strconv.FormatInt(r.ID, 10),
				r.Name,
				fmtFloat(r.Total),
				fmtFloat(r.Average),
				fmtFloat(r.MaxWeight),
				r.Label,
				schema.ScoringModeName(r.IsAutoCalculated),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
