package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
)

// PrintBenchmarks outputs a benchmark list.
func PrintBenchmarks(benchmarks []schema.Benchmark, cfg *contract.Config) error {
	headers := []string{"id", "title", "category", "status", "created_at"}
	records := make([][]string, 0, len(benchmarks))
	for _, b := range benchmarks {
		records = append(records, []string{
			strconv.FormatInt(b.ID, 10),
			b.Title,
			b.Category,
			b.Status,
			b.CreatedAt.Format(contract.DateTimeFormat),
		})
	}
	return printRecords(benchmarks, headers, records, cfg)
}

// PrintAlternatives outputs an alternative list with its headline attributes.
func PrintAlternatives(alts []schema.Alternative, cfg *contract.Config) error {
	_, fmtPtr := createFormatters(cfg.Precision)
	headers := []string{"id", "name", "code", "rank_order", "unit_price", "quality_score", "risk_level"}
	records := make([][]string, 0, len(alts))
	for _, a := range alts {
		risk := "-"
		if a.RiskLevel != nil {
			risk = *a.RiskLevel
		}
		records = append(records, []string{
			strconv.FormatInt(a.ID, 10),
			contract.TruncateText(a.Name, GetMaxTableNameWidth(cfg)),
			a.Code,
			strconv.Itoa(a.RankOrder),
			fmtPtr(a.UnitPrice),
			fmtPtr(a.QualityScore),
			risk,
		})
	}
	return printRecords(alts, headers, records, cfg)
}

// PrintCriteria outputs a criterion list.
func PrintCriteria(criteria []schema.Criterion, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	headers := []string{"id", "name", "weight", "category", "unit", "order_index"}
	records := make([][]string, 0, len(criteria))
	for _, c := range criteria {
		records = append(records, []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			fmtFloat(c.Weight),
			c.Category,
			c.Unit,
			strconv.Itoa(c.OrderIndex),
		})
	}
	return printRecords(criteria, headers, records, cfg)
}

// PrintProsCons outputs the pros and cons of an alternative.
func PrintProsCons(items []schema.ProCon, cfg *contract.Config) error {
	headers := []string{"id", "alternative_id", "kind", "description"}
	records := make([][]string, 0, len(items))
	for _, p := range items {
		records = append(records, []string{
			strconv.FormatInt(p.ID, 10),
			strconv.FormatInt(p.AlternativeID, 10),
			string(p.Kind),
			p.Description,
		})
	}
	return printRecords(items, headers, records, cfg)
}

// printRecords writes a flat listing: JSON of the typed value, CSV or table
// of the prepared records.
func printRecords(value any, headers []string, records [][]string, cfg *contract.Config) error {
	return dispatch(cfg,
		func(w io.Writer) error { return writeJSON(w, value) },
		func(w io.Writer) error {
			return writeCSVWithHeader(w, headers, func(cw *csv.Writer) error {
				return cw.WriteAll(records)
			})
		},
		func(w io.Writer) error { return writeTable(w, headers, records) },
	)
}
