package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
)

// PrintBestValues outputs the best-value report, dispatching on the configured format.
func PrintBestValues(report schema.BestValueReport, cfg *contract.Config) error {
	return dispatch(cfg,
		func(w io.Writer) error { return writeJSON(w, report) },
		func(w io.Writer) error { return writeBestCSV(w, report, cfg) },
		func(w io.Writer) error { return writeBestTable(w, report, cfg) },
	)
}

// formatCell renders an attribute cell, highlighting best values.
func formatCell(cell schema.AttributeCell, cfg *contract.Config) string {
	text := cell.Text
	if text == "" {
		text = schema.FormatValue(cell.Value, cfg.Precision)
	}
	if !cell.IsBest {
		return text
	}
	if cfg.UseColors {
		return contract.BestColor.Sprint(text)
	}
	return text + " *"
}

// writeBestTable lists attributes as rows and alternatives as columns.
// Attributes no alternative has are skipped.
func writeBestTable(w io.Writer, report schema.BestValueReport, cfg *contract.Config) error {
	headers := []string{"Attribute"}
	for _, row := range report.Cells {
		headers = append(headers, contract.TruncateText(row.AlternativeName, GetMaxTableNameWidth(cfg)))
	}

	var data [][]string
	for i, key := range schema.DisplayAttributes {
		rec := []string{string(key)}
		present := false
		for _, row := range report.Cells {
			var cell schema.AttributeCell
			if i < len(row.Values) {
				cell = row.Values[i]
			}
			if cell.Value != nil || cell.Text != "" {
				present = true
			}
			rec = append(rec, formatCell(cell, cfg))
		}
		if present {
			data = append(data, rec)
		}
	}
	if err := writeTable(w, headers, data); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Best values found for %d attributes\n", len(report.Entries))
	return err
}

// writeBestCSV writes the winner of every attribute.
func writeBestCSV(w io.Writer, report schema.BestValueReport, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	header := []string{"attribute", "polarity", "alternative_id", "alternative", "value"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, e := range report.Entries {
			rec := []string{
				string(e.Key),
				string(e.Polarity),
				strconv.FormatInt(e.AlternativeID, 10),
				e.AlternativeName,
				fmtFloat(e.Value),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
