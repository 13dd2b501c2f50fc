package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
)

// PrintMatrix outputs the criteria matrix, dispatching on the configured format.
func PrintMatrix(matrix schema.CriteriaMatrix, cfg *contract.Config) error {
	return dispatch(cfg,
		func(w io.Writer) error { return writeJSON(w, matrix) },
		func(w io.Writer) error { return writeMatrixCSV(w, matrix, cfg) },
		func(w io.Writer) error { return writeMatrixTable(w, matrix, cfg) },
	)
}

// matrixHeaders returns the criterion column titles with their weights.
func matrixHeaders(matrix schema.CriteriaMatrix, precision int) []string {
	fmtFloat, _ := createFormatters(precision)
	headers := []string{"Alternative"}
	for _, c := range matrix.Criteria {
		headers = append(headers, c.Name+" ("+fmtFloat(c.Weight)+"%)")
	}
	return append(headers, "Average", "Mode")
}

// writeMatrixTable shows normalized scores; missing scores are "-".
func writeMatrixTable(w io.Writer, matrix schema.CriteriaMatrix, cfg *contract.Config) error {
	fmtFloat, fmtPtr := createFormatters(cfg.Precision)
	nameWidth := GetMaxTableNameWidth(cfg)

	var data [][]string
	for _, row := range matrix.Rows {
		rec := []string{contract.TruncateText(row.AlternativeName, nameWidth)}
		for _, cell := range row.Cells {
			rec = append(rec, fmtPtr(cell.NormalizedScore))
		}
		rec = append(rec, fmtFloat(row.Average), row.Mode)
		data = append(data, rec)
	}
	return writeTable(w, matrixHeaders(matrix, cfg.Precision), data)
}

// writeMatrixCSV writes one record per cell so every value stays addressable.
func writeMatrixCSV(w io.Writer, matrix schema.CriteriaMatrix, cfg *contract.Config) error {
	_, fmtPtr := createFormatters(cfg.Precision)
	names := make(map[int64]string, len(matrix.Criteria))
	for _, c := range matrix.Criteria {
		names[c.ID] = c.Name
	}

	header := []string{"alternative_id", "alternative", "criterion_id", "criterion", "raw_value", "normalized_score", "weighted_score"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, row := range matrix.Rows {
			for _, cell := range row.Cells {
				rec := []string{
					strconv.FormatInt(row.AlternativeID, 10),
					row.AlternativeName,
					strconv.FormatInt(cell.CriterionID, 10),
					names[cell.CriterionID],
					fmtPtr(cell.RawValue),
					fmtPtr(cell.NormalizedScore),
					fmtPtr(cell.WeightedScore),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
