package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
)

// PrintWeights outputs the automatic weight table, dispatching on the configured format.
func PrintWeights(rows []schema.WeightRow, cfg *contract.Config) error {
	return dispatch(cfg,
		func(w io.Writer) error { return writeJSON(w, rows) },
		func(w io.Writer) error { return writeWeightsCSV(w, rows, cfg) },
		func(w io.Writer) error { return writeWeightsTable(w, rows, cfg) },
	)
}

func writeWeightsTable(w io.Writer, rows []schema.WeightRow, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	var data [][]string
	total := 0.0
	for _, r := range rows {
		source := "default"
		if r.Overridden {
			source = "custom"
		}
		data = append(data, []string{string(r.Key), string(r.Kind), fmtFloat(r.Weight), source})
		total += r.Weight
	}
	if err := writeTable(w, []string{"Attribute", "Normalizer", "Weight", "Source"}, data); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Maximum total weight: %s\n", fmtFloat(total))
	return err
}

func writeWeightsCSV(w io.Writer, rows []schema.WeightRow, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	return writeCSVWithHeader(w, []string{"attribute", "normalizer", "weight", "overridden"}, func(cw *csv.Writer) error {
		for _, r := range rows {
			if err := cw.Write([]string{string(r.Key), string(r.Kind), fmtFloat(r.Weight), strconv.FormatBool(r.Overridden)}); err != nil {
				return err
			}
		}
		return nil
	})
}
