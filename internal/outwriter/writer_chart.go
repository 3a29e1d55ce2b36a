package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/apiarylab/hivetrend/schema"
)

// writeJSONResultsForChart marshals the schema.Projection to JSON and writes it.
func writeJSONResultsForChart(w io.Writer, proj *schema.Projection) error {
	return writeJSON(w, proj)
}

// writeCSVResultsForChart writes the schema.Projection data to a CSV writer.
func writeCSVResultsForChart(w *csv.Writer, proj *schema.Projection, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"date",
		"ordinal",
		"colony",
		"metric",
		"value",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, r := range proj.Rows {
		ordinalStr := ""
		if proj.Compressed {
			ordinalStr = strconv.Itoa(r.Ordinal)
		}
		row := []string{
			r.Date.Format(contract.DateFormat),
			ordinalStr,
			r.Colony,
			string(proj.Metric),
			fmtFloat(r.Value),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
