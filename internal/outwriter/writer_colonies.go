package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/apiarylab/hivetrend/schema"
)

// writeJSONResultsForColonies marshals the colony summaries to JSON and writes them.
func writeJSONResultsForColonies(w io.Writer, summaries []schema.ColonySummary) error {
	return writeJSON(w, summaries)
}

// writeCSVResultsForColonies writes the colony summaries to a CSV writer.
func writeCSVResultsForColonies(w *csv.Writer, summaries []schema.ColonySummary, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"colony",
		"entries",
		"first_date",
		"last_date",
		"latest_weight",
		"feed_status",
		"latest_strength",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, s := range summaries {
		weightStr := ""
		if s.LatestWeight != nil {
			weightStr = fmtFloat(*s.LatestWeight)
		}
		strengthStr := ""
		if s.LatestStrength != nil {
			strengthStr = strconv.Itoa(int(*s.LatestStrength))
		}
		row := []string{
			s.Colony,
			strconv.Itoa(s.Entries),
			s.FirstDate.Format(contract.DateFormat),
			s.LastDate.Format(contract.DateFormat),
			weightStr,
			contract.GetFeedLabel(s.LatestWeight),
			strengthStr,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
