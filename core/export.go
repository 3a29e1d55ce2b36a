package core

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/apiarylab/hivetrend/schema"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// exportColumnOrder fixes the column order of the canonical export.
// Only columns that were actually resolved during the load are written,
// so a dataset without mite data round-trips without growing columns.
var exportColumnOrder = []schema.Column{
	schema.ColumnColony,
	schema.ColumnDate,
	schema.ColumnWeight,
	schema.ColumnMiteCount,
	schema.ColumnMiteDays,
	schema.ColumnCombOccupied,
	schema.ColumnStrength,
}

// exportHeaders maps canonical columns back to the KIM source names used
// in the export header, so an exported file re-ingests through the same
// resolver rules.
var exportHeaders = map[schema.Column]string{
	schema.ColumnColony:       ColonySourceColumn,
	schema.ColumnDate:         DateSourceColumn,
	schema.ColumnWeight:       WeightSourceColumn,
	schema.ColumnMiteCount:    "Gezählte Milben",
	schema.ColumnMiteDays:     "Zählzeitraum in Tagen",
	schema.ColumnCombOccupied: "besetzte Waben",
	schema.ColumnStrength:     "Bewertung Volksstärke",
}

// exportDateLayout is day-first, matching the accepted input layouts.
const exportDateLayout = "02.01.2006"

// WriteCanonicalCSV serializes the canonical dataset as semicolon-delimited
// latin-1 text, the same delimiter/encoding pair the decoder tries first.
// The mite rate is not written; it re-derives from count and days on
// re-ingestion.
func WriteCanonicalCSV(w io.Writer, ds *schema.Dataset) error {
	columns := make([]schema.Column, 0, len(exportColumnOrder))
	for _, col := range exportColumnOrder {
		if ds.HasColumn(col) {
			columns = append(columns, col)
		}
	}

	encoded := transform.NewWriter(w, charmap.ISO8859_1.NewEncoder())
	cw := csv.NewWriter(encoded)
	cw.Comma = ';'

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = exportHeaders[col]
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}

	record := make([]string, len(columns))
	for _, e := range ds.Entries {
		for i, col := range columns {
			record[i] = exportCell(&e, col)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return encoded.Close()
}

// ExportFileName returns the default export name with the current date
// embedded.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("hivetrend_export_%s.csv", now.Format("2006-01-02"))
}

// exportCell formats one canonical field for the export.
func exportCell(e *schema.Entry, col schema.Column) string {
	switch col {
	case schema.ColumnColony:
		return e.Colony
	case schema.ColumnDate:
		return e.Date.Format(exportDateLayout)
	case schema.ColumnWeight:
		return formatNullable(e.Weight)
	case schema.ColumnMiteCount:
		return formatNullable(e.MiteCount)
	case schema.ColumnMiteDays:
		return formatNullable(e.MiteDays)
	case schema.ColumnCombOccupied:
		return formatNullable(e.CombOccupied)
	case schema.ColumnStrength:
		return formatNullable(e.StrengthRating)
	}
	return ""
}

// formatNullable renders a nullable number, with the empty string for null.
func formatNullable(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
