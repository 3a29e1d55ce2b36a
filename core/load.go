package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apiarylab/hivetrend/schema"
)

// derivedSource marks canonical columns that are computed rather than
// taken from a source column.
const derivedSource = "(derived)"

// LoadDataset runs the full ingestion pipeline over raw bytes: decode,
// column resolution, metric derivation and date sanitation. On success it
// returns a fresh canonical dataset and a load report; on failure it
// returns an error and no dataset, so a previously loaded dataset is never
// partially replaced.
func LoadDataset(source string, data []byte, now time.Time) (*schema.Dataset, *schema.LoadReport, error) {
	table, err := DecodeRecords(source, data)
	if err != nil {
		return nil, nil, err
	}

	resolved, err := ResolveColumns(table.Header)
	if err != nil {
		return nil, nil, err
	}

	ds := &schema.Dataset{
		Columns:  make(map[schema.Column]string, len(resolved.Sources)+1),
		Source:   source,
		LoadedAt: now,
	}
	for col, src := range resolved.Sources {
		ds.Columns[col] = src
	}
	// The mite rate exists as a column only when a count column was
	// resolved. Rows without it get no rate at all, which is distinct
	// from a present-but-null value.
	hasMiteCount := ds.HasColumn(schema.ColumnMiteCount)
	if hasMiteCount {
		ds.Columns[schema.ColumnMiteRate] = derivedSource
	}

	kept, dropped := 0, 0
	for _, row := range table.Rows {
		entry, ok := buildEntry(row, resolved, hasMiteCount)
		if !ok {
			dropped++
			continue
		}
		ds.Entries = append(ds.Entries, entry)
		kept++
	}

	report := &schema.LoadReport{
		Source:        source,
		Delimiter:     table.Delimiter,
		DelimiterName: table.DelimiterName,
		Encoding:      table.Encoding,
		RowsRead:      len(table.Rows),
		RowsKept:      kept,
		RowsDropped:   dropped,
		DroppedCols:   resolved.Dropped,
		LoadedAt:      now,
	}
	return ds, report, nil
}

// LoadDatasetFromFile reads and ingests the file at path.
func LoadDatasetFromFile(path string, now time.Time) (*schema.Dataset, *schema.LoadReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read data file: %w", err)
	}
	return LoadDataset(filepath.Base(path), data, now)
}

// buildEntry converts one raw row into a canonical entry. Rows with an
// unparseable date or a blank colony identifier are rejected; this
// filtering is unconditional.
func buildEntry(row []string, resolved *ResolvedSchema, hasMiteCount bool) (schema.Entry, bool) {
	colony := cell(row, resolved.Index[schema.ColumnColony])
	if colony == "" {
		return schema.Entry{}, false
	}
	date, ok := ParseEntryDate(cell(row, resolved.Index[schema.ColumnDate]))
	if !ok {
		return schema.Entry{}, false
	}

	entry := schema.Entry{Colony: colony, Date: date}
	entry.Weight = numberAt(row, resolved, schema.ColumnWeight)
	entry.MiteCount = numberAt(row, resolved, schema.ColumnMiteCount)
	entry.MiteDays = numberAt(row, resolved, schema.ColumnMiteDays)
	entry.CombOccupied = numberAt(row, resolved, schema.ColumnCombOccupied)
	entry.StrengthRating = strengthAt(row, resolved)
	if hasMiteCount {
		entry.MiteRate = DeriveMiteRate(entry.MiteCount, entry.MiteDays)
	}
	return entry, true
}

// numberAt parses the numeric cell for a resolved column, returning nil
// when the column is absent or the cell is empty/unparseable.
func numberAt(row []string, resolved *ResolvedSchema, col schema.Column) *float64 {
	idx, ok := resolved.Index[col]
	if !ok {
		return nil
	}
	v, ok := parseNumber(cell(row, idx))
	if !ok {
		return nil
	}
	return &v
}

// strengthAt parses the colony strength rating, accepting the numeric
// 1..3 scale or the German category words.
func strengthAt(row []string, resolved *ResolvedSchema) *float64 {
	idx, ok := resolved.Index[schema.ColumnStrength]
	if !ok {
		return nil
	}
	raw := cell(row, idx)
	if raw == "" {
		return nil
	}
	switch raw {
	case "schwach":
		return floatPtr(schema.StrengthWeak)
	case "normal":
		return floatPtr(schema.StrengthNormal)
	case "stark":
		return floatPtr(schema.StrengthStrong)
	}
	v, ok := parseNumber(raw)
	if !ok || v < schema.StrengthWeak || v > schema.StrengthStrong {
		return nil
	}
	return &v
}
