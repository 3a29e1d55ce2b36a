// Package parquet provides data structures and functions for exporting
// hivetrend load and inspection data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/apiarylab/hivetrend/schema"
	"github.com/parquet-go/parquet-go"
)

// LoadRun represents a single dataset load with metadata.
// This struct maps to the hivetrend_loads database table.
type LoadRun struct {
	// LoadID is the unique identifier for this load run
	LoadID int64 `parquet:"load_id,snappy"`

	// Source is the file name or upload label the dataset came from
	Source string `parquet:"source,snappy"`

	// Delimiter is the delimiter name the decoder settled on
	Delimiter string `parquet:"delimiter,snappy"`

	// Encoding is the character encoding the decoder settled on
	Encoding string `parquet:"encoding,snappy"`

	// RowsRead is the number of data rows in the parsed input
	RowsRead int32 `parquet:"rows_read,snappy"`

	// RowsKept is the number of rows that survived sanitization
	RowsKept int32 `parquet:"rows_kept,snappy"`

	// RowsDropped is the number of rows discarded during sanitization
	RowsDropped int32 `parquet:"rows_dropped,snappy"`

	// StartedAt is when the load began (stored as TIMESTAMP with nanosecond precision)
	StartedAt time.Time `parquet:"started_at,snappy"`

	// FinishedAt is when the load completed (nullable)
	FinishedAt *time.Time `parquet:"finished_at,optional,snappy"`
}

// InspectionEntry represents one canonical inspection observation.
// This struct maps to the hivetrend_entries database table.
type InspectionEntry struct {
	// LoadID references the parent load run
	LoadID int64 `parquet:"load_id,snappy"`

	// Colony is the colony name the observation belongs to
	Colony string `parquet:"colony,snappy"`

	// Date is the inspection date, truncated to midnight
	Date time.Time `parquet:"date,snappy"`

	// Weight is the hive gross weight in kilograms (nullable)
	Weight *float64 `parquet:"weight,optional,snappy"`

	// MiteCount is the number of mites counted on the board (nullable)
	MiteCount *float64 `parquet:"mite_count,optional,snappy"`

	// MiteDays is the counting period in days (nullable)
	MiteDays *float64 `parquet:"mite_days,optional,snappy"`

	// MiteRate is the derived mite fall per day (nullable)
	MiteRate *float64 `parquet:"mite_rate,optional,snappy"`

	// CombOccupied is the number of occupied combs (nullable)
	CombOccupied *float64 `parquet:"comb_occupied,optional,snappy"`

	// StrengthRating is the colony strength rating 1..3 (nullable)
	StrengthRating *float64 `parquet:"colony_strength_rating,optional,snappy"`
}

// WriteLoadRunsParquet writes a slice of LoadRun structs to a Parquet file.
func WriteLoadRunsParquet(data []LoadRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the LoadRun struct tags
	writer := parquet.NewGenericWriter[LoadRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteEntriesParquet writes a slice of InspectionEntry structs to a Parquet file.
func WriteEntriesParquet(data []InspectionEntry, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the InspectionEntry struct tags
	writer := parquet.NewGenericWriter[InspectionEntry](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertLoadRunRecords converts schema.LoadRunRecord to LoadRun for Parquet export.
func ConvertLoadRunRecords(records []schema.LoadRunRecord) []LoadRun {
	result := make([]LoadRun, len(records))
	for i, record := range records {
		result[i] = LoadRun{
			LoadID:      record.LoadID,
			Source:      record.Source,
			Delimiter:   record.Delimiter,
			Encoding:    record.Encoding,
			RowsRead:    int32(record.RowsRead),
			RowsKept:    int32(record.RowsKept),
			RowsDropped: int32(record.RowsDropped),
			StartedAt:   record.StartedAt,
			FinishedAt:  record.FinishedAt,
		}
	}
	return result
}

// ConvertEntryRecords converts schema.EntryRecord to InspectionEntry for Parquet export.
func ConvertEntryRecords(records []schema.EntryRecord) []InspectionEntry {
	result := make([]InspectionEntry, len(records))
	for i, record := range records {
		result[i] = InspectionEntry{
			LoadID:         record.LoadID,
			Colony:         record.Colony,
			Date:           record.Date,
			Weight:         record.Weight,
			MiteCount:      record.MiteCount,
			MiteDays:       record.MiteDays,
			MiteRate:       record.MiteRate,
			CombOccupied:   record.CombOccupied,
			StrengthRating: record.StrengthRating,
		}
	}
	return result
}

// ConvertEntries converts canonical schema.Entry values to InspectionEntry
// for direct Parquet export, outside the snapshot store.
func ConvertEntries(loadID int64, entries []schema.Entry) []InspectionEntry {
	result := make([]InspectionEntry, len(entries))
	for i, entry := range entries {
		result[i] = InspectionEntry{
			LoadID:         loadID,
			Colony:         entry.Colony,
			Date:           entry.Date,
			Weight:         entry.Weight,
			MiteCount:      entry.MiteCount,
			MiteDays:       entry.MiteDays,
			MiteRate:       entry.MiteRate,
			CombOccupied:   entry.CombOccupied,
			StrengthRating: entry.StrengthRating,
		}
	}
	return result
}
