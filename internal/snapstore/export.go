package snapstore

import (
	"errors"
	"fmt"

	"github.com/apiarylab/hivetrend/internal/parquet"
)

// ExecuteSnapshotExport performs the actual export of snapshot data to Parquet files.
func ExecuteSnapshotExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the snapshot store
	store := Manager.GetStore()
	if store == nil {
		return errors.New("snapshot store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get snapshot status: %w", err)
	}

	if status.TotalLoads == 0 {
		return errors.New("no snapshot data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total load runs: %d\n", status.TotalLoads)
	fmt.Printf("Total entry records: %d\n", status.TableSizes[entriesTable])

	// Retrieve all load runs
	loadRuns, err := store.GetAllLoads()
	if err != nil {
		return fmt.Errorf("failed to retrieve load runs: %w", err)
	}

	// Retrieve all canonical entries
	entries, err := store.GetAllEntries()
	if err != nil {
		return fmt.Errorf("failed to retrieve entries: %w", err)
	}

	// Convert to Parquet format
	parquetLoadRuns := parquet.ConvertLoadRunRecords(loadRuns)
	parquetEntries := parquet.ConvertEntryRecords(entries)

	// Write load runs to Parquet
	loadRunsFile := outputFile + ".loads.parquet"
	if err := parquet.WriteLoadRunsParquet(parquetLoadRuns, loadRunsFile); err != nil {
		return fmt.Errorf("failed to write load runs: %w", err)
	}
	fmt.Printf("Exported %d load runs to: %s\n", len(parquetLoadRuns), loadRunsFile)

	// Write entries to Parquet
	entriesFile := outputFile + ".entries.parquet"
	if err := parquet.WriteEntriesParquet(parquetEntries, entriesFile); err != nil {
		return fmt.Errorf("failed to write entries: %w", err)
	}
	fmt.Printf("Exported %d entry records to: %s\n", len(parquetEntries), entriesFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
