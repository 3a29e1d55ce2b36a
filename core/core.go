package core

import (
	"context"
	"fmt"
	"time"

	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/apiarylab/hivetrend/internal/outwriter"
	"github.com/apiarylab/hivetrend/internal/parquet"
	"github.com/apiarylab/hivetrend/schema"
)

// ExecutorFunc defines the function signature for executing commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.SnapshotManager) error

// ExecuteChart loads the configured data file, applies the selection and
// prints the projected rows. It serves as the main entry point for the
// 'chart' command.
func ExecuteChart(ctx context.Context, cfg *contract.Config, mgr contract.SnapshotManager) error {
	start := time.Now()
	proj, report, err := GetChartProjection(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteProjection(proj, report, cfg, duration)
}

// GetChartProjection runs the load-and-project path and returns the raw
// results. Exposed separately so the MCP server can reuse it.
func GetChartProjection(ctx context.Context, cfg *contract.Config, mgr contract.SnapshotManager) (*schema.Projection, *schema.LoadReport, error) {
	ds, report, err := loadAndRecord(ctx, cfg, mgr)
	if err != nil {
		return nil, nil, err
	}

	state := cfg.NewSelectionState()
	if len(state.Colonies()) == 0 {
		// No explicit selection: default to the first colony in natural
		// order, like the dashboard does on first open.
		names := ds.Colonies()
		schema.SortNatural(names)
		if len(names) > 0 {
			state.SelectColonies(names[:1])
		}
	}

	bounds := ResolveTimeRange(state.TimeRange(), time.Now(), ds)
	return Project(ds, state, bounds), report, nil
}

// ExecuteColonies prints the per-colony status report. It serves as the
// main entry point for the 'colonies' command.
func ExecuteColonies(ctx context.Context, cfg *contract.Config, mgr contract.SnapshotManager) error {
	start := time.Now()
	summaries, report, err := GetColonySummaries(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteColonySummaries(summaries, report, cfg, duration)
}

// GetColonySummaries runs the load-and-summarize path and returns the raw
// results. Exposed separately so the MCP server can reuse it.
func GetColonySummaries(ctx context.Context, cfg *contract.Config, mgr contract.SnapshotManager) ([]schema.ColonySummary, *schema.LoadReport, error) {
	ds, report, err := loadAndRecord(ctx, cfg, mgr)
	if err != nil {
		return nil, nil, err
	}
	return SummarizeColonies(ds), report, nil
}

// ExecuteExport serializes the canonical dataset: semicolon-delimited
// latin-1 CSV by default, or Parquet when requested. The default file
// name embeds the current date.
func ExecuteExport(ctx context.Context, cfg *contract.Config, mgr contract.SnapshotManager) error {
	ds, report, err := loadAndRecord(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	if cfg.Output == schema.ParquetOut {
		outputFile := cfg.OutputFile
		if outputFile == "" {
			outputFile = ExportFileName(time.Now()) + ".parquet"
		}
		records := parquet.ConvertEntries(0, ds.Entries)
		if err := parquet.WriteEntriesParquet(records, outputFile); err != nil {
			return fmt.Errorf("failed to write parquet export: %w", err)
		}
		fmt.Printf("Exported %d rows from %s to: %s\n", len(ds.Entries), report.Source, outputFile)
		return nil
	}

	outputFile := cfg.OutputFile
	if outputFile == "" {
		outputFile = ExportFileName(time.Now())
	}
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()
	if err := WriteCanonicalCSV(file, ds); err != nil {
		return fmt.Errorf("failed to write canonical export: %w", err)
	}
	fmt.Printf("Exported %d rows from %s to: %s\n", len(ds.Entries), report.Source, outputFile)
	return nil
}

// ExecuteMetricsInfo displays the definitions of all chartable metrics.
// This is a static display that does not require a data file.
func ExecuteMetricsInfo(_ context.Context, cfg *contract.Config, _ contract.SnapshotManager) error {
	return outwriter.WriteMetricDefinitions(cfg)
}

// loadAndRecord ingests the configured data file and records the load in
// the snapshot store. Snapshot failures are warnings, never load failures.
func loadAndRecord(ctx context.Context, cfg *contract.Config, mgr contract.SnapshotManager) (*schema.Dataset, *schema.LoadReport, error) {
	ds, report, err := LoadDatasetFromFile(cfg.DataFile, time.Now())
	if err != nil {
		return nil, nil, err
	}
	if !shouldSuppressHeader(ctx) && cfg.Output == schema.TextOut {
		fmt.Printf("Loaded %s: %d rows kept, %d dropped (%s, %s)\n",
			report.Source, report.RowsKept, report.RowsDropped, report.DelimiterName, report.Encoding)
		for _, col := range report.DroppedCols {
			contract.LogWarn("duplicate column discarded", fmt.Errorf("%q resolved to an already-claimed field", col))
		}
	}
	recordSnapshot(mgr, ds, report)
	return ds, report, nil
}

// recordSnapshot persists the load run. Storage problems are reported to
// stderr and otherwise ignored.
func recordSnapshot(mgr contract.SnapshotManager, ds *schema.Dataset, report *schema.LoadReport) {
	if mgr == nil {
		return
	}
	store := mgr.GetStore()
	if store == nil {
		return
	}
	loadID, err := store.BeginLoad(*report)
	if err != nil {
		contract.LogWarn("could not record load snapshot", err)
		return
	}
	if err := store.RecordEntries(loadID, ds.Entries); err != nil {
		contract.LogWarn("could not record snapshot entries", err)
		return
	}
	if err := store.FinishLoad(loadID, time.Now()); err != nil {
		contract.LogWarn("could not finish load snapshot", err)
	}
}
