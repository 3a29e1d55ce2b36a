package cmd

import (
	"github.com/apiarylab/hivetrend/core"
	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd writes the canonical dataset back out.
var exportCmd = &cobra.Command{
	Use:   "export [data-file]",
	Short: "Export the canonical dataset as CSV or Parquet.",
	Long: `Load an inspection export and write it back out in canonical form.

The default output is a semicolon-delimited latin-1 CSV with the same
column headers the inspection app uses, so the file can be loaded again
without losing anything. Pass --output parquet for a columnar file
suitable for pandas or DuckDB.

The default file name embeds the current date, e.g.
hivetrend_export_2026-08-29.csv.

Examples:
  # Round-trip the default export
  hivetrend export

  # Export to a specific file
  hivetrend export daten.csv --output-file cleaned.csv

  # Columnar export for analytics
  hivetrend export --output parquet --output-file inspections.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg, snapshotManager); err != nil {
			contract.LogFatal("Cannot export dataset", err)
		}
	},
}
