package cmd

import (
	"github.com/apiarylab/hivetrend/core"
	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/spf13/cobra"
)

// chartCmd projects a metric over time for selected colonies.
var chartCmd = &cobra.Command{
	Use:   "chart [data-file]",
	Short: "Chart a metric over time for selected colonies.",
	Long: `Load an inspection export and project one metric over time.

The loader handles the messy reality of apiary exports: it tries both the
semicolon and comma delimiters, both latin-1 and UTF-8 encodings, and
finds the weight, mite and strength columns even when the app that wrote
the file renamed them slightly.

Available metrics:
- weight: hive gross weight in kilograms
- weight-delta: day-over-day weight change per colony
- mite-rate: Varroa mite fall per day over the counting period
- strength: colony strength rating

Examples:
  # Chart the first colony's weight over everything on record
  hivetrend chart daten.csv

  # Compare two colonies over the last month
  hivetrend chart --colonies "Hive 1,Hive 2" --range "1 month"

  # Mite fall per day for the 2025 season
  hivetrend chart --metric mite-rate --range 2025

  # Keep gaps visible as zeros and compress the date axis
  hivetrend chart --metric weight --zero-fill --compress-timeline

  # Export the projection to CSV for a spreadsheet
  hivetrend chart --output csv --output-file weights.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChart(rootCtx, cfg, snapshotManager); err != nil {
			contract.LogFatal("Cannot chart metric", err)
		}
	},
}
