package cmd

import (
	"github.com/apiarylab/hivetrend/core"
	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/spf13/cobra"
)

// coloniesCmd shows the per-colony status report.
var coloniesCmd = &cobra.Command{
	Use:   "colonies [data-file]",
	Short: "Show a status report for every colony in the export.",
	Long: `Summarize each colony in the inspection export.

For every colony this shows:
- Number of inspection entries and the covered date span
- Latest weight reading and its feed status
- Latest colony strength rating

The feed status bands come from overwintering guidance: below 15 kg a
colony is starving, below 20 kg it needs watching, up to 45 kg is the
optimal reserve band, and anything heavier is flagged.

Examples:
  # Status of all colonies in the default export
  hivetrend colonies

  # Status for a specific export
  hivetrend colonies beedata/2025.csv

  # Machine-readable report
  hivetrend colonies --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteColonies(rootCtx, cfg, snapshotManager); err != nil {
			contract.LogFatal("Cannot build colony report", err)
		}
	},
}
