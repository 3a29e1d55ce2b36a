package cmd

import (
	"github.com/apiarylab/hivetrend/core"
	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd displays the definitions of all chartable metrics.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show the formal definitions of all chartable metrics.",
	Long: `Display how each metric is computed from the input columns.

This is a static reference that does not require a data file. It covers
the source column of each metric, the derivation formulas for
weight-delta and mite-rate, and the display shift applied to strength
ratings.

Examples:
  # Human-readable reference
  hivetrend metrics

  # Machine-readable reference
  hivetrend metrics --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetricsInfo(rootCtx, cfg, snapshotManager); err != nil {
			contract.LogFatal("Cannot show metric definitions", err)
		}
	},
}
