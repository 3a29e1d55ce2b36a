// Package cmd defines the command-line interface for hivetrend.
package cmd

import (
	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/apiarylab/hivetrend/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(coloniesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(snapshotCmd)

	// Add the snapshot subcommands to the parent snapshot command
	snapshotCmd.AddCommand(snapshotClearCmd)
	snapshotCmd.AddCommand(snapshotStatusCmd)
	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("data-file", "d", contract.DefaultDataFile, "Path to the inspection CSV export")
	rootCmd.PersistentFlags().StringP("colonies", "c", "", "Comma-separated colony names to select (empty = first colony)")
	rootCmd.PersistentFlags().StringP("metric", "m", string(schema.WeightMetric), "Metric to chart: weight or weight-delta or mite-rate or strength")
	rootCmd.PersistentFlags().StringP("range", "r", string(schema.RangeAll), "Time range: '7 days', '1 month', '6 months', 'all', or a 4-digit year")
	rootCmd.PersistentFlags().Bool("zero-fill", false, "Replace missing metric values with 0 instead of dropping rows")
	rootCmd.PersistentFlags().Bool("compress-timeline", false, "Replace the calendar axis with an ordinal axis over observed dates")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("snapshot-backend", string(schema.SQLiteBackend), "Snapshot backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("snapshot-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of snapshotMigrateCmd to Viper
	snapshotMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(snapshotMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding snapshot migrate flags", err)
	}
}
