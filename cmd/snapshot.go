package cmd

import (
	"fmt"

	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/apiarylab/hivetrend/internal/snapstore"
	"github.com/apiarylab/hivetrend/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// snapshotSetup loads minimal configuration needed for snapshot operations.
// This is used by commands that need snapshot access without full shared setup.
func snapshotSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backendStr := viper.GetString("snapshot-backend")
	connStr := viper.GetString("snapshot-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.SnapshotBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.SnapshotBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize stores with the loaded config
	if err := snapstore.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize snapshot store: %w", err)
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// snapshotSetupWrapper wraps snapshotSetup to provide PreRunE for snapshot commands.
func snapshotSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotSetup()
}

// snapshotMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func snapshotMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backendStr := viper.GetString("snapshot-backend")
	connStr := viper.GetString("snapshot-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.SnapshotBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.SnapshotBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetSnapshotDBFilePath()
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr

	return nil
}

// snapshotMigrateSetupWrapper wraps snapshotMigrateSetup to provide PreRunE for migrate command.
func snapshotMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotMigrateSetup()
}

// snapshotCmd focused on load snapshot data management.
//
// Note: Snapshot subcommands use minimal initialization (snapshotSetup) instead
// of the full sharedSetup used by chart commands. This avoids data file loading
// and complex config processing for simple snapshot operations.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage historical load tracking and exports",
	Long: `Manage historical load data used for trend tracking and reporting.

When enabled, Hivetrend tracks every dataset load, storing:
- Load metadata (source, delimiter, encoding, row counts)
- The canonical inspection entries of each load

This enables longitudinal analysis of how exports change over time and
data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show load tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  hivetrend snapshot status

  # Export for analysis in pandas/DuckDB
  hivetrend snapshot export --output-file snapshot-data.parquet`,
}

// snapshotClearCmd clears the snapshot data.
var snapshotClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical load tracking data",
	Long: `Delete all stored load runs and their canonical entries.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  hivetrend snapshot export --output-file backup.parquet
  hivetrend snapshot clear

  # Clear and start fresh
  hivetrend snapshot clear`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := snapstore.ClearSnapshots(cfg.SnapshotBackend, contract.GetSnapshotDBFilePath(), cfg.SnapshotDBConnect); err != nil {
			contract.LogFatal("Failed to clear snapshot data", err)
		}
		fmt.Println("Snapshot data cleared successfully.")
	},
}

// snapshotStatusCmd shows snapshot status.
var snapshotStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display load tracking statistics and connection details",
	Long: `Show detailed information about historical load tracking.

Displays:
- Backend type and connection status
- Total number of load runs stored
- Last and oldest load timestamps
- Database table sizes

Examples:
  # Check load tracking status
  hivetrend snapshot status`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := snapstore.Manager.GetStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get snapshot status", err)
		}
		snapstore.PrintSnapshotStatus(status)
	},
}

// snapshotExportCmd exports snapshot data to Parquet files.
var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export historical data to Parquet for BI tools and analytics",
	Long: `Export all stored load data to Parquet format for use with analytics tools.

Exports two datasets:
- Load runs - metadata about each dataset load
- Entries - the canonical inspection rows of every load

Requires: --output-file parameter

Examples:
  # Export all data
  hivetrend snapshot export --output-file hivetrend-data.parquet

  # Use with DuckDB for analysis
  hivetrend snapshot export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.entries.parquet') LIMIT 10"`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := snapstore.ExecuteSnapshotExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export snapshot data", err)
		}
	},
}

// snapshotMigrateCmd runs database migrations for the snapshot store.
var snapshotMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the load tracking store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  hivetrend snapshot migrate

  # Migrate to specific version
  hivetrend snapshot migrate --target-version 1

  # Rollback everything
  hivetrend snapshot migrate --target-version 0`,
	PreRunE: snapshotMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := snapstore.MigrateSnapshots(cfg.SnapshotBackend, cfg.SnapshotDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
