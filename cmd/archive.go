package cmd

import (
	"errors"
	"fmt"

	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/internal/session"
	"github.com/3JRock3/Ver-2-Draft/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// archiveSetup loads minimal configuration needed for archive operations.
// This is used by commands that need archive access without full shared setup.
func archiveSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get archive-related config values
	backendStr := viper.GetString("archive-backend")
	connStr := viper.GetString("archive-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.StoreBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.StoreBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateStoreConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize stores with the loaded config (no session store for archive commands)
	if err := session.InitStores(schema.NoneBackend, "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize archive: %w", err)
	}
	storeManager = session.Manager

	cfg.ArchiveBackend = backend
	cfg.ArchiveDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// archiveSetupWrapper wraps archiveSetup to provide PreRunE for archive commands.
func archiveSetupWrapper(_ *cobra.Command, _ []string) error {
	return archiveSetup()
}

// archiveMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func archiveMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get archive-related config values
	backendStr := viper.GetString("archive-backend")
	connStr := viper.GetString("archive-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.StoreBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.StoreBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateStoreConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetArchiveDBFilePath()
	}

	cfg.ArchiveBackend = backend
	cfg.ArchiveDBConnect = connStr

	return nil
}

// archiveMigrateSetupWrapper wraps archiveMigrateSetup to provide PreRunE for migrate command.
func archiveMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return archiveMigrateSetup()
}

// archiveCmd focused on draft archive management.
//
// Note: Archive subcommands use minimal initialization (archiveSetup) instead
// of the full sharedSetup used by draft commands. This avoids session config
// processing for simple archive operations.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage archived draft runs and exports",
	Long: `Manage the archive of finished draft runs.

When enabled, 'draftboard reset --archive' records every finished draft:
- Run metadata (timestamp, league settings, slider values)
- Every pick with its overall number, snake round and slot

This enables longitudinal analysis of drafting habits and data export for BI
tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show archive statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all archived runs
  migrate - Run database schema migrations

Examples:
  # Check archive status
  DRAFTBOARD_ARCHIVE_BACKEND=sqlite draftboard archive status

  # Export for analysis in pandas/DuckDB
  draftboard archive export --output-file drafts.parquet`,
}

// archiveClearCmd clears the archived draft data.
var archiveClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all archived draft runs",
	Long: `Delete every archived draft run and its picks.

WARNING: This action cannot be undone. Consider exporting data first.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the archive tables

Examples:
  # Export before clearing
  draftboard archive export --output-file backup.parquet
  draftboard archive clear`,
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := session.ClearArchive(cfg.ArchiveBackend, contract.GetArchiveDBFilePath(), cfg.ArchiveDBConnect); err != nil {
			contract.LogFatal("Failed to clear archive", err)
		}
		fmt.Println("Archive cleared successfully.")
	},
}

// archiveStatusCmd shows archive status.
var archiveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display archive statistics and connection details",
	Long: `Show detailed information about the draft archive.

Displays:
- Backend type and connection status
- Total number of archived runs and picks
- Last archived run timestamp

Examples:
  # Check archive status
  draftboard archive status`,
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := storeManager.GetArchiveStore()
		if store == nil {
			contract.LogFatal("Cannot get archive status", errors.New("archive store is not configured, set --archive-backend"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get archive status", err)
		}
		session.PrintArchiveStatus(status)
	},
}

// archiveExportCmd exports archived draft data to Parquet files.
var archiveExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export archived drafts to Parquet for BI tools and analytics",
	Long: `Export all archived draft data to Parquet format for use with
analytics tools.

Exports two datasets:
- Draft runs - league settings and slider values per archived draft
- Draft picks - every pick with overall number, round and slot

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all data
  draftboard archive export --output-file drafts.parquet

  # Use with DuckDB for analysis
  draftboard archive export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.draft_runs.parquet') LIMIT 10"`,
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := session.ExecuteArchiveExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export archive data", err)
		}
	},
}

// archiveMigrateCmd runs database migrations for the archive store.
var archiveMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the draft archive store.

Migrations allow:
- Upgrading to new schema versions when draftboard is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  draftboard archive migrate

  # Migrate to specific version
  draftboard archive migrate --target-version 2

  # Rollback to initial state
  draftboard archive migrate --target-version 0`,
	PreRunE: archiveMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := session.MigrateArchive(cfg.ArchiveBackend, cfg.ArchiveDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
