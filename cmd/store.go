package cmd

import (
	"fmt"

	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/IsaacParker30/paper-read/internal/logstore"
	"github.com/IsaacParker30/paper-read/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	// Handle empty backend as the SQLite default
	backend := schema.SQLiteBackend
	if backendStr != "" {
		backend = schema.StoreBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateStoreConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize the store with the loaded config
	if err := logstore.InitStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func storeMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	// Handle empty backend as the SQLite default
	backend := schema.SQLiteBackend
	if backendStr != "" {
		backend = schema.StoreBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateStoreConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetLogDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeMigrateSetupWrapper wraps storeMigrateSetup to provide PreRunE for the migrate command.
func storeMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeMigrateSetup()
}

// storeCmd focused on reading log storage management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by reading commands. This avoids log input
// validation and complex config processing for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the reading log storage backend",
	Long: `Manage the database that holds your reading log.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove all logged readings
  migrate - Run database schema migrations

Examples:
  # Check store status
  paperforest store status

  # Start a fresh forest
  paperforest store clear`,
}

// storeClearCmd clears the reading log.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all logged readings",
	Long: `Delete every logged reading from the configured backend.

WARNING: This action cannot be undone. Your streaks and forest reset to zero.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the reading log table

Examples:
  # Clear the SQLite store (default)
  paperforest store clear

  # Clear a MySQL store (set connection string via env variable)
  PAPERFOREST_STORE_BACKEND=mysql PAPERFOREST_STORE_DB_CONNECT="..." paperforest store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := logstore.ClearStore(cfg.StoreBackend, contract.GetLogDBFilePath(), cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear store", err)
		}
		fmt.Println("Reading log cleared successfully.")
	},
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show detailed information about the reading log store.

Displays:
- Backend type and connection status
- Total number of logged readings
- First and most recent logged days
- Store database size

Examples:
  # Check store status
  paperforest store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := logstore.Manager.GetLogStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		logstore.PrintStoreStatus(status)
	},
}

// storeMigrateCmd runs database migrations for the reading log store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the reading log store.

Migrations allow:
- Upgrading to new schema versions when PaperForest is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  paperforest store migrate

  # Migrate to specific version
  paperforest store migrate --target-version 1

  # Rollback to initial state
  paperforest store migrate --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := logstore.MigrateStore(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
