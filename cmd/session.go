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

// sessionSetup loads minimal configuration needed for session operations.
// This is used by commands that need store access without full shared setup.
func sessionSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.StoreBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateStoreConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize the session store only (no archive for session commands)
	if err := session.InitStores(backend, connStr, "", ""); err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}
	storeManager = session.Manager

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.SessionKey = viper.GetString("session")
	if cfg.SessionKey == "" {
		cfg.SessionKey = contract.DefaultSessionKey
	}

	return nil
}

// sessionSetupWrapper wraps sessionSetup to provide PreRunE for session commands.
func sessionSetupWrapper(_ *cobra.Command, _ []string) error {
	return sessionSetup()
}

// sessionCmd focused on session snapshot management.
//
// Note: Session subcommands use minimal initialization (sessionSetup) instead
// of the full sharedSetup used by draft commands. This avoids config
// validation that session management does not need.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage draft session snapshots",
	Long: `Manage the persisted draft session snapshots.

Draftboard stores each session (roster, pick log, league settings, sliders)
as one snapshot under a session key, so a draft survives process restarts
and multiple drafts can run in parallel under different keys.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status - Show snapshot size and connection info
  clear  - Delete the session snapshot

Examples:
  # Check the default session
  draftboard session status

  # Drop a finished league
  draftboard session clear --session work-league`,
}

// sessionClearCmd deletes one session snapshot.
var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the session snapshot",
	Long: `Delete the snapshot stored under the session key. The roster, pick
log, league settings and sliders of that session are all gone; the next
command starts from defaults.

Other sessions are not touched.

Examples:
  # Clear the default session
  draftboard session clear

  # Clear a named session
  draftboard session clear --session work-league`,
	PreRunE: sessionSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := storeManager.GetSessionStore()
		if store == nil {
			contract.LogFatal("Cannot clear session", errors.New("session store is not configured"))
		}
		if err := store.Delete(cfg.SessionKey); err != nil {
			contract.LogFatal("Failed to clear session", err)
		}
		fmt.Printf("Session %q cleared successfully.\n", cfg.SessionKey)
	},
}

// sessionStatusCmd shows session status.
var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display session snapshot statistics and connection details",
	Long: `Show detailed information about the stored session snapshot.

Displays:
- Backend type and connection status
- Whether a snapshot exists under the session key
- Snapshot size and last save time

Examples:
  # Check the default session
  draftboard session status`,
	PreRunE: sessionSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := storeManager.GetSessionStore()
		if store == nil {
			contract.LogFatal("Cannot get session status", errors.New("session store is not configured"))
		}
		status, err := store.GetStatus(cfg.SessionKey)
		if err != nil {
			contract.LogFatal("Failed to get session status", err)
		}
		session.PrintSessionStatus(status, cfg.SessionKey)
	},
}
