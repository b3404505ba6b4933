package session

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/schema"
)

// sessionTable is the name of the table for session snapshots.
const sessionTable = "draft_session"

// StoreManagerImpl is the concrete store manager guarding the global stores.
type StoreManagerImpl struct {
	sync.RWMutex
	session contract.SessionStore
	archive contract.ArchiveStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetSessionStore returns the session store, or nil when persistence is off.
func (m *StoreManagerImpl) GetSessionStore() contract.SessionStore {
	m.RLock()
	defer m.RUnlock()
	return m.session
}

// GetArchiveStore returns the archive store, or nil when archiving is off.
func (m *StoreManagerImpl) GetArchiveStore() contract.ArchiveStore {
	m.RLock()
	defer m.RUnlock()
	return m.archive
}

// Global Manager instance for main logic.
var (
	Manager   = &StoreManagerImpl{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStores initializes the global manager with separate session and archive stores.
// sessionBackend can be empty to disable snapshot persistence.
// archiveBackend can be empty to disable draft archiving.
func InitStores(sessionBackend schema.StoreBackend, sessionConnStr string, archiveBackend schema.StoreBackend, archiveConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var err error

		// Initialize the session store only if backend is configured
		var sessionStore contract.SessionStore
		if sessionBackend != "" {
			sessionStore, err = NewSessionStore(sessionTable, sessionBackend, sessionConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize session store: %w", err)
				return
			}
		}

		// Initialize the archive store only if backend is configured
		var archiveStore contract.ArchiveStore
		if archiveBackend != "" {
			archiveStore, err = NewArchiveStore(archiveBackend, archiveConnStr)
			if err != nil {
				if sessionStore != nil {
					_ = sessionStore.Close()
				}
				initErr = fmt.Errorf("failed to initialize archive store: %w", err)
				return
			}
		}

		// Assign to global manager
		Manager.Lock()
		defer Manager.Unlock()
		Manager.session = sessionStore
		Manager.archive = archiveStore
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.session != nil {
			_ = Manager.session.Close()
		}
		if Manager.archive != nil {
			_ = Manager.archive.Close()
		}
	})
}

// ClearArchive clears the archived drafts for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the archive tables.
// For NoneBackend, it does nothing.
func ClearArchive(backend schema.StoreBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		tables := []string{draftPicksTable, draftRunsTable}
		for _, table := range tables {
			if err := clearSQLTable("mysql", connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.PostgreSQLBackend:
		tables := []string{draftPicksTable, draftRunsTable}
		for _, table := range tables {
			if err := clearSQLTable("pgx", connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported archive backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}
