// Package session is the persistence layer: the opaque snapshot store and
// the draft archive.
package session

import (
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/schema"
	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// SessionStoreImpl handles durable snapshot storage using various database backends.
type SessionStoreImpl struct {
	db         *sql.DB
	tableName  string
	backend    schema.StoreBackend
	driverName string
	connStr    string
}

var _ contract.SessionStore = &SessionStoreImpl{} // Compile-time check

// NewSessionStore initializes and returns a new SessionStore based on the backend type.
func NewSessionStore(tableName string, backend schema.StoreBackend, connStr string) (contract.SessionStore, error) {
	// Validate table name to prevent SQL injection
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetSessionDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite session store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL session store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL session store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled persistence
		return &SessionStoreImpl{
			db:         nil,
			tableName:  tableName,
			backend:    backend,
			driverName: "",
			connStr:    connStr,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Ping to verify connection (skip for NoneBackend)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	query := getCreateTableQuery(tableName, backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &SessionStoreImpl{
		db:         db,
		tableName:  tableName,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// tableNamePattern restricts table names to identifier characters.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validateTableName rejects names that could smuggle SQL into a query.
func validateTableName(tableName string) error {
	if !tableNamePattern.MatchString(tableName) {
		return fmt.Errorf("invalid table name %q: must match %s", tableName, tableNamePattern.String())
	}
	return nil
}

// quoteTableName quotes an already-validated table name for the backend.
func quoteTableName(tableName string, backend schema.StoreBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return "`" + tableName + "`"
	default: // SQLite and PostgreSQL
		return `"` + tableName + `"`
	}
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(tableName string, backend schema.StoreBackend) string {
	quotedTableName := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				session_key VARCHAR(255) PRIMARY KEY,
				snapshot BLOB NOT NULL,
				snapshot_version INT NOT NULL,
				saved_at BIGINT NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				session_key TEXT PRIMARY KEY,
				snapshot BYTEA NOT NULL,
				snapshot_version INTEGER NOT NULL,
				saved_at BIGINT NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				session_key TEXT PRIMARY KEY,
				snapshot BLOB NOT NULL,
				snapshot_version INTEGER NOT NULL,
				saved_at INTEGER NOT NULL
			);
		`, quotedTableName)
	}
}

// Get retrieves a snapshot blob by key from the store.
func (ss *SessionStoreImpl) Get(key string) ([]byte, int, int64, error) {
	// Return not found error for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil, 0, 0, sql.ErrNoRows
	}

	var value []byte
	var version int
	var ts int64

	// Use backend-specific placeholder
	quotedTableName := quoteTableName(ss.tableName, ss.backend)
	placeholder := ss.getPlaceholder()
	query := fmt.Sprintf(`SELECT snapshot, snapshot_version, saved_at FROM %s WHERE session_key = %s`, quotedTableName, placeholder)
	row := ss.db.QueryRow(query, key)

	if err := row.Scan(&value, &version, &ts); err != nil {
		return nil, 0, 0, err
	}
	return value, version, ts, nil
}

// Set inserts or replaces a snapshot for a key in the store.
func (ss *SessionStoreImpl) Set(key string, value []byte, version int, timestamp int64) error {
	// Skip for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}

	// Use backend-specific UPSERT
	query := ss.getUpsertQuery()
	_, err := ss.db.Exec(query, key, value, version, timestamp)
	return err
}

// Delete removes a snapshot by key. Deleting a missing key is not an error.
func (ss *SessionStoreImpl) Delete(key string) error {
	// Skip for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(ss.tableName, ss.backend)
	placeholder := ss.getPlaceholder()
	query := fmt.Sprintf(`DELETE FROM %s WHERE session_key = %s`, quotedTableName, placeholder)
	_, err := ss.db.Exec(query, key)
	return err
}

// getPlaceholder returns the parameter placeholder for the backend.
func (ss *SessionStoreImpl) getPlaceholder() string {
	switch ss.backend {
	case schema.PostgreSQLBackend:
		return "$1"
	default: // SQLite and MySQL
		return "?"
	}
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ss *SessionStoreImpl) getUpsertQuery() string {
	quotedTableName := quoteTableName(ss.tableName, ss.backend)
	switch ss.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (session_key, snapshot, snapshot_version, saved_at) VALUES (?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE snapshot = new.snapshot, snapshot_version = new.snapshot_version, saved_at = new.saved_at`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (session_key, snapshot, snapshot_version, saved_at) VALUES ($1, $2, $3, $4)
			ON CONFLICT (session_key) DO UPDATE SET snapshot = EXCLUDED.snapshot, snapshot_version = EXCLUDED.snapshot_version, saved_at = EXCLUDED.saved_at`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (session_key, snapshot, snapshot_version, saved_at) VALUES (?, ?, ?, ?)`, quotedTableName)
	}
}

// Close closes the underlying DB connection.
func (ss *SessionStoreImpl) Close() error {
	if ss.db != nil {
		return ss.db.Close()
	}
	return nil
}

// GetStatus returns status information about the session store for one key.
func (ss *SessionStoreImpl) GetStatus(key string) (schema.SessionStatus, error) {
	status := schema.SessionStatus{
		Backend:   string(ss.backend),
		Connected: ss.db != nil,
	}

	if ss.backend == schema.NoneBackend || ss.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(ss.tableName, ss.backend)
	placeholder := ss.getPlaceholder()
	query := fmt.Sprintf(`SELECT LENGTH(snapshot), saved_at FROM %s WHERE session_key = %s`, quotedTableName, placeholder)
	row := ss.db.QueryRow(query, key)

	var size int64
	var savedAt int64
	if err := row.Scan(&size, &savedAt); err != nil {
		if err == sql.ErrNoRows {
			return status, nil
		}
		return status, fmt.Errorf("failed to get snapshot status: %w", err)
	}

	status.HasSnapshot = true
	status.SnapshotBytes = size
	status.LastSavedTime = time.Unix(savedAt, 0)
	return status, nil
}
