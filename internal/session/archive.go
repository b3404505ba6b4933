package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/schema"
)

// Table names for draft archiving.
const (
	draftRunsTable  = "draft_runs"
	draftPicksTable = "draft_run_picks"
)

// ArchiveStoreImpl implements the ArchiveStore interface.
type ArchiveStoreImpl struct {
	db         *sql.DB
	backend    schema.StoreBackend
	driverName string
}

var _ contract.ArchiveStore = &ArchiveStoreImpl{} // Compile-time check

// NewArchiveStore creates a new ArchiveStore with the specified backend.
func NewArchiveStore(backend schema.StoreBackend, connStr string) (contract.ArchiveStore, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetArchiveDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled archiving
		return &ArchiveStoreImpl{
			db:         nil,
			backend:    backend,
			driverName: "",
		}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Verify the database server is running and accessible."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}

	// Create the table schemas
	if err := createArchiveTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create archive tables: %w", err)
	}

	return &ArchiveStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// createArchiveTables creates the draft archiving tables.
func createArchiveTables(db *sql.DB, backend schema.StoreBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{draftRunsTable, getCreateDraftRunsQuery(backend)},
		{draftPicksTable, getCreateDraftPicksQuery(backend)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}

	return nil
}

// getCreateDraftRunsQuery returns the CREATE TABLE query for draft_runs.
func getCreateDraftRunsQuery(backend schema.StoreBackend) string {
	quotedTableName := quoteTableName(draftRunsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				archived_at DATETIME(6) NOT NULL,
				teams INT NOT NULL,
				my_slot INT NOT NULL,
				rounds INT NOT NULL,
				knobs_json TEXT
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				archived_at TIMESTAMPTZ NOT NULL,
				teams INT NOT NULL,
				my_slot INT NOT NULL,
				rounds INT NOT NULL,
				knobs_json TEXT
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				archived_at TEXT NOT NULL,
				teams INTEGER NOT NULL,
				my_slot INTEGER NOT NULL,
				rounds INTEGER NOT NULL,
				knobs_json TEXT
			);
		`, quotedTableName)
	}
}

// getCreateDraftPicksQuery returns the CREATE TABLE query for draft_run_picks.
func getCreateDraftPicksQuery(backend schema.StoreBackend) string {
	quotedTableName := quoteTableName(draftPicksTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				overall INT NOT NULL,
				player_name VARCHAR(255) NOT NULL,
				player_pos VARCHAR(8) NOT NULL,
				mine BOOLEAN NOT NULL,
				round INT NOT NULL,
				slot INT NOT NULL,
				PRIMARY KEY (run_id, overall)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				overall INT NOT NULL,
				player_name TEXT NOT NULL,
				player_pos TEXT NOT NULL,
				mine BOOLEAN NOT NULL,
				round INT NOT NULL,
				slot INT NOT NULL,
				PRIMARY KEY (run_id, overall)
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER NOT NULL,
				overall INTEGER NOT NULL,
				player_name TEXT NOT NULL,
				player_pos TEXT NOT NULL,
				mine INTEGER NOT NULL,
				round INTEGER NOT NULL,
				slot INTEGER NOT NULL,
				PRIMARY KEY (run_id, overall)
			);
		`, quotedTableName)
	}
}

// BeginRun creates a new archived draft run and returns its unique ID.
func (as *ArchiveStoreImpl) BeginRun(archivedAt time.Time, league schema.LeagueConfig, knobs schema.Knobs) (int64, error) {
	// Skip for NoneBackend
	if as.backend == schema.NoneBackend || as.db == nil {
		return 0, nil
	}

	// Serialize the weight knobs to JSON
	knobsJSON, err := json.Marshal(knobs)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal knobs: %w", err)
	}

	quotedTableName := quoteTableName(draftRunsTable, as.backend)

	var runID int64
	switch as.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (archived_at, teams, my_slot, rounds, knobs_json) VALUES ($1, $2, $3, $4, $5) RETURNING run_id`, quotedTableName)
		err = as.db.QueryRow(query, archivedAt, league.Teams, league.MySlot, league.Rounds, string(knobsJSON)).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (archived_at, teams, my_slot, rounds, knobs_json) VALUES (?, ?, ?, ?, ?)`, quotedTableName)
		var result sql.Result
		result, err = as.db.Exec(query, formatTime(archivedAt, as.backend), league.Teams, league.MySlot, league.Rounds, string(knobsJSON))
		if err != nil {
			return 0, err
		}
		runID, err = result.LastInsertId()
	}

	if err != nil {
		return 0, fmt.Errorf("failed to insert archived run: %w", err)
	}

	return runID, nil
}

// RecordPick stores one pick event of an archived run.
func (as *ArchiveStoreImpl) RecordPick(runID int64, ev schema.PickEvent, round, slot int, pos schema.Position) error {
	// Skip for NoneBackend
	if as.backend == schema.NoneBackend || as.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(draftPicksTable, as.backend)

	var query string
	switch as.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`
			INSERT INTO %s (run_id, overall, player_name, player_pos, mine, round, slot)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`
			INSERT INTO %s (run_id, overall, player_name, player_pos, mine, round, slot)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, quotedTableName)
	}

	if _, err := as.db.Exec(query, runID, ev.Overall, ev.Name, string(pos), ev.Mine, round, slot); err != nil {
		return fmt.Errorf("failed to insert archived pick: %w", err)
	}

	return nil
}

// ListRuns returns archived runs, newest first. A limit of 0 means all runs.
func (as *ArchiveStoreImpl) ListRuns(limit int) ([]contract.ArchivedRun, error) {
	// Skip for NoneBackend
	if as.backend == schema.NoneBackend || as.db == nil {
		return nil, nil
	}

	runsTable := quoteTableName(draftRunsTable, as.backend)
	picksTable := quoteTableName(draftPicksTable, as.backend)
	query := fmt.Sprintf(`
		SELECT r.run_id, r.archived_at, r.teams, r.my_slot, r.rounds, r.knobs_json,
		       (SELECT COUNT(*) FROM %s p WHERE p.run_id = r.run_id)
		FROM %s r ORDER BY r.run_id DESC
	`, picksTable, runsTable)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := as.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query archived runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []contract.ArchivedRun

	for rows.Next() {
		var run contract.ArchivedRun

		switch as.backend {
		case schema.SQLiteBackend:
			var archivedAtStr string
			if err := rows.Scan(&run.RunID, &archivedAtStr, &run.Teams, &run.MySlot, &run.Rounds, &run.KnobsJSON, &run.PickCount); err != nil {
				return nil, fmt.Errorf("failed to scan archived run: %w", err)
			}
			archivedAt, err := time.Parse(time.RFC3339Nano, archivedAtStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse archived_at: %w", err)
			}
			run.ArchivedAt = archivedAt
		default: // MySQL and PostgreSQL store as native datetime
			if err := rows.Scan(&run.RunID, &run.ArchivedAt, &run.Teams, &run.MySlot, &run.Rounds, &run.KnobsJSON, &run.PickCount); err != nil {
				return nil, fmt.Errorf("failed to scan archived run: %w", err)
			}
		}

		results = append(results, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating archived runs: %w", err)
	}

	return results, nil
}

// ListPicks returns all picks of one archived run in draft order.
func (as *ArchiveStoreImpl) ListPicks(runID int64) ([]contract.ArchivedPick, error) {
	// Skip for NoneBackend
	if as.backend == schema.NoneBackend || as.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(draftPicksTable, as.backend)
	placeholder := "?"
	if as.backend == schema.PostgreSQLBackend {
		placeholder = "$1"
	}
	query := fmt.Sprintf(`
		SELECT run_id, overall, player_name, player_pos, mine, round, slot
		FROM %s WHERE run_id = %s ORDER BY overall
	`, quotedTableName, placeholder)

	rows, err := as.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query archived picks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []contract.ArchivedPick

	for rows.Next() {
		var pick contract.ArchivedPick
		if err := rows.Scan(&pick.RunID, &pick.Overall, &pick.Name, &pick.Pos, &pick.Mine, &pick.Round, &pick.Slot); err != nil {
			return nil, fmt.Errorf("failed to scan archived pick: %w", err)
		}
		results = append(results, pick)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating archived picks: %w", err)
	}

	return results, nil
}

// Close closes the underlying connection.
func (as *ArchiveStoreImpl) Close() error {
	if as.db != nil {
		return as.db.Close()
	}
	return nil
}

// GetStatus returns status information about the archive store.
func (as *ArchiveStoreImpl) GetStatus() (schema.ArchiveStatus, error) {
	status := schema.ArchiveStatus{
		Backend:   string(as.backend),
		Connected: as.db != nil,
	}

	if as.backend == schema.NoneBackend || as.db == nil {
		return status, nil
	}

	// Get total runs
	runsQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(draftRunsTable, as.backend))
	row := as.db.QueryRow(runsQuery)
	if err := row.Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	// Get total picks
	picksQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(draftPicksTable, as.backend))
	row = as.db.QueryRow(picksQuery)
	if err := row.Scan(&status.TotalPicks); err != nil {
		return status, fmt.Errorf("failed to get total picks: %w", err)
	}

	if status.TotalRuns > 0 {
		// Get last run time
		lastRunQuery := fmt.Sprintf("SELECT archived_at FROM %s ORDER BY run_id DESC LIMIT 1", quoteTableName(draftRunsTable, as.backend))
		row = as.db.QueryRow(lastRunQuery)

		switch as.backend {
		case schema.SQLiteBackend:
			var lastRunTimeStr string
			if err := row.Scan(&lastRunTimeStr); err != nil {
				return status, fmt.Errorf("failed to get last run time: %w", err)
			}
			lastRunTime, err := time.Parse(time.RFC3339Nano, lastRunTimeStr)
			if err != nil {
				return status, fmt.Errorf("failed to parse last run time: %w", err)
			}
			status.LastRunTime = lastRunTime
		default: // MySQL and PostgreSQL store as native datetime
			if err := row.Scan(&status.LastRunTime); err != nil {
				return status, fmt.Errorf("failed to get last run time: %w", err)
			}
		}
	}

	// Estimate table size for SQLite via pragma; skip for other backends
	if as.backend == schema.SQLiteBackend {
		sizeQuery := "SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()"
		row = as.db.QueryRow(sizeQuery)
		if err := row.Scan(&status.TableSizeBytes); err != nil {
			status.TableSizeBytes = 0
		}
	}

	return status, nil
}

// formatTime converts a time.Time to the appropriate format for the backend.
func formatTime(t time.Time, backend schema.StoreBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return t
	}
}
