// Package contract provides interfaces and shared utilities for the
// draftboard CLI's internal architecture.
package contract

import (
	"time"

	"github.com/3JRock3/Ver-2-Draft/schema"
)

// StoreManager defines the interface for managing the session and archive
// stores. This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetSessionStore() SessionStore
	GetArchiveStore() ArchiveStore
}

// SessionStore defines the interface for the opaque key-value snapshot
// storage. This allows mocking the store for testing.
type SessionStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	Delete(key string) error
	GetStatus(key string) (schema.SessionStatus, error)
	Close() error
}

// ArchiveStore defines the interface for recording finished drafts.
type ArchiveStore interface {
	// BeginRun creates a new archived draft run and returns its unique ID.
	BeginRun(archivedAt time.Time, league schema.LeagueConfig, knobs schema.Knobs) (int64, error)

	// RecordPick stores one pick event of an archived run.
	RecordPick(runID int64, ev schema.PickEvent, round, slot int, pos schema.Position) error

	// GetStatus returns status information about the archive store.
	GetStatus() (schema.ArchiveStatus, error)

	// ListRuns returns archived runs for export, newest first.
	ListRuns(limit int) ([]ArchivedRun, error)

	// ListPicks returns all picks of one archived run in draft order.
	ListPicks(runID int64) ([]ArchivedPick, error)

	// Close closes the underlying connection.
	Close() error
}

// ArchivedRun is one finished draft recorded in the archive store.
type ArchivedRun struct {
	RunID      int64
	ArchivedAt time.Time
	Teams      int
	MySlot     int
	Rounds     int
	PickCount  int
	KnobsJSON  string
}

// ArchivedPick is one pick event of an archived run.
type ArchivedPick struct {
	RunID   int64
	Overall int
	Name    string
	Pos     string
	Mine    bool
	Round   int
	Slot    int
}
