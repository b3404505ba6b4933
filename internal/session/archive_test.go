package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/3JRock3/Ver-2-Draft/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestArchive creates a SQLite-backed archive store in a temp directory.
func newTestArchive(t *testing.T) *ArchiveStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "archive.db")
	store, err := NewArchiveStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*ArchiveStoreImpl)
}

// TestArchiveStoreRunLifecycle records one draft and reads it back.
func TestArchiveStoreRunLifecycle(t *testing.T) {
	store := newTestArchive(t)

	league := schema.LeagueConfig{Teams: 12, MySlot: 7, Rounds: 15}
	knobs := schema.Knobs{QB: 100, RB: 150, WR: 100, TE: 50, ADPAnchor: 60}
	archivedAt := time.Date(2026, 8, 20, 19, 30, 0, 0, time.UTC)

	runID, err := store.BeginRun(archivedAt, league, knobs)
	require.NoError(t, err)
	require.Positive(t, runID)

	picks := []schema.PickEvent{
		{Overall: 1, Name: "Alpha Back", Mine: false},
		{Overall: 2, Name: "Bravo Wideout", Mine: true},
	}
	require.NoError(t, store.RecordPick(runID, picks[0], 1, 1, schema.RB))
	require.NoError(t, store.RecordPick(runID, picks[1], 1, 2, schema.WR))

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	assert.Equal(t, 12, runs[0].Teams)
	assert.Equal(t, 7, runs[0].MySlot)
	assert.Equal(t, 2, runs[0].PickCount)
	assert.True(t, runs[0].ArchivedAt.Equal(archivedAt))
	assert.Contains(t, runs[0].KnobsJSON, `"rb":150`)

	stored, err := store.ListPicks(runID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "Alpha Back", stored[0].Name)
	assert.Equal(t, "RB", stored[0].Pos)
	assert.False(t, stored[0].Mine)
	assert.Equal(t, "Bravo Wideout", stored[1].Name)
	assert.True(t, stored[1].Mine)
	assert.Equal(t, 2, stored[1].Slot)
}

// TestArchiveStoreListRunsOrderAndLimit checks newest-first ordering.
func TestArchiveStoreListRunsOrderAndLimit(t *testing.T) {
	store := newTestArchive(t)

	league := schema.LeagueConfig{Teams: 10, MySlot: 1, Rounds: 14}
	for i := 0; i < 3; i++ {
		_, err := store.BeginRun(time.Now().UTC(), league, schema.Knobs{})
		require.NoError(t, err)
	}

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Greater(t, runs[0].RunID, runs[1].RunID)
	assert.Greater(t, runs[1].RunID, runs[2].RunID)

	limited, err := store.ListRuns(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

// TestArchiveStoreGetStatus checks aggregate counts.
func TestArchiveStoreGetStatus(t *testing.T) {
	store := newTestArchive(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Zero(t, status.TotalRuns)

	runID, err := store.BeginRun(time.Now().UTC(), schema.LeagueConfig{Teams: 12, MySlot: 1, Rounds: 15}, schema.Knobs{})
	require.NoError(t, err)
	require.NoError(t, store.RecordPick(runID, schema.PickEvent{Overall: 1, Name: "Alpha Back"}, 1, 1, schema.RB))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.TotalRuns)
	assert.Equal(t, int64(1), status.TotalPicks)
	assert.False(t, status.LastRunTime.IsZero())
}

// TestArchiveStoreNoneBackend checks the no-op store behavior.
func TestArchiveStoreNoneBackend(t *testing.T) {
	store, err := NewArchiveStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun(time.Now(), schema.LeagueConfig{}, schema.Knobs{})
	require.NoError(t, err)
	assert.Zero(t, runID)

	assert.NoError(t, store.RecordPick(0, schema.PickEvent{}, 1, 1, schema.RB))

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	assert.Nil(t, runs)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
}
