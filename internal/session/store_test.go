package session

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/3JRock3/Ver-2-Draft/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a SQLite-backed session store in a temp directory.
func newTestStore(t *testing.T) *SessionStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "session.db")
	store, err := NewSessionStore(sessionTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*SessionStoreImpl)
}

// TestSessionStoreSetGet checks the basic upsert and read path.
func TestSessionStoreSetGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("default", []byte("v1"), 1, 1000))

	data, version, ts, err := store.Get("default")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), data)
	assert.Equal(t, 1, version)
	assert.Equal(t, int64(1000), ts)

	// Overwrite replaces the blob
	require.NoError(t, store.Set("default", []byte("v2"), 1, 2000))
	data, _, ts, err = store.Get("default")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
	assert.Equal(t, int64(2000), ts)
}

// TestSessionStoreMissingKey checks a missing key surfaces sql.ErrNoRows.
func TestSessionStoreMissingKey(t *testing.T) {
	store := newTestStore(t)

	_, _, _, err := store.Get("nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

// TestSessionStoreDelete checks delete removes the row and is idempotent.
func TestSessionStoreDelete(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("default", []byte("v1"), 1, 1000))
	require.NoError(t, store.Delete("default"))

	_, _, _, err := store.Get("default")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, store.Delete("default"), "deleting a missing key is fine")
}

// TestSessionStoreKeysAreIndependent checks two session keys don't collide.
func TestSessionStoreKeysAreIndependent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("mock-a", []byte("a"), 1, 1))
	require.NoError(t, store.Set("mock-b", []byte("b"), 1, 2))

	data, _, _, err := store.Get("mock-a")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), data)

	data, _, _, err = store.Get("mock-b")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), data)
}

// TestSessionStoreGetStatus checks the per-key status report.
func TestSessionStoreGetStatus(t *testing.T) {
	store := newTestStore(t)

	status, err := store.GetStatus("default")
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.False(t, status.HasSnapshot)

	require.NoError(t, store.Set("default", []byte("payload"), 1, 5000))

	status, err = store.GetStatus("default")
	require.NoError(t, err)
	assert.True(t, status.HasSnapshot)
	assert.Equal(t, int64(7), status.SnapshotBytes)
	assert.Equal(t, int64(5000), status.LastSavedTime.Unix())
}

// TestSessionStoreNoneBackend checks the no-op store behavior.
func TestSessionStoreNoneBackend(t *testing.T) {
	store, err := NewSessionStore(sessionTable, schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	assert.NoError(t, store.Set("default", []byte("v1"), 1, 1000))
	_, _, _, err = store.Get("default")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, store.Delete("default"))

	status, err := store.GetStatus("default")
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

// TestNewSessionStoreValidation rejects bad table names and backends.
func TestNewSessionStoreValidation(t *testing.T) {
	_, err := NewSessionStore("draft; DROP TABLE", schema.SQLiteBackend, "")
	assert.Error(t, err)

	_, err = NewSessionStore(sessionTable, schema.StoreBackend("redis"), "")
	assert.Error(t, err)
}
