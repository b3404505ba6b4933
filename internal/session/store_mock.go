package session

import (
	"time"

	"github.com/3JRock3/Ver-2-Draft/internal/contract"
	"github.com/3JRock3/Ver-2-Draft/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetSessionStore implements the StoreManager interface.
func (m *MockStoreManager) GetSessionStore() contract.SessionStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.SessionStore)
	return store
}

// GetArchiveStore implements the StoreManager interface.
func (m *MockStoreManager) GetArchiveStore() contract.ArchiveStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.ArchiveStore)
	return store
}

// MockSessionStore is a mock implementation of SessionStore for testing.
type MockSessionStore struct {
	mock.Mock
}

var _ contract.SessionStore = &MockSessionStore{} // Compile-time check

// Get implements the SessionStore interface.
func (m *MockSessionStore) Get(key string) ([]byte, int, int64, error) {
	args := m.Called(key)
	data, _ := args.Get(0).([]byte)
	return data, args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the SessionStore interface.
func (m *MockSessionStore) Set(key string, data []byte, version int, ts int64) error {
	args := m.Called(key, data, version, ts)
	return args.Error(0)
}

// Delete implements the SessionStore interface.
func (m *MockSessionStore) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

// Close implements the SessionStore interface.
func (m *MockSessionStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the SessionStore interface.
func (m *MockSessionStore) GetStatus(key string) (schema.SessionStatus, error) {
	args := m.Called(key)
	return args.Get(0).(schema.SessionStatus), args.Error(1)
}

// MockArchiveStore is a mock implementation of ArchiveStore for testing.
type MockArchiveStore struct {
	mock.Mock
}

var _ contract.ArchiveStore = &MockArchiveStore{} // Compile-time check

// BeginRun implements the ArchiveStore interface.
func (m *MockArchiveStore) BeginRun(archivedAt time.Time, league schema.LeagueConfig, knobs schema.Knobs) (int64, error) {
	args := m.Called(archivedAt, league, knobs)
	return args.Get(0).(int64), args.Error(1)
}

// RecordPick implements the ArchiveStore interface.
func (m *MockArchiveStore) RecordPick(runID int64, ev schema.PickEvent, round, slot int, pos schema.Position) error {
	args := m.Called(runID, ev, round, slot, pos)
	return args.Error(0)
}

// ListRuns implements the ArchiveStore interface.
func (m *MockArchiveStore) ListRuns(limit int) ([]contract.ArchivedRun, error) {
	args := m.Called(limit)
	runs, _ := args.Get(0).([]contract.ArchivedRun)
	return runs, args.Error(1)
}

// ListPicks implements the ArchiveStore interface.
func (m *MockArchiveStore) ListPicks(runID int64) ([]contract.ArchivedPick, error) {
	args := m.Called(runID)
	picks, _ := args.Get(0).([]contract.ArchivedPick)
	return picks, args.Error(1)
}

// Close implements the ArchiveStore interface.
func (m *MockArchiveStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the ArchiveStore interface.
func (m *MockArchiveStore) GetStatus() (schema.ArchiveStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.ArchiveStatus), args.Error(1)
}
