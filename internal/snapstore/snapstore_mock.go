package snapstore

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/apiarylab/hivetrend/schema"
)

// MockSnapshotManager is a mock implementation of SnapshotManager for testing.
type MockSnapshotManager struct {
	mock.Mock
}

var _ contract.SnapshotManager = &MockSnapshotManager{} // Compile-time check

// GetStore implements the SnapshotManager interface.
func (m *MockSnapshotManager) GetStore() contract.SnapshotStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.SnapshotStore)
	return store
}

// MockSnapshotStore is a mock implementation of SnapshotStore for testing.
type MockSnapshotStore struct {
	mock.Mock
}

var _ contract.SnapshotStore = &MockSnapshotStore{} // Compile-time check

// BeginLoad implements the SnapshotStore interface.
func (m *MockSnapshotStore) BeginLoad(report schema.LoadReport) (int64, error) {
	args := m.Called(report)
	return args.Get(0).(int64), args.Error(1)
}

// RecordEntries implements the SnapshotStore interface.
func (m *MockSnapshotStore) RecordEntries(loadID int64, entries []schema.Entry) error {
	args := m.Called(loadID, entries)
	return args.Error(0)
}

// FinishLoad implements the SnapshotStore interface.
func (m *MockSnapshotStore) FinishLoad(loadID int64, finished time.Time) error {
	args := m.Called(loadID, finished)
	return args.Error(0)
}

// GetStatus implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetStatus() (schema.SnapshotStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.SnapshotStatus), args.Error(1)
}

// GetAllLoads implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetAllLoads() ([]schema.LoadRunRecord, error) {
	args := m.Called()
	loads, _ := args.Get(0).([]schema.LoadRunRecord)
	return loads, args.Error(1)
}

// GetAllEntries implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetAllEntries() ([]schema.EntryRecord, error) {
	args := m.Called()
	entries, _ := args.Get(0).([]schema.EntryRecord)
	return entries, args.Error(1)
}

// Clear implements the SnapshotStore interface.
func (m *MockSnapshotStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the SnapshotStore interface.
func (m *MockSnapshotStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
