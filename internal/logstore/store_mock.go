package logstore

import (
	"time"

	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/IsaacParker30/paper-read/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetLogStore implements the StoreManager interface.
func (m *MockStoreManager) GetLogStore() contract.LogStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.LogStore)
	return store
}

// MockLogStore is a mock implementation of LogStore for testing.
type MockLogStore struct {
	mock.Mock
}

var _ contract.LogStore = &MockLogStore{} // Compile-time check

// Insert implements the LogStore interface.
func (m *MockLogStore) Insert(entry schema.ReadingEntry) (int64, error) {
	args := m.Called(entry)
	return args.Get(0).(int64), args.Error(1)
}

// DistinctActiveDays implements the LogStore interface.
func (m *MockLogStore) DistinctActiveDays() ([]time.Time, error) {
	args := m.Called()
	days, _ := args.Get(0).([]time.Time)
	return days, args.Error(1)
}

// CountEventsPerDay implements the LogStore interface.
func (m *MockLogStore) CountEventsPerDay(start, end time.Time) (map[time.Time]int, error) {
	args := m.Called(start, end)
	counts, _ := args.Get(0).(map[time.Time]int)
	return counts, args.Error(1)
}

// CountOnDay implements the LogStore interface.
func (m *MockLogStore) CountOnDay(day time.Time) (int, error) {
	args := m.Called(day)
	return args.Int(0), args.Error(1)
}

// RecentEntries implements the LogStore interface.
func (m *MockLogStore) RecentEntries(limit int) ([]schema.ReadingEntry, error) {
	args := m.Called(limit)
	entries, _ := args.Get(0).([]schema.ReadingEntry)
	return entries, args.Error(1)
}

// FindByPaperID implements the LogStore interface.
func (m *MockLogStore) FindByPaperID(paperID string) (schema.ReadingEntry, error) {
	args := m.Called(paperID)
	return args.Get(0).(schema.ReadingEntry), args.Error(1)
}

// DeleteByPaperID implements the LogStore interface.
func (m *MockLogStore) DeleteByPaperID(paperID string) (int64, error) {
	args := m.Called(paperID)
	return args.Get(0).(int64), args.Error(1)
}

// TotalEntries implements the LogStore interface.
func (m *MockLogStore) TotalEntries() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// GetStatus implements the LogStore interface.
func (m *MockLogStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the LogStore interface.
func (m *MockLogStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
