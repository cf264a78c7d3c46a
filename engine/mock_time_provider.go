package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manually advanced clock for tests
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a mock clock frozen at startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the clock forward by d and returns the new reading
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	return m.currentTime
}
