package clock

import (
	"sync"
	"time"
)

// TimeProvider is the wall clock the throttle measures against
type TimeProvider interface {
	Now() time.Time
}

// RealTime reads the system monotonic clock
type RealTime struct{}

func (RealTime) Now() time.Time {
	return time.Now()
}

// MockTime provides a controllable time source for testing
type MockTime struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTime(start time.Time) *MockTime {
	return &MockTime{currentTime: start}
}

func (m *MockTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTime) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the mock forward by d
func (m *MockTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
