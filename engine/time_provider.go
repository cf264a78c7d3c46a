package engine

import "time"

// TimeProvider supplies wall-clock readings
// Injected wherever elapsed time is measured so tests can drive time explicitly
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns time.Now, which carries a monotonic reading
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a real-time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
