package engine

import "time"

// TimeProvider is the source of frame timestamps
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock, which carries a monotonic reading
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a system-clock provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
