package engine

import (
	"sync"
	"time"
)

// MockClock records sleeps instead of blocking
type MockClock struct {
	mu     sync.Mutex
	slept  time.Duration
	sleeps int
}

// NewMockClock creates a clock that never blocks
func NewMockClock() *MockClock {
	return &MockClock{}
}

// Sleep records d
func (m *MockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slept += d
	m.sleeps++
}

// Slept returns the total recorded sleep and the number of calls
func (m *MockClock) Slept() (time.Duration, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slept, m.sleeps
}

// SequenceRandom replays scripted draws for deterministic tests.
// Each value is clamped into the requested range; an exhausted script returns lo.
type SequenceRandom struct {
	values []int
	next   int
}

// NewSequenceRandom creates a source replaying values in order
func NewSequenceRandom(values ...int) *SequenceRandom {
	return &SequenceRandom{values: values}
}

// Range returns the next scripted value clamped into [lo, hi)
func (r *SequenceRandom) Range(lo, hi int) int {
	if r.next >= len(r.values) {
		return lo
	}
	v := r.values[r.next]
	r.next++
	if v < lo {
		return lo
	}
	if hi > lo && v >= hi {
		return hi - 1
	}
	return v
}

// Remaining returns the number of unread scripted values
func (r *SequenceRandom) Remaining() int {
	return len(r.values) - r.next
}
