package engine

import "time"

// Clock paces the loop between ticks
type Clock interface {
	Sleep(d time.Duration)
}

// RealClock sleeps on the system clock
type RealClock struct{}

// NewRealClock creates a system clock
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Sleep blocks for d
func (RealClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
