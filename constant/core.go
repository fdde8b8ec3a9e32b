package constant

import "time"

// Loop timing
const (
	// TickInterval is the fixed sleep between simulation ticks
	TickInterval = 20 * time.Millisecond

	// PollTimeout bounds the wait for one input event after each tick
	PollTimeout = 30 * time.Millisecond

	// StatsLogInterval is the number of ticks between debug stat lines (~1s at default tick)
	StatsLogInterval = 50
)

// Input
const (
	// QuitRune is the key that stops the show
	QuitRune = '`'

	// StatusToggleRune shows or hides the status line
	StatusToggleRune = 's'

	// InputQueueSize buffers terminal events between the pump goroutine and the loop
	InputQueueSize = 64
)

// Initial capacities
const (
	PelletCapacity = 512
	IndexCapacity  = 64
)
