package core

// Model selects the motion model of a pellet
type Model uint8

const (
	ModelActive Model = iota // Launched shell, parabolic until zenith
	ModelInert               // Ember, damped drift
)

func (m Model) String() string {
	switch m {
	case ModelActive:
		return "active"
	case ModelInert:
		return "inert"
	default:
		return "unknown"
	}
}

// Pellet is one moving point of the display
type Pellet struct {
	// X and Y are fixed-point sub-cell coordinates (vmath.Subpixel per cell), Y grows downward
	X, Y int
	// VelX and VelY are fixed-point units per tick
	VelX, VelY int
	Model      Model
}
