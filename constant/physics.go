package constant

// Active (launched) pellet physics, fixed-point units per tick
const (
	// Gravity is added to vertical velocity of active pellets each tick
	Gravity = 100
)

// Inert (ember) pellet physics, fixed-point units per tick
const (
	// InertWind biases horizontal velocity before friction
	InertWind = 50
	// InertGravity biases vertical velocity before friction
	InertGravity = 20
	// InertFriction is the percent of velocity kept each tick, must stay below 100
	InertFriction = 80
)

// Explosion rings
const (
	// RingCountMin and RingCountMax bound the outer ring size, half-open [min, max)
	RingCountMin = 10
	RingCountMax = 16

	// RingMagnitudeMin and RingMagnitudeMax bound ring speed, half-open [min, max)
	RingMagnitudeMin = 1000
	RingMagnitudeMax = 4000

	// OuterRingScaleX/Y flatten the outer ring for terminal cell aspect ratio
	OuterRingScaleX = 1.0
	OuterRingScaleY = 0.7

	// InnerRingScaleX/Y shrink the inner ring
	InnerRingScaleX = 0.5
	InnerRingScaleY = 0.35

	// InnerRingAngleMul doubles the angle step so the inner ring (half the count) interleaves the outer
	InnerRingAngleMul = 2.0
)

// Launch
const (
	// LaunchVelXMin and LaunchVelXMax bound horizontal launch speed, half-open
	LaunchVelXMin = -1000
	LaunchVelXMax = 1000

	// LaunchVelYWeakest is the exclusive upper bound on vertical launch velocity (negative is up)
	LaunchVelYWeakest = -1500

	// LaunchCeilingFactor is 2 * Subpixel, the discrete-integration factor of the zenith estimate
	LaunchCeilingFactor = 2000

	// LaunchHeadroom keeps the zenith this many rows below the top edge
	LaunchHeadroom = 3

	// LaunchDigitDivisor maps digit d to d/LaunchDigitDivisor of screen width
	LaunchDigitDivisor = 10
)
