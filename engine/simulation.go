package engine

import (
	"slices"

	"github.com/lixenwraith/firework/constant"
	"github.com/lixenwraith/firework/core"
	"github.com/lixenwraith/firework/physics"
	"github.com/lixenwraith/firework/render"
)

// Verdict is the classification of one pellet in its post-advance state
type Verdict uint8

const (
	VerdictContinue Verdict = iota // Stays live
	VerdictExplode                 // Active pellet past zenith, bursts and is removed
	VerdictVanish                  // Below the bottom edge, removed without bursting
)

// Classify decides the fate of a pellet that has just been advanced
func Classify(p *core.Pellet, height int) Verdict {
	if physics.PastZenith(p) {
		return VerdictExplode
	}
	if physics.BelowFloor(p, height) {
		return VerdictVanish
	}
	return VerdictContinue
}

// Random is the uniform integer source for launches and bursts; Range draws from [lo, hi)
type Random interface {
	Range(lo, hi int) int
}

// Burst records one explosion of a tick
type Burst struct {
	X, Y      int // Fixed-point position of the parent
	Count     int // Outer ring size, inner ring has Count/2
	Magnitude int
}

// Simulation owns the live pellets and the per-tick working sets.
// All methods run on the loop goroutine; nothing here is safe for concurrent use.
type Simulation struct {
	width, height int
	rng           Random

	pellets []core.Pellet

	// Indices into pellets as it was before Compact, cleared at the end of every tick
	exploding []int
	vanishing []int

	bursts []Burst
	frame  *render.Frame
	stats  Stats
}

// NewSimulation creates an empty simulation for a width x height cell screen
func NewSimulation(width, height int, rng Random) *Simulation {
	return &Simulation{
		width:     width,
		height:    height,
		rng:       rng,
		pellets:   make([]core.Pellet, 0, constant.PelletCapacity),
		exploding: make([]int, 0, constant.IndexCapacity),
		vanishing: make([]int, 0, constant.IndexCapacity),
		frame:     render.NewFrame(constant.PelletCapacity),
	}
}

// Size returns the screen dimensions in cells
func (s *Simulation) Size() (width, height int) {
	return s.width, s.height
}

// Pellets returns the live collection; callers must not retain it across ticks
func (s *Simulation) Pellets() []core.Pellet {
	return s.pellets
}

// Frame returns the draw requests produced by the last Step
func (s *Simulation) Frame() *render.Frame {
	return s.frame
}

// Stats returns the running counters
func (s *Simulation) Stats() Stats {
	st := s.stats
	st.Live = len(s.pellets)
	return st
}

// Tick runs one full simulation tick: step, explode, compact.
// The returned bursts are valid until the next Tick.
func (s *Simulation) Tick() []Burst {
	s.bursts = s.bursts[:0]
	s.Step()
	s.Explode()
	s.Compact()
	s.stats.Ticks++
	return s.bursts
}

// Step advances every pellet, queues its glyph, and collects exploding and vanishing indices.
// The collection is only mutated in place; membership changes wait for Explode and Compact.
func (s *Simulation) Step() {
	s.frame.Reset()
	for i := range s.pellets {
		p := &s.pellets[i]
		physics.Advance(p)

		// Drawn even when vanishing so a pellet leaving the screen shows at the crossing cell once
		x, y := physics.GridPos(p)
		s.frame.Add(x, y, p.Model)

		switch Classify(p, s.height) {
		case VerdictExplode:
			s.exploding = append(s.exploding, i)
			s.vanishing = append(s.vanishing, i)
		case VerdictVanish:
			s.vanishing = append(s.vanishing, i)
		}
	}
}

// Explode appends two rings of inert pellets for every exploding index.
// Children go past the end of the collection so collected indices stay valid.
func (s *Simulation) Explode() {
	for _, i := range s.exploding {
		// Copy before append, the backing array may move
		parent := s.pellets[i]

		count := s.rng.Range(constant.RingCountMin, constant.RingCountMax)
		mag := s.rng.Range(constant.RingMagnitudeMin, constant.RingMagnitudeMax)

		s.pellets = physics.AppendBurst(s.pellets, parent.X, parent.Y, count, mag)
		s.bursts = append(s.bursts, Burst{X: parent.X, Y: parent.Y, Count: count, Magnitude: mag})

		s.stats.Exploded++
		s.stats.Born += uint64(physics.BurstSize(count))
	}
}

// Compact removes every vanishing index by swap-with-last, highest index first, then clears both sets
func (s *Simulation) Compact() {
	slices.SortFunc(s.vanishing, func(a, b int) int { return b - a })
	for _, i := range s.vanishing {
		last := len(s.pellets) - 1
		s.pellets[i] = s.pellets[last]
		s.pellets = s.pellets[:last]
	}
	s.stats.Vanished += uint64(len(s.vanishing))

	s.exploding = s.exploding[:0]
	s.vanishing = s.vanishing[:0]
}

// Spawn launches an active pellet from the bottom edge at digit/10 of the width.
// Digits outside 1-9 are ignored.
func (s *Simulation) Spawn(digit int) (core.Pellet, bool) {
	if digit < 1 || digit > 9 {
		return core.Pellet{}, false
	}

	x, y := physics.LaunchOrigin(digit, s.width, s.height)
	ceiling := physics.LaunchCeiling(s.height)

	vx := s.rng.Range(constant.LaunchVelXMin, constant.LaunchVelXMax)
	// Short screens cannot fit the weakest launch, fall back to the ceiling itself
	vy := ceiling
	if ceiling < constant.LaunchVelYWeakest {
		vy = s.rng.Range(ceiling, constant.LaunchVelYWeakest)
	}

	p := core.Pellet{X: x, Y: y, VelX: vx, VelY: vy, Model: core.ModelActive}
	s.pellets = append(s.pellets, p)
	s.stats.Launched++
	return p, true
}
