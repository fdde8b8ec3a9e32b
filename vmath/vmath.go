package vmath

import "math"

// Decimal fixed point: one character cell is Subpixel units
const (
	Subpixel = 1000
)

// --- Arithmetic ---

func FromCell(c int) int { return c * Subpixel }
func ToCell(f int) int   { return f / Subpixel }

// Percent scales v by pct/100 with truncation toward zero
func Percent(v, pct int) int {
	return v * pct / 100
}

// ScaleTrunc multiplies v by a float factor and truncates toward zero
func ScaleTrunc(v float64, factor float64) int {
	return int(v * factor)
}

// IsqrtFloor returns floor(sqrt(n)) through float64, 0 for n <= 0
// Exact for the magnitudes used by launch calculations (n < 2^52)
func IsqrtFloor(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(n)))
}

// --- Randomness ---

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Range returns a value in [lo, hi), lo when the range is empty
func (r *FastRand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}
