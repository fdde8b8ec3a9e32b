package physics

import (
	"math"

	"github.com/lixenwraith/firework/constant"
	"github.com/lixenwraith/firework/core"
	"github.com/lixenwraith/firework/vmath"
)

// RingSpec describes one ring of inert pellets radiating from a burst point
type RingSpec struct {
	Count     int
	Magnitude int
	// AngleMul multiplies the base step 2π/Base
	AngleMul float64
	// Base is the divisor of the angle step, the outer ring count for both rings
	Base           int
	ScaleX, ScaleY float64
}

// OuterRing returns the full ring for a burst of count pellets at magnitude mag
func OuterRing(count, mag int) RingSpec {
	return RingSpec{
		Count:     count,
		Magnitude: mag,
		AngleMul:  1,
		Base:      count,
		ScaleX:    constant.OuterRingScaleX,
		ScaleY:    constant.OuterRingScaleY,
	}
}

// InnerRing returns the smaller interleaved ring: half the count, doubled angle step
func InnerRing(count, mag int) RingSpec {
	return RingSpec{
		Count:     count / 2,
		Magnitude: mag,
		AngleMul:  constant.InnerRingAngleMul,
		Base:      count,
		ScaleX:    constant.InnerRingScaleX,
		ScaleY:    constant.InnerRingScaleY,
	}
}

// RingVelocity returns the velocity of the r-th pellet of a ring, truncated to fixed-point units
func RingVelocity(ring RingSpec, r int) (vx, vy int) {
	if ring.Base <= 0 {
		return 0, 0
	}
	coeff := 2 * math.Pi / float64(ring.Base)
	angle := float64(r) * coeff * ring.AngleMul
	mag := float64(ring.Magnitude)
	vx = vmath.ScaleTrunc(mag*ring.ScaleX, math.Sin(angle))
	vy = vmath.ScaleTrunc(mag*ring.ScaleY, math.Cos(angle))
	return vx, vy
}

// AppendRing appends ring.Count inert pellets at (x, y) to dst
func AppendRing(dst []core.Pellet, x, y int, ring RingSpec) []core.Pellet {
	for r := 0; r < ring.Count; r++ {
		vx, vy := RingVelocity(ring, r)
		dst = append(dst, core.Pellet{
			X:     x,
			Y:     y,
			VelX:  vx,
			VelY:  vy,
			Model: core.ModelInert,
		})
	}
	return dst
}

// AppendBurst appends both rings of a burst of count pellets at magnitude mag, outer ring first
func AppendBurst(dst []core.Pellet, x, y, count, mag int) []core.Pellet {
	dst = AppendRing(dst, x, y, OuterRing(count, mag))
	return AppendRing(dst, x, y, InnerRing(count, mag))
}

// BurstSize returns the number of pellets AppendBurst creates for count
func BurstSize(count int) int {
	return count + count/2
}
