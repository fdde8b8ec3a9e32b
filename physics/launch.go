package physics

import (
	"github.com/lixenwraith/firework/constant"
	"github.com/lixenwraith/firework/vmath"
)

// LaunchCeiling returns the strongest vertical launch velocity (most negative) for a screen height.
// Under discrete integration a shell launched at -v rises about v²/(2g) subpixels, so
// v = sqrt(2000·g·(h-3)) puts the zenith near, but below, the top edge.
// Heights at or under the headroom give 0.
func LaunchCeiling(height int) int {
	n := constant.LaunchCeilingFactor * constant.Gravity * (height - constant.LaunchHeadroom)
	return -vmath.IsqrtFloor(n)
}

// LaunchOrigin returns the fixed-point launch position for digit d on a width x height screen.
// Column math runs on whole cells first, matching d/10 of the width truncated to a cell.
func LaunchOrigin(digit, width, height int) (x, y int) {
	x = vmath.FromCell(width * digit / constant.LaunchDigitDivisor)
	y = vmath.FromCell(height)
	return x, y
}
