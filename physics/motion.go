package physics

import (
	"github.com/lixenwraith/firework/constant"
	"github.com/lixenwraith/firework/core"
	"github.com/lixenwraith/firework/vmath"
)

// Advance moves the pellet one tick under its motion model
func Advance(p *core.Pellet) {
	switch p.Model {
	case core.ModelInert:
		advanceInert(p)
	default:
		advanceActive(p)
	}
}

// advanceActive integrates an undamped parabola: p = p + v; v.y = v.y + g
func advanceActive(p *core.Pellet) {
	p.X += p.VelX
	p.Y += p.VelY
	p.VelY += constant.Gravity
}

// advanceInert integrates with wind/gravity bias followed by friction, embers settle to a slow drift
func advanceInert(p *core.Pellet) {
	p.X += p.VelX
	p.Y += p.VelY
	p.VelX = vmath.Percent(p.VelX+constant.InertWind, constant.InertFriction)
	p.VelY = vmath.Percent(p.VelY+constant.InertGravity, constant.InertFriction)
}

// GridPos returns the character cell the pellet occupies
func GridPos(p *core.Pellet) (x, y int) {
	return vmath.ToCell(p.X), vmath.ToCell(p.Y)
}

// PastZenith reports whether an active pellet has stopped rising
func PastZenith(p *core.Pellet) bool {
	return p.Model == core.ModelActive && p.VelY >= 0
}

// BelowFloor reports whether the pellet's row is past the bottom of a screen of given height
func BelowFloor(p *core.Pellet, height int) bool {
	return vmath.ToCell(p.Y) > height
}
