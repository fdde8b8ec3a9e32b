package render

import (
	"github.com/lixenwraith/firework/constant"
	"github.com/lixenwraith/firework/core"
)

// Sink is the character-cell output of the display.
// Draws outside the screen are dropped by the sink.
type Sink interface {
	Clear()
	Draw(row, col int, glyph rune, model core.Model)
	Text(row, col int, s string)
	Show()
}

// DrawRequest is one glyph at one cell
type DrawRequest struct {
	Row, Col int
	Glyph    rune
	Model    core.Model
}

// Glyph returns the glyph drawn for a motion model
func Glyph(m core.Model) rune {
	switch m {
	case core.ModelInert:
		return constant.InertGlyph
	default:
		return constant.ActiveGlyph
	}
}
