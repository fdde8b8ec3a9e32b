package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/firework/core"
)

// Screen is the subset of tcell.Screen the sink draws through
type Screen interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

// ScreenSink draws frames onto a tcell screen
type ScreenSink struct {
	screen Screen
	active tcell.Style
	inert  tcell.Style
	status tcell.Style
}

// NewScreenSink creates a sink over screen using palette p
func NewScreenSink(screen Screen, p Palette) *ScreenSink {
	s := &ScreenSink{screen: screen}
	s.SetPalette(p)
	return s
}

// SetPalette swaps the colors used for subsequent draws
func (s *ScreenSink) SetPalette(p Palette) {
	s.active = tcell.StyleDefault.Foreground(p.Active).Bold(true)
	s.inert = tcell.StyleDefault.Foreground(p.Inert)
	s.status = tcell.StyleDefault.Foreground(p.Status)
}

func (s *ScreenSink) Clear() {
	s.screen.Clear()
}

func (s *ScreenSink) Draw(row, col int, glyph rune, model core.Model) {
	w, h := s.screen.Size()
	if col < 0 || col >= w || row < 0 || row >= h {
		return
	}
	style := s.active
	if model == core.ModelInert {
		style = s.inert
	}
	s.screen.SetContent(col, row, glyph, nil, style)
}

func (s *ScreenSink) Text(row, col int, text string) {
	w, h := s.screen.Size()
	if row < 0 || row >= h {
		return
	}
	for _, r := range text {
		if col >= w {
			return
		}
		if col >= 0 {
			s.screen.SetContent(col, row, r, nil, s.status)
		}
		col++
	}
}

func (s *ScreenSink) Show() {
	s.screen.Show()
}
