package render

import (
	"github.com/lixenwraith/firework/constant"
	"github.com/lixenwraith/firework/core"
)

// Frame collects one tick of output; Flush always clears before drawing
type Frame struct {
	draws  []DrawRequest
	status string
}

// NewFrame creates a frame with room for capacity draws
func NewFrame(capacity int) *Frame {
	return &Frame{draws: make([]DrawRequest, 0, capacity)}
}

// Reset empties the frame, keeping its storage
func (f *Frame) Reset() {
	f.draws = f.draws[:0]
	f.status = ""
}

// Add queues the glyph of a pellet at cell (col, row)
func (f *Frame) Add(col, row int, m core.Model) {
	f.draws = append(f.draws, DrawRequest{Row: row, Col: col, Glyph: Glyph(m), Model: m})
}

// SetStatus sets the status line text, empty hides it
func (f *Frame) SetStatus(s string) {
	f.status = s
}

// Draws returns the queued requests, valid until the next Reset
func (f *Frame) Draws() []DrawRequest {
	return f.draws
}

// Status returns the status line text
func (f *Frame) Status() string {
	return f.status
}

// Flush clears the sink, emits every draw, the status line last, and shows
func (f *Frame) Flush(s Sink) {
	s.Clear()
	for _, d := range f.draws {
		s.Draw(d.Row, d.Col, d.Glyph, d.Model)
	}
	if f.status != "" {
		s.Text(constant.StatusRow, 0, f.status)
	}
	s.Show()
}
