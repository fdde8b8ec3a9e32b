package render

import (
	"testing"

	"github.com/lixenwraith/firework/core"
)

// recordSink records calls in order
type recordSink struct {
	calls []string
	draws []DrawRequest
	texts []string
}

func (r *recordSink) Clear() { r.calls = append(r.calls, "clear") }
func (r *recordSink) Show()  { r.calls = append(r.calls, "show") }

func (r *recordSink) Draw(row, col int, glyph rune, model core.Model) {
	r.calls = append(r.calls, "draw")
	r.draws = append(r.draws, DrawRequest{Row: row, Col: col, Glyph: glyph, Model: model})
}

func (r *recordSink) Text(row, col int, s string) {
	r.calls = append(r.calls, "text")
	r.texts = append(r.texts, s)
}

func TestFrameFlushOrder(t *testing.T) {
	f := NewFrame(4)
	f.Add(10, 5, core.ModelActive)
	f.Add(11, 6, core.ModelInert)
	f.SetStatus("2 pellets")

	sink := &recordSink{}
	f.Flush(sink)

	want := []string{"clear", "draw", "draw", "text", "show"}
	if len(sink.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", sink.calls, want)
	}
	for i := range want {
		if sink.calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, sink.calls[i], want[i])
		}
	}

	if sink.draws[0] != (DrawRequest{Row: 5, Col: 10, Glyph: 'o', Model: core.ModelActive}) {
		t.Errorf("first draw = %+v", sink.draws[0])
	}
	if sink.draws[1] != (DrawRequest{Row: 6, Col: 11, Glyph: '.', Model: core.ModelInert}) {
		t.Errorf("second draw = %+v", sink.draws[1])
	}
}

func TestFrameEmptyStillClears(t *testing.T) {
	sink := &recordSink{}
	NewFrame(0).Flush(sink)

	if len(sink.calls) != 2 || sink.calls[0] != "clear" || sink.calls[1] != "show" {
		t.Errorf("calls = %v, want [clear show]", sink.calls)
	}
}

func TestFrameReset(t *testing.T) {
	f := NewFrame(2)
	f.Add(1, 1, core.ModelActive)
	f.SetStatus("x")
	f.Reset()

	if len(f.Draws()) != 0 || f.Status() != "" {
		t.Errorf("frame not empty after reset: %d draws, status %q", len(f.Draws()), f.Status())
	}
}

func TestGlyphPerModel(t *testing.T) {
	if Glyph(core.ModelActive) == Glyph(core.ModelInert) {
		t.Error("active and inert pellets must draw distinct glyphs")
	}
}
