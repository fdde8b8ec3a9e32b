package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/firework/constant"
)

// Palette holds the foreground color of each draw class
type Palette struct {
	Active tcell.Color
	Inert  tcell.Color
	Status tcell.Color
}

// DefaultPalette returns the built-in colors
func DefaultPalette() Palette {
	p, _ := ParsePalette(constant.DefaultActiveColor, constant.DefaultInertColor, constant.DefaultStatusColor)
	return p
}

// ParsePalette resolves color names or #rrggbb strings; empty keeps the terminal default
func ParsePalette(active, inert, status string) (Palette, error) {
	var p Palette
	var err error
	if p.Active, err = parseColor(active); err != nil {
		return Palette{}, fmt.Errorf("active color: %w", err)
	}
	if p.Inert, err = parseColor(inert); err != nil {
		return Palette{}, fmt.Errorf("inert color: %w", err)
	}
	if p.Status, err = parseColor(status); err != nil {
		return Palette{}, fmt.Errorf("status color: %w", err)
	}
	return p, nil
}

func parseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault && !strings.EqualFold(s, "default") {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}
