package constant

// Glyphs per motion model
const (
	ActiveGlyph = 'o'
	InertGlyph  = '.'
)

// Default palette, hex strings accepted by tcell.GetColor
const (
	DefaultActiveColor = "#ffd75f"
	DefaultInertColor  = "#ff5f87"
	DefaultStatusColor = "#8a8a8a"
)

// StatusRow is the screen row used by the status line
const StatusRow = 0
