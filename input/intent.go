package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone         IntentType = iota // No usable input
	IntentSpawn                          // Digit 1-9, launch a shell
	IntentQuit                           // Backtick, Esc, Ctrl+C, SIGINT/SIGTERM
	IntentToggleStatus                   // s
)

// Intent is the per-tick command handed to the loop
type Intent struct {
	Type IntentType
	// Digit is the launch column selector for IntentSpawn, 1-9
	Digit int
}

// None is the empty intent returned when no usable input arrived
var None = Intent{Type: IntentNone}

func (t IntentType) String() string {
	switch t {
	case IntentNone:
		return "none"
	case IntentSpawn:
		return "spawn"
	case IntentQuit:
		return "quit"
	case IntentToggleStatus:
		return "toggle-status"
	default:
		return "unknown"
	}
}
