package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+Q, Ctrl+C
	IntentResize // Terminal resize event

	// Selection list
	IntentSelectPrev  // Up, k
	IntentSelectNext  // Down, j
	IntentSelectIndex // 1-9, list row click

	// Level controls
	IntentIncrement // Right, l, +, =, [ + ] click
	IntentDecrement // Left, h, -, [ - ] click
)

// Intent is a parsed user action
type Intent struct {
	Type  IntentType
	Index int // Zero-based row for IntentSelectIndex
}
