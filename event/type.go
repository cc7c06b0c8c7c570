package event

// EventType represents the type of UI event
type EventType int

const (
	EventNone EventType = iota

	// EventSelectionChanged selects a different effect
	// Trigger: Selection list cursor move, digit key, list click | Payload: string (effect id)
	EventSelectionChanged

	// EventIncrementRequested raises the selected effect's level
	// Trigger: Increment key or button | Payload: nil
	EventIncrementRequested

	// EventDecrementRequested lowers the selected effect's level
	// Trigger: Decrement key or button | Payload: nil
	EventDecrementRequested
)

// UIEvent is a single queued UI event
type UIEvent struct {
	Type    EventType
	Payload any
	Seq     uint64 // Monotonic push order, used in logs
}
