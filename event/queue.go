package event

// QueueSize bounds the number of undispatched events
const QueueSize = 64

// EventQueue is a bounded FIFO ring of UI events
// Owned by the event loop goroutine: input pushes and Dispatch consumes on the same goroutine
//
// Overflow: new events are refused, queued user commands are never discarded
type EventQueue struct {
	events [QueueSize]UIEvent
	head   int    // Oldest pending slot
	count  int    // Pending events
	seq    uint64 // Next sequence number
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push stamps the event's sequence number and appends it
// Returns the stamped event and false when the queue is full; the event is not queued
func (eq *EventQueue) Push(ev UIEvent) (UIEvent, bool) {
	if eq.count == QueueSize {
		return ev, false
	}
	ev.Seq = eq.seq
	eq.seq++
	eq.events[(eq.head+eq.count)%QueueSize] = ev
	eq.count++
	return ev, true
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []UIEvent {
	if eq.count == 0 {
		return nil
	}
	result := make([]UIEvent, eq.count)
	for i := range result {
		idx := (eq.head + i) % QueueSize
		result[i] = eq.events[idx]
		eq.events[idx] = UIEvent{}
	}
	eq.head = (eq.head + eq.count) % QueueSize
	eq.count = 0
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return eq.count
}
