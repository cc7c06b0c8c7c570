package event

import (
	"log"

	"github.com/lixenwraith/debuff-tracker/tracker"
)

// Bus queues UI events and dispatches them to subscribed handlers
// Implements tracker.Source
type Bus struct {
	queue    *EventQueue
	handlers tracker.Handlers
}

// NewBus creates a bus with an empty queue and no handlers
func NewBus() *Bus {
	return &Bus{queue: NewEventQueue()}
}

// Subscribe replaces the current handlers
func (b *Bus) Subscribe(h tracker.Handlers) {
	b.handlers = h
}

// EmitSelect queues a selection change to id
func (b *Bus) EmitSelect(id string) {
	b.emit(UIEvent{Type: EventSelectionChanged, Payload: id})
}

// EmitIncrement queues an increment request
func (b *Bus) EmitIncrement() {
	b.emit(UIEvent{Type: EventIncrementRequested})
}

// EmitDecrement queues a decrement request
func (b *Bus) EmitDecrement() {
	b.emit(UIEvent{Type: EventDecrementRequested})
}

// emit queues ev; a full queue refuses it and the refusal is logged
func (b *Bus) emit(ev UIEvent) {
	if _, ok := b.queue.Push(ev); !ok {
		log.Printf("event: queue full (%d pending), %s refused", b.queue.Len(), ev.Type)
	}
}

// Pending returns the number of queued events
func (b *Bus) Pending() int {
	return b.queue.Len()
}

// Dispatch drains the queue, running each handler to completion before the next event
// Returns the number of events handled
func (b *Bus) Dispatch() int {
	handled := 0
	for _, ev := range b.queue.Consume() {
		if b.deliver(ev) {
			handled++
		}
	}
	return handled
}

func (b *Bus) deliver(ev UIEvent) bool {
	switch ev.Type {
	case EventSelectionChanged:
		id, ok := ev.Payload.(string)
		if !ok {
			log.Printf("event: #%d %s: payload %T is not an effect id", ev.Seq, ev.Type, ev.Payload)
			return false
		}
		if b.handlers.OnSelectionChanged != nil {
			b.handlers.OnSelectionChanged(id)
			return true
		}
	case EventIncrementRequested:
		if b.handlers.OnIncrementRequested != nil {
			b.handlers.OnIncrementRequested()
			return true
		}
	case EventDecrementRequested:
		if b.handlers.OnDecrementRequested != nil {
			b.handlers.OnDecrementRequested()
			return true
		}
	}
	log.Printf("event: #%d %s dropped, no handler", ev.Seq, ev.Type)
	return false
}
