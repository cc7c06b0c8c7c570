package event

import (
	"testing"

	"github.com/lixenwraith/debuff-tracker/effect"
	"github.com/lixenwraith/debuff-tracker/tracker"
)

type nullView struct{}

func (nullView) RenderSelection(effect.Definition) {}
func (nullView) RenderLevel(int)                   {}
func (nullView) RenderDescription(string)          {}
func (nullView) RenderError(error)                 {}

func TestBusDispatchOrder(t *testing.T) {
	bus := NewBus()
	var trace []string
	bus.Subscribe(tracker.Handlers{
		OnSelectionChanged:   func(id string) { trace = append(trace, "sel:"+id) },
		OnIncrementRequested: func() { trace = append(trace, "inc") },
		OnDecrementRequested: func() { trace = append(trace, "dec") },
	})

	bus.EmitIncrement()
	bus.EmitSelect("Trauma")
	bus.EmitDecrement()

	if bus.Pending() != 3 {
		t.Errorf("Pending() = %d, want 3", bus.Pending())
	}
	if n := bus.Dispatch(); n != 3 {
		t.Errorf("Dispatch() = %d, want 3", n)
	}

	want := []string{"inc", "sel:Trauma", "dec"}
	if len(trace) != len(want) {
		t.Fatalf("Expected %v, got %v", want, trace)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, trace[i], want[i])
		}
	}

	if n := bus.Dispatch(); n != 0 {
		t.Errorf("Second Dispatch() = %d, want 0", n)
	}
}

func TestBusDropsUnhandled(t *testing.T) {
	bus := NewBus()
	bus.Subscribe(tracker.Handlers{OnIncrementRequested: func() {}})

	bus.EmitIncrement()
	bus.EmitDecrement()
	bus.queue.Push(UIEvent{Type: EventSelectionChanged, Payload: 7})

	if n := bus.Dispatch(); n != 1 {
		t.Errorf("Dispatch() = %d, want 1", n)
	}
}

func TestBusDrivesController(t *testing.T) {
	reg, err := effect.NewRegistry(effect.DefaultTable())
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	c := tracker.New(reg, nullView{})
	bus := NewBus()
	c.Attach(bus)

	bus.EmitIncrement()
	bus.EmitIncrement()
	bus.EmitSelect("Madness")
	bus.EmitIncrement()
	bus.EmitSelect("Fear")
	bus.Dispatch()

	if c.Selected() != "Fear" || c.CurrentLevel() != 2 {
		t.Errorf("Expected Fear at 2, got %s at %d", c.Selected(), c.CurrentLevel())
	}
	if l, _ := c.Level("Madness"); l != 1 {
		t.Errorf("Expected Madness at 1, got %d", l)
	}
}

func TestBusFullQueueKeepsQueuedCommands(t *testing.T) {
	reg, err := effect.NewRegistry(effect.DefaultTable())
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	c := tracker.New(reg, nullView{})
	bus := NewBus()
	c.Attach(bus)

	bus.EmitIncrement()
	bus.EmitIncrement()
	for bus.Pending() < QueueSize {
		bus.EmitSelect("Fear")
	}
	bus.EmitDecrement()
	bus.EmitDecrement()

	if n := bus.Dispatch(); n != QueueSize {
		t.Errorf("Dispatch() = %d, want %d", n, QueueSize)
	}
	if c.CurrentLevel() != 2 {
		t.Errorf("Expected both queued increments applied and overflow decrements refused, got level %d", c.CurrentLevel())
	}
}
