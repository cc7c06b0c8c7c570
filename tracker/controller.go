package tracker

import (
	"log"

	"github.com/lixenwraith/debuff-tracker/effect"
)

// Controller owns one saturating level per registered effect and the current selection
// Not safe for concurrent use; events are expected one at a time from a single loop
type Controller struct {
	registry  *effect.Registry
	view      View
	observers []Observer

	levels   map[string]effect.Level
	selected string
}

// Option configures a Controller
type Option func(*Controller)

// WithObserver registers an observer for level changes
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// New creates a controller with every effect at level 0 and the first effect selected
// The initial state is rendered before New returns
func New(registry *effect.Registry, view View, opts ...Option) *Controller {
	c := &Controller{
		registry: registry,
		view:     view,
		levels:   make(map[string]effect.Level, registry.Len()),
		selected: registry.First().ID,
	}
	for _, id := range registry.IDs() {
		c.levels[id] = effect.MinLevel
	}
	for _, opt := range opts {
		opt(c)
	}

	c.refresh()
	return c
}

// Attach subscribes the controller to src
func (c *Controller) Attach(src Source) {
	src.Subscribe(Handlers{
		OnSelectionChanged: func(id string) {
			// Failure is already rendered and logged by Select
			_ = c.Select(id)
		},
		OnIncrementRequested: c.Increment,
		OnDecrementRequested: c.Decrement,
	})
}

// Select makes id the current effect
// An unknown id leaves the selection unchanged and puts the view in an error state
func (c *Controller) Select(id string) error {
	if _, ok := c.levels[id]; !ok {
		err := &effect.UnknownEffectError{ID: id}
		log.Printf("tracker: select: %v", err)
		c.view.RenderError(err)
		return err
	}

	c.selected = id
	c.refresh()
	return nil
}

// Increment raises the selected effect by one level, saturating at effect.MaxLevel
func (c *Controller) Increment() {
	c.step(effect.Level.Inc)
}

// Decrement lowers the selected effect by one level, saturating at effect.MinLevel
func (c *Controller) Decrement() {
	c.step(effect.Level.Dec)
}

func (c *Controller) step(next func(effect.Level) effect.Level) {
	from := c.levels[c.selected]
	to := next(from)
	c.levels[c.selected] = to

	c.refresh()

	if to != from {
		for _, o := range c.observers {
			o.LevelChanged(c.selected, int(from), int(to))
		}
	}
}

// Selected returns the current effect id
func (c *Controller) Selected() string {
	return c.selected
}

// CurrentLevel returns the selected effect's level
func (c *Controller) CurrentLevel() int {
	return int(c.levels[c.selected])
}

// CurrentDescription returns the selected effect's text, or the sentinel at level 0
func (c *Controller) CurrentDescription() string {
	text, err := c.registry.Describe(c.selected, c.levels[c.selected])
	if err != nil {
		// selected and levels are only ever set from registry ids
		panic(err)
	}
	return text
}

// Level returns the level of any registered effect
func (c *Controller) Level(id string) (int, error) {
	l, ok := c.levels[id]
	if !ok {
		return 0, &effect.UnknownEffectError{ID: id}
	}
	return int(l), nil
}

// Snapshot returns a copy of every effect's level
func (c *Controller) Snapshot() map[string]int {
	out := make(map[string]int, len(c.levels))
	for id, l := range c.levels {
		out[id] = int(l)
	}
	return out
}

// refresh pushes the selection, level and description to the view
func (c *Controller) refresh() {
	def, err := c.registry.Lookup(c.selected)
	if err != nil {
		panic(err)
	}
	c.view.RenderSelection(def)
	c.view.RenderLevel(c.CurrentLevel())
	c.view.RenderDescription(c.CurrentDescription())
}
