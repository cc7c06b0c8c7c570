package tracker

import "github.com/lixenwraith/debuff-tracker/effect"

// View receives every state refresh from the Controller
type View interface {
	RenderSelection(def effect.Definition)
	RenderLevel(level int)
	RenderDescription(text string)
	// RenderError shows a construction fault such as an unknown selection
	RenderError(err error)
}

// Handlers are the controller callbacks a Source invokes
type Handlers struct {
	OnSelectionChanged   func(id string)
	OnIncrementRequested func()
	OnDecrementRequested func()
}

// Source delivers UI events to subscribed handlers
type Source interface {
	Subscribe(h Handlers)
}

// Observer is notified after a level actually changes
type Observer interface {
	LevelChanged(id string, from, to int)
}
