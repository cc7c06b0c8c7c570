package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/debuff-tracker/render"
)

// Emitter receives the UI events produced from input
type Emitter interface {
	EmitSelect(id string)
	EmitIncrement()
	EmitDecrement()
}

// Surface is the rendered frame the handler hit-tests mouse clicks against
type Surface interface {
	HitTest(x, y int) (render.Region, int)
	Resize()
}

// Handler translates tcell events into UI events
// It owns the selection list cursor, which mirrors the on-screen list
type Handler struct {
	ids      []string
	cursor   int
	keyTable *KeyTable
	emitter  Emitter
	surface  Surface

	lastButtons tcell.ButtonMask
}

// NewHandler creates a handler over ids in list order with the cursor on the first row
func NewHandler(ids []string, emitter Emitter, surface Surface) *Handler {
	return &Handler{
		ids:      ids,
		keyTable: DefaultKeyTable(),
		emitter:  emitter,
		surface:  surface,
	}
}

// Cursor returns the selected list row
func (h *Handler) Cursor() int {
	return h.cursor
}

// HandleEvent processes a tcell event and returns false if the app should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	return h.Apply(h.Parse(ev))
}

// Parse converts a tcell event into an intent
func (h *Handler) Parse(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.keyTable.Lookup(ev)
	case *tcell.EventMouse:
		return h.parseMouse(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

// parseMouse reacts to the press edge of the primary button only
func (h *Handler) parseMouse(ev *tcell.EventMouse) Intent {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && h.lastButtons&tcell.Button1 == 0
	h.lastButtons = buttons
	if !pressed || h.surface == nil {
		return Intent{}
	}

	x, y := ev.Position()
	region, index := h.surface.HitTest(x, y)
	switch region {
	case render.RegionListRow:
		return Intent{Type: IntentSelectIndex, Index: index}
	case render.RegionDecrement:
		return Intent{Type: IntentDecrement}
	case render.RegionIncrement:
		return Intent{Type: IntentIncrement}
	}
	return Intent{}
}

// Apply executes an intent and returns false on quit
func (h *Handler) Apply(in Intent) bool {
	switch in.Type {
	case IntentQuit:
		return false
	case IntentResize:
		if h.surface != nil {
			h.surface.Resize()
		}
	case IntentSelectPrev:
		h.moveTo(h.cursor - 1)
	case IntentSelectNext:
		h.moveTo(h.cursor + 1)
	case IntentSelectIndex:
		if in.Index >= 0 && in.Index < len(h.ids) {
			h.moveTo(in.Index)
		}
	case IntentIncrement:
		h.emitter.EmitIncrement()
	case IntentDecrement:
		h.emitter.EmitDecrement()
	}
	return true
}

// moveTo clamps row to the list and emits a selection when the cursor moves
func (h *Handler) moveTo(row int) {
	if len(h.ids) == 0 {
		return
	}
	if row < 0 {
		row = 0
	}
	if row >= len(h.ids) {
		row = len(h.ids) - 1
	}
	if row == h.cursor {
		return
	}
	h.cursor = row
	h.emitter.EmitSelect(h.ids[row])
}
