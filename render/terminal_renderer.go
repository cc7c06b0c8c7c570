package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/debuff-tracker/constants"
	"github.com/lixenwraith/debuff-tracker/effect"
)

// TerminalRenderer draws the tracker onto a tcell screen
// Implements tracker.View. RenderSelection and RenderLevel stage state; RenderDescription,
// the last call of every controller refresh, and RenderError draw and show one frame
type TerminalRenderer struct {
	screen tcell.Screen
	layout Layout

	defs   []effect.Definition
	rowOf  map[string]int
	levels []int

	selected    int
	description string
	err         error
}

// NewTerminalRenderer creates a renderer listing defs in the given order
func NewTerminalRenderer(screen tcell.Screen, defs []effect.Definition) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		defs:   defs,
		rowOf:  make(map[string]int, len(defs)),
		levels: make([]int, len(defs)),
	}
	for i, d := range defs {
		r.rowOf[d.ID] = i
	}
	w, h := screen.Size()
	r.layout = ComputeLayout(w, h, len(defs))
	return r
}

// Layout returns the current frame geometry
func (r *TerminalRenderer) Layout() Layout {
	return r.layout
}

// HitTest maps a screen cell to a clickable region
func (r *TerminalRenderer) HitTest(x, y int) (Region, int) {
	return r.layout.HitTest(x, y)
}

// Resize recomputes the layout for the current screen size and redraws fully
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	r.layout = ComputeLayout(w, h, len(r.defs))
	r.draw()
	r.screen.Sync()
}

// RenderSelection marks def as the selected row and clears any error banner
func (r *TerminalRenderer) RenderSelection(def effect.Definition) {
	row, ok := r.rowOf[def.ID]
	if !ok {
		r.RenderError(&effect.UnknownEffectError{ID: def.ID})
		return
	}
	r.selected = row
	r.err = nil
}

// RenderLevel shows level for the selected effect
func (r *TerminalRenderer) RenderLevel(level int) {
	r.levels[r.selected] = level
}

// RenderDescription shows text for the selected effect and presents the staged frame
func (r *TerminalRenderer) RenderDescription(text string) {
	r.description = text
	r.draw()
}

// RenderError shows err in the error banner until the next selection
func (r *TerminalRenderer) RenderError(err error) {
	r.err = err
	r.draw()
}

// draw renders the entire frame
func (r *TerminalRenderer) draw() {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	r.drawTitle()
	r.drawList(defaultStyle)
	r.drawPanel(defaultStyle)
	r.drawError()
	r.drawHelp(defaultStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) drawTitle() {
	style := tcell.StyleDefault.Background(RgbTitleBg).Foreground(RgbTitleText).Bold(true)
	fillRow(r.screen, 0, 0, r.layout.Width, style)
	drawText(r.screen, 0, 0, constants.AppTitle, style, r.layout.Width)
}

// drawList draws one row per effect: marker, name, level pips
func (r *TerminalRenderer) drawList(defaultStyle tcell.Style) {
	l := r.layout
	for i, d := range r.defs {
		if i >= l.VisibleRows() {
			break
		}
		y := l.ListY + i

		style := defaultStyle
		if r.levels[i] == 0 {
			style = style.Foreground(RgbDimText)
		}
		if i == r.selected {
			style = style.Background(RgbSelectionBg)
			fillRow(r.screen, l.ListX, y, l.ListWidth, style)
			r.screen.SetContent(l.ListX, y, constants.SelectionMarker, nil, style.Foreground(RgbMarker))
		}

		pipsX := l.ListX + l.ListWidth - int(effect.MaxLevel)
		drawText(r.screen, l.ListX+2, y, d.Name, style, pipsX-l.ListX-3)

		pipStyle := style.Foreground(LevelColor(r.levels[i]))
		for p := 0; p < int(effect.MaxLevel); p++ {
			pip := constants.PipEmpty
			if p < r.levels[i] {
				pip = constants.PipFilled
			}
			r.screen.SetContent(pipsX+p, y, pip, nil, pipStyle)
		}
	}
}

// drawPanel draws the selected effect's name, controls, level and description
func (r *TerminalRenderer) drawPanel(defaultStyle tcell.Style) {
	l := r.layout
	if len(r.defs) == 0 {
		return
	}
	level := r.levels[r.selected]

	drawText(r.screen, l.PanelX, l.NameY, r.defs[r.selected].Name, defaultStyle.Bold(true), l.PanelWidth)

	buttonStyle := defaultStyle.Background(RgbButtonBg).Foreground(RgbButton).Bold(true)
	drawText(r.screen, l.DecX, l.ButtonY, constants.ButtonDecrement, buttonStyle, constants.ButtonWidth)
	drawText(r.screen, l.IncX, l.ButtonY, constants.ButtonIncrement, buttonStyle, constants.ButtonWidth)

	levelText := fmt.Sprintf("%d / %d", level, effect.MaxLevel)
	pad := (constants.LevelTextWidth - len(levelText)) / 2
	drawText(r.screen, l.LevelX+pad, l.ButtonY, levelText, defaultStyle.Foreground(LevelColor(level)).Bold(true), constants.LevelTextWidth-pad)

	descStyle := defaultStyle.Foreground(LevelColor(level))
	for i, line := range wrapText(r.description, l.PanelWidth) {
		y := l.DescY + i
		if y >= l.ErrorY {
			break
		}
		drawText(r.screen, l.PanelX, y, line, descStyle, l.PanelWidth)
	}
}

func (r *TerminalRenderer) drawError() {
	if r.err == nil {
		return
	}
	style := tcell.StyleDefault.Background(RgbErrorBg).Foreground(RgbErrorText).Bold(true)
	fillRow(r.screen, 0, r.layout.ErrorY, r.layout.Width, style)
	drawText(r.screen, 0, r.layout.ErrorY, constants.ErrorLabel+r.err.Error(), style, r.layout.Width)
}

func (r *TerminalRenderer) drawHelp(defaultStyle tcell.Style) {
	drawText(r.screen, 0, r.layout.HelpY, constants.HelpText, defaultStyle.Foreground(RgbDimText), r.layout.Width)
}
