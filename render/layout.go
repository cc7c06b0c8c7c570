package render

import "github.com/lixenwraith/debuff-tracker/constants"

// Region identifies a clickable area of the frame
type Region int

const (
	RegionNone Region = iota
	RegionListRow
	RegionDecrement
	RegionIncrement
)

// Layout holds the frame geometry for a screen size and list length
type Layout struct {
	Width, Height int

	ListX, ListY, ListWidth, ListRows int

	PanelX, PanelY, PanelWidth int
	NameY                      int
	ButtonY                    int
	DecX, LevelX, IncX         int
	DescY                      int

	ErrorY, HelpY int
}

// ComputeLayout places the list and detail panel for a w×h screen with rows effects
// The panel sits beside the list when it fits, otherwise below it
func ComputeLayout(w, h, rows int) Layout {
	l := Layout{
		Width:     w,
		Height:    h,
		ListX:     constants.MarginX,
		ListY:     constants.ListY,
		ListWidth: constants.ListWidth,
		ListRows:  rows,
		HelpY:     h - 1,
		ErrorY:    h - 2,
	}

	sideX := l.ListX + l.ListWidth + constants.PanelGap
	if w-sideX-constants.MarginX >= constants.MinPanelWidth {
		l.PanelX = sideX
		l.PanelY = l.ListY
	} else {
		l.PanelX = l.ListX
		l.PanelY = l.ListY + rows + 1
	}
	l.PanelWidth = w - l.PanelX - constants.MarginX
	if l.PanelWidth < 1 {
		l.PanelWidth = 1
	}

	l.NameY = l.PanelY
	l.ButtonY = l.PanelY + 2
	l.DecX = l.PanelX
	l.LevelX = l.DecX + constants.ButtonWidth
	l.IncX = l.LevelX + constants.LevelTextWidth
	l.DescY = l.ButtonY + 2

	return l
}

// VisibleRows returns the list rows drawn above the error banner
func (l Layout) VisibleRows() int {
	return max(0, min(l.ListRows, l.ErrorY-l.ListY))
}

// HitTest maps a screen cell to a region; index is the list row for RegionListRow
// Rows clipped by the error banner are not clickable
func (l Layout) HitTest(x, y int) (Region, int) {
	if x >= l.ListX && x < l.ListX+l.ListWidth && y >= l.ListY && y < l.ListY+l.VisibleRows() {
		return RegionListRow, y - l.ListY
	}
	if y == l.ButtonY {
		if x >= l.DecX && x < l.DecX+constants.ButtonWidth {
			return RegionDecrement, 0
		}
		if x >= l.IncX && x < l.IncX+constants.ButtonWidth {
			return RegionIncrement, 0
		}
	}
	return RegionNone, 0
}
