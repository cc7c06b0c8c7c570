package constants

// Application identity
const (
	AppName  = "debuff-tracker"
	AppTitle = " ТРЕКЕР ДЕБАФФОВ "
)

// UI Layout Constants
const (
	// MarginX is the left margin of the selection list
	MarginX = 2

	// ListY is the first row of the selection list (row 0 is the title bar)
	ListY = 2

	// ListWidth is the width of a selection list row including marker and pips
	ListWidth = 26

	// PanelGap separates the list from the detail panel
	PanelGap = 3

	// MinPanelWidth is the narrowest detail panel placed beside the list
	// Narrower screens stack the panel below the list
	MinPanelWidth = 24

	// ButtonWidth is the width of the [ - ] and [ + ] controls
	ButtonWidth = 5

	// LevelTextWidth is the width reserved between the buttons for "N / M"
	LevelTextWidth = 7
)

// UI Text
const (
	ButtonDecrement = "[ - ]"
	ButtonIncrement = "[ + ]"

	SelectionMarker = '▶'
	PipFilled       = '●'
	PipEmpty        = '○'

	HelpText   = " ↑↓/jk выбор  1-9 эффект  ←→/-+ уровень  q выход "
	ErrorLabel = " ОШИБКА: "
)
