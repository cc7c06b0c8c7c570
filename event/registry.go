package event

import "strconv"

var typeToName = map[EventType]string{
	EventNone:               "None",
	EventSelectionChanged:   "SelectionChanged",
	EventIncrementRequested: "IncrementRequested",
	EventDecrementRequested: "DecrementRequested",
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "EventType(" + strconv.Itoa(int(et)) + ")"
}

// String implements fmt.Stringer
func (et EventType) String() string {
	return GetEventName(et)
}
