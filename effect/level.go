package effect

// Level is the severity of an effect, 0 means inactive
type Level int

const (
	MinLevel Level = 0
	MaxLevel Level = 3

	// LevelCount is the number of stored descriptions per effect (levels 1..MaxLevel)
	LevelCount = int(MaxLevel)
)

// Inc returns the next level, saturating at MaxLevel
func (l Level) Inc() Level {
	if l >= MaxLevel {
		return MaxLevel
	}
	return l + 1
}

// Dec returns the previous level, saturating at MinLevel
func (l Level) Dec() Level {
	if l <= MinLevel {
		return MinLevel
	}
	return l - 1
}

// Valid reports whether l lies within [MinLevel, MaxLevel]
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}
