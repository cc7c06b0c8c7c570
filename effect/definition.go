package effect

import (
	"fmt"
	"strings"
)

// Definition is a named status effect and its per-level texts
// Levels[i] describes severity i+1; level 0 has no stored text
type Definition struct {
	ID     string
	Name   string
	Levels [LevelCount]string
}

// Validate checks that id, name and every level text are present
func (d Definition) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidDefinition)
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: %q has no name", ErrInvalidDefinition, d.ID)
	}
	for i, text := range d.Levels {
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("%w: %q has no text for level %d", ErrInvalidDefinition, d.ID, i+1)
		}
	}
	return nil
}

// Text returns the stored text for level 1..MaxLevel
// ok is false for level 0 and out-of-range levels
func (d Definition) Text(level Level) (text string, ok bool) {
	if level <= MinLevel || level > MaxLevel {
		return "", false
	}
	return d.Levels[level-1], true
}
