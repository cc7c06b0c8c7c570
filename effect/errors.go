package effect

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEffect is returned when an id is absent from the registry
	ErrUnknownEffect = errors.New("unknown effect")
	// ErrDuplicateEffect is returned when a table repeats an id
	ErrDuplicateEffect = errors.New("duplicate effect")
	// ErrInvalidDefinition is returned for definitions missing an id, name or level text
	ErrInvalidDefinition = errors.New("invalid effect definition")
	// ErrLevelOutOfRange is returned when a level outside [MinLevel, MaxLevel] is described
	ErrLevelOutOfRange = errors.New("level out of range")
	// ErrEmptyTable is returned when a table has no effects
	ErrEmptyTable = errors.New("effect table is empty")
)

// UnknownEffectError carries the id that failed lookup
type UnknownEffectError struct {
	ID string
}

func (e *UnknownEffectError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownEffect, e.ID)
}

func (e *UnknownEffectError) Unwrap() error {
	return ErrUnknownEffect
}
