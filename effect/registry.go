package effect

import "fmt"

// Registry is an immutable, ordered set of effect definitions
type Registry struct {
	defs     []Definition
	index    map[string]int
	noEffect string
}

// NewRegistry validates t and builds a registry preserving table order
func NewRegistry(t Table) (*Registry, error) {
	if len(t.Effects) == 0 {
		return nil, ErrEmptyTable
	}

	r := &Registry{
		defs:     make([]Definition, 0, len(t.Effects)),
		index:    make(map[string]int, len(t.Effects)),
		noEffect: t.NoEffect,
	}
	if r.noEffect == "" {
		r.noEffect = DefaultNoEffect
	}

	for _, d := range t.Effects {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.index[d.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEffect, d.ID)
		}
		r.index[d.ID] = len(r.defs)
		r.defs = append(r.defs, d)
	}

	return r, nil
}

// Len returns the number of definitions
func (r *Registry) Len() int {
	return len(r.defs)
}

// First returns the first definition in table order
func (r *Registry) First() Definition {
	return r.defs[0]
}

// NoEffect returns the level-0 sentinel text
func (r *Registry) NoEffect() string {
	return r.noEffect
}

// Has reports whether id is registered
func (r *Registry) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Lookup returns the definition for id
func (r *Registry) Lookup(id string) (Definition, error) {
	i, ok := r.index[id]
	if !ok {
		return Definition{}, &UnknownEffectError{ID: id}
	}
	return r.defs[i], nil
}

// IDs returns all ids in table order
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.defs))
	for i, d := range r.defs {
		ids[i] = d.ID
	}
	return ids
}

// Definitions returns a copy of all definitions in table order
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Describe returns the text for id at level, or the sentinel at level 0
func (r *Registry) Describe(id string, level Level) (string, error) {
	d, err := r.Lookup(id)
	if err != nil {
		return "", err
	}
	if !level.Valid() {
		return "", fmt.Errorf("%w: %d", ErrLevelOutOfRange, level)
	}
	if text, ok := d.Text(level); ok {
		return text, nil
	}
	return r.noEffect, nil
}
