package effect

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk layout of an effect table
type tableFile struct {
	NoEffect string       `yaml:"no_effect"`
	Effects  []effectFile `yaml:"effects"`
}

type effectFile struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Levels []string `yaml:"levels"`
}

// ParseTable decodes a YAML effect table
// Each effect must list exactly LevelCount level texts; validation of content is left to NewRegistry
func ParseTable(data []byte) (Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Table{}, fmt.Errorf("parsing effect table: %w", err)
	}

	t := Table{
		NoEffect: f.NoEffect,
		Effects:  make([]Definition, 0, len(f.Effects)),
	}
	for _, e := range f.Effects {
		if len(e.Levels) != LevelCount {
			return Table{}, fmt.Errorf("%w: %q has %d levels, want %d", ErrInvalidDefinition, e.ID, len(e.Levels), LevelCount)
		}
		d := Definition{ID: e.ID, Name: e.Name}
		copy(d.Levels[:], e.Levels)
		t.Effects = append(t.Effects, d)
	}
	return t, nil
}

// LoadTable reads a YAML effect table from path
// An empty path returns DefaultTable
func LoadTable(path string) (Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("reading effect table %s: %w", path, err)
	}

	t, err := ParseTable(data)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
