package effect

import (
	"bytes"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByName returns a copy of defs ordered by display name under tag's collation
// Equal names keep their original relative order
func SortByName(defs []Definition, tag language.Tag) []Definition {
	type keyed struct {
		key []byte
		def Definition
	}

	c := collate.New(tag, collate.IgnoreCase)
	buf := &collate.Buffer{}
	items := make([]keyed, len(defs))
	for i, d := range defs {
		// KeyFromString returns a slice into buf, copy before reuse
		items[i] = keyed{key: append([]byte(nil), c.KeyFromString(buf, d.Name)...), def: d}
		buf.Reset()
	}

	sort.SliceStable(items, func(i, j int) bool {
		return bytes.Compare(items[i].key, items[j].key) < 0
	})

	out := make([]Definition, len(items))
	for i, it := range items {
		out[i] = it.def
	}
	return out
}
