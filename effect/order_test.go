package effect

import (
	"testing"

	"golang.org/x/text/language"
)

func TestSortByNameRussian(t *testing.T) {
	defs := DefaultTable().Effects
	sorted := SortByName(defs, language.Russian)

	want := []string{"Безумие", "Истощение", "Кровотечение", "Отравление", "Страх", "Травма"}
	if len(sorted) != len(want) {
		t.Fatalf("Expected %d definitions, got %d", len(want), len(sorted))
	}
	for i, name := range want {
		if sorted[i].Name != name {
			t.Errorf("sorted[%d] = %q, want %q", i, sorted[i].Name, name)
		}
	}

	if defs[0].ID != "Fear" {
		t.Error("SortByName modified its input")
	}
}

func TestSortByNameIgnoresCaseAndIsStable(t *testing.T) {
	defs := []Definition{
		{ID: "1", Name: "beta"},
		{ID: "2", Name: "Gamma"},
		{ID: "3", Name: "Alpha"},
		{ID: "4", Name: "beta"},
	}

	sorted := SortByName(defs, language.English)

	wantIDs := []string{"3", "1", "4", "2"}
	for i, id := range wantIDs {
		if sorted[i].ID != id {
			t.Errorf("sorted[%d].ID = %q, want %q", i, sorted[i].ID, id)
		}
	}
}
