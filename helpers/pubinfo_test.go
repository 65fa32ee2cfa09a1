package helpers

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParsePubInfo(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		publisher string
		city      string
		year      int
	}{
		{
			name:      "publisher with city abbreviation",
			raw:       "Юнити-Дана, М, 1999",
			publisher: "Юнити-Дана",
			city:      "Москва",
			year:      1999,
		},
		{
			name: "city only",
			raw:  "Новоуральск, 1999",
			city: "Новоуральск",
			year: 1999,
		},
		{
			name: "latin city",
			raw:  "Cambridge, 1999",
			city: "Cambridge",
			year: 1999,
		},
		{
			name:      "compound abbreviation",
			raw:       "АО АСКОН, М. СПб, 1999",
			publisher: "АО АСКОН",
			city:      "Санкт-Петербург",
			year:      1999,
		},
		{
			name:      "no-break space inside abbreviation",
			raw:       "АО АСКОН, М. СПб, 1999",
			publisher: "АО АСКОН",
			city:      "Санкт-Петербург",
			year:      1999,
		},
		{
			name:      "publisher keyword",
			raw:       "Изд-во Наука, Новосибирск, 2001",
			publisher: "Изд-во Наука",
			city:      "Новосибирск",
			year:      2001,
		},
		{
			name:      "quoted publisher",
			raw:       "«Высшая школа», М., 1985",
			publisher: "Высшая школа",
			city:      "Москва",
			year:      1985,
		},
		{
			name:      "no year",
			raw:       "Юнити-Дана, СПб",
			publisher: "Юнити-Дана",
			city:      "Санкт-Петербург",
		},
		{
			name: "year only",
			raw:  "1999",
			year: 1999,
		},
		{
			name: "empty",
			raw:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePubInfo(tt.raw)
			if got.Publisher != tt.publisher {
				t.Errorf("Publisher = %q, want %q", got.Publisher, tt.publisher)
			}
			if got.City != tt.city {
				t.Errorf("City = %q, want %q", got.City, tt.city)
			}
			if got.Year != tt.year {
				t.Errorf("Year = %d, want %d", got.Year, tt.year)
			}
		})
	}
}

func TestLoadPubHeuristics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heuristics.yaml")
	content := `city_abbreviations:
  "Е": "Екатеринбург"
publisher_hints:
  - "изд"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	h, err := LoadPubHeuristics(path)
	if err != nil {
		t.Fatalf("LoadPubHeuristics: %v", err)
	}

	got := h.Parse("Изд-во Уральское, Е, 2005")
	if got.City != "Екатеринбург" {
		t.Errorf("City = %q, want Екатеринбург", got.City)
	}
	if got.Publisher != "Изд-во Уральское" {
		t.Errorf("Publisher = %q, want Изд-во Уральское", got.Publisher)
	}

	// Empty sections fall back to defaults.
	if len(h.CitySuffixes) == 0 {
		t.Error("CitySuffixes not defaulted")
	}
}

func TestLoadPubHeuristicsMissingFile(t *testing.T) {
	if _, err := LoadPubHeuristics(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
