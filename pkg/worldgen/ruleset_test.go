package worldgen

import (
	"reflect"
	"testing"
)

func TestParseUnique(t *testing.T) {
	tests := []struct {
		text            string
		wantPlaceholder string
		wantParams      []string
	}{
		{
			text:            "Must be adjacent to [2] [Coast] tiles",
			wantPlaceholder: "Must be adjacent to [] [] tiles",
			wantParams:      []string{"2", "Coast"},
		},
		{
			text:            "Must be adjacent to [3] to [6] [Elevated] tiles",
			wantPlaceholder: "Must be adjacent to [] to [] [] tiles",
			wantParams:      []string{"3", "6", "Elevated"},
		},
		{
			text:            "Must not be on [1] largest landmasses",
			wantPlaceholder: "Must not be on [] largest landmasses",
			wantParams:      []string{"1"},
		},
		{
			text:            "No parameters here",
			wantPlaceholder: "No parameters here",
			wantParams:      nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ParseUnique(tt.text)
			if got.PlaceholderText != tt.wantPlaceholder {
				t.Errorf("placeholder = %q, want %q", got.PlaceholderText, tt.wantPlaceholder)
			}
			if !reflect.DeepEqual(got.Params, tt.wantParams) {
				t.Errorf("params = %v, want %v", got.Params, tt.wantParams)
			}
		})
	}
}

func TestStandardRulesetCompleteness(t *testing.T) {
	rules := StandardRuleset()

	for _, name := range requiredFeatures {
		if _, ok := rules.Features[name]; !ok {
			t.Errorf("standard catalog missing feature %q", name)
		}
	}
	if len(rules.NaturalWonders) == 0 {
		t.Error("standard catalog has no natural wonders")
	}
	if len(rules.Civilizations) == 0 || len(rules.CityStates) == 0 {
		t.Error("standard catalog has no starting names")
	}

	for name, rule := range rules.NaturalWonders {
		if rule.Name != name {
			t.Errorf("wonder %q carries mismatched name %q", name, rule.Name)
		}
		if len(rule.OccursOnType) == 0 || len(rule.OccursOnBase) == 0 {
			t.Errorf("wonder %q has empty occurrence sets", name)
		}
	}
}

func TestFeatureRuleAllows(t *testing.T) {
	rule := StandardRuleset().Feature("Floodplain")
	if !rule.AllowsType(TerrainFlatland) || rule.AllowsType(TerrainHill) {
		t.Error("floodplain type constraints wrong")
	}
	if !rule.AllowsBase(BaseDesert) || rule.AllowsBase(BaseGrassland) {
		t.Error("floodplain base constraints wrong")
	}
}

func TestMissingCatalogEntryPanics(t *testing.T) {
	rules := StandardRuleset()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing catalog entry")
		}
	}()
	_ = rules.Feature("Kelp")
}
