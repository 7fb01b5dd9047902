package worldgen

import (
	"testing"

	"github.com/opd-ai/worldgen/pkg/hexgrid"
)

func TestStartingLocations(t *testing.T) {
	params := testParams(t, 8888, hexgrid.Pointy, MapTypeFractal)
	params.CivilizationNum = 6
	params.CityStateNum = 4
	m := generateTestMap(t, params)
	rules := StandardRuleset()

	civs := m.StartingCivilizations()
	states := m.StartingCityStates()
	if len(civs) == 0 {
		t.Fatal("no civilization starts assigned")
	}
	if len(civs) > params.CivilizationNum {
		t.Errorf("assigned %d civilization starts, want at most %d", len(civs), params.CivilizationNum)
	}
	if len(states) > params.CityStateNum {
		t.Errorf("assigned %d city-state starts, want at most %d", len(states), params.CityStateNum)
	}

	known := make(map[string]bool)
	for _, name := range rules.Civilizations {
		known[name] = true
	}
	for _, name := range rules.CityStates {
		known[name] = true
	}

	var allStarts []int
	for tile, name := range civs {
		if !known[name] {
			t.Errorf("start tile %d assigned unknown name %q", tile, name)
		}
		allStarts = append(allStarts, tile)
	}
	for tile, name := range states {
		if !known[name] {
			t.Errorf("start tile %d assigned unknown name %q", tile, name)
		}
		if _, taken := civs[tile]; taken {
			t.Errorf("tile %d assigned to both a civilization and a city-state", tile)
		}
		allStarts = append(allStarts, tile)
	}

	for _, tile := range allStarts {
		if tt := m.TerrainType(tile); tt != TerrainFlatland && tt != TerrainHill {
			t.Errorf("start tile %d on %v, want passable land", tile, tt)
		}
		if m.IsImpassable(tile, rules) {
			t.Errorf("start tile %d is impassable", tile)
		}
	}

	// Starts never sit on adjacent tiles.
	for i, a := range allStarts {
		for _, b := range allStarts[i+1:] {
			if hexgrid.Distance(m.grid.TileToHex(a), m.grid.TileToHex(b)) < 2 {
				t.Errorf("starts %d and %d are adjacent", a, b)
			}
		}
	}
}

func TestStartingLocationsAreDeterministic(t *testing.T) {
	params := testParams(t, 8888, hexgrid.Pointy, MapTypeFractal)
	a := generateTestMap(t, params)
	b := generateTestMap(t, params)

	if len(a.StartingCivilizations()) != len(b.StartingCivilizations()) {
		t.Fatal("civilization start counts differ between runs")
	}
	for tile, name := range a.StartingCivilizations() {
		if b.StartingCivilizations()[tile] != name {
			t.Errorf("tile %d assigned %q in one run, %q in the other", tile, name, b.StartingCivilizations()[tile])
		}
	}
}
