package worldgen

import (
	"testing"

	"github.com/opd-ai/worldgen/pkg/hexgrid"
)

func TestFeaturesRespectCatalogPlacement(t *testing.T) {
	params := testParams(t, 777, hexgrid.Pointy, MapTypeFractal)
	m := generateTestMap(t, params)
	rules := StandardRuleset()

	for tile := 0; tile < m.TileCount(); tile++ {
		feature := m.Feature(tile)
		if feature == FeatureNone {
			continue
		}
		// Wonder placement reshapes its neighborhood without revisiting
		// features, so those tiles are exempt.
		if m.NaturalWonder(tile) != "" || m.anyNeighborHasWonder(tile) {
			continue
		}

		switch feature {
		case FeatureIce:
			if m.TerrainType(tile) != TerrainWater {
				t.Errorf("ice on %v tile %d", m.TerrainType(tile), tile)
			}
		case FeatureFloodplain, FeatureOasis:
			if m.BaseTerrain(tile) != BaseDesert {
				t.Errorf("%v on %v tile %d", feature, m.BaseTerrain(tile), tile)
			}
			if m.TerrainType(tile) != TerrainFlatland {
				t.Errorf("%v on %v tile %d", feature, m.TerrainType(tile), tile)
			}
		case FeatureMarsh:
			if m.BaseTerrain(tile) != BaseGrassland {
				t.Errorf("marsh on %v tile %d", m.BaseTerrain(tile), tile)
			}
		case FeatureJungle:
			// Jungle converts its ground to plains on placement.
			if m.BaseTerrain(tile) != BasePlain {
				t.Errorf("jungle on %v tile %d, want Plain", m.BaseTerrain(tile), tile)
			}
		case FeatureForest:
			if rule := rules.Feature("Forest"); !rule.AllowsBase(m.BaseTerrain(tile)) {
				t.Errorf("forest on %v tile %d", m.BaseTerrain(tile), tile)
			}
		}

		if m.TerrainType(tile) == TerrainMountain {
			t.Errorf("feature %v on mountain tile %d", feature, tile)
		}
	}
}

func TestFloodplainFollowsRivers(t *testing.T) {
	params := testParams(t, 777, hexgrid.Pointy, MapTypeFractal)
	m := generateTestMap(t, params)

	for tile := 0; tile < m.TileCount(); tile++ {
		if m.Feature(tile) == FeatureFloodplain && !m.hasRiverOnAnyEdge(tile) {
			t.Errorf("floodplain tile %d touches no river", tile)
		}
	}
}

func TestIceStaysNearPoles(t *testing.T) {
	params := testParams(t, 777, hexgrid.Pointy, MapTypeFractal)
	m := generateTestMap(t, params)

	// Placement gates on perturbed latitude above 0.78; allow the
	// perturbation margin.
	for tile := 0; tile < m.TileCount(); tile++ {
		if m.Feature(tile) == FeatureIce && m.grid.TileLatitude(tile) < 0.7 {
			t.Errorf("ice at latitude %.2f on tile %d", m.grid.TileLatitude(tile), tile)
		}
	}
}

func TestClusterScoreAdjustment(t *testing.T) {
	tests := []struct {
		neighbors int
		want      int
	}{
		{0, 0}, {1, 50}, {2, 150}, {3, 150}, {4, -50}, {5, -200}, {6, -200},
	}
	for _, tt := range tests {
		if got := clusterScoreAdjustment(tt.neighbors); got != tt.want {
			t.Errorf("clusterScoreAdjustment(%d) = %d, want %d", tt.neighbors, got, tt.want)
		}
	}
}
