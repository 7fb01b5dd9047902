package worldgen

import "github.com/opd-ai/worldgen/pkg/hexgrid"

// startCandidate is a potential starting tile with its fertility score.
type startCandidate struct {
	tile      int
	fertility float64
}

// assignStartingLocations picks starting tiles for civilizations and then
// city-states: fertile, passable land tiles chosen by fertility times
// spacing from already-assigned starts. Names come from the catalog lists
// in order; the pass is fully deterministic and draws nothing from the RNG.
func (m *TileMap) assignStartingLocations(params *MapParameters, rules *Ruleset) {
	civNum := params.CivilizationNum
	if civNum <= 0 {
		civNum = len(rules.Civilizations)
	}
	civNum = minInt(civNum, len(rules.Civilizations))

	cityStateNum := params.CityStateNum
	if cityStateNum <= 0 {
		cityStateNum = len(rules.CityStates)
	}
	cityStateNum = minInt(cityStateNum, len(rules.CityStates))

	candidates := m.startCandidates(rules)

	used := make(map[int]bool)
	var chosen []int

	pick := func() int {
		bestScore := -1.0
		bestTile := hexgrid.NoTile
		for _, c := range candidates {
			if used[c.tile] {
				continue
			}
			score := c.fertility
			if len(chosen) > 0 {
				closest := 1 << 30
				for _, t := range chosen {
					d := hexgrid.Distance(m.grid.TileToHex(c.tile), m.grid.TileToHex(t))
					if d < closest {
						closest = d
					}
				}
				score *= float64(closest) / float64(m.grid.Width+m.grid.Height)
			}
			if score > bestScore {
				bestScore = score
				bestTile = c.tile
			}
		}
		if bestTile == hexgrid.NoTile {
			return hexgrid.NoTile
		}
		used[bestTile] = true
		for _, neighbor := range m.grid.Neighbors(bestTile) {
			used[neighbor] = true
		}
		chosen = append(chosen, bestTile)
		return bestTile
	}

	for i := 0; i < civNum; i++ {
		tile := pick()
		if tile == hexgrid.NoTile {
			break
		}
		m.startingCivilizations[tile] = rules.Civilizations[i]
	}
	for i := 0; i < cityStateNum; i++ {
		tile := pick()
		if tile == hexgrid.NoTile {
			break
		}
		m.startingCityStates[tile] = rules.CityStates[i]
	}
}

// startCandidates scores every passable flatland or hill tile by the
// yields of its two-ring surroundings plus freshwater and coastal bonuses.
func (m *TileMap) startCandidates(rules *Ruleset) []startCandidate {
	var candidates []startCandidate
	for tile := 0; tile < m.TileCount(); tile++ {
		if m.terrainType[tile] != TerrainFlatland && m.terrainType[tile] != TerrainHill {
			continue
		}
		if m.IsImpassable(tile, rules) || m.naturalWonder[tile] != "" {
			continue
		}

		fertility := 0.0
		for _, t := range m.grid.TilesInDistance(tile, 2) {
			fertility += tileYield(m.terrainType[t], m.baseTerrain[t], m.feature[t])
		}
		if m.IsFreshwater(tile) {
			fertility += 6
		}
		if m.IsCoastalLand(tile) {
			fertility += 3
		}

		if fertility > 0 {
			candidates = append(candidates, startCandidate{tile: tile, fertility: fertility})
		}
	}
	return candidates
}

// tileYield is a coarse food-and-production proxy for start scoring.
func tileYield(t TerrainType, b BaseTerrain, f Feature) float64 {
	if t == TerrainMountain {
		return 0
	}
	var yield float64
	switch b {
	case BaseGrassland:
		yield = 2
	case BasePlain:
		yield = 1.5
	case BaseTundra:
		yield = 0.5
	case BaseCoast, BaseLake:
		yield = 1
	case BaseOcean:
		yield = 0.5
	}
	switch f {
	case FeatureForest, FeatureJungle:
		yield += 0.5
	case FeatureOasis, FeatureFloodplain:
		yield += 1
	case FeatureIce:
		yield = 0
	}
	if t == TerrainHill {
		yield += 0.5
	}
	return yield
}
