package worldgen

import "math"

// addFeatures places ice, floodplains, oases, marsh, jungle, and forest in
// one deterministic sweep over the tiles. The land features are quota-bound
// as a percentage of land tiles seen so far, with rainfall shifting the
// quotas.
func (m *TileMap) addFeatures(params *MapParameters, rules *Ruleset) {
	var rainfall int
	switch params.Rainfall {
	case RainfallArid:
		rainfall = -4
	case RainfallWet:
		rainfall = 4
	case RainfallRandom:
		rainfall = m.rng.Intn(11) - 5
	}

	const equator = 0
	junglePercent := 12 + rainfall
	forestPercent := 18 + rainfall
	marshPercent := 3 + rainfall/2
	oasisPercent := 1 + rainfall/4

	jungleBottom := equator - int(math.Ceil(float64(junglePercent)*0.5))
	jungleTop := equator + int(math.Ceil(float64(junglePercent)*0.5))

	iceRule := rules.Feature("Ice")
	floodplainRule := rules.Feature("Floodplain")
	oasisRule := rules.Feature("Oasis")
	marshRule := rules.Feature("Marsh")
	jungleRule := rules.Feature("Jungle")
	forestRule := rules.Feature("Forest")

	forestCount := 0
	jungleCount := 0
	marshCount := 0
	oasisCount := 0
	numLandPlots := 0

	// overQuota reports whether placing another feature would exceed its
	// share of the land seen so far. Recomputed per placement because
	// numLandPlots keeps growing during the sweep.
	overQuota := func(count, maxPercent int) bool {
		return int(math.Ceil(float64(count)*100/float64(numLandPlots))) > maxPercent
	}

	for tile := 0; tile < m.TileCount(); tile++ {
		latitude := m.grid.TileLatitude(tile)
		neighbors := m.grid.Neighbors(tile)

		if m.IsImpassable(tile, rules) {
			continue
		}

		if m.terrainType[tile] == TerrainWater {
			if m.hasRiverOnAnyEdge(tile) ||
				!iceRule.AllowsType(m.terrainType[tile]) ||
				!iceRule.AllowsBase(m.baseTerrain[tile]) {
				continue
			}
			if latitude > 0.78 {
				score := float64(m.rng.Intn(100))
				score += latitude * 100
				for _, neighbor := range neighbors {
					if m.terrainType[neighbor] != TerrainWater {
						score /= 2
						break
					}
				}
				iceNeighbors := 0
				for _, neighbor := range neighbors {
					if m.feature[neighbor] == FeatureIce {
						iceNeighbors++
					}
				}
				score += 10 * float64(iceNeighbors)
				if score > 130 {
					m.feature[tile] = FeatureIce
				}
			}
			continue
		}

		numLandPlots++

		if m.hasRiverOnAnyEdge(tile) &&
			floodplainRule.AllowsType(m.terrainType[tile]) &&
			floodplainRule.AllowsBase(m.baseTerrain[tile]) {
			m.feature[tile] = FeatureFloodplain
			continue
		}

		if oasisRule.AllowsType(m.terrainType[tile]) &&
			oasisRule.AllowsBase(m.baseTerrain[tile]) &&
			!overQuota(oasisCount, oasisPercent) &&
			m.rng.Intn(4) == 1 {
			m.feature[tile] = FeatureOasis
			oasisCount++
			continue
		}

		if marshRule.AllowsType(m.terrainType[tile]) &&
			marshRule.AllowsBase(m.baseTerrain[tile]) &&
			!overQuota(marshCount, marshPercent) {
			score := 300 + clusterScoreAdjustment(m.featureNeighborCount(neighbors, FeatureMarsh))
			if m.rng.Intn(300) <= score {
				m.feature[tile] = FeatureMarsh
				marshCount++
				continue
			}
		}

		if jungleRule.AllowsType(m.terrainType[tile]) &&
			jungleRule.AllowsBase(m.baseTerrain[tile]) &&
			!overQuota(jungleCount, junglePercent) &&
			latitude >= float64(jungleBottom)/100 &&
			latitude <= float64(jungleTop)/100 {
			score := 300 + clusterScoreAdjustment(m.featureNeighborCount(neighbors, FeatureJungle))
			if m.rng.Intn(300) <= score {
				m.feature[tile] = FeatureJungle

				// Jungle flattens its ground to plains; hills over
				// grassland or plains keep their relief.
				if m.terrainType[tile] == TerrainHill &&
					(m.baseTerrain[tile] == BaseGrassland || m.baseTerrain[tile] == BasePlain) {
					m.baseTerrain[tile] = BasePlain
				} else {
					m.terrainType[tile] = TerrainFlatland
					m.baseTerrain[tile] = BasePlain
				}

				jungleCount++
				continue
			}
		}

		if forestRule.AllowsType(m.terrainType[tile]) &&
			forestRule.AllowsBase(m.baseTerrain[tile]) &&
			!overQuota(forestCount, forestPercent) {
			score := 300 + clusterScoreAdjustment(m.featureNeighborCount(neighbors, FeatureForest))
			if m.rng.Intn(300) <= score {
				m.feature[tile] = FeatureForest
				forestCount++
				continue
			}
		}
	}
}

// featureNeighborCount counts neighbors carrying the feature.
func (m *TileMap) featureNeighborCount(neighbors []int, f Feature) int {
	count := 0
	for _, neighbor := range neighbors {
		if m.feature[neighbor] == f {
			count++
		}
	}
	return count
}

// clusterScoreAdjustment rewards small clusters of a feature and punishes
// saturation.
func clusterScoreAdjustment(neighborCount int) int {
	switch neighborCount {
	case 0:
		return 0
	case 1:
		return 50
	case 2, 3:
		return 150
	case 4:
		return -50
	default:
		return -200
	}
}
