package worldgen

// generateLakes reclassifies every water area no larger than
// LakeMaxAreaSize as Lake. Runs after the area labeller so the sizes are
// current.
func (m *TileMap) generateLakes(params *MapParameters) {
	for tile := 0; tile < m.TileCount(); tile++ {
		if m.terrainType[tile] != TerrainWater {
			continue
		}
		if m.areaSizes[m.areaID[tile]] <= params.LakeMaxAreaSize {
			m.baseTerrain[tile] = BaseLake
		}
	}
}

// addLakes seeds additional inland lakes on qualifying dry tiles. Each
// candidate converts with chance 1/25; while the large-lake quota lasts,
// a successful seed also tries to grow into its qualifying neighbors.
func (m *TileMap) addLakes(params *MapParameters) {
	const lakePlotRand = 25

	largeLakesAdded := 0
	for tile := 0; tile < m.TileCount(); tile++ {
		if !m.canAddLake(tile) || m.rng.Intn(lakePlotRand) != 0 {
			continue
		}
		if largeLakesAdded < params.LargeLakeNum {
			if m.addMoreLake(tile) {
				largeLakesAdded++
			}
		}
		m.terrainType[tile] = TerrainWater
		m.baseTerrain[tile] = BaseLake
		m.feature[tile] = FeatureNone
	}
}

// addMoreLake tries to extend a seeded lake into each qualifying neighbor
// with decreasing probability and reports whether the result is large
// (more than two extra tiles).
func (m *TileMap) addMoreLake(tile int) bool {
	grown := 0
	var lakeTiles []int
	for _, neighbor := range m.grid.Neighbors(tile) {
		if m.canAddLake(neighbor) && m.rng.Intn(grown+4) < 3 {
			lakeTiles = append(lakeTiles, neighbor)
			grown++
		}
	}
	for _, t := range lakeTiles {
		m.terrainType[t] = TerrainWater
		m.baseTerrain[t] = BaseLake
		m.feature[t] = FeatureNone
	}
	return grown > 2
}

// canAddLake reports whether a tile can become a seeded lake: dry, no
// wonder, not beside a river, and every neighbor dry and wonder-free.
func (m *TileMap) canAddLake(tile int) bool {
	if m.terrainType[tile] == TerrainWater ||
		m.naturalWonder[tile] != "" ||
		m.hasRiverOnAnyEdge(tile) {
		return false
	}
	for _, neighbor := range m.grid.Neighbors(tile) {
		if m.terrainType[neighbor] == TerrainWater || m.naturalWonder[neighbor] != "" {
			return false
		}
	}
	return true
}
