package worldgen

// generateCoastAndOcean marks every water tile that touches land as Coast,
// then runs the stochastic expansion iterations.
//
// At this point every tile still carries the default Ocean base terrain,
// including land tiles; the climate pass overwrites land bases later.
func (m *TileMap) generateCoastAndOcean(params *MapParameters) {
	for tile := 0; tile < m.TileCount(); tile++ {
		if m.terrainType[tile] != TerrainWater {
			continue
		}
		for _, neighbor := range m.grid.Neighbors(tile) {
			if m.terrainType[neighbor] != TerrainWater {
				m.baseTerrain[tile] = BaseCoast
				break
			}
		}
	}

	m.expandCoast(params)
}

// expandCoast runs one promotion sweep per entry of CoastExpandChance. Each
// sweep collects its promotion set first and applies it afterwards, so
// tiles promoted within a sweep cannot seed further promotions in the same
// sweep.
func (m *TileMap) expandCoast(params *MapParameters) {
	for _, chance := range params.CoastExpandChance {
		var expansion []int
		for tile := 0; tile < m.TileCount(); tile++ {
			if m.terrainType[tile] != TerrainWater || m.baseTerrain[tile] == BaseCoast {
				continue
			}
			touchesCoast := false
			for _, neighbor := range m.grid.Neighbors(tile) {
				if m.baseTerrain[neighbor] == BaseCoast {
					touchesCoast = true
					break
				}
			}
			if touchesCoast && m.rng.Float64() < chance {
				expansion = append(expansion, tile)
			}
		}
		for _, tile := range expansion {
			m.baseTerrain[tile] = BaseCoast
		}
	}
}
