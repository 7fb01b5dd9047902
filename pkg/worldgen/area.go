package worldgen

import "sort"

// minAreaSize is the smallest area the merge pass leaves alone.
const minAreaSize = 7

// recalculateAreas relabels the connectivity areas from scratch: one BFS
// sweep per terrain class (water, flatland+hill, mountain), then the
// small-area merge. Area ids increment monotonically across sweeps.
func (m *TileMap) recalculateAreas() {
	m.areaSizes = make(map[int]int)
	for i := range m.areaID {
		m.areaID[i] = -1
	}

	var water, landPassable, mountain []int
	for tile := 0; tile < m.TileCount(); tile++ {
		switch m.terrainType[tile] {
		case TerrainWater:
			water = append(water, tile)
		case TerrainFlatland, TerrainHill:
			landPassable = append(landPassable, tile)
		case TerrainMountain:
			mountain = append(mountain, tile)
		}
	}

	m.labelAreas(water)
	m.labelAreas(landPassable)
	m.labelAreas(mountain)

	m.reassignSmallAreas()
}

// labelAreas flood-fills the connected components of the given tile set and
// assigns each a fresh area id. Tiles are visited in ascending index order
// so labelling is deterministic.
func (m *TileMap) labelAreas(tiles []int) {
	inSet := make(map[int]bool, len(tiles))
	for _, tile := range tiles {
		inSet[tile] = true
	}

	nextID := 0
	for id := range m.areaSizes {
		if id >= nextID {
			nextID = id + 1
		}
	}

	for _, start := range tiles {
		if m.areaID[start] != -1 {
			continue
		}
		size := 0
		queue := []int{start}
		m.areaID[start] = nextID
		for len(queue) > 0 {
			tile := queue[0]
			queue = queue[1:]
			size++
			for _, neighbor := range m.grid.Neighbors(tile) {
				if inSet[neighbor] && m.areaID[neighbor] == -1 {
					m.areaID[neighbor] = nextID
					queue = append(queue, neighbor)
				}
			}
		}
		m.areaSizes[nextID] = size
		nextID++
	}
}

// reassignSmallAreas merges every area smaller than minAreaSize into its
// largest neighboring area of the same water-ness, provided that neighbor
// is itself at least minAreaSize. Border tiles are visited in sorted order
// so the merge target is deterministic.
func (m *TileMap) reassignSmallAreas() {
	var smallIDs []int
	for id, size := range m.areaSizes {
		if size < minAreaSize {
			smallIDs = append(smallIDs, id)
		}
	}
	sort.Ints(smallIDs)

	for _, areaID := range smallIDs {
		var areaTiles []int
		for tile := 0; tile < m.TileCount(); tile++ {
			if m.areaID[tile] == areaID {
				areaTiles = append(areaTiles, tile)
			}
		}
		if len(areaTiles) == 0 {
			continue
		}
		areaIsWater := m.terrainType[areaTiles[0]] == TerrainWater

		inArea := make(map[int]bool, len(areaTiles))
		for _, tile := range areaTiles {
			inArea[tile] = true
		}

		borderSet := make(map[int]bool)
		for _, tile := range areaTiles {
			for _, neighbor := range m.grid.Neighbors(tile) {
				neighborIsWater := m.terrainType[neighbor] == TerrainWater
				if neighborIsWater == areaIsWater && !inArea[neighbor] {
					borderSet[neighbor] = true
				}
			}
		}
		borderTiles := make([]int, 0, len(borderSet))
		for tile := range borderSet {
			borderTiles = append(borderTiles, tile)
		}
		sort.Ints(borderTiles)

		// For equal sizes the later border tile wins, matching ordered
		// last-insert retention.
		bestSize := -1
		bestID := -1
		for _, tile := range borderTiles {
			id := m.areaID[tile]
			size := m.areaSizes[id]
			if size >= bestSize {
				bestSize = size
				bestID = id
			}
		}

		if bestID < 0 || bestSize < minAreaSize {
			continue
		}

		delete(m.areaSizes, areaID)
		m.areaSizes[bestID] += len(areaTiles)
		for _, tile := range areaTiles {
			m.areaID[tile] = bestID
		}
	}
}
