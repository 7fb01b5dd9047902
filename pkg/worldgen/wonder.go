package worldgen

import (
	"sort"
	"strconv"

	"github.com/opd-ai/worldgen/pkg/hexgrid"
)

// wonderCandidate is a tile a wonder may be placed on, with its running
// spacing score.
type wonderCandidate struct {
	tile  int
	score int
}

// placeNaturalWonders collects candidate tiles per catalog wonder, walks a
// deterministically shuffled wonder list, and places NaturalWonderNum
// wonders by spacing-score argmax, mutating terrain per each wonder's rule.
func (m *TileMap) placeNaturalWonders(params *MapParameters, rules *Ruleset) {
	wonderNames := make([]string, 0, len(rules.NaturalWonders))
	for name := range rules.NaturalWonders {
		wonderNames = append(wonderNames, name)
	}
	sort.Strings(wonderNames)

	landAreas := m.landAreasBySizeDescending()

	candidates := make(map[string][]wonderCandidate)
	for tile := 0; tile < m.TileCount(); tile++ {
		for _, name := range wonderNames {
			rule := rules.NaturalWonders[name]
			if name == "Great Barrier Reef" {
				if m.isGreatBarrierReefSite(tile) {
					candidates[name] = append(candidates[name], wonderCandidate{tile: tile, score: 1})
				}
				continue
			}
			if m.IsFreshwater(tile) != rule.IsFreshWater {
				continue
			}
			if !rule.AllowsType(m.terrainType[tile]) || !rule.AllowsBase(m.baseTerrain[tile]) {
				continue
			}
			if !m.wonderUniquesHold(tile, rule, landAreas) {
				continue
			}
			candidates[name] = append(candidates[name], wonderCandidate{tile: tile, score: 1})
		}
	}

	// The candidate map's key order is arbitrary; sort before shuffling so
	// the shuffled order depends only on the RNG stream.
	selected := make([]string, 0, len(candidates))
	for name := range candidates {
		selected = append(selected, name)
	}
	sort.Strings(selected)
	m.rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})

	placed := 0
	var placedTiles []int
	for _, name := range selected {
		if placed >= params.NaturalWonderNum {
			break
		}

		list := candidates[name]
		for i := range list {
			closest := 1000000
			for _, placedTile := range placedTiles {
				d := hexgrid.Distance(m.grid.TileToHex(list[i].tile), m.grid.TileToHex(placedTile))
				if d < closest {
					closest = d
				}
			}
			if closest <= 10 {
				list[i].score = 100 * closest
			} else {
				list[i].score = 1000 + (closest - 10)
			}
			list[i].score += m.rng.Intn(100)
		}

		// Ties go to the later candidate in tile order.
		best := list[0]
		for _, c := range list[1:] {
			if c.score >= best.score {
				best = c
			}
		}

		if containsTile(placedTiles, best.tile) {
			continue
		}

		rule := rules.NaturalWonders[name]
		m.feature[best.tile] = FeatureNone

		switch name {
		case "Great Barrier Reef":
			neighbor := m.grid.Neighbor(best.tile, m.grid.EdgeDirections()[1])
			for _, t := range m.grid.Neighbors(best.tile) {
				m.terrainType[t] = TerrainWater
				m.baseTerrain[t] = BaseCoast
			}
			for _, t := range m.grid.Neighbors(neighbor) {
				m.terrainType[t] = TerrainWater
				m.baseTerrain[t] = BaseCoast
			}
			m.naturalWonder[best.tile] = name
			m.naturalWonder[neighbor] = name
			placedTiles = append(placedTiles, best.tile, neighbor)
		case "Rock of Gibraltar":
			for _, t := range m.grid.Neighbors(best.tile) {
				if m.terrainType[t] == TerrainWater {
					m.baseTerrain[t] = BaseCoast
				} else {
					m.terrainType[t] = TerrainMountain
				}
			}
			m.terrainType[best.tile] = TerrainFlatland
			m.baseTerrain[best.tile] = BaseGrassland
			m.naturalWonder[best.tile] = name
			placedTiles = append(placedTiles, best.tile)
		default:
			if rule.TurnsIntoType != nil {
				m.terrainType[best.tile] = *rule.TurnsIntoType
			}
			if rule.TurnsIntoBase != nil {
				m.baseTerrain[best.tile] = *rule.TurnsIntoBase
			}
			m.naturalWonder[best.tile] = name
			placedTiles = append(placedTiles, best.tile)
		}
		placed++
	}

	m.rebaseWonderNeighborhoods(placedTiles)
}

// isGreatBarrierReefSite checks the reef's bespoke geometry: the tile and
// its neighbor along the second edge direction must share exactly eight
// distinct neighbors, all ice-free non-lake water, at least four of them
// coast.
func (m *TileMap) isGreatBarrierReefSite(tile int) bool {
	neighbor := m.grid.Neighbor(tile, m.grid.EdgeDirections()[1])
	if neighbor == hexgrid.NoTile {
		return false
	}

	surrounding := make(map[int]bool)
	for _, t := range m.grid.Neighbors(tile) {
		surrounding[t] = true
	}
	for _, t := range m.grid.Neighbors(neighbor) {
		surrounding[t] = true
	}
	delete(surrounding, tile)
	delete(surrounding, neighbor)

	if len(surrounding) != 8 {
		return false
	}
	coastCount := 0
	for t := range surrounding {
		if m.terrainType[t] != TerrainWater ||
			m.baseTerrain[t] == BaseLake ||
			m.feature[t] == FeatureIce {
			return false
		}
		if m.baseTerrain[t] == BaseCoast {
			coastCount++
		}
	}
	return coastCount >= 4
}

// wonderUniquesHold evaluates the wonder's unique constraints on the tile.
// Unrecognized placeholders hold vacuously.
func (m *TileMap) wonderUniquesHold(tile int, rule *WonderRule, landAreas []areaIDAndSize) bool {
	for _, text := range rule.Uniques {
		unique := ParseUnique(text)
		switch unique.PlaceholderText {
		case "Must be adjacent to [] [] tiles":
			want, _ := strconv.Atoi(unique.Params[0])
			if m.neighborFilterCount(tile, unique.Params[1]) != want {
				return false
			}
		case "Must be adjacent to [] to [] [] tiles":
			lo, _ := strconv.Atoi(unique.Params[0])
			hi, _ := strconv.Atoi(unique.Params[1])
			count := m.neighborFilterCount(tile, unique.Params[2])
			if count < lo || count > hi {
				return false
			}
		case "Must not be on [] largest landmasses":
			index, _ := strconv.Atoi(unique.Params[0])
			if index < len(landAreas) && landAreas[index].id == m.areaID[tile] {
				return false
			}
		case "Must be on [] largest landmasses":
			index, _ := strconv.Atoi(unique.Params[0])
			if index >= len(landAreas) || landAreas[index].id != m.areaID[tile] {
				return false
			}
		}
	}
	return true
}

// neighborFilterCount counts neighbors matching a wonder filter.
func (m *TileMap) neighborFilterCount(tile int, filter string) int {
	count := 0
	for _, neighbor := range m.grid.Neighbors(tile) {
		if m.matchesWonderFilter(neighbor, filter) {
			count++
		}
	}
	return count
}

// matchesWonderFilter matches a tile against a wonder filter: "Elevated",
// "Land", or a terrain type, base terrain, or feature name.
func (m *TileMap) matchesWonderFilter(tile int, filter string) bool {
	switch filter {
	case "Elevated":
		return m.terrainType[tile] == TerrainMountain || m.terrainType[tile] == TerrainHill
	case "Land":
		return m.terrainType[tile] != TerrainWater
	default:
		if m.terrainType[tile].String() == filter || m.baseTerrain[tile].String() == filter {
			return true
		}
		f := m.feature[tile]
		return f != FeatureNone && f.String() == filter
	}
}

// areaIDAndSize pairs a land area id with its size for landmass-rank
// constraints.
type areaIDAndSize struct {
	id   int
	size int
}

// landAreasBySizeDescending returns the land areas ordered largest first,
// ids ascending on equal size.
func (m *TileMap) landAreasBySizeDescending() []areaIDAndSize {
	seen := make(map[int]bool)
	var areas []areaIDAndSize
	for tile := 0; tile < m.TileCount(); tile++ {
		if m.terrainType[tile] == TerrainWater {
			continue
		}
		id := m.areaID[tile]
		if !seen[id] {
			seen[id] = true
			areas = append(areas, areaIDAndSize{id: id, size: m.areaSizes[id]})
		}
	}
	sort.Slice(areas, func(i, j int) bool {
		if areas[i].size != areas[j].size {
			return areas[i].size > areas[j].size
		}
		return areas[i].id < areas[j].id
	})
	return areas
}

// rebaseWonderNeighborhoods converts water tiles next to land wonders into
// Lake when they already touch lake water, Coast otherwise.
func (m *TileMap) rebaseWonderNeighborhoods(placedTiles []int) {
	for _, tile := range placedTiles {
		if m.terrainType[tile] == TerrainWater {
			continue
		}
		for _, neighbor := range m.grid.Neighbors(tile) {
			if m.terrainType[neighbor] != TerrainWater {
				continue
			}
			touchesLake := false
			for _, nn := range m.grid.Neighbors(neighbor) {
				if m.baseTerrain[nn] == BaseLake {
					touchesLake = true
					break
				}
			}
			if touchesLake {
				m.baseTerrain[neighbor] = BaseLake
			} else {
				m.baseTerrain[neighbor] = BaseCoast
			}
		}
	}
}

func containsTile(tiles []int, tile int) bool {
	for _, t := range tiles {
		if t == tile {
			return true
		}
	}
	return false
}
