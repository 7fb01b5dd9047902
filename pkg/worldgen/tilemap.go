package worldgen

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/opd-ai/worldgen/pkg/hexgrid"
)

// RiverEdge is one segment of a river: the tile that hosts the edge and the
// corner direction the water flows toward. Legal flow directions are the
// orientation's corner directions.
type RiverEdge struct {
	Tile int
	Flow hexgrid.Direction
}

// TileMap is the generated world: parallel per-tile arrays keyed by linear
// tile index, the river collection, and the starting locations. It is
// mutated by the generation pipeline and read-only afterwards.
type TileMap struct {
	grid hexgrid.HexGrid
	rng  *rand.Rand

	terrainType   []TerrainType
	baseTerrain   []BaseTerrain
	feature       []Feature
	naturalWonder []string
	areaID        []int

	// areaSizes maps live area ids to their tile counts; maintained by the
	// area labeller and its merge pass.
	areaSizes map[int]int

	// rivers is indexed by river id; each river is an ordered edge walk.
	rivers [][]RiverEdge

	startingCivilizations map[int]string
	startingCityStates    map[int]string
}

// newTileMap builds an empty map: every tile Water over Ocean with no
// feature, no wonder, and area id -1.
func newTileMap(params *MapParameters) *TileMap {
	n := params.Grid.TileCount()
	m := &TileMap{
		grid:                  params.Grid,
		rng:                   rand.New(rand.NewSource(params.Seed)),
		terrainType:           make([]TerrainType, n),
		baseTerrain:           make([]BaseTerrain, n),
		feature:               make([]Feature, n),
		naturalWonder:         make([]string, n),
		areaID:                make([]int, n),
		areaSizes:             make(map[int]int),
		startingCivilizations: make(map[int]string),
		startingCityStates:    make(map[int]string),
	}
	for i := range m.areaID {
		m.areaID[i] = -1
	}
	return m
}

// WorldGrid returns the grid the map was generated on.
func (m *TileMap) WorldGrid() hexgrid.HexGrid {
	return m.grid
}

// TileCount returns the number of tiles.
func (m *TileMap) TileCount() int {
	return m.grid.TileCount()
}

// AllTiles returns every tile index in linear order.
func (m *TileMap) AllTiles() []int {
	tiles := make([]int, m.TileCount())
	for i := range tiles {
		tiles[i] = i
	}
	return tiles
}

// TileFromOffset resolves an offset coordinate to a tile index, or
// hexgrid.NoTile when outside the map.
func (m *TileMap) TileFromOffset(c hexgrid.OffsetCoordinate) int {
	return m.grid.TileFromOffset(c)
}

// TileToOffset returns the offset coordinate of a tile index.
func (m *TileMap) TileToOffset(tile int) hexgrid.OffsetCoordinate {
	return m.grid.TileToOffset(tile)
}

// TerrainType returns the terrain type of the tile.
func (m *TileMap) TerrainType(tile int) TerrainType {
	return m.terrainType[tile]
}

// BaseTerrain returns the base terrain of the tile.
func (m *TileMap) BaseTerrain(tile int) BaseTerrain {
	return m.baseTerrain[tile]
}

// Feature returns the feature of the tile, or FeatureNone.
func (m *TileMap) Feature(tile int) Feature {
	return m.feature[tile]
}

// NaturalWonder returns the natural wonder name on the tile, or "".
func (m *TileMap) NaturalWonder(tile int) string {
	return m.naturalWonder[tile]
}

// AreaID returns the connectivity area id of the tile.
func (m *TileMap) AreaID(tile int) int {
	return m.areaID[tile]
}

// AreaSize returns the tile count of the given area id.
func (m *TileMap) AreaSize(areaID int) int {
	return m.areaSizes[areaID]
}

// Rivers returns the river collection; index is river id, each river an
// ordered edge sequence.
func (m *TileMap) Rivers() [][]RiverEdge {
	return m.rivers
}

// RiverEdges returns every river edge of the map in river order.
func (m *TileMap) RiverEdges() []RiverEdge {
	var edges []RiverEdge
	for _, river := range m.rivers {
		edges = append(edges, river...)
	}
	return edges
}

// StartingCivilizations maps start tiles to civilization names.
func (m *TileMap) StartingCivilizations() map[int]string {
	return m.startingCivilizations
}

// StartingCityStates maps start tiles to city-state names.
func (m *TileMap) StartingCityStates() map[int]string {
	return m.startingCityStates
}

// edgeDirectionForFlow returns the tile edge a river edge occupies given its
// flow direction. For example under Pointy orientation a river flowing North
// or South lies on the tile's East edge. It panics on a flow direction that
// is illegal for the orientation.
func edgeDirectionForFlow(flow hexgrid.Direction, orientation hexgrid.Orientation) hexgrid.Direction {
	switch orientation {
	case hexgrid.Pointy:
		switch flow {
		case hexgrid.North, hexgrid.South:
			return hexgrid.East
		case hexgrid.NorthEast, hexgrid.SouthWest:
			return hexgrid.SouthEast
		case hexgrid.NorthWest, hexgrid.SouthEast:
			return hexgrid.SouthWest
		}
	case hexgrid.Flat:
		switch flow {
		case hexgrid.NorthWest, hexgrid.SouthEast:
			return hexgrid.NorthEast
		case hexgrid.NorthEast, hexgrid.SouthWest:
			return hexgrid.SouthEast
		case hexgrid.East, hexgrid.West:
			return hexgrid.South
		}
	}
	panic(fmt.Sprintf("worldgen: %v is not a legal flow direction for %v orientation", flow, orientation))
}

// StartAndEndCornerDirections returns the corner directions of the two
// endpoints of the river edge on its host tile, ordered so start-to-end
// points along the flow.
func (e RiverEdge) StartAndEndCornerDirections(grid hexgrid.HexGrid) (hexgrid.Direction, hexgrid.Direction) {
	switch grid.Layout.Orientation {
	case hexgrid.Pointy:
		switch e.Flow {
		case hexgrid.North:
			return hexgrid.SouthEast, hexgrid.NorthEast
		case hexgrid.South:
			return hexgrid.NorthEast, hexgrid.SouthEast
		case hexgrid.NorthEast:
			return hexgrid.South, hexgrid.SouthEast
		case hexgrid.SouthWest:
			return hexgrid.SouthEast, hexgrid.South
		case hexgrid.NorthWest:
			return hexgrid.South, hexgrid.SouthWest
		case hexgrid.SouthEast:
			return hexgrid.SouthWest, hexgrid.South
		}
	case hexgrid.Flat:
		switch e.Flow {
		case hexgrid.SouthEast:
			return hexgrid.NorthEast, hexgrid.East
		case hexgrid.NorthWest:
			return hexgrid.East, hexgrid.NorthEast
		case hexgrid.NorthEast:
			return hexgrid.SouthEast, hexgrid.East
		case hexgrid.SouthWest:
			return hexgrid.East, hexgrid.SouthEast
		case hexgrid.East:
			return hexgrid.SouthWest, hexgrid.SouthEast
		case hexgrid.West:
			return hexgrid.SouthEast, hexgrid.SouthWest
		}
	}
	panic(fmt.Sprintf("worldgen: %v is not a legal flow direction for %v orientation", e.Flow, grid.Layout.Orientation))
}

// HasRiver reports whether the tile has a river edge on the edge in the
// given direction. Edges in the second half of the direction array are
// checked on the neighbor's opposite edge.
func (m *TileMap) HasRiver(tile int, direction hexgrid.Direction) bool {
	orientation := m.grid.Layout.Orientation
	edgeIndex := orientation.EdgeIndex(direction)
	if edgeIndex < 0 {
		panic(fmt.Sprintf("worldgen: %v is not an edge direction for %v orientation", direction, orientation))
	}

	checkTile := tile
	checkDirection := direction
	if edgeIndex >= 3 {
		neighbor := m.grid.Neighbor(tile, direction)
		if neighbor == hexgrid.NoTile {
			return false
		}
		checkTile = neighbor
		checkDirection = direction.Opposite()
	}

	for _, river := range m.rivers {
		for _, edge := range river {
			if edge.Tile == checkTile && checkDirection == edgeDirectionForFlow(edge.Flow, orientation) {
				return true
			}
		}
	}
	return false
}

// hasRiverOnAnyEdge reports whether the tile touches any river edge.
func (m *TileMap) hasRiverOnAnyEdge(tile int) bool {
	for _, d := range m.grid.EdgeDirections() {
		if m.HasRiver(tile, d) {
			return true
		}
	}
	return false
}

// tileHostsRiverEdge reports whether any river edge is recorded on the tile
// itself, regardless of direction.
func (m *TileMap) tileHostsRiverEdge(tile int) bool {
	for _, river := range m.rivers {
		for _, edge := range river {
			if edge.Tile == tile {
				return true
			}
		}
	}
	return false
}

// riverEdgeCountInArea returns how many river edges lie in the given area.
func (m *TileMap) riverEdgeCountInArea(areaID int) int {
	count := 0
	for _, river := range m.rivers {
		for _, edge := range river {
			if m.areaID[edge.Tile] == areaID {
				count++
			}
		}
	}
	return count
}

// isAdjacentTo reports whether any neighbor carries the named base terrain
// or feature.
func (m *TileMap) isAdjacentTo(tile int, name string) bool {
	for _, neighbor := range m.grid.Neighbors(tile) {
		if m.baseTerrain[neighbor].String() == name {
			return true
		}
		if f := m.feature[neighbor]; f != FeatureNone && f.String() == name {
			return true
		}
	}
	return false
}

// IsFreshwater reports whether the tile is dry land adjacent to a lake, an
// oasis, or a river edge.
func (m *TileMap) IsFreshwater(tile int) bool {
	if m.terrainType[tile] == TerrainWater {
		return false
	}
	return m.isAdjacentTo(tile, "Lake") ||
		m.isAdjacentTo(tile, "Oasis") ||
		m.hasRiverOnAnyEdge(tile)
}

// IsCoastalLand reports whether the tile is dry land with at least one
// water neighbor.
func (m *TileMap) IsCoastalLand(tile int) bool {
	if m.terrainType[tile] == TerrainWater {
		return false
	}
	for _, neighbor := range m.grid.Neighbors(tile) {
		if m.terrainType[neighbor] == TerrainWater {
			return true
		}
	}
	return false
}

// IsImpassable reports whether the tile blocks movement: a mountain, an
// impassable feature, or an impassable natural wonder per the catalog.
func (m *TileMap) IsImpassable(tile int, rules *Ruleset) bool {
	if m.terrainType[tile] == TerrainMountain {
		return true
	}
	if f := m.feature[tile]; f != FeatureNone {
		if rule, ok := rules.Features[f.String()]; ok && rule.Impassable {
			return true
		}
	}
	if w := m.naturalWonder[tile]; w != "" {
		if rule, ok := rules.NaturalWonders[w]; ok && rule.Impassable {
			return true
		}
	}
	return false
}

// TerrainStats summarizes a generated map for tooling and tests.
type TerrainStats struct {
	TerrainCounts map[TerrainType]int
	BaseCounts    map[BaseTerrain]int
	FeatureCounts map[Feature]int
	WonderCount   int
	RiverCount    int
	RiverEdges    int
	AreaCount     int
	LandTiles     int
	WaterTiles    int
}

// Stats walks the map once and returns aggregate counts.
func (m *TileMap) Stats() TerrainStats {
	stats := TerrainStats{
		TerrainCounts: make(map[TerrainType]int),
		BaseCounts:    make(map[BaseTerrain]int),
		FeatureCounts: make(map[Feature]int),
	}
	areas := make(map[int]struct{})
	for tile := 0; tile < m.TileCount(); tile++ {
		stats.TerrainCounts[m.terrainType[tile]]++
		stats.BaseCounts[m.baseTerrain[tile]]++
		if f := m.feature[tile]; f != FeatureNone {
			stats.FeatureCounts[f]++
		}
		if m.naturalWonder[tile] != "" {
			stats.WonderCount++
		}
		if m.terrainType[tile] == TerrainWater {
			stats.WaterTiles++
		} else {
			stats.LandTiles++
		}
		areas[m.areaID[tile]] = struct{}{}
	}
	stats.AreaCount = len(areas)
	stats.RiverCount = len(m.rivers)
	for _, river := range m.rivers {
		stats.RiverEdges += len(river)
	}
	return stats
}

// CanonicalAreaIDs returns a renumbering of the surviving area ids to a
// dense 0..n-1 range ordered by first appearance in tile order. The merge
// pass leaves holes in the id sequence; downstream code that wants stable
// dense ids applies this mapping.
func (m *TileMap) CanonicalAreaIDs() map[int]int {
	canonical := make(map[int]int)
	next := 0
	for tile := 0; tile < m.TileCount(); tile++ {
		id := m.areaID[tile]
		if _, ok := canonical[id]; !ok {
			canonical[id] = next
			next++
		}
	}
	return canonical
}

// sortedAreaIDs returns the live area ids in ascending order.
func (m *TileMap) sortedAreaIDs() []int {
	ids := make([]int, 0, len(m.areaSizes))
	for id := range m.areaSizes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
