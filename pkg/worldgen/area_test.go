package worldgen

import (
	"testing"

	"github.com/opd-ai/worldgen/pkg/hexgrid"
)

// blankMap builds an empty tile map over an unwrapped grid for pass-level
// tests.
func blankMap(t *testing.T, width, height int, orientation hexgrid.Orientation) (*TileMap, MapParameters) {
	t.Helper()
	params := DefaultMapParameters()
	layout := hexgrid.HexLayout{Orientation: orientation, Size: hexgrid.Point{X: 8, Y: 8}}
	grid, err := hexgrid.NewHexGrid(width, height, false, false, hexgrid.OffsetOdd, layout)
	if err != nil {
		t.Fatalf("NewHexGrid: %v", err)
	}
	params.Grid = grid
	params.Seed = 7
	return newTileMap(&params), params
}

// setAllLand turns every tile into flatland so tests can carve shapes into
// a uniform landmass.
func setAllLand(m *TileMap) {
	for i := range m.terrainType {
		m.terrainType[i] = TerrainFlatland
		m.baseTerrain[i] = BaseGrassland
	}
}

func TestRecalculateAreasPartitions(t *testing.T) {
	m, _ := blankMap(t, 12, 12, hexgrid.Pointy)
	setAllLand(m)

	// A seven-tile mountain ridge (too big for the merge pass) and a water
	// pond in a corner.
	for col := 2; col <= 8; col++ {
		c := hexgrid.OffsetCoordinate{Col: col, Row: 4}
		m.terrainType[m.grid.TileFromOffset(c)] = TerrainMountain
	}
	for _, c := range []hexgrid.OffsetCoordinate{{Col: 0, Row: 0}, {Col: 1, Row: 0}} {
		tile := m.grid.TileFromOffset(c)
		m.terrainType[tile] = TerrainWater
		m.baseTerrain[tile] = BaseOcean
	}

	m.recalculateAreas()

	for tile := 0; tile < m.TileCount(); tile++ {
		if m.AreaID(tile) < 0 {
			t.Fatalf("tile %d left unlabelled", tile)
		}
		for _, neighbor := range m.grid.Neighbors(tile) {
			if terrainClass(m.TerrainType(tile)) == terrainClass(m.TerrainType(neighbor)) &&
				m.AreaID(tile) != m.AreaID(neighbor) {
				t.Fatalf("tiles %d and %d share a class but differ in area", tile, neighbor)
			}
			if terrainClass(m.TerrainType(tile)) != terrainClass(m.TerrainType(neighbor)) &&
				m.AreaID(tile) == m.AreaID(neighbor) {
				t.Fatalf("tiles %d and %d share an area across classes", tile, neighbor)
			}
		}
	}
}

func TestReassignSmallAreasMerges(t *testing.T) {
	m, _ := blankMap(t, 16, 16, hexgrid.Pointy)
	setAllLand(m)

	// A three-tile mountain cluster inside a big flatland mass: the
	// mountain area is small, but its only same-waterness neighbor (the
	// flatland) is large, so the cluster merges into it.
	cluster := []hexgrid.OffsetCoordinate{{Col: 7, Row: 7}, {Col: 8, Row: 7}, {Col: 7, Row: 8}}
	for _, c := range cluster {
		m.terrainType[m.grid.TileFromOffset(c)] = TerrainMountain
	}

	m.recalculateAreas()

	first := m.grid.TileFromOffset(cluster[0])
	landTile := m.grid.TileFromOffset(hexgrid.OffsetCoordinate{Col: 0, Row: 0})
	if m.AreaID(first) != m.AreaID(landTile) {
		t.Errorf("small mountain area %d not merged into flatland area %d",
			m.AreaID(first), m.AreaID(landTile))
	}
	if m.AreaSize(m.AreaID(landTile)) != m.TileCount() {
		t.Errorf("merged area size = %d, want %d", m.AreaSize(m.AreaID(landTile)), m.TileCount())
	}
}

func TestReassignKeepsUnmergeablePocket(t *testing.T) {
	m, _ := blankMap(t, 12, 12, hexgrid.Pointy)
	setAllLand(m)

	// A three-tile water pocket has no water neighbor area at all, so the
	// merge pass must leave it alone.
	pocket := []hexgrid.OffsetCoordinate{{Col: 5, Row: 5}, {Col: 6, Row: 5}, {Col: 5, Row: 6}}
	for _, c := range pocket {
		tile := m.grid.TileFromOffset(c)
		m.terrainType[tile] = TerrainWater
		m.baseTerrain[tile] = BaseOcean
	}

	m.recalculateAreas()

	first := m.grid.TileFromOffset(pocket[0])
	if m.AreaSize(m.AreaID(first)) != len(pocket) {
		t.Errorf("water pocket area size = %d, want %d", m.AreaSize(m.AreaID(first)), len(pocket))
	}
	for _, c := range pocket[1:] {
		if m.AreaID(m.grid.TileFromOffset(c)) != m.AreaID(first) {
			t.Error("water pocket split across areas")
		}
	}
}

func TestCanonicalAreaIDsAreDense(t *testing.T) {
	m, _ := blankMap(t, 12, 12, hexgrid.Pointy)
	setAllLand(m)
	for _, c := range []hexgrid.OffsetCoordinate{{Col: 2, Row: 2}, {Col: 9, Row: 9}} {
		tile := m.grid.TileFromOffset(c)
		m.terrainType[tile] = TerrainWater
		m.baseTerrain[tile] = BaseOcean
	}
	m.recalculateAreas()

	ids := m.sortedAreaIDs()
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Fatalf("sortedAreaIDs not ascending: %v", ids)
		}
	}

	canonical := m.CanonicalAreaIDs()
	seen := make(map[int]bool)
	for _, dense := range canonical {
		if dense < 0 || dense >= len(canonical) {
			t.Errorf("canonical id %d outside [0,%d)", dense, len(canonical))
		}
		if seen[dense] {
			t.Errorf("canonical id %d assigned twice", dense)
		}
		seen[dense] = true
	}
}
