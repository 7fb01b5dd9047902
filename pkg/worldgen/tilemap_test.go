package worldgen

import (
	"testing"

	"github.com/opd-ai/worldgen/pkg/hexgrid"
)

func TestHasRiverOnBothSidesOfEdge(t *testing.T) {
	m, _ := blankMap(t, 10, 10, hexgrid.Pointy)
	setAllLand(m)

	tile := m.grid.TileFromOffset(hexgrid.OffsetCoordinate{Col: 5, Row: 5})
	// A river flowing North under pointy orientation occupies the tile's
	// East edge.
	m.rivers = append(m.rivers, []RiverEdge{{Tile: tile, Flow: hexgrid.North}})

	if !m.HasRiver(tile, hexgrid.East) {
		t.Error("hosting tile should report a river on its East edge")
	}
	if m.HasRiver(tile, hexgrid.SouthEast) {
		t.Error("hosting tile should not report a river on its SouthEast edge")
	}

	east := m.grid.Neighbor(tile, hexgrid.East)
	if !m.HasRiver(east, hexgrid.West) {
		t.Error("east neighbor should report the same river on its West edge")
	}
}

func TestHasRiverInvalidDirectionPanics(t *testing.T) {
	m, _ := blankMap(t, 10, 10, hexgrid.Pointy)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for pointy North edge query")
		}
	}()
	_ = m.HasRiver(0, hexgrid.North)
}

func TestStartAndEndCornerDirections(t *testing.T) {
	m, _ := blankMap(t, 10, 10, hexgrid.Pointy)
	grid := m.WorldGrid()
	corners := grid.CornerDirections()

	for _, flow := range corners {
		edge := RiverEdge{Tile: 0, Flow: flow}
		start, end := edge.StartAndEndCornerDirections(grid)
		if start == end {
			t.Errorf("flow %v: start and end corners are both %v", flow, start)
		}
		if !containsDirection(corners, start) || !containsDirection(corners, end) {
			t.Errorf("flow %v: corners %v/%v outside the corner set", flow, start, end)
		}
	}
}

func TestStartAndEndCornerDirectionsIllegalFlowPanics(t *testing.T) {
	m, _ := blankMap(t, 10, 10, hexgrid.Pointy)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for pointy East flow")
		}
	}()
	edge := RiverEdge{Tile: 0, Flow: hexgrid.East}
	_, _ = edge.StartAndEndCornerDirections(m.WorldGrid())
}

func TestIsFreshwater(t *testing.T) {
	m, _ := blankMap(t, 10, 10, hexgrid.Pointy)
	setAllLand(m)
	tile := m.grid.TileFromOffset(hexgrid.OffsetCoordinate{Col: 4, Row: 4})

	if m.IsFreshwater(tile) {
		t.Error("plain interior tile should not be freshwater")
	}

	lake := m.grid.Neighbors(tile)[0]
	m.terrainType[lake] = TerrainWater
	m.baseTerrain[lake] = BaseLake
	if !m.IsFreshwater(tile) {
		t.Error("tile beside a lake should be freshwater")
	}
	if m.IsFreshwater(lake) {
		t.Error("water tiles are never freshwater")
	}
	m.terrainType[lake] = TerrainFlatland
	m.baseTerrain[lake] = BaseGrassland

	m.feature[lake] = FeatureOasis
	if !m.IsFreshwater(tile) {
		t.Error("tile beside an oasis should be freshwater")
	}
	m.feature[lake] = FeatureNone

	m.rivers = append(m.rivers, []RiverEdge{{Tile: tile, Flow: hexgrid.North}})
	if !m.IsFreshwater(tile) {
		t.Error("tile hosting a river edge should be freshwater")
	}
}

func TestIsImpassable(t *testing.T) {
	m, _ := blankMap(t, 10, 10, hexgrid.Pointy)
	setAllLand(m)
	rules := StandardRuleset()
	tile := m.grid.TileFromOffset(hexgrid.OffsetCoordinate{Col: 4, Row: 4})

	if m.IsImpassable(tile, rules) {
		t.Error("flatland should be passable")
	}
	m.terrainType[tile] = TerrainMountain
	if !m.IsImpassable(tile, rules) {
		t.Error("mountain should be impassable")
	}
	m.terrainType[tile] = TerrainWater
	m.feature[tile] = FeatureIce
	if !m.IsImpassable(tile, rules) {
		t.Error("ice should be impassable per the catalog")
	}
	m.feature[tile] = FeatureNone
	if m.IsImpassable(tile, rules) {
		t.Error("open water should be passable")
	}
}

func TestStatsCountsEveryTileOnce(t *testing.T) {
	params := testParams(t, 2024, hexgrid.Pointy, MapTypeFractal)
	m := generateTestMap(t, params)
	stats := m.Stats()

	terrainTotal := 0
	for _, count := range stats.TerrainCounts {
		terrainTotal += count
	}
	if terrainTotal != m.TileCount() {
		t.Errorf("terrain counts cover %d tiles, want %d", terrainTotal, m.TileCount())
	}
	if stats.LandTiles+stats.WaterTiles != m.TileCount() {
		t.Errorf("land %d + water %d != %d tiles", stats.LandTiles, stats.WaterTiles, m.TileCount())
	}
}

func TestAllTiles(t *testing.T) {
	m, _ := blankMap(t, 4, 3, hexgrid.Pointy)
	tiles := m.AllTiles()
	if len(tiles) != 12 {
		t.Fatalf("AllTiles returned %d tiles, want 12", len(tiles))
	}
	for i, tile := range tiles {
		if tile != i {
			t.Fatalf("AllTiles[%d] = %d, want %d", i, tile, i)
		}
	}
}
