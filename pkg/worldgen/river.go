package worldgen

import (
	"fmt"

	"github.com/opd-ai/worldgen/pkg/hexgrid"
)

// riverCheck names a river-edge collision test: the edge direction to test,
// on either the tile the walk just emitted on (onNeighbor false) or on the
// guard's neighbor tile (onNeighbor true).
type riverCheck struct {
	onNeighbor bool
	dir        hexgrid.Direction
}

// riverGuard is one neighbor requirement of a river transition: the
// neighbor must exist, optionally must be dry, and must not already carry
// the colliding river edges.
type riverGuard struct {
	dir         hexgrid.Direction
	failIfWater bool
	checks      []riverCheck
}

// riverTransition encodes one branch of the corner-walk transition table:
// an optional move before the edge is emitted, the guards that must hold,
// and an optional move afterwards.
type riverTransition struct {
	preMove  hexgrid.Direction
	postMove hexgrid.Direction
	guards   []riverGuard
}

// riverTransitions is the 12-case transition table (6 flow directions per
// orientation). It encodes the geometric fact that a river at a hex corner
// flows from one tile pair to the next along a specific edge.
var riverTransitions = map[hexgrid.Orientation]map[hexgrid.Direction]riverTransition{
	hexgrid.Pointy: {
		hexgrid.North: {
			postMove: hexgrid.NorthEast,
			guards: []riverGuard{{
				dir: hexgrid.NorthEast, failIfWater: true,
				checks: []riverCheck{{true, hexgrid.SouthEast}, {true, hexgrid.SouthWest}},
			}},
		},
		hexgrid.NorthEast: {
			guards: []riverGuard{{
				dir: hexgrid.East, failIfWater: true,
				checks: []riverCheck{{false, hexgrid.East}, {true, hexgrid.SouthWest}},
			}},
		},
		hexgrid.SouthEast: {
			preMove: hexgrid.East,
			guards: []riverGuard{
				{dir: hexgrid.SouthEast, failIfWater: true, checks: []riverCheck{{false, hexgrid.SouthEast}}},
				{dir: hexgrid.SouthWest, failIfWater: true, checks: []riverCheck{{true, hexgrid.East}}},
			},
		},
		hexgrid.South: {
			preMove: hexgrid.SouthWest,
			guards: []riverGuard{
				{dir: hexgrid.SouthEast, failIfWater: true, checks: []riverCheck{{false, hexgrid.SouthEast}}},
				{dir: hexgrid.East, checks: []riverCheck{{true, hexgrid.SouthWest}}},
			},
		},
		hexgrid.SouthWest: {
			guards: []riverGuard{{
				dir: hexgrid.SouthWest, failIfWater: true,
				checks: []riverCheck{{true, hexgrid.East}, {false, hexgrid.SouthWest}},
			}},
		},
		hexgrid.NorthWest: {
			postMove: hexgrid.West,
			guards: []riverGuard{{
				dir: hexgrid.West, failIfWater: true,
				checks: []riverCheck{{true, hexgrid.East}, {true, hexgrid.SouthEast}},
			}},
		},
	},
	hexgrid.Flat: {
		hexgrid.NorthEast: {
			guards: []riverGuard{{
				dir: hexgrid.NorthEast, failIfWater: true,
				checks: []riverCheck{{false, hexgrid.NorthEast}, {true, hexgrid.South}},
			}},
		},
		hexgrid.East: {
			preMove: hexgrid.NorthEast,
			guards: []riverGuard{
				{dir: hexgrid.SouthEast, failIfWater: true, checks: []riverCheck{{false, hexgrid.SouthEast}}},
				{dir: hexgrid.South, failIfWater: true, checks: []riverCheck{{true, hexgrid.NorthEast}}},
			},
		},
		hexgrid.SouthEast: {
			preMove: hexgrid.South,
			guards: []riverGuard{
				{dir: hexgrid.SouthEast, failIfWater: true, checks: []riverCheck{{false, hexgrid.SouthEast}}},
				{dir: hexgrid.NorthEast, failIfWater: true, checks: []riverCheck{{true, hexgrid.South}}},
			},
		},
		hexgrid.SouthWest: {
			guards: []riverGuard{{
				dir: hexgrid.South, failIfWater: true,
				checks: []riverCheck{{false, hexgrid.South}, {true, hexgrid.NorthEast}},
			}},
		},
		hexgrid.West: {
			postMove: hexgrid.SouthWest,
			guards: []riverGuard{{
				dir: hexgrid.SouthWest, failIfWater: true,
				checks: []riverCheck{{true, hexgrid.NorthEast}, {true, hexgrid.SouthEast}},
			}},
		},
		hexgrid.NorthWest: {
			postMove: hexgrid.North,
			guards: []riverGuard{{
				dir: hexgrid.North, failIfWater: true,
				checks: []riverCheck{{true, hexgrid.South}, {true, hexgrid.SouthEast}},
			}},
		},
	},
}

// flowCandidates pairs each possible next flow direction with the neighbor
// direction whose tile is scored to rank that flow.
var flowCandidates = map[hexgrid.Orientation][6][2]hexgrid.Direction{
	hexgrid.Pointy: {
		{hexgrid.North, hexgrid.NorthWest},
		{hexgrid.NorthEast, hexgrid.NorthEast},
		{hexgrid.SouthEast, hexgrid.East},
		{hexgrid.South, hexgrid.SouthWest},
		{hexgrid.SouthWest, hexgrid.West},
		{hexgrid.NorthWest, hexgrid.NorthWest},
	},
	hexgrid.Flat: {
		{hexgrid.East, hexgrid.NorthEast},
		{hexgrid.SouthEast, hexgrid.South},
		{hexgrid.SouthWest, hexgrid.SouthWest},
		{hexgrid.West, hexgrid.NorthWest},
		{hexgrid.NorthWest, hexgrid.NorthWest},
		{hexgrid.NorthEast, hexgrid.North},
	},
}

// addRivers selects river sources in four scanning passes of decreasing
// selectivity and walks each source downhill along the corner graph.
func (m *TileMap) addRivers(params *MapParameters) {
	const riverSourceRangeDefault = 4
	const seaWaterRangeDefault = 3
	// tilesPerRiverEdge is how many area tiles justify one river edge; the
	// later passes keep seeding while an area is below that ratio.
	const tilesPerRiverEdge = 12

	for pass := 0; pass < 4; pass++ {
		riverSourceRange := riverSourceRangeDefault
		seaWaterRange := seaWaterRangeDefault
		if pass > 1 {
			riverSourceRange = riverSourceRangeDefault / 2
			seaWaterRange = seaWaterRangeDefault / 2
		}

		for tile := 0; tile < m.TileCount(); tile++ {
			var passCondition bool
			switch pass {
			case 0:
				// Hills and mountains come first.
				passCondition = m.terrainType[tile] == TerrainMountain ||
					m.terrainType[tile] == TerrainHill
			case 1:
				// Dry tiles away from the ocean, sampled 1-in-8.
				passCondition = m.terrainType[tile] != TerrainWater &&
					!m.IsCoastalLand(tile) &&
					m.rng.Intn(8) == 0
			case 2:
				// Elevated tiles again, in areas still short on rivers.
				passCondition = (m.terrainType[tile] == TerrainMountain ||
					m.terrainType[tile] == TerrainHill) &&
					m.areaNeedsRivers(tile, tilesPerRiverEdge)
			case 3:
				// Any dry tile in areas still short on rivers.
				passCondition = m.terrainType[tile] != TerrainWater &&
					m.areaNeedsRivers(tile, tilesPerRiverEdge)
			}

			if !passCondition ||
				m.naturalWonder[tile] != "" ||
				m.anyNeighborHasWonder(tile) ||
				m.anyFreshwaterInDistance(tile, riverSourceRange) ||
				m.anyWaterInDistance(tile, seaWaterRange) {
				continue
			}

			start := m.inlandCorner(tile)
			if start == hexgrid.NoTile {
				continue
			}
			m.doRiver(start, hexgrid.DirectionNone, hexgrid.DirectionNone)
		}
	}
}

func (m *TileMap) areaNeedsRivers(tile, tilesPerRiverEdge int) bool {
	areaID := m.areaID[tile]
	return m.riverEdgeCountInArea(areaID) <= m.areaSizes[areaID]/tilesPerRiverEdge
}

func (m *TileMap) anyNeighborHasWonder(tile int) bool {
	for _, neighbor := range m.grid.Neighbors(tile) {
		if m.naturalWonder[neighbor] != "" {
			return true
		}
	}
	return false
}

func (m *TileMap) anyFreshwaterInDistance(tile, distance int) bool {
	for _, t := range m.grid.TilesInDistance(tile, distance) {
		if m.IsFreshwater(t) {
			return true
		}
	}
	return false
}

func (m *TileMap) anyWaterInDistance(tile, distance int) bool {
	for _, t := range m.grid.TilesInDistance(tile, distance) {
		if m.terrainType[t] == TerrainWater {
			return true
		}
	}
	return false
}

// inlandCorner picks the river's actual start: the source tile or one of
// its back-half neighbors, restricted to tiles whose front-half neighbors
// all exist and are dry, chosen at random. Returns hexgrid.NoTile when no
// candidate qualifies.
func (m *TileMap) inlandCorner(tile int) int {
	edgeDirs := m.grid.EdgeDirections()

	candidates := []int{tile}
	for _, d := range edgeDirs[3:6] {
		if neighbor := m.grid.Neighbor(tile, d); neighbor != hexgrid.NoTile {
			candidates = append(candidates, neighbor)
		}
	}

	qualified := candidates[:0]
	for _, candidate := range candidates {
		ok := true
		for _, d := range edgeDirs[0:3] {
			neighbor := m.grid.Neighbor(candidate, d)
			if neighbor == hexgrid.NoTile || m.terrainType[neighbor] == TerrainWater {
				ok = false
				break
			}
		}
		if ok {
			qualified = append(qualified, candidate)
		}
	}

	if len(qualified) == 0 {
		return hexgrid.NoTile
	}
	return qualified[m.rng.Intn(len(qualified))]
}

// doRiver walks one river from the start tile, appending its edges as a new
// river when any are emitted. The walk terminates on water, at the map
// edge, on a collision with an existing river, or when no legal flow
// remains.
func (m *TileMap) doRiver(startTile int, thisFlow, originalFlow hexgrid.Direction) {
	// A start tile that already hosts a river edge would immediately form
	// a loop.
	if m.tileHostsRiverEdge(startTile) {
		return
	}

	orientation := m.grid.Layout.Orientation
	riverID := len(m.rivers)
	m.rivers = append(m.rivers, nil)
	defer func() {
		if len(m.rivers[riverID]) == 0 {
			m.rivers = m.rivers[:riverID]
		}
	}()

	transitions, ok := riverTransitions[orientation]
	if !ok {
		panic(fmt.Sprintf("worldgen: no river transitions for %v orientation", orientation))
	}

	for {
		riverTile := startTile

		if thisFlow != hexgrid.DirectionNone {
			transition, ok := transitions[thisFlow]
			if !ok {
				panic(fmt.Sprintf("worldgen: %v is not a legal flow direction for %v orientation", thisFlow, orientation))
			}

			if transition.preMove != hexgrid.DirectionNone {
				riverTile = m.grid.Neighbor(startTile, transition.preMove)
				if riverTile == hexgrid.NoTile {
					return
				}
			}

			m.rivers[riverID] = append(m.rivers[riverID], RiverEdge{Tile: riverTile, Flow: thisFlow})

			for _, guard := range transition.guards {
				neighbor := m.grid.Neighbor(riverTile, guard.dir)
				if neighbor == hexgrid.NoTile {
					return
				}
				if guard.failIfWater && m.terrainType[neighbor] == TerrainWater {
					return
				}
				for _, check := range guard.checks {
					checkTile := riverTile
					if check.onNeighbor {
						checkTile = neighbor
					}
					if m.HasRiver(checkTile, check.dir) {
						return
					}
				}
			}

			if transition.postMove != hexgrid.DirectionNone {
				riverTile = m.grid.Neighbor(riverTile, transition.postMove)
			}
		}

		if m.terrainType[riverTile] == TerrainWater {
			return
		}

		// Rank the reachable flows by the river value of the neighbor each
		// one points at; lower is better, and keeping the original heading
		// gets a 25% discount.
		bestFlow := hexgrid.DirectionNone
		bestValue := int(^uint(0) >> 1)
		for _, candidate := range flowCandidates[orientation] {
			flow, neighborDir := candidate[0], candidate[1]
			if flow.Opposite() == originalFlow {
				continue
			}
			if thisFlow != hexgrid.DirectionNone &&
				flow != orientation.CornerClockwise(thisFlow) &&
				flow != orientation.CornerCounterClockwise(thisFlow) {
				continue
			}
			neighbor := m.grid.Neighbor(riverTile, neighborDir)
			if neighbor == hexgrid.NoTile {
				continue
			}
			value := m.riverValueAtTile(neighbor)
			if flow == originalFlow {
				value = value * 3 / 4
			}
			if value < bestValue {
				bestValue = value
				bestFlow = flow
			}
		}

		if bestFlow == hexgrid.DirectionNone {
			return
		}
		if originalFlow == hexgrid.DirectionNone {
			originalFlow = bestFlow
		}
		startTile = riverTile
		thisFlow = bestFlow
	}
}

// riverValueAtTile scores how attractive a tile is for the river to flow
// toward. Lower is more attractive: flat, wet, non-desert interiors win
// over high ground and map edges. Natural wonders repel outright.
func (m *TileMap) riverValueAtTile(tile int) int {
	elevation := func(t int) int {
		switch m.terrainType[t] {
		case TerrainMountain:
			return 4
		case TerrainHill:
			return 3
		case TerrainWater:
			return 2
		default:
			return 1
		}
	}

	if m.naturalWonder[tile] != "" || m.anyNeighborHasWonder(tile) {
		return -1
	}

	sum := elevation(tile) * 20

	neighbors := m.grid.Neighbors(tile)
	sum += 40 * (6 - len(neighbors))
	for _, neighbor := range neighbors {
		sum += elevation(neighbor)
		if m.baseTerrain[neighbor] == BaseDesert {
			sum += 4
		}
	}

	sum += m.rng.Intn(10)
	return sum
}
