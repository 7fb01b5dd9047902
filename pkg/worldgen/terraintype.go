package worldgen

import (
	"github.com/opd-ai/worldgen/pkg/worldgen/fractal"
)

// terrainThresholds holds the percentile-derived height cutoffs shared by
// the terrain-type passes.
type terrainThresholds struct {
	waterThreshold     int
	mountainThreshold  int
	hillsNearMountains int
	passThreshold      int
	hillsBottom1       int
	hillsTop1          int
	hillsBottom2       int
	hillsTop2          int
	mountain100        int
	mountain99         int
	mountain97         int
	mountain95         int
}

// terrainFractals are the three ridge-blended height fields the classifier
// reads.
type terrainFractals struct {
	continents *fractal.Fractal
	mountains  *fractal.Fractal
	hills      *fractal.Fractal
}

// waterPercent resolves the sea-level setting to a water percentile, using
// the per-map-type tables. SeaLevelRandom draws from the [low, high] range.
func (m *TileMap) waterPercent(params *MapParameters, low, normal, high int) int {
	switch params.SeaLevel {
	case SeaLevelLow:
		return low
	case SeaLevelHigh:
		return high
	case SeaLevelRandom:
		return low + m.rng.Intn(high-low+1)
	default:
		return normal
	}
}

// worldAgeAdjustment resolves the world-age setting to the relief
// adjustment constant.
func worldAgeAdjustment(age WorldAge) int {
	switch age {
	case WorldAgeOld:
		return 2
	case WorldAgeNew:
		return 5
	default:
		return 3
	}
}

// buildTerrainFractals synthesizes the continents, mountains, and hills
// fields with their ridge overlays, drawing from the map RNG in that order.
func (m *TileMap) buildTerrainFractals(params *MapParameters) terrainFractals {
	flags := fractal.Flags{
		WrapX: params.Grid.WrapX,
		WrapY: params.Grid.WrapY,
	}
	orientation := params.Grid.Layout.Orientation
	offset := params.Grid.Offset
	width := params.Grid.Width
	height := params.Grid.Height

	continents := fractal.Create(m.rng, width, height, 2, flags, 7, 6)
	continents.RidgeBuilder(m.rng, 15, flags, 1, 2, orientation, offset)

	mountains := fractal.Create(m.rng, width, height, 2, flags, 7, 6)
	mountains.RidgeBuilder(m.rng, 10, flags, 6, 1, orientation, offset)

	hills := fractal.Create(m.rng, width, height, 2, flags, 7, 6)
	hills.RidgeBuilder(m.rng, 15, flags, 1, 2, orientation, offset)

	return terrainFractals{continents: continents, mountains: mountains, hills: hills}
}

// thresholds samples the percentile cutoffs for the classifier from the
// three fields.
func (f *terrainFractals) thresholds(waterPercent, adjustment int) terrainThresholds {
	mountains := 97 - adjustment
	hillsNearMountains := 91 - adjustment*2
	hillsBottom1 := 28 - adjustment
	hillsTop1 := 28 + adjustment
	hillsBottom2 := 72 - adjustment
	hillsTop2 := 72 + adjustment
	hillsClumps := 1 + adjustment

	var t terrainThresholds

	water := f.continents.HeightsFromPercents([]int{waterPercent})
	t.waterThreshold = water[0]

	hillHeights := f.hills.HeightsFromPercents([]int{
		hillsNearMountains, hillsBottom1, hillsTop1, hillsBottom2, hillsTop2,
	})
	t.passThreshold = hillHeights[0]
	t.hillsBottom1 = hillHeights[1]
	t.hillsTop1 = hillHeights[2]
	t.hillsBottom2 = hillHeights[3]
	t.hillsTop2 = hillHeights[4]

	mountainHeights := f.mountains.HeightsFromPercents([]int{
		mountains, hillsNearMountains, hillsClumps, 100, 99, 98, 97, 95,
	})
	t.mountainThreshold = mountainHeights[0]
	t.hillsNearMountains = mountainHeights[1]
	t.mountain100 = mountainHeights[3]
	t.mountain99 = mountainHeights[4]
	t.mountain97 = mountainHeights[6]
	t.mountain95 = mountainHeights[7]

	return t
}

// classify assigns the terrain type for one tile from its three heights.
// dry tiles split into mountain, hill, and flatland by the mountain and
// hill bands.
func (t *terrainThresholds) classify(height, mountainHeight, hillHeight int) TerrainType {
	switch {
	case height <= t.waterThreshold:
		return TerrainWater
	case mountainHeight >= t.mountainThreshold:
		if hillHeight >= t.passThreshold {
			return TerrainHill
		}
		return TerrainMountain
	case mountainHeight >= t.hillsNearMountains ||
		(hillHeight >= t.hillsBottom1 && hillHeight <= t.hillsTop1) ||
		(hillHeight >= t.hillsBottom2 && hillHeight <= t.hillsTop2):
		return TerrainHill
	default:
		return TerrainFlatland
	}
}

// generateTerrainTypesForFractal classifies every tile for the Fractal map
// type: scattered continents with sea level tuned by the fractal table.
func (m *TileMap) generateTerrainTypesForFractal(params *MapParameters) {
	waterPercent := m.waterPercent(params, 65, 72, 78)
	fractals := m.buildTerrainFractals(params)
	t := fractals.thresholds(waterPercent, worldAgeAdjustment(params.WorldAge))

	for tile := 0; tile < m.TileCount(); tile++ {
		c := m.grid.TileToOffset(tile)
		height := fractals.continents.GetHeight(c.Col, c.Row)
		mountainHeight := fractals.mountains.GetHeight(c.Col, c.Row)
		hillHeight := fractals.hills.GetHeight(c.Col, c.Row)
		m.terrainType[tile] = t.classify(height, mountainHeight, hillHeight)
	}
}

// generateTerrainTypesForPangaea classifies every tile for the Pangaea map
// type. The continent height is pulled toward an elliptical core: the water
// threshold is raised 12.5% inside the ellipse and lowered 12.5% outside,
// then averaged into the height with weights (1, 2, 2)/3. Isolated peaks
// that match the top mountain percentiles surface as islands.
func (m *TileMap) generateTerrainTypesForPangaea(params *MapParameters) {
	waterPercent := m.waterPercent(params, 71, 78, 84)
	fractals := m.buildTerrainFractals(params)
	t := fractals.thresholds(waterPercent, worldAgeAdjustment(params.WorldAge))

	centerX := float64(params.Grid.Width) / 2
	centerY := float64(params.Grid.Height) / 2
	axisX := centerX * 3 / 5
	axisY := centerY * 3 / 5

	for tile := 0; tile < m.TileCount(); tile++ {
		c := m.grid.TileToOffset(tile)
		height := fractals.continents.GetHeight(c.Col, c.Row)
		mountainHeight := fractals.mountains.GetHeight(c.Col, c.Row)
		hillHeight := fractals.hills.GetHeight(c.Col, c.Row)

		h := float64(t.waterThreshold)
		dx := (float64(c.Col) - centerX) / axisX
		dy := (float64(c.Row) - centerY) / axisY
		if dx*dx+dy*dy <= 1 {
			h += h * 0.125
		} else {
			h -= h * 0.125
		}
		blended := int((float64(height) + h + h) * 0.33)

		if blended <= t.waterThreshold {
			m.terrainType[tile] = TerrainWater
			switch blended {
			case t.mountain100:
				m.terrainType[tile] = TerrainMountain
			case t.mountain99:
				m.terrainType[tile] = TerrainHill
			case t.mountain97, t.mountain95:
				m.terrainType[tile] = TerrainFlatland
			}
			continue
		}
		m.terrainType[tile] = t.classify(t.waterThreshold+1, mountainHeight, hillHeight)
	}
}
