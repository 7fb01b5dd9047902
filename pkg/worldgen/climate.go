package worldgen

import (
	"github.com/opd-ai/worldgen/pkg/worldgen/fractal"
)

// generateBaseTerrains overlays the climate bands on every dry tile:
// grassland, plain, desert, tundra, and snow by perturbed latitude plus two
// fractal bands. Water tiles keep the base terrain the earlier passes gave
// them.
func (m *TileMap) generateBaseTerrains(params *MapParameters) {
	const temperatureShift = 0.1
	const desertShift = 16
	desertPercent := 32
	plainsPercent := 50
	snowLatitude := 0.75
	tundraLatitude := 0.6
	grassLatitude := 0.1
	desertBottomLatitude := 0.2
	desertTopLatitude := 0.5

	switch params.Temperature {
	case TemperatureCool:
		desertPercent -= desertShift
		tundraLatitude -= temperatureShift * 1.5
		desertTopLatitude -= temperatureShift
		grassLatitude -= temperatureShift * 0.5
	case TemperatureHot:
		desertPercent += desertShift
		snowLatitude += temperatureShift * 0.5
		tundraLatitude += temperatureShift
		desertTopLatitude += temperatureShift
		grassLatitude -= temperatureShift * 0.5
	}

	desertTopPercent := 100
	desertBottomPercent := maxInt(0, 100-desertPercent)
	plainsTopPercent := 100
	plainsBottomPercent := maxInt(0, 100-plainsPercent)

	width := params.Grid.Width
	height := params.Grid.Height
	variationFractal := fractal.Create(m.rng, width, height, 3, fractal.Flags{}, -1, -1)
	desertsFractal := fractal.Create(m.rng, width, height, 3, fractal.Flags{}, -1, -1)
	plainsFractal := fractal.Create(m.rng, width, height, 3, fractal.Flags{}, -1, -1)

	desertHeights := desertsFractal.HeightsFromPercents([]int{desertTopPercent, plainsTopPercent})
	desertTop := desertHeights[0]
	plainsTop := desertHeights[1]
	plainHeights := plainsFractal.HeightsFromPercents([]int{desertBottomPercent, plainsBottomPercent})
	desertBottom := plainHeights[0]
	plainsBottom := plainHeights[1]

	for tile := 0; tile < m.TileCount(); tile++ {
		if m.terrainType[tile] == TerrainWater {
			continue
		}
		c := m.grid.TileToOffset(tile)

		m.baseTerrain[tile] = BaseGrassland

		desertsHeight := desertsFractal.GetHeight(c.Col, c.Row)
		plainsHeight := plainsFractal.GetHeight(c.Col, c.Row)

		latitude := m.grid.TileLatitude(tile)
		latitude += float64(128-variationFractal.GetHeight(c.Col, c.Row)) / (255.0 * 5.0)
		latitude = clampLatitude(latitude)

		switch {
		case latitude >= snowLatitude:
			m.baseTerrain[tile] = BaseSnow
		case latitude >= tundraLatitude:
			m.baseTerrain[tile] = BaseTundra
		case latitude < grassLatitude:
			m.baseTerrain[tile] = BaseGrassland
		case desertsHeight >= desertBottom && desertsHeight <= desertTop &&
			latitude >= desertBottomLatitude && latitude < desertTopLatitude:
			m.baseTerrain[tile] = BaseDesert
		case plainsHeight >= plainsBottom && plainsHeight <= plainsTop:
			m.baseTerrain[tile] = BasePlain
		}
	}
}

func clampLatitude(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
