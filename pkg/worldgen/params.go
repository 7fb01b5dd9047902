package worldgen

import (
	"fmt"

	"github.com/opd-ai/worldgen/pkg/hexgrid"
)

// MapType selects the continent-shaping algorithm.
type MapType int

const (
	// MapTypeFractal produces scattered continents and islands.
	MapTypeFractal MapType = iota
	// MapTypePangaea biases land toward one central supercontinent.
	MapTypePangaea
)

// SeaLevel tunes the water percentage of the world.
type SeaLevel int

const (
	SeaLevelNormal SeaLevel = iota
	SeaLevelLow
	SeaLevelHigh
	SeaLevelRandom
)

// WorldAge tunes how much mountainous relief survives erosion.
type WorldAge int

const (
	WorldAgeNormal WorldAge = iota
	WorldAgeOld
	WorldAgeNew
)

// Temperature shifts the climate bands toward the poles or the equator.
type Temperature int

const (
	TemperatureNormal Temperature = iota
	TemperatureCool
	TemperatureHot
)

// Rainfall tunes the feature quotas.
type Rainfall int

const (
	RainfallNormal Rainfall = iota
	RainfallArid
	RainfallWet
	RainfallRandom
)

// MapParameters is the full configuration of one generation run. Together
// with the rule catalog it determines the output map exactly.
type MapParameters struct {
	Grid hexgrid.HexGrid

	MapType MapType
	Seed    int64

	SeaLevel    SeaLevel
	WorldAge    WorldAge
	Temperature Temperature
	Rainfall    Rainfall

	// LargeLakeNum is how many seeded inland lakes may grow beyond a single
	// tile.
	LargeLakeNum int
	// LakeMaxAreaSize is the largest water area that is reclassified as a
	// lake.
	LakeMaxAreaSize int
	// CoastExpandChance holds the per-iteration promotion chance for coast
	// expansion; its length bounds how far coast can creep from land.
	CoastExpandChance []float64
	// NaturalWonderNum is how many natural wonders to place.
	NaturalWonderNum int

	// CivilizationNum and CityStateNum bound the starting-location pass;
	// zero values fall back to the catalog list lengths.
	CivilizationNum int
	CityStateNum    int
}

// DefaultMapParameters returns a standard 100x50 wrapped world.
func DefaultMapParameters() MapParameters {
	layout := hexgrid.HexLayout{
		Orientation: hexgrid.Flat,
		Size:        hexgrid.Point{X: 8, Y: 8},
	}
	grid, err := hexgrid.NewHexGrid(100, 50, true, false, hexgrid.OffsetOdd, layout)
	if err != nil {
		panic(err)
	}
	return MapParameters{
		Grid:              grid,
		MapType:           MapTypeFractal,
		Seed:              0,
		SeaLevel:          SeaLevelNormal,
		WorldAge:          WorldAgeNormal,
		Temperature:       TemperatureNormal,
		Rainfall:          RainfallNormal,
		LargeLakeNum:      2,
		LakeMaxAreaSize:   9,
		CoastExpandChance: []float64{0.25, 0.25, 0.25},
		NaturalWonderNum:  6,
	}
}

// Validate checks the parameters for configurations the generator cannot
// produce a map from.
func (p *MapParameters) Validate() error {
	if p.Grid.Width < 1 || p.Grid.Height < 1 {
		return fmt.Errorf("worldgen: grid dimensions must be positive, got %dx%d", p.Grid.Width, p.Grid.Height)
	}
	if p.Grid.WrapX && p.Grid.Width%2 != 0 {
		return fmt.Errorf("worldgen: wrapped width must be even for a clean seam, got %d", p.Grid.Width)
	}
	if p.LakeMaxAreaSize < 0 {
		return fmt.Errorf("worldgen: lake max area size must be non-negative, got %d", p.LakeMaxAreaSize)
	}
	if p.NaturalWonderNum < 0 {
		return fmt.Errorf("worldgen: natural wonder count must be non-negative, got %d", p.NaturalWonderNum)
	}
	for i, chance := range p.CoastExpandChance {
		if chance < 0 || chance > 1 {
			return fmt.Errorf("worldgen: coast expand chance %d must be in [0,1], got %v", i, chance)
		}
	}
	return nil
}
