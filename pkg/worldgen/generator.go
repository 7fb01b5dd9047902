package worldgen

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// requiredFeatures are the catalog entries the feature pass consults; a
// catalog without them cannot drive generation.
var requiredFeatures = []string{"Ice", "Floodplain", "Oasis", "Marsh", "Jungle", "Forest"}

// Generator runs the world generation pipeline.
type Generator struct {
	logger *logrus.Entry
}

// NewGenerator creates a generator without logging.
func NewGenerator() *Generator {
	return NewGeneratorWithLogger(nil)
}

// NewGeneratorWithLogger creates a generator that logs pass progress to the
// given logger.
func NewGeneratorWithLogger(logger *logrus.Logger) *Generator {
	var entry *logrus.Entry
	if logger != nil {
		entry = logger.WithFields(logrus.Fields{
			"generator": "world_map",
		})
	}
	return &Generator{logger: entry}
}

// Generate produces the world map for the parameters and rule catalog.
// Identical (params, rules) inputs produce identical maps.
func Generate(params MapParameters, rules *Ruleset) (*TileMap, error) {
	return NewGenerator().Generate(params, rules)
}

// Generate runs the full pipeline: terrain types, coasts, areas, lakes,
// climate bands, rivers, features, natural wonders, and starting locations.
func (g *Generator) Generate(params MapParameters, rules *Ruleset) (*TileMap, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rules == nil {
		return nil, fmt.Errorf("worldgen: rule catalog is required")
	}
	for _, name := range requiredFeatures {
		if _, ok := rules.Features[name]; !ok {
			return nil, fmt.Errorf("worldgen: rule catalog is missing feature %q", name)
		}
	}

	if g.logger != nil && g.logger.Logger.GetLevel() >= logrus.DebugLevel {
		g.logger.WithFields(logrus.Fields{
			"seed":    params.Seed,
			"width":   params.Grid.Width,
			"height":  params.Grid.Height,
			"mapType": params.MapType,
		}).Debug("starting map generation")
	}

	m := newTileMap(&params)

	switch params.MapType {
	case MapTypePangaea:
		m.generateTerrainTypesForPangaea(&params)
	case MapTypeFractal:
		m.generateTerrainTypesForFractal(&params)
	default:
		return nil, fmt.Errorf("worldgen: unknown map type %d", params.MapType)
	}
	g.debugPass("terrain types")

	m.generateCoastAndOcean(&params)
	g.debugPass("coast and ocean")

	m.recalculateAreas()
	m.generateLakes(&params)
	g.debugPass("lakes")

	m.generateBaseTerrains(&params)
	g.debugPass("climate bands")

	m.addRivers(&params)
	g.debugPass("rivers")

	m.addLakes(&params)
	m.recalculateAreas()
	g.debugPass("inland lakes")

	m.addFeatures(&params, rules)
	g.debugPass("features")

	m.placeNaturalWonders(&params, rules)
	m.recalculateAreas()
	g.debugPass("natural wonders")

	m.assignStartingLocations(&params, rules)

	if g.logger != nil {
		stats := m.Stats()
		g.logger.WithFields(logrus.Fields{
			"landTiles":  stats.LandTiles,
			"waterTiles": stats.WaterTiles,
			"rivers":     stats.RiverCount,
			"wonders":    stats.WonderCount,
			"areas":      stats.AreaCount,
		}).Info("map generation complete")
	}

	return m, nil
}

// debugPass logs a one-line progress marker after a pipeline pass.
func (g *Generator) debugPass(name string) {
	if g.logger == nil || g.logger.Logger.GetLevel() < logrus.DebugLevel {
		return
	}
	g.logger.WithField("pass", name).Debug("pass complete")
}
