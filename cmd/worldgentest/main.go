// Command worldgentest generates a world map from the command line and
// prints it as ASCII, as aggregate statistics, or writes it to a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/worldgen/pkg/hexgrid"
	"github.com/opd-ai/worldgen/pkg/worldgen"
	"github.com/opd-ai/worldgen/pkg/worldgen/snapshot"
)

var (
	width       = flag.Int("width", 100, "Map width in tiles")
	height      = flag.Int("height", 50, "Map height in tiles")
	seed        = flag.Int64("seed", 12345, "Generation seed")
	mapType     = flag.String("type", "fractal", "Map type: fractal or pangaea")
	orientation = flag.String("orientation", "flat", "Hex orientation: pointy or flat")
	seaLevel    = flag.String("sealevel", "normal", "Sea level: low, normal, high, or random")
	worldAge    = flag.String("age", "normal", "World age: old, normal, or new")
	temperature = flag.String("temperature", "normal", "Temperature: cool, normal, or hot")
	rainfall    = flag.String("rainfall", "normal", "Rainfall: arid, normal, wet, or random")
	wrapX       = flag.Bool("wrapx", true, "Wrap the map horizontally")
	visualize   = flag.String("visualize", "ascii", "Visualization mode: ascii, stats, or png")
	output      = flag.String("output", "", "Output file (console when empty; required for png)")
	verbose     = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	params, err := buildParameters()
	if err != nil {
		log.Fatalf("Invalid parameters: %v", err)
	}

	log.Printf("Generating %s map, %dx%d, seed %d", *mapType, *width, *height, *seed)

	gen := worldgen.NewGeneratorWithLogger(logger)
	tileMap, err := gen.Generate(params, worldgen.StandardRuleset())
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	switch *visualize {
	case "png":
		if *output == "" {
			log.Fatal("png visualization requires -output")
		}
		img := snapshot.Render(tileMap)
		if err := snapshot.WritePNG(img, *output); err != nil {
			log.Fatalf("Writing PNG failed: %v", err)
		}
		log.Printf("Map saved to %s", *output)
	case "stats":
		emit(renderStats(tileMap))
	case "ascii":
		emit(renderASCII(tileMap))
	default:
		log.Fatalf("Unknown visualization mode: %s (use 'ascii', 'stats', or 'png')", *visualize)
	}
}

func buildParameters() (worldgen.MapParameters, error) {
	params := worldgen.DefaultMapParameters()
	params.Seed = *seed

	orient := hexgrid.Flat
	if *orientation == "pointy" {
		orient = hexgrid.Pointy
	}
	layout := hexgrid.HexLayout{Orientation: orient, Size: hexgrid.Point{X: 8, Y: 8}}
	grid, err := hexgrid.NewHexGrid(*width, *height, *wrapX, false, hexgrid.OffsetOdd, layout)
	if err != nil {
		return params, err
	}
	params.Grid = grid

	switch *mapType {
	case "pangaea":
		params.MapType = worldgen.MapTypePangaea
	case "fractal":
		params.MapType = worldgen.MapTypeFractal
	default:
		return params, fmt.Errorf("unknown map type %q", *mapType)
	}

	switch *seaLevel {
	case "low":
		params.SeaLevel = worldgen.SeaLevelLow
	case "high":
		params.SeaLevel = worldgen.SeaLevelHigh
	case "random":
		params.SeaLevel = worldgen.SeaLevelRandom
	}
	switch *worldAge {
	case "old":
		params.WorldAge = worldgen.WorldAgeOld
	case "new":
		params.WorldAge = worldgen.WorldAgeNew
	}
	switch *temperature {
	case "cool":
		params.Temperature = worldgen.TemperatureCool
	case "hot":
		params.Temperature = worldgen.TemperatureHot
	}
	switch *rainfall {
	case "arid":
		params.Rainfall = worldgen.RainfallArid
	case "wet":
		params.Rainfall = worldgen.RainfallWet
	case "random":
		params.Rainfall = worldgen.RainfallRandom
	}

	return params, nil
}

func emit(rendered string) {
	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
			log.Fatalf("Failed to write output file: %v", err)
		}
		log.Printf("Output saved to %s", *output)
		return
	}
	fmt.Println(rendered)
}

// renderASCII draws one rune per tile: terrain relief over climate color is
// collapsed to a small glyph set.
func renderASCII(m *worldgen.TileMap) string {
	grid := m.WorldGrid()
	var sb strings.Builder
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			tile := m.TileFromOffset(hexgrid.OffsetCoordinate{Col: col, Row: row})
			sb.WriteRune(tileGlyph(m, tile))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func tileGlyph(m *worldgen.TileMap, tile int) rune {
	if m.NaturalWonder(tile) != "" {
		return '*'
	}
	switch m.TerrainType(tile) {
	case worldgen.TerrainMountain:
		return '^'
	case worldgen.TerrainHill:
		return 'n'
	}
	switch m.Feature(tile) {
	case worldgen.FeatureForest:
		return 'f'
	case worldgen.FeatureJungle:
		return 'j'
	case worldgen.FeatureIce:
		return '#'
	case worldgen.FeatureMarsh:
		return 'm'
	case worldgen.FeatureOasis:
		return 'o'
	}
	switch m.BaseTerrain(tile) {
	case worldgen.BaseOcean:
		return '~'
	case worldgen.BaseCoast:
		return '-'
	case worldgen.BaseLake:
		return 'l'
	case worldgen.BaseDesert:
		return 'd'
	case worldgen.BasePlain:
		return 'p'
	case worldgen.BaseTundra:
		return 't'
	case worldgen.BaseSnow:
		return 's'
	default:
		return '.'
	}
}

func renderStats(m *worldgen.TileMap) string {
	stats := m.Stats()
	var sb strings.Builder
	total := m.TileCount()
	fmt.Fprintf(&sb, "Tiles: %d (%d land, %d water, %.1f%% water)\n",
		total, stats.LandTiles, stats.WaterTiles, 100*float64(stats.WaterTiles)/float64(total))
	fmt.Fprintf(&sb, "Areas: %d\n", stats.AreaCount)
	fmt.Fprintf(&sb, "Rivers: %d (%d edges)\n", stats.RiverCount, stats.RiverEdges)
	fmt.Fprintf(&sb, "Natural wonders: %d\n", stats.WonderCount)
	fmt.Fprintf(&sb, "Starts: %d civilizations, %d city-states\n",
		len(m.StartingCivilizations()), len(m.StartingCityStates()))
	fmt.Fprintf(&sb, "Terrain: water=%d flatland=%d hill=%d mountain=%d\n",
		stats.TerrainCounts[worldgen.TerrainWater],
		stats.TerrainCounts[worldgen.TerrainFlatland],
		stats.TerrainCounts[worldgen.TerrainHill],
		stats.TerrainCounts[worldgen.TerrainMountain])
	for base := worldgen.BaseOcean; base <= worldgen.BaseSnow; base++ {
		fmt.Fprintf(&sb, "  %-10s %d\n", base.String(), stats.BaseCounts[base])
	}
	for feature := worldgen.FeatureForest; feature <= worldgen.FeatureFallout; feature++ {
		if count := stats.FeatureCounts[feature]; count > 0 {
			fmt.Fprintf(&sb, "  %-10s %d\n", feature.String(), count)
		}
	}
	return sb.String()
}
