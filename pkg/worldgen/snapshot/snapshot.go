// Package snapshot renders generated maps to images for visual inspection
// and regression testing. Rendering is deterministic: the same map produces
// the same pixels, so tests can compare content hashes instead of full
// image files.
package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/opd-ai/worldgen/pkg/hexgrid"
	"github.com/opd-ai/worldgen/pkg/worldgen"
)

// tileSize is the square pixel footprint of one tile in the raw render.
const tileSize = 8

// baseColors maps base terrain to its render color.
var baseColors = map[worldgen.BaseTerrain]color.RGBA{
	worldgen.BaseOcean:     {R: 22, G: 60, B: 112, A: 255},
	worldgen.BaseCoast:     {R: 60, G: 120, B: 175, A: 255},
	worldgen.BaseLake:      {R: 85, G: 150, B: 200, A: 255},
	worldgen.BaseGrassland: {R: 105, G: 150, B: 65, A: 255},
	worldgen.BasePlain:     {R: 175, G: 160, B: 85, A: 255},
	worldgen.BaseDesert:    {R: 220, G: 200, B: 140, A: 255},
	worldgen.BaseTundra:    {R: 140, G: 140, B: 120, A: 255},
	worldgen.BaseSnow:      {R: 235, G: 240, B: 245, A: 255},
}

// featureColors maps features to their overlay colors.
var featureColors = map[worldgen.Feature]color.RGBA{
	worldgen.FeatureForest:     {R: 55, G: 100, B: 45, A: 255},
	worldgen.FeatureJungle:     {R: 35, G: 90, B: 40, A: 255},
	worldgen.FeatureMarsh:      {R: 80, G: 110, B: 80, A: 255},
	worldgen.FeatureFloodplain: {R: 150, G: 170, B: 90, A: 255},
	worldgen.FeatureOasis:      {R: 90, G: 160, B: 120, A: 255},
	worldgen.FeatureIce:        {R: 220, G: 230, B: 240, A: 255},
	worldgen.FeatureAtoll:      {R: 120, G: 190, B: 170, A: 255},
	worldgen.FeatureFallout:    {R: 120, G: 110, B: 50, A: 255},
}

var (
	hillShade     = color.RGBA{R: 0, G: 0, B: 0, A: 40}
	mountainColor = color.RGBA{R: 95, G: 90, B: 85, A: 255}
	wonderColor   = color.RGBA{R: 200, G: 80, B: 170, A: 255}
	riverColor    = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	startColor    = color.RGBA{R: 255, G: 220, B: 40, A: 255}
)

// Render rasterizes the map, one tileSize square per tile with odd rows or
// columns shifted half a tile to suggest the hex stagger. River edges draw
// as short strokes on the hosting tile and starting locations as center
// dots.
func Render(m *worldgen.TileMap) *image.RGBA {
	grid := m.WorldGrid()
	width := grid.Width*tileSize + tileSize/2
	height := grid.Height*tileSize + tileSize/2
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for tile := 0; tile < m.TileCount(); tile++ {
		c := m.TileToOffset(tile)
		x0, y0 := tileOrigin(grid.Layout.Orientation == hexgrid.Pointy, c)

		fill := baseColors[m.BaseTerrain(tile)]
		if m.TerrainType(tile) == worldgen.TerrainMountain {
			fill = mountainColor
		}
		if f := m.Feature(tile); f != worldgen.FeatureNone {
			if fc, ok := featureColors[f]; ok {
				fill = fc
			}
		}
		if m.NaturalWonder(tile) != "" {
			fill = wonderColor
		}

		fillRect(img, x0, y0, tileSize, tileSize, fill)
		if m.TerrainType(tile) == worldgen.TerrainHill {
			fillRect(img, x0+1, y0+1, tileSize-2, tileSize-2, blend(fill, hillShade))
		}
	}

	for _, edge := range m.RiverEdges() {
		c := m.TileToOffset(edge.Tile)
		x0, y0 := tileOrigin(grid.Layout.Orientation == hexgrid.Pointy, c)
		fillRect(img, x0, y0+tileSize-2, tileSize, 2, riverColor)
	}

	for tile := range m.StartingCivilizations() {
		c := m.TileToOffset(tile)
		x0, y0 := tileOrigin(grid.Layout.Orientation == hexgrid.Pointy, c)
		fillRect(img, x0+tileSize/2-1, y0+tileSize/2-1, 3, 3, startColor)
	}

	return img
}

// tileOrigin returns the pixel origin of a tile, staggering odd rows
// (pointy) or odd columns (flat) by half a tile.
func tileOrigin(pointy bool, c hexgrid.OffsetCoordinate) (int, int) {
	x := c.Col * tileSize
	y := c.Row * tileSize
	if pointy {
		if c.Row%2 != 0 {
			x += tileSize / 2
		}
	} else {
		if c.Col%2 != 0 {
			y += tileSize / 2
		}
	}
	return x, y
}

// Resize scales the rendered image to the given bounds using Catmull-Rom
// interpolation.
func Resize(img *image.RGBA, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}

// Hash returns a hex SHA-256 of the image pixels, suitable for golden
// determinism tests.
func Hash(img *image.RGBA) string {
	sum := sha256.Sum256(img.Pix)
	return hex.EncodeToString(sum[:])
}

// WritePNG writes the image to path, creating parent directories.
func WritePNG(img *image.RGBA, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("snapshot: creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("snapshot: encoding %s: %w", path, err)
	}
	return nil
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.RGBA) {
	bounds := img.Bounds()
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func blend(base, overlay color.RGBA) color.RGBA {
	a := int(overlay.A)
	return color.RGBA{
		R: uint8((int(base.R)*(255-a) + int(overlay.R)*a) / 255),
		G: uint8((int(base.G)*(255-a) + int(overlay.G)*a) / 255),
		B: uint8((int(base.B)*(255-a) + int(overlay.B)*a) / 255),
		A: 255,
	}
}
