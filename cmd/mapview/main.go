// Command mapview is an interactive viewer for generated world maps. It
// renders the map once per generation, supports panning and zooming, shows
// a minimap derived from a resized grid layout, and regenerates with a new
// seed on demand.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/opd-ai/worldgen/pkg/hexgrid"
	"github.com/opd-ai/worldgen/pkg/worldgen"
	"github.com/opd-ai/worldgen/pkg/worldgen/snapshot"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	minimapWidth = 220
)

var (
	seed    = flag.Int64("seed", 12345, "Initial generation seed")
	width   = flag.Int("width", 100, "Map width in tiles")
	height  = flag.Int("height", 50, "Map height in tiles")
	pangaea = flag.Bool("pangaea", false, "Generate a pangaea instead of fractal continents")
)

// viewer is the ebiten game state: the current map, its rendered images,
// and the camera.
type viewer struct {
	params  worldgen.MapParameters
	tileMap *worldgen.TileMap

	mapImage     *ebiten.Image
	minimapImage *ebiten.Image

	cameraX float64
	cameraY float64
	zoom    float64

	status string
}

func newViewer() (*viewer, error) {
	params := worldgen.DefaultMapParameters()
	params.Seed = *seed
	if *pangaea {
		params.MapType = worldgen.MapTypePangaea
	}
	layout := hexgrid.HexLayout{Orientation: hexgrid.Flat, Size: hexgrid.Point{X: 8, Y: 8}}
	grid, err := hexgrid.NewHexGrid(*width, *height, true, false, hexgrid.OffsetOdd, layout)
	if err != nil {
		return nil, err
	}
	params.Grid = grid

	v := &viewer{params: params, zoom: 1}
	if err := v.regenerate(); err != nil {
		return nil, err
	}
	return v, nil
}

// regenerate builds the map for the current seed and refreshes both render
// targets.
func (v *viewer) regenerate() error {
	tileMap, err := worldgen.Generate(v.params, worldgen.StandardRuleset())
	if err != nil {
		return err
	}
	v.tileMap = tileMap

	raw := snapshot.Render(tileMap)
	v.mapImage = ebiten.NewImageFromImage(raw)

	// The minimap reuses the world grid at a reduced layout scale to size
	// itself proportionally.
	miniGrid := v.params.Grid.WithResizedLayout(hexgrid.Point{X: 2, Y: 2})
	aspect := (miniGrid.RightTop().Y - miniGrid.LeftBottom().Y) /
		(miniGrid.RightTop().X - miniGrid.LeftBottom().X)
	miniHeight := int(minimapWidth * aspect)
	if miniHeight < 1 {
		miniHeight = 1
	}
	v.minimapImage = ebiten.NewImageFromImage(snapshot.Resize(raw, minimapWidth, miniHeight))

	stats := tileMap.Stats()
	v.status = fmt.Sprintf("seed %d | %d rivers | %d wonders | %d areas",
		v.params.Seed, stats.RiverCount, stats.WonderCount, stats.AreaCount)
	return nil
}

func (v *viewer) Update() error {
	const panSpeed = 8

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.cameraX -= panSpeed / v.zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.cameraX += panSpeed / v.zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.cameraY -= panSpeed / v.zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.cameraY += panSpeed / v.zoom
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		v.zoom *= 1.25
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		v.zoom /= 1.25
		if v.zoom < 0.25 {
			v.zoom = 0.25
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.params.Seed++
		if err := v.regenerate(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 16, B: 24, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-v.cameraX, -v.cameraY)
	op.GeoM.Scale(v.zoom, v.zoom)
	screen.DrawImage(v.mapImage, op)

	// Minimap panel in the lower-right corner.
	miniW := v.minimapImage.Bounds().Dx()
	miniH := v.minimapImage.Bounds().Dy()
	x0 := float32(screenWidth - miniW - 12)
	y0 := float32(screenHeight - miniH - 12)
	vector.DrawFilledRect(screen, x0-2, y0-2, float32(miniW)+4, float32(miniH)+4, color.RGBA{A: 180}, false)
	miniOp := &ebiten.DrawImageOptions{}
	miniOp.GeoM.Translate(float64(x0), float64(y0))
	screen.DrawImage(v.minimapImage, miniOp)
	vector.StrokeRect(screen, x0, y0, float32(miniW), float32(miniH), 1, color.RGBA{R: 200, G: 200, B: 200, A: 255}, false)

	ebitenutil.DebugPrint(screen, v.status+"\narrows: pan  +/-: zoom  R: reroll  esc: quit")
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	v, err := newViewer()
	if err != nil {
		zenity.Error(fmt.Sprintf("Map generation failed: %v", err), zenity.Title("mapview"))
		log.Fatalf("Map generation failed: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("mapview")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatalf("Viewer exited with error: %v", err)
	}
}
