package hexgrid

import "fmt"

// NoTile is returned by tile lookups that fall outside an unwrapped grid.
const NoTile = -1

// HexGrid is a finite rectangular hex grid addressed by linear tile index
// (row-major over offset coordinates). When WrapX or WrapY is set, the
// corresponding axis is identified modularly, turning the rectangle into a
// cylinder or torus.
type HexGrid struct {
	Width  int
	Height int
	WrapX  bool
	WrapY  bool
	Offset Offset
	Layout HexLayout
}

// NewHexGrid builds a grid and centers its layout origin so that pixel
// coordinates are symmetric around zero. It returns an error for
// non-positive dimensions.
func NewHexGrid(width, height int, wrapX, wrapY bool, offset Offset, layout HexLayout) (HexGrid, error) {
	if width < 1 || height < 1 {
		return HexGrid{}, fmt.Errorf("hexgrid: grid dimensions must be positive, got %dx%d", width, height)
	}
	g := HexGrid{
		Width:  width,
		Height: height,
		WrapX:  wrapX,
		WrapY:  wrapY,
		Offset: offset,
		Layout: layout,
	}
	g.centerOrigin()
	return g, nil
}

// TileCount returns the number of tiles in the grid.
func (g *HexGrid) TileCount() int {
	return g.Width * g.Height
}

// TileFromOffset resolves an offset coordinate to a tile index, applying
// wrap normalization first. It returns NoTile when the coordinate falls
// outside an unwrapped axis.
func (g *HexGrid) TileFromOffset(c OffsetCoordinate) int {
	x, y := c.Col, c.Row
	if g.WrapX {
		x = remEuclid(x, g.Width)
	}
	if g.WrapY {
		y = remEuclid(y, g.Height)
	}
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return NoTile
	}
	return x + y*g.Width
}

// TileToOffset returns the offset coordinate of the tile index.
// It panics when the index is out of bounds.
func (g *HexGrid) TileToOffset(tile int) OffsetCoordinate {
	if tile < 0 || tile >= g.TileCount() {
		panic(fmt.Sprintf("hexgrid: tile index %d out of bounds for %dx%d grid", tile, g.Width, g.Height))
	}
	return OffsetCoordinate{tile % g.Width, tile / g.Width}
}

// TileToHex returns the axial coordinate of the tile index.
func (g *HexGrid) TileToHex(tile int) Hex {
	return g.TileToOffset(tile).ToHex(g.Offset, g.Layout.Orientation)
}

// TileFromHex resolves an axial coordinate to a tile index, or NoTile when
// it lies outside the grid.
func (g *HexGrid) TileFromHex(h Hex) int {
	return g.TileFromOffset(h.ToOffset(g.Offset, g.Layout.Orientation))
}

// TileLatitude returns the latitude of the tile's row: 0 at the equator and
// 1 at either pole.
func (g *HexGrid) TileLatitude(tile int) float64 {
	row := g.TileToOffset(tile).Row
	half := float64(g.Height) / 2
	lat := (half - float64(row)) / half
	if lat < 0 {
		return -lat
	}
	return lat
}

// Neighbor returns the tile index across the edge in the given direction,
// or NoTile when the neighbor falls off an unwrapped grid edge.
func (g *HexGrid) Neighbor(tile int, d Direction) int {
	hex := g.TileToHex(tile).Neighbor(g.Layout.Orientation, d)
	return g.TileFromHex(hex)
}

// Neighbors returns the existing neighbor tiles of a tile, in edge
// direction order.
func (g *HexGrid) Neighbors(tile int) []int {
	return g.TilesAtDistance(tile, 1)
}

// TilesAtDistance returns the existing tiles exactly distance away from the
// tile, in ring order.
func (g *HexGrid) TilesAtDistance(tile, distance int) []int {
	hexes := g.TileToHex(tile).HexesAtDistance(distance)
	tiles := make([]int, 0, len(hexes))
	for _, h := range hexes {
		if t := g.TileFromHex(h); t != NoTile {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// TilesInDistance returns the existing tiles within distance of the tile,
// including the tile itself.
func (g *HexGrid) TilesInDistance(tile, distance int) []int {
	hexes := g.TileToHex(tile).HexesInDistance(distance)
	tiles := make([]int, 0, len(hexes))
	for _, h := range hexes {
		if t := g.TileFromHex(h); t != NoTile {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// EdgeDirections returns the orientation's edge direction array.
func (g *HexGrid) EdgeDirections() [6]Direction {
	return g.Layout.Orientation.EdgeDirections()
}

// CornerDirections returns the orientation's corner direction array.
func (g *HexGrid) CornerDirections() [6]Direction {
	return g.Layout.Orientation.CornerDirections()
}

// OffsetToPixel returns the pixel center of the tile at the offset
// coordinate.
func (g *HexGrid) OffsetToPixel(c OffsetCoordinate) Point {
	return g.Layout.HexToPixel(c.ToHex(g.Offset, g.Layout.Orientation))
}

// PixelToOffset returns the offset coordinate of the tile containing the
// pixel position.
func (g *HexGrid) PixelToOffset(p Point) OffsetCoordinate {
	return g.Layout.PixelToHex(p).ToOffset(g.Offset, g.Layout.Orientation)
}

// boundTiles are the tile indices whose centers realize the pixel extremes
// of a rectangular grid: the two bottom corners plus their row mates, and
// the two top corners plus theirs. Indices outside tiny grids are dropped.
func (g *HexGrid) boundTiles() (lows []int, highs []int) {
	w, h := g.Width, g.Height
	count := w * h
	for _, t := range []int{0, 1, w} {
		if t >= 0 && t < count {
			lows = append(lows, t)
		}
	}
	for _, t := range []int{w*(h-1) - 1, w*h - 2, w*h - 1} {
		if t >= 0 && t < count {
			highs = append(highs, t)
		}
	}
	return lows, highs
}

// LeftBottom returns the minimum pixel-space corner of the grid's tile
// centers.
func (g *HexGrid) LeftBottom() Point {
	lows, _ := g.boundTiles()
	p := g.Layout.HexToPixel(g.TileToHex(lows[0]))
	minX, minY := p.X, p.Y
	for _, t := range lows[1:] {
		p := g.Layout.HexToPixel(g.TileToHex(t))
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}
	return Point{minX, minY}
}

// RightTop returns the maximum pixel-space corner of the grid's tile
// centers.
func (g *HexGrid) RightTop() Point {
	_, highs := g.boundTiles()
	p := g.Layout.HexToPixel(g.TileToHex(highs[0]))
	maxX, maxY := p.X, p.Y
	for _, t := range highs[1:] {
		p := g.Layout.HexToPixel(g.TileToHex(t))
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Point{maxX, maxY}
}

// Center returns the pixel-space midpoint of the grid bounds.
func (g *HexGrid) Center() Point {
	lb := g.LeftBottom()
	rt := g.RightTop()
	return Point{(lb.X + rt.X) / 2, (lb.Y + rt.Y) / 2}
}

// centerOrigin moves the layout origin so Center() lands on (0, 0).
func (g *HexGrid) centerOrigin() {
	g.Layout.Origin = Point{}
	c := g.Center()
	g.Layout.Origin = Point{-c.X, -c.Y}
}

// WithResizedLayout returns a copy of the grid whose hexes are newSize
// pixels, with the origin recentered. Renderers use this to derive
// minimap-scale grids from the world grid.
func (g *HexGrid) WithResizedLayout(newSize Point) HexGrid {
	resized := *g
	resized.Layout.Size = newSize
	resized.centerOrigin()
	return resized
}

// remEuclid returns the non-negative remainder of x mod m.
func remEuclid(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
