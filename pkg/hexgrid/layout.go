package hexgrid

import (
	"fmt"
	"math"
)

// Sqrt3 is the square root of three, used throughout the pixel transforms.
const Sqrt3 = 1.7320508075688772935274463415058723669428

// Point is a position in pixel space.
type Point struct {
	X float64
	Y float64
}

// Add returns p + other componentwise.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Sub returns p - other componentwise.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Mul returns p scaled componentwise by other.
func (p Point) Mul(other Point) Point {
	return Point{p.X * other.X, p.Y * other.Y}
}

// matrices holds the column-major 2x2 forward and backward transforms for an
// orientation, plus the corner start angle in sixths of a turn.
type matrices struct {
	f          [4]float64
	b          [4]float64
	startAngle float64
}

var pointyMatrices = matrices{
	f:          [4]float64{Sqrt3, 0, Sqrt3 / 2, 1.5},
	b:          [4]float64{Sqrt3 / 3, 0, -1.0 / 3, 2.0 / 3},
	startAngle: 0.5,
}

var flatMatrices = matrices{
	f:          [4]float64{1.5, Sqrt3 / 2, 0, Sqrt3},
	b:          [4]float64{2.0 / 3, -1.0 / 3, 0, Sqrt3 / 3},
	startAngle: 0,
}

func (o Orientation) matrices() matrices {
	if o == Pointy {
		return pointyMatrices
	}
	return flatMatrices
}

// HexLayout maps hexes to pixel space: an orientation, a per-axis hex size,
// and a pixel origin for hex (0, 0).
type HexLayout struct {
	Orientation Orientation
	Size        Point
	Origin      Point
}

// HexToPixel returns the pixel-space center of the hex.
func (l HexLayout) HexToPixel(h Hex) Point {
	m := l.Orientation.matrices()
	x := (m.f[0]*float64(h.Q) + m.f[2]*float64(h.R)) * l.Size.X
	y := (m.f[1]*float64(h.Q) + m.f[3]*float64(h.R)) * l.Size.Y
	return Point{x + l.Origin.X, y + l.Origin.Y}
}

// PixelToHex returns the hex whose area contains the pixel position.
func (l HexLayout) PixelToHex(p Point) Hex {
	m := l.Orientation.matrices()
	pt := Point{(p.X - l.Origin.X) / l.Size.X, (p.Y - l.Origin.Y) / l.Size.Y}
	return Round(FractionalHex{
		Q: m.b[0]*pt.X + m.b[2]*pt.Y,
		R: m.b[1]*pt.X + m.b[3]*pt.Y,
	})
}

// cornerOffset returns the pixel offset from a hex center to corner i.
func (l HexLayout) cornerOffset(i int) Point {
	m := l.Orientation.matrices()
	angle := 2 * math.Pi * (m.startAngle - float64(i)) / 6
	return Point{l.Size.X * math.Cos(angle), l.Size.Y * math.Sin(angle)}
}

// PolygonCorner returns the pixel position of corner i (0..5) of the hex.
func (l HexLayout) PolygonCorner(h Hex, i int) Point {
	return l.HexToPixel(h).Add(l.cornerOffset(i))
}

// PolygonCorners returns all six corner positions of the hex in canonical
// corner order.
func (l HexLayout) PolygonCorners(h Hex) [6]Point {
	var corners [6]Point
	for i := range corners {
		corners[i] = l.PolygonCorner(h, i)
	}
	return corners
}

// Corner returns the pixel position of the hex vertex in the given corner
// direction. It panics when d is not a corner direction for the layout's
// orientation.
func (l HexLayout) Corner(h Hex, d Direction) Point {
	i := l.Orientation.CornerIndex(d)
	if i < 0 {
		panic(fmt.Sprintf("hexgrid: %v is not a corner direction for %v orientation", d, l.Orientation))
	}
	return l.PolygonCorner(h, i)
}
