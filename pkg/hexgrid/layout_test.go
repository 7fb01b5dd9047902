package hexgrid

import (
	"math"
	"testing"
)

func TestPixelRoundTrip(t *testing.T) {
	layouts := []HexLayout{
		{Orientation: Flat, Size: Point{10, 15}, Origin: Point{35, 71}},
		{Orientation: Pointy, Size: Point{10, 15}, Origin: Point{35, 71}},
		{Orientation: Pointy, Size: Point{8, 8}, Origin: Point{0, 0}},
	}
	hexes := []Hex{{3, 4}, {0, 0}, {-5, 2}, {10, -7}}
	for _, layout := range layouts {
		for _, h := range hexes {
			if got := layout.PixelToHex(layout.HexToPixel(h)); got != h {
				t.Errorf("%v: pixel round trip of %v = %v", layout.Orientation, h, got)
			}
		}
	}
}

func TestPolygonCorners(t *testing.T) {
	layout := HexLayout{Orientation: Pointy, Size: Point{10, 10}}
	center := layout.HexToPixel(Hex{0, 0})
	for i, corner := range layout.PolygonCorners(Hex{0, 0}) {
		dx := corner.X - center.X
		dy := corner.Y - center.Y
		dist := math.Hypot(dx, dy)
		if math.Abs(dist-10) > 1e-9 {
			t.Errorf("corner %d at distance %v from center, want 10", i, dist)
		}
	}
}

func TestCornerByDirection(t *testing.T) {
	layout := HexLayout{Orientation: Pointy, Size: Point{10, 10}}
	// The pointy North corner sits straight above the center.
	corner := layout.Corner(Hex{0, 0}, North)
	center := layout.HexToPixel(Hex{0, 0})
	if math.Abs(corner.X-center.X) > 1e-9 {
		t.Errorf("north corner x = %v, want %v", corner.X, center.X)
	}
	if corner.Y <= center.Y {
		t.Errorf("north corner y = %v, want above center %v", corner.Y, center.Y)
	}
}

func TestCornerInvalidDirectionPanics(t *testing.T) {
	layout := HexLayout{Orientation: Pointy, Size: Point{10, 10}}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for pointy East corner")
		}
	}()
	_ = layout.Corner(Hex{0, 0}, East)
}
