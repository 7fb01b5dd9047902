package hexgrid

import "testing"

func TestOffsetRoundTrip(t *testing.T) {
	hexes := []Hex{{3, 4}, {0, 0}, {-2, 5}, {7, -3}, {-4, -4}}
	coords := []OffsetCoordinate{{1, -3}, {0, 0}, {5, 2}, {-2, 4}}

	for _, orientation := range []Orientation{Pointy, Flat} {
		for _, offset := range []Offset{OffsetEven, OffsetOdd} {
			for _, h := range hexes {
				if got := h.ToOffset(offset, orientation).ToHex(offset, orientation); got != h {
					t.Errorf("%v/%v: hex %v round-tripped to %v", orientation, offset, h, got)
				}
			}
			for _, c := range coords {
				if got := c.ToHex(offset, orientation).ToOffset(offset, orientation); got != c {
					t.Errorf("%v/%v: offset %v round-tripped to %v", orientation, offset, c, got)
				}
			}
		}
	}
}

func TestOffsetKnownConversions(t *testing.T) {
	tests := []struct {
		name        string
		hex         Hex
		offset      Offset
		orientation Orientation
		want        OffsetCoordinate
	}{
		{"even-q", Hex{1, 2}, OffsetEven, Flat, OffsetCoordinate{1, 3}},
		{"odd-q", Hex{1, 2}, OffsetOdd, Flat, OffsetCoordinate{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hex.ToOffset(tt.offset, tt.orientation); got != tt.want {
				t.Errorf("ToOffset = %v, want %v", got, tt.want)
			}
			if got := tt.want.ToHex(tt.offset, tt.orientation); got != tt.hex {
				t.Errorf("ToHex = %v, want %v", got, tt.hex)
			}
		})
	}
}

func TestDoubledRoundTrip(t *testing.T) {
	for _, orientation := range []Orientation{Pointy, Flat} {
		for _, h := range []Hex{{3, 4}, {0, 0}, {-2, 5}} {
			if got := h.ToDoubled(orientation).ToHex(orientation); got != h {
				t.Errorf("%v: hex %v round-tripped to %v", orientation, h, got)
			}
		}
	}
}

func TestDoubledKnownConversions(t *testing.T) {
	if got := (Hex{1, 2}).ToDoubled(Flat); got != (DoubledCoordinate{1, 5}) {
		t.Errorf("flat doubled = %v, want {1 5}", got)
	}
	if got := (Hex{1, 2}).ToDoubled(Pointy); got != (DoubledCoordinate{4, 2}) {
		t.Errorf("pointy doubled = %v, want {4 2}", got)
	}
	if got := (DoubledCoordinate{1, 5}).ToHex(Flat); got != (Hex{1, 2}) {
		t.Errorf("flat doubled to hex = %v, want {1 2}", got)
	}
	if got := (DoubledCoordinate{4, 2}).ToHex(Pointy); got != (Hex{1, 2}) {
		t.Errorf("pointy doubled to hex = %v, want {1 2}", got)
	}
}
