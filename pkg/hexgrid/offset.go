package hexgrid

// Offset selects which rows (pointy) or columns (flat) shift half a hex when
// converting between axial and offset coordinates.
type Offset int

const (
	// OffsetEven shifts even rows/columns.
	OffsetEven Offset = iota
	// OffsetOdd shifts odd rows/columns.
	OffsetOdd
)

// Value returns the parity sign used by the conversion formulas:
// +1 for OffsetEven, -1 for OffsetOdd.
func (o Offset) Value() int {
	if o == OffsetEven {
		return 1
	}
	return -1
}

// String returns "even" or "odd".
func (o Offset) String() string {
	if o == OffsetEven {
		return "even"
	}
	return "odd"
}

// OffsetCoordinate is a rectangular (col, row) coordinate.
type OffsetCoordinate struct {
	Col int
	Row int
}

// ToHex converts the offset coordinate back to axial under the given parity
// and orientation. It is the exact inverse of Hex.ToOffset.
func (c OffsetCoordinate) ToHex(offset Offset, orientation Orientation) Hex {
	if orientation == Pointy {
		q := c.Col - (c.Row+offset.Value()*(c.Row&1))/2
		return Hex{q, c.Row}
	}
	r := c.Row - (c.Col+offset.Value()*(c.Col&1))/2
	return Hex{c.Col, r}
}

// ToOffset converts the axial coordinate to an offset coordinate under the
// given parity and orientation.
func (h Hex) ToOffset(offset Offset, orientation Orientation) OffsetCoordinate {
	if orientation == Pointy {
		col := h.Q + (h.R+offset.Value()*(h.R&1))/2
		return OffsetCoordinate{col, h.R}
	}
	row := h.R + (h.Q+offset.Value()*(h.Q&1))/2
	return OffsetCoordinate{h.Q, row}
}

// DoubledCoordinate is a rectangular coordinate where one axis is doubled so
// that every hex lands on an integer position without parity rules.
type DoubledCoordinate struct {
	Col int
	Row int
}

// ToDoubled converts the axial coordinate to a doubled coordinate.
func (h Hex) ToDoubled(orientation Orientation) DoubledCoordinate {
	if orientation == Pointy {
		return DoubledCoordinate{2*h.Q + h.R, h.R}
	}
	return DoubledCoordinate{h.Q, 2*h.R + h.Q}
}

// ToHex converts the doubled coordinate back to axial. It is the exact
// inverse of Hex.ToDoubled.
func (c DoubledCoordinate) ToHex(orientation Orientation) Hex {
	if orientation == Pointy {
		return Hex{(c.Col - c.Row) / 2, c.Row}
	}
	return Hex{c.Col, (c.Row - c.Col) / 2}
}
