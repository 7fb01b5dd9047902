// Package fractal implements the integer height-field synthesizer behind the
// world generator: a diamond-square fractal with wrap, polar, and rift
// options, a Voronoi ridge blender for mountain ranges, and percentile
// sampling so callers can express thresholds as "top N percent" without
// knowing the height distribution.
package fractal

import (
	"fmt"
	"math/rand"
	"sort"
)

const (
	// DefaultWidthExp is the source-array width exponent used when a
	// negative exponent is requested.
	DefaultWidthExp = 7
	// DefaultHeightExp is the source-array height exponent used when a
	// negative exponent is requested.
	DefaultHeightExp = 6
)

// Flags configures fractal creation.
type Flags struct {
	// WrapX connects the left and right edges of the source array.
	WrapX bool
	// WrapY connects the top and bottom edges of the source array.
	WrapY bool
	// Percent rescales sampled heights from [0,255] to [0,99].
	Percent bool
	// Polar zeroes the unwrapped edges so the poles read as low ground.
	Polar bool
	// CenterRift attenuates a strip through the middle of each wrapped
	// axis.
	CenterRift bool
	// InvertHeights flips the height field after synthesis.
	InvertHeights bool
}

// Fractal is a synthesized 2-D integer height field at power-of-two source
// resolution, sampled down to map resolution with bilinear interpolation.
type Fractal struct {
	mapWidth  int
	mapHeight int
	flags     Flags
	widthExp  int
	heightExp int

	// arr is indexed [x][y] and sized (fractalWidth+1) x (fractalHeight+1);
	// the extra row and column mirror the first under wrap.
	arr [][]int

	fractalWidth  int
	fractalHeight int
	widthRatio    float64
	heightRatio   float64
}

// New allocates an empty fractal for the given map size. Negative exponents
// select the defaults.
func New(mapWidth, mapHeight int, flags Flags, widthExp, heightExp int) *Fractal {
	if widthExp < 0 {
		widthExp = DefaultWidthExp
	}
	if heightExp < 0 {
		heightExp = DefaultHeightExp
	}
	fractalWidth := 1 << widthExp
	fractalHeight := 1 << heightExp

	arr := make([][]int, fractalWidth+1)
	for x := range arr {
		arr[x] = make([]int, fractalHeight+1)
	}

	return &Fractal{
		mapWidth:      mapWidth,
		mapHeight:     mapHeight,
		flags:         flags,
		widthExp:      widthExp,
		heightExp:     heightExp,
		arr:           arr,
		fractalWidth:  fractalWidth,
		fractalHeight: fractalHeight,
		widthRatio:    float64(fractalWidth) / float64(mapWidth),
		heightRatio:   float64(fractalHeight) / float64(mapHeight),
	}
}

// Create synthesizes a fractal with the given grain. Smaller grain yields
// smoother, larger-scale structure.
func Create(rng *rand.Rand, mapWidth, mapHeight, grain int, flags Flags, widthExp, heightExp int) *Fractal {
	f := New(mapWidth, mapHeight, flags, widthExp, heightExp)
	f.init(grain, rng, nil)
	return f
}

// CreateRifts synthesizes a fractal and then carves a wrap-seam rift whose
// shape is driven by the rifts fractal. Assumes WrapX.
func CreateRifts(rng *rand.Rand, mapWidth, mapHeight, grain int, flags Flags, rifts *Fractal, widthExp, heightExp int) *Fractal {
	f := New(mapWidth, mapHeight, flags, widthExp, heightExp)
	f.init(grain, rng, rifts)
	return f
}

// init seeds the corner grid and runs the combined diamond-square passes.
// It panics when the exponent/grain combination would need more than the
// supported eight refinement passes.
func (f *Fractal) init(grain int, rng *rand.Rand, rifts *Fractal) {
	minExp := minInt(f.widthExp, f.heightExp)
	smooth := clampInt(minExp-grain, 0, minExp)
	if smooth >= 8 {
		panic(fmt.Sprintf("fractal: min(widthExp, heightExp)-grain must stay below 8, got %d", smooth))
	}

	// Seed the vertices of the initial (2^smooth)-sized grid. Under wrap
	// the final row/column duplicates the first, so it is skipped here and
	// refreshed at the start of every pass instead.
	hintWidth := f.fractalWidth >> smooth
	if !f.flags.WrapX {
		hintWidth++
	}
	hintHeight := f.fractalHeight >> smooth
	if !f.flags.WrapY {
		hintHeight++
	}
	for x := 0; x < hintWidth; x++ {
		for y := 0; y < hintHeight; y++ {
			f.arr[x<<smooth][y<<smooth] = rng.Intn(256)
		}
	}

	for pass := smooth - 1; pass >= 0; pass-- {
		f.preprocessBoundaries()

		// screen masks out vertices already settled by earlier passes.
		screen := (1 << (pass + 1)) - 1
		xEnd := f.fractalWidth >> pass
		if !f.flags.WrapX {
			xEnd++
		}
		yEnd := f.fractalHeight >> pass
		if !f.flags.WrapY {
			yEnd++
		}
		for x := 0; x < xEnd; x++ {
			for y := 0; y < yEnd; y++ {
				xBit := (x << pass) & screen
				yBit := (y << pass) & screen
				var sum int
				switch {
				case xBit != 0 && yBit != 0:
					sum = f.arr[(x-1)<<pass][(y-1)<<pass] +
						f.arr[(x+1)<<pass][(y-1)<<pass] +
						f.arr[(x-1)<<pass][(y+1)<<pass] +
						f.arr[(x+1)<<pass][(y+1)<<pass]
					sum >>= 2
				case xBit != 0:
					sum = f.arr[(x-1)<<pass][y<<pass] + f.arr[(x+1)<<pass][y<<pass]
					sum >>= 1
				case yBit != 0:
					sum = f.arr[x<<pass][(y-1)<<pass] + f.arr[x<<pass][(y+1)<<pass]
					sum >>= 1
				default:
					// Settled in a previous pass.
					continue
				}
				sum += rng.Intn(1 << (8 - smooth + pass))
				sum -= 1 << (7 - smooth + pass)
				f.arr[x<<pass][y<<pass] = clampInt(sum, 0, 255)
			}
		}
	}

	if rifts != nil {
		f.tectonicAction(rifts)
	}

	if f.flags.InvertHeights {
		for x := range f.arr {
			for y := range f.arr[x] {
				f.arr[x][y] = 255 - f.arr[x][y]
			}
		}
	}
}

// preprocessBoundaries refreshes the duplicated wrap row/column, zeroes the
// polar edges, and applies the center-rift attenuation. Runs at the start of
// every diamond-square pass.
func (f *Fractal) preprocessBoundaries() {
	if f.flags.WrapY {
		for x := 0; x <= f.fractalWidth; x++ {
			f.arr[x][f.fractalHeight] = f.arr[x][0]
		}
	} else if f.flags.Polar {
		for x := 0; x <= f.fractalWidth; x++ {
			f.arr[x][0] = 0
			f.arr[x][f.fractalHeight] = 0
		}
	}

	if f.flags.WrapX {
		for y := 0; y <= f.fractalHeight; y++ {
			f.arr[f.fractalWidth][y] = f.arr[0][y]
		}
	} else if f.flags.Polar {
		for y := 0; y <= f.fractalHeight; y++ {
			f.arr[0][y] = 0
			f.arr[f.fractalWidth][y] = 0
		}
	}

	if f.flags.CenterRift {
		if f.flags.WrapY {
			for x := 0; x <= f.fractalWidth; x++ {
				for y := 0; y <= f.fractalHeight/6; y++ {
					div := absInt(f.fractalHeight/12-y) + 1
					f.arr[x][y] /= div
					f.arr[x][f.fractalHeight/2+y] /= div
				}
			}
		}
		if f.flags.WrapX {
			for y := 0; y <= f.fractalHeight; y++ {
				for x := 0; x <= f.fractalWidth/6; x++ {
					div := absInt(f.fractalWidth/12-x) + 1
					f.arr[x][y] /= div
					f.arr[f.fractalWidth/2+x][y] /= div
				}
			}
		}
	}
}

// GetHeight samples the height field at map coordinates with bilinear
// interpolation. The result is in [0,255], or [0,99] under the Percent
// flag. It panics when the coordinate is outside the map.
func (f *Fractal) GetHeight(x, y int) int {
	if x < 0 || x >= f.mapWidth {
		panic(fmt.Sprintf("fractal: x=%d out of range [0,%d)", x, f.mapWidth))
	}
	if y < 0 || y >= f.mapHeight {
		panic(fmt.Sprintf("fractal: y=%d out of range [0,%d)", y, f.mapHeight))
	}

	srcX := (float64(x)+0.5)*f.widthRatio - 0.5
	srcY := (float64(y)+0.5)*f.heightRatio - 0.5

	xDiff := srcX - floor(srcX)
	yDiff := srcY - floor(srcY)

	sx := minInt(int(srcX), f.fractalWidth-1)
	sy := minInt(int(srcY), f.fractalHeight-1)

	value := (1-xDiff)*(1-yDiff)*float64(f.arr[sx][sy]) +
		xDiff*(1-yDiff)*float64(f.arr[sx+1][sy]) +
		(1-xDiff)*yDiff*float64(f.arr[sx][sy+1]) +
		xDiff*yDiff*float64(f.arr[sx+1][sy+1])

	height := int(clampFloat(value, 0, 255))
	if f.flags.Percent {
		return (height * 100) >> 8
	}
	return height
}

// HeightsFromPercents maps percentile requests (clamped to [0,100]) to the
// height values at those percentiles of the source array, excluding the
// duplicated last row and column.
func (f *Fractal) HeightsFromPercents(percents []int) []int {
	flat := make([]int, 0, f.fractalWidth*f.fractalHeight)
	for x := 0; x < len(f.arr)-1; x++ {
		row := f.arr[x]
		for y := 0; y < len(row)-1; y++ {
			flat = append(flat, row[y])
		}
	}
	sort.Ints(flat)

	heights := make([]int, len(percents))
	for i, percent := range percents {
		p := clampInt(percent, 0, 100)
		heights[i] = flat[(len(flat)-1)*p/100]
	}
	return heights
}

// tectonicAction carves a rift along the wrap seam, its horizontal wobble
// driven by the rifts fractal.
func (f *Fractal) tectonicAction(rifts *Fractal) {
	riftX := (f.fractalWidth / 4) * 3
	const width = 16

	for y := 0; y <= f.fractalHeight; y++ {
		riftValue := (rifts.arr[riftX][y] - 128) * f.fractalWidth / 128 / 8
		for x := 0; x < width; x++ {
			rightX := f.yieldX(riftValue + x)
			leftX := f.yieldX(riftValue - x)
			f.arr[rightX][y] = f.arr[rightX][y] * x / width
			f.arr[leftX][y] = f.arr[leftX][y] * x / width
		}
	}

	for y := 0; y <= f.fractalHeight; y++ {
		f.arr[f.fractalWidth][y] = f.arr[0][y]
	}
}

func (f *Fractal) yieldX(x int) int {
	if x < 0 {
		return x + f.fractalWidth
	}
	if x >= f.fractalWidth {
		return x - f.fractalWidth
	}
	return x
}

func floor(v float64) float64 {
	f := float64(int(v))
	if v < 0 && v != f {
		return f - 1
	}
	return f
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
