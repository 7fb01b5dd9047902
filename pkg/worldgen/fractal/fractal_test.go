package fractal

import (
	"math/rand"
	"testing"

	"github.com/opd-ai/worldgen/pkg/hexgrid"
)

func TestCreateDeterminism(t *testing.T) {
	heights := func() []int {
		rng := rand.New(rand.NewSource(77777777))
		f := Create(rng, 100, 50, 2, Flags{WrapX: true}, 7, 6)
		var out []int
		for y := 0; y < 50; y++ {
			for x := 0; x < 100; x++ {
				out = append(out, f.GetHeight(x, y))
			}
		}
		return out
	}

	first := heights()
	second := heights()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("height %d differs between runs: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestGetHeightRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	f := Create(rng, 80, 40, 2, Flags{}, 7, 6)
	for y := 0; y < 40; y++ {
		for x := 0; x < 80; x++ {
			h := f.GetHeight(x, y)
			if h < 0 || h > 255 {
				t.Fatalf("height at (%d,%d) = %d, want [0,255]", x, y, h)
			}
		}
	}
}

func TestGetHeightPercentFlag(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	f := Create(rng, 80, 40, 2, Flags{Percent: true}, 7, 6)
	for y := 0; y < 40; y++ {
		for x := 0; x < 80; x++ {
			h := f.GetHeight(x, y)
			if h < 0 || h > 99 {
				t.Fatalf("percent height at (%d,%d) = %d, want [0,99]", x, y, h)
			}
		}
	}
}

func TestGetHeightOutOfRangePanics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := Create(rng, 10, 10, 2, Flags{}, 7, 6)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range sample")
		}
	}()
	_ = f.GetHeight(10, 0)
}

func TestDefaultExponents(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	f := Create(rng, 30, 20, 3, Flags{}, -1, -1)
	if f.widthExp != DefaultWidthExp || f.heightExp != DefaultHeightExp {
		t.Errorf("exponents = (%d,%d), want (%d,%d)", f.widthExp, f.heightExp, DefaultWidthExp, DefaultHeightExp)
	}
}

func TestHeightsFromPercents(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	f := Create(rng, 100, 50, 2, Flags{}, 7, 6)

	heights := f.HeightsFromPercents([]int{0, 25, 50, 75, 100})
	for i := 1; i < len(heights); i++ {
		if heights[i] < heights[i-1] {
			t.Fatalf("percentile heights not monotone: %v", heights)
		}
	}

	clamped := f.HeightsFromPercents([]int{-10, 110})
	bounds := f.HeightsFromPercents([]int{0, 100})
	if clamped[0] != bounds[0] || clamped[1] != bounds[1] {
		t.Errorf("out-of-range percents not clamped: %v vs %v", clamped, bounds)
	}
}

func TestPolarEdgesAreLow(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	f := Create(rng, 100, 50, 2, Flags{Polar: true}, 7, 6)
	// The top map row interpolates mostly from the zeroed source edge.
	for x := 0; x < 100; x++ {
		if h := f.GetHeight(x, 0); h > 128 {
			t.Errorf("polar top edge height at x=%d is %d, want low", x, h)
		}
	}
}

func TestInvertHeights(t *testing.T) {
	base := Create(rand.New(rand.NewSource(7)), 40, 20, 2, Flags{}, 7, 6)
	inverted := Create(rand.New(rand.NewSource(7)), 40, 20, 2, Flags{InvertHeights: true}, 7, 6)
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			// Interpolation truncates, so the mirrored sum may land one
			// short of 255.
			sum := base.GetHeight(x, y) + inverted.GetHeight(x, y)
			if sum != 255 && sum != 254 {
				t.Fatalf("inverted height at (%d,%d) does not mirror: %d vs %d",
					x, y, base.GetHeight(x, y), inverted.GetHeight(x, y))
			}
		}
	}
}

func TestRidgeBuilderDeterminism(t *testing.T) {
	build := func() *Fractal {
		rng := rand.New(rand.NewSource(31337))
		f := Create(rng, 100, 50, 2, Flags{WrapX: true}, 7, 6)
		f.RidgeBuilder(rng, 10, Flags{WrapX: true}, 6, 1, hexgrid.Pointy, hexgrid.OffsetOdd)
		return f
	}
	a := build()
	b := build()
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			if a.GetHeight(x, y) != b.GetHeight(x, y) {
				t.Fatalf("ridge height at (%d,%d) differs between runs", x, y)
			}
		}
	}
}

func TestInitPanicsOnExcessiveSmoothing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for min(exp)-grain >= 8")
		}
	}()
	rng := rand.New(rand.NewSource(1))
	_ = Create(rng, 1024, 1024, 0, Flags{}, 10, 10)
}
