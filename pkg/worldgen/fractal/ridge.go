package fractal

import (
	"math/rand"

	"github.com/opd-ai/worldgen/pkg/hexgrid"
)

// voronoiSeed is one ridge seed: a position on the source array plus the
// bias terms that warp distances around it.
type voronoiSeed struct {
	hex          hexgrid.Hex
	weakness     int
	biasDir      hexgrid.Direction
	biasStrength int
}

// RidgeBuilder overlays a modified Voronoi diagram on the height field to
// give the appearance of mountain ranges. Each source cell takes the value
// 255 * closest / nextClosest over the seed set and is blended with the
// existing fractal height by the (blendRidge, blendFract) weights.
//
// Seeds are kept at least 7 hexes apart; positions are redrawn until that
// holds. When ridgeFlags is non-zero the per-seed weakness, a small random
// jitter, and the directional bias adjust the distances.
func (f *Fractal) RidgeBuilder(rng *rand.Rand, numSeeds int, ridgeFlags Flags, blendRidge, blendFract int, orientation hexgrid.Orientation, offset hexgrid.Offset) {
	if numSeeds < 3 {
		numSeeds = 3
	}

	edgeDirs := orientation.EdgeDirections()

	seeds := make([]voronoiSeed, 0, numSeeds)
	for i := 0; i < numSeeds; i++ {
		coord := hexgrid.OffsetCoordinate{
			Col: rng.Intn(f.fractalWidth),
			Row: rng.Intn(f.fractalHeight),
		}
		seed := voronoiSeed{
			hex:          coord.ToHex(offset, orientation),
			weakness:     maxZero(rng.Intn(7) - 3),
			biasDir:      edgeDirs[rng.Intn(6)],
			biasStrength: maxZero(rng.Intn(8) - 4),
		}

		for tooCloseToSeed(seed.hex, seeds) {
			coord := hexgrid.OffsetCoordinate{
				Col: rng.Intn(f.fractalWidth),
				Row: rng.Intn(f.fractalHeight),
			}
			seed.hex = coord.ToHex(offset, orientation)
		}

		seeds = append(seeds, seed)
	}

	biased := ridgeFlags != (Flags{})

	for x := 0; x < f.fractalWidth; x++ {
		for y := 0; y < f.fractalHeight; y++ {
			cell := hexgrid.OffsetCoordinate{Col: x, Row: y}.ToHex(offset, orientation)

			closest := int(^uint(0) >> 1)
			nextClosest := closest
			for _, seed := range seeds {
				dist := hexgrid.Distance(cell, seed.hex)
				if biased {
					dist += seed.weakness
					dist += rng.Intn(3)

					toward := seed.hex.Sub(cell)
					relative := estimateDirection(toward, orientation)
					if relative == seed.biasDir {
						dist -= seed.biasStrength
					} else if relative == seed.biasDir.Opposite() {
						dist += seed.biasStrength
					}
					if dist < 1 {
						dist = 1
					}
				}

				if dist < closest {
					nextClosest = closest
					closest = dist
				} else if dist < nextClosest {
					nextClosest = dist
				}
			}

			ridgeHeight := 255 * closest / nextClosest
			f.arr[x][y] = (ridgeHeight*blendRidge + f.arr[x][y]*blendFract) / maxOne(blendRidge+blendFract)
		}
	}
}

func tooCloseToSeed(hex hexgrid.Hex, seeds []voronoiSeed) bool {
	for _, seed := range seeds {
		if hexgrid.Distance(hex, seed.hex) < 7 {
			return true
		}
	}
	return false
}

// estimateDirection picks the edge direction whose unit vector best aligns
// with the axial displacement. Ties resolve to the later direction in the
// canonical order.
func estimateDirection(toward hexgrid.Hex, orientation hexgrid.Orientation) hexgrid.Direction {
	var vectors [6][2]float64
	if orientation == hexgrid.Pointy {
		vectors = [6][2]float64{
			{0.5, hexgrid.Sqrt3 / 2},
			{1, 0},
			{0.5, -hexgrid.Sqrt3 / 2},
			{-0.5, -hexgrid.Sqrt3 / 2},
			{-1, 0},
			{-0.5, hexgrid.Sqrt3 / 2},
		}
	} else {
		vectors = [6][2]float64{
			{hexgrid.Sqrt3 / 2, 0.5},
			{hexgrid.Sqrt3 / 2, -0.5},
			{0, -1},
			{-hexgrid.Sqrt3 / 2, -0.5},
			{-hexgrid.Sqrt3 / 2, 0.5},
			{0, 1},
		}
	}

	tx := float64(toward.Q)
	ty := float64(toward.R)
	bestIndex := 0
	bestDot := vectors[0][0]*tx + vectors[0][1]*ty
	for i := 1; i < 6; i++ {
		dot := vectors[i][0]*tx + vectors[i][1]*ty
		if dot >= bestDot {
			bestDot = dot
			bestIndex = i
		}
	}
	return orientation.EdgeDirections()[bestIndex]
}

func maxZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func maxOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
