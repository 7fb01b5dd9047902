// Package hexgrid implements the hexagonal grid mathematics used by the
// world generator: axial coordinates, offset and doubled coordinate
// conversions, orientation-aware direction sets, pixel-space layouts, and
// finite rectangular grids with optional horizontal/vertical wrapping.
//
// The package follows the standard cube-coordinate formulation with the
// third component derived (s = -q - r). All conversions round-trip exactly
// for integer coordinates.
package hexgrid
