// Package worldgen implements a deterministic procedural world-map
// generator for turn-based strategy games. Given a seeded random source, a
// world-size configuration, and a rule catalog, it produces a finite hex
// grid whose tiles carry a terrain type, base terrain, optional feature,
// optional natural wonder, and a connectivity area id, together with river
// edges and civilization starting locations.
//
// Generation is a strict linear pipeline of passes over a TileMap; every
// pass draws from one seeded random stream in a fixed order, so identical
// parameters and seed reproduce the map exactly.
package worldgen
