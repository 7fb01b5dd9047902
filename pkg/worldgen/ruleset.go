package worldgen

import (
	"fmt"
	"strings"
)

// FeatureRule describes where a terrain feature may be placed.
type FeatureRule struct {
	Name         string
	OccursOnType []TerrainType
	OccursOnBase []BaseTerrain
	Impassable   bool
}

// AllowsType reports whether the rule permits the terrain type.
func (r *FeatureRule) AllowsType(t TerrainType) bool {
	for _, allowed := range r.OccursOnType {
		if allowed == t {
			return true
		}
	}
	return false
}

// AllowsBase reports whether the rule permits the base terrain.
func (r *FeatureRule) AllowsBase(b BaseTerrain) bool {
	for _, allowed := range r.OccursOnBase {
		if allowed == b {
			return true
		}
	}
	return false
}

// WonderRule describes the occurrence constraints and terrain mutations of
// a natural wonder.
type WonderRule struct {
	Name          string
	OccursOnType  []TerrainType
	OccursOnBase  []BaseTerrain
	IsFreshWater  bool
	Impassable    bool
	Uniques       []string
	TurnsIntoType *TerrainType
	TurnsIntoBase *BaseTerrain
}

// AllowsType reports whether the rule permits the terrain type.
func (r *WonderRule) AllowsType(t TerrainType) bool {
	for _, allowed := range r.OccursOnType {
		if allowed == t {
			return true
		}
	}
	return false
}

// AllowsBase reports whether the rule permits the base terrain.
func (r *WonderRule) AllowsBase(b BaseTerrain) bool {
	for _, allowed := range r.OccursOnBase {
		if allowed == b {
			return true
		}
	}
	return false
}

// Ruleset is the pre-parsed rule catalog the generator consumes. Parsing
// catalog files is the enclosing application's concern; the generator only
// reads these tables.
type Ruleset struct {
	Features       map[string]*FeatureRule
	NaturalWonders map[string]*WonderRule
	// Civilizations and CityStates provide names for the starting-location
	// pass, in priority order.
	Civilizations []string
	CityStates    []string
}

// Feature returns the named feature rule. It panics when the catalog lacks
// an entry the generator requires; a missing entry is a malformed catalog,
// not a recoverable condition.
func (r *Ruleset) Feature(name string) *FeatureRule {
	rule, ok := r.Features[name]
	if !ok {
		panic(fmt.Sprintf("worldgen: rule catalog is missing feature %q", name))
	}
	return rule
}

// Wonder returns the named natural-wonder rule, panicking when absent.
func (r *Ruleset) Wonder(name string) *WonderRule {
	rule, ok := r.NaturalWonders[name]
	if !ok {
		panic(fmt.Sprintf("worldgen: rule catalog is missing natural wonder %q", name))
	}
	return rule
}

// Unique is a parsed unique-constraint string. Bracketed segments become
// Params and are replaced by "[]" in PlaceholderText, so
// "Must be adjacent to [2] [Coast] tiles" yields placeholder
// "Must be adjacent to [] [] tiles" with params ["2", "Coast"].
type Unique struct {
	PlaceholderText string
	Params          []string
}

// ParseUnique splits a unique-constraint string into its placeholder form
// and parameters.
func ParseUnique(text string) Unique {
	var placeholder strings.Builder
	var params []string
	rest := text
	for {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			placeholder.WriteString(rest)
			break
		}
		closing := strings.IndexByte(rest[open:], ']')
		if closing < 0 {
			placeholder.WriteString(rest)
			break
		}
		placeholder.WriteString(rest[:open])
		placeholder.WriteString("[]")
		params = append(params, rest[open+1:open+closing])
		rest = rest[open+closing+1:]
	}
	return Unique{PlaceholderText: placeholder.String(), Params: params}
}
