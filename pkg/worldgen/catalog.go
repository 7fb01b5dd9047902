package worldgen

// StandardRuleset returns the built-in rule catalog. The entries mirror the
// stock catalog the generator was tuned against; applications with their own
// catalog files parse them into a Ruleset elsewhere and pass that instead.
func StandardRuleset() *Ruleset {
	mountain := TerrainMountain
	flatland := TerrainFlatland
	water := TerrainWater
	grassland := BaseGrassland
	lake := BaseLake
	coast := BaseCoast

	return &Ruleset{
		Features: map[string]*FeatureRule{
			"Forest": {
				Name:         "Forest",
				OccursOnType: []TerrainType{TerrainFlatland, TerrainHill},
				OccursOnBase: []BaseTerrain{BaseGrassland, BasePlain, BaseTundra},
			},
			"Jungle": {
				Name:         "Jungle",
				OccursOnType: []TerrainType{TerrainFlatland, TerrainHill},
				OccursOnBase: []BaseTerrain{BaseGrassland, BasePlain},
			},
			"Marsh": {
				Name:         "Marsh",
				OccursOnType: []TerrainType{TerrainFlatland},
				OccursOnBase: []BaseTerrain{BaseGrassland},
			},
			"Floodplain": {
				Name:         "Floodplain",
				OccursOnType: []TerrainType{TerrainFlatland},
				OccursOnBase: []BaseTerrain{BaseDesert},
			},
			"Oasis": {
				Name:         "Oasis",
				OccursOnType: []TerrainType{TerrainFlatland},
				OccursOnBase: []BaseTerrain{BaseDesert},
			},
			"Ice": {
				Name:         "Ice",
				OccursOnType: []TerrainType{TerrainWater},
				OccursOnBase: []BaseTerrain{BaseOcean, BaseCoast},
				Impassable:   true,
			},
			"Atoll": {
				Name:         "Atoll",
				OccursOnType: []TerrainType{TerrainWater},
				OccursOnBase: []BaseTerrain{BaseCoast},
			},
			"Fallout": {
				Name:         "Fallout",
				OccursOnType: []TerrainType{TerrainFlatland, TerrainHill},
				OccursOnBase: []BaseTerrain{BaseGrassland, BasePlain, BaseDesert, BaseTundra, BaseSnow},
				Impassable:   true,
			},
		},
		NaturalWonders: map[string]*WonderRule{
			"Great Barrier Reef": {
				Name:          "Great Barrier Reef",
				OccursOnType:  []TerrainType{TerrainWater},
				OccursOnBase:  []BaseTerrain{BaseCoast},
				TurnsIntoBase: &coast,
			},
			"Old Faithful": {
				Name:          "Old Faithful",
				OccursOnType:  []TerrainType{TerrainFlatland, TerrainHill, TerrainMountain},
				OccursOnBase:  []BaseTerrain{BaseGrassland, BasePlain, BaseTundra},
				Impassable:    true,
				Uniques:       []string{"Must be adjacent to [3] to [6] [Elevated] tiles"},
				TurnsIntoType: &mountain,
			},
			"Mount Fuji": {
				Name:          "Mount Fuji",
				OccursOnType:  []TerrainType{TerrainFlatland, TerrainHill},
				OccursOnBase:  []BaseTerrain{BaseGrassland, BasePlain},
				Impassable:    true,
				Uniques:       []string{"Must be adjacent to [0] [Water] tiles", "Must be on [1] largest landmasses"},
				TurnsIntoType: &mountain,
			},
			"Grand Mesa": {
				Name:          "Grand Mesa",
				OccursOnType:  []TerrainType{TerrainFlatland, TerrainHill},
				OccursOnBase:  []BaseTerrain{BasePlain, BaseDesert, BaseTundra},
				Impassable:    true,
				Uniques:       []string{"Must be adjacent to [0] [Water] tiles"},
				TurnsIntoType: &mountain,
			},
			"Rock of Gibraltar": {
				Name:          "Rock of Gibraltar",
				OccursOnType:  []TerrainType{TerrainFlatland, TerrainHill},
				OccursOnBase:  []BaseTerrain{BaseGrassland, BasePlain, BaseDesert, BaseTundra},
				Impassable:    true,
				Uniques:       []string{"Must be adjacent to [3] to [5] [Coast] tiles"},
				TurnsIntoType: &flatland,
				TurnsIntoBase: &grassland,
			},
			"Krakatoa": {
				Name:          "Krakatoa",
				OccursOnType:  []TerrainType{TerrainWater},
				OccursOnBase:  []BaseTerrain{BaseOcean, BaseCoast},
				Impassable:    true,
				Uniques:       []string{"Must be adjacent to [6] [Water] tiles"},
				TurnsIntoType: &mountain,
				TurnsIntoBase: &grassland,
			},
			"Barringer Crater": {
				Name:          "Barringer Crater",
				OccursOnType:  []TerrainType{TerrainFlatland, TerrainHill},
				OccursOnBase:  []BaseTerrain{BaseDesert, BaseTundra},
				Impassable:    true,
				Uniques:       []string{"Must be adjacent to [0] [Water] tiles"},
				TurnsIntoType: &mountain,
			},
			"El Dorado": {
				Name:          "El Dorado",
				OccursOnType:  []TerrainType{TerrainFlatland, TerrainHill},
				OccursOnBase:  []BaseTerrain{BaseGrassland, BasePlain},
				Uniques:       []string{"Must be adjacent to [1] to [6] [Jungle] tiles"},
				TurnsIntoType: &flatland,
				TurnsIntoBase: &grassland,
			},
			"Fountain of Youth": {
				Name:          "Fountain of Youth",
				OccursOnType:  []TerrainType{TerrainFlatland},
				OccursOnBase:  []BaseTerrain{BaseGrassland, BasePlain, BaseTundra},
				IsFreshWater:  true,
				TurnsIntoType: &flatland,
				TurnsIntoBase: &grassland,
			},
			"Lake Victoria": {
				Name:          "Lake Victoria",
				OccursOnType:  []TerrainType{TerrainFlatland},
				OccursOnBase:  []BaseTerrain{BaseGrassland, BasePlain},
				Uniques:       []string{"Must be adjacent to [0] [Water] tiles"},
				TurnsIntoType: &water,
				TurnsIntoBase: &lake,
			},
			"Mount Kailash": {
				Name:          "Mount Kailash",
				OccursOnType:  []TerrainType{TerrainFlatland, TerrainHill},
				OccursOnBase:  []BaseTerrain{BasePlain, BaseTundra, BaseSnow},
				Impassable:    true,
				Uniques:       []string{"Must be adjacent to [4] to [6] [Elevated] tiles", "Must be adjacent to [0] [Water] tiles"},
				TurnsIntoType: &mountain,
			},
			"Sri Pada": {
				Name:          "Sri Pada",
				OccursOnType:  []TerrainType{TerrainFlatland, TerrainHill},
				OccursOnBase:  []BaseTerrain{BaseGrassland, BasePlain},
				Impassable:    true,
				Uniques:       []string{"Must not be on [0] largest landmasses"},
				TurnsIntoType: &mountain,
			},
			"Uluru": {
				Name:          "Uluru",
				OccursOnType:  []TerrainType{TerrainFlatland},
				OccursOnBase:  []BaseTerrain{BasePlain, BaseDesert},
				Impassable:    true,
				Uniques:       []string{"Must be adjacent to [3] to [6] [Plain] tiles"},
				TurnsIntoType: &mountain,
			},
		},
		Civilizations: []string{
			"Babylon", "Egypt", "Greece", "China", "Rome",
			"India", "Persia", "Aztec", "Songhai", "Siam",
		},
		CityStates: []string{
			"Geneva", "Venice", "Zanzibar", "Lhasa", "Monaco",
			"Belgrade", "Hanoi", "Kathmandu",
		},
	}
}
