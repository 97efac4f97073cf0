package pokeapi

// Wire shapes for the three PokéAPI resources we read. Only the fields the
// terminal shows are mapped.

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pokemonPayload struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Types  []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability  namedResource `json:"ability"`
		IsHidden bool          `json:"is_hidden"`
		Slot     int           `json:"slot"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
}

type flavorEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   namedResource `json:"language"`
}

type speciesPayload struct {
	FlavorTextEntries []flavorEntry   `json:"flavor_text_entries"`
	EggGroups         []namedResource `json:"egg_groups"`
	GrowthRate        namedResource   `json:"growth_rate"`
}

type abilityPayload struct {
	Name              string        `json:"name"`
	FlavorTextEntries []flavorEntry `json:"flavor_text_entries"`
}
