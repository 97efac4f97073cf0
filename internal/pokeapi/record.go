package pokeapi

import (
	"strings"

	"github.com/jbgaribay/PokeTerminal/internal/nature"
)

// Ability is one species ability with its English flavor text, when available.
type Ability struct {
	Name        string
	Description string
	Hidden      bool
}

// Record is the immutable in-memory form of one fetched species. It carries
// everything the report needs, including the raw sprite bytes.
type Record struct {
	ID         int
	Name       string
	Height     int // decimeters
	Weight     int // hectograms
	Types      []string
	Abilities  []Ability
	Stats      nature.Stats
	EggGroups  []string
	GrowthRate string
	FlavorText string
	SpriteURL  string
	Sprite     []byte
}

// HeightMeters converts the API's decimeter unit.
func (r *Record) HeightMeters() float64 {
	return float64(r.Height) / 10
}

// WeightKilograms converts the API's hectogram unit.
func (r *Record) WeightKilograms() float64 {
	return float64(r.Weight) / 10
}

func buildRecord(pk pokemonPayload, sp speciesPayload) *Record {
	rec := &Record{
		ID:         pk.ID,
		Name:       pk.Name,
		Height:     pk.Height,
		Weight:     pk.Weight,
		GrowthRate: TitleWords(sp.GrowthRate.Name),
		FlavorText: englishFlavor(sp.FlavorTextEntries),
		SpriteURL:  pk.Sprites.FrontDefault,
	}
	for _, t := range pk.Types {
		rec.Types = append(rec.Types, t.Type.Name)
	}
	for _, a := range pk.Abilities {
		rec.Abilities = append(rec.Abilities, Ability{
			Name:   TitleWords(a.Ability.Name),
			Hidden: a.IsHidden,
		})
	}
	for _, g := range sp.EggGroups {
		rec.EggGroups = append(rec.EggGroups, g.Name)
	}
	for _, st := range pk.Stats {
		switch st.Stat.Name {
		case "hp":
			rec.Stats.HP = st.BaseStat
		case "attack":
			rec.Stats.Attack = st.BaseStat
		case "defense":
			rec.Stats.Defense = st.BaseStat
		case "special-attack":
			rec.Stats.SpecialAttack = st.BaseStat
		case "special-defense":
			rec.Stats.SpecialDefense = st.BaseStat
		case "speed":
			rec.Stats.Speed = st.BaseStat
		}
	}
	return rec
}

// englishFlavor picks the first English entry and collapses the API's
// embedded newlines and form feeds into single spaces.
func englishFlavor(entries []flavorEntry) string {
	for _, e := range entries {
		if e.Language.Name == "en" {
			return strings.Join(strings.Fields(e.FlavorText), " ")
		}
	}
	return ""
}

// TitleWords turns an API slug like "special-attack" into "Special Attack".
func TitleWords(slug string) string {
	if slug == "" {
		return ""
	}
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// TitleName is the display form of the species name.
func (r *Record) TitleName() string {
	return TitleWords(r.Name)
}

// EggGroupNames returns the egg groups in display form. EggGroups itself
// keeps the raw API slugs, which the breeding rules match on.
func (r *Record) EggGroupNames() []string {
	out := make([]string, 0, len(r.EggGroups))
	for _, g := range r.EggGroups {
		out = append(out, TitleWords(g))
	}
	return out
}
