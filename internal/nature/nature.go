// Package nature recommends a Pokémon nature from a set of base stats.
package nature

// Stat identifies one of the five nature-relevant base stats. HP never
// participates in nature effects.
type Stat int

const (
	Attack Stat = iota
	Defense
	SpecialAttack
	SpecialDefense
	Speed
)

var statNames = [...]string{
	Attack:         "Attack",
	Defense:        "Defense",
	SpecialAttack:  "Sp. Atk",
	SpecialDefense: "Sp. Def",
	Speed:          "Speed",
}

func (s Stat) String() string {
	if s < Attack || s > Speed {
		return "unknown"
	}
	return statNames[s]
}

// Stats holds the six base stats of a species.
type Stats struct {
	HP             int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
}

type statPair struct {
	boosted Stat
	reduced Stat
}

// The 25 canonical natures. The five same-stat pairs are the neutral natures.
var natureTable = map[statPair]string{
	{Attack, Attack}:                 "Hardy",
	{Attack, Defense}:                "Lonely",
	{Attack, SpecialAttack}:          "Adamant",
	{Attack, SpecialDefense}:         "Naughty",
	{Attack, Speed}:                  "Brave",
	{Defense, Attack}:                "Bold",
	{Defense, Defense}:               "Docile",
	{Defense, SpecialAttack}:         "Impish",
	{Defense, SpecialDefense}:        "Lax",
	{Defense, Speed}:                 "Relaxed",
	{SpecialAttack, Attack}:          "Modest",
	{SpecialAttack, Defense}:         "Mild",
	{SpecialAttack, SpecialAttack}:   "Bashful",
	{SpecialAttack, SpecialDefense}:  "Rash",
	{SpecialAttack, Speed}:           "Quiet",
	{SpecialDefense, Attack}:         "Calm",
	{SpecialDefense, Defense}:        "Gentle",
	{SpecialDefense, SpecialAttack}:  "Careful",
	{SpecialDefense, SpecialDefense}: "Quirky",
	{SpecialDefense, Speed}:          "Sassy",
	{Speed, Attack}:                  "Timid",
	{Speed, Defense}:                 "Hasty",
	{Speed, SpecialAttack}:           "Jolly",
	{Speed, SpecialDefense}:          "Naive",
	{Speed, Speed}:                   "Serious",
}

// Recommendation describes the selected nature and the stats it affects.
type Recommendation struct {
	Name    string
	Boosted Stat
	Reduced Stat
	Neutral bool
}

// Recommend selects the nature whose boost matches the highest of the five
// nature-relevant stats and whose reduction matches the second highest. Ties
// resolve by the fixed priority Attack > Defense > Sp. Atk > Sp. Def > Speed,
// so every stat vector maps to exactly one nature. All five stats equal yields
// the neutral Hardy.
func Recommend(s Stats) Recommendation {
	values := [5]int{
		Attack:         s.Attack,
		Defense:        s.Defense,
		SpecialAttack:  s.SpecialAttack,
		SpecialDefense: s.SpecialDefense,
		Speed:          s.Speed,
	}

	allEqual := true
	for _, v := range values[1:] {
		if v != values[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return Recommendation{Name: "Hardy", Boosted: Attack, Reduced: Attack, Neutral: true}
	}

	// Total order: value descending, then the fixed stat priority. The iota
	// order of Stat is the priority order, so a stable selection over the
	// array index gives the tie-break for free.
	boosted := Attack
	for st := Defense; st <= Speed; st++ {
		if values[st] > values[boosted] {
			boosted = st
		}
	}
	reduced := Stat(-1)
	for st := Attack; st <= Speed; st++ {
		if st == boosted {
			continue
		}
		if reduced < 0 || values[st] > values[reduced] {
			reduced = st
		}
	}

	return Recommendation{
		Name:    natureTable[statPair{boosted, reduced}],
		Boosted: boosted,
		Reduced: reduced,
	}
}

// Names returns the 25 canonical nature names. Order is unspecified.
func Names() []string {
	out := make([]string, 0, len(natureTable))
	seen := map[string]bool{}
	for _, name := range natureTable {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
