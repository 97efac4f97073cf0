// Package breeding checks egg-group compatibility between two species.
package breeding

import (
	"github.com/jbgaribay/PokeTerminal/internal/pokeapi"
)

const (
	groupDitto  = "ditto"
	groupNoEggs = "no-eggs-discovered"
)

// Result is the outcome of one compatibility check.
type Result struct {
	Compatible   bool
	Reason       string
	SharedGroups []string
}

// Check applies the game's pairing rules: species in the undiscovered egg
// group never breed, Ditto pairs with anything except another Ditto, and
// everything else needs at least one shared egg group.
func Check(a, b *pokeapi.Record) Result {
	if hasGroup(a, groupNoEggs) || hasGroup(b, groupNoEggs) {
		return Result{Reason: "one of these species cannot breed at all"}
	}
	aDitto := hasGroup(a, groupDitto)
	bDitto := hasGroup(b, groupDitto)
	if aDitto && bDitto {
		return Result{Reason: "two Ditto cannot breed with each other"}
	}
	if aDitto || bDitto {
		return Result{
			Compatible:   true,
			Reason:       "Ditto breeds with any species that can breed",
			SharedGroups: []string{groupDitto},
		}
	}
	shared := intersect(a.EggGroups, b.EggGroups)
	if len(shared) == 0 {
		return Result{Reason: "no shared egg groups"}
	}
	return Result{
		Compatible:   true,
		Reason:       "shared egg group",
		SharedGroups: shared,
	}
}

func hasGroup(rec *pokeapi.Record, group string) bool {
	for _, g := range rec.EggGroups {
		if g == group {
			return true
		}
	}
	return false
}

func intersect(a, b []string) []string {
	in := map[string]bool{}
	for _, g := range b {
		in[g] = true
	}
	var out []string
	for _, g := range a {
		if in[g] {
			out = append(out, g)
		}
	}
	return out
}
