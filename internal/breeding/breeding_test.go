package breeding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jbgaribay/PokeTerminal/internal/breeding"
	"github.com/jbgaribay/PokeTerminal/internal/pokeapi"
)

func rec(name string, groups ...string) *pokeapi.Record {
	return &pokeapi.Record{Name: name, EggGroups: groups}
}

func TestCheck(t *testing.T) {
	pikachu := rec("pikachu", "ground", "fairy")
	eevee := rec("eevee", "ground")
	gastly := rec("gastly", "amorphous")
	ditto := rec("ditto", "ditto")
	mewtwo := rec("mewtwo", "no-eggs-discovered")

	tests := []struct {
		name       string
		a, b       *pokeapi.Record
		compatible bool
		shared     []string
	}{
		{"shared group", pikachu, eevee, true, []string{"ground"}},
		{"no shared group", pikachu, gastly, false, nil},
		{"ditto with anything", ditto, gastly, true, []string{"ditto"}},
		{"ditto pair", ditto, rec("ditto2", "ditto"), false, nil},
		{"undiscovered group", mewtwo, ditto, false, nil},
		{"multiple shared groups", pikachu, rec("clefairy", "fairy", "ground"), true, []string{"ground", "fairy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := breeding.Check(tt.a, tt.b)
			assert.Equal(t, tt.compatible, res.Compatible)
			assert.Equal(t, tt.shared, res.SharedGroups)
			assert.NotEmpty(t, res.Reason)
		})
	}
}
