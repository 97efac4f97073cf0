package cli

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbgaribay/PokeTerminal/internal/cache"
	"github.com/jbgaribay/PokeTerminal/internal/pokeapi"
	"github.com/jbgaribay/PokeTerminal/internal/report"
)

func init() {
	color.NoColor = true
}

func testClient(t *testing.T) *pokeapi.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/pokemon/pikachu", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 25, "name": "pikachu", "height": 4, "weight": 60,
			"types": [{"slot": 1, "type": {"name": "electric", "url": ""}}],
			"stats": [{"base_stat": 90, "stat": {"name": "speed", "url": ""}}],
			"sprites": {"front_default": ""}}`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return pokeapi.New(ts.URL)
}

func TestHandleLineExitSentinels(t *testing.T) {
	client := testClient(t)
	store := cache.New()
	formatter := report.New(50)

	for _, input := range []string{"quit", "QUIT", "exit", "Exit", "q", "Q"} {
		_, done := handleLine(client, store, formatter, nil, input)
		assert.True(t, done, "input %q must end the session", input)
	}
}

func TestHandleLineLookupSetsCurrent(t *testing.T) {
	client := testClient(t)
	store := cache.New()
	formatter := report.New(50)

	current, done := handleLine(client, store, formatter, nil, "pikachu")
	assert.False(t, done)
	require.NotNil(t, current)
	assert.Equal(t, 25, current.ID)

	// The successful lookup must now be in the session cache.
	cached, ok := store.Get("pikachu")
	require.True(t, ok)
	assert.Same(t, current, cached)
}

func TestHandleLineUnknownKeyContinues(t *testing.T) {
	client := testClient(t)
	store := cache.New()
	formatter := report.New(50)

	rec := &pokeapi.Record{ID: 25, Name: "pikachu"}
	current, done := handleLine(client, store, formatter, rec, "zzzznotapokemon")
	assert.False(t, done)
	assert.Same(t, rec, current, "failed lookup must not clear the current record")
}

func TestHandleLineBlankAndHelp(t *testing.T) {
	client := testClient(t)
	store := cache.New()
	formatter := report.New(50)

	for _, input := range []string{"", "   ", "help", "?", "c"} {
		_, done := handleLine(client, store, formatter, nil, input)
		assert.False(t, done, "input %q must not end the session", input)
	}
}

func TestHandleLineCompareUsage(t *testing.T) {
	client := testClient(t)
	store := cache.New()
	formatter := report.New(50)

	_, done := handleLine(client, store, formatter, nil, "compare pikachu")
	assert.False(t, done)
	_, done = handleLine(client, store, formatter, nil, "breed pikachu")
	assert.False(t, done)
}

func TestFormatCliErrorMessages(t *testing.T) {
	assert.Equal(t,
		"[404] Pokemon 'zzzznotapokemon' not found!",
		formatCliError(pokeapi.NotFoundError{Key: "zzzznotapokemon"}))
	assert.Contains(t,
		formatCliError(pokeapi.NetworkError{Err: fmt.Errorf("dial tcp: refused")}),
		"Connection problem")
	assert.Contains(t,
		formatCliError(pokeapi.DataFormatError{Err: fmt.Errorf("bad json")}),
		"unexpected")
}

func TestParseCLIAPIURLEnvFallback(t *testing.T) {
	t.Setenv("POKEDEX_API_URL", "http://pokeapi.test/v2")

	args, _, err := parseCLI([]string{"lookup", "pikachu"})
	require.NoError(t, err)
	assert.Equal(t, "http://pokeapi.test/v2", args.APIURL)

	// An explicit flag still wins over the environment.
	args, _, err = parseCLI([]string{"--api-url", "http://other.test/v2", "lookup", "pikachu"})
	require.NoError(t, err)
	assert.Equal(t, "http://other.test/v2", args.APIURL)
}

func TestResolveArtWidth(t *testing.T) {
	// An explicit width is taken as is.
	assert.Equal(t, 72, resolveArtWidth(72, -1))

	// Auto width without a terminal on the fd falls back to the default.
	assert.Equal(t, report.DefaultArtWidth, resolveArtWidth(0, -1))
}

func TestParseCLI(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		path string
	}{
		{"default is shell", nil, "shell"},
		{"lookup", []string{"lookup", "pikachu"}, "lookup"},
		{"compare", []string{"compare", "pikachu", "raichu"}, "compare"},
		{"breed", []string{"breed", "pikachu", "ditto"}, "breed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, parsed, err := parseCLI(tt.argv)
			require.NoError(t, err)
			require.NotNil(t, parsed.Selected())
			assert.Equal(t, tt.path, normalizeSelectedPath(parsed.Selected().Path()))
		})
	}
}
