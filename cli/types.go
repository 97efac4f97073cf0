package cli

type cliArgs struct {
	APIURL string `name:"api-url" env:"POKEDEX_API_URL" default:"https://pokeapi.co/api/v2" help:"PokéAPI base URL."`
	Width  int    `short:"w" default:"0" help:"Sprite art width in characters (0 fits the terminal)."`
	Color  string `enum:"auto,always,never" default:"auto" help:"When to colorize output."`

	Shell   cliEmptyCmd   `cmd:"" default:"1" help:"Interactive Pokédex session."`
	Lookup  cliLookupCmd  `cmd:"" aliases:"search" help:"Look up one Pokémon and exit."`
	Compare cliCompareCmd `cmd:"" help:"Compare two Pokémon side by side."`
	Breed   cliBreedCmd   `cmd:"" help:"Check breeding compatibility of two Pokémon."`
}

type cliEmptyCmd struct{}

type cliLookupCmd struct {
	Key string `arg:"" help:"Pokémon name or ID."`
}

type cliCompareCmd struct {
	First  string `arg:"" help:"First Pokémon name or ID."`
	Second string `arg:"" help:"Second Pokémon name or ID."`
}

type cliBreedCmd struct {
	First  string `arg:"" help:"First Pokémon name or ID."`
	Second string `arg:"" help:"Second Pokémon name or ID."`
}
