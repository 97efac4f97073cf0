// Package cli is the command surface of the Pokédex terminal: argument
// parsing, one-shot subcommands, and the interactive session.
package cli

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jbgaribay/PokeTerminal/internal/pokeapi"
	"github.com/jbgaribay/PokeTerminal/internal/report"
)

// Main parses argv and dispatches. Exit status: 0 normal, 1 runtime failure,
// 2 usage error.
func Main(argv []string) int {
	if len(argv) == 0 {
		applyColorMode("auto")
		client := pokeapi.New(os.Getenv("POKEDEX_API_URL"))
		return cmdSession(client, report.New(resolveArtWidth(0, int(os.Stdout.Fd()))))
	}
	args, parsed, err := parseCLI(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatCliError(err))
		return 2
	}
	applyColorMode(args.Color)

	client := pokeapi.New(args.APIURL)
	formatter := report.New(resolveArtWidth(args.Width, int(os.Stdout.Fd())))

	selected := parsed.Selected()
	if selected == nil {
		return cmdSession(client, formatter)
	}
	switch normalizeSelectedPath(selected.Path()) {
	case "shell":
		return cmdSession(client, formatter)
	case "lookup":
		return cmdLookup(client, formatter, args.Lookup.Key)
	case "compare":
		return cmdCompare(client, formatter, args.Compare.First, args.Compare.Second)
	case "breed":
		return cmdBreed(client, formatter, args.Breed.First, args.Breed.Second)
	default:
		return 2
	}
}

var cliPathAliasPattern = regexp.MustCompile(`\s*\([^)]*\)`)

func normalizeSelectedPath(path string) string {
	path = cliPathAliasPattern.ReplaceAllString(path, "")
	return strings.Join(strings.Fields(strings.ReplaceAll(path, ".", " ")), " ")
}

func parseCLI(argv []string) (cliArgs, *kong.Context, error) {
	var args cliArgs
	parser, err := kong.New(
		&args,
		kong.Name("poketerminal"),
		kong.Description("Terminal Pokédex backed by PokéAPI."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:   true,
			FlagsLast: true,
		}),
	)
	if err != nil {
		return args, nil, err
	}
	parsed, err := parser.Parse(argv)
	if err != nil {
		return args, nil, err
	}
	return args, parsed, nil
}
