package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/jbgaribay/PokeTerminal/internal/breeding"
	"github.com/jbgaribay/PokeTerminal/internal/cache"
	"github.com/jbgaribay/PokeTerminal/internal/pokeapi"
	"github.com/jbgaribay/PokeTerminal/internal/report"
)

const sessionHelpText = `commands:
  <name or id>            look up a Pokémon (e.g. 'pikachu' or '25')
  compare <a> <b>         compare two Pokémon side by side
  breed <a> <b>           check breeding compatibility
  help, ?, c              show this list
  quit, exit, q           leave the Pokédex`

// cmdSession runs the interactive loop: read a line, dispatch, print, repeat.
// Every lookup error is recovered here; only quit, EOF, or an interrupt end
// the session, always with success status.
func cmdSession(client *pokeapi.Client, formatter *report.Formatter) int {
	store := cache.New()
	printBanner()

	reader := bufio.NewReader(os.Stdin)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	var current *pokeapi.Record
	for {
		fmt.Print(prompt(current))
		line, interrupted, err := readInteractiveLine(reader, sigCh)
		if interrupted {
			fmt.Println()
			fmt.Println("Thanks for using the Pokédex. Goodbye!")
			return 0
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return 0
			}
			return fail(err)
		}
		var done bool
		current, done = handleLine(client, store, formatter, current, line)
		if done {
			fmt.Println("Thanks for using the Pokédex. Goodbye!")
			return 0
		}
	}
}

// handleLine dispatches one line of input. It returns the record the session
// should consider current afterwards and whether an exit sentinel was seen.
// Lookup errors are printed, never propagated: the loop always continues.
func handleLine(client *pokeapi.Client, store *cache.Store, formatter *report.Formatter, current *pokeapi.Record, line string) (*pokeapi.Record, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return current, false
	}
	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case "quit", "exit", "q":
		return current, true
	case "help", "?", "c":
		fmt.Println(sessionHelpText)
	case "compare":
		if len(parts) != 3 {
			fmt.Println("Usage: compare <pokemon1> <pokemon2>")
			return current, false
		}
		a, b, err := fetchPair(client, store, parts[1], parts[2])
		if err != nil {
			fmt.Println(formatCliError(err))
			return current, false
		}
		printLines(formatter.Compare(a, b))
	case "breed":
		if len(parts) != 3 {
			fmt.Println("Usage: breed <pokemon1> <pokemon2>")
			return current, false
		}
		a, b, err := fetchPair(client, store, parts[1], parts[2])
		if err != nil {
			fmt.Println(formatCliError(err))
			return current, false
		}
		printLines(formatter.Breeding(a, b, breeding.Check(a, b)))
	default:
		fmt.Printf("Searching for: %s\n", line)
		rec, err := fetch(client, store, line)
		if err != nil {
			fmt.Println(formatCliError(err))
			var notFound pokeapi.NotFoundError
			if errors.As(err, &notFound) {
				fmt.Println("Try a name (e.g. 'pikachu') or an ID number (e.g. '25').")
			}
			return current, false
		}
		printLines(formatter.Entry(rec))
		return rec, false
	}
	return current, false
}

// fetch consults the session cache before going to the network and stores
// every successful lookup.
func fetch(client *pokeapi.Client, store *cache.Store, key string) (*pokeapi.Record, error) {
	if rec, ok := store.Get(key); ok {
		return rec, nil
	}
	rec, err := client.Lookup(context.Background(), key)
	if err != nil {
		return nil, err
	}
	store.Put(key, rec)
	return rec, nil
}

func fetchPair(client *pokeapi.Client, store *cache.Store, first, second string) (*pokeapi.Record, *pokeapi.Record, error) {
	a, err := fetch(client, store, first)
	if err != nil {
		return nil, nil, err
	}
	b, err := fetch(client, store, second)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func prompt(current *pokeapi.Record) string {
	if current == nil {
		return "pokedex> "
	}
	return fmt.Sprintf("pokedex (%s)> ", current.TitleName())
}

// readInteractiveLine reads one line while staying responsive to an
// interrupt signal. The read goroutine stays blocked on stdin after an
// interrupt, which is fine: the process is about to exit.
func readInteractiveLine(reader *bufio.Reader, sigCh <-chan os.Signal) (string, bool, error) {
	lineCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		line, err := reader.ReadString('\n')
		if err != nil {
			errCh <- err
			return
		}
		lineCh <- line
	}()
	select {
	case <-sigCh:
		return "", true, nil
	case err := <-errCh:
		return "", false, err
	case line := <-lineCh:
		return line, false, nil
	}
}

func printBanner() {
	cyan := color.New(color.FgHiCyan, color.Bold)
	yellow := color.New(color.FgHiYellow, color.Bold)
	dim := color.New(color.FgHiBlack)

	cyan.Println("╔═══════════════════════════════════════════════════╗")
	cyan.Print("║")
	yellow.Print("                 POKÉDEX TERMINAL                  ")
	cyan.Println("║")
	cyan.Print("║")
	dim.Print("                Gotta catch 'em all!               ")
	cyan.Println("║")
	cyan.Println("╚═══════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("Search for any Pokémon by name or ID number.")
	fmt.Println("Type 'help' for commands, 'quit' to leave.")
	fmt.Println()
}
