package cli

import (
	"context"

	"github.com/jbgaribay/PokeTerminal/internal/breeding"
	"github.com/jbgaribay/PokeTerminal/internal/pokeapi"
	"github.com/jbgaribay/PokeTerminal/internal/report"
)

func cmdLookup(client *pokeapi.Client, formatter *report.Formatter, key string) int {
	rec, err := client.Lookup(context.Background(), key)
	if err != nil {
		return fail(err)
	}
	printLines(formatter.Entry(rec))
	return 0
}

func cmdCompare(client *pokeapi.Client, formatter *report.Formatter, first, second string) int {
	a, err := client.Lookup(context.Background(), first)
	if err != nil {
		return fail(err)
	}
	b, err := client.Lookup(context.Background(), second)
	if err != nil {
		return fail(err)
	}
	printLines(formatter.Compare(a, b))
	return 0
}

func cmdBreed(client *pokeapi.Client, formatter *report.Formatter, first, second string) int {
	a, err := client.Lookup(context.Background(), first)
	if err != nil {
		return fail(err)
	}
	b, err := client.Lookup(context.Background(), second)
	if err != nil {
		return fail(err)
	}
	printLines(formatter.Breeding(a, b, breeding.Check(a, b)))
	return 0
}
