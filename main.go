package main

import (
	"os"

	"github.com/jbgaribay/PokeTerminal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:]))
}
