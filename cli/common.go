package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/jbgaribay/PokeTerminal/internal/pokeapi"
	"github.com/jbgaribay/PokeTerminal/internal/report"
)

// resolveArtWidth picks the sprite column width. Zero means auto: size it
// from the terminal on fd when there is one, otherwise use the default.
func resolveArtWidth(width int, fd int) int {
	if width > 0 {
		return width
	}
	if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
		return report.FitArtWidth(cols)
	}
	return report.DefaultArtWidth
}

func fail(err error) int {
	fmt.Fprintln(os.Stderr, formatCliError(err))
	return 1
}

func formatCliError(err error) string {
	if err == nil {
		return ""
	}
	var notFound pokeapi.NotFoundError
	if errors.As(err, &notFound) {
		return formatCliBadge("404", fmt.Sprintf("Pokemon '%s' not found!", notFound.Key))
	}
	var network pokeapi.NetworkError
	if errors.As(err, &network) {
		return formatCliBadge("NET", "Connection problem. Check your network and try again.")
	}
	var format pokeapi.DataFormatError
	if errors.As(err, &format) {
		return formatCliBadge("API", "The API answered with something unexpected. Try again later.")
	}
	return formatCliBadge("ERR", err.Error())
}

var badgeColor = color.New(color.BgRed, color.FgHiWhite, color.Bold)

func formatCliBadge(code string, msg string) string {
	if color.NoColor {
		return "[" + code + "] " + msg
	}
	return badgeColor.Sprint(" "+code+" ") + " " + msg
}

// applyColorMode sets the global fatih/color switch. Auto mode honors the
// POKEDEX_COLOR environment variable, then falls back to TTY detection.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
		return
	case "never":
		color.NoColor = true
		return
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("POKEDEX_COLOR"))) {
	case "always":
		color.NoColor = false
		return
	case "never":
		color.NoColor = true
		return
	}
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("TERM") == "dumb"
}

func printLines(lines []string) {
	for _, line := range lines {
		fmt.Println(line)
	}
}
