// Package report lays out fetched records as boxed terminal text.
package report

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/fatih/color"

	"github.com/jbgaribay/PokeTerminal/internal/nature"
	"github.com/jbgaribay/PokeTerminal/internal/pokeapi"
	"github.com/jbgaribay/PokeTerminal/internal/sprite"
)

const (
	// DefaultArtWidth is the sprite column width of the entry layout.
	DefaultArtWidth = 50

	// MinArtWidth and MaxArtWidth bound the widths FitArtWidth hands out.
	MinArtWidth = 20
	MaxArtWidth = 100

	infoWidth         = 60
	statBarWidth      = 30
	maxBaseStat       = 255
	placeholderHeight = 20

	// entryChrome is everything in an entry row besides the sprite column:
	// borders, padding, and the info column with its separator.
	entryChrome = infoWidth + 7
)

// FitArtWidth returns the sprite column width that makes a boxed entry fit a
// terminal of the given column count, clamped to a readable range.
func FitArtWidth(cols int) int {
	w := cols - entryChrome
	if w < MinArtWidth {
		return MinArtWidth
	}
	if w > MaxArtWidth {
		return MaxArtWidth
	}
	return w
}

const (
	placeholderNoSprite  = "No sprite available"
	placeholderBadSprite = "Failed to load sprite"
	placeholderNoText    = "No description available."
	placeholderNoAbility = "No abilities available."
	placeholderUnknown   = "Unknown"
)

var typeColors = map[string]*color.Color{
	"normal":   color.New(color.FgWhite),
	"fire":     color.New(color.FgHiRed),
	"water":    color.New(color.FgHiBlue),
	"electric": color.New(color.FgHiYellow),
	"grass":    color.New(color.FgHiGreen),
	"ice":      color.New(color.FgHiCyan),
	"fighting": color.New(color.FgRed),
	"poison":   color.New(color.FgHiMagenta),
	"ground":   color.New(color.FgYellow),
	"flying":   color.New(color.FgCyan),
	"psychic":  color.New(color.FgMagenta),
	"bug":      color.New(color.FgGreen),
	"rock":     color.New(color.FgYellow),
	"ghost":    color.New(color.FgMagenta),
	"dragon":   color.New(color.FgBlue),
	"dark":     color.New(color.FgHiBlack),
	"steel":    color.New(color.FgWhite),
	"fairy":    color.New(color.FgHiMagenta),
}

var (
	defaultTypeColor = color.New(color.FgWhite)
	titleColor       = color.New(color.FgHiYellow, color.Bold)
)

// Formatter builds display lines for records. Color output follows the
// package-level color.NoColor switch, set once by the CLI at startup.
type Formatter struct {
	artWidth int
}

func New(artWidth int) *Formatter {
	if artWidth <= 0 {
		artWidth = DefaultArtWidth
	}
	return &Formatter{artWidth: artWidth}
}

// Entry renders the full Pokédex entry: boxed header, sprite art on the
// left, record details on the right.
func (f *Formatter) Entry(rec *pokeapi.Record) []string {
	art := f.artFor(rec)
	info := f.infoColumn(rec)

	contentW := f.artWidth + 3 + infoWidth
	out := make([]string, 0, len(art.Lines)+8)
	out = append(out, "╔"+strings.Repeat("═", contentW+2)+"╗")
	out = append(out, "║ "+titleColor.Sprint(center("POKÉDEX ENTRY", contentW))+" ║")
	out = append(out, "╠"+strings.Repeat("═", contentW+2)+"╣")
	out = append(out, "║ "+f.headerCell(rec, contentW)+" ║")
	out = append(out, "╠"+strings.Repeat("═", contentW+2)+"╣")

	left := art.Lines
	for len(left) < len(info) {
		left = append(left, strings.Repeat(" ", f.artWidth))
	}
	for len(info) < len(left) {
		info = append(info, "")
	}
	for i := range left {
		out = append(out, "║ "+padCell(left[i], f.artWidth)+" │ "+padCell(info[i], infoWidth)+" ║")
	}

	out = append(out, "╚"+strings.Repeat("═", contentW+2)+"╝")
	return out
}

func (f *Formatter) headerCell(rec *pokeapi.Record, width int) string {
	name := fmt.Sprintf("#%03d - %s", rec.ID, rec.TitleName())
	types := "Type: " + f.TypeBadges(rec.Types)
	gap := width - visibleWidth(name) - visibleWidth(types)
	if gap < 1 {
		gap = 1
	}
	return name + strings.Repeat(" ", gap) + types
}

func (f *Formatter) infoColumn(rec *pokeapi.Record) []string {
	nat := nature.Recommend(rec.Stats)

	var lines []string
	add := func(text string) {
		lines = append(lines, wrap(text, infoWidth)...)
	}

	add(fmt.Sprintf("Height: %.1fm | Weight: %.1fkg", rec.HeightMeters(), rec.WeightKilograms()))
	add("Egg Groups: " + orUnknown(strings.Join(rec.EggGroupNames(), ", ")))
	add("Growth Rate: " + orUnknown(rec.GrowthRate))
	add("Recommended Nature: " + natureLabel(nat))
	lines = append(lines, "", "ABILITIES:")
	if len(rec.Abilities) == 0 {
		add(placeholderNoAbility)
	}
	for _, a := range rec.Abilities {
		desc := a.Description
		if desc == "" {
			desc = placeholderNoText
		}
		name := a.Name
		if a.Hidden {
			name += " (hidden)"
		}
		add(name + ": " + desc)
	}
	lines = append(lines, "", "DESCRIPTION:")
	if rec.FlavorText == "" {
		add(placeholderNoText)
	} else {
		add(rec.FlavorText)
	}
	lines = append(lines, "", "BASE STATS:")
	lines = append(lines, statLines(rec.Stats)...)
	return lines
}

func natureLabel(nat nature.Recommendation) string {
	if nat.Neutral {
		return nat.Name + " (Neutral)"
	}
	return fmt.Sprintf("%s (+%s, -%s)", nat.Name, nat.Boosted, nat.Reduced)
}

func statLines(s nature.Stats) []string {
	rows := []struct {
		name  string
		value int
	}{
		{"HP", s.HP},
		{"Attack", s.Attack},
		{"Defense", s.Defense},
		{"Sp. Atk", s.SpecialAttack},
		{"Sp. Def", s.SpecialDefense},
		{"Speed", s.Speed},
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, fmt.Sprintf("  %-8s: %3d %s", row.name, row.value, statBar(row.value)))
	}
	return out
}

func statBar(value int) string {
	filled := int(math.Round(float64(value) / maxBaseStat * statBarWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > statBarWidth {
		filled = statBarWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", statBarWidth-filled)
}

// TypeBadges renders type names uppercased in their display colors,
// separated by slashes.
func (f *Formatter) TypeBadges(types []string) string {
	if len(types) == 0 {
		return placeholderUnknown
	}
	badges := make([]string, 0, len(types))
	for _, t := range types {
		c, ok := typeColors[t]
		if !ok {
			c = defaultTypeColor
		}
		badges = append(badges, c.Sprint(strings.ToUpper(t)))
	}
	return strings.Join(badges, " / ")
}

// artFor renders the record's sprite, or a placeholder block when the sprite
// is missing or undecodable.
func (f *Formatter) artFor(rec *pokeapi.Record) sprite.Art {
	if len(rec.Sprite) == 0 {
		return f.placeholderArt(placeholderNoSprite)
	}
	art, err := sprite.Render(rec.Sprite, f.artWidth)
	if err != nil {
		return f.placeholderArt(placeholderBadSprite)
	}
	return art
}

func (f *Formatter) placeholderArt(notice string) sprite.Art {
	art := sprite.Blank(f.artWidth, placeholderHeight)
	art.Lines[placeholderHeight/2] = center(notice, f.artWidth)
	return art
}

func orUnknown(s string) string {
	if s == "" {
		return placeholderUnknown
	}
	return s
}

// wrap breaks text on word boundaries; words longer than the width are cut.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := ""
	for _, word := range words {
		for len([]rune(word)) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
		}
		switch {
		case current == "":
			current = word
		case len([]rune(current))+1+len([]rune(word)) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func visibleWidth(s string) int {
	return len([]rune(ansiPattern.ReplaceAllString(s, "")))
}

// padCell pads or trims a cell to an exact visible width. Cells that carry
// color codes are never trimmed, only padded.
func padCell(s string, width int) string {
	w := visibleWidth(s)
	if w < width {
		return s + strings.Repeat(" ", width-w)
	}
	if w > width && !strings.Contains(s, "\x1b") {
		return string([]rune(s)[:width])
	}
	return s
}

func center(s string, width int) string {
	w := visibleWidth(s)
	if w >= width {
		return padCell(s, width)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
