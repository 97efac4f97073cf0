package report

import (
	"fmt"
	"strings"

	"github.com/jbgaribay/PokeTerminal/internal/breeding"
	"github.com/jbgaribay/PokeTerminal/internal/pokeapi"
)

const compareGap = 4

// Compare renders two records side by side: sprites, types, and a
// stat-by-stat table marking the higher value.
func (f *Formatter) Compare(a, b *pokeapi.Record) []string {
	contentW := f.artWidth*2 + compareGap

	out := []string{"╔" + strings.Repeat("═", contentW+2) + "╗"}
	title := fmt.Sprintf("%s VS %s", strings.ToUpper(a.TitleName()), strings.ToUpper(b.TitleName()))
	out = append(out, "║ "+titleColor.Sprint(center(title, contentW))+" ║")
	out = append(out, "╠"+strings.Repeat("═", contentW+2)+"╣")

	out = append(out, f.compareRow(center(a.TitleName(), f.artWidth), center(b.TitleName(), f.artWidth), "    "))
	out = append(out, f.compareRow(center("Type: "+f.TypeBadges(a.Types), f.artWidth), center("Type: "+f.TypeBadges(b.Types), f.artWidth), "    "))
	out = append(out, f.compareRow("", "", "    "))

	left := f.artFor(a).Lines
	right := f.artFor(b).Lines
	for len(left) < len(right) {
		left = append(left, "")
	}
	for len(right) < len(left) {
		right = append(right, "")
	}
	for i := range left {
		gap := "    "
		if i == len(left)/2 {
			gap = " VS "
		}
		out = append(out, f.compareRow(left[i], right[i], gap))
	}

	out = append(out, "╠"+strings.Repeat("═", contentW+2)+"╣")
	out = append(out, "║ "+padCell("BASE STATS:", contentW)+" ║")
	for _, row := range statComparison(a, b) {
		out = append(out, "║ "+padCell(row, contentW)+" ║")
	}
	out = append(out, "╚"+strings.Repeat("═", contentW+2)+"╝")
	return out
}

func (f *Formatter) compareRow(left, right, gap string) string {
	return "║ " + padCell(left, f.artWidth) + gap + padCell(right, f.artWidth) + " ║"
}

func statComparison(a, b *pokeapi.Record) []string {
	rows := []struct {
		name string
		av   int
		bv   int
	}{
		{"HP", a.Stats.HP, b.Stats.HP},
		{"Attack", a.Stats.Attack, b.Stats.Attack},
		{"Defense", a.Stats.Defense, b.Stats.Defense},
		{"Sp. Atk", a.Stats.SpecialAttack, b.Stats.SpecialAttack},
		{"Sp. Def", a.Stats.SpecialDefense, b.Stats.SpecialDefense},
		{"Speed", a.Stats.Speed, b.Stats.Speed},
	}
	out := make([]string, 0, len(rows)+1)
	totalA, totalB := 0, 0
	for _, row := range rows {
		totalA += row.av
		totalB += row.bv
		out = append(out, fmt.Sprintf("  %-8s: %3d %s %3d", row.name, row.av, winnerMark(row.av, row.bv), row.bv))
	}
	out = append(out, fmt.Sprintf("  %-8s: %3d %s %3d", "Total", totalA, winnerMark(totalA, totalB), totalB))
	return out
}

func winnerMark(a, b int) string {
	switch {
	case a > b:
		return "◀"
	case b > a:
		return "▶"
	default:
		return "="
	}
}

// Breeding renders the outcome of an egg-group compatibility check.
func (f *Formatter) Breeding(a, b *pokeapi.Record, res breeding.Result) []string {
	contentW := f.artWidth + 3 + infoWidth

	verdict := "✗ Not compatible: " + res.Reason
	if res.Compatible {
		verdict = "✓ Compatible: " + res.Reason
	}

	out := []string{"╔" + strings.Repeat("═", contentW+2) + "╗"}
	out = append(out, "║ "+titleColor.Sprint(center("BREEDING COMPATIBILITY", contentW))+" ║")
	out = append(out, "╠"+strings.Repeat("═", contentW+2)+"╣")
	body := []string{
		fmt.Sprintf("%s × %s", a.TitleName(), b.TitleName()),
		"",
		fmt.Sprintf("Egg Groups (%s): %s", a.TitleName(), orUnknown(strings.Join(a.EggGroupNames(), ", "))),
		fmt.Sprintf("Egg Groups (%s): %s", b.TitleName(), orUnknown(strings.Join(b.EggGroupNames(), ", "))),
		"",
	}
	body = append(body, wrap(verdict, contentW)...)
	if res.Compatible && len(res.SharedGroups) > 0 {
		shared := make([]string, 0, len(res.SharedGroups))
		for _, g := range res.SharedGroups {
			shared = append(shared, pokeapi.TitleWords(g))
		}
		body = append(body, "Shared: "+strings.Join(shared, ", "))
	}
	for _, line := range body {
		out = append(out, "║ "+padCell(line, contentW)+" ║")
	}
	out = append(out, "╚"+strings.Repeat("═", contentW+2)+"╝")
	return out
}
