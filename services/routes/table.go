package routes

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	destinationColumnWidth = 30
	numberColumnWidth      = 4
	departureColumnWidth   = 20
)

// Render presents the stored routes as a bordered, fixed-width table.
func (s *Store) Render() string {
	return RenderTable(s.Routes())
}

// String implements fmt.Stringer using the table rendering.
func (s *Store) String() string {
	return s.Render()
}

// RenderTable lays out the supplied routes in order as a bordered table with a header row.
// Destinations wider than their column are truncated.
func RenderTable(routes []Route) string {
	border := "+-" + strings.Join([]string{
		strings.Repeat("-", destinationColumnWidth),
		strings.Repeat("-", numberColumnWidth),
		strings.Repeat("-", departureColumnWidth),
	}, "-+-") + "-+"

	lines := []string{
		border,
		tableRow(
			center("Destination", destinationColumnWidth),
			center("No.", numberColumnWidth),
			center("Time", departureColumnWidth),
		),
		border,
	}

	for _, r := range routes {
		lines = append(lines, tableRow(
			runewidth.FillRight(runewidth.Truncate(r.Destination, destinationColumnWidth, ""), destinationColumnWidth),
			runewidth.FillLeft(strconv.Itoa(r.Number), numberColumnWidth),
			runewidth.FillRight(r.Departure.String(), departureColumnWidth),
		))
	}
	lines = append(lines, border)

	return strings.Join(lines, "\n")
}

func tableRow(cells ...string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// center pads s on both sides to width w, favouring the right side when the padding is uneven.
func center(s string, w int) string {
	pad := w - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}

	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
