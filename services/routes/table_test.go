package routes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var tableBorder = "+-" + strings.Repeat("-", 30) + "-+-" + strings.Repeat("-", 4) + "-+-" + strings.Repeat("-", 20) + "-+"

var tableHeader = "| " + strings.Repeat(" ", 9) + "Destination" + strings.Repeat(" ", 10) +
	" | No.  | " + strings.Repeat(" ", 8) + "Time" + strings.Repeat(" ", 8) + " |"

func TestRenderSingleRoute(t *testing.T) {
	s := newTestStore(t, addRouteArgs{"Depot", 7, "06:05"})

	expected := strings.Join([]string{
		tableBorder,
		tableHeader,
		tableBorder,
		"| Depot" + strings.Repeat(" ", 25) + " |    7 | 06:05" + strings.Repeat(" ", 15) + " |",
		tableBorder,
	}, "\n")

	assert.Equal(t, expected, s.Render())
	assert.Equal(t, expected, s.String())
}

func TestRenderEmptyStore(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, strings.Join([]string{tableBorder, tableHeader, tableBorder, tableBorder}, "\n"), s.Render())
}

func TestRenderTruncatesLongDestination(t *testing.T) {
	long := strings.Repeat("x", 40)
	res := RenderTable([]Route{{Destination: long, Number: 1234, Departure: NewTimeOfDay(23, 0)}})

	lines := strings.Split(res, "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, "| "+strings.Repeat("x", 30)+" | 1234 | 23:00"+strings.Repeat(" ", 15)+" |", lines[3])
	assert.Equal(t, len(tableBorder), len(lines[3]))
}

func TestRenderWideCharacters(t *testing.T) {
	res := RenderTable([]Route{{Destination: "Вокзал", Number: 12, Departure: NewTimeOfDay(6, 5)}})

	lines := strings.Split(res, "\n")
	assert.Equal(t, "| Вокзал"+strings.Repeat(" ", 24)+" |   12 | 06:05"+strings.Repeat(" ", 15)+" |", lines[3])
}
