package tui

import (
	"fmt"

	"github.com/tempoapp/tempo/internal/layout"
)

// rowSpan is the placement of one render item in a day column, in
// terminal rows from the top of the timed grid.
type rowSpan struct {
	Item int // index into DayLayout.Items
	Top  int
	Rows int
}

// mapRows projects the pixel geometry of a day's items onto gridRows
// terminal rows. True proportions are kept where possible, but every
// item occupies at least one row so short blocks stay selectable; when
// the floor would make neighbors collide, later items are pushed down
// and the tail is clamped to the grid.
func mapRows(items []layout.Item, gridRows, windowPixels int) []rowSpan {
	if gridRows <= 0 || windowPixels <= 0 || len(items) == 0 {
		return nil
	}

	spans := make([]rowSpan, 0, len(items))
	nextFree := 0
	for i, it := range items {
		top := it.Top * gridRows / windowPixels
		bottom := (it.Top + it.Height) * gridRows / windowPixels
		if top < nextFree {
			top = nextFree
		}
		rows := bottom - top
		if rows < 1 {
			rows = 1
		}
		if top >= gridRows {
			top = gridRows - 1
			rows = 1
		}
		if top+rows > gridRows {
			rows = gridRows - top
		}
		spans = append(spans, rowSpan{Item: i, Top: top, Rows: rows})
		nextFree = top + rows
	}
	return spans
}

// rowContent maps every grid row to the item occupying it, -1 for
// background rows.
func rowContent(spans []rowSpan, gridRows int) []int {
	rows := make([]int, gridRows)
	for i := range rows {
		rows[i] = -1
	}
	for _, sp := range spans {
		for r := sp.Top; r < sp.Top+sp.Rows && r < gridRows; r++ {
			rows[r] = sp.Item
		}
	}
	return rows
}

// hourMarks returns, for each grid row, the "HH:00" label to show in
// the time column, or "" for rows between marks.
func hourMarks(w layout.Window, gridRows int) []string {
	marks := make([]string, gridRows)
	if gridRows <= 0 {
		return marks
	}
	minutesPerRow := float64(w.Minutes()) / float64(gridRows)
	lastHour := -1
	for r := 0; r < gridRows; r++ {
		minute := w.StartMinutes + int(float64(r)*minutesPerRow)
		hour := minute / 60
		if hour != lastHour {
			marks[r] = formatHour(hour)
			lastHour = hour
		}
	}
	return marks
}

func formatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
