package dateutil

import "time"

// GridCells is the fixed size of a calendar month grid: six rows of seven
// days, enough to hold any month at any weekday offset.
const GridCells = 42

// CalendarGrid returns the 42 consecutive days shown for t's month. The
// first cell is midnight on the Sunday on or before the first of the month,
// so the grid always contains the entire month plus the surrounding days
// needed to square it off.
func CalendarGrid(t time.Time) []time.Time {
	start := StartOfWeek(StartOfMonth(t))
	grid := make([]time.Time, GridCells)
	for i := range grid {
		grid[i] = AddDays(start, i)
	}
	return grid
}
