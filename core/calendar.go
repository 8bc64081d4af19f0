package core

import "time"

// MonthGrid lays out a month as week rows of 7 day numbers, Monday first.
// Cells belonging to an adjacent month hold 0.
func MonthGrid(year int, month time.Month) [][]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Weekday is Sunday-based; shift so Monday == 0.
	offset := (int(first.Weekday()) + 6) % 7

	var weeks [][]int
	week := make([]int, 7)
	for day := 1; day <= daysInMonth; day++ {
		week[offset] = day
		offset++
		if offset == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			offset = 0
		}
	}
	if offset > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}
