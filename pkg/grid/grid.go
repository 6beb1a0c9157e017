package grid

import (
	"time"

	"github.com/calsched/calsched/pkg/event"
)

// Cell is one day-sized unit of a month or year grid. Cells are derived on
// every build and never cached across renders.
type Cell struct {
	Date    time.Time
	InMonth bool // falls within the anchor month
	Today   bool
	Events  []event.Event
}

// MonthSummary is one compact month of a year grid: day numbers only, no
// event badges.
type MonthSummary struct {
	Month time.Time // first day of the month
	Cells []Cell
}

// BuildMonthGrid computes the calendar cells for the month containing
// anchor: full Sunday-start weeks from the week of the month's first day
// through the week of its last day, so the result length is always a
// multiple of 7. Events attach to cells by literal anchor-date equality
// only; repeat rules are not expanded onto the grid (the reminder matcher
// does honor them, and that asymmetry is kept on purpose).
func BuildMonthGrid(anchor time.Time, events *event.List, today time.Time) []Cell {
	monthStart := startOfMonth(anchor)
	monthEnd := endOfMonth(anchor)
	first := startOfWeek(monthStart)
	last := endOfWeek(monthEnd)

	var cells []Cell
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		cell := Cell{
			Date:    day,
			InMonth: day.Month() == anchor.Month() && day.Year() == anchor.Year(),
			Today:   sameDay(day, today),
		}
		if events != nil {
			cell.Events = events.OnDate(day.Format(event.DateLayout))
		}
		cells = append(cells, cell)
	}
	return cells
}

// BuildYearGrid computes the twelve compact month grids for the year
// containing anchor.
func BuildYearGrid(anchor time.Time, today time.Time) []MonthSummary {
	months := make([]MonthSummary, 0, 12)
	for m := time.January; m <= time.December; m++ {
		first := time.Date(anchor.Year(), m, 1, 0, 0, 0, 0, anchor.Location())
		months = append(months, MonthSummary{
			Month: first,
			Cells: BuildMonthGrid(first, nil, today),
		})
	}
	return months
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, -1)
}

// startOfWeek returns the Sunday on or before t.
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// endOfWeek returns the Saturday on or after t.
func endOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, int(time.Saturday-day.Weekday()))
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
