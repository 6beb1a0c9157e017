package grid

import (
	"testing"
	"time"

	"github.com/calsched/calsched/pkg/event"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestBuildMonthGrid(t *testing.T) {
	today := date(2024, time.March, 20)

	t.Run("Grid always contains whole weeks", func(t *testing.T) {
		for m := time.January; m <= time.December; m++ {
			cells := BuildMonthGrid(date(2024, m, 15), nil, today)
			assert.Zero(t, len(cells)%7, "month %s", m)
			assert.GreaterOrEqual(t, len(cells), 28)
			assert.LessOrEqual(t, len(cells), 42)
		}
	})

	t.Run("Grid starts on Sunday and ends on Saturday", func(t *testing.T) {
		cells := BuildMonthGrid(date(2024, time.March, 15), nil, today)

		assert.Equal(t, time.Sunday, cells[0].Date.Weekday())
		assert.Equal(t, time.Saturday, cells[len(cells)-1].Date.Weekday())
		// March 2024 starts on a Friday; the grid leads with February days.
		assert.Equal(t, date(2024, time.February, 25), cells[0].Date)
		assert.Equal(t, date(2024, time.April, 6), cells[len(cells)-1].Date)
	})

	t.Run("Every cell lies within the week-aligned month range", func(t *testing.T) {
		anchor := date(2024, time.June, 1)
		cells := BuildMonthGrid(anchor, nil, today)

		first := cells[0].Date
		last := cells[len(cells)-1].Date
		for i, c := range cells {
			assert.False(t, c.Date.Before(first), "cell %d", i)
			assert.False(t, c.Date.After(last), "cell %d", i)
			if i > 0 {
				assert.Equal(t, cells[i-1].Date.AddDate(0, 0, 1), c.Date, "cells must be consecutive")
			}
		}
	})

	t.Run("Leading and trailing days are flagged as outside the month", func(t *testing.T) {
		cells := BuildMonthGrid(date(2024, time.March, 15), nil, today)

		assert.False(t, cells[0].InMonth)
		inMonth := 0
		for _, c := range cells {
			if c.InMonth {
				inMonth++
			}
		}
		assert.Equal(t, 31, inMonth)
	})

	t.Run("Today flag is set on exactly one cell when today is visible", func(t *testing.T) {
		cells := BuildMonthGrid(date(2024, time.March, 15), nil, today)

		todayCount := 0
		for _, c := range cells {
			if c.Today {
				todayCount++
				assert.Equal(t, today, c.Date)
			}
		}
		assert.Equal(t, 1, todayCount)
	})

	t.Run("Events attach to cells by literal date only", func(t *testing.T) {
		list := event.NewList()
		list.Append(event.Event{ID: 1, Title: "Meet", Date: "2024-03-15", Time: "09:00"})
		list.Append(event.Event{ID: 2, Title: "Daily", Date: "2024-01-01", Time: "08:00", Repeat: event.RepeatDaily})

		cells := BuildMonthGrid(date(2024, time.March, 15), list, today)

		var withEvents []Cell
		for _, c := range cells {
			if len(c.Events) > 0 {
				withEvents = append(withEvents, c)
			}
		}
		// The repeating event is anchored in January, so March shows only the
		// one-off; its repeated occurrences do not appear on the grid.
		assert.Len(t, withEvents, 1)
		assert.Equal(t, date(2024, time.March, 15), withEvents[0].Date)
		assert.Equal(t, "Meet", withEvents[0].Events[0].Title)
	})
}

func TestBuildYearGrid(t *testing.T) {
	today := date(2024, time.March, 20)

	t.Run("Year grid has twelve months in order", func(t *testing.T) {
		months := BuildYearGrid(date(2024, time.July, 4), today)

		assert.Len(t, months, 12)
		for i, m := range months {
			assert.Equal(t, time.Month(i+1), m.Month.Month())
			assert.Equal(t, 2024, m.Month.Year())
			assert.Zero(t, len(m.Cells)%7)
		}
	})

	t.Run("Compact months carry no event badges", func(t *testing.T) {
		months := BuildYearGrid(date(2024, time.July, 4), today)
		for _, m := range months {
			for _, c := range m.Cells {
				assert.Empty(t, c.Events)
			}
		}
	})
}
