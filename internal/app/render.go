package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/calsched/calsched/pkg/event"
	"github.com/calsched/calsched/pkg/grid"
	"github.com/calsched/calsched/pkg/timeline"
	"github.com/calsched/calsched/pkg/view"
)

// timelineColumns is the character width the 24-hour pixel timeline is
// scaled down to for terminal output.
const timelineColumns = 48

func (s *session) render() {
	anchor := s.deps.ViewState.Anchor()
	now := s.deps.Clock.Now()

	fmt.Fprintln(s.out)
	switch s.deps.ViewState.Active() {
	case view.Month:
		renderMonth(s.out, anchor, s.deps.Events, now)
	case view.Year:
		renderYear(s.out, anchor, now)
	default:
		renderDay(s.out, anchor, s.deps.Events, s.deps.Layout, now)
	}
	fmt.Fprintln(s.out)
}

func renderDay(w io.Writer, anchor time.Time, list *event.List, layout timeline.Layout, now time.Time) {
	fmt.Fprintf(w, "%s (%s)\n", anchor.Format("January 2, 2006"), anchor.Format("Monday"))

	events := timeline.DayEvents(list, anchor)
	isToday := anchor.Year() == now.Year() && anchor.YearDay() == now.YearDay()

	bar := []rune(strings.Repeat("-", timelineColumns))
	for _, e := range events {
		offset, err := layout.OffsetForTime(e.Time)
		if err != nil {
			continue
		}
		bar[column(offset, layout)] = '|'
	}
	if isToday {
		bar[column(layout.NowOffset(now), layout)] = '*'
	}
	fmt.Fprintf(w, "00:00 %s 24:00\n", string(bar))

	if isToday {
		fmt.Fprintf(w, "Now: %s (x=%.0f)\n", now.Format(event.TimeLayout), layout.NowOffset(now))
	}

	if len(events) == 0 {
		fmt.Fprintln(w, "No events scheduled for this day")
		return
	}
	for _, e := range events {
		offset, _ := layout.OffsetForTime(e.Time)
		label := e.Title
		if e.Repeat != event.RepeatNone {
			label = fmt.Sprintf("%s (%s)", e.Title, e.Repeat)
		}
		fmt.Fprintf(w, "  %s  %-30s x=%.0f\n", e.Time, label, offset)
	}
}

func column(offset float64, layout timeline.Layout) int {
	col := int(offset / layout.TotalWidth() * timelineColumns)
	if col < 0 {
		col = 0
	}
	if col >= timelineColumns {
		col = timelineColumns - 1
	}
	return col
}

func renderMonth(w io.Writer, anchor time.Time, list *event.List, now time.Time) {
	fmt.Fprintln(w, anchor.Format("January 2006"))
	fmt.Fprintln(w, "   Sun   Mon   Tue   Wed   Thu   Fri   Sat")

	cells := grid.BuildMonthGrid(anchor, list, now)
	for i, cell := range cells {
		fmt.Fprint(w, cellLabel(cell))
		if (i+1)%7 == 0 {
			fmt.Fprintln(w)
		}
	}

	for _, cell := range cells {
		for _, e := range cell.Events {
			fmt.Fprintf(w, "  %s  %s  %s\n", cell.Date.Format("Jan _2"), e.Time, e.Title)
		}
	}
}

// cellLabel renders one grid cell, six characters wide: outside-month days
// in parentheses, today marked with *, days with events with +.
func cellLabel(cell grid.Cell) string {
	if !cell.InMonth {
		return fmt.Sprintf("  (%2d)", cell.Date.Day())
	}
	marks := ""
	if cell.Today {
		marks += "*"
	}
	if len(cell.Events) > 0 {
		marks += "+"
	}
	return fmt.Sprintf("   %2d%-2s", cell.Date.Day(), marks)[:6]
}

func renderYear(w io.Writer, anchor time.Time, now time.Time) {
	fmt.Fprintf(w, "%d\n", anchor.Year())

	months := grid.BuildYearGrid(anchor, now)
	for i, month := range months {
		fmt.Fprintf(w, "\n%2d %s\n", i+1, month.Month.Format("January"))
		for j, cell := range month.Cells {
			if cell.InMonth {
				mark := " "
				if cell.Today {
					mark = "*"
				}
				fmt.Fprintf(w, " %2d%s", cell.Date.Day(), mark)
			} else {
				fmt.Fprint(w, "  . ")
			}
			if (j+1)%7 == 0 {
				fmt.Fprintln(w)
			}
		}
	}
}
