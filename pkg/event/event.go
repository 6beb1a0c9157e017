package event

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar date format used by the store and the UI.
	DateLayout = "2006-01-02"
	// TimeLayout is the 24-hour wall-clock time format.
	TimeLayout = "15:04"
)

type Repeat string

const (
	RepeatNone    Repeat = "none"
	RepeatDaily   Repeat = "daily"
	RepeatWeekly  Repeat = "weekly"
	RepeatMonthly Repeat = "monthly"
)

func (r Repeat) IsValid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly:
		return true
	}
	return false
}

// Event is a scheduled calendar entry. Date is the anchor occurrence date;
// repeat rules derive further occurrences from it.
type Event struct {
	ID     int
	Title  string
	Date   string // yyyy-MM-dd
	Time   string // HH:mm
	Repeat Repeat
}

// Anchor parses the event's anchor date in the local timezone.
func (e Event) Anchor() (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, e.Date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid event date %q: %w", e.Date, err)
	}
	return t, nil
}

// ClockTime parses the event's time-of-day into hour and minute.
func (e Event) ClockTime() (hour int, minute int, err error) {
	t, err := time.Parse(TimeLayout, e.Time)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid event time %q: %w", e.Time, err)
	}
	return t.Hour(), t.Minute(), nil
}

// StartsAt combines the anchor date and time-of-day into a single instant.
func (e Event) StartsAt() (time.Time, error) {
	anchor, err := e.Anchor()
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := e.ClockTime()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(anchor.Year(), anchor.Month(), anchor.Day(), hour, minute, 0, 0, time.Local), nil
}
