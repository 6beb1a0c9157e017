package view

import "time"

// View identifies the active calendar view.
type View string

const (
	Day   View = "day"
	Month View = "month"
	Year  View = "year"
)

func (v View) IsValid() bool {
	switch v {
	case Day, Month, Year:
		return true
	}
	return false
}

// State holds the anchor date the active view is centered on and which view
// is active. It is owned by the application controller and lives for the
// session only; every session starts at today in day view.
type State struct {
	anchor time.Time
	active View
}

func NewState(today time.Time) *State {
	return &State{anchor: truncateToDay(today), active: Day}
}

func (s *State) Anchor() time.Time {
	return s.anchor
}

func (s *State) Active() View {
	return s.active
}

// Switch changes the active view without moving the anchor. Unknown views
// are ignored.
func (s *State) Switch(v View) {
	if v.IsValid() {
		s.active = v
	}
}

// Prev steps the anchor back by one unit of the active view's granularity.
func (s *State) Prev() {
	s.step(-1)
}

// Next steps the anchor forward by one unit of the active view's granularity.
func (s *State) Next() {
	s.step(1)
}

func (s *State) step(delta int) {
	switch s.active {
	case Month:
		s.anchor = addMonths(s.anchor, delta)
	case Year:
		s.anchor = addYears(s.anchor, delta)
	default:
		s.anchor = s.anchor.AddDate(0, 0, delta)
	}
}

// OpenDay anchors the day view at the clicked date (month-view cell click).
func (s *State) OpenDay(date time.Time) {
	s.anchor = truncateToDay(date)
	s.active = Day
}

// OpenMonth anchors the month view at the clicked month (year-view click).
func (s *State) OpenMonth(date time.Time) {
	s.anchor = truncateToDay(date)
	s.active = Month
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// addMonths steps by whole months, clamping the day to the end of shorter
// target months (Jan 31 -> Feb 29, not Mar 2).
func addMonths(t time.Time, delta int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, delta, 0)
	day := t.Day()
	if max := daysInMonth(first); day > max {
		day = max
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

func addYears(t time.Time, delta int) time.Time {
	first := time.Date(t.Year()+delta, t.Month(), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if max := daysInMonth(first); day > max {
		day = max
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
