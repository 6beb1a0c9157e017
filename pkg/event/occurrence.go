package event

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// IsDue reports whether the event has an occurrence at the current minute.
// The check is exact-minute: callers are expected to evaluate it at most once
// within any given minute to avoid duplicate firing.
func IsDue(e Event, now time.Time) bool {
	hour, minute, err := e.ClockTime()
	if err != nil {
		log.Debugf("skipping event %d with malformed time: %v", e.ID, err)
		return false
	}
	if hour != now.Hour() || minute != now.Minute() {
		return false
	}

	switch e.Repeat {
	case RepeatDaily:
		return true
	case RepeatWeekly:
		anchor, err := e.Anchor()
		if err != nil {
			log.Debugf("skipping event %d with malformed date: %v", e.ID, err)
			return false
		}
		return anchor.Weekday() == now.Weekday()
	case RepeatMonthly:
		// Day-of-month comparison is literal: an anchor on the 31st never
		// fires in a shorter month.
		anchor, err := e.Anchor()
		if err != nil {
			log.Debugf("skipping event %d with malformed date: %v", e.ID, err)
			return false
		}
		return anchor.Day() == now.Day()
	default:
		return e.Date == now.Format(DateLayout)
	}
}
