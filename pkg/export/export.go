package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/calsched/calsched/pkg/event"
	log "github.com/sirupsen/logrus"
)

// eventDuration is the rendered block length of an event; the data model
// carries no end time.
const eventDuration = time.Hour

// ICS serializes the event list as an iCalendar document. Repeat rules map
// onto RRULEs anchored at DTSTART. Events with malformed date or time are
// skipped, not fatal.
func ICS(events []event.Event) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//calsched//calendar//EN")

	for _, e := range events {
		start, err := e.StartsAt()
		if err != nil {
			log.Warnf("skipping event %d in export: %v", e.ID, err)
			continue
		}

		entry := cal.AddEvent(fmt.Sprintf("calsched-%d@calsched.local", e.ID))
		entry.SetSummary(e.Title)
		entry.SetDtStampTime(start)
		entry.SetStartAt(start)
		entry.SetEndAt(start.Add(eventDuration))
		if rule := rrule(e.Repeat); rule != "" {
			entry.AddRrule(rule)
		}
	}
	return cal.Serialize()
}

// rrule maps a repeat rule to an RRULE anchored at DTSTART. The implied
// BYDAY/BYMONTHDAY of the anchor gives exactly the literal weekly and
// monthly semantics, including no rollover into shorter months.
func rrule(r event.Repeat) string {
	switch r {
	case event.RepeatDaily:
		return "FREQ=DAILY"
	case event.RepeatWeekly:
		return "FREQ=WEEKLY"
	case event.RepeatMonthly:
		return "FREQ=MONTHLY"
	default:
		return ""
	}
}
