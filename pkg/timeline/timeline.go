package timeline

import (
	"fmt"
	"math"
	"time"

	"github.com/calsched/calsched/pkg/event"
)

// DefaultHourWidth is the visual column width per hour, in pixels.
const DefaultHourWidth = 100

// Layout maps times-of-day to horizontal offsets on a 24-hour scrollable
// timeline and back.
type Layout struct {
	HourWidth float64
}

func NewLayout(hourWidth int) Layout {
	if hourWidth <= 0 {
		hourWidth = DefaultHourWidth
	}
	return Layout{HourWidth: float64(hourWidth)}
}

// TotalWidth is the full width of the 24-hour timeline.
func (l Layout) TotalWidth() float64 {
	return 24 * l.HourWidth
}

// OffsetForClock returns the pixel offset for an hour/minute pair.
func (l Layout) OffsetForClock(hour, minute int) float64 {
	return (float64(hour) + float64(minute)/60) * l.HourWidth
}

// OffsetForTime returns the pixel offset for an HH:mm time string. Event
// blocks and the current-time indicator are both positioned with it.
func (l Layout) OffsetForTime(t string) (float64, error) {
	parsed, err := time.Parse(event.TimeLayout, t)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", t, err)
	}
	return l.OffsetForClock(parsed.Hour(), parsed.Minute()), nil
}

// TimeAtOffset converts a click position on the timeline back into an HH:mm
// time, flooring to the minute and clamping into the [00:00, 24:00) day.
func (l Layout) TimeAtOffset(px float64) string {
	if px < 0 {
		px = 0
	}
	totalMinutes := px / l.HourWidth * 60
	// Small epsilon so exact minute boundaries survive the float division.
	minutes := int(math.Floor(totalMinutes + 1e-9))
	if minutes > 23*60+59 {
		minutes = 23*60 + 59
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NowOffset returns the offset of the current-time indicator.
func (l Layout) NowOffset(now time.Time) float64 {
	return l.OffsetForClock(now.Hour(), now.Minute())
}

// CenterOffset returns the scroll position that centers the viewport on the
// current time.
func (l Layout) CenterOffset(now time.Time, viewportWidth float64) float64 {
	return l.NowOffset(now) - viewportWidth/2 + l.HourWidth
}

// DayEvents returns the events shown on the timeline for the given day:
// literal anchor-date matches, sorted ascending by time-of-day. Overlapping
// events are not separated into lanes.
func DayEvents(list *event.List, day time.Time) []event.Event {
	return list.OnDate(day.Format(event.DateLayout))
}
