package compose

import (
	"context"
	"strings"
	"time"

	"github.com/calsched/calsched/internal/bus"
	"github.com/calsched/calsched/pkg/event"
	"github.com/calsched/calsched/pkg/store"
	log "github.com/sirupsen/logrus"
)

const defaultTime = "09:00"

// Draft holds the fields of an event being composed.
type Draft struct {
	Title  string
	Time   string
	Repeat event.Repeat
}

func NewDraft() Draft {
	return Draft{Time: defaultTime, Repeat: event.RepeatNone}
}

// Composer is the event composition form: it collects a draft for a selected
// date and hands it to the store client on submit. Created events are
// appended to the in-memory list only when the store confirms them.
type Composer struct {
	client store.Client
	list   *event.List
	bus    *bus.Bus

	date  *time.Time
	draft Draft
	open  bool
}

func NewComposer(client store.Client, list *event.List, b *bus.Bus) *Composer {
	return &Composer{client: client, list: list, bus: b, draft: NewDraft()}
}

// Open starts a fresh draft for the given date.
func (c *Composer) Open(date time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	c.date = &day
	c.draft = NewDraft()
	c.open = true
}

// OpenWithTime starts a draft prefilled with a time, e.g. from a timeline
// click.
func (c *Composer) OpenWithTime(date time.Time, timeOfDay string) {
	c.Open(date)
	c.draft.Time = timeOfDay
}

func (c *Composer) IsOpen() bool {
	return c.open
}

func (c *Composer) Draft() Draft {
	return c.draft
}

func (c *Composer) Date() *time.Time {
	return c.date
}

func (c *Composer) SetTitle(title string) {
	c.draft.Title = title
}

func (c *Composer) SetTime(timeOfDay string) {
	if _, err := time.Parse(event.TimeLayout, timeOfDay); err != nil {
		log.Debugf("composer: ignoring invalid time %q", timeOfDay)
		return
	}
	c.draft.Time = timeOfDay
}

func (c *Composer) SetRepeat(repeat event.Repeat) {
	if !repeat.IsValid() {
		log.Debugf("composer: ignoring invalid repeat %q", repeat)
		return
	}
	c.draft.Repeat = repeat
}

// Cancel discards the draft and closes the form.
func (c *Composer) Cancel() {
	c.date = nil
	c.draft = NewDraft()
	c.open = false
}

// Submit validates the draft and delegates to the store client. An empty or
// whitespace-only title, or a missing date, is silently rejected without a
// store call. A store failure returns nil and leaves the form open with the
// list untouched; only a confirmed create appends, clears the draft, and
// closes the form.
func (c *Composer) Submit(ctx context.Context) *event.Event {
	if c.date == nil || strings.TrimSpace(c.draft.Title) == "" {
		log.Debug("composer: rejecting submit without date or title")
		return nil
	}

	data := store.SongData{
		Date:   c.date.Format(event.DateLayout),
		Time:   c.draft.Time,
		Title:  c.draft.Title,
		Repeat: c.draft.Repeat,
	}
	created, err := c.client.CreateEvent(ctx, data)
	if err != nil {
		log.Errorf("composer: event was not created: %v", err)
		return nil
	}

	c.list.Append(*created)
	if c.bus != nil {
		if err := c.bus.Publish(bus.NewEvent(ctx, bus.TopicEventCreated, bus.EventCreated{Event: *created})); err != nil {
			log.Debugf("composer: publish failed: %v", err)
		}
	}
	c.Cancel()
	return created
}
