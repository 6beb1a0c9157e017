package store

import (
	"context"

	"github.com/calsched/calsched/pkg/event"
)

const (
	// resourceType marks calendar events among the generic songs records.
	resourceType = "event"
	// recordAuthor is the fixed author the backend expects on created records.
	recordAuthor = "user"
)

// SongData is the event payload nested inside a songs record.
type SongData struct {
	Date   string       `json:"date"`
	Time   string       `json:"time"`
	Title  string       `json:"title"`
	Repeat event.Repeat `json:"repeat,omitempty"`
}

// Song is the generic record shape of the remote store.
type Song struct {
	ID     int      `json:"id,omitempty"`
	Name   string   `json:"name"`
	Author string   `json:"author"`
	Type   string   `json:"type"`
	Data   SongData `json:"data"`
}

// Client talks to the remote event store. Calls are fire-and-forget from the
// caller's perspective: no retries, no idempotency keys.
type Client interface {
	ListEvents(ctx context.Context) ([]event.Event, error)     // GET /api/songs?type=event
	GetEvent(ctx context.Context, id int) (*event.Event, error) // GET /api/songs/{id}
	CreateEvent(ctx context.Context, data SongData) (*event.Event, error) // POST /api/songs
}

// ToEvent maps a songs record to the calendar event it carries. A missing
// repeat defaults to none.
func (s Song) ToEvent() event.Event {
	repeat := s.Data.Repeat
	if repeat == "" {
		repeat = event.RepeatNone
	}
	return event.Event{
		ID:     s.ID,
		Title:  s.Data.Title,
		Date:   s.Data.Date,
		Time:   s.Data.Time,
		Repeat: repeat,
	}
}

// NewSong wraps an event payload in the record envelope the backend expects.
func NewSong(data SongData) Song {
	return Song{
		Name:   data.Title,
		Author: recordAuthor,
		Type:   resourceType,
		Data:   data,
	}
}
