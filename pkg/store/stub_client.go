package store

import (
	"context"
	"fmt"

	"github.com/calsched/calsched/pkg/event"
)

// StubClient is an in-memory Client for tests.
type StubClient struct {
	Events  []event.Event
	Err     error
	Created []SongData
	nextID  int
}

func (s *StubClient) ListEvents(ctx context.Context) ([]event.Event, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Events, nil
}

func (s *StubClient) GetEvent(ctx context.Context, id int) (*event.Event, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, e := range s.Events {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("event %d not found", id)
}

func (s *StubClient) CreateEvent(ctx context.Context, data SongData) (*event.Event, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Created = append(s.Created, data)
	s.nextID++
	song := NewSong(data)
	song.ID = s.nextID
	created := song.ToEvent()
	s.Events = append(s.Events, created)
	return &created, nil
}
