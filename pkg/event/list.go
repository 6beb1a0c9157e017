package event

import (
	"sort"
	"sync"
)

// List is the in-memory collection of events owned by the application
// controller. It is append-only: events are never mutated or removed during
// a session. The controller is the single writer; the reminder scheduler
// reads concurrently through snapshots, hence the lock.
type List struct {
	mu     sync.RWMutex
	events []Event
}

func NewList() *List {
	return &List{}
}

// Reset replaces the whole collection. Used once, after the initial load
// from the store.
func (l *List) Reset(events []Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = make([]Event, len(events))
	copy(l.events, events)
}

func (l *List) Append(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

// All returns a snapshot copy of the collection.
func (l *List) All() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	snapshot := make([]Event, len(l.events))
	copy(snapshot, l.events)
	return snapshot
}

func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}

// OnDate returns the events anchored on the given yyyy-MM-dd date, sorted
// ascending by time-of-day. Repeat rules are not expanded here: an event
// matches only its literal anchor date.
func (l *List) OnDate(date string) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var matched []Event
	for _, e := range l.events {
		if e.Date == date {
			matched = append(matched, e)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Time < matched[j].Time
	})
	return matched
}
