package bus

import (
	"time"

	"github.com/calsched/calsched/pkg/event"
)

const (
	// TopicReminderFired is published once per due occurrence found by a
	// reminder pass.
	TopicReminderFired Topic = "reminder.fired"
	// TopicEventCreated is published after a new event was stored and
	// appended to the in-memory list.
	TopicEventCreated Topic = "event.created"
)

type ReminderFired struct {
	Event event.Event
	At    time.Time
}

type EventCreated struct {
	Event event.Event
}
