package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/calsched/calsched/internal/bus"
	"github.com/calsched/calsched/internal/utils"
	"github.com/calsched/calsched/pkg/event"
	"github.com/stretchr/testify/assert"
)

type recordingNotifier struct {
	notifications []Notification
}

func (r *recordingNotifier) Notify(ctx context.Context, n Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}

func eventsSnapshot(events ...event.Event) func() []event.Event {
	return func() []event.Event { return events }
}

func TestSchedulerPass(t *testing.T) {
	t.Run("Due events are notified with title and time", func(t *testing.T) {
		clock := &utils.MockClock{FixedNow: time.Date(2024, time.March, 15, 9, 0, 30, 0, time.Local)}
		notifier := &recordingNotifier{}
		events := eventsSnapshot(
			event.Event{ID: 1, Title: "Dentist", Date: "2024-03-15", Time: "09:00"},
			event.Event{ID: 2, Title: "Later", Date: "2024-03-15", Time: "09:01"},
			event.Event{ID: 3, Title: "Other day", Date: "2024-03-16", Time: "09:00"},
		)
		s := NewScheduler(events, notifier, clock, DefaultInterval, bus.New())

		s.RunPass(context.Background())

		assert.Len(t, notifier.notifications, 1)
		assert.Equal(t, "Reminder: Dentist", notifier.notifications[0].Title)
		assert.Equal(t, "Scheduled for 09:00", notifier.notifications[0].Body)
	})

	t.Run("Repeating events fire on matching occurrences", func(t *testing.T) {
		clock := &utils.MockClock{FixedNow: time.Date(2024, time.June, 20, 8, 30, 0, 0, time.Local)}
		notifier := &recordingNotifier{}
		events := eventsSnapshot(
			event.Event{ID: 1, Title: "Standup", Date: "2024-01-01", Time: "08:30", Repeat: event.RepeatDaily},
		)
		s := NewScheduler(events, notifier, clock, DefaultInterval, bus.New())

		s.RunPass(context.Background())
		assert.Len(t, notifier.notifications, 1)

		clock.SetNow(time.Date(2024, time.June, 20, 8, 31, 0, 0, time.Local))
		s.RunPass(context.Background())
		assert.Len(t, notifier.notifications, 1, "no match outside the scheduled minute")
	})

	t.Run("Each match is published on the bus", func(t *testing.T) {
		clock := &utils.MockClock{FixedNow: time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local)}
		b := bus.New()
		var fired []bus.ReminderFired
		bus.SubscribeTyped(b, bus.TopicReminderFired, func(ctx context.Context, data bus.ReminderFired) error {
			fired = append(fired, data)
			return nil
		})
		events := eventsSnapshot(
			event.Event{ID: 1, Title: "A", Date: "2024-03-15", Time: "09:00"},
			event.Event{ID: 2, Title: "B", Date: "2024-03-15", Time: "09:00"},
		)
		s := NewScheduler(events, &recordingNotifier{}, clock, DefaultInterval, b)

		s.RunPass(context.Background())
		assert.Len(t, fired, 2)
		assert.Equal(t, clock.FixedNow, fired[0].At)
	})

	t.Run("Empty list produces no notifications", func(t *testing.T) {
		clock := &utils.MockClock{FixedNow: time.Now()}
		notifier := &recordingNotifier{}
		s := NewScheduler(eventsSnapshot(), notifier, clock, DefaultInterval, bus.New())

		s.RunPass(context.Background())
		assert.Empty(t, notifier.notifications)
	})
}

func TestSchedulerLifecycle(t *testing.T) {
	t.Run("Start runs an immediate pass and Stop cancels the interval", func(t *testing.T) {
		clock := &utils.MockClock{FixedNow: time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local)}
		notifier := &recordingNotifier{}
		events := eventsSnapshot(event.Event{ID: 1, Title: "Dentist", Date: "2024-03-15", Time: "09:00"})
		s := NewScheduler(events, notifier, clock, time.Hour, bus.New())

		assert.NoError(t, s.Start())
		assert.Len(t, notifier.notifications, 1, "first pass fires immediately")
		s.Stop()
		// Stopping twice is safe.
		s.Stop()
	})

	t.Run("Starting twice is an error", func(t *testing.T) {
		s := NewScheduler(eventsSnapshot(), &recordingNotifier{}, &utils.MockClock{FixedNow: time.Now()}, time.Hour, bus.New())
		assert.NoError(t, s.Start())
		defer s.Stop()
		assert.Error(t, s.Start())
	})

	t.Run("Non-positive interval falls back to the default", func(t *testing.T) {
		s := NewScheduler(eventsSnapshot(), &recordingNotifier{}, &utils.MockClock{FixedNow: time.Now()}, 0, nil)
		assert.Equal(t, DefaultInterval, s.interval)
	})
}
