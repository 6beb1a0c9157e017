package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/calsched/calsched/internal/bus"
	"github.com/calsched/calsched/internal/utils"
	"github.com/calsched/calsched/pkg/event"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// DefaultInterval matches the once-per-minute granularity of the due check.
const DefaultInterval = 60 * time.Second

// Scheduler evaluates the current event set against wall-clock time once
// immediately on Start and then once per fixed interval until Stop. Each due
// occurrence is surfaced through the notifier and published on the bus.
type Scheduler struct {
	events   func() []event.Event
	notifier Notifier
	clock    utils.Clock
	interval time.Duration
	bus      *bus.Bus
	cron     *cron.Cron
}

// NewScheduler builds a scheduler over a snapshot function of the in-memory
// event list. A non-positive interval falls back to DefaultInterval.
func NewScheduler(events func() []event.Event, notifier Notifier, clock utils.Clock, interval time.Duration, b *bus.Bus) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		events:   events,
		notifier: notifier,
		clock:    clock,
		interval: interval,
		bus:      b,
	}
}

// Start runs one evaluation pass immediately, then schedules one per
// interval.
func (s *Scheduler) Start() error {
	if s.cron != nil {
		return fmt.Errorf("reminder scheduler already started")
	}

	s.RunPass(context.Background())

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", s.interval), func() {
		s.RunPass(context.Background())
	}); err != nil {
		return fmt.Errorf("failed to schedule reminder pass: %w", err)
	}
	c.Start()
	s.cron = c
	log.Infof("reminder scheduler started, checking every %s", s.interval)
	return nil
}

// Stop cancels the interval. A pass already running finishes; no further
// passes fire.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.cron = nil
	log.Info("reminder scheduler stopped")
}

// RunPass evaluates every event in the current list against the clock's
// "now" and notifies each match.
func (s *Scheduler) RunPass(ctx context.Context) {
	now := s.clock.Now()
	for _, e := range s.events() {
		if !event.IsDue(e, now) {
			continue
		}
		notification := Notification{
			Title: fmt.Sprintf("Reminder: %s", e.Title),
			Body:  fmt.Sprintf("Scheduled for %s", e.Time),
		}
		if err := s.notifier.Notify(ctx, notification); err != nil {
			log.Errorf("failed to deliver reminder for event %d: %v", e.ID, err)
		}
		if s.bus != nil {
			if err := s.bus.Publish(bus.NewEvent(ctx, bus.TopicReminderFired, bus.ReminderFired{Event: e, At: now})); err != nil {
				log.Debugf("reminder publish failed: %v", err)
			}
		}
	}
}
