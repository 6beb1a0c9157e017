package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/calsched/calsched/internal/bus"
	"github.com/calsched/calsched/internal/config"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, the event store client, the reminder
// scheduler, and the interactive calendar session.
type Application struct {
	cfg  config.Application
	deps *Dependencies
}

// NewApplication constructs the full application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	deps := BuildDependencies(cfg)

	return &Application{cfg: cfg, deps: deps}, nil
}

// Run loads the event list, starts the reminder scheduler, and blocks in the
// interactive session until the user quits or the process is signalled. The
// scheduler is always stopped on the way out.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Infof("signal received, shutting down: %s", sig)
		cancel()
	}()

	a.loadEvents(ctx)

	unsubscribe := bus.SubscribeTyped(a.deps.Bus, bus.TopicEventCreated, func(ctx context.Context, data bus.EventCreated) error {
		log.Infof("event %d %q saved for %s %s", data.Event.ID, data.Event.Title, data.Event.Date, data.Event.Time)
		return nil
	})
	defer unsubscribe()

	if err := a.deps.Scheduler.Start(); err != nil {
		return err
	}
	defer a.deps.Scheduler.Stop()

	session := newSession(a.deps, os.Stdin, os.Stdout)
	return session.run(ctx)
}

// loadEvents populates the in-memory list from the store. A failing store is
// not fatal: the session starts with an empty calendar.
func (a *Application) loadEvents(ctx context.Context) {
	events, err := a.deps.StoreClient.ListEvents(ctx)
	if err != nil {
		log.Errorf("could not load events from the store, starting empty: %v", err)
		return
	}
	a.deps.Events.Reset(events)
	log.Infof("loaded %d events from the store", len(events))
}
