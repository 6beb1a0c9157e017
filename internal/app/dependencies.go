package app

import (
	"os"
	"time"

	"github.com/calsched/calsched/internal/bus"
	"github.com/calsched/calsched/internal/config"
	"github.com/calsched/calsched/internal/utils"
	"github.com/calsched/calsched/pkg/compose"
	"github.com/calsched/calsched/pkg/event"
	"github.com/calsched/calsched/pkg/reminder"
	"github.com/calsched/calsched/pkg/store"
	"github.com/calsched/calsched/pkg/timeline"
	"github.com/calsched/calsched/pkg/view"
)

// Dependencies holds all services of the application.
type Dependencies struct {
	Clock utils.Clock
	Bus   *bus.Bus

	StoreClient store.Client
	Events      *event.List

	ViewState *view.State
	Layout    timeline.Layout

	Notifier  reminder.Notifier
	Scheduler *reminder.Scheduler

	Composer *compose.Composer
}

// BuildDependencies initializes and wires all application services.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}
	deps.Bus = bus.New()

	deps.StoreClient = store.NewClient(cfg.Store.BaseURL)
	deps.Events = event.NewList()

	deps.ViewState = view.NewState(deps.Clock.Now())
	deps.ViewState.Switch(view.View(cfg.View.Default))
	deps.Layout = timeline.NewLayout(cfg.Timeline.HourWidth)

	deps.Notifier = selectNotifier(cfg.Reminder.Notifier)
	deps.Scheduler = reminder.NewScheduler(
		deps.Events.All,
		deps.Notifier,
		deps.Clock,
		time.Duration(cfg.Reminder.IntervalSeconds)*time.Second,
		deps.Bus,
	)

	deps.Composer = compose.NewComposer(deps.StoreClient, deps.Events, deps.Bus)

	return deps
}

// selectNotifier resolves the notification capability once; the choice holds
// for the whole session.
func selectNotifier(mode string) reminder.Notifier {
	switch mode {
	case "desktop":
		return reminder.DesktopNotifier{}
	case "terminal":
		return reminder.NewTerminalNotifier(os.Stdout)
	default:
		return reminder.Detect(os.Stdout)
	}
}
