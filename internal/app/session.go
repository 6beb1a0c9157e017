package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/calsched/calsched/pkg/event"
	"github.com/calsched/calsched/pkg/export"
	"github.com/calsched/calsched/pkg/view"
	log "github.com/sirupsen/logrus"
)

// composeStep tracks which field of the composition form the next input line
// fills.
type composeStep int

const (
	stepNone composeStep = iota
	stepTitle
	stepTime
	stepRepeat
)

// session is the interactive calendar loop: it renders the active view,
// reads commands, and drives navigation and event composition.
type session struct {
	deps *Dependencies
	in   io.Reader
	out  io.Writer
	step composeStep
}

func newSession(deps *Dependencies, in io.Reader, out io.Writer) *session {
	return &session{deps: deps, in: in, out: out}
}

func (s *session) run(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	s.render()
	s.prompt()
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if s.handle(ctx, strings.TrimSpace(line)) {
				return nil
			}
			s.prompt()
		}
	}
}

func (s *session) prompt() {
	if s.step == stepNone {
		fmt.Fprint(s.out, "calsched> ")
	}
}

// handle processes one input line; it returns true when the session should
// end.
func (s *session) handle(ctx context.Context, line string) bool {
	if s.step != stepNone {
		s.handleComposeLine(ctx, line)
		return false
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	command, args := fields[0], fields[1:]

	switch command {
	case "q", "quit", "exit":
		return true
	case "day", "month", "year":
		s.deps.ViewState.Switch(view.View(command))
		s.render()
	case "n", "next":
		s.deps.ViewState.Next()
		s.render()
	case "p", "prev":
		s.deps.ViewState.Prev()
		s.render()
	case "t", "today":
		active := s.deps.ViewState.Active()
		s.deps.ViewState.OpenDay(s.deps.Clock.Now())
		s.deps.ViewState.Switch(active)
		s.render()
	case "goto":
		s.handleGoto(args)
	case "open":
		s.handleOpen(args)
	case "add":
		s.beginCompose(s.deps.ViewState.Anchor(), "")
	case "click":
		s.handleClick(args)
	case "submit":
		s.finishCompose(ctx)
	case "cancel":
		s.deps.Composer.Cancel()
	case "export":
		s.handleExport(args)
	case "help":
		s.printHelp()
	default:
		fmt.Fprintf(s.out, "Unknown command %q, try 'help'.\n", command)
	}
	return false
}

func (s *session) handleGoto(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: goto yyyy-MM-dd")
		return
	}
	date, err := time.ParseInLocation(event.DateLayout, args[0], time.Local)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid date %q, expected yyyy-MM-dd.\n", args[0])
		return
	}
	s.deps.ViewState.OpenDay(date)
	s.render()
}

// handleOpen zooms in: a day cell from month view, a month from year view.
func (s *session) handleOpen(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: open <number>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid number %q.\n", args[0])
		return
	}

	anchor := s.deps.ViewState.Anchor()
	switch s.deps.ViewState.Active() {
	case view.Month:
		if n < 1 || n > daysInMonth(anchor) {
			fmt.Fprintf(s.out, "No day %d in this month.\n", n)
			return
		}
		s.deps.ViewState.OpenDay(time.Date(anchor.Year(), anchor.Month(), n, 0, 0, 0, 0, anchor.Location()))
	case view.Year:
		if n < 1 || n > 12 {
			fmt.Fprintf(s.out, "No month %d.\n", n)
			return
		}
		s.deps.ViewState.OpenMonth(time.Date(anchor.Year(), time.Month(n), 1, 0, 0, 0, 0, anchor.Location()))
	default:
		fmt.Fprintln(s.out, "Nothing to open in day view; try 'add' or 'click'.")
		return
	}
	s.render()
}

// handleClick converts a horizontal timeline position into a prefilled
// composition time.
func (s *session) handleClick(args []string) {
	if s.deps.ViewState.Active() != view.Day {
		fmt.Fprintln(s.out, "Clicking the timeline only works in day view.")
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: click <pixel-offset>")
		return
	}
	px, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid offset %q.\n", args[0])
		return
	}
	s.beginCompose(s.deps.ViewState.Anchor(), s.deps.Layout.TimeAtOffset(px))
}

func (s *session) beginCompose(date time.Time, prefillTime string) {
	if prefillTime == "" {
		s.deps.Composer.Open(date)
	} else {
		s.deps.Composer.OpenWithTime(date, prefillTime)
	}
	s.step = stepTitle
	fmt.Fprintf(s.out, "Add event for %s\n", date.Format("January 2, 2006"))
	fmt.Fprint(s.out, "Title: ")
}

func (s *session) handleComposeLine(ctx context.Context, line string) {
	switch s.step {
	case stepTitle:
		s.deps.Composer.SetTitle(line)
		s.step = stepTime
		fmt.Fprintf(s.out, "Time [%s]: ", s.deps.Composer.Draft().Time)
	case stepTime:
		if line != "" {
			s.deps.Composer.SetTime(line)
		}
		s.step = stepRepeat
		fmt.Fprintf(s.out, "Repeat (none/daily/weekly/monthly) [%s]: ", s.deps.Composer.Draft().Repeat)
	case stepRepeat:
		if line != "" {
			s.deps.Composer.SetRepeat(event.Repeat(line))
		}
		s.step = stepNone
		s.finishCompose(ctx)
	}
}

// finishCompose submits the draft. An invalid draft is dropped without a
// message; a store failure keeps the draft so 'submit' can retry it.
func (s *session) finishCompose(ctx context.Context) {
	if !s.deps.Composer.IsOpen() {
		return
	}
	hadTitle := strings.TrimSpace(s.deps.Composer.Draft().Title) != ""
	created := s.deps.Composer.Submit(ctx)
	switch {
	case created != nil:
		s.render()
	case !hadTitle || s.deps.Composer.Date() == nil:
		s.deps.Composer.Cancel()
	default:
		fmt.Fprintln(s.out, "Event was not saved; 'submit' retries, 'cancel' discards.")
	}
}

func (s *session) handleExport(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: export <path.ics>")
		return
	}
	data := export.ICS(s.deps.Events.All())
	if err := writeFile(args[0], data); err != nil {
		log.Errorf("export failed: %v", err)
		fmt.Fprintf(s.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Exported %d events to %s\n", s.deps.Events.Len(), args[0])
}

func writeFile(path, data string) error {
	return os.WriteFile(path, []byte(data), 0o644)
}

func (s *session) printHelp() {
	fmt.Fprint(s.out, `Commands:
  day | month | year      switch view
  n / p                   next / previous (step by the active view)
  t                       jump to today
  goto yyyy-MM-dd         open a date in day view
  open <n>                open day n (month view) or month n (year view)
  add                     add an event on the anchored date
  click <px>              add an event at a timeline position (day view)
  export <path.ics>       export all events as iCalendar
  q                       quit
`)
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
