package reminder

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// Notification is one surfaced reminder.
type Notification struct {
	Title string
	Body  string
}

// Notifier surfaces a notification to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// DesktopNotifier delivers notifications through the desktop notification
// daemon via notify-send.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(ctx context.Context, n Notification) error {
	cmd := exec.CommandContext(ctx, "notify-send", n.Title, n.Body)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("notify-send failed: %w", err)
	}
	return nil
}

// TerminalNotifier is the fallback when no desktop notification capability
// is available: it rings the bell and prints the reminder to the session.
type TerminalNotifier struct {
	out io.Writer
}

func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalNotifier{out: out}
}

func (t *TerminalNotifier) Notify(ctx context.Context, n Notification) error {
	_, err := fmt.Fprintf(t.out, "\a*** %s (%s) ***\n", n.Title, n.Body)
	return err
}

// Detect probes the notification capability once, at startup. The choice is
// cached for the session: capability does not change while running.
func Detect(fallback io.Writer) Notifier {
	if _, err := exec.LookPath("notify-send"); err == nil {
		log.Debug("desktop notifications available")
		return DesktopNotifier{}
	}
	log.Info("desktop notifications unavailable, reminders will print to the terminal")
	return NewTerminalNotifier(fallback)
}
