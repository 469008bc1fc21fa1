package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/serhangurakan/life-timer/internal/session"
)

// RunWatch opens the live timer view. The view's once-per-second tick is the
// foreground cadence; the session reconciles by wall-clock delta, so a
// suspended terminal catches up the whole gap on the first tick after resume.
func RunWatch(ctx context.Context, sess *session.Session, interval time.Duration, out io.Writer) error {
	if interval <= 0 {
		interval = session.DefaultTickInterval
	}
	sess.Resume(ctx)

	m := newWatchModel(sess, interval)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
