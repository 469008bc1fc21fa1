package session

import (
	"context"
	"time"
)

// DefaultTickInterval is the steady foreground cadence.
const DefaultTickInterval = time.Second

// Scheduler drives the session's reconciliation once per interval while the
// process is in the foreground. It never replays missed ticks: a suspended or
// delayed ticker is caught up in a single reconciliation because the delta is
// taken from wall-clock timestamps.
type Scheduler struct {
	sess     *Session
	interval time.Duration
}

func NewScheduler(sess *Session, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Scheduler{sess: sess, interval: interval}
}

// Run ticks until the context is cancelled. It resumes first, so a process
// coming back from the background reconciles the whole gap (and adopts a
// newer remote snapshot) before steady ticking begins.
func (s *Scheduler) Run(ctx context.Context) {
	s.sess.Resume(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sess.Tick()
		}
	}
}
