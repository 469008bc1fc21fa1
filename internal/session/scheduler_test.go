package session

import (
	"context"
	"testing"
	"time"

	"github.com/serhangurakan/life-timer/internal/core"
)

func TestSchedulerCatchesUpGapOnResume(t *testing.T) {
	// Snapshot last reconciled 10s in the past, as if the process had been
	// suspended. The first reconciliation must absorb the whole gap at once.
	snap := core.NewSnapshot(time.Now().UnixMilli() - 10_000)
	snap.Mode = core.ModeWork
	sess := New(snap, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewScheduler(sess, 5*time.Millisecond).Run(ctx)
	}()

	deadline := time.After(2 * time.Second)
	for {
		if got := sess.View(); got.WorkElapsedSeconds >= 10 {
			break
		}
		select {
		case <-deadline:
			cancel()
			<-done
			t.Fatalf("gap not caught up: %+v", sess.View())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	<-done
}

func TestSchedulerStopsOnCancel(t *testing.T) {
	sess := New(core.NewSnapshot(time.Now().UnixMilli()), Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		NewScheduler(sess, time.Millisecond).Run(ctx)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("scheduler did not stop on cancel")
	}
}
