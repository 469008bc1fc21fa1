package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/serhangurakan/life-timer/internal/core"
)

const (
	saveTimeout   = 5 * time.Second
	retryInterval = 10 * time.Second
)

// Bridge mirrors snapshots to a Store without ever blocking the caller. Only
// the latest snapshot matters, so pending saves coalesce: a new Queue
// supersedes anything not yet written. Failed writes are logged and retried
// on a timer until superseded; no mutation waits on persistence.
type Bridge struct {
	store  Store
	userID string
	logger *slog.Logger

	mu      sync.Mutex
	pending *core.Snapshot

	kick   chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
}

// NewBridge starts the background writer for the given user's document.
func NewBridge(st Store, userID string, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	b := &Bridge{
		store:  st,
		userID: userID,
		logger: logger.With("component", "bridge", "user", userID),
		kick:   make(chan struct{}, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go b.run(ctx)
	return b
}

// Queue hands a snapshot to the writer and returns immediately.
func (b *Bridge) Queue(snap core.Snapshot) {
	b.mu.Lock()
	b.pending = &snap
	b.mu.Unlock()

	select {
	case b.kick <- struct{}{}:
	default:
	}
}

// Latest fetches the stored document, nil if absent.
func (b *Bridge) Latest(ctx context.Context) (*core.Snapshot, error) {
	return b.store.Load(ctx, b.userID)
}

// Close stops the writer after a best-effort final flush.
func (b *Bridge) Close() {
	b.cancel()
	<-b.done
}

func (b *Bridge) run(ctx context.Context) {
	defer close(b.done)

	retry := time.NewTicker(retryInterval)
	defer retry.Stop()

	for {
		select {
		case <-ctx.Done():
			b.flush(context.Background())
			return
		case <-b.kick:
			b.flush(ctx)
		case <-retry.C:
			b.flush(ctx)
		}
	}
}

// flush writes the pending snapshot if there is one. On failure the snapshot
// is put back as pending unless a newer one arrived in the meantime.
func (b *Bridge) flush(ctx context.Context) {
	b.mu.Lock()
	snap := b.pending
	b.pending = nil
	b.mu.Unlock()
	if snap == nil {
		return
	}

	saveCtx, cancel := context.WithTimeout(ctx, saveTimeout)
	err := b.store.Save(saveCtx, b.userID, *snap)
	cancel()
	if err == nil {
		return
	}
	b.logger.Warn("snapshot save failed, will retry", "err", err)

	b.mu.Lock()
	if b.pending == nil {
		b.pending = snap
	}
	b.mu.Unlock()
}
