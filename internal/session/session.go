// Package session owns the live snapshot for one user. Every mutation,
// scheduler ticks included, runs to completion under one lock, so the tick
// cadence and user commands never interleave mid-update.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/serhangurakan/life-timer/internal/core"
)

// Mirror asynchronously persists snapshots and serves the latest remote copy
// on resume. A nil Mirror means "no identity": operate on the in-memory
// snapshot and persist nothing.
type Mirror interface {
	// Queue hands a snapshot to the persistence layer without blocking.
	Queue(snap core.Snapshot)
	// Latest fetches the most recently persisted snapshot, nil if absent.
	Latest(ctx context.Context) (*core.Snapshot, error)
}

type Config struct {
	Notifier Notifier
	Mirror   Mirror
	Logger   *slog.Logger
	// Now returns the current wall clock in epoch milliseconds. Tests
	// inject a fake; the default is time.Now.
	Now func() int64
}

type Session struct {
	notifier Notifier
	mirror   Mirror
	logger   *slog.Logger
	now      func() int64

	mu   sync.Mutex
	snap core.Snapshot
}

func New(snap core.Snapshot, cfg Config) *Session {
	if cfg.Notifier == nil {
		cfg.Notifier = nopNotifier{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = func() int64 { return time.Now().UnixMilli() }
	}
	return &Session{
		notifier: cfg.Notifier,
		mirror:   cfg.Mirror,
		logger:   cfg.Logger.With("component", "session"),
		now:      cfg.Now,
		snap:     snap,
	}
}

// mutate reconciles the snapshot up to now, then applies op on top of the
// reconciled state. The reconciliation sticks even when op rejects, so a
// failed mode switch still advances the clock correctly. The ended signal
// and the persistence hand-off happen outside the lock.
func (s *Session) mutate(op func(snap core.Snapshot, nowMillis int64) (core.Snapshot, error)) error {
	nowMillis := s.now()

	s.mu.Lock()
	snap, ended := core.Reconcile(s.snap, nowMillis)
	var err error
	if op != nil {
		if next, opErr := op(snap, nowMillis); opErr != nil {
			err = opErr
		} else {
			snap = next
		}
	}
	s.snap = snap
	out := snap.Clone()
	s.mu.Unlock()

	if ended {
		s.notifier.PlayEnded()
	}
	if s.mirror != nil {
		s.mirror.Queue(out)
	}
	return err
}

// Tick reconciles the snapshot against the wall clock. Safe to call at any
// cadence: the delta is computed from timestamps, not from call counts.
func (s *Session) Tick() {
	_ = s.mutate(nil)
}

// RequestMode switches modes after reconciling time attributed to the old
// mode. Entering PLAY on an empty balance returns core.ErrNoPlayBalance.
func (s *Session) RequestMode(target core.Mode) error {
	return s.mutate(func(snap core.Snapshot, nowMillis int64) (core.Snapshot, error) {
		return core.RequestMode(snap, target, nowMillis)
	})
}

// ApplyPenalty deducts the fixed work/play penalty.
func (s *Session) ApplyPenalty() {
	_ = s.mutate(func(snap core.Snapshot, _ int64) (core.Snapshot, error) {
		return core.ApplyPenalty(snap), nil
	})
}

func (s *Session) AddQuest(title string, rewardMinutes int) (core.Quest, error) {
	var quest core.Quest
	err := s.mutate(func(snap core.Snapshot, _ int64) (core.Snapshot, error) {
		next, q, err := core.AddQuest(snap, title, rewardMinutes)
		quest = q
		return next, err
	})
	return quest, err
}

func (s *Session) DeleteQuest(id string) {
	_ = s.mutate(func(snap core.Snapshot, _ int64) (core.Snapshot, error) {
		return core.DeleteQuest(snap, id), nil
	})
}

func (s *Session) ClaimQuest(questID string) (core.InventoryItem, error) {
	var item core.InventoryItem
	err := s.mutate(func(snap core.Snapshot, nowMillis int64) (core.Snapshot, error) {
		next, it, err := core.ClaimQuest(snap, questID, nowMillis)
		item = it
		return next, err
	})
	return item, err
}

// Redeem cashes in the selected inventory items and reports the credited
// minutes. Unknown ids are ignored.
func (s *Session) Redeem(ids []string) int {
	minutes := 0
	_ = s.mutate(func(snap core.Snapshot, _ int64) (core.Snapshot, error) {
		next, m := core.Redeem(snap, ids)
		minutes = m
		return next, nil
	})
	return minutes
}

// View returns a copy of the current snapshot without reconciling. Callers
// that want up-to-the-second numbers should Tick first.
func (s *Session) View() core.Snapshot {
	s.mu.Lock()
	out := s.snap.Clone()
	s.mu.Unlock()
	return out
}

// Resume adopts the remote snapshot when it is newer than the local one
// (latest-timestamp-wins across devices), then reconciles the gap in one
// step. Fetch failures degrade to local-only operation.
func (s *Session) Resume(ctx context.Context) {
	if s.mirror != nil {
		remote, err := s.mirror.Latest(ctx)
		switch {
		case err != nil:
			s.logger.Warn("resume: remote fetch failed, staying local", "err", err)
		case remote != nil:
			s.mu.Lock()
			if remote.LastTickTimestamp > s.snap.LastTickTimestamp {
				s.snap = remote.Clone()
			}
			s.mu.Unlock()
		}
	}
	s.Tick()
}
