package store

import (
	"context"

	"github.com/serhangurakan/life-timer/internal/core"
)

// Store persists one snapshot document per user, last write wins. Load
// returns (nil, nil) when no document exists for the user yet.
type Store interface {
	Load(ctx context.Context, userID string) (*core.Snapshot, error)
	Save(ctx context.Context, userID string, snap core.Snapshot) error
}
