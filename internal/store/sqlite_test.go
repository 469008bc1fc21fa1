package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/serhangurakan/life-timer/internal/core"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	st, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestLoadAbsentUser(t *testing.T) {
	st := newTestStore(t)

	snap, err := st.Load(context.Background(), "nobody")
	require.NoError(t, err)
	require.Nil(t, snap)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	snap := core.NewSnapshot(1_700_000_000_000)
	snap.Mode = core.ModeWork
	snap.WorkElapsedSeconds = 123.5
	snap.PlayBalanceSeconds = 61.75
	snap.Quests = []core.Quest{{ID: "q1", Title: "Dishes", RewardMinutes: 10}}
	snap.Inventory = []core.InventoryItem{{ID: "i1", QuestID: "q1", Title: "Dishes", Minutes: 10, CreatedAt: 1}}

	require.NoError(t, st.Save(ctx, "alice", snap))

	got, err := st.Load(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, snap, *got)
}

func TestSaveOverwrites(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first := core.NewSnapshot(1_000)
	first.WorkElapsedSeconds = 1
	second := core.NewSnapshot(2_000)
	second.WorkElapsedSeconds = 2

	require.NoError(t, st.Save(ctx, "alice", first))
	require.NoError(t, st.Save(ctx, "alice", second))

	got, err := st.Load(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, float64(2), got.WorkElapsedSeconds)
	require.Equal(t, int64(2_000), got.LastTickTimestamp)
}

func TestDocumentsAreIsolatedPerUser(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	a := core.NewSnapshot(1_000)
	a.WorkElapsedSeconds = 10
	b := core.NewSnapshot(1_000)
	b.WorkElapsedSeconds = 20

	require.NoError(t, st.Save(ctx, "alice", a))
	require.NoError(t, st.Save(ctx, "bob", b))

	gotA, err := st.Load(ctx, "alice")
	require.NoError(t, err)
	gotB, err := st.Load(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, float64(10), gotA.WorkElapsedSeconds)
	require.Equal(t, float64(20), gotB.WorkElapsedSeconds)
}
