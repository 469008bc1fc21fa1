package sync

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/serhangurakan/life-timer/internal/core"
)

// memStore is an in-memory store.Store for handler tests.
type memStore struct {
	mu   sync.Mutex
	docs map[string]core.Snapshot
}

func newMemStore() *memStore {
	return &memStore{docs: map[string]core.Snapshot{}}
}

func (m *memStore) Load(_ context.Context, userID string) (*core.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.docs[userID]
	if !ok {
		return nil, nil
	}
	out := snap.Clone()
	return &out, nil
}

func (m *memStore) Save(_ context.Context, userID string, snap core.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[userID] = snap.Clone()
	return nil
}

func newTestServer(t *testing.T) (*memStore, *Client) {
	t.Helper()
	st := newMemStore()
	srv := httptest.NewServer(NewHandler(st, nil))
	t.Cleanup(srv.Close)
	return st, NewClient(srv.URL)
}

func TestClientLoadAbsent(t *testing.T) {
	_, client := newTestServer(t)

	snap, err := client.Load(context.Background(), "nobody")
	require.NoError(t, err)
	require.Nil(t, snap)
}

func TestClientRoundtrip(t *testing.T) {
	_, client := newTestServer(t)
	ctx := context.Background()

	snap := core.NewSnapshot(1_700_000_000_000)
	snap.Mode = core.ModeWork
	snap.WorkElapsedSeconds = 90.5
	snap.PlayBalanceSeconds = 45.25
	snap.Quests = []core.Quest{{ID: "q1", Title: "Dishes", RewardMinutes: 10}}

	require.NoError(t, client.Save(ctx, "alice", snap))

	got, err := client.Load(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, snap, *got)
}

func TestServerDiscardsStaleWrite(t *testing.T) {
	st, client := newTestServer(t)
	ctx := context.Background()

	newer := core.NewSnapshot(2_000_000)
	newer.WorkElapsedSeconds = 100
	require.NoError(t, client.Save(ctx, "alice", newer))

	stale := core.NewSnapshot(1_000_000)
	stale.WorkElapsedSeconds = 1
	// Acknowledged without error, but not stored.
	require.NoError(t, client.Save(ctx, "alice", stale))

	got, err := st.Load(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, float64(100), got.WorkElapsedSeconds)
	require.Equal(t, int64(2_000_000), got.LastTickTimestamp)
}

func TestServerAcceptsEqualTimestampWrite(t *testing.T) {
	st, client := newTestServer(t)
	ctx := context.Background()

	first := core.NewSnapshot(1_000_000)
	first.WorkElapsedSeconds = 1
	require.NoError(t, client.Save(ctx, "alice", first))

	second := core.NewSnapshot(1_000_000)
	second.WorkElapsedSeconds = 2
	require.NoError(t, client.Save(ctx, "alice", second))

	got, err := st.Load(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, float64(2), got.WorkElapsedSeconds, "equal timestamps: last writer wins")
}

func TestServerRejectsBadDocument(t *testing.T) {
	st := newMemStore()
	srv := httptest.NewServer(NewHandler(st, nil))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/v1/docs/alice",
		bytes.NewReader([]byte(`{"mode":"NAP","lastTickTimestamp":1}`)))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
