package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/serhangurakan/life-timer/internal/core"
)

// Client is a store.Store backed by a remote sync server. Network failures
// surface as ordinary errors; the save bridge turns them into logged retries
// so the session keeps running on local state.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) docURL(userID string) string {
	return c.baseURL + "/v1/docs/" + userID
}

func (c *Client) Load(ctx context.Context, userID string) (*core.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.docURL(userID), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sync load: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("sync load: unexpected status %s", resp.Status)
	}

	var snap core.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("sync load: decode: %w", err)
	}
	return &snap, nil
}

func (c *Client) Save(ctx context.Context, userID string, snap core.Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("sync save: encode: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.docURL(userID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("sync save: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sync save: unexpected status %s", resp.Status)
	}
	return nil
}
