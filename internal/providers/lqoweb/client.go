package lqoweb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/notune/lqo-leaderboard/internal/domain"
	"github.com/notune/lqo-leaderboard/internal/providers"
)

// ErrMissingURL is returned when the client is constructed without a
// leaderboard endpoint.
var ErrMissingURL = errors.New("lqoweb: leaderboard URL is required")

// Config controls how the client reaches the published leaderboard document.
type Config struct {
	// URL is the full address of leaderboard.json.
	URL string
	// HTTPClient overrides the default client; Timeout is ignored then.
	HTTPClient *http.Client
	// Timeout bounds a single fetch, connection to last body byte.
	Timeout time.Duration
}

// Client fetches leaderboard snapshots over HTTP. Each request carries a
// fresh cache-busting query so stale intermediary copies are never served.
type Client struct {
	url        string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a client for the configured endpoint.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, ErrMissingURL
	}
	return &Client{
		url:        cfg.URL,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}, nil
}

// FetchSnapshot retrieves and decodes the current leaderboard document.
func (c *Client) FetchSnapshot(ctx context.Context) (domain.Snapshot, error) {
	req, err := c.buildRequest(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("lqoweb: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return domain.Snapshot{}, &providers.StatusError{
			Provider:   Name,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var snap domain.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("lqoweb: decode snapshot: %w", err)
	}
	return snap, nil
}

func (c *Client) buildRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("lqoweb: build request: %w", err)
	}

	q := req.URL.Query()
	q.Set(cacheBusterParam, strconv.FormatInt(c.now().UnixMilli(), 10))
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	return req, nil
}
