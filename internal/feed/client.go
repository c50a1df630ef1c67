package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single feed fetch.
const DefaultTimeout = 10 * time.Second

// Client fetches the raw feed payload for a site slug.
type Client interface {
	Fetch(ctx context.Context, slug string) ([]byte, error)
}

// HTTPClient is the production Client. It issues a GET against the
// configured feed URI with the slug appended.
type HTTPClient struct {
	baseURI string
	client  *http.Client
}

// NewHTTPClient creates an HTTPClient for the given feed base URI.
// A zero timeout falls back to DefaultTimeout.
func NewHTTPClient(baseURI string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURI: baseURI,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the raw feed bytes for slug. Transport errors and
// non-2xx responses are returned to the caller; there is no retry here.
func (c *HTTPClient) Fetch(ctx context.Context, slug string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURI+slug, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed for %q: %w", slug, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch feed for %q: unexpected status %d", slug, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed body for %q: %w", slug, err)
	}

	return body, nil
}

// Ping reports whether the feed endpoint is reachable. Any HTTP
// response counts as reachable; only transport failures are errors.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURI, nil)
	if err != nil {
		return fmt.Errorf("build feed ping: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ping feed: %w", err)
	}
	resp.Body.Close()

	return nil
}
