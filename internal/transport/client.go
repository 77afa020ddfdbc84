// Package transport provides the HTTP client shared by the remote source
// collaborators. Requests are timeout-bounded and never retried; retry
// policy belongs to whatever schedules runs, not to a run itself.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/figtrack/figtrack/pkg/constants"
	"github.com/figtrack/figtrack/pkg/errors"
)

// DefaultTimeout bounds every request made through the client.
const DefaultTimeout = constants.DefaultHTTPTimeout

const userAgent = "figtrack/1.0"

// Client is a thin wrapper over http.Client with the house defaults.
type Client struct {
	http *http.Client
}

// New creates a client with the given timeout; zero means DefaultTimeout.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{http: &http.Client{Timeout: timeout}}
}

// Get performs a GET request and returns the response body. Any transport
// failure or non-2xx status is an error; callers wrap it with their
// stage-appropriate error type.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("get %s: unexpected status %d: %w", url, resp.StatusCode, errors.ErrSourceUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", url, err)
	}
	return body, nil
}
