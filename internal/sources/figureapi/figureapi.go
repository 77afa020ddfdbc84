// Package figureapi fetches the authoritative figure database used to
// backfill placeholder entries. The API serves the full list in one
// document; there is no pagination or incremental endpoint.
package figureapi

import (
	"context"
	"encoding/json"

	"github.com/figtrack/figtrack/internal/transport"
	"github.com/figtrack/figtrack/pkg/catalogs"
	"github.com/figtrack/figtrack/pkg/errors"
	"github.com/figtrack/figtrack/pkg/logging"
)

// Client fetches entries from the authoritative figure API.
type Client struct {
	url    string
	client *transport.Client
}

// New creates a client for the given API endpoint.
func New(apiURL string, client *transport.Client) *Client {
	return &Client{url: apiURL, client: client}
}

type apiResponse struct {
	Figures []*catalogs.Entry `json:"figures"`
}

// FetchAll retrieves the complete authoritative figure list. Failures are
// BackfillErrors: the caller degrades to a partial run instead of
// aborting.
func (c *Client) FetchAll(ctx context.Context) ([]*catalogs.Entry, error) {
	body, err := c.client.Get(ctx, c.url)
	if err != nil {
		return nil, errors.NewBackfillError("figureapi", "fetch failed", err)
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.NewBackfillError("figureapi", "response did not parse as JSON", err)
	}

	logging.Ctx(ctx).Info().
		Str("url", c.url).
		Int("figures", len(resp.Figures)).
		Msg("Fetched authoritative figure list")
	return resp.Figures, nil
}
