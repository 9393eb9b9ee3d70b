package client

import (
	"context"
	"net/url"
)

// ListMatches returns all fixtures ordered by date.
func (c *Client) ListMatches(ctx context.Context) ([]Match, error) {
	var out []Match
	err := c.getJSON(ctx, "/api/matches", &out)
	return out, err
}

// UpcomingMatches returns upcoming fixtures dated after now.
func (c *Client) UpcomingMatches(ctx context.Context) ([]Match, error) {
	var out []Match
	err := c.getJSON(ctx, "/api/matches/upcoming", &out)
	return out, err
}

// MatchResults returns completed matches with derived club-side results.
// outcome optionally filters by "win", "draw", or "loss"; empty means all.
func (c *Client) MatchResults(ctx context.Context, outcome string) ([]ResultRow, error) {
	path := "/api/matches/results"
	if outcome != "" {
		path += "?outcome=" + url.QueryEscape(outcome)
	}
	var out []ResultRow
	err := c.getJSON(ctx, path, &out)
	return out, err
}

// SeasonStats returns aggregate win/draw/loss and goal totals.
func (c *Client) SeasonStats(ctx context.Context) (SeasonStats, error) {
	var out SeasonStats
	err := c.getJSON(ctx, "/api/matches/stats", &out)
	return out, err
}

// GetMatch returns a single match by id.
func (c *Client) GetMatch(ctx context.Context, id string) (Match, error) {
	var out Match
	err := c.getJSON(ctx, "/api/matches/"+id, &out)
	return out, err
}

// CreateMatch creates a fixture. Requires an admin session.
func (c *Client) CreateMatch(ctx context.Context, in MatchInput) (Match, error) {
	var out Match
	err := c.postJSON(ctx, "/api/matches", in, &out)
	return out, err
}

// UpdateMatch applies the non-nil fields of in. Requires an admin session.
func (c *Client) UpdateMatch(ctx context.Context, id string, in MatchInput) (Match, error) {
	var out Match
	err := c.putJSON(ctx, "/api/matches/"+id, in, &out)
	return out, err
}

// DeleteMatch removes a fixture. Requires an admin session.
func (c *Client) DeleteMatch(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, "/api/matches/"+id, nil)
}
