package client

import (
	"context"
	"net/http"
	"strconv"
)

// ListPlayers returns the squad ordered by jersey number.
func (c *Client) ListPlayers(ctx context.Context) ([]Player, error) {
	var out []Player
	err := c.getJSON(ctx, "/api/players", &out)
	return out, err
}

// GetPlayer returns a single player by id.
func (c *Client) GetPlayer(ctx context.Context, id string) (Player, error) {
	var out Player
	err := c.getJSON(ctx, "/api/players/"+id, &out)
	return out, err
}

// CreatePlayer creates a player. Requires an admin session. A non-nil photo
// is sent as multipart form data.
func (c *Client) CreatePlayer(ctx context.Context, in PlayerInput, photo *Upload) (Player, error) {
	var out Player
	if photo == nil {
		err := c.postJSON(ctx, "/api/players", in, &out)
		return out, err
	}
	err := c.multipartRequest(ctx, http.MethodPost, "/api/players", playerFields(in), photo, &out)
	return out, err
}

// UpdatePlayer applies the non-nil fields of in. Requires an admin session.
func (c *Client) UpdatePlayer(ctx context.Context, id string, in PlayerInput, photo *Upload) (Player, error) {
	var out Player
	if photo == nil {
		err := c.putJSON(ctx, "/api/players/"+id, in, &out)
		return out, err
	}
	err := c.multipartRequest(ctx, http.MethodPut, "/api/players/"+id, playerFields(in), photo, &out)
	return out, err
}

// DeletePlayer removes a player. Requires an admin session.
func (c *Client) DeletePlayer(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, "/api/players/"+id, nil)
}

func playerFields(in PlayerInput) map[string]string {
	fields := map[string]string{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Position != nil {
		fields["position"] = *in.Position
	}
	if in.JerseyNumber != nil {
		fields["jerseyNumber"] = strconv.Itoa(*in.JerseyNumber)
	}
	if in.Age != nil {
		fields["age"] = strconv.Itoa(*in.Age)
	}
	if in.Height != nil {
		fields["height"] = *in.Height
	}
	if in.Weight != nil {
		fields["weight"] = *in.Weight
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	return fields
}
