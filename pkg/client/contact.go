package client

import "context"

// SubmitContact sends a contact form message. Public, no session needed.
func (c *Client) SubmitContact(ctx context.Context, in ContactSubmission) error {
	return c.postJSON(ctx, "/api/contact", in, nil)
}

// ListContactMessages returns the inbox, newest first. Requires an admin
// session.
func (c *Client) ListContactMessages(ctx context.Context) ([]ContactMessage, error) {
	var out []ContactMessage
	err := c.getJSON(ctx, "/api/contact", &out)
	return out, err
}

// UpdateContactStatus marks a message "new" or "read". Requires an admin
// session.
func (c *Client) UpdateContactStatus(ctx context.Context, id, status string) (ContactMessage, error) {
	var out ContactMessage
	err := c.putJSON(ctx, "/api/contact/"+id+"/status", struct {
		Status string `json:"status"`
	}{Status: status}, &out)
	return out, err
}

// DeleteContactMessage removes a message. Requires an admin session.
func (c *Client) DeleteContactMessage(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, "/api/contact/"+id, nil)
}

// DashboardStats returns the admin overview counters. Requires an admin
// session.
func (c *Client) DashboardStats(ctx context.Context) (DashboardCounts, error) {
	var out DashboardCounts
	err := c.getJSON(ctx, "/api/admin/stats", &out)
	return out, err
}

// HealthCheck reports server and database health.
func (c *Client) HealthCheck(ctx context.Context) (Health, error) {
	var out Health
	err := c.getJSON(ctx, "/api/health", &out)
	return out, err
}
