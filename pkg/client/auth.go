package client

import "context"

type credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. New accounts always get the user role.
func (c *Client) Register(ctx context.Context, name, email, password string) (User, error) {
	var u User
	err := c.postJSON(ctx, "/api/auth/register", credentials{Name: name, Email: email, Password: password}, &u)
	return u, err
}

// Login verifies credentials and stores the session cookie in the client's
// jar for subsequent admin calls.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	var u User
	err := c.postJSON(ctx, "/api/auth/login", credentials{Email: email, Password: password}, &u)
	return u, err
}

// Logout destroys the current session.
func (c *Client) Logout(ctx context.Context) error {
	return c.postJSON(ctx, "/api/auth/logout", struct{}{}, nil)
}

// Profile returns the account behind the current session.
func (c *Client) Profile(ctx context.Context) (User, error) {
	var u User
	err := c.getJSON(ctx, "/api/auth/profile", &u)
	return u, err
}
