package cliclient

import "context"

// Login authenticates with the server and returns a token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	var resp LoginResponse
	_, err := c.Post(ctx, "/auth/login", req, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// Me returns the authenticated user's profile and roles.
func (c *Client) Me(ctx context.Context) (*Me, error) {
	var me Me
	_, err := c.Get(ctx, "/auth/me", &me)
	if err != nil {
		return nil, err
	}
	return &me, nil
}

// Logout ends the session with the auth provider.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.Post(ctx, "/auth/logout", nil, nil)
	return err
}
