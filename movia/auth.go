package movia

import (
	"context"
	"fmt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with email and password. On success the returned
// token is persisted through the TokenStore before the User is
// returned, so a success result always implies an established session.
// Inputs are forwarded verbatim; validation belongs to the caller.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	var resp authResponse
	if err := c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return User{}, err
	}
	if err := c.tokens.SaveToken(resp.Token); err != nil {
		return User{}, fmt.Errorf("failed to persist session token: %w", err)
	}
	c.logger.Debug().Str("user_id", resp.User.ID).Msg("Logged in")
	return resp.User, nil
}

// Register creates a new account. Session semantics match Login: the
// token is persisted before the User is returned, and no partial token
// is ever stored on failure.
func (c *Client) Register(ctx context.Context, name, surname, email, password string) (User, error) {
	body := registerRequest{Name: name, Surname: surname, Email: email, Password: password}
	var resp authResponse
	if err := c.post(ctx, "/auth/register", body, &resp); err != nil {
		return User{}, err
	}
	if err := c.tokens.SaveToken(resp.Token); err != nil {
		return User{}, fmt.Errorf("failed to persist session token: %w", err)
	}
	c.logger.Debug().Str("user_id", resp.User.ID).Msg("Registered new account")
	return resp.User, nil
}
