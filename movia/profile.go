package movia

import "context"

type updateProfileRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

// Profile retrieves the authenticated user's profile from /auth/me.
func (c *Client) Profile(ctx context.Context) (Profile, error) {
	var profile Profile
	if err := c.get(ctx, "/auth/me", &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// UpdateProfile changes the three editable profile fields. The server
// may normalize inputs, so callers must adopt the returned User rather
// than assume the request body became the new state.
func (c *Client) UpdateProfile(ctx context.Context, name, surname, email string) (User, error) {
	body := updateProfileRequest{Name: name, Surname: surname, Email: email}
	var resp updateProfileResponse
	if err := c.put(ctx, "/users/profile", body, &resp); err != nil {
		return User{}, err
	}
	c.logger.Debug().Str("user_id", resp.User.ID).Msg("Updated profile")
	return resp.User, nil
}
