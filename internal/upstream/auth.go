package upstream

import (
	"context"

	domain "shopfront-service/internal/domain/session"
)

// LoginResult is the upstream login payload: the bearer token plus the
// profile fields, flattened.
type LoginResult struct {
	Token string `json:"token"`
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Profile converts the flattened login payload into a profile record.
func (r LoginResult) Profile() domain.UserProfile {
	return domain.UserProfile{ID: r.ID, Name: r.Name, Email: r.Email, Role: r.Role}
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var result LoginResult
	req := map[string]string{"email": email, "password": password}
	if err := c.postJSON(ctx, "/users/login", "", req, &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}

// Register creates a new account. Role is omitted for the ordinary flow and
// set to "admin" by the admin-register handler.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) error {
	payload := map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
	}
	if req.Role != "" {
		payload["role"] = req.Role
	}
	return c.postJSON(ctx, "/users/register", "", payload, nil)
}

// GetUser validates the bearer token with the upstream "who am I" endpoint
// and returns the current profile.
func (c *Client) GetUser(ctx context.Context, token string) (domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := c.getJSON(ctx, "/users/getUser", token, &profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}
