package api

import (
	"context"
	"net/url"

	"github.com/careops/shiftctl/internal/rbac"
)

// User is a staff member's profile as the backend reports it.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         rbac.Role `json:"role"`
	DepartmentID *int      `json:"department_id,omitempty"`
	IsActive     *bool     `json:"is_active,omitempty"`
}

// LoginResponse is the raw login payload. The backend has shipped two
// shapes over time: the profile nested under "user", and profile
// fields flattened into the top level next to the token. Both are
// captured here; Profile() picks whichever is present.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`

	// Flattened profile fields.
	UserID       int       `json:"user_id"`
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         rbac.Role `json:"role"`
	DepartmentID *int      `json:"department_id"`
}

// Profile normalizes the response into a User, or nil when the backend
// sent no usable profile at all. Callers must tolerate nil: a token
// without a profile is still a valid login.
func (r *LoginResponse) Profile() *User {
	if r.User != nil {
		return r.User
	}

	id := r.UserID
	if id == 0 {
		id = r.ID
	}
	if id == 0 && r.Name == "" && r.Email == "" && r.Role == "" {
		return nil
	}

	return &User{
		ID:           id,
		Name:         r.Name,
		Email:        r.Email,
		Role:         r.Role,
		DepartmentID: r.DepartmentID,
	}
}

// Login posts credentials to the backend. The endpoint expects the
// conventional form-encoded password grant with username=email.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var resp LoginResponse
	if err := c.doForm(ctx, "POST", "/auth/login", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"password"`
	Role         rbac.Role `json:"role"`
	DepartmentID int       `json:"department_id"`
}

// RegisterResponse is the created user, possibly with a bonus token if
// the backend decides to log the new account in.
type RegisterResponse struct {
	User
	AccessToken string `json:"access_token"`
}

// Register creates a new account. It does not log the caller in.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.doJSON(ctx, "POST", "/auth/register", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the profile behind the current token. A 401 means the
// token is dead and fires the client's unauthorized hook.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, "GET", "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
