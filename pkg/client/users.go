package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetUser retrieves a user by ID.
func (c *Client) GetUser(ctx context.Context, userID string) (*UserResponse, error) {
	var resp UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/"+userID, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListUsers retrieves a paginated list of users.
func (c *Client) ListUsers(ctx context.Context, limit, offset int) (*ListUsersResponse, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	var resp ListUsersResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/users", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FindUserByEmail looks up a user by exact email.
func (c *Client) FindUserByEmail(ctx context.Context, email string) (*UserResponse, error) {
	return c.findUser(ctx, url.Values{"email": []string{email}})
}

// FindUserByCPF looks up a user by exact CPF.
func (c *Client) FindUserByCPF(ctx context.Context, cpf string) (*UserResponse, error) {
	return c.findUser(ctx, url.Values{"cpf": []string{cpf}})
}

func (c *Client) findUser(ctx context.Context, query url.Values) (*UserResponse, error) {
	var resp ListUsersResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/users", query, nil, &resp); err != nil {
		return nil, err
	}
	// The lookup returns a single-element list.
	if len(resp.Users) == 0 {
		return nil, ErrNotFound
	}
	return &resp.Users[0], nil
}

// UpdateUser updates the given profile fields of a user.
func (c *Client) UpdateUser(ctx context.Context, userID string, req UpdateUserRequest) (*UserResponse, error) {
	var resp UserResponse
	if err := c.do(ctx, http.MethodPut, "/api/v1/users/"+userID, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteUser soft-deletes a user.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/users/"+userID, nil, nil, nil)
}

// GetDashboard retrieves the aggregated dashboard for the authenticated user.
func (c *Client) GetDashboard(ctx context.Context, recentLimit int) (*DashboardResponse, error) {
	query := url.Values{}
	if recentLimit > 0 {
		query.Set("recentLimit", strconv.Itoa(recentLimit))
	}

	var resp DashboardResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/dashboard", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
