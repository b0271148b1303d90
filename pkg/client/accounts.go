package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateAccount registers a new bank account.
func (c *Client) CreateAccount(ctx context.Context, req CreateAccountRequest) (*AccountResponse, error) {
	var resp AccountResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/accounts", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAccount retrieves an account by ID.
func (c *Client) GetAccount(ctx context.Context, accountID string) (*AccountResponse, error) {
	var resp AccountResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/accounts/"+accountID, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListAccounts retrieves a paginated list of accounts.
func (c *Client) ListAccounts(ctx context.Context, limit, offset int) (*ListAccountsResponse, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	var resp ListAccountsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/accounts", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListUserAccounts retrieves all accounts owned by a user.
func (c *Client) ListUserAccounts(ctx context.Context, userID string) (*ListAccountsResponse, error) {
	var resp ListAccountsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/"+userID+"/accounts", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateAccount updates the given fields of an account.
func (c *Client) UpdateAccount(ctx context.Context, accountID string, req UpdateAccountRequest) (*AccountResponse, error) {
	var resp AccountResponse
	if err := c.do(ctx, http.MethodPut, "/api/v1/accounts/"+accountID, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeactivateAccount marks an account inactive. Its history is preserved.
func (c *Client) DeactivateAccount(ctx context.Context, accountID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/accounts/"+accountID, nil, nil, nil)
}
