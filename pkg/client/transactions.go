package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateTransaction records a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*TransactionResponse, error) {
	var resp TransactionResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/transactions", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTransaction retrieves a transaction by ID.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*TransactionResponse, error) {
	var resp TransactionResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/transactions/"+transactionID, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListTransactions retrieves transactions matching the given params. Filters
// behave as on the server: at most one is applied.
func (c *Client) ListTransactions(ctx context.Context, params ListTransactionsParams) (*ListTransactionsResponse, error) {
	query := url.Values{}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.AccountID != "" {
		query.Set("accountID", params.AccountID)
	}
	if params.Direction != "" {
		query.Set("direction", params.Direction)
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}

	var resp ListTransactionsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/transactions", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateTransaction updates the given fields of a transaction.
func (c *Client) UpdateTransaction(ctx context.Context, transactionID string, req UpdateTransactionRequest) (*TransactionResponse, error) {
	var resp TransactionResponse
	if err := c.do(ctx, http.MethodPut, "/api/v1/transactions/"+transactionID, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTransaction removes a transaction permanently.
func (c *Client) DeleteTransaction(ctx context.Context, transactionID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/transactions/"+transactionID, nil, nil, nil)
}
