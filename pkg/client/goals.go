package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateGoal creates a new savings goal. The completion percentage cannot be
// sent; the server derives it from the amounts.
func (c *Client) CreateGoal(ctx context.Context, req CreateGoalRequest) (*GoalResponse, error) {
	var resp GoalResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/goals", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetGoal retrieves a goal by ID.
func (c *Client) GetGoal(ctx context.Context, goalID string) (*GoalResponse, error) {
	var resp GoalResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/goals/"+goalID, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListGoals retrieves goals matching the given params.
func (c *Client) ListGoals(ctx context.Context, params ListGoalsParams) (*ListGoalsResponse, error) {
	query := url.Values{}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.Priority != "" {
		query.Set("priority", params.Priority)
	}

	var resp ListGoalsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/goals", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListUserGoals retrieves all goals belonging to a user.
func (c *Client) ListUserGoals(ctx context.Context, userID string) (*ListGoalsResponse, error) {
	var resp ListGoalsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/"+userID+"/goals", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateGoal updates the given fields of a goal.
func (c *Client) UpdateGoal(ctx context.Context, goalID string, req UpdateGoalRequest) (*GoalResponse, error) {
	var resp GoalResponse
	if err := c.do(ctx, http.MethodPut, "/api/v1/goals/"+goalID, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteGoal removes a goal permanently.
func (c *Client) DeleteGoal(ctx context.Context, goalID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/goals/"+goalID, nil, nil, nil)
}
