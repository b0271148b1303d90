package dto

import (
	"time"

	"github.com/finman-app/finman_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardParams defines query parameters for the dashboard endpoint.
type DashboardParams struct {
	RecentLimit int `form:"recentLimit,default=5"`
}

// DashboardResponse is the aggregated view the dashboard renders.
// FailedLoads names the load steps that could not be completed, so the
// caller can tell a genuinely empty section from a failed one.
type DashboardResponse struct {
	TotalBalance           decimal.Decimal       `json:"totalBalance"`
	AccountCount           int                   `json:"accountCount"`
	RecentTransactionCount int                   `json:"recentTransactionCount"`
	ActiveGoalCount        int                   `json:"activeGoalCount"`
	RecentTransactions     []TransactionResponse `json:"recentTransactions"`
	ActiveGoals            []GoalResponse        `json:"activeGoals"`
	FailedLoads            []string              `json:"failedLoads,omitempty"`
}

// ToDashboardResponse converts a domain.DashboardLoad to the response DTO.
func ToDashboardResponse(load *domain.DashboardLoad, now time.Time) DashboardResponse {
	resp := DashboardResponse{
		TotalBalance:           load.Summary.TotalBalance,
		AccountCount:           load.Summary.AccountCount,
		RecentTransactionCount: load.Summary.RecentTransactionCount,
		ActiveGoalCount:        load.Summary.ActiveGoalCount,
		RecentTransactions:     ToListTransactionResponse(load.Summary.RecentTransactions),
		ActiveGoals:            ToListGoalResponse(load.Summary.ActiveGoals, now),
	}
	for _, failure := range load.Failures {
		resp.FailedLoads = append(resp.FailedLoads, failure.Resource)
	}
	return resp
}
