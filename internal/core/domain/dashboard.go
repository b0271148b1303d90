package domain

import "github.com/shopspring/decimal"

// DefaultRecentLimit is how many recent transactions the dashboard surfaces
// when the caller does not ask for a specific number.
const DefaultRecentLimit = 5

// DashboardSummary aggregates a user's accounts, transactions and goals into
// the figures the dashboard displays.
type DashboardSummary struct {
	TotalBalance           decimal.Decimal `json:"totalBalance"`
	AccountCount           int             `json:"accountCount"`
	RecentTransactionCount int             `json:"recentTransactionCount"`
	ActiveGoalCount        int             `json:"activeGoalCount"`
	RecentTransactions     []Transaction   `json:"recentTransactions"`
	ActiveGoals            []Goal          `json:"activeGoals"`
}

// LoadFailure records a dashboard load step that could not be completed.
type LoadFailure struct {
	Resource string
	Err      error
}

// DashboardLoad couples a summary with the load steps that failed while it
// was being assembled, so a partially populated dashboard is never mistaken
// for a complete one.
type DashboardLoad struct {
	Summary  DashboardSummary
	Failures []LoadFailure
}

// ComputeDashboardSummary folds already-fetched lists into a DashboardSummary.
// It is pure and synchronous: inputs are never mutated, identical inputs give
// identical results, and empty inputs degrade to zero totals and empty slices.
//
// transactions is the full transaction list, not pre-filtered by user; only
// those belonging to one of the given accounts are considered, in their
// original order, and the first recentLimit of them are surfaced. A
// non-positive recentLimit surfaces none.
func ComputeDashboardSummary(accounts []Account, transactions []Transaction, goals []Goal, recentLimit int) DashboardSummary {
	totalBalance := decimal.Zero
	owned := make(map[string]struct{}, len(accounts))
	for _, acc := range accounts {
		totalBalance = totalBalance.Add(acc.Balance)
		owned[acc.AccountID] = struct{}{}
	}

	recent := make([]Transaction, 0, max(recentLimit, 0))
	for _, txn := range transactions {
		if len(recent) >= recentLimit {
			break
		}
		if _, ok := owned[txn.AccountID]; ok {
			recent = append(recent, txn)
		}
	}

	active := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		if goal.Status == GoalInProgress {
			active = append(active, goal)
		}
	}

	return DashboardSummary{
		TotalBalance:           totalBalance,
		AccountCount:           len(accounts),
		RecentTransactionCount: len(recent),
		ActiveGoalCount:        len(active),
		RecentTransactions:     recent,
		ActiveGoals:            active,
	}
}
