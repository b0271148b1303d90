package domain_test

import (
	"testing"

	"github.com/finman-app/finman_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func account(id, userID string, balance float64) domain.Account {
	return domain.Account{
		AccountID: id,
		UserID:    userID,
		Balance:   decimal.NewFromFloat(balance),
	}
}

func transaction(id, accountID string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		AccountID:     accountID,
		Direction:     domain.Outflow,
		Amount:        decimal.NewFromInt(10),
	}
}

func TestComputeDashboardSummary(t *testing.T) {
	accounts := []domain.Account{
		account("acc-1", "user-1", 100.25),
		account("acc-2", "user-1", 250.25),
	}
	// Six transactions, three of which belong to the user's accounts.
	transactions := []domain.Transaction{
		transaction("txn-1", "acc-1"),
		transaction("txn-2", "acc-other"),
		transaction("txn-3", "acc-2"),
		transaction("txn-4", "acc-other"),
		transaction("txn-5", "acc-1"),
		transaction("txn-6", "acc-other"),
	}
	goals := []domain.Goal{
		{GoalID: "goal-1", Status: domain.GoalInProgress},
		{GoalID: "goal-2", Status: domain.GoalCompleted},
		{GoalID: "goal-3", Status: domain.GoalInProgress},
		{GoalID: "goal-4", Status: domain.GoalPaused},
	}

	summary := domain.ComputeDashboardSummary(accounts, transactions, goals, domain.DefaultRecentLimit)

	assert.True(t, decimal.NewFromFloat(350.50).Equal(summary.TotalBalance), "got %s", summary.TotalBalance)
	assert.Equal(t, 2, summary.AccountCount)

	// Only the user's transactions survive the filter, in input order.
	assert.Equal(t, 3, summary.RecentTransactionCount)
	ids := make([]string, len(summary.RecentTransactions))
	for i, txn := range summary.RecentTransactions {
		ids[i] = txn.TransactionID
	}
	assert.Equal(t, []string{"txn-1", "txn-3", "txn-5"}, ids)

	assert.Equal(t, 2, summary.ActiveGoalCount)
	assert.Equal(t, "goal-1", summary.ActiveGoals[0].GoalID)
	assert.Equal(t, "goal-3", summary.ActiveGoals[1].GoalID)
}

func TestComputeDashboardSummary_RecentLimitTruncates(t *testing.T) {
	accounts := []domain.Account{account("acc-1", "user-1", 0)}
	transactions := make([]domain.Transaction, 0, 8)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		transactions = append(transactions, transaction("txn-"+id, "acc-1"))
	}

	summary := domain.ComputeDashboardSummary(accounts, transactions, nil, 5)

	assert.Equal(t, 5, summary.RecentTransactionCount)
	assert.Equal(t, "txn-a", summary.RecentTransactions[0].TransactionID)
	assert.Equal(t, "txn-e", summary.RecentTransactions[4].TransactionID)
}

func TestComputeDashboardSummary_EmptyInputs(t *testing.T) {
	summary := domain.ComputeDashboardSummary(nil, nil, nil, domain.DefaultRecentLimit)

	assert.True(t, summary.TotalBalance.IsZero())
	assert.Equal(t, 0, summary.AccountCount)
	assert.Equal(t, 0, summary.RecentTransactionCount)
	assert.Equal(t, 0, summary.ActiveGoalCount)
	assert.NotNil(t, summary.RecentTransactions)
	assert.NotNil(t, summary.ActiveGoals)
}

func TestComputeDashboardSummary_NonPositiveLimit(t *testing.T) {
	accounts := []domain.Account{account("acc-1", "user-1", 50)}
	transactions := []domain.Transaction{transaction("txn-1", "acc-1")}

	summary := domain.ComputeDashboardSummary(accounts, transactions, nil, 0)

	assert.Equal(t, 0, summary.RecentTransactionCount)
	assert.Empty(t, summary.RecentTransactions)
	// Balance aggregation is unaffected by the limit.
	assert.True(t, decimal.NewFromInt(50).Equal(summary.TotalBalance))
}

func TestComputeDashboardSummary_Determinism(t *testing.T) {
	accounts := []domain.Account{
		account("acc-1", "user-1", 10.10),
		account("acc-2", "user-1", 20.20),
	}
	transactions := []domain.Transaction{
		transaction("txn-1", "acc-1"),
		transaction("txn-2", "acc-2"),
	}
	goals := []domain.Goal{{GoalID: "goal-1", Status: domain.GoalInProgress}}

	first := domain.ComputeDashboardSummary(accounts, transactions, goals, 5)
	second := domain.ComputeDashboardSummary(accounts, transactions, goals, 5)

	assert.Equal(t, first, second)
	// Inputs are not mutated.
	assert.Equal(t, "acc-1", accounts[0].AccountID)
	assert.Len(t, transactions, 2)
}
