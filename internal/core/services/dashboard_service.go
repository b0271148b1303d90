package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/finman-app/finman_backend/internal/core/domain"
	portsrepo "github.com/finman-app/finman_backend/internal/core/ports/repositories"
	portssvc "github.com/finman-app/finman_backend/internal/core/ports/services"
)

// dashboardService implements the DashboardSvcFacade interface
type dashboardService struct {
	BaseService
	accountRepo     portsrepo.AccountReader
	transactionRepo portsrepo.TransactionReader
	goalRepo        portsrepo.GoalReader
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(accountRepo portsrepo.AccountReader, transactionRepo portsrepo.TransactionReader, goalRepo portsrepo.GoalReader) portssvc.DashboardSvcFacade {
	return &dashboardService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
	}
}

// Ensure dashboardService implements the DashboardSvcFacade interface
var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// GetDashboard assembles the dashboard summary for a user. Each load step is
// independent: a failing step is recorded and leaves its slice empty instead
// of aborting the whole dashboard.
func (s *dashboardService) GetDashboard(ctx context.Context, userID string, recentLimit int) (*domain.DashboardLoad, error) {
	if recentLimit <= 0 {
		recentLimit = domain.DefaultRecentLimit
	}

	load := &domain.DashboardLoad{}

	accounts, err := s.accountRepo.FindAccountsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Dashboard account load failed", slog.String("user_id", userID))
		load.Failures = append(load.Failures, domain.LoadFailure{Resource: "accounts", Err: err})
		accounts = nil
	}

	transactions, err := s.loadUserTransactions(ctx, accounts)
	if err != nil {
		s.LogError(ctx, err, "Dashboard transaction load failed", slog.String("user_id", userID))
		load.Failures = append(load.Failures, domain.LoadFailure{Resource: "transactions", Err: err})
		transactions = nil
	}

	goals, err := s.goalRepo.FindGoalsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Dashboard goal load failed", slog.String("user_id", userID))
		load.Failures = append(load.Failures, domain.LoadFailure{Resource: "goals", Err: err})
		goals = nil
	}

	load.Summary = domain.ComputeDashboardSummary(accounts, transactions, goals, recentLimit)

	s.logAssembled(ctx, userID, load)
	return load, nil
}

// loadUserTransactions fetches the complete transaction history of every
// given account and merges it most recent first, the same ordering the
// transaction listing uses. The user's recent section must never depend on
// how much traffic other users generate, so there is no global fetch window.
func (s *dashboardService) loadUserTransactions(ctx context.Context, accounts []domain.Account) ([]domain.Transaction, error) {
	merged := []domain.Transaction{}
	for _, account := range accounts {
		transactions, err := s.transactionRepo.FindTransactionsByAccountID(ctx, account.AccountID)
		if err != nil {
			return nil, err
		}
		merged = append(merged, transactions...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		switch {
		case a.OccurredAt != nil && b.OccurredAt != nil:
			if !a.OccurredAt.Equal(*b.OccurredAt) {
				return a.OccurredAt.After(*b.OccurredAt)
			}
		case a.OccurredAt != nil:
			// Dateless transactions sort after dated ones.
			return true
		case b.OccurredAt != nil:
			return false
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return merged, nil
}

func (s *dashboardService) logAssembled(ctx context.Context, userID string, load *domain.DashboardLoad) {
	s.LogDebug(ctx, "Dashboard assembled",
		slog.String("user_id", userID),
		slog.Int("account_count", load.Summary.AccountCount),
		slog.Int("failed_loads", len(load.Failures)))
}
