package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/finman-app/finman_backend/internal/core/domain"
	portssvc "github.com/finman-app/finman_backend/internal/core/ports/services"
	"github.com/finman-app/finman_backend/internal/core/services"
	"github.com/finman-app/finman_backend/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// The dashboard suite runs against the in-memory repositories instead of
// mocks: the service composes three read paths and the interesting behavior
// is the aggregation over realistic data.
type DashboardServiceTestSuite struct {
	suite.Suite
	accountRepo     *memory.AccountRepository
	transactionRepo *memory.TransactionRepository
	goalRepo        *memory.GoalRepository
	service         portssvc.DashboardSvcFacade
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.accountRepo = memory.NewAccountRepository()
	suite.transactionRepo = memory.NewTransactionRepository()
	suite.goalRepo = memory.NewGoalRepository()
	suite.service = services.NewDashboardService(suite.accountRepo, suite.transactionRepo, suite.goalRepo)
}

func (suite *DashboardServiceTestSuite) seedAccount(id, userID string, balance float64) {
	err := suite.accountRepo.SaveAccount(context.Background(), domain.Account{
		AccountID: id,
		UserID:    userID,
		BankName:  "Test Bank",
		Kind:      domain.Checking,
		Balance:   decimal.NewFromFloat(balance),
		IsActive:  true,
	})
	suite.Require().NoError(err)
}

func (suite *DashboardServiceTestSuite) seedTransaction(id, accountID string) {
	suite.seedTransactionAt(id, accountID, nil)
}

func (suite *DashboardServiceTestSuite) seedTransactionAt(id, accountID string, occurredAt *time.Time) {
	err := suite.transactionRepo.SaveTransaction(context.Background(), domain.Transaction{
		TransactionID: id,
		AccountID:     accountID,
		Direction:     domain.Outflow,
		Amount:        decimal.NewFromInt(10),
		Status:        domain.TransactionCompleted,
		OccurredAt:    occurredAt,
	})
	suite.Require().NoError(err)
}

func (suite *DashboardServiceTestSuite) seedGoal(id, userID string, status domain.GoalStatus) {
	err := suite.goalRepo.SaveGoal(context.Background(), domain.Goal{
		GoalID:       id,
		UserID:       userID,
		Name:         "Goal " + id,
		TargetAmount: decimal.NewFromInt(1000),
		Status:       status,
		Priority:     domain.PriorityMedium,
	})
	suite.Require().NoError(err)
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_AggregatesUserData() {
	ctx := context.Background()
	suite.seedAccount("acc-1", "user-1", 1200.50)
	suite.seedAccount("acc-2", "user-1", 300.25)
	suite.seedAccount("acc-other", "user-2", 9999)

	suite.seedTransaction("txn-1", "acc-1")
	suite.seedTransaction("txn-other", "acc-other")
	suite.seedTransaction("txn-2", "acc-2")

	suite.seedGoal("goal-1", "user-1", domain.GoalInProgress)
	suite.seedGoal("goal-2", "user-1", domain.GoalCompleted)

	load, err := suite.service.GetDashboard(ctx, "user-1", 10)

	suite.Require().NoError(err)
	suite.Empty(load.Failures)
	suite.True(load.Summary.TotalBalance.Equal(decimal.NewFromFloat(1500.75)),
		"total balance was %s", load.Summary.TotalBalance)
	suite.Equal(2, load.Summary.AccountCount)
	// The other user's transaction is filtered out.
	suite.Equal(2, load.Summary.RecentTransactionCount)
	suite.Require().Len(load.Summary.RecentTransactions, 2)
	suite.Equal("txn-1", load.Summary.RecentTransactions[0].TransactionID)
	suite.Equal("txn-2", load.Summary.RecentTransactions[1].TransactionID)
	// Completed goals are not active.
	suite.Equal(1, load.Summary.ActiveGoalCount)
	suite.Equal("goal-1", load.Summary.ActiveGoals[0].GoalID)
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_DefaultRecentLimit() {
	ctx := context.Background()
	suite.seedAccount("acc-1", "user-1", 100)
	for _, id := range []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7"} {
		suite.seedTransaction(id, "acc-1")
	}

	load, err := suite.service.GetDashboard(ctx, "user-1", 0)

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultRecentLimit, load.Summary.RecentTransactionCount)
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_EmptyUser() {
	ctx := context.Background()

	load, err := suite.service.GetDashboard(ctx, "nobody", 5)

	suite.Require().NoError(err)
	suite.Empty(load.Failures)
	suite.True(load.Summary.TotalBalance.IsZero())
	suite.Equal(0, load.Summary.AccountCount)
	suite.NotNil(load.Summary.RecentTransactions)
	suite.NotNil(load.Summary.ActiveGoals)
}

// A busy neighbor must not push the user's own activity out of the recent
// section, no matter how many transactions the rest of the system holds.
func (suite *DashboardServiceTestSuite) TestGetDashboard_UnaffectedByOtherUsersVolume() {
	ctx := context.Background()
	suite.seedAccount("acc-other", "user-2", 0)
	for i := 0; i < 120; i++ {
		suite.seedTransaction(fmt.Sprintf("other-%d", i), "acc-other")
	}
	suite.seedAccount("acc-1", "user-1", 50)
	suite.seedTransaction("txn-1", "acc-1")
	suite.seedTransaction("txn-2", "acc-1")
	suite.seedTransaction("txn-3", "acc-1")

	load, err := suite.service.GetDashboard(ctx, "user-1", 5)

	suite.Require().NoError(err)
	suite.Empty(load.Failures)
	suite.Equal(3, load.Summary.RecentTransactionCount)
	ids := make([]string, 0, 3)
	for _, txn := range load.Summary.RecentTransactions {
		ids = append(ids, txn.TransactionID)
	}
	suite.ElementsMatch([]string{"txn-1", "txn-2", "txn-3"}, ids)
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_RecentOrderedAcrossAccounts() {
	ctx := context.Background()
	suite.seedAccount("acc-1", "user-1", 100)
	suite.seedAccount("acc-2", "user-1", 100)

	at := func(day int) *time.Time {
		t := time.Date(2026, time.March, day, 12, 0, 0, 0, time.UTC)
		return &t
	}
	suite.seedTransactionAt("txn-old", "acc-1", at(1))
	suite.seedTransactionAt("txn-new", "acc-2", at(9))
	suite.seedTransactionAt("txn-mid", "acc-1", at(5))
	suite.seedTransaction("txn-dateless", "acc-2")

	load, err := suite.service.GetDashboard(ctx, "user-1", 10)

	suite.Require().NoError(err)
	suite.Require().Len(load.Summary.RecentTransactions, 4)
	suite.Equal("txn-new", load.Summary.RecentTransactions[0].TransactionID)
	suite.Equal("txn-mid", load.Summary.RecentTransactions[1].TransactionID)
	suite.Equal("txn-old", load.Summary.RecentTransactions[2].TransactionID)
	// Transactions without a date sort after dated ones.
	suite.Equal("txn-dateless", load.Summary.RecentTransactions[3].TransactionID)
}

// failingAccountReader simulates an account store outage.
type failingAccountReader struct{}

var errStoreDown = errors.New("store unavailable")

func (failingAccountReader) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return nil, errStoreDown
}

func (failingAccountReader) FindAccountsByUserID(ctx context.Context, userID string) ([]domain.Account, error) {
	return nil, errStoreDown
}

func (failingAccountReader) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	return nil, errStoreDown
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_PartialFailure() {
	ctx := context.Background()
	suite.seedGoal("goal-1", "user-1", domain.GoalInProgress)

	service := services.NewDashboardService(failingAccountReader{}, suite.transactionRepo, suite.goalRepo)

	load, err := service.GetDashboard(ctx, "user-1", 5)

	// One failing load step does not abort the dashboard.
	suite.Require().NoError(err)
	suite.Require().Len(load.Failures, 1)
	suite.Equal("accounts", load.Failures[0].Resource)
	suite.ErrorIs(load.Failures[0].Err, errStoreDown)
	suite.Equal(0, load.Summary.AccountCount)
	suite.Equal(1, load.Summary.ActiveGoalCount)
}

// failingTransactionReader simulates a transaction store outage.
type failingTransactionReader struct{}

func (failingTransactionReader) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return nil, errStoreDown
}

func (failingTransactionReader) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	return nil, errStoreDown
}

func (failingTransactionReader) FindTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return nil, errStoreDown
}

func (failingTransactionReader) FindTransactionsByDirection(ctx context.Context, direction domain.TransactionDirection) ([]domain.Transaction, error) {
	return nil, errStoreDown
}

func (failingTransactionReader) FindTransactionsByCategory(ctx context.Context, category string) ([]domain.Transaction, error) {
	return nil, errStoreDown
}

func (failingTransactionReader) FindTransactionsByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error) {
	return nil, errStoreDown
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_TransactionLoadFailure() {
	ctx := context.Background()
	suite.seedAccount("acc-1", "user-1", 100)

	service := services.NewDashboardService(suite.accountRepo, failingTransactionReader{}, suite.goalRepo)

	load, err := service.GetDashboard(ctx, "user-1", 5)

	suite.Require().NoError(err)
	suite.Require().Len(load.Failures, 1)
	suite.Equal("transactions", load.Failures[0].Resource)
	suite.ErrorIs(load.Failures[0].Err, errStoreDown)
	// Accounts already loaded still count.
	suite.Equal(1, load.Summary.AccountCount)
}

// --- Run Suite ---
func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
