package services_test

import (
	"context"
	"testing"

	"github.com/finman-app/finman_backend/internal/apperrors"
	"github.com/finman-app/finman_backend/internal/core/domain"
	portssvc "github.com/finman-app/finman_backend/internal/core/ports/services"
	"github.com/finman-app/finman_backend/internal/core/services"
	"github.com/finman-app/finman_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByDirection(ctx context.Context, direction domain.TransactionDirection) ([]domain.Transaction, error) {
	args := m.Called(ctx, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByCategory(ctx context.Context, category string) ([]domain.Transaction, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, transaction domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	mockAccountReader   *MockAccountRepository
	service             portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockAccountReader = new(MockAccountRepository)
	suite.service = services.NewTransactionService(suite.mockTransactionRepo, services.WithAccountReader(suite.mockAccountReader))
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: "acc-1",
		Direction: domain.Outflow,
		Category:  "groceries",
		Amount:    decimal.NewFromFloat(89.90),
	}

	suite.mockAccountReader.On("FindAccountByID", ctx, "acc-1").Return(&domain.Account{AccountID: "acc-1"}, nil).Once()
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(tx domain.Transaction) bool {
		return tx.AccountID == "acc-1" && tx.TransactionID != "" && tx.Status == domain.TransactionPending
	})).Return(nil).Once()

	transaction, err := suite.service.CreateTransaction(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(transaction)
	// Status defaults to PENDING when omitted.
	suite.Equal(domain.TransactionPending, transaction.Status)
	suite.Equal("user-1", transaction.CreatedBy)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AccountMissing() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: "ghost",
		Direction: domain.Inflow,
		Amount:    decimal.NewFromInt(10),
	}

	suite.mockAccountReader.On("FindAccountByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	transaction, err := suite.service.CreateTransaction(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(transaction)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: "acc-1",
		Direction: domain.Outflow,
		Amount:    decimal.NewFromInt(-5),
	}

	suite.mockAccountReader.On("FindAccountByID", ctx, "acc-1").Return(&domain.Account{AccountID: "acc-1"}, nil).Once()

	transaction, err := suite.service.CreateTransaction(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(transaction)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestListTransactionsByDirection_Invalid() {
	ctx := context.Background()

	transactions, err := suite.service.ListTransactionsByDirection(ctx, domain.TransactionDirection("SIDEWAYS"))

	suite.Require().Error(err)
	suite.Nil(transactions)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "FindTransactionsByDirection")
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RevalidatesMergedState() {
	ctx := context.Background()
	existing := &domain.Transaction{
		TransactionID: "txn-1",
		AccountID:     "acc-1",
		Direction:     domain.Outflow,
		Amount:        decimal.NewFromInt(50),
		Status:        domain.TransactionPending,
	}
	badAmount := decimal.NewFromInt(-1)

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, "txn-1").Return(existing, nil).Once()

	transaction, err := suite.service.UpdateTransaction(ctx, "txn-1", dto.UpdateTransactionRequest{Amount: &badAmount}, "user-1")

	suite.Require().Error(err)
	suite.Nil(transaction)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "UpdateTransaction")
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_Success() {
	ctx := context.Background()
	existing := &domain.Transaction{
		TransactionID: "txn-1",
		AccountID:     "acc-1",
		Direction:     domain.Outflow,
		Amount:        decimal.NewFromInt(50),
		Status:        domain.TransactionPending,
	}
	newStatus := domain.TransactionCompleted

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, "txn-1").Return(existing, nil).Once()
	suite.mockTransactionRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(tx domain.Transaction) bool {
		return tx.Status == domain.TransactionCompleted && tx.LastUpdatedBy == "user-1"
	})).Return(nil).Once()

	transaction, err := suite.service.UpdateTransaction(ctx, "txn-1", dto.UpdateTransactionRequest{Status: &newStatus}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.TransactionCompleted, transaction.Status)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, "missing", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "DeleteTransaction")
}

// --- Run Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
