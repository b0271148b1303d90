package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finman-app/finman_backend/internal/apperrors"
	"github.com/finman-app/finman_backend/internal/core/domain"
	portssvc "github.com/finman-app/finman_backend/internal/core/ports/services"
	"github.com/finman-app/finman_backend/internal/core/services"
	"github.com/finman-app/finman_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByUserID(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

// --- Mock UserReader ---
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) FindUserByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockUserReader  *MockUserReader
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockUserReader = new(MockUserReader)
	suite.service = services.NewAccountService(suite.mockAccountRepo, services.WithUserReader(suite.mockUserReader))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		UserID:        "user-1",
		BankName:      "Banco do Brasil",
		BranchCode:    "1234",
		AccountNumber: "56789-0",
		Kind:          domain.Checking,
		Balance:       decimal.NewFromFloat(1500.75),
	}

	suite.mockUserReader.On("FindUserByID", ctx, "user-1").Return(&domain.User{UserID: "user-1"}, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.UserID == "user-1" && acc.IsActive && acc.Balance.Equal(req.Balance) && acc.AccountID != ""
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, "creator-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("user-1", account.UserID)
	suite.True(account.IsActive)
	suite.Equal("creator-1", account.CreatedBy)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockUserReader.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_OwnerMissing() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		UserID:        "ghost",
		BankName:      "Itau",
		AccountNumber: "1",
		Kind:          domain.Savings,
	}

	suite.mockUserReader.On("FindUserByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.CreateAccount(ctx, req, "creator-1")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_MergesFields() {
	ctx := context.Background()
	existing := &domain.Account{
		AccountID: "acc-1",
		UserID:    "user-1",
		BankName:  "Old Bank",
		Kind:      domain.Checking,
		Balance:   decimal.NewFromInt(100),
		IsActive:  true,
	}
	newName := "New Bank"
	newBalance := decimal.NewFromInt(250)

	suite.mockAccountRepo.On("FindAccountByID", ctx, "acc-1").Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.BankName == newName && acc.Balance.Equal(newBalance) && acc.LastUpdatedBy == "updater-1"
	})).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, "acc-1", dto.UpdateAccountRequest{
		BankName: &newName,
		Balance:  &newBalance,
	}, "updater-1")

	suite.Require().NoError(err)
	suite.Equal(newName, account.BankName)
	// Untouched fields survive the merge.
	suite.Equal("user-1", account.UserID)
	suite.Equal(domain.Checking, account.Kind)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_AlreadyInactive() {
	ctx := context.Background()
	existing := &domain.Account{AccountID: "acc-1", IsActive: false}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "acc-1").Return(existing, nil).Once()

	err := suite.service.DeactivateAccount(ctx, "acc-1", "deleter-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeactivateAccount")
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	existing := &domain.Account{AccountID: "acc-1", IsActive: true}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "acc-1").Return(existing, nil).Once()
	suite.mockAccountRepo.On("DeactivateAccount", ctx, "acc-1", "deleter-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, "acc-1", "deleter-1")

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccountsByUser_Empty() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountsByUserID", ctx, "user-1").Return([]domain.Account{}, nil).Once()

	accounts, err := suite.service.ListAccountsByUser(ctx, "user-1")

	suite.Require().NoError(err)
	assert.Empty(suite.T(), accounts)
}

// --- Run Suite ---
func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
