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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock GoalRepository ---
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListGoals(ctx context.Context, limit int, offset int) ([]domain.Goal, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindGoalsByUserID(ctx context.Context, userID string) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindGoalsByStatus(ctx context.Context, status domain.GoalStatus) ([]domain.Goal, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindGoalsByPriority(ctx context.Context, priority domain.GoalPriority) ([]domain.Goal, error) {
	args := m.Called(ctx, priority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	args := m.Called(ctx, goalID)
	return args.Error(0)
}

// --- Test Suite ---
type GoalServiceTestSuite struct {
	suite.Suite
	mockGoalRepo   *MockGoalRepository
	mockUserReader *MockUserReader
	service        portssvc.GoalSvcFacade
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.mockUserReader = new(MockUserReader)
	suite.service = services.NewGoalService(suite.mockGoalRepo, services.WithGoalUserReader(suite.mockUserReader))
}

func (suite *GoalServiceTestSuite) TestCreateGoal_Success() {
	ctx := context.Background()
	targetDate := time.Now().AddDate(1, 0, 0)
	req := dto.CreateGoalRequest{
		UserID:        "user-1",
		Name:          "Emergency fund",
		TargetAmount:  decimal.NewFromInt(10000),
		CurrentAmount: decimal.NewFromInt(2500),
		TargetDate:    targetDate,
	}

	suite.mockUserReader.On("FindUserByID", ctx, "user-1").Return(&domain.User{UserID: "user-1"}, nil).Once()
	suite.mockGoalRepo.On("SaveGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.UserID == "user-1" && g.GoalID != "" &&
			g.Status == domain.GoalInProgress && g.Priority == domain.PriorityMedium
	})).Return(nil).Once()

	goal, err := suite.service.CreateGoal(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(goal)
	// Status and priority fall back to defaults when omitted.
	suite.Equal(domain.GoalInProgress, goal.Status)
	suite.Equal(domain.PriorityMedium, goal.Priority)
	suite.Equal("user-1", goal.CreatedBy)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestCreateGoal_NonPositiveTarget() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		UserID:       "user-1",
		Name:         "Broken goal",
		TargetAmount: decimal.Zero,
		TargetDate:   time.Now().AddDate(0, 6, 0),
	}

	goal, err := suite.service.CreateGoal(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "SaveGoal")
	suite.mockUserReader.AssertNotCalled(suite.T(), "FindUserByID")
}

func (suite *GoalServiceTestSuite) TestCreateGoal_OwnerMissing() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		UserID:       "ghost",
		Name:         "Orphan goal",
		TargetAmount: decimal.NewFromInt(500),
		TargetDate:   time.Now().AddDate(0, 1, 0),
	}

	suite.mockUserReader.On("FindUserByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	goal, err := suite.service.CreateGoal(ctx, req, "ghost")

	suite.Require().Error(err)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "SaveGoal")
}

func (suite *GoalServiceTestSuite) TestListGoalsByStatus_InvalidStatus() {
	ctx := context.Background()

	goals, err := suite.service.ListGoalsByStatus(ctx, domain.GoalStatus("WISHFUL"))

	suite.Require().Error(err)
	suite.Nil(goals)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "FindGoalsByStatus")
}

func (suite *GoalServiceTestSuite) TestListGoalsByPriority_Success() {
	ctx := context.Background()
	expected := []domain.Goal{{GoalID: "goal-1", Priority: domain.PriorityHigh}}

	suite.mockGoalRepo.On("FindGoalsByPriority", ctx, domain.PriorityHigh).Return(expected, nil).Once()

	goals, err := suite.service.ListGoalsByPriority(ctx, domain.PriorityHigh)

	suite.Require().NoError(err)
	suite.Equal(expected, goals)
}

func (suite *GoalServiceTestSuite) TestUpdateGoal_RejectsNonPositiveTarget() {
	ctx := context.Background()
	existing := &domain.Goal{
		GoalID:       "goal-1",
		UserID:       "user-1",
		TargetAmount: decimal.NewFromInt(1000),
	}
	badTarget := decimal.NewFromInt(-10)

	suite.mockGoalRepo.On("FindGoalByID", ctx, "goal-1").Return(existing, nil).Once()

	goal, err := suite.service.UpdateGoal(ctx, "goal-1", dto.UpdateGoalRequest{TargetAmount: &badTarget}, "user-1")

	suite.Require().Error(err)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "UpdateGoal")
}

func (suite *GoalServiceTestSuite) TestUpdateGoal_MergesFields() {
	ctx := context.Background()
	existing := &domain.Goal{
		GoalID:        "goal-1",
		UserID:        "user-1",
		Name:          "Old name",
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(100),
		Status:        domain.GoalInProgress,
	}
	newAmount := decimal.NewFromInt(400)
	newStatus := domain.GoalPaused

	suite.mockGoalRepo.On("FindGoalByID", ctx, "goal-1").Return(existing, nil).Once()
	suite.mockGoalRepo.On("UpdateGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.CurrentAmount.Equal(newAmount) && g.Status == domain.GoalPaused && g.Name == "Old name"
	})).Return(nil).Once()

	goal, err := suite.service.UpdateGoal(ctx, "goal-1", dto.UpdateGoalRequest{
		CurrentAmount: &newAmount,
		Status:        &newStatus,
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(goal.CurrentAmount.Equal(newAmount))
	suite.Equal("user-1", goal.LastUpdatedBy)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestDeleteGoal_NotFound() {
	ctx := context.Background()

	suite.mockGoalRepo.On("FindGoalByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteGoal(ctx, "missing", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "DeleteGoal")
}

// --- Run Suite ---
func TestGoalService(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
