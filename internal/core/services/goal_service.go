package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finman-app/finman_backend/internal/apperrors"
	"github.com/finman-app/finman_backend/internal/core/domain"
	portsrepo "github.com/finman-app/finman_backend/internal/core/ports/repositories"
	portssvc "github.com/finman-app/finman_backend/internal/core/ports/services"
	"github.com/finman-app/finman_backend/internal/dto"
	"github.com/google/uuid"
)

// goalService implements the GoalSvcFacade interface
type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
	userRepo portsrepo.UserReader
}

// GoalServiceOption is a functional option for configuring the goal service
type GoalServiceOption func(*goalService)

// WithGoalUserReader adds a user reader so goal creation can verify the owner exists
func WithGoalUserReader(repo portsrepo.UserReader) GoalServiceOption {
	return func(s *goalService) {
		s.userRepo = repo
	}
}

// NewGoalService creates a new goal service with the provided options
func NewGoalService(repo portsrepo.GoalRepositoryFacade, options ...GoalServiceOption) portssvc.GoalSvcFacade {
	svc := &goalService{
		goalRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure goalService implements the GoalSvcFacade interface
var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest, creatorUserID string) (*domain.Goal, error) {
	// A zero or negative target would make the derived completion percentage
	// meaningless, so it is rejected at the boundary.
	if !req.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}

	if s.userRepo != nil {
		if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: owning user %s not found", apperrors.ErrValidation, req.UserID)
			}
			s.LogError(ctx, err, "Failed to verify owning user", slog.String("user_id", req.UserID))
			return nil, err
		}
	}

	status := req.Status
	if status == "" {
		status = domain.GoalInProgress
	}
	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now()
	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		UserID:        req.UserID,
		Name:          req.Name,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		StartDate:     req.StartDate,
		TargetDate:    req.TargetDate,
		Status:        status,
		Priority:      priority,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal", slog.String("goal_id", goal.GoalID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal created successfully", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find goal by ID", slog.String("goal_id", goalID))
		}
		return nil, err
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, limit int, offset int) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoals(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals")
		return nil, err
	}
	return goals, nil
}

func (s *goalService) ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	goals, err := s.goalRepo.FindGoalsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals for user", slog.String("user_id", userID))
		return nil, err
	}
	return goals, nil
}

func (s *goalService) ListGoalsByStatus(ctx context.Context, status domain.GoalStatus) ([]domain.Goal, error) {
	switch status {
	case domain.GoalInProgress, domain.GoalCompleted, domain.GoalPaused, domain.GoalCanceled:
	default:
		return nil, fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, status)
	}
	goals, err := s.goalRepo.FindGoalsByStatus(ctx, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals by status", slog.String("status", string(status)))
		return nil, err
	}
	return goals, nil
}

func (s *goalService) ListGoalsByPriority(ctx context.Context, priority domain.GoalPriority) ([]domain.Goal, error) {
	switch priority {
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
	default:
		return nil, fmt.Errorf("%w: invalid priority %q", apperrors.ErrValidation, priority)
	}
	goals, err := s.goalRepo.FindGoalsByPriority(ctx, priority)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals by priority", slog.String("priority", string(priority)))
		return nil, err
	}
	return goals, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest, updaterUserID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.TargetAmount != nil {
		if !req.TargetAmount.IsPositive() {
			return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.StartDate != nil {
		goal.StartDate = req.StartDate
	}
	if req.TargetDate != nil {
		goal.TargetDate = *req.TargetDate
	}
	if req.Status != nil {
		goal.Status = *req.Status
	}
	if req.Priority != nil {
		goal.Priority = *req.Priority
	}

	goal.LastUpdatedAt = time.Now()
	goal.LastUpdatedBy = updaterUserID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to update goal", slog.String("goal_id", goalID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal updated successfully", slog.String("goal_id", goalID))
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, goalID string, deleterUserID string) error {
	if _, err := s.goalRepo.FindGoalByID(ctx, goalID); err != nil {
		return err
	}

	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal", slog.String("goal_id", goalID))
		return err
	}

	s.LogInfo(ctx, "Goal deleted successfully",
		slog.String("goal_id", goalID),
		slog.String("deleter_user_id", deleterUserID))
	return nil
}
