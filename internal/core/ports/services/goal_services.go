package services

import (
	"context"

	"github.com/finman-app/finman_backend/internal/core/domain"
	"github.com/finman-app/finman_backend/internal/dto"
)

// GoalReaderSvc defines read operations offered by the goal service.
type GoalReaderSvc interface {
	GetGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, limit int, offset int) ([]domain.Goal, error)
	ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error)
	ListGoalsByStatus(ctx context.Context, status domain.GoalStatus) ([]domain.Goal, error)
	ListGoalsByPriority(ctx context.Context, priority domain.GoalPriority) ([]domain.Goal, error)
}

// GoalWriterSvc defines write operations offered by the goal service.
type GoalWriterSvc interface {
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest, creatorUserID string) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest, updaterUserID string) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID string, deleterUserID string) error
}

// GoalSvcFacade combines all goal service interfaces.
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}
