package repositories

import (
	"context"

	"github.com/finman-app/finman_backend/internal/core/domain"
)

// GoalReader defines read operations for goal data
type GoalReader interface {
	// FindGoalByID retrieves a specific goal by its unique identifier.
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// ListGoals retrieves a paginated list of goals.
	ListGoals(ctx context.Context, limit int, offset int) ([]domain.Goal, error)

	// FindGoalsByUserID retrieves all goals owned by a user.
	FindGoalsByUserID(ctx context.Context, userID string) ([]domain.Goal, error)

	// FindGoalsByStatus retrieves goals filtered by status.
	FindGoalsByStatus(ctx context.Context, status domain.GoalStatus) ([]domain.Goal, error)

	// FindGoalsByPriority retrieves goals filtered by priority.
	FindGoalsByPriority(ctx context.Context, priority domain.GoalPriority) ([]domain.Goal, error)
}

// GoalWriter defines write operations for goal data
type GoalWriter interface {
	// SaveGoal persists a new goal.
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// UpdateGoal updates an existing goal.
	UpdateGoal(ctx context.Context, goal domain.Goal) error

	// DeleteGoal removes a goal permanently.
	DeleteGoal(ctx context.Context, goalID string) error
}

// GoalRepositoryFacade combines all goal-related repository interfaces.
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
