package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/finman-app/finman_backend/internal/apperrors"
	"github.com/finman-app/finman_backend/internal/core/domain"
	portsrepo "github.com/finman-app/finman_backend/internal/core/ports/repositories"
)

type GoalRepository struct {
	mu    sync.RWMutex
	goals map[string]domain.Goal
	order []string // insertion order
}

func NewGoalRepository() *GoalRepository {
	return &GoalRepository{goals: make(map[string]domain.Goal)}
}

var _ portsrepo.GoalRepositoryFacade = (*GoalRepository)(nil)

func (r *GoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.goals[goal.GoalID]; exists {
		return fmt.Errorf("%w: goal with ID %s already exists", apperrors.ErrDuplicate, goal.GoalID)
	}
	r.goals[goal.GoalID] = goal
	r.order = append(r.order, goal.GoalID)
	return nil
}

func (r *GoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goal, ok := r.goals[goalID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &goal, nil
}

func (r *GoalRepository) ListGoals(ctx context.Context, limit int, offset int) ([]domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	goals := []domain.Goal{}
	for i := offset; i < len(r.order) && len(goals) < limit; i++ {
		goals = append(goals, r.goals[r.order[i]])
	}
	return goals, nil
}

func (r *GoalRepository) FindGoalsByUserID(ctx context.Context, userID string) ([]domain.Goal, error) {
	return r.filter(func(g domain.Goal) bool { return g.UserID == userID }), nil
}

func (r *GoalRepository) FindGoalsByStatus(ctx context.Context, status domain.GoalStatus) ([]domain.Goal, error) {
	return r.filter(func(g domain.Goal) bool { return g.Status == status }), nil
}

func (r *GoalRepository) FindGoalsByPriority(ctx context.Context, priority domain.GoalPriority) ([]domain.Goal, error) {
	return r.filter(func(g domain.Goal) bool { return g.Priority == priority }), nil
}

func (r *GoalRepository) filter(keep func(domain.Goal) bool) []domain.Goal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := []domain.Goal{}
	for _, id := range r.order {
		if g := r.goals[id]; keep(g) {
			goals = append(goals, g)
		}
	}
	return goals
}

func (r *GoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.goals[goal.GoalID]; !ok {
		return apperrors.ErrNotFound
	}
	r.goals[goal.GoalID] = goal
	return nil
}

func (r *GoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.goals[goalID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.goals, goalID)
	for i, id := range r.order {
		if id == goalID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
