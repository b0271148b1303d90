package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finman-app/finman_backend/internal/apperrors"
	"github.com/finman-app/finman_backend/internal/core/domain"
	portsrepo "github.com/finman-app/finman_backend/internal/core/ports/repositories"
	"github.com/finman-app/finman_backend/internal/models"
	"github.com/finman-app/finman_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const goalColumns = `goal_id, user_id, name, description, target_amount, current_amount, start_date, target_date, status, priority, created_at, created_by, last_updated_at, last_updated_by`

type PgxGoalRepository struct {
	pool *pgxpool.Pool
}

// newPgxGoalRepository creates a new repository for savings goal data.
func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{pool: pool}
}

// Ensure PgxGoalRepository implements portsrepo.GoalRepositoryFacade
var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

func scanGoal(row pgx.Row) (models.Goal, error) {
	var m models.Goal
	err := row.Scan(
		&m.GoalID,
		&m.UserID,
		&m.Name,
		&m.Description,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.StartDate,
		&m.TargetDate,
		&m.Status,
		&m.Priority,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectGoals(rows pgx.Rows) ([]domain.Goal, error) {
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		m, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, mapping.ToDomainGoal(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", err)
	}
	return goals, nil
}

// SaveGoal inserts a new savings goal.
func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)

	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		m.GoalID,
		m.UserID,
		m.Name,
		m.Description,
		m.TargetAmount,
		m.CurrentAmount,
		m.StartDate,
		m.TargetDate,
		m.Status,
		m.Priority,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: goal with ID %s already exists", apperrors.ErrDuplicate, m.GoalID)
		}
		return fmt.Errorf("failed to save goal %s: %w", m.GoalID, err)
	}
	return nil
}

// FindGoalByID retrieves a goal by its ID.
func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE goal_id = $1;
	`
	m, err := scanGoal(r.pool.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID %s: %w", goalID, err)
	}

	d := mapping.ToDomainGoal(m)
	return &d, nil
}

// ListGoals retrieves a paginated list of goals, nearest target date first.
func (r *PgxGoalRepository) ListGoals(ctx context.Context, limit int, offset int) ([]domain.Goal, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + goalColumns + `
		FROM goals
		ORDER BY target_date
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	return collectGoals(rows)
}

// FindGoalsByUserID retrieves all goals belonging to a user.
func (r *PgxGoalRepository) FindGoalsByUserID(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE user_id = $1
		ORDER BY target_date;
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals for user %s: %w", userID, err)
	}
	return collectGoals(rows)
}

// FindGoalsByStatus retrieves goals filtered by status.
func (r *PgxGoalRepository) FindGoalsByStatus(ctx context.Context, status domain.GoalStatus) ([]domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE status = $1
		ORDER BY target_date;
	`
	rows, err := r.pool.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query goals by status %s: %w", status, err)
	}
	return collectGoals(rows)
}

// FindGoalsByPriority retrieves goals filtered by priority.
func (r *PgxGoalRepository) FindGoalsByPriority(ctx context.Context, priority domain.GoalPriority) ([]domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE priority = $1
		ORDER BY target_date;
	`
	rows, err := r.pool.Query(ctx, query, string(priority))
	if err != nil {
		return nil, fmt.Errorf("failed to query goals by priority %s: %w", priority, err)
	}
	return collectGoals(rows)
}

// UpdateGoal updates an existing goal.
func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)

	query := `
		UPDATE goals
		SET name = $2, description = $3, target_amount = $4, current_amount = $5, start_date = $6, target_date = $7, status = $8, priority = $9, last_updated_at = $10, last_updated_by = $11
		WHERE goal_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.GoalID,
		m.Name,
		m.Description,
		m.TargetAmount,
		m.CurrentAmount,
		m.StartDate,
		m.TargetDate,
		m.Status,
		m.Priority,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update goal %s: %w", m.GoalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteGoal removes a goal permanently.
func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	query := `DELETE FROM goals WHERE goal_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
