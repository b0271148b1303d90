package dto

import (
	"time"

	"github.com/finman-app/finman_backend/internal/core/domain"
	"github.com/finman-app/finman_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
// Note there is no completion-percentage field: the percentage is derived
// from current/target on every read and is not writable on the wire.
type CreateGoalRequest struct {
	UserID        string              `json:"userID" binding:"required"`
	Name          string              `json:"name" binding:"required"`
	Description   string              `json:"description"`
	TargetAmount  decimal.Decimal     `json:"targetAmount" binding:"required"`
	CurrentAmount decimal.Decimal     `json:"currentAmount"`
	StartDate     *time.Time          `json:"startDate"`
	TargetDate    time.Time           `json:"targetDate" binding:"required"`
	Status        domain.GoalStatus   `json:"status" binding:"omitempty,oneof=IN_PROGRESS COMPLETED PAUSED CANCELED"`
	Priority      domain.GoalPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// UpdateGoalRequest defines the data allowed for updating a goal.
type UpdateGoalRequest struct {
	Name          *string              `json:"name"`
	Description   *string              `json:"description"`
	TargetAmount  *decimal.Decimal     `json:"targetAmount"`
	CurrentAmount *decimal.Decimal     `json:"currentAmount"`
	StartDate     *time.Time           `json:"startDate"`
	TargetDate    *time.Time           `json:"targetDate"`
	Status        *domain.GoalStatus   `json:"status" binding:"omitempty,oneof=IN_PROGRESS COMPLETED PAUSED CANCELED"`
	Priority      *domain.GoalPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// GoalResponse defines the data returned for a goal. CompletionPercent, the
// remaining amount and the deadline fields are computed at response time; the
// display fields carry the values preformatted for the dashboard widgets.
type GoalResponse struct {
	GoalID                   string               `json:"goalID"`
	UserID                   string               `json:"userID"`
	Name                     string               `json:"name"`
	Description              string               `json:"description"`
	TargetAmount             decimal.Decimal      `json:"targetAmount"`
	CurrentAmount            decimal.Decimal      `json:"currentAmount"`
	RemainingAmount          decimal.Decimal      `json:"remainingAmount"`
	RemainingAmountDisplay   string               `json:"remainingAmountDisplay"`
	CompletionPercent        decimal.Decimal      `json:"completionPercent"`
	CompletionPercentDisplay string               `json:"completionPercentDisplay"`
	StartDate                *time.Time           `json:"startDate,omitempty"`
	TargetDate               time.Time            `json:"targetDate"`
	TargetDateDisplay        string               `json:"targetDateDisplay"`
	RemainingDays            int                  `json:"remainingDays"`
	Deadline                 domain.DeadlineState `json:"deadline"`
	Status                   domain.GoalStatus    `json:"status"`
	Priority                 domain.GoalPriority  `json:"priority"`
	CreatedAt                time.Time            `json:"createdAt"`
	LastUpdatedAt            time.Time            `json:"lastUpdatedAt"`
}

// ToGoalResponse converts a domain.Goal to GoalResponse DTO, deriving the
// completion percentage, remaining amount and deadline classification as of
// now.
func ToGoalResponse(goal *domain.Goal, now time.Time) GoalResponse {
	remaining := goal.RemainingAmount()
	progress := goal.Progress()
	return GoalResponse{
		GoalID:                   goal.GoalID,
		UserID:                   goal.UserID,
		Name:                     goal.Name,
		Description:              goal.Description,
		TargetAmount:             goal.TargetAmount,
		CurrentAmount:            goal.CurrentAmount,
		RemainingAmount:          remaining,
		RemainingAmountDisplay:   utils.FormatCurrencyBRL(remaining),
		CompletionPercent:        progress,
		CompletionPercentDisplay: utils.FormatWithPrecision(progress, 2),
		StartDate:                goal.StartDate,
		TargetDate:               goal.TargetDate,
		TargetDateDisplay:        utils.FormatDate(&goal.TargetDate),
		RemainingDays:            goal.RemainingDays(now),
		Deadline:                 goal.Deadline(now),
		Status:                   goal.Status,
		Priority:                 goal.Priority,
		CreatedAt:                goal.CreatedAt,
		LastUpdatedAt:            goal.LastUpdatedAt,
	}
}

// ToListGoalResponse converts a slice of domain.Goal to response DTOs
func ToListGoalResponse(goals []domain.Goal, now time.Time) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		res[i] = ToGoalResponse(&goal, now)
	}
	return res
}

// ListGoalsParams defines query parameters for listing goals. At most one
// filter is applied; status wins over priority.
type ListGoalsParams struct {
	Limit    int    `form:"limit,default=20"`
	Offset   int    `form:"offset,default=0"`
	Status   string `form:"status" binding:"omitempty,oneof=IN_PROGRESS COMPLETED PAUSED CANCELED"`
	Priority string `form:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// ListGoalsResponse wraps the list of goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}
