package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal represents a savings goal row. There is deliberately no completion
// percentage column; the value is derived in the domain layer.
type Goal struct {
	GoalID        string          `db:"goal_id"`
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	StartDate     *time.Time      `db:"start_date"` // Nullable
	TargetDate    time.Time       `db:"target_date"`
	Status        string          `db:"status"`
	Priority      string          `db:"priority"`
	AuditFields
}
