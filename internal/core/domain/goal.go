package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus is an opaque lifecycle marker set through the API; the core
// never transitions it on its own.
type GoalStatus string

const (
	GoalInProgress GoalStatus = "IN_PROGRESS"
	GoalCompleted  GoalStatus = "COMPLETED"
	GoalPaused     GoalStatus = "PAUSED"
	GoalCanceled   GoalStatus = "CANCELED"
)

// GoalPriority ranks a goal for display purposes.
type GoalPriority string

const (
	PriorityLow    GoalPriority = "LOW"
	PriorityMedium GoalPriority = "MEDIUM"
	PriorityHigh   GoalPriority = "HIGH"
)

// DeadlineState classifies a goal's target date relative to "now".
type DeadlineState string

const (
	DeadlineExpired  DeadlineState = "EXPIRED"
	DeadlineToday    DeadlineState = "TODAY"
	DeadlineUpcoming DeadlineState = "UPCOMING"
)

// Goal represents a savings target with a current and target amount and a deadline.
// Completion percentage is never stored; it is derived via Progress so the stored
// and computed values cannot drift apart.
type Goal struct {
	GoalID        string          `json:"goalID"` // Primary Key (UUID)
	UserID        string          `json:"userID"` // FK -> users.user_id (NON-NULL)
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	TargetAmount  decimal.Decimal `json:"targetAmount"` // > 0, enforced at the service boundary
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	StartDate     *time.Time      `json:"startDate,omitempty"`
	TargetDate    time.Time       `json:"targetDate"`
	Status        GoalStatus      `json:"status"`
	Priority      GoalPriority    `json:"priority"`
	AuditFields
}

// hundred avoids re-allocating the multiplier on every Progress call.
var hundred = decimal.NewFromInt(100)

// Progress returns the completion percentage (current/target x 100).
// The value is deliberately unclamped: an overfunded goal reads above 100
// and a negative current amount reads below 0. A non-positive target yields
// 0 rather than dividing by zero; services reject such targets on write, so
// this only guards rows predating that validation.
func (g Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
}

// RemainingAmount returns how much is still missing to reach the target.
func (g Goal) RemainingAmount() decimal.Decimal {
	return g.TargetAmount.Sub(g.CurrentAmount)
}

// RemainingDays returns the whole-day difference between the target date and
// now, rounded up. Local wall clock, no time-zone normalization; this is a
// display convenience, not a scheduling primitive.
func (g Goal) RemainingDays(now time.Time) int {
	diff := g.TargetDate.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// Deadline classifies the target date: negative remaining days means the
// deadline expired, zero means it is today, positive means it is upcoming.
func (g Goal) Deadline(now time.Time) DeadlineState {
	days := g.RemainingDays(now)
	switch {
	case days < 0:
		return DeadlineExpired
	case days == 0:
		return DeadlineToday
	default:
		return DeadlineUpcoming
	}
}
