package domain_test

import (
	"testing"
	"time"

	"github.com/finman-app/finman_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGoal_Progress(t *testing.T) {
	tests := []struct {
		name string
		goal domain.Goal
		want decimal.Decimal
	}{
		{
			name: "half way",
			goal: domain.Goal{
				TargetAmount:  decimal.NewFromInt(1000),
				CurrentAmount: decimal.NewFromInt(500),
			},
			want: decimal.NewFromInt(50),
		},
		{
			name: "nothing saved",
			goal: domain.Goal{
				TargetAmount:  decimal.NewFromInt(1000),
				CurrentAmount: decimal.Zero,
			},
			want: decimal.Zero,
		},
		{
			name: "overshoot is not clamped",
			goal: domain.Goal{
				TargetAmount:  decimal.NewFromInt(1000),
				CurrentAmount: decimal.NewFromInt(1500),
			},
			want: decimal.NewFromInt(150),
		},
		{
			name: "zero target yields zero",
			goal: domain.Goal{
				TargetAmount:  decimal.Zero,
				CurrentAmount: decimal.NewFromInt(500),
			},
			want: decimal.Zero,
		},
		{
			name: "fractional amounts",
			goal: domain.Goal{
				TargetAmount:  decimal.NewFromInt(200),
				CurrentAmount: decimal.NewFromFloat(70.10),
			},
			want: decimal.NewFromFloat(35.05),
		},
		{
			name: "negative current reads below zero",
			goal: domain.Goal{
				TargetAmount:  decimal.NewFromInt(100),
				CurrentAmount: decimal.NewFromInt(-50),
			},
			want: decimal.NewFromInt(-50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.goal.Progress()
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestGoal_RemainingAmount(t *testing.T) {
	goal := domain.Goal{
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromFloat(400.50),
	}
	assert.True(t, decimal.NewFromFloat(599.50).Equal(goal.RemainingAmount()))
}

func TestGoal_RemainingDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		targetDate time.Time
		wantDays   int
		wantState  domain.DeadlineState
	}{
		{
			name:       "seven days ahead",
			targetDate: now.Add(7 * 24 * time.Hour),
			wantDays:   7,
			wantState:  domain.DeadlineUpcoming,
		},
		{
			name:       "later the same day rounds up to one",
			targetDate: now.Add(6 * time.Hour),
			wantDays:   1,
			wantState:  domain.DeadlineUpcoming,
		},
		{
			name:       "earlier today",
			targetDate: now.Add(-6 * time.Hour),
			wantDays:   0,
			wantState:  domain.DeadlineToday,
		},
		{
			name:       "exactly now",
			targetDate: now,
			wantDays:   0,
			wantState:  domain.DeadlineToday,
		},
		{
			name:       "already past",
			targetDate: now.Add(-48 * time.Hour),
			wantDays:   -2,
			wantState:  domain.DeadlineExpired,
		},
		{
			name:       "partial day rounds up",
			targetDate: now.Add(25 * time.Hour),
			wantDays:   2,
			wantState:  domain.DeadlineUpcoming,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := domain.Goal{TargetDate: tt.targetDate}
			assert.Equal(t, tt.wantDays, goal.RemainingDays(now))
			assert.Equal(t, tt.wantState, goal.Deadline(now))
		})
	}
}
