package services

import (
	"context"

	"github.com/finman-app/finman_backend/internal/core/domain"
)

// DashboardSvcFacade assembles the dashboard for a user.
type DashboardSvcFacade interface {
	// GetDashboard loads the user's accounts, every account's transactions
	// and the user's goals, then aggregates them. Individual load failures are
	// reported inside the returned DashboardLoad instead of aborting the
	// whole dashboard; the error return is reserved for total failure.
	GetDashboard(ctx context.Context, userID string, recentLimit int) (*domain.DashboardLoad, error)
}
