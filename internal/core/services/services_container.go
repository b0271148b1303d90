package services

import (
	portsrepo "github.com/finman-app/finman_backend/internal/core/ports/repositories"
	portssvc "github.com/finman-app/finman_backend/internal/core/ports/services"
	"github.com/finman-app/finman_backend/internal/platform/config"
)

// NewServiceContainer creates and initializes all application services using
// the provided repositories.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo, WithUserReader(repos.UserRepo))
	transactionSvc := NewTransactionService(repos.TransactionRepo, WithAccountReader(repos.AccountRepo))
	goalSvc := NewGoalService(repos.GoalRepo, WithGoalUserReader(repos.UserRepo))
	userSvc := NewUserService(repos.UserRepo)
	dashboardSvc := NewDashboardService(repos.AccountRepo, repos.TransactionRepo, repos.GoalRepo)

	return &portssvc.ServiceContainer{
		Account:     accountSvc,
		Transaction: transactionSvc,
		Goal:        goalSvc,
		User:        userSvc,
		Dashboard:   dashboardSvc,
	}
}
