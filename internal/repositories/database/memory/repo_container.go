package memory

import (
	portsrepo "github.com/finman-app/finman_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the map-backed repositories into a provider.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     NewAccountRepository(),
		TransactionRepo: NewTransactionRepository(),
		GoalRepo:        NewGoalRepository(),
		UserRepo:        NewUserRepository(),
	}
}
