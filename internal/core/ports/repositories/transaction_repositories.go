package repositories

import (
	"context"

	"github.com/finman-app/finman_backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of transactions, most recent first.
	ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error)

	// FindTransactionsByAccountID retrieves all transactions against an account.
	FindTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// FindTransactionsByDirection retrieves transactions filtered by inflow/outflow.
	FindTransactionsByDirection(ctx context.Context, direction domain.TransactionDirection) ([]domain.Transaction, error)

	// FindTransactionsByCategory retrieves transactions filtered by category.
	FindTransactionsByCategory(ctx context.Context, category string) ([]domain.Transaction, error)

	// FindTransactionsByStatus retrieves transactions filtered by status.
	FindTransactionsByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error

	// UpdateTransaction updates an existing transaction.
	UpdateTransaction(ctx context.Context, transaction domain.Transaction) error

	// DeleteTransaction removes a transaction permanently.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
