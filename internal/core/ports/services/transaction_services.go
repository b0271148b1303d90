package services

import (
	"context"

	"github.com/finman-app/finman_backend/internal/core/domain"
	"github.com/finman-app/finman_backend/internal/dto"
)

// TransactionReaderSvc defines read operations offered by the transaction service.
type TransactionReaderSvc interface {
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
	ListTransactionsByDirection(ctx context.Context, direction domain.TransactionDirection) ([]domain.Transaction, error)
	ListTransactionsByCategory(ctx context.Context, category string) ([]domain.Transaction, error)
	ListTransactionsByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations offered by the transaction service.
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, updaterUserID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string, deleterUserID string) error
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
