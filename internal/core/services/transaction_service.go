package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finman-app/finman_backend/internal/apperrors"
	"github.com/finman-app/finman_backend/internal/core/domain"
	portsrepo "github.com/finman-app/finman_backend/internal/core/ports/repositories"
	portssvc "github.com/finman-app/finman_backend/internal/core/ports/services"
	"github.com/finman-app/finman_backend/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithAccountReader adds an account reader so transaction creation can verify
// the target account exists.
func WithAccountReader(repo portsrepo.AccountReader) TransactionServiceOption {
	return func(s *transactionService) {
		s.accountRepo = repo
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	if s.accountRepo != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, req.AccountID)
			}
			s.LogError(ctx, err, "Failed to verify account", slog.String("account_id", req.AccountID))
			return nil, err
		}
	}

	status := req.Status
	if status == "" {
		status = domain.TransactionPending
	}

	now := time.Now()
	transaction := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     req.AccountID,
		Direction:     req.Direction,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		Status:        status,
		PaymentMethod: req.PaymentMethod,
		OccurredAt:    req.OccurredAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := transaction.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.transactionRepo.SaveTransaction(ctx, transaction); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", transaction.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded successfully",
		slog.String("transaction_id", transaction.TransactionID),
		slog.String("account_id", transaction.AccountID))
	return &transaction, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return transaction, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListTransactions(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	return transactions, nil
}

func (s *transactionService) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindTransactionsByAccountID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for account", slog.String("account_id", accountID))
		return nil, err
	}
	return transactions, nil
}

func (s *transactionService) ListTransactionsByDirection(ctx context.Context, direction domain.TransactionDirection) ([]domain.Transaction, error) {
	if direction != domain.Inflow && direction != domain.Outflow {
		return nil, fmt.Errorf("%w: invalid direction %q", apperrors.ErrValidation, direction)
	}
	transactions, err := s.transactionRepo.FindTransactionsByDirection(ctx, direction)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions by direction", slog.String("direction", string(direction)))
		return nil, err
	}
	return transactions, nil
}

func (s *transactionService) ListTransactionsByCategory(ctx context.Context, category string) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindTransactionsByCategory(ctx, category)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions by category", slog.String("category", category))
		return nil, err
	}
	return transactions, nil
}

func (s *transactionService) ListTransactionsByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error) {
	switch status {
	case domain.TransactionPending, domain.TransactionCompleted, domain.TransactionCanceled:
	default:
		return nil, fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, status)
	}
	transactions, err := s.transactionRepo.FindTransactionsByStatus(ctx, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions by status", slog.String("status", string(status)))
		return nil, err
	}
	return transactions, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, updaterUserID string) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Direction != nil {
		transaction.Direction = *req.Direction
	}
	if req.Category != nil {
		transaction.Category = *req.Category
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.Amount != nil {
		transaction.Amount = *req.Amount
	}
	if req.Status != nil {
		transaction.Status = *req.Status
	}
	if req.PaymentMethod != nil {
		transaction.PaymentMethod = *req.PaymentMethod
	}
	if req.OccurredAt != nil {
		transaction.OccurredAt = req.OccurredAt
	}

	transaction.LastUpdatedAt = time.Now()
	transaction.LastUpdatedBy = updaterUserID

	if err := transaction.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, *transaction); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated successfully", slog.String("transaction_id", transactionID))
	return transaction, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, deleterUserID string) error {
	if _, err := s.transactionRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return err
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted successfully",
		slog.String("transaction_id", transactionID),
		slog.String("deleter_user_id", deleterUserID))
	return nil
}
