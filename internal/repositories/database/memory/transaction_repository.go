package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/finman-app/finman_backend/internal/apperrors"
	"github.com/finman-app/finman_backend/internal/core/domain"
	portsrepo "github.com/finman-app/finman_backend/internal/core/ports/repositories"
)

type TransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]domain.Transaction
	order        []string // insertion order, newest first semantics handled by caller
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{transactions: make(map[string]domain.Transaction)}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transactions[transaction.TransactionID]; exists {
		return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, transaction.TransactionID)
	}
	r.transactions[transaction.TransactionID] = transaction
	r.order = append(r.order, transaction.TransactionID)
	return nil
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transaction, ok := r.transactions[transactionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &transaction, nil
}

func (r *TransactionRepository) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	transactions := []domain.Transaction{}
	for i := offset; i < len(r.order) && len(transactions) < limit; i++ {
		transactions = append(transactions, r.transactions[r.order[i]])
	}
	return transactions, nil
}

func (r *TransactionRepository) FindTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return r.filter(func(t domain.Transaction) bool { return t.AccountID == accountID }), nil
}

func (r *TransactionRepository) FindTransactionsByDirection(ctx context.Context, direction domain.TransactionDirection) ([]domain.Transaction, error) {
	return r.filter(func(t domain.Transaction) bool { return t.Direction == direction }), nil
}

func (r *TransactionRepository) FindTransactionsByCategory(ctx context.Context, category string) ([]domain.Transaction, error) {
	return r.filter(func(t domain.Transaction) bool { return t.Category == category }), nil
}

func (r *TransactionRepository) FindTransactionsByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error) {
	return r.filter(func(t domain.Transaction) bool { return t.Status == status }), nil
}

func (r *TransactionRepository) filter(keep func(domain.Transaction) bool) []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transactions := []domain.Transaction{}
	for _, id := range r.order {
		if t := r.transactions[id]; keep(t) {
			transactions = append(transactions, t)
		}
	}
	return transactions
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, transaction domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.transactions[transaction.TransactionID]; !ok {
		return apperrors.ErrNotFound
	}
	r.transactions[transaction.TransactionID] = transaction
	return nil
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.transactions[transactionID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.transactions, transactionID)
	for i, id := range r.order {
		if id == transactionID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
