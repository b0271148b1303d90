package dto

import (
	"time"

	"github.com/finman-app/finman_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	AccountID     string                      `json:"accountID" binding:"required"`
	Direction     domain.TransactionDirection `json:"direction" binding:"required,oneof=INFLOW OUTFLOW"`
	Category      string                      `json:"category"`
	Description   string                      `json:"description"`
	Amount        decimal.Decimal             `json:"amount" binding:"required"`
	Status        domain.TransactionStatus    `json:"status" binding:"omitempty,oneof=PENDING COMPLETED CANCELED"`
	PaymentMethod string                      `json:"paymentMethod"`
	OccurredAt    *time.Time                  `json:"occurredAt"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
type UpdateTransactionRequest struct {
	Direction     *domain.TransactionDirection `json:"direction" binding:"omitempty,oneof=INFLOW OUTFLOW"`
	Category      *string                      `json:"category"`
	Description   *string                      `json:"description"`
	Amount        *decimal.Decimal             `json:"amount"`
	Status        *domain.TransactionStatus    `json:"status" binding:"omitempty,oneof=PENDING COMPLETED CANCELED"`
	PaymentMethod *string                      `json:"paymentMethod"`
	OccurredAt    *time.Time                   `json:"occurredAt"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                      `json:"transactionID"`
	AccountID     string                      `json:"accountID"`
	Direction     domain.TransactionDirection `json:"direction"`
	Category      string                      `json:"category"`
	Description   string                      `json:"description"`
	Amount        decimal.Decimal             `json:"amount"`
	Status        domain.TransactionStatus    `json:"status"`
	PaymentMethod string                      `json:"paymentMethod"`
	OccurredAt    *time.Time                  `json:"occurredAt,omitempty"`
	CreatedAt     time.Time                   `json:"createdAt"`
	LastUpdatedAt time.Time                   `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		Direction:     txn.Direction,
		Category:      txn.Category,
		Description:   txn.Description,
		Amount:        txn.Amount,
		Status:        txn.Status,
		PaymentMethod: txn.PaymentMethod,
		OccurredAt:    txn.OccurredAt,
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
// At most one filter is applied; accountID wins over direction, then
// category, then status.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=20"`
	Offset    int    `form:"offset,default=0"`
	AccountID string `form:"accountID"`
	Direction string `form:"direction" binding:"omitempty,oneof=INFLOW OUTFLOW"`
	Category  string `form:"category"`
	Status    string `form:"status" binding:"omitempty,oneof=PENDING COMPLETED CANCELED"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
