package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDirection indicates whether money entered or left an account.
type TransactionDirection string

const (
	Inflow  TransactionDirection = "INFLOW"
	Outflow TransactionDirection = "OUTFLOW"
)

// TransactionStatus is set by the caller and only ever read here; there is
// no status transition logic in this codebase.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionCanceled  TransactionStatus = "CANCELED"
)

// Transaction represents a single inflow/outflow event against an account.
type Transaction struct {
	TransactionID string               `json:"transactionID"` // Primary Key (UUID)
	AccountID     string               `json:"accountID"`     // FK -> accounts.account_id (NON-NULL)
	Direction     TransactionDirection `json:"direction"`
	Category      string               `json:"category"`    // Free text
	Description   string               `json:"description"` // Free text
	Amount        decimal.Decimal      `json:"amount"`      // Always >= 0; Direction carries the sign
	Status        TransactionStatus    `json:"status"`
	PaymentMethod string               `json:"paymentMethod"` // e.g. debit, credit, pix, cash
	OccurredAt    *time.Time           `json:"occurredAt,omitempty"`
	AuditFields
}

// Validate checks the structural invariants of a transaction.
func (t Transaction) Validate() error {
	if t.AccountID == "" {
		return fmt.Errorf("account ID is required")
	}
	if t.Direction != Inflow && t.Direction != Outflow {
		return fmt.Errorf("invalid direction %q", t.Direction)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}
	switch t.Status {
	case TransactionPending, TransactionCompleted, TransactionCanceled:
	default:
		return fmt.Errorf("invalid status %q", t.Status)
	}
	return nil
}
