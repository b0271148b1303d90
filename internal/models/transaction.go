package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a transaction row.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	Direction     string          `db:"direction"`
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	Status        string          `db:"status"`
	PaymentMethod string          `db:"payment_method"`
	OccurredAt    *time.Time      `db:"occurred_at"` // Nullable
	AuditFields
}
