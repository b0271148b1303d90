package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind mirrors domain.AccountKind for DB storage.
type AccountKind string

// Account represents a bank account row.
type Account struct {
	AccountID     string          `db:"account_id"`
	UserID        string          `db:"user_id"`
	BankName      string          `db:"bank_name"`
	BranchCode    string          `db:"branch_code"`
	AccountNumber string          `db:"account_number"`
	Kind          AccountKind     `db:"kind"`
	Balance       decimal.Decimal `db:"balance"`
	IsActive      bool            `db:"is_active"`
	OpenedAt      *time.Time      `db:"opened_at"` // Nullable
	AuditFields
}
