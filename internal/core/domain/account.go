package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind classifies a bank account.
type AccountKind string

const (
	Checking   AccountKind = "CHECKING"
	Savings    AccountKind = "SAVINGS"
	Investment AccountKind = "INVESTMENT"
)

// Account represents a bank account owned by a user.
// Balance may be negative; no non-negativity is enforced anywhere.
type Account struct {
	AccountID     string          `json:"accountID"`     // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> users.user_id (NON-NULL)
	BankName      string          `json:"bankName"`      // Display name of the bank
	BranchCode    string          `json:"branchCode"`    // Bank branch / agency code
	AccountNumber string          `json:"accountNumber"` // Account number at the bank
	Kind          AccountKind     `json:"kind"`          // CHECKING, SAVINGS or INVESTMENT
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"isActive"` // Soft delete / status flag
	OpenedAt      *time.Time      `json:"openedAt,omitempty"`
	AuditFields
}
