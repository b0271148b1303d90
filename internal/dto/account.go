package dto

import (
	"time"

	"github.com/finman-app/finman_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	UserID        string             `json:"userID" binding:"required"`
	BankName      string             `json:"bankName" binding:"required"`
	BranchCode    string             `json:"branchCode"`
	AccountNumber string             `json:"accountNumber" binding:"required"`
	Kind          domain.AccountKind `json:"kind" binding:"required,oneof=CHECKING SAVINGS INVESTMENT"`
	Balance       decimal.Decimal    `json:"balance"` // Opening balance; may be negative
	OpenedAt      *time.Time         `json:"openedAt"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	BankName      *string             `json:"bankName"`
	BranchCode    *string             `json:"branchCode"`
	AccountNumber *string             `json:"accountNumber"`
	Kind          *domain.AccountKind `json:"kind" binding:"omitempty,oneof=CHECKING SAVINGS INVESTMENT"`
	Balance       *decimal.Decimal    `json:"balance"`
	IsActive      *bool               `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	UserID        string             `json:"userID"`
	BankName      string             `json:"bankName"`
	BranchCode    string             `json:"branchCode"`
	AccountNumber string             `json:"accountNumber"`
	Kind          domain.AccountKind `json:"kind"`
	Balance       decimal.Decimal    `json:"balance"`
	IsActive      bool               `json:"isActive"`
	OpenedAt      *time.Time         `json:"openedAt,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		UserID:        acc.UserID,
		BankName:      acc.BankName,
		BranchCode:    acc.BranchCode,
		AccountNumber: acc.AccountNumber,
		Kind:          acc.Kind,
		Balance:       acc.Balance,
		IsActive:      acc.IsActive,
		OpenedAt:      acc.OpenedAt,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
