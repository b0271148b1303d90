package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a registered user of the application.
type User struct {
	UserID        string          `json:"userID"` // Primary Key (UUID)
	Name          string          `json:"name"`
	Email         string          `json:"email"` // Unique
	CPF           string          `json:"cpf"`   // Brazilian tax ID, unique
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
	PasswordHash  string          `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
