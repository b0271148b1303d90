package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a user row.
type User struct {
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	Email         string          `db:"email"`
	CPF           string          `db:"cpf"`
	Phone         string          `db:"phone"`
	Address       string          `db:"address"`
	MonthlyIncome decimal.Decimal `db:"monthly_income"`
	PasswordHash  string          `db:"password_hash"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"` // Nullable, soft delete
}
