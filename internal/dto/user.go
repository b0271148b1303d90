package dto

import (
	"time"

	"github.com/finman-app/finman_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateUserRequest defines the data needed to register a user.
type CreateUserRequest struct {
	Name          string          `json:"name" binding:"required"`
	Email         string          `json:"email" binding:"required,email"`
	CPF           string          `json:"cpf" binding:"required"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
	Password      string          `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name          *string          `json:"name"`
	Phone         *string          `json:"phone"`
	Address       *string          `json:"address"`
	MonthlyIncome *decimal.Decimal `json:"monthlyIncome"`
}

// UserResponse defines the data returned for a user. The password hash never
// leaves the service layer.
type UserResponse struct {
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	CPF           string          `json:"cpf"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
	RegisteredAt  time.Time       `json:"registeredAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:        user.UserID,
		Name:          user.Name,
		Email:         user.Email,
		CPF:           user.CPF,
		Phone:         user.Phone,
		Address:       user.Address,
		MonthlyIncome: user.MonthlyIncome,
		RegisteredAt:  user.CreatedAt,
	}
}

// ListUsersParams defines query parameters for listing users. Email and CPF
// are exact-match lookups; email wins when both are given.
type ListUsersParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
	Email  string `form:"email" binding:"omitempty,email"`
	CPF    string `form:"cpf"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = ToUserResponse(&user)
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}
