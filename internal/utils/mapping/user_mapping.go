package mapping

import (
	"github.com/finman-app/finman_backend/internal/core/domain"
	"github.com/finman-app/finman_backend/internal/models"
)

// ToModelUser converts a domain.User to models.User.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:        d.UserID,
		Name:          d.Name,
		Email:         d.Email,
		CPF:           d.CPF,
		Phone:         d.Phone,
		Address:       d.Address,
		MonthlyIncome: d.MonthlyIncome,
		PasswordHash:  d.PasswordHash,
		AuditFields:   ToModelAuditFields(d.AuditFields),
		DeletedAt:     d.DeletedAt,
	}
}

// ToDomainUser converts a models.User to domain.User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:        m.UserID,
		Name:          m.Name,
		Email:         m.Email,
		CPF:           m.CPF,
		Phone:         m.Phone,
		Address:       m.Address,
		MonthlyIncome: m.MonthlyIncome,
		PasswordHash:  m.PasswordHash,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		DeletedAt:     m.DeletedAt,
	}
}

// ToDomainUserSlice converts a slice of models.User to domain.User.
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
