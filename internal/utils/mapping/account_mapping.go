package mapping

import (
	"github.com/finman-app/finman_backend/internal/core/domain"
	"github.com/finman-app/finman_backend/internal/models"
)

// ToModelAccount converts a domain.Account to models.Account for DB storage.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:     d.AccountID,
		UserID:        d.UserID,
		BankName:      d.BankName,
		BranchCode:    d.BranchCode,
		AccountNumber: d.AccountNumber,
		Kind:          models.AccountKind(d.Kind),
		Balance:       d.Balance,
		IsActive:      d.IsActive,
		OpenedAt:      d.OpenedAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a models.Account from the DB to domain.Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		UserID:        m.UserID,
		BankName:      m.BankName,
		BranchCode:    m.BranchCode,
		AccountNumber: m.AccountNumber,
		Kind:          domain.AccountKind(m.Kind),
		Balance:       m.Balance,
		IsActive:      m.IsActive,
		OpenedAt:      m.OpenedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of models.Account to domain.Account.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
