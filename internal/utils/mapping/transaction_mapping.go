package mapping

import (
	"github.com/finman-app/finman_backend/internal/core/domain"
	"github.com/finman-app/finman_backend/internal/models"
)

// ToModelTransaction converts a domain.Transaction to models.Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		Direction:     string(d.Direction),
		Category:      d.Category,
		Description:   d.Description,
		Amount:        d.Amount,
		Status:        string(d.Status),
		PaymentMethod: d.PaymentMethod,
		OccurredAt:    d.OccurredAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a models.Transaction to domain.Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Direction:     domain.TransactionDirection(m.Direction),
		Category:      m.Category,
		Description:   m.Description,
		Amount:        m.Amount,
		Status:        domain.TransactionStatus(m.Status),
		PaymentMethod: m.PaymentMethod,
		OccurredAt:    m.OccurredAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of models.Transaction to domain.Transaction.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
