package mapping

import (
	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/financasapp/financas_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:       d.TransactionID,
		Amount:              d.Amount,
		Date:                d.Date,
		CategoryID:          d.CategoryID,
		Description:         d.Description,
		Type:                string(d.Type),
		Recurrence:          string(d.Recurrence),
		CreatedAt:           d.CreatedAt,
		ImportBatchID:       d.ImportBatchID,
		IsImported:          d.IsImported,
		OriginalDescription: d.OriginalDescription,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:       m.TransactionID,
		Amount:              m.Amount,
		Date:                m.Date,
		CategoryID:          m.CategoryID,
		Description:         m.Description,
		Type:                domain.TransactionType(m.Type),
		Recurrence:          domain.Recurrence(m.Recurrence),
		CreatedAt:           m.CreatedAt,
		ImportBatchID:       m.ImportBatchID,
		IsImported:          m.IsImported,
		OriginalDescription: m.OriginalDescription,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
