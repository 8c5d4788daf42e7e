package mapping

import (
	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/financasapp/financas_backend/internal/models"
)

// ToModelPatrimonyTransaction converts a domain movement to its model row
func ToModelPatrimonyTransaction(d domain.PatrimonyTransaction) models.PatrimonyTransaction {
	return models.PatrimonyTransaction{
		PatrimonyID: d.PatrimonyID,
		Amount:      d.Amount,
		Type:        string(d.Type),
		Date:        d.Date,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainPatrimonyTransaction converts a model row to its domain movement
func ToDomainPatrimonyTransaction(m models.PatrimonyTransaction) domain.PatrimonyTransaction {
	return domain.PatrimonyTransaction{
		PatrimonyID: m.PatrimonyID,
		Amount:      m.Amount,
		Type:        domain.PatrimonyType(m.Type),
		Date:        m.Date,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainPatrimonyTransactionSlice converts a slice of model rows to domain movements
func ToDomainPatrimonyTransactionSlice(ms []models.PatrimonyTransaction) []domain.PatrimonyTransaction {
	ds := make([]domain.PatrimonyTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPatrimonyTransaction(m)
	}
	return ds
}
