package mapping

import (
	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/financasapp/financas_backend/internal/models"
)

// ToModelImportBatch converts a domain ImportBatch to a model ImportBatch
func ToModelImportBatch(d domain.ImportBatch) models.ImportBatch {
	return models.ImportBatch{
		BatchID:     d.BatchID,
		FileName:    d.FileName,
		Date:        d.Date,
		Count:       d.Count,
		TotalAmount: d.TotalAmount,
	}
}

// ToDomainImportBatch converts a model ImportBatch to a domain ImportBatch
func ToDomainImportBatch(m models.ImportBatch) domain.ImportBatch {
	return domain.ImportBatch{
		BatchID:     m.BatchID,
		FileName:    m.FileName,
		Date:        m.Date,
		Count:       m.Count,
		TotalAmount: m.TotalAmount,
	}
}

// ToDomainImportBatchSlice converts a slice of model ImportBatches to domain ImportBatches
func ToDomainImportBatchSlice(ms []models.ImportBatch) []domain.ImportBatch {
	ds := make([]domain.ImportBatch, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainImportBatch(m)
	}
	return ds
}
