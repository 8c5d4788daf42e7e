package repositories

import (
	"context"

	"github.com/financasapp/financas_backend/internal/core/domain"
)

// BackupRepositoryFacade restores a full exported document. The replace is
// atomic: on failure the previous state is left untouched.
type BackupRepositoryFacade interface {
	// RestoreAll replaces all four persisted lists inside a single database
	// transaction.
	RestoreAll(
		ctx context.Context,
		transactions []domain.Transaction,
		patrimony []domain.PatrimonyTransaction,
		categories []domain.Category,
		batches []domain.ImportBatch,
	) error
}
