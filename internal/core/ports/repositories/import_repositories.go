package repositories

import (
	"context"

	"github.com/financasapp/financas_backend/internal/core/domain"
)

// ImportBatchRepositoryFacade defines operations for import batches.
// SaveBatch and DeleteBatch are atomic: the caller never observes a state
// where the batch record and its transactions disagree.
type ImportBatchRepositoryFacade interface {
	// SaveBatch persists a batch record together with its committed
	// transactions inside a single database transaction.
	SaveBatch(ctx context.Context, batch domain.ImportBatch, transactions []domain.Transaction) error

	// DeleteBatch removes every transaction carrying the batch ID and the
	// batch record itself inside a single database transaction. Deleting a
	// nonexistent batch is a no-op.
	DeleteBatch(ctx context.Context, batchID string) error

	// FindBatchByID retrieves a batch by its identifier.
	FindBatchByID(ctx context.Context, batchID string) (*domain.ImportBatch, error)

	// ListBatches retrieves all import batches, most recent first.
	ListBatches(ctx context.Context) ([]domain.ImportBatch, error)
}
