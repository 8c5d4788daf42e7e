package services

import (
	"context"

	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/financasapp/financas_backend/internal/dto"
)

// ImportSvcFacade defines the statement-import pipeline: parse, commit, undo.
type ImportSvcFacade interface {
	// ParseStatement converts raw file content into reviewable candidates.
	// Dispatch is by file extension (.ofx or .csv); csvMapping is required for
	// CSV files and ignored for OFX. An unsupported extension returns
	// apperrors.ErrUnsupportedFormat.
	ParseStatement(ctx context.Context, fileName string, content []byte, csvMapping *dto.CSVColumnMapping) ([]domain.ParsedCandidate, error)

	// CommitBatch turns the reviewed candidate list into committed records
	// plus one batch record, atomically.
	CommitBatch(ctx context.Context, req dto.CommitBatchRequest) (*domain.ImportBatch, error)

	// ListBatches retrieves all import batches, most recent first.
	ListBatches(ctx context.Context) ([]domain.ImportBatch, error)

	// DeleteBatch undoes one import: removes its transactions and the batch
	// record as a single logical operation. Unknown IDs are a no-op.
	DeleteBatch(ctx context.Context, batchID string) error
}
