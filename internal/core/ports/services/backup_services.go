package services

import (
	"context"

	"github.com/financasapp/financas_backend/internal/dto"
)

// BackupSvcFacade exports and restores the whole store as one JSON document.
type BackupSvcFacade interface {
	// Export bundles all four lists plus metadata.
	Export(ctx context.Context) (*dto.BackupDocument, error)

	// Import validates the document (marker field, array-typed transactions)
	// and replaces all four lists atomically. On validation failure the
	// current state is left unchanged.
	Import(ctx context.Context, doc dto.BackupDocument) error
}
