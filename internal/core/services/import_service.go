package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/financasapp/financas_backend/internal/apperrors"
	"github.com/financasapp/financas_backend/internal/core/domain"
	portsrepo "github.com/financasapp/financas_backend/internal/core/ports/repositories"
	portssvc "github.com/financasapp/financas_backend/internal/core/ports/services"
	"github.com/financasapp/financas_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type importService struct {
	BaseService
	importRepo portsrepo.ImportBatchRepositoryFacade
	txnRepo    portsrepo.TransactionReader
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

// NewImportService creates the statement-import pipeline service.
func NewImportService(importRepo portsrepo.ImportBatchRepositoryFacade, txnRepo portsrepo.TransactionReader) portssvc.ImportSvcFacade {
	return &importService{importRepo: importRepo, txnRepo: txnRepo}
}

func (s *importService) ParseStatement(ctx context.Context, fileName string, content []byte, csvMapping *dto.CSVColumnMapping) ([]domain.ParsedCandidate, error) {
	logger := s.GetLogger(ctx)

	// Classifier suggestions come from the committed history; loading it once
	// up front keeps the per-candidate suggestion a pure in-memory scan.
	history, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load history for import suggestions")
		return nil, err
	}
	suggest := func(description string) string {
		return SuggestCategoryID(description, history)
	}

	var candidates []domain.ParsedCandidate
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".ofx":
		candidates = parseOFX(logger, string(content), suggest)
	case ".csv":
		if csvMapping == nil {
			return nil, fmt.Errorf("%w: CSV files require a column mapping", apperrors.ErrValidation)
		}
		candidates = parseCSV(logger, string(content), *csvMapping, suggest)
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedFormat, filepath.Ext(fileName))
	}

	s.LogInfo(ctx, "Statement parsed",
		slog.String("file_name", fileName),
		slog.Int("candidates", len(candidates)))
	if candidates == nil {
		candidates = []domain.ParsedCandidate{}
	}
	return candidates, nil
}

func (s *importService) CommitBatch(ctx context.Context, req dto.CommitBatchRequest) (*domain.ImportBatch, error) {
	now := time.Now().UTC()
	batchID := uuid.NewString()

	txns := make([]domain.Transaction, 0, len(req.Candidates))
	var totalAmount decimal.Decimal
	for i, candidate := range req.Candidates {
		if !candidate.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: candidate %d has a non-positive amount", apperrors.ErrValidation, i)
		}
		date, err := time.Parse(dto.DateLayout, candidate.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: candidate %d has invalid date %q", apperrors.ErrValidation, i, candidate.Date)
		}

		categoryID := candidate.CategoryID
		if categoryID == "" {
			categoryID = domain.DefaultCategoryID
		}

		description := candidate.Description
		originalDescription := description
		batchRef := batchID
		txns = append(txns, domain.Transaction{
			TransactionID:       uuid.NewString(),
			Amount:              candidate.Amount,
			Date:                date,
			CategoryID:          categoryID,
			Description:         description,
			Type:                domain.TransactionType(candidate.Type),
			Recurrence:          domain.RecurrenceUnique,
			CreatedAt:           now,
			ImportBatchID:       &batchRef,
			IsImported:          true,
			OriginalDescription: &originalDescription,
		})
		totalAmount = totalAmount.Add(candidate.Amount)
	}

	batch := domain.ImportBatch{
		BatchID:     batchID,
		FileName:    req.FileName,
		Date:        now,
		Count:       len(txns),
		TotalAmount: totalAmount,
	}

	if err := s.importRepo.SaveBatch(ctx, batch, txns); err != nil {
		s.LogError(ctx, err, "Failed to commit import batch", slog.String("batch_id", batchID))
		return nil, err
	}

	s.LogInfo(ctx, "Import batch committed",
		slog.String("batch_id", batchID),
		slog.String("file_name", req.FileName),
		slog.Int("count", batch.Count))
	return &batch, nil
}

func (s *importService) ListBatches(ctx context.Context) ([]domain.ImportBatch, error) {
	batches, err := s.importRepo.ListBatches(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list import batches")
		return nil, err
	}
	if batches == nil {
		batches = []domain.ImportBatch{}
	}
	return batches, nil
}

func (s *importService) DeleteBatch(ctx context.Context, batchID string) error {
	if err := s.importRepo.DeleteBatch(ctx, batchID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete import batch", slog.String("batch_id", batchID))
		}
		return err
	}
	s.LogInfo(ctx, "Import batch deleted", slog.String("batch_id", batchID))
	return nil
}
