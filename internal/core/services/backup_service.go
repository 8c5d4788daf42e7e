package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/financasapp/financas_backend/internal/apperrors"
	portsrepo "github.com/financasapp/financas_backend/internal/core/ports/repositories"
	portssvc "github.com/financasapp/financas_backend/internal/core/ports/services"
	"github.com/financasapp/financas_backend/internal/dto"
)

type backupService struct {
	BaseService
	txnRepo       portsrepo.TransactionReader
	patrimonyRepo portsrepo.PatrimonyRepositoryFacade
	categoryRepo  portsrepo.CategoryRepositoryFacade
	importRepo    portsrepo.ImportBatchRepositoryFacade
	backupRepo    portsrepo.BackupRepositoryFacade
}

var _ portssvc.BackupSvcFacade = (*backupService)(nil)

// NewBackupService creates the whole-store export/import service.
func NewBackupService(
	txnRepo portsrepo.TransactionReader,
	patrimonyRepo portsrepo.PatrimonyRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	importRepo portsrepo.ImportBatchRepositoryFacade,
	backupRepo portsrepo.BackupRepositoryFacade,
) portssvc.BackupSvcFacade {
	return &backupService{
		txnRepo:       txnRepo,
		patrimonyRepo: patrimonyRepo,
		categoryRepo:  categoryRepo,
		importRepo:    importRepo,
		backupRepo:    backupRepo,
	}
}

func (s *backupService) Export(ctx context.Context) (*dto.BackupDocument, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to export transactions")
		return nil, err
	}
	patrimony, err := s.patrimonyRepo.ListPatrimonyTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to export patrimony")
		return nil, err
	}
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to export categories")
		return nil, err
	}
	batches, err := s.importRepo.ListBatches(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to export import batches")
		return nil, err
	}

	doc := &dto.BackupDocument{
		Transactions: txns,
		Patrimony:    patrimony,
		Categories:   categories,
		Batches:      batches,
		ExportedAt:   time.Now().UTC(),
		App:          dto.BackupMarker,
	}
	s.LogInfo(ctx, "Backup exported",
		slog.Int("transactions", len(txns)),
		slog.Int("patrimony", len(patrimony)),
		slog.Int("batches", len(batches)))
	return doc, nil
}

func (s *backupService) Import(ctx context.Context, doc dto.BackupDocument) error {
	if doc.App != dto.BackupMarker {
		return fmt.Errorf("%w: document is not a recognized backup", apperrors.ErrValidation)
	}
	// A document without a transactions array is malformed, not merely empty;
	// an empty backup still carries [].
	if doc.Transactions == nil {
		return fmt.Errorf("%w: backup document is missing its transaction list", apperrors.ErrValidation)
	}

	if err := s.backupRepo.RestoreAll(ctx, doc.Transactions, doc.Patrimony, doc.Categories, doc.Batches); err != nil {
		s.LogError(ctx, err, "Failed to restore backup")
		return err
	}

	s.LogInfo(ctx, "Backup restored",
		slog.Int("transactions", len(doc.Transactions)),
		slog.Int("patrimony", len(doc.Patrimony)),
		slog.Int("batches", len(doc.Batches)))
	return nil
}
