package services_test

import (
	"context"
	"testing"

	"github.com/financasapp/financas_backend/internal/apperrors"
	"github.com/financasapp/financas_backend/internal/core/domain"
	portssvc "github.com/financasapp/financas_backend/internal/core/ports/services"
	"github.com/financasapp/financas_backend/internal/core/services"
	"github.com/financasapp/financas_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type backupFixture struct {
	txnRepo       *MockTransactionRepository
	patrimonyRepo *MockPatrimonyRepository
	categoryRepo  *MockCategoryRepository
	importRepo    *MockImportBatchRepository
	backupRepo    *MockBackupRepository
}

func newBackupFixture() backupFixture {
	return backupFixture{
		txnRepo:       new(MockTransactionRepository),
		patrimonyRepo: new(MockPatrimonyRepository),
		categoryRepo:  new(MockCategoryRepository),
		importRepo:    new(MockImportBatchRepository),
		backupRepo:    new(MockBackupRepository),
	}
}

func newBackupService(f backupFixture) portssvc.BackupSvcFacade {
	return services.NewBackupService(f.txnRepo, f.patrimonyRepo, f.categoryRepo, f.importRepo, f.backupRepo)
}

func TestBackupExport_DocumentShape(t *testing.T) {
	f := newBackupFixture()
	txns := []domain.Transaction{txnOn(day(2024, 1, 15), "45.90", domain.Expense)}
	f.txnRepo.On("ListTransactions", mock.Anything).Return(txns, nil)
	f.patrimonyRepo.On("ListPatrimonyTransactions", mock.Anything).Return([]domain.PatrimonyTransaction{}, nil)
	f.categoryRepo.On("ListCategories", mock.Anything).Return([]domain.Category{expenseCategory}, nil)
	f.importRepo.On("ListBatches", mock.Anything).Return([]domain.ImportBatch{}, nil)

	doc, err := newBackupService(f).Export(context.Background())

	require.NoError(t, err)
	assert.Equal(t, dto.BackupMarker, doc.App)
	assert.False(t, doc.ExportedAt.IsZero())
	assert.Len(t, doc.Transactions, 1)
	assert.Len(t, doc.Categories, 1)
}

func TestBackupImport_RejectsForeignDocument(t *testing.T) {
	f := newBackupFixture()

	err := newBackupService(f).Import(context.Background(), dto.BackupDocument{
		App:          "some-other-app",
		Transactions: []domain.Transaction{},
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	f.backupRepo.AssertNotCalled(t, "RestoreAll",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBackupImport_RejectsMissingTransactionList(t *testing.T) {
	f := newBackupFixture()

	err := newBackupService(f).Import(context.Background(), dto.BackupDocument{App: dto.BackupMarker})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestBackupImport_EmptyBackupIsValid(t *testing.T) {
	f := newBackupFixture()
	f.backupRepo.On("RestoreAll",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := newBackupService(f).Import(context.Background(), dto.BackupDocument{
		App:          dto.BackupMarker,
		Transactions: []domain.Transaction{},
	})

	require.NoError(t, err)
	f.backupRepo.AssertExpectations(t)
}
