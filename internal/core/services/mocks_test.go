package services_test

import (
	"context"

	"github.com/financasapp/financas_backend/internal/core/domain"
	portsrepo "github.com/financasapp/financas_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsPage(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		token = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), token, args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// --- Mock PatrimonyRepository ---
type MockPatrimonyRepository struct {
	mock.Mock
}

var _ portsrepo.PatrimonyRepositoryFacade = (*MockPatrimonyRepository)(nil)

func (m *MockPatrimonyRepository) SavePatrimonyTransaction(ctx context.Context, movement domain.PatrimonyTransaction) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockPatrimonyRepository) ListPatrimonyTransactions(ctx context.Context) ([]domain.PatrimonyTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PatrimonyTransaction), args.Error(1)
}

func (m *MockPatrimonyRepository) DeletePatrimonyTransaction(ctx context.Context, patrimonyID string) error {
	args := m.Called(ctx, patrimonyID)
	return args.Error(0)
}

// --- Mock ImportBatchRepository ---
type MockImportBatchRepository struct {
	mock.Mock
}

var _ portsrepo.ImportBatchRepositoryFacade = (*MockImportBatchRepository)(nil)

func (m *MockImportBatchRepository) SaveBatch(ctx context.Context, batch domain.ImportBatch, transactions []domain.Transaction) error {
	args := m.Called(ctx, batch, transactions)
	return args.Error(0)
}

func (m *MockImportBatchRepository) DeleteBatch(ctx context.Context, batchID string) error {
	args := m.Called(ctx, batchID)
	return args.Error(0)
}

func (m *MockImportBatchRepository) FindBatchByID(ctx context.Context, batchID string) (*domain.ImportBatch, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportBatch), args.Error(1)
}

func (m *MockImportBatchRepository) ListBatches(ctx context.Context) ([]domain.ImportBatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImportBatch), args.Error(1)
}

// --- Mock BackupRepository ---
type MockBackupRepository struct {
	mock.Mock
}

var _ portsrepo.BackupRepositoryFacade = (*MockBackupRepository)(nil)

func (m *MockBackupRepository) RestoreAll(
	ctx context.Context,
	transactions []domain.Transaction,
	patrimony []domain.PatrimonyTransaction,
	categories []domain.Category,
	batches []domain.ImportBatch,
) error {
	args := m.Called(ctx, transactions, patrimony, categories, batches)
	return args.Error(0)
}
