package services_test

import (
	"context"
	"testing"

	"github.com/financasapp/financas_backend/internal/apperrors"
	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/financasapp/financas_backend/internal/core/services"
	"github.com/financasapp/financas_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var expenseCategory = domain.Category{CategoryID: "mercado", Name: "Mercado", Type: domain.CategoryExpense}

func TestCreateTransaction_Success(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("FindCategoryByID", mock.Anything, "mercado").Return(&expenseCategory, nil)
	txnRepo.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil)

	svc := services.NewTransactionService(txnRepo, categoryRepo)
	txn, err := svc.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Amount:      dec("45.90"),
		Date:        "2024-03-15",
		CategoryID:  "mercado",
		Description: "Compra da semana",
		Type:        "expense",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, txn.TransactionID)
	assert.Equal(t, domain.RecurrenceUnique, txn.Recurrence)
	assert.False(t, txn.IsImported)
	txnRepo.AssertExpectations(t)
}

func TestCreateTransaction_RejectsNonPositiveAmount(t *testing.T) {
	svc := services.NewTransactionService(new(MockTransactionRepository), new(MockCategoryRepository))

	_, err := svc.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Amount:      dec("-10"),
		Date:        "2024-03-15",
		CategoryID:  "mercado",
		Description: "x",
		Type:        "expense",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateTransaction_UnknownCategory(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("FindCategoryByID", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound)

	svc := services.NewTransactionService(txnRepo, categoryRepo)
	_, err := svc.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Amount:      dec("10"),
		Date:        "2024-03-15",
		CategoryID:  "nope",
		Description: "x",
		Type:        "expense",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	txnRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
}

func TestCreateTransaction_IncompatibleCategoryType(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("FindCategoryByID", mock.Anything, "mercado").Return(&expenseCategory, nil)

	svc := services.NewTransactionService(new(MockTransactionRepository), categoryRepo)
	_, err := svc.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Amount:      dec("10"),
		Date:        "2024-03-15",
		CategoryID:  "mercado",
		Description: "x",
		Type:        "income",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateTransaction_ImportedOnlyAcceptsTextEdits(t *testing.T) {
	batchID := "batch-1"
	original := "UBER TRIP"
	imported := domain.Transaction{
		TransactionID:       "t1",
		Amount:              dec("45.90"),
		Date:                day(2024, 1, 15),
		CategoryID:          "transporte",
		Description:         "UBER TRIP",
		Type:                domain.Expense,
		Recurrence:          domain.RecurrenceUnique,
		ImportBatchID:       &batchID,
		IsImported:          true,
		OriginalDescription: &original,
	}

	txnRepo := new(MockTransactionRepository)
	txnRepo.On("FindTransactionByID", mock.Anything, "t1").Return(&imported, nil)

	svc := services.NewTransactionService(txnRepo, new(MockCategoryRepository))

	newAmount := dec("99")
	_, err := svc.UpdateTransaction(context.Background(), "t1", dto.UpdateTransactionRequest{Amount: &newAmount})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	txnRepo.AssertNotCalled(t, "UpdateTransaction", mock.Anything, mock.Anything)
}

func TestUpdateTransaction_ImportedDescriptionEdit(t *testing.T) {
	batchID := "batch-1"
	original := "UBER TRIP"
	imported := domain.Transaction{
		TransactionID:       "t1",
		Amount:              dec("45.90"),
		Date:                day(2024, 1, 15),
		CategoryID:          "transporte",
		Description:         "UBER TRIP",
		Type:                domain.Expense,
		ImportBatchID:       &batchID,
		IsImported:          true,
		OriginalDescription: &original,
	}

	txnRepo := new(MockTransactionRepository)
	txnRepo.On("FindTransactionByID", mock.Anything, "t1").Return(&imported, nil)
	txnRepo.On("UpdateTransaction", mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Description == "Corrida para o aeroporto" && *txn.OriginalDescription == "UBER TRIP"
	})).Return(nil)

	svc := services.NewTransactionService(txnRepo, new(MockCategoryRepository))

	newDesc := "Corrida para o aeroporto"
	updated, err := svc.UpdateTransaction(context.Background(), "t1", dto.UpdateTransactionRequest{Description: &newDesc})

	require.NoError(t, err)
	assert.Equal(t, "Corrida para o aeroporto", updated.Description)
	// The original text survives so the edit stays visible.
	assert.Equal(t, "UBER TRIP", *updated.OriginalDescription)
	txnRepo.AssertExpectations(t)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	txnRepo.On("DeleteTransaction", mock.Anything, "missing").Return(apperrors.ErrNotFound)

	svc := services.NewTransactionService(txnRepo, new(MockCategoryRepository))

	assert.ErrorIs(t, svc.DeleteTransaction(context.Background(), "missing"), apperrors.ErrNotFound)
}
