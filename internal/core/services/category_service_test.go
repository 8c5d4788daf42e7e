package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/financasapp/financas_backend/internal/apperrors"
	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/financasapp/financas_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListCategories_EmptyIsNotNil(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("ListCategories", mock.Anything).Return(nil, nil)

	svc := services.NewCategoryService(categoryRepo, new(MockTransactionRepository))
	categories, err := svc.ListCategories(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestGetCategoryByID_NotFound(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("FindCategoryByID", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound)

	svc := services.NewCategoryService(categoryRepo, new(MockTransactionRepository))
	_, err := svc.GetCategoryByID(context.Background(), "nope")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSuggestCategory_UsesHistory(t *testing.T) {
	history := []domain.Transaction{
		{Description: "Uber Eats", CategoryID: "alimentacao", Date: time.Now().UTC(), CreatedAt: time.Now().UTC()},
	}
	txnRepo := new(MockTransactionRepository)
	txnRepo.On("ListTransactions", mock.Anything).Return(history, nil)

	svc := services.NewCategoryService(new(MockCategoryRepository), txnRepo)
	suggestion, err := svc.SuggestCategory(context.Background(), "Uber")

	require.NoError(t, err)
	assert.Equal(t, "alimentacao", suggestion)
}

func TestSuggestCategory_HistoryWindowDropsOldHabits(t *testing.T) {
	old := time.Now().UTC().AddDate(-1, 0, 0)
	history := []domain.Transaction{
		{Description: "Uber Eats", CategoryID: "alimentacao", Date: old, CreatedAt: old},
	}
	txnRepo := new(MockTransactionRepository)
	txnRepo.On("ListTransactions", mock.Anything).Return(history, nil)

	svc := services.NewCategoryService(new(MockCategoryRepository), txnRepo,
		services.WithHistoryWindow(90*24*time.Hour))
	suggestion, err := svc.SuggestCategory(context.Background(), "Uber")

	require.NoError(t, err)
	// The stale habit is out of the window; the keyword dictionary takes over.
	assert.Equal(t, "transporte", suggestion)
}

func TestSuggestCategory_RepositoryError(t *testing.T) {
	txnRepo := new(MockTransactionRepository)
	txnRepo.On("ListTransactions", mock.Anything).Return(nil, assert.AnError)

	svc := services.NewCategoryService(new(MockCategoryRepository), txnRepo)
	_, err := svc.SuggestCategory(context.Background(), "Uber")

	assert.ErrorIs(t, err, assert.AnError)
}
