package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/financasapp/financas_backend/internal/apperrors"
	"github.com/financasapp/financas_backend/internal/core/domain"
	portsrepo "github.com/financasapp/financas_backend/internal/core/ports/repositories"
	portssvc "github.com/financasapp/financas_backend/internal/core/ports/services"
)

type categoryService struct {
	BaseService
	categoryRepo  portsrepo.CategoryRepositoryFacade
	txnRepo       portsrepo.TransactionReader
	historyWindow time.Duration
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CategoryServiceOption configures the category service.
type CategoryServiceOption func(*categoryService)

// WithHistoryWindow bounds how far back the classifier's historical lookup
// reaches. Zero or negative means unbounded.
func WithHistoryWindow(window time.Duration) CategoryServiceOption {
	return func(s *categoryService) {
		s.historyWindow = window
	}
}

// NewCategoryService creates the category lookup and classification service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, txnRepo portsrepo.TransactionReader, opts ...CategoryServiceOption) portssvc.CategorySvcFacade {
	s := &categoryService{categoryRepo: categoryRepo, txnRepo: txnRepo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category", slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) SuggestCategory(ctx context.Context, description string) (string, error) {
	history, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load history for category suggestion")
		return "", err
	}

	if s.historyWindow > 0 {
		cutoff := time.Now().UTC().Add(-s.historyWindow)
		bounded := history[:0]
		for _, t := range history {
			if !t.Date.Before(cutoff) {
				bounded = append(bounded, t)
			}
		}
		history = bounded
	}

	suggestion := SuggestCategoryID(description, history)
	s.LogDebug(ctx, "Category suggestion computed",
		slog.String("suggestion", suggestion),
		slog.Int("history_size", len(history)))
	return suggestion, nil
}
