package services

import (
	"context"

	"github.com/financasapp/financas_backend/internal/core/domain"
)

// CategorySvcFacade defines category lookup and classification operations.
type CategorySvcFacade interface {
	// ListCategories retrieves the seeded category set.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// GetCategoryByID retrieves a category by its identifier.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// SuggestCategory maps a free-text description to a category ID using
	// historical lookup plus the keyword dictionary. An empty string means
	// no suggestion, which is a valid and common outcome, not an error.
	SuggestCategory(ctx context.Context, description string) (string, error)
}
