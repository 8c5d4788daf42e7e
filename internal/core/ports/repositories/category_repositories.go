package repositories

import (
	"context"

	"github.com/financasapp/financas_backend/internal/core/domain"
)

// CategoryRepositoryFacade defines operations for the mostly-static category
// reference set. Categories are seeded by migrations and immutable at runtime.
type CategoryRepositoryFacade interface {
	// FindCategoryByID retrieves a category by its identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
