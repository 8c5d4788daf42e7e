package dto

import "github.com/financasapp/financas_backend/internal/core/domain"

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Color      string `json:"color,omitempty"`
}

// SuggestCategoryRequest asks the classifier for a category suggestion.
type SuggestCategoryRequest struct {
	Description string `json:"description" binding:"required"`
}

// SuggestCategoryResponse carries the suggestion; CategoryID is null when no
// suggestion exists, which is a common and valid outcome.
type SuggestCategoryResponse struct {
	CategoryID *string `json:"categoryID"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Type:       string(c.Type),
		Color:      c.Color,
	}
}

// ToCategoryResponses converts a slice of domain categories.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}
