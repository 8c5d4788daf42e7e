package dto

import (
	"time"

	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePatrimonyRequest defines the payload for a patrimony movement.
type CreatePatrimonyRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=deposit withdraw"`
	Date        string          `json:"date" binding:"required,dateiso"`
	Description string          `json:"description"`
}

// PatrimonyResponse defines the data returned for a patrimony movement.
type PatrimonyResponse struct {
	PatrimonyID string          `json:"patrimonyID"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListPatrimonyResponse wraps the full patrimony history with its running total.
type ListPatrimonyResponse struct {
	Movements []PatrimonyResponse `json:"movements"`
	Total     decimal.Decimal     `json:"total"`
}

// ToPatrimonyResponse converts a domain movement to its response DTO.
func ToPatrimonyResponse(m *domain.PatrimonyTransaction) PatrimonyResponse {
	return PatrimonyResponse{
		PatrimonyID: m.PatrimonyID,
		Amount:      m.Amount,
		Type:        string(m.Type),
		Date:        m.Date.Format(DateLayout),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// ToPatrimonyResponses converts a slice of domain movements.
func ToPatrimonyResponses(movements []domain.PatrimonyTransaction) []PatrimonyResponse {
	responses := make([]PatrimonyResponse, len(movements))
	for i := range movements {
		responses[i] = ToPatrimonyResponse(&movements[i])
	}
	return responses
}
