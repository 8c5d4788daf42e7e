package services

import (
	"context"

	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/financasapp/financas_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// PatrimonySvcFacade defines operations on the protected-savings pool.
type PatrimonySvcFacade interface {
	// CreateMovement records a deposit or withdrawal.
	CreateMovement(ctx context.Context, req dto.CreatePatrimonyRequest) (*domain.PatrimonyTransaction, error)

	// ListMovements retrieves the full patrimony history, ascending by date.
	ListMovements(ctx context.Context) ([]domain.PatrimonyTransaction, error)

	// DeleteMovement removes a movement.
	DeleteMovement(ctx context.Context, patrimonyID string) error

	// Total returns deposits minus withdrawals over the full history.
	Total(ctx context.Context) (decimal.Decimal, error)
}
