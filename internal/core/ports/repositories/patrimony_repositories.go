package repositories

import (
	"context"

	"github.com/financasapp/financas_backend/internal/core/domain"
)

// PatrimonyRepositoryFacade defines operations for patrimony movements.
type PatrimonyRepositoryFacade interface {
	// SavePatrimonyTransaction persists a new patrimony movement.
	SavePatrimonyTransaction(ctx context.Context, movement domain.PatrimonyTransaction) error

	// ListPatrimonyTransactions retrieves the full patrimony history, ascending by date.
	ListPatrimonyTransactions(ctx context.Context) ([]domain.PatrimonyTransaction, error)

	// DeletePatrimonyTransaction removes a movement by ID.
	DeletePatrimonyTransaction(ctx context.Context, patrimonyID string) error
}
