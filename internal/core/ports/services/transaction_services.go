package services

import (
	"context"

	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/financasapp/financas_backend/internal/dto"
)

// TransactionSvcFacade defines the transaction lifecycle operations.
type TransactionSvcFacade interface {
	// CreateTransaction records a manual entry. Amounts must be positive.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransactionByID retrieves a single transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated page of transactions, most recent first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// UpdateTransaction edits an existing transaction. Imported transactions
	// only accept description and category edits.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}
