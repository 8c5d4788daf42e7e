package dto

import (
	"time"

	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for day-granularity dates.
const DateLayout = "2006-01-02"

// CreateTransactionRequest defines the payload for manual transaction entry.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required,dateiso"`
	CategoryID  string          `json:"categoryID" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Recurrence  string          `json:"recurrence" binding:"omitempty,oneof=unique monthly yearly"`
}

// UpdateTransactionRequest defines the payload for editing a transaction.
// All fields are optional; imported transactions only accept description and
// category edits.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date" binding:"omitempty,dateiso"`
	CategoryID  *string          `json:"categoryID"`
	Description *string          `json:"description"`
	Recurrence  *string          `json:"recurrence" binding:"omitempty,oneof=unique monthly yearly"`
}

// ListTransactionsParams holds pagination parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID       string          `json:"transactionID"`
	Amount              decimal.Decimal `json:"amount"`
	Date                string          `json:"date"`
	CategoryID          string          `json:"categoryID"`
	Description         string          `json:"description"`
	Type                string          `json:"type"`
	Recurrence          string          `json:"recurrence"`
	CreatedAt           time.Time       `json:"createdAt"`
	ImportBatchID       *string         `json:"importBatchID,omitempty"`
	IsImported          bool            `json:"isImported,omitempty"`
	OriginalDescription *string         `json:"originalDescription,omitempty"`
	Edited              bool            `json:"edited,omitempty"` // Imported row whose description diverged from the original
}

// ListTransactionsResponse wraps a page of transactions with the next token.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	edited := t.IsImported && t.OriginalDescription != nil && *t.OriginalDescription != t.Description
	return TransactionResponse{
		TransactionID:       t.TransactionID,
		Amount:              t.Amount,
		Date:                t.Date.Format(DateLayout),
		CategoryID:          t.CategoryID,
		Description:         t.Description,
		Type:                string(t.Type),
		Recurrence:          string(t.Recurrence),
		CreatedAt:           t.CreatedAt,
		ImportBatchID:       t.ImportBatchID,
		IsImported:          t.IsImported,
		OriginalDescription: t.OriginalDescription,
		Edited:              edited,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
