package dto

import (
	"time"

	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CSVColumnMapping tells the CSV parser which column holds which field.
// The mapping is produced by a manual mapping step on the caller's side.
type CSVColumnMapping struct {
	DateIndex   int `json:"dateIndex" form:"dateIndex" binding:"min=0"`
	DescIndex   int `json:"descIndex" form:"descIndex" binding:"min=0"`
	AmountIndex int `json:"amountIndex" form:"amountIndex" binding:"min=0"`
}

// ParsedCandidateResponse is one reviewable row produced by the statement parser.
type ParsedCandidateResponse struct {
	TempID      string          `json:"tempID"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	CategoryID  string          `json:"categoryID"`
}

// ParseStatementResponse wraps the candidate list for review.
type ParseStatementResponse struct {
	FileName   string                    `json:"fileName"`
	Candidates []ParsedCandidateResponse `json:"candidates"`
}

// CandidateInput is one reviewed (possibly edited) row submitted for commit.
type CandidateInput struct {
	TempID      string          `json:"tempID"`
	Date        string          `json:"date" binding:"required,dateiso"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	CategoryID  string          `json:"categoryID"`
}

// CommitBatchRequest turns a reviewed candidate list into committed records.
type CommitBatchRequest struct {
	FileName   string           `json:"fileName" binding:"required"`
	Candidates []CandidateInput `json:"candidates" binding:"required,min=1,dive"`
}

// ImportBatchResponse defines the data returned for an import batch.
type ImportBatchResponse struct {
	BatchID     string          `json:"batchID"`
	FileName    string          `json:"fileName"`
	Date        time.Time       `json:"date"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// ToParsedCandidateResponse converts a domain candidate to its response DTO.
func ToParsedCandidateResponse(c *domain.ParsedCandidate) ParsedCandidateResponse {
	return ParsedCandidateResponse{
		TempID:      c.TempID,
		Date:        c.Date.Format(DateLayout),
		Description: c.Description,
		Amount:      c.Amount,
		Type:        string(c.Type),
		CategoryID:  c.CategoryID,
	}
}

// ToParsedCandidateResponses converts a slice of domain candidates.
func ToParsedCandidateResponses(candidates []domain.ParsedCandidate) []ParsedCandidateResponse {
	responses := make([]ParsedCandidateResponse, len(candidates))
	for i := range candidates {
		responses[i] = ToParsedCandidateResponse(&candidates[i])
	}
	return responses
}

// ToImportBatchResponse converts a domain batch to its response DTO.
func ToImportBatchResponse(b *domain.ImportBatch) ImportBatchResponse {
	return ImportBatchResponse{
		BatchID:     b.BatchID,
		FileName:    b.FileName,
		Date:        b.Date,
		Count:       b.Count,
		TotalAmount: b.TotalAmount,
	}
}

// ToImportBatchResponses converts a slice of domain batches.
func ToImportBatchResponses(batches []domain.ImportBatch) []ImportBatchResponse {
	responses := make([]ImportBatchResponse, len(batches))
	for i := range batches {
		responses[i] = ToImportBatchResponse(&batches[i])
	}
	return responses
}
