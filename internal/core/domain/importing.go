package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportBatch records one statement-import operation. It is the unit of undo:
// deleting a batch deletes every transaction carrying its ID, atomically.
type ImportBatch struct {
	BatchID     string          `json:"batchID"`
	FileName    string          `json:"fileName"`
	Date        time.Time       `json:"date"`  // Import timestamp
	Count       int             `json:"count"` // Number of transactions committed
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// ParsedCandidate is a normalized, not-yet-committed transaction produced by
// the statement parser. Candidates are reviewed (and possibly edited) before
// being committed into an ImportBatch.
type ParsedCandidate struct {
	TempID      string          `json:"tempID"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // Always >= 0
	Type        TransactionType `json:"type"`
	CategoryID  string          `json:"categoryID"` // Classifier suggestion, possibly empty
}
