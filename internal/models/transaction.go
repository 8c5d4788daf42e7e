package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database row shape for a recorded money movement.
// Import provenance columns are NULL for manual entries.
type Transaction struct {
	TransactionID       string          `db:"transaction_id"`
	Amount              decimal.Decimal `db:"amount"`
	Date                time.Time       `db:"date"`
	CategoryID          string          `db:"category_id"`
	Description         string          `db:"description"`
	Type                string          `db:"type"`
	Recurrence          string          `db:"recurrence"`
	CreatedAt           time.Time       `db:"created_at"`
	ImportBatchID       *string         `db:"import_batch_id"`
	IsImported          bool            `db:"is_imported"`
	OriginalDescription *string         `db:"original_description"`
}
