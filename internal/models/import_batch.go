package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportBatch is the database row shape for one statement-import operation.
type ImportBatch struct {
	BatchID     string          `db:"batch_id"`
	FileName    string          `db:"file_name"`
	Date        time.Time       `db:"date"`
	Count       int             `db:"count"`
	TotalAmount decimal.Decimal `db:"total_amount"`
}
