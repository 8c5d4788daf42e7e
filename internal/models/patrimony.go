package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PatrimonyTransaction is the database row shape for a protected-savings movement.
type PatrimonyTransaction struct {
	PatrimonyID string          `db:"patrimony_id"`
	Amount      decimal.Decimal `db:"amount"`
	Type        string          `db:"type"`
	Date        time.Time       `db:"date"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}
