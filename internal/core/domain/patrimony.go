package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PatrimonyType indicates the direction of a patrimony movement.
type PatrimonyType string

const (
	Deposit  PatrimonyType = "deposit"
	Withdraw PatrimonyType = "withdraw"
)

// PatrimonyTransaction is a movement in the protected-savings pool.
// The pool is a user-designated mental separation, not a real account;
// a withdrawal exceeding the running total is allowed by the data model.
type PatrimonyTransaction struct {
	PatrimonyID string          `json:"patrimonyID"`
	Amount      decimal.Decimal `json:"amount"` // Positive magnitude
	Type        PatrimonyType   `json:"type"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// PatrimonyTotal returns deposits minus withdrawals over the full history.
// The result may be negative; it is never clamped here.
func PatrimonyTotal(movements []PatrimonyTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.Type == Deposit {
			total = total.Add(m.Amount)
		} else {
			total = total.Sub(m.Amount)
		}
	}
	return total
}
