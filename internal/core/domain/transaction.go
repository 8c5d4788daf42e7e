package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Recurrence describes how often a transaction repeats. Only the analytics
// engine consumes this, to derive the recurring fixed cost base.
type Recurrence string

const (
	RecurrenceUnique  Recurrence = "unique"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// Transaction represents a single recorded money movement.
// Amount is always a positive magnitude; the sign is carried by Type.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID, assigned at commit time)
	Amount        decimal.Decimal `json:"amount"`        // Positive magnitude; precise decimal type
	Date          time.Time       `json:"date"`          // Economic event date (day granularity)
	CategoryID    string          `json:"categoryID"`    // FK -> Category.CategoryID; may be empty until resolved
	Description   string          `json:"description"`   // Free text, user- or bank-provided
	Type          TransactionType `json:"type"`          // income or expense, never both
	Recurrence    Recurrence      `json:"recurrence"`    // Defaults to unique
	CreatedAt     time.Time       `json:"createdAt"`     // Bookkeeping provenance, distinct from Date

	// Import provenance. Set only for transactions created via the import
	// pipeline. OriginalDescription preserves the pre-edit text so callers
	// can flag user-edited imports.
	ImportBatchID       *string `json:"importBatchID,omitempty"`
	IsImported          bool    `json:"isImported,omitempty"`
	OriginalDescription *string `json:"originalDescription,omitempty"`
}

// SignedAmount returns the amount with income positive and expense negative.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// MonthlyEquivalent returns the monthly-equivalent cost of a recurring
// transaction: monthly amounts as-is, yearly amounts divided by 12,
// zero for unique transactions.
func (t Transaction) MonthlyEquivalent() decimal.Decimal {
	switch t.Recurrence {
	case RecurrenceMonthly:
		return t.Amount
	case RecurrenceYearly:
		return t.Amount.Div(decimal.NewFromInt(12))
	default:
		return decimal.Zero
	}
}
