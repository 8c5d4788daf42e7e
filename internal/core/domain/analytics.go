package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary aggregates a (possibly time-windowed) transaction set together with
// the full patrimony history.
type Summary struct {
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	Balance        decimal.Decimal `json:"balance"`        // TotalIncome - TotalExpense
	PatrimonyTotal decimal.Decimal `json:"patrimonyTotal"` // Deposits - withdrawals, full history
	AvailableCash  decimal.Decimal `json:"availableCash"`  // Balance - PatrimonyTotal
	SavingsRate    float64         `json:"savingsRate"`    // Percent; 0 when TotalIncome is 0
	FixedBase      decimal.Decimal `json:"fixedBase"`      // Monthly-equivalent recurring expense, windowed set
}

// ForecastReliability flags how much history backs a month-end projection, so
// presentation can soften confident-sounding language.
type ForecastReliability string

const (
	ReliabilityLow  ForecastReliability = "low"
	ReliabilityHigh ForecastReliability = "high"
)

// Forecast is the month-end projection blending historical run-rate with
// current-month realization.
type Forecast struct {
	ProjectedBalance decimal.Decimal     `json:"projectedBalance"`
	RemainingIncome  decimal.Decimal     `json:"remainingIncome"`
	RemainingExpense decimal.Decimal     `json:"remainingExpense"`
	IsPositive       bool                `json:"isPositive"`
	Reliability      ForecastReliability `json:"reliability"`
}

// MonthlyBucket is one calendar month's income/expense totals.
type MonthlyBucket struct {
	Label   string          `json:"label"` // Localized month/year, e.g. "jan/2024"
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// BalancePoint is one day's entry of the running-balance series. The series
// is sparse: days without activity produce no point.
type BalancePoint struct {
	Date    time.Time       `json:"date"`
	Net     decimal.Decimal `json:"net"`     // Signed net of the day
	Balance decimal.Decimal `json:"balance"` // Cumulative running sum
}

// CategorySlice is one category's share of the expense distribution.
type CategorySlice struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
}

// MonthStats carries the current calendar month's consumption figures.
type MonthStats struct {
	ExpenseIncomeRatio   float64         `json:"expenseIncomeRatio"`   // Percent of income consumed
	FixedBaseIncomeRatio float64         `json:"fixedBaseIncomeRatio"` // Percent of income locked in fixed costs
	ExpenseGrowth        float64         `json:"expenseGrowth"`        // Percent vs last month; 0 if last month had none
	TopCategoryID        string          `json:"topCategoryID"`
	TopCategoryName      string          `json:"topCategoryName"`
	TopCategoryTotal     decimal.Decimal `json:"topCategoryTotal"`
}
