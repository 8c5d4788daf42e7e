package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// trailingAverageMonths is how many completed months feed the historical
// monthly averages.
const trailingAverageMonths = 3

var ptBRMonthAbbrev = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func daysInMonth(t time.Time) int {
	return monthStart(t).AddDate(0, 1, -1).Day()
}

func maxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

func sameMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

// FilterByWindow returns the transactions inside the window, sorted ascending
// by date. The all-history window returns a copy of the input in its original
// order; otherwise transactions dated on or after the cutoff day are kept.
// When both Days and StartDate are set, StartDate wins.
func FilterByWindow(txns []domain.Transaction, window domain.Window, now time.Time) []domain.Transaction {
	if window.All() {
		out := make([]domain.Transaction, len(txns))
		copy(out, txns)
		return out
	}

	var cutoff time.Time
	if window.StartDate != nil {
		cutoff = truncateToDay(*window.StartDate)
	} else {
		cutoff = truncateToDay(now).AddDate(0, 0, -window.Days)
	}

	out := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if !t.Date.Before(cutoff) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// ComputeSummary aggregates a windowed transaction set. PatrimonyTotal always
// covers the full patrimony history regardless of the window the transactions
// were filtered with, so AvailableCash stays meaningful.
func ComputeSummary(txns []domain.Transaction, patrimony []domain.PatrimonyTransaction) domain.Summary {
	var income, expense, fixedBase decimal.Decimal
	for _, t := range txns {
		switch t.Type {
		case domain.Income:
			income = income.Add(t.Amount)
		case domain.Expense:
			expense = expense.Add(t.Amount)
			fixedBase = fixedBase.Add(t.MonthlyEquivalent())
		}
	}

	balance := income.Sub(expense)
	patrimonyTotal := domain.PatrimonyTotal(patrimony)

	savingsRate := 0.0
	if income.IsPositive() {
		savingsRate, _ = balance.Div(income).Mul(decimal.NewFromInt(100)).Float64()
	}

	return domain.Summary{
		TotalIncome:    income,
		TotalExpense:   expense,
		Balance:        balance,
		PatrimonyTotal: patrimonyTotal,
		AvailableCash:  balance.Sub(patrimonyTotal),
		SavingsRate:    savingsRate,
		FixedBase:      fixedBase,
	}
}

// averageMonthlyByType averages one transaction type over the trailing
// completed months, skipping months with no activity of that type so a short
// history is not diluted toward zero. Returns zero when every trailing month
// is empty.
func averageMonthlyByType(txns []domain.Transaction, txType domain.TransactionType, now time.Time) decimal.Decimal {
	var total decimal.Decimal
	active := 0
	for back := 1; back <= trailingAverageMonths; back++ {
		ref := monthStart(now).AddDate(0, -back, 0)
		var monthTotal decimal.Decimal
		for _, t := range txns {
			if t.Type == txType && sameMonth(t.Date, ref.Year(), ref.Month()) {
				monthTotal = monthTotal.Add(t.Amount)
			}
		}
		if monthTotal.IsPositive() {
			total = total.Add(monthTotal)
			active++
		}
	}
	if active == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(active)))
}

// AverageMonthlyExpenses is the trailing-month expense average used by both
// the forecast and the insight engine.
func AverageMonthlyExpenses(txns []domain.Transaction, now time.Time) decimal.Decimal {
	return averageMonthlyByType(txns, domain.Expense, now)
}

// monthRecurringExpense sums the recurring (non-unique) expense amounts dated
// inside the given calendar month.
func monthRecurringExpense(txns []domain.Transaction, year int, month time.Month) decimal.Decimal {
	var total decimal.Decimal
	for _, t := range txns {
		if t.Type == domain.Expense && t.Recurrence != domain.RecurrenceUnique && sameMonth(t.Date, year, month) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// ForecastMonthEnd projects the end-of-month balance. With enough history it
// splits the expense estimate into a recurring part (bills from last month not
// yet repeated) and a variable part (historical average minus what already
// happened); without history it falls back to extrapolating the current
// month's daily run rate and flags the result as low reliability.
//
// The projection starts from the full-history balance minus patrimony, i.e.
// the cash actually available, not the gross balance.
func ForecastMonthEnd(txns []domain.Transaction, patrimony []domain.PatrimonyTransaction, now time.Time) domain.Forecast {
	var fullIncome, fullExpense decimal.Decimal
	var realizedIncome, realizedExpense decimal.Decimal
	year, month := now.Year(), now.Month()
	for _, t := range txns {
		switch t.Type {
		case domain.Income:
			fullIncome = fullIncome.Add(t.Amount)
			if sameMonth(t.Date, year, month) {
				realizedIncome = realizedIncome.Add(t.Amount)
			}
		case domain.Expense:
			fullExpense = fullExpense.Add(t.Amount)
			if sameMonth(t.Date, year, month) {
				realizedExpense = realizedExpense.Add(t.Amount)
			}
		}
	}

	avgIncome := averageMonthlyByType(txns, domain.Income, now)
	avgExpense := averageMonthlyByType(txns, domain.Expense, now)

	remainingIncome := maxDecimal(decimal.Zero, avgIncome.Sub(realizedIncome))

	daysElapsed := now.Day()
	daysRemaining := daysInMonth(now) - daysElapsed

	var remainingExpense decimal.Decimal
	reliability := domain.ReliabilityLow
	if avgExpense.IsPositive() {
		reliability = domain.ReliabilityHigh

		lastRef := monthStart(now).AddDate(0, -1, 0)
		lastMonthRecurring := monthRecurringExpense(txns, lastRef.Year(), lastRef.Month())
		thisMonthRecurring := monthRecurringExpense(txns, year, month)

		pendingRecurring := maxDecimal(decimal.Zero, lastMonthRecurring.Sub(thisMonthRecurring))

		estimatedVariable := maxDecimal(decimal.Zero, avgExpense.Sub(lastMonthRecurring))
		realizedVariable := realizedExpense.Sub(thisMonthRecurring)
		pendingVariable := maxDecimal(decimal.Zero, estimatedVariable.Sub(realizedVariable))

		remainingExpense = pendingRecurring.Add(pendingVariable)
	} else if realizedExpense.IsPositive() && daysRemaining > 0 {
		dailyRate := realizedExpense.Div(decimal.NewFromInt(int64(daysElapsed)))
		remainingExpense = dailyRate.Mul(decimal.NewFromInt(int64(daysRemaining)))
	}

	availableCash := fullIncome.Sub(fullExpense).Sub(domain.PatrimonyTotal(patrimony))
	projected := availableCash.Add(remainingIncome).Sub(remainingExpense)

	return domain.Forecast{
		ProjectedBalance: projected,
		RemainingIncome:  remainingIncome,
		RemainingExpense: remainingExpense,
		IsPositive:       !projected.IsNegative(),
		Reliability:      reliability,
	}
}

// MonthLabel formats a calendar month the way the UI expects, e.g. "jan/2024".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s/%d", ptBRMonthAbbrev[month-1], year)
}

// MonthlyComparison buckets the full history per calendar month in
// chronological order and keeps the trailing limit buckets. Months without
// transactions produce no bucket.
func MonthlyComparison(txns []domain.Transaction, limit int) []domain.MonthlyBucket {
	type monthKey struct {
		year  int
		month time.Month
	}
	totals := make(map[monthKey]*domain.MonthlyBucket)
	for _, t := range txns {
		key := monthKey{t.Date.Year(), t.Date.Month()}
		bucket, ok := totals[key]
		if !ok {
			bucket = &domain.MonthlyBucket{
				Label: MonthLabel(key.year, key.month),
				Year:  key.year,
				Month: key.month,
			}
			totals[key] = bucket
		}
		switch t.Type {
		case domain.Income:
			bucket.Income = bucket.Income.Add(t.Amount)
		case domain.Expense:
			bucket.Expense = bucket.Expense.Add(t.Amount)
		}
	}

	buckets := make([]domain.MonthlyBucket, 0, len(totals))
	for _, b := range totals {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year < buckets[j].Year
		}
		return buckets[i].Month < buckets[j].Month
	})

	if limit > 0 && len(buckets) > limit {
		buckets = buckets[len(buckets)-limit:]
	}
	return buckets
}

// BalanceHistory folds a date-ascending transaction list into the sparse
// per-day running balance series.
func BalanceHistory(txns []domain.Transaction) []domain.BalancePoint {
	points := make([]domain.BalancePoint, 0, len(txns))
	var running decimal.Decimal
	for _, t := range txns {
		day := truncateToDay(t.Date)
		signed := t.SignedAmount()
		running = running.Add(signed)
		if n := len(points); n > 0 && points[n-1].Date.Equal(day) {
			points[n-1].Net = points[n-1].Net.Add(signed)
			points[n-1].Balance = running
			continue
		}
		points = append(points, domain.BalancePoint{Date: day, Net: signed, Balance: running})
	}
	return points
}

const (
	unknownCategoryName  = "Desconhecida"
	unknownCategoryColor = "#9e9e9e"
)

// CategoryDistribution sums expenses per category and resolves display
// metadata. Transactions pointing at a category that no longer exists are
// grouped under a synthetic unknown slice instead of being dropped. Slices
// come back largest first, with name as the tie-break so equal totals render
// in a stable order.
func CategoryDistribution(txns []domain.Transaction, categories []domain.Category) []domain.CategorySlice {
	byID := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.CategoryID] = c
	}

	totals := make(map[string]*domain.CategorySlice)
	for _, t := range txns {
		if t.Type != domain.Expense {
			continue
		}
		slice, ok := totals[t.CategoryID]
		if !ok {
			slice = &domain.CategorySlice{
				CategoryID: t.CategoryID,
				Name:       unknownCategoryName,
				Color:      unknownCategoryColor,
			}
			if c, found := byID[t.CategoryID]; found {
				slice.Name = c.Name
				slice.Color = c.Color
			}
			totals[t.CategoryID] = slice
		}
		slice.Total = slice.Total.Add(t.Amount)
	}

	slices := make([]domain.CategorySlice, 0, len(totals))
	for _, s := range totals {
		slices = append(slices, *s)
	}
	sort.Slice(slices, func(i, j int) bool {
		if !slices[i].Total.Equal(slices[j].Total) {
			return slices[i].Total.GreaterThan(slices[j].Total)
		}
		return slices[i].Name < slices[j].Name
	})
	return slices
}

// CurrentMonthStats derives the current calendar month's consumption ratios
// and its dominant expense category.
func CurrentMonthStats(txns []domain.Transaction, categories []domain.Category, now time.Time) domain.MonthStats {
	year, month := now.Year(), now.Month()
	lastRef := monthStart(now).AddDate(0, -1, 0)

	var thisIncome, thisExpense, lastExpense, fixedBase decimal.Decimal
	categoryTotals := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if t.Type == domain.Expense {
			fixedBase = fixedBase.Add(t.MonthlyEquivalent())
		}
		switch {
		case sameMonth(t.Date, year, month):
			if t.Type == domain.Income {
				thisIncome = thisIncome.Add(t.Amount)
			} else {
				thisExpense = thisExpense.Add(t.Amount)
				categoryTotals[t.CategoryID] = categoryTotals[t.CategoryID].Add(t.Amount)
			}
		case t.Type == domain.Expense && sameMonth(t.Date, lastRef.Year(), lastRef.Month()):
			lastExpense = lastExpense.Add(t.Amount)
		}
	}

	stats := domain.MonthStats{}
	hundred := decimal.NewFromInt(100)
	if thisIncome.IsPositive() {
		stats.ExpenseIncomeRatio, _ = thisExpense.Div(thisIncome).Mul(hundred).Float64()
		stats.FixedBaseIncomeRatio, _ = fixedBase.Div(thisIncome).Mul(hundred).Float64()
	}
	if lastExpense.IsPositive() {
		stats.ExpenseGrowth, _ = thisExpense.Sub(lastExpense).Div(lastExpense).Mul(hundred).Float64()
	}

	topID := ""
	var topTotal decimal.Decimal
	for id, total := range categoryTotals {
		if total.GreaterThan(topTotal) || (total.Equal(topTotal) && topID != "" && id < topID) {
			topID = id
			topTotal = total
		}
	}
	if topID != "" {
		stats.TopCategoryID = topID
		stats.TopCategoryTotal = topTotal
		stats.TopCategoryName = unknownCategoryName
		for _, c := range categories {
			if c.CategoryID == topID {
				stats.TopCategoryName = c.Name
				break
			}
		}
	}
	return stats
}
