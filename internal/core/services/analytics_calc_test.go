package services_test

import (
	"testing"
	"time"

	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/financasapp/financas_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func txnOn(date time.Time, amount string, txType domain.TransactionType) domain.Transaction {
	return domain.Transaction{
		Amount:    dec(amount),
		Date:      date,
		Type:      txType,
		CreatedAt: date,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeSummary_BalanceIdentity(t *testing.T) {
	txns := []domain.Transaction{
		txnOn(day(2024, 3, 1), "5000", domain.Income),
		txnOn(day(2024, 3, 5), "1200.50", domain.Expense),
		txnOn(day(2024, 3, 10), "300", domain.Expense),
	}
	patrimony := []domain.PatrimonyTransaction{
		{Amount: dec("1000"), Type: domain.Deposit, Date: day(2024, 3, 2)},
		{Amount: dec("200"), Type: domain.Withdraw, Date: day(2024, 3, 8)},
	}

	summary := services.ComputeSummary(txns, patrimony)

	assert.True(t, summary.Balance.Equal(summary.TotalIncome.Sub(summary.TotalExpense)))
	assert.True(t, summary.AvailableCash.Add(summary.PatrimonyTotal).Equal(summary.Balance))
	assert.True(t, summary.PatrimonyTotal.Equal(dec("800")))
	assert.True(t, summary.Balance.Equal(dec("3499.50")))
}

func TestComputeSummary_ZeroIncomeSavingsRate(t *testing.T) {
	txns := []domain.Transaction{
		txnOn(day(2024, 3, 5), "100", domain.Expense),
	}

	summary := services.ComputeSummary(txns, nil)

	assert.Zero(t, summary.SavingsRate)
}

func TestComputeSummary_FixedBase(t *testing.T) {
	monthly := txnOn(day(2024, 3, 1), "900", domain.Expense)
	monthly.Recurrence = domain.RecurrenceMonthly
	yearly := txnOn(day(2024, 3, 2), "1200", domain.Expense)
	yearly.Recurrence = domain.RecurrenceYearly
	unique := txnOn(day(2024, 3, 3), "50", domain.Expense)
	unique.Recurrence = domain.RecurrenceUnique
	incomeRecurring := txnOn(day(2024, 3, 4), "5000", domain.Income)
	incomeRecurring.Recurrence = domain.RecurrenceMonthly

	summary := services.ComputeSummary([]domain.Transaction{monthly, yearly, unique, incomeRecurring}, nil)

	// 900 + 1200/12; recurring income does not enter the fixed cost base.
	assert.True(t, summary.FixedBase.Equal(dec("1000")), "got %s", summary.FixedBase)
}

func TestFilterByWindow_AllReturnsCopy(t *testing.T) {
	txns := []domain.Transaction{
		txnOn(day(2024, 3, 10), "1", domain.Expense),
		txnOn(day(2024, 1, 1), "2", domain.Expense),
	}

	out := services.FilterByWindow(txns, domain.Window{}, day(2024, 6, 1))

	require.Len(t, out, 2)
	// All-history passes the input through untouched, original order included.
	assert.Equal(t, txns, out)
	out[0].Amount = dec("99")
	assert.True(t, txns[0].Amount.Equal(dec("1")))
}

func TestFilterByWindow_Days(t *testing.T) {
	txns := []domain.Transaction{
		txnOn(day(2024, 5, 20), "1", domain.Expense),
		txnOn(day(2024, 5, 1), "2", domain.Expense),
		txnOn(day(2024, 4, 1), "3", domain.Expense),
	}

	out := services.FilterByWindow(txns, domain.Window{Days: 30}, day(2024, 5, 31))

	require.Len(t, out, 2)
	// Ascending by date.
	assert.Equal(t, day(2024, 5, 1), out[0].Date)
	assert.Equal(t, day(2024, 5, 20), out[1].Date)
}

func TestFilterByWindow_StartDateWins(t *testing.T) {
	txns := []domain.Transaction{
		txnOn(day(2024, 5, 20), "1", domain.Expense),
		txnOn(day(2024, 2, 1), "2", domain.Expense),
	}
	start := day(2024, 5, 1)

	out := services.FilterByWindow(txns, domain.Window{Days: 365, StartDate: &start}, day(2024, 5, 31))

	require.Len(t, out, 1)
	assert.Equal(t, day(2024, 5, 20), out[0].Date)
}

func TestFilterByWindow_Monotonicity(t *testing.T) {
	txns := []domain.Transaction{
		txnOn(day(2024, 5, 25), "1", domain.Expense),
		txnOn(day(2024, 4, 25), "2", domain.Expense),
		txnOn(day(2024, 1, 25), "3", domain.Expense),
	}
	now := day(2024, 5, 31)

	narrow := services.FilterByWindow(txns, domain.Window{Days: 10}, now)
	wide := services.FilterByWindow(txns, domain.Window{Days: 60}, now)
	all := services.FilterByWindow(txns, domain.Window{}, now)

	assert.LessOrEqual(t, len(narrow), len(wide))
	assert.LessOrEqual(t, len(wide), len(all))
}

func TestAverageMonthlyExpenses_SkipsEmptyMonths(t *testing.T) {
	now := day(2024, 6, 15)
	txns := []domain.Transaction{
		// May had expenses, April none, March had expenses.
		txnOn(day(2024, 5, 10), "3000", domain.Expense),
		txnOn(day(2024, 3, 10), "1000", domain.Expense),
	}

	avg := services.AverageMonthlyExpenses(txns, now)

	// (3000 + 1000) / 2 active months, not / 3.
	assert.True(t, avg.Equal(dec("2000")), "got %s", avg)
}

func TestAverageMonthlyExpenses_NoHistory(t *testing.T) {
	txns := []domain.Transaction{
		// Current-month expenses don't count toward the trailing average.
		txnOn(day(2024, 6, 10), "500", domain.Expense),
	}

	assert.True(t, services.AverageMonthlyExpenses(txns, day(2024, 6, 15)).IsZero())
}

func TestForecastMonthEnd_FallbackLowReliability(t *testing.T) {
	now := day(2024, 6, 10)
	txns := []domain.Transaction{
		txnOn(day(2024, 6, 2), "100", domain.Expense),
	}

	forecast := services.ForecastMonthEnd(txns, nil, now)

	assert.Equal(t, domain.ReliabilityLow, forecast.Reliability)
	// Daily rate 100/10 over the 20 remaining days of June.
	assert.True(t, forecast.RemainingExpense.Equal(dec("200")), "got %s", forecast.RemainingExpense)
}

func TestForecastMonthEnd_HybridPath(t *testing.T) {
	now := day(2024, 6, 10)
	rent := txnOn(day(2024, 5, 5), "1000", domain.Expense)
	rent.Recurrence = domain.RecurrenceMonthly
	txns := []domain.Transaction{
		rent,
		txnOn(day(2024, 5, 15), "500", domain.Expense), // variable
		txnOn(day(2024, 6, 3), "200", domain.Expense),  // this month, variable
	}

	forecast := services.ForecastMonthEnd(txns, nil, now)

	assert.Equal(t, domain.ReliabilityHigh, forecast.Reliability)
	// avgExpense 1500; recurring 1000 pending (rent not yet repeated),
	// variable estimate 500 minus 200 realized = 300 pending.
	assert.True(t, forecast.RemainingExpense.Equal(dec("1300")), "got %s", forecast.RemainingExpense)
}

func TestForecastMonthEnd_ClampsNegativePending(t *testing.T) {
	now := day(2024, 6, 20)
	rent := txnOn(day(2024, 5, 5), "1000", domain.Expense)
	rent.Recurrence = domain.RecurrenceMonthly
	rentJune := txnOn(day(2024, 6, 5), "1000", domain.Expense)
	rentJune.Recurrence = domain.RecurrenceMonthly
	txns := []domain.Transaction{
		rent,
		rentJune,
		// June variable spending already exceeds the historical variable estimate.
		txnOn(day(2024, 6, 10), "800", domain.Expense),
	}

	forecast := services.ForecastMonthEnd(txns, nil, now)

	assert.False(t, forecast.RemainingExpense.IsNegative())
	assert.True(t, forecast.RemainingExpense.IsZero(), "got %s", forecast.RemainingExpense)
}

func TestForecastMonthEnd_ProjectsFromAvailableCash(t *testing.T) {
	now := day(2024, 6, 10)
	txns := []domain.Transaction{
		txnOn(day(2024, 5, 1), "5000", domain.Income),
	}
	patrimony := []domain.PatrimonyTransaction{
		{Amount: dec("2000"), Type: domain.Deposit, Date: day(2024, 5, 2)},
	}

	forecast := services.ForecastMonthEnd(txns, patrimony, now)

	// Balance 5000 minus patrimony 2000, plus the 5000 income still expected
	// from the trailing average.
	assert.True(t, forecast.ProjectedBalance.Equal(dec("8000")), "got %s", forecast.ProjectedBalance)
	assert.True(t, forecast.IsPositive)
}

func TestMonthlyComparison_LabelsAndOrder(t *testing.T) {
	txns := []domain.Transaction{
		txnOn(day(2024, 2, 10), "100", domain.Expense),
		txnOn(day(2024, 1, 10), "200", domain.Income),
		txnOn(day(2024, 2, 20), "50", domain.Income),
	}

	buckets := services.MonthlyComparison(txns, 12)

	require.Len(t, buckets, 2)
	assert.Equal(t, "jan/2024", buckets[0].Label)
	assert.Equal(t, "fev/2024", buckets[1].Label)
	assert.True(t, buckets[1].Expense.Equal(dec("100")))
	assert.True(t, buckets[1].Income.Equal(dec("50")))
}

func TestMonthlyComparison_TruncatesToTrailing(t *testing.T) {
	txns := []domain.Transaction{
		txnOn(day(2024, 1, 1), "1", domain.Expense),
		txnOn(day(2024, 2, 1), "1", domain.Expense),
		txnOn(day(2024, 3, 1), "1", domain.Expense),
	}

	buckets := services.MonthlyComparison(txns, 2)

	require.Len(t, buckets, 2)
	assert.Equal(t, time.February, buckets[0].Month)
	assert.Equal(t, time.March, buckets[1].Month)
}

func TestBalanceHistory_SparseCumulative(t *testing.T) {
	txns := []domain.Transaction{
		txnOn(day(2024, 3, 1), "1000", domain.Income),
		txnOn(day(2024, 3, 1), "200", domain.Expense),
		// 2024-03-02 has no activity and must produce no point.
		txnOn(day(2024, 3, 3), "300", domain.Expense),
	}

	points := services.BalanceHistory(txns)

	require.Len(t, points, 2)
	assert.Equal(t, day(2024, 3, 1), points[0].Date)
	assert.True(t, points[0].Net.Equal(dec("800")))
	assert.True(t, points[0].Balance.Equal(dec("800")))
	assert.Equal(t, day(2024, 3, 3), points[1].Date)
	assert.True(t, points[1].Net.Equal(dec("-300")))
	assert.True(t, points[1].Balance.Equal(dec("500")))
}

func TestCategoryDistribution_SortsAndResolvesUnknown(t *testing.T) {
	categories := []domain.Category{
		{CategoryID: "mercado", Name: "Mercado", Color: "#ff9800"},
	}
	mercado := txnOn(day(2024, 3, 1), "100", domain.Expense)
	mercado.CategoryID = "mercado"
	ghost := txnOn(day(2024, 3, 2), "400", domain.Expense)
	ghost.CategoryID = "extinta"
	income := txnOn(day(2024, 3, 3), "9999", domain.Income)
	income.CategoryID = "salario"

	slices := services.CategoryDistribution([]domain.Transaction{mercado, ghost, income}, categories)

	require.Len(t, slices, 2)
	assert.Equal(t, "Desconhecida", slices[0].Name)
	assert.Equal(t, "#9e9e9e", slices[0].Color)
	assert.True(t, slices[0].Total.Equal(dec("400")))
	assert.Equal(t, "Mercado", slices[1].Name)
}

func TestCurrentMonthStats(t *testing.T) {
	now := day(2024, 6, 20)
	categories := []domain.Category{
		{CategoryID: "mercado", Name: "Mercado"},
		{CategoryID: "lazer", Name: "Lazer"},
	}
	salary := txnOn(day(2024, 6, 1), "4000", domain.Income)
	groceries := txnOn(day(2024, 6, 5), "600", domain.Expense)
	groceries.CategoryID = "mercado"
	fun := txnOn(day(2024, 6, 10), "400", domain.Expense)
	fun.CategoryID = "lazer"
	lastMonth := txnOn(day(2024, 5, 10), "500", domain.Expense)
	lastMonth.CategoryID = "lazer"

	stats := services.CurrentMonthStats([]domain.Transaction{salary, groceries, fun, lastMonth}, categories, now)

	assert.InDelta(t, 25.0, stats.ExpenseIncomeRatio, 0.001)
	assert.InDelta(t, 100.0, stats.ExpenseGrowth, 0.001) // 1000 vs 500
	assert.Equal(t, "mercado", stats.TopCategoryID)
	assert.Equal(t, "Mercado", stats.TopCategoryName)
	assert.True(t, stats.TopCategoryTotal.Equal(dec("600")))
}

func TestCurrentMonthStats_NoLastMonthGrowthIsZero(t *testing.T) {
	now := day(2024, 6, 20)
	spend := txnOn(day(2024, 6, 5), "100", domain.Expense)

	stats := services.CurrentMonthStats([]domain.Transaction{spend}, nil, now)

	assert.Zero(t, stats.ExpenseGrowth)
}
