package services_test

import (
	"testing"
	"time"

	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/financasapp/financas_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestSmartInsight_OverspendWarning(t *testing.T) {
	now := day(2024, 6, 10)
	txns := []domain.Transaction{
		txnOn(day(2024, 5, 10), "1000", domain.Expense),
		// 600 in 10 days projects to 1800, 80% over the 1000 average.
		txnOn(day(2024, 6, 5), "600", domain.Expense),
	}

	insight := services.SmartInsight(txns, nil, now)

	assert.Equal(t, domain.InsightWarning, insight.Status)
	assert.Contains(t, insight.Text, "80%")
}

func TestSmartInsight_FirstMatchingRuleWins(t *testing.T) {
	now := day(2024, 6, 10)
	txns := []domain.Transaction{
		txnOn(day(2024, 5, 10), "1000", domain.Expense),
		txnOn(day(2024, 6, 5), "600", domain.Expense),
	}
	// A deposit this month would satisfy the patrimony rule, but the
	// overspend warning fires first.
	patrimony := []domain.PatrimonyTransaction{
		{Amount: dec("500"), Type: domain.Deposit, Date: day(2024, 6, 3)},
	}

	insight := services.SmartInsight(txns, patrimony, now)

	assert.Equal(t, domain.InsightWarning, insight.Status)
}

func TestSmartInsight_EarlyMonthNoExtrapolation(t *testing.T) {
	now := day(2024, 6, 2)
	txns := []domain.Transaction{
		txnOn(day(2024, 5, 10), "1000", domain.Expense),
		// 600 on day 2 would project way over if extrapolated, but two days
		// is too early: the realized value (600) stays under 120% of 1000.
		txnOn(day(2024, 6, 1), "600", domain.Expense),
	}

	insight := services.SmartInsight(txns, nil, now)

	assert.NotEqual(t, domain.InsightWarning, insight.Status)
}

func TestSmartInsight_SmallRecurringCosts(t *testing.T) {
	now := day(2024, 6, 15)
	txns := []domain.Transaction{
		// Average 6000/month, stable daily 200, small limit 24.
		txnOn(day(2024, 5, 10), "6000", domain.Expense),
	}
	for d := 1; d <= 5; d++ {
		coffee := txnOn(day(2024, 6, d), "22", domain.Expense)
		coffee.CategoryID = "alimentacao"
		txns = append(txns, coffee)
	}

	insight := services.SmartInsight(txns, nil, now)

	assert.Equal(t, domain.InsightNeutral, insight.Status)
	assert.Contains(t, insight.Text, "110.00")
}

func TestSmartInsight_PatrimonyGrowth(t *testing.T) {
	now := day(2024, 6, 10)
	txns := []domain.Transaction{
		txnOn(day(2024, 5, 10), "1000", domain.Expense),
		txnOn(day(2024, 6, 5), "300", domain.Expense),
	}
	patrimony := []domain.PatrimonyTransaction{
		{Amount: dec("500"), Type: domain.Deposit, Date: day(2024, 6, 3)},
	}

	insight := services.SmartInsight(txns, patrimony, now)

	assert.Equal(t, domain.InsightGood, insight.Status)
	assert.Contains(t, insight.Text, "patrimônio")
}

func TestSmartInsight_WithdrawDoesNotCount(t *testing.T) {
	now := day(2024, 6, 10)
	patrimony := []domain.PatrimonyTransaction{
		{Amount: dec("500"), Type: domain.Withdraw, Date: day(2024, 6, 3)},
	}

	insight := services.SmartInsight(nil, patrimony, now)

	// No deposit, no data: falls through to the daily tip.
	assert.Equal(t, domain.InsightNeutral, insight.Status)
}

func TestSmartInsight_DisciplinedSpending(t *testing.T) {
	now := day(2024, 6, 10)
	txns := []domain.Transaction{
		txnOn(day(2024, 5, 10), "3000", domain.Expense),
		// 300 in 10 days projects to 900, 70% under the 3000 average.
		txnOn(day(2024, 6, 5), "300", domain.Expense),
	}

	insight := services.SmartInsight(txns, nil, now)

	assert.Equal(t, domain.InsightGood, insight.Status)
	assert.Contains(t, insight.Text, "70%")
}

func TestSmartInsight_DailyTipStableWithinDay(t *testing.T) {
	now := day(2024, 6, 10)

	first := services.SmartInsight(nil, nil, now)
	second := services.SmartInsight(nil, nil, now.Add(5*time.Hour))

	assert.Equal(t, domain.InsightNeutral, first.Status)
	assert.NotEmpty(t, first.Text)
	assert.Equal(t, first.Text, second.Text)
}
