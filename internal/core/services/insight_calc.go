package services

import (
	"fmt"
	"time"

	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Insight policy constants. The percentages are ratios against the trailing
// monthly expense average (or the stable daily slice of it).
var (
	overspendRatio      = decimal.NewFromFloat(1.20) // projection above this × average fires the warning
	smallCostShare      = decimal.NewFromFloat(0.12) // a "small" charge is at most this share of the stable daily average
	smallCostTotalShare = decimal.NewFromFloat(0.50) // accumulated small charges above this share of the stable daily average fire
	calmSpendingRatio   = decimal.NewFromFloat(1.10) // projection at or below this × average still counts as under control
	disciplineRatio     = decimal.NewFromFloat(0.85) // projection below this × average is disciplined spending
)

const (
	projectionMinDays = 2 // extrapolate only after this many elapsed days
	disciplineMinDays = 5 // disciplined-spending needs this many elapsed days
	smallCostMinCount = 4 // per-category repeat count for the small-cost rule
)

var (
	stableDailyFloor = decimal.NewFromInt(1)
	stableDailyGate  = decimal.NewFromInt(5)
	daysPerMonth     = decimal.NewFromInt(30)
)

// dailyTips is the non-data-driven fallback pool. One tip is served per
// calendar day.
var dailyTips = []string{
	"Revise suas assinaturas: cancelar uma que você não usa libera dinheiro todo mês.",
	"Antes de uma compra por impulso, espere 24 horas. Se ainda fizer sentido amanhã, compre.",
	"Guarde primeiro, gaste depois: separe uma parte da renda assim que ela entrar.",
	"Pequenos gastos diários somam muito no fim do mês. Anote tudo por uma semana e se surpreenda.",
	"Compare o preço de algo com as horas de trabalho que ele custa. Muda a perspectiva.",
	"Uma reserva de emergência de 3 a 6 meses de despesas traz tranquilidade real.",
	"Negocie contas fixas uma vez por ano: internet, celular e seguros quase sempre têm margem.",
	"Defina um teto semanal para delivery. O que passar do teto vira poupança.",
	"Dinheiro parado perde valor. Avalie aplicar o que não tem data para usar.",
	"Liste seus gastos por categoria no fim do mês. O maior vilão costuma surpreender.",
}

// monthExpenseProjection extrapolates the month's realized expense to a
// month-end figure from the daily run rate. In the first days of the month
// there is not enough signal, so the realized value is returned as-is.
func monthExpenseProjection(expenseSoFar decimal.Decimal, now time.Time) decimal.Decimal {
	daysElapsed := now.Day()
	if daysElapsed <= projectionMinDays {
		return expenseSoFar
	}
	return expenseSoFar.
		Div(decimal.NewFromInt(int64(daysElapsed))).
		Mul(decimal.NewFromInt(int64(daysInMonth(now))))
}

// SmartInsight picks a single observation about the user's current month. The
// rules form a strict priority cascade: the first one that fires wins and the
// rest are never evaluated. When nothing fires it serves the day's tip, which
// is stable within a calendar day.
func SmartInsight(txns []domain.Transaction, patrimony []domain.PatrimonyTransaction, now time.Time) domain.Insight {
	year, month := now.Year(), now.Month()

	var expenseSoFar decimal.Decimal
	var monthExpenses []domain.Transaction
	for _, t := range txns {
		if t.Type == domain.Expense && sameMonth(t.Date, year, month) {
			expenseSoFar = expenseSoFar.Add(t.Amount)
			monthExpenses = append(monthExpenses, t)
		}
	}

	avg := AverageMonthlyExpenses(txns, now)
	projection := monthExpenseProjection(expenseSoFar, now)
	hundred := decimal.NewFromInt(100)

	// Rule 1: overspend warning.
	if avg.IsPositive() && projection.GreaterThan(avg.Mul(overspendRatio)) {
		pctOver := projection.Div(avg).Mul(hundred).Sub(hundred).Round(0).IntPart()
		return domain.Insight{
			Text:   fmt.Sprintf("No ritmo atual, seus gastos deste mês devem fechar %d%% acima da sua média recente. Vale revisar as despesas.", pctOver),
			Status: domain.InsightWarning,
		}
	}

	// Rule 2: invisible recurring small costs.
	stableDaily := projection.Div(daysPerMonth)
	if avg.IsPositive() {
		stableDaily = avg.Div(daysPerMonth)
	}
	stableDaily = maxDecimal(stableDaily, stableDailyFloor)
	if stableDaily.GreaterThan(stableDailyGate) {
		smallLimit := stableDaily.Mul(smallCostShare)
		counts := make(map[string]int)
		totals := make(map[string]decimal.Decimal)
		for _, t := range monthExpenses {
			if t.Amount.LessThanOrEqual(smallLimit) {
				counts[t.CategoryID]++
				totals[t.CategoryID] = totals[t.CategoryID].Add(t.Amount)
			}
		}
		var accumulated decimal.Decimal
		for id, count := range counts {
			if count >= smallCostMinCount {
				accumulated = accumulated.Add(totals[id])
			}
		}
		if accumulated.GreaterThan(stableDaily.Mul(smallCostTotalShare)) {
			return domain.Insight{
				Text:   fmt.Sprintf("Pequenos gastos repetidos já somam R$ %s neste mês. Individualmente parecem inofensivos, mas juntos pesam.", accumulated.StringFixed(2)),
				Status: domain.InsightNeutral,
			}
		}
	}

	// Rule 3: patrimony growth with spending under control.
	depositThisMonth := false
	for _, p := range patrimony {
		if p.Type == domain.Deposit && sameMonth(p.Date, year, month) {
			depositThisMonth = true
			break
		}
	}
	if depositThisMonth && (avg.IsZero() || projection.LessThanOrEqual(avg.Mul(calmSpendingRatio))) {
		return domain.Insight{
			Text:   "Você guardou dinheiro no patrimônio este mês e manteve os gastos sob controle. Continue assim!",
			Status: domain.InsightGood,
		}
	}

	// Rule 4: disciplined spending.
	if avg.IsPositive() && projection.LessThan(avg.Mul(disciplineRatio)) && now.Day() >= disciplineMinDays {
		pctUnder := hundred.Sub(projection.Div(avg).Mul(hundred)).Round(0).IntPart()
		return domain.Insight{
			Text:   fmt.Sprintf("Seus gastos estão %d%% abaixo da sua média mensal. Ótimo ritmo!", pctUnder),
			Status: domain.InsightGood,
		}
	}

	return domain.Insight{Text: dailyTip(now), Status: domain.InsightNeutral}
}

// dailyTip returns the tip for the given calendar day. The index depends only
// on year and day-of-year, so repeated calls within a day agree.
func dailyTip(now time.Time) string {
	idx := (now.Year()*366 + now.YearDay()) % len(dailyTips)
	return dailyTips[idx]
}
