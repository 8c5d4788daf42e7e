package services

import (
	"context"

	"github.com/financasapp/financas_backend/internal/core/domain"
)

// AnalyticsSvcFacade computes derived figures over the committed records.
// All computations are pure over snapshots; repeated calls on unchanged data
// yield identical results.
type AnalyticsSvcFacade interface {
	// Summary aggregates the windowed transaction set and full patrimony history.
	Summary(ctx context.Context, window domain.Window) (*domain.Summary, error)

	// Forecast projects the month-end balance.
	Forecast(ctx context.Context) (*domain.Forecast, error)

	// MonthlyComparison groups income/expense per calendar month, returning
	// at most the trailing `buckets` months in chronological order.
	MonthlyComparison(ctx context.Context, buckets int) ([]domain.MonthlyBucket, error)

	// BalanceHistory returns the sparse cumulative running-balance series.
	BalanceHistory(ctx context.Context, window domain.Window) ([]domain.BalancePoint, error)

	// CategoryDistribution sums expenses by category, descending by total.
	CategoryDistribution(ctx context.Context, window domain.Window) ([]domain.CategorySlice, error)

	// CurrentMonthStats returns the current month's consumption figures.
	CurrentMonthStats(ctx context.Context) (*domain.MonthStats, error)
}
