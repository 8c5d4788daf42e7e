package services

import (
	"context"
	"time"

	"github.com/financasapp/financas_backend/internal/core/domain"
	portsrepo "github.com/financasapp/financas_backend/internal/core/ports/repositories"
	portssvc "github.com/financasapp/financas_backend/internal/core/ports/services"
)

type analyticsService struct {
	BaseService
	txnRepo       portsrepo.TransactionReader
	patrimonyRepo portsrepo.PatrimonyRepositoryFacade
	categoryRepo  portsrepo.CategoryRepositoryFacade
	now           func() time.Time
}

var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

// AnalyticsServiceOption configures the analytics service.
type AnalyticsServiceOption func(*analyticsService)

// WithClock overrides the time source. Used by tests to pin "today".
func WithClock(now func() time.Time) AnalyticsServiceOption {
	return func(s *analyticsService) {
		s.now = now
	}
}

// NewAnalyticsService creates the derived-figures service. All math lives in
// pure functions; this layer only fetches snapshots and hands them over.
func NewAnalyticsService(
	txnRepo portsrepo.TransactionReader,
	patrimonyRepo portsrepo.PatrimonyRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	opts ...AnalyticsServiceOption,
) portssvc.AnalyticsSvcFacade {
	s := &analyticsService{
		txnRepo:       txnRepo,
		patrimonyRepo: patrimonyRepo,
		categoryRepo:  categoryRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *analyticsService) snapshot(ctx context.Context) ([]domain.Transaction, []domain.PatrimonyTransaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for analytics")
		return nil, nil, err
	}
	patrimony, err := s.patrimonyRepo.ListPatrimonyTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load patrimony for analytics")
		return nil, nil, err
	}
	return txns, patrimony, nil
}

func (s *analyticsService) Summary(ctx context.Context, window domain.Window) (*domain.Summary, error) {
	txns, patrimony, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	windowed := FilterByWindow(txns, window, s.now())
	summary := ComputeSummary(windowed, patrimony)
	return &summary, nil
}

func (s *analyticsService) Forecast(ctx context.Context) (*domain.Forecast, error) {
	txns, patrimony, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	forecast := ForecastMonthEnd(txns, patrimony, s.now())
	return &forecast, nil
}

func (s *analyticsService) MonthlyComparison(ctx context.Context, buckets int) ([]domain.MonthlyBucket, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for monthly comparison")
		return nil, err
	}
	return MonthlyComparison(txns, buckets), nil
}

func (s *analyticsService) BalanceHistory(ctx context.Context, window domain.Window) ([]domain.BalancePoint, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for balance history")
		return nil, err
	}
	windowed := FilterByWindow(txns, window, s.now())
	return BalanceHistory(windowed), nil
}

func (s *analyticsService) CategoryDistribution(ctx context.Context, window domain.Window) ([]domain.CategorySlice, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for category distribution")
		return nil, err
	}
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load categories for category distribution")
		return nil, err
	}
	windowed := FilterByWindow(txns, window, s.now())
	return CategoryDistribution(windowed, categories), nil
}

func (s *analyticsService) CurrentMonthStats(ctx context.Context) (*domain.MonthStats, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for month stats")
		return nil, err
	}
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load categories for month stats")
		return nil, err
	}
	stats := CurrentMonthStats(txns, categories, s.now())
	return &stats, nil
}
