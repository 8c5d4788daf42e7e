package services

import (
	"context"
	"time"

	"github.com/financasapp/financas_backend/internal/core/domain"
	portsrepo "github.com/financasapp/financas_backend/internal/core/ports/repositories"
	portssvc "github.com/financasapp/financas_backend/internal/core/ports/services"
)

type insightService struct {
	BaseService
	txnRepo       portsrepo.TransactionReader
	patrimonyRepo portsrepo.PatrimonyRepositoryFacade
	now           func() time.Time
}

var _ portssvc.InsightSvcFacade = (*insightService)(nil)

// InsightServiceOption configures the insight service.
type InsightServiceOption func(*insightService)

// WithInsightClock overrides the time source. Used by tests to pin "today".
func WithInsightClock(now func() time.Time) InsightServiceOption {
	return func(s *insightService) {
		s.now = now
	}
}

// NewInsightService creates the rule-cascade observation service.
func NewInsightService(txnRepo portsrepo.TransactionReader, patrimonyRepo portsrepo.PatrimonyRepositoryFacade, opts ...InsightServiceOption) portssvc.InsightSvcFacade {
	s := &insightService{
		txnRepo:       txnRepo,
		patrimonyRepo: patrimonyRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *insightService) SmartInsight(ctx context.Context) (*domain.Insight, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for insight")
		return nil, err
	}
	patrimony, err := s.patrimonyRepo.ListPatrimonyTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load patrimony for insight")
		return nil, err
	}
	insight := SmartInsight(txns, patrimony, s.now())
	return &insight, nil
}
