package services

import (
	"context"

	"github.com/financasapp/financas_backend/internal/core/domain"
)

// InsightSvcFacade surfaces one observation per call via a strict
// first-match rule cascade.
type InsightSvcFacade interface {
	// SmartInsight evaluates the rule cascade over the current data and
	// returns the first matching rule's observation, or the daily tip.
	SmartInsight(ctx context.Context) (*domain.Insight, error)
}
