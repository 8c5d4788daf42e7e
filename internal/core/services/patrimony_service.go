package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/financasapp/financas_backend/internal/apperrors"
	"github.com/financasapp/financas_backend/internal/core/domain"
	portsrepo "github.com/financasapp/financas_backend/internal/core/ports/repositories"
	portssvc "github.com/financasapp/financas_backend/internal/core/ports/services"
	"github.com/financasapp/financas_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type patrimonyService struct {
	BaseService
	patrimonyRepo portsrepo.PatrimonyRepositoryFacade
}

var _ portssvc.PatrimonySvcFacade = (*patrimonyService)(nil)

// NewPatrimonyService creates the protected-savings pool service.
func NewPatrimonyService(patrimonyRepo portsrepo.PatrimonyRepositoryFacade) portssvc.PatrimonySvcFacade {
	return &patrimonyService{patrimonyRepo: patrimonyRepo}
}

func (s *patrimonyService) CreateMovement(ctx context.Context, req dto.CreatePatrimonyRequest) (*domain.PatrimonyTransaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	movement := domain.PatrimonyTransaction{
		PatrimonyID: uuid.NewString(),
		Amount:      req.Amount,
		Type:        domain.PatrimonyType(req.Type),
		Date:        date,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.patrimonyRepo.SavePatrimonyTransaction(ctx, movement); err != nil {
		s.LogError(ctx, err, "Failed to save patrimony movement", slog.String("patrimony_id", movement.PatrimonyID))
		return nil, err
	}

	s.LogInfo(ctx, "Patrimony movement created",
		slog.String("patrimony_id", movement.PatrimonyID),
		slog.String("type", req.Type))
	return &movement, nil
}

func (s *patrimonyService) ListMovements(ctx context.Context) ([]domain.PatrimonyTransaction, error) {
	movements, err := s.patrimonyRepo.ListPatrimonyTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list patrimony movements")
		return nil, err
	}
	if movements == nil {
		movements = []domain.PatrimonyTransaction{}
	}
	return movements, nil
}

func (s *patrimonyService) DeleteMovement(ctx context.Context, patrimonyID string) error {
	if err := s.patrimonyRepo.DeletePatrimonyTransaction(ctx, patrimonyID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete patrimony movement", slog.String("patrimony_id", patrimonyID))
		}
		return err
	}
	s.LogInfo(ctx, "Patrimony movement deleted", slog.String("patrimony_id", patrimonyID))
	return nil
}

func (s *patrimonyService) Total(ctx context.Context) (decimal.Decimal, error) {
	movements, err := s.patrimonyRepo.ListPatrimonyTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute patrimony total")
		return decimal.Zero, err
	}
	return domain.PatrimonyTotal(movements), nil
}
