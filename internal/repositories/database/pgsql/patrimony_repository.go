package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/financasapp/financas_backend/internal/apperrors"
	"github.com/financasapp/financas_backend/internal/core/domain"
	portsrepo "github.com/financasapp/financas_backend/internal/core/ports/repositories"
	"github.com/financasapp/financas_backend/internal/models"
	"github.com/financasapp/financas_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPatrimonyRepository struct {
	BaseRepository
}

// newPgxPatrimonyRepository creates a new repository for patrimony movements.
func newPgxPatrimonyRepository(pool *pgxpool.Pool) portsrepo.PatrimonyRepositoryFacade {
	return &PgxPatrimonyRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PatrimonyRepositoryFacade = (*PgxPatrimonyRepository)(nil)

func (r *PgxPatrimonyRepository) SavePatrimonyTransaction(ctx context.Context, movement domain.PatrimonyTransaction) error {
	m := mapping.ToModelPatrimonyTransaction(movement)
	query := `
		INSERT INTO patrimony_transactions (patrimony_id, amount, type, date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.PatrimonyID, m.Amount, m.Type, m.Date, m.Description, m.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: patrimony movement with ID %s already exists", apperrors.ErrDuplicate, m.PatrimonyID)
		}
		return fmt.Errorf("failed to save patrimony movement %s: %w", m.PatrimonyID, err)
	}
	return nil
}

func (r *PgxPatrimonyRepository) ListPatrimonyTransactions(ctx context.Context) ([]domain.PatrimonyTransaction, error) {
	query := `
		SELECT patrimony_id, amount, type, date, description, created_at
		FROM patrimony_transactions
		ORDER BY date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list patrimony movements: %w", err)
	}
	defer rows.Close()

	var out []models.PatrimonyTransaction
	for rows.Next() {
		var m models.PatrimonyTransaction
		if err := rows.Scan(&m.PatrimonyID, &m.Amount, &m.Type, &m.Date, &m.Description, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan patrimony row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read patrimony rows: %w", err)
	}
	return mapping.ToDomainPatrimonyTransactionSlice(out), nil
}

func (r *PgxPatrimonyRepository) DeletePatrimonyTransaction(ctx context.Context, patrimonyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM patrimony_transactions WHERE patrimony_id = $1;`, patrimonyID)
	if err != nil {
		return fmt.Errorf("failed to delete patrimony movement %s: %w", patrimonyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
