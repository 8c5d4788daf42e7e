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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxImportBatchRepository struct {
	BaseRepository
}

// newPgxImportBatchRepository creates a new repository for import batches.
func newPgxImportBatchRepository(pool *pgxpool.Pool) portsrepo.ImportBatchRepositoryFacade {
	return &PgxImportBatchRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ImportBatchRepositoryFacade = (*PgxImportBatchRepository)(nil)

// SaveBatch inserts the batch record and all its transactions in one database
// transaction. Either everything lands or nothing does.
func (r *PgxImportBatchRepository) SaveBatch(ctx context.Context, batch domain.ImportBatch, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	m := mapping.ToModelImportBatch(batch)
	batchQuery := `
		INSERT INTO import_batches (batch_id, file_name, date, count, total_amount)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := tx.Exec(ctx, batchQuery, m.BatchID, m.FileName, m.Date, m.Count, m.TotalAmount); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: import batch with ID %s already exists", apperrors.ErrDuplicate, m.BatchID)
		}
		return fmt.Errorf("failed to save import batch %s: %w", m.BatchID, err)
	}

	txnQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	queued := &pgx.Batch{}
	for _, txn := range transactions {
		t := mapping.ToModelTransaction(txn)
		queued.Queue(txnQuery,
			t.TransactionID, t.Amount, t.Date, t.CategoryID, t.Description,
			t.Type, t.Recurrence, t.CreatedAt, t.ImportBatchID, t.IsImported, t.OriginalDescription,
		)
	}
	results := tx.SendBatch(ctx, queued)
	for range transactions {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to save imported transaction for batch %s: %w", m.BatchID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to flush imported transactions for batch %s: %w", m.BatchID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteBatch removes the batch's transactions and its record in one database
// transaction. A nonexistent batch is a no-op, not an error.
func (r *PgxImportBatchRepository) DeleteBatch(ctx context.Context, batchID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE import_batch_id = $1;`, batchID); err != nil {
		return fmt.Errorf("failed to delete transactions of batch %s: %w", batchID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM import_batches WHERE batch_id = $1;`, batchID); err != nil {
		return fmt.Errorf("failed to delete import batch %s: %w", batchID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxImportBatchRepository) FindBatchByID(ctx context.Context, batchID string) (*domain.ImportBatch, error) {
	query := `SELECT batch_id, file_name, date, count, total_amount FROM import_batches WHERE batch_id = $1;`
	var m models.ImportBatch
	err := r.Pool.QueryRow(ctx, query, batchID).Scan(&m.BatchID, &m.FileName, &m.Date, &m.Count, &m.TotalAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find import batch %s: %w", batchID, err)
	}
	d := mapping.ToDomainImportBatch(m)
	return &d, nil
}

func (r *PgxImportBatchRepository) ListBatches(ctx context.Context) ([]domain.ImportBatch, error) {
	query := `SELECT batch_id, file_name, date, count, total_amount FROM import_batches ORDER BY date DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list import batches: %w", err)
	}
	defer rows.Close()

	var out []models.ImportBatch
	for rows.Next() {
		var m models.ImportBatch
		if err := rows.Scan(&m.BatchID, &m.FileName, &m.Date, &m.Count, &m.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan import batch row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read import batch rows: %w", err)
	}
	return mapping.ToDomainImportBatchSlice(out), nil
}
