package pgsql

import (
	"context"
	"fmt"

	"github.com/financasapp/financas_backend/internal/core/domain"
	portsrepo "github.com/financasapp/financas_backend/internal/core/ports/repositories"
	"github.com/financasapp/financas_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBackupRepository struct {
	BaseRepository
}

// newPgxBackupRepository creates a new repository for whole-store restore.
func newPgxBackupRepository(pool *pgxpool.Pool) portsrepo.BackupRepositoryFacade {
	return &PgxBackupRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BackupRepositoryFacade = (*PgxBackupRepository)(nil)

// RestoreAll replaces all four persisted lists inside one database
// transaction. Transactions are cleared first and inserted last so the
// category and batch foreign keys hold at every step.
func (r *PgxBackupRepository) RestoreAll(
	ctx context.Context,
	transactions []domain.Transaction,
	patrimony []domain.PatrimonyTransaction,
	categories []domain.Category,
	batches []domain.ImportBatch,
) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	clearQueries := []string{
		`DELETE FROM transactions;`,
		`DELETE FROM import_batches;`,
		`DELETE FROM patrimony_transactions;`,
		`DELETE FROM categories;`,
	}
	for _, q := range clearQueries {
		if _, err := tx.Exec(ctx, q); err != nil {
			return fmt.Errorf("failed to clear store for restore: %w", err)
		}
	}

	queued := &pgx.Batch{}
	for _, c := range categories {
		m := mapping.ToModelCategory(c)
		queued.Queue(`INSERT INTO categories (category_id, name, type, color) VALUES ($1, $2, $3, $4);`,
			m.CategoryID, m.Name, m.Type, m.Color)
	}
	for _, b := range batches {
		m := mapping.ToModelImportBatch(b)
		queued.Queue(`INSERT INTO import_batches (batch_id, file_name, date, count, total_amount) VALUES ($1, $2, $3, $4, $5);`,
			m.BatchID, m.FileName, m.Date, m.Count, m.TotalAmount)
	}
	for _, p := range patrimony {
		m := mapping.ToModelPatrimonyTransaction(p)
		queued.Queue(`INSERT INTO patrimony_transactions (patrimony_id, amount, type, date, description, created_at) VALUES ($1, $2, $3, $4, $5, $6);`,
			m.PatrimonyID, m.Amount, m.Type, m.Date, m.Description, m.CreatedAt)
	}
	for _, t := range transactions {
		m := mapping.ToModelTransaction(t)
		queued.Queue(`INSERT INTO transactions (`+transactionColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
			m.TransactionID, m.Amount, m.Date, m.CategoryID, m.Description,
			m.Type, m.Recurrence, m.CreatedAt, m.ImportBatchID, m.IsImported, m.OriginalDescription)
	}

	results := tx.SendBatch(ctx, queued)
	for i := 0; i < queued.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to insert restored row: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to flush restored rows: %w", err)
	}

	return r.Commit(ctx, tx)
}
