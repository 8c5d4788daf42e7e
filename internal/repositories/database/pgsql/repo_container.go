package pgsql

import (
	portsrepo "github.com/financasapp/financas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		PatrimonyRepo:   newPgxPatrimonyRepository(dbPool),
		ImportBatchRepo: newPgxImportBatchRepository(dbPool),
		BackupRepo:      newPgxBackupRepository(dbPool),
	}
}
