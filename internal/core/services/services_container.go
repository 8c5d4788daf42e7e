package services

import (
	portsrepo "github.com/financasapp/financas_backend/internal/core/ports/repositories"
	portssvc "github.com/financasapp/financas_backend/internal/core/ports/services"
	"github.com/financasapp/financas_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CategoryRepo)
	container.Category = NewCategoryService(
		repos.CategoryRepo,
		repos.TransactionRepo,
		WithHistoryWindow(cfg.ClassifierHistoryWindow),
	)
	container.Patrimony = NewPatrimonyService(repos.PatrimonyRepo)
	container.Import = NewImportService(repos.ImportBatchRepo, repos.TransactionRepo)
	container.Analytics = NewAnalyticsService(repos.TransactionRepo, repos.PatrimonyRepo, repos.CategoryRepo)
	container.Insight = NewInsightService(repos.TransactionRepo, repos.PatrimonyRepo)
	container.Backup = NewBackupService(
		repos.TransactionRepo,
		repos.PatrimonyRepo,
		repos.CategoryRepo,
		repos.ImportBatchRepo,
		repos.BackupRepo,
	)

	return container
}
