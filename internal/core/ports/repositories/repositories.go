package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container at startup.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	PatrimonyRepo   PatrimonyRepositoryFacade
	ImportBatchRepo ImportBatchRepositoryFacade
	BackupRepo      BackupRepositoryFacade
}
