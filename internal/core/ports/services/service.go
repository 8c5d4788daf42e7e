package services

// ServiceContainer bundles all service facades handed to the handler layer.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Category    CategorySvcFacade
	Patrimony   PatrimonySvcFacade
	Import      ImportSvcFacade
	Analytics   AnalyticsSvcFacade
	Insight     InsightSvcFacade
	Backup      BackupSvcFacade
}
