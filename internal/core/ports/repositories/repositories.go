package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	MedicineRepo     MedicineRepositoryFacade
	UserRepo         UserRepositoryFacade
	StockRepo        StockRepositoryFacade
	DistributionRepo DistributionRepositoryFacade
	ReportingRepo    ReportingRepository
}
