package services

import (
	portsrepo "github.com/medistock/medicine_stock_app/internal/core/ports/repositories"
	portssvc "github.com/medistock/medicine_stock_app/internal/core/ports/services"
	"github.com/medistock/medicine_stock_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Medicine = NewMedicineService(repos.MedicineRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Stock = NewStockService(repos.StockRepo, repos.MedicineRepo)
	container.Distribution = NewDistributionService(repos.DistributionRepo, repos.MedicineRepo, repos.UserRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.MedicineSvcFacade     = (*medicineService)(nil)
	_ portssvc.UserSvcFacade         = (*userService)(nil)
	_ portssvc.StockSvcFacade        = (*stockService)(nil)
	_ portssvc.DistributionSvcFacade = (*distributionService)(nil)
	_ portssvc.ReportingService      = (*reportingService)(nil)
)
