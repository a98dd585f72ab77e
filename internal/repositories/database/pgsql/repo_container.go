package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/medistock/medicine_stock_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	medicineRepo := newPgxMedicineRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	stockRepo := newPgxStockRepository(dbPool)
	distributionRepo := newPgxDistributionRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		MedicineRepo:     medicineRepo,
		UserRepo:         userRepo,
		StockRepo:        stockRepo,
		DistributionRepo: distributionRepo,
		ReportingRepo:    reportingRepo,
	}
}
