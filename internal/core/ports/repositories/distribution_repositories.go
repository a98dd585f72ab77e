package repositories

import (
	"context"

	"github.com/medistock/medicine_stock_app/internal/core/domain"
)

// DistributionReader defines read operations for distribution history
type DistributionReader interface {
	// FindDistributionByID retrieves a specific distribution record.
	FindDistributionByID(ctx context.Context, distributionID string) (*domain.Distribution, error)

	// ListDistributions retrieves distribution history with officer and
	// medicine display data resolved, newest first.
	ListDistributions(ctx context.Context, limit int, offset int) ([]domain.Distribution, error)

	// ListDistributionsByMedicineID retrieves all completed distributions for a medicine.
	ListDistributionsByMedicineID(ctx context.Context, medicineID string) ([]domain.Distribution, error)
}

// DistributionWriter defines the engine's single write operation.
type DistributionWriter interface {
	// SaveDistribution applies the batch decrements and inserts the
	// distribution record as one database transaction. The medicine's batches
	// are locked FOR UPDATE in received-date order before availability is
	// re-verified inside the transaction; the whole unit either commits or
	// leaves no trace. Returns ErrInsufficientStock when availability is short
	// and ErrConflict on serialization failures the caller may retry.
	SaveDistribution(ctx context.Context, distribution domain.Distribution) error
}

// DistributionRepositoryFacade combines all distribution-related repository interfaces
type DistributionRepositoryFacade interface {
	DistributionReader
	DistributionWriter
}
