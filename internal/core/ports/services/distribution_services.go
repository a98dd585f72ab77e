package services

import (
	"context"

	"github.com/medistock/medicine_stock_app/internal/core/domain"
	"github.com/medistock/medicine_stock_app/internal/dto"
)

// DistributionEngineSvc defines the transactional distribution operation
type DistributionEngineSvc interface {
	// Distribute atomically converts available stock into a completed
	// distribution record, or fails without mutating anything.
	Distribute(ctx context.Context, req dto.DistributeRequest, creatorUserID string) (*domain.Distribution, error)
}

// DistributionHistorySvc defines read operations over distribution records
type DistributionHistorySvc interface {
	// GetDistributionByID retrieves a single distribution record.
	GetDistributionByID(ctx context.Context, distributionID string) (*domain.Distribution, error)

	// ListDistributions retrieves distribution history, newest first.
	ListDistributions(ctx context.Context, limit, offset int) ([]domain.Distribution, error)
}

// DistributionSvcFacade combines the engine and its history reads
type DistributionSvcFacade interface {
	DistributionEngineSvc
	DistributionHistorySvc
}
