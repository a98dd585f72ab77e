package services

import (
	"context"

	"github.com/medistock/medicine_stock_app/internal/core/domain"
	"github.com/medistock/medicine_stock_app/internal/dto"
)

// StockReceiverSvc defines the batch store's single write operation
type StockReceiverSvc interface {
	// ReceiveStock validates and durably appends a new stock batch with
	// quantityAvailable equal to the received quantity.
	ReceiveStock(ctx context.Context, req dto.ReceiveStockRequest, creatorUserID string) (*domain.StockBatch, error)
}

// StockLedgerSvc defines the derived ledger projections
type StockLedgerSvc interface {
	// ListBatches retrieves a paginated list of stock batches.
	ListBatches(ctx context.Context, limit, offset int) ([]domain.StockBatch, error)

	// SummaryFor aggregates a single medicine's batches into a summary.
	SummaryFor(ctx context.Context, medicineID string) (*domain.MedicineStockSummary, error)

	// SummaryAll aggregates every medicine with at least one batch.
	SummaryAll(ctx context.Context) ([]domain.MedicineStockSummary, error)
}

// StockSvcFacade combines the batch store and the ledger
type StockSvcFacade interface {
	StockReceiverSvc
	StockLedgerSvc
}
