package repositories

import (
	"context"

	"github.com/medistock/medicine_stock_app/internal/core/domain"
)

// StockBatchReader defines read operations for stock batch data
type StockBatchReader interface {
	// FindBatchByID retrieves a specific stock batch by its ID.
	FindBatchByID(ctx context.Context, batchID string) (*domain.StockBatch, error)

	// ListBatches retrieves a paginated list of batches with medicine display
	// data resolved, newest received first.
	ListBatches(ctx context.Context, limit int, offset int) ([]domain.StockBatch, error)

	// FindBatchesByMedicineID retrieves all batches for a medicine ordered by
	// received date ascending (oldest first).
	FindBatchesByMedicineID(ctx context.Context, medicineID string) ([]domain.StockBatch, error)
}

// StockBatchWriter defines write operations for stock batch data.
// Batches are append-only: there is no update or delete. Decrementing
// quantity_available is a capability of the distribution repository only.
type StockBatchWriter interface {
	// SaveBatch persists a new stock batch.
	SaveBatch(ctx context.Context, batch domain.StockBatch) error
}

// StockSummaryReader defines the ledger projection reads
type StockSummaryReader interface {
	// GetStockSummary aggregates the batches of one medicine into totals.
	// Returns ErrNotFound when the medicine has no batches.
	GetStockSummary(ctx context.Context, medicineID string) (*domain.MedicineStockSummary, error)

	// ListStockSummaries aggregates batches per medicine, one row per medicine
	// with at least one batch.
	ListStockSummaries(ctx context.Context) ([]domain.MedicineStockSummary, error)
}

// StockRepositoryFacade combines all stock-related repository interfaces
type StockRepositoryFacade interface {
	StockBatchReader
	StockBatchWriter
	StockSummaryReader
}
