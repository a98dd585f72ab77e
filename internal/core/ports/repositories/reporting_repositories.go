package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportingRepository defines operations for retrieving dashboard counter data
type ReportingRepository interface {
	// CountMedicinesWithStock counts distinct medicines with at least one batch.
	CountMedicinesWithStock(ctx context.Context) (int64, error)

	// CountLowStockMedicines counts medicines whose availability percentage is
	// below the given threshold (including medicines with zero received).
	CountLowStockMedicines(ctx context.Context, thresholdPercent int) (int64, error)

	// CountStockEventsSince counts batch creations plus distributions created
	// at or after the given instant.
	CountStockEventsSince(ctx context.Context, since time.Time) (int64, error)

	// TotalStockValue sums quantity_available times unit_price over all batches.
	TotalStockValue(ctx context.Context) (decimal.Decimal, error)
}
