package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	portsrepo "github.com/medistock/medicine_stock_app/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// CountMedicinesWithStock counts distinct medicines with at least one batch.
func (r *reportingRepository) CountMedicinesWithStock(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(DISTINCT medicine_id) FROM stock_batches;`

	var count int64
	if err := r.Pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting medicines with stock: %w", err)
	}
	return count, nil
}

// CountLowStockMedicines counts medicines whose availability percentage falls
// below the threshold. The integer arithmetic mirrors the ledger's half-up
// rounding so the counter always agrees with the summary rows.
func (r *reportingRepository) CountLowStockMedicines(ctx context.Context, thresholdPercent int) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM (
			SELECT
				COALESCE(SUM(quantity_received), 0)::bigint AS received,
				COALESCE(SUM(quantity_available), 0)::bigint AS available
			FROM stock_batches
			GROUP BY medicine_id
		) totals
		WHERE totals.received <= 0
			OR ((200 * totals.available + totals.received) / (2 * totals.received)) < $1;
	`

	var count int64
	if err := r.Pool.QueryRow(ctx, query, thresholdPercent).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting low stock medicines: %w", err)
	}
	return count, nil
}

// CountStockEventsSince counts batch receipts plus distributions recorded at or
// after the given instant.
func (r *reportingRepository) CountStockEventsSince(ctx context.Context, since time.Time) (int64, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM stock_batches WHERE created_at >= $1)
			+ (SELECT COUNT(*) FROM distributions WHERE created_at >= $1);
	`

	var count int64
	if err := r.Pool.QueryRow(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting stock events: %w", err)
	}
	return count, nil
}

// TotalStockValue sums available quantity times unit price over all batches.
func (r *reportingRepository) TotalStockValue(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(quantity_available * unit_price), 0) FROM stock_batches;`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing stock value: %w", err)
	}
	return total, nil
}
