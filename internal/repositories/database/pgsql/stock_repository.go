package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medistock/medicine_stock_app/internal/apperrors"
	"github.com/medistock/medicine_stock_app/internal/core/domain"
	portsrepo "github.com/medistock/medicine_stock_app/internal/core/ports/repositories"
	"github.com/medistock/medicine_stock_app/internal/models"
	"github.com/medistock/medicine_stock_app/internal/utils/mapping"
)

type PgxStockRepository struct {
	BaseRepository
}

func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &PgxStockRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxStockRepository implements portsrepo.StockRepositoryFacade
var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

func (r *PgxStockRepository) SaveBatch(ctx context.Context, batch domain.StockBatch) error {
	modelBatch := mapping.ToModelStockBatch(batch)
	query := `
		INSERT INTO stock_batches (batch_id, medicine_id, quantity_received, quantity_available, batch_reference, supplier, unit_price, expiry_date, received_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelBatch.BatchID,
		modelBatch.MedicineID,
		modelBatch.QuantityReceived,
		modelBatch.QuantityAvailable,
		modelBatch.BatchReference,
		modelBatch.Supplier,
		modelBatch.UnitPrice,
		modelBatch.ExpiryDate,
		modelBatch.ReceivedDate,
		modelBatch.CreatedAt,
		modelBatch.CreatedBy,
		modelBatch.LastUpdatedAt,
		modelBatch.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Unique violation
				return fmt.Errorf("%w: batch with ID %s already exists", apperrors.ErrDuplicate, modelBatch.BatchID)
			case "23503": // Foreign key violation
				return fmt.Errorf("%w: medicine %s does not exist", apperrors.ErrNotFound, modelBatch.MedicineID)
			}
		}
		return fmt.Errorf("failed to save stock batch %s: %w", modelBatch.BatchID, err)
	}
	return nil
}

func (r *PgxStockRepository) FindBatchByID(ctx context.Context, batchID string) (*domain.StockBatch, error) {
	query := `
		SELECT b.batch_id, b.medicine_id, b.quantity_received, b.quantity_available, b.batch_reference, b.supplier, b.unit_price, b.expiry_date, b.received_date, b.created_at, b.created_by, b.last_updated_at, b.last_updated_by, m.name, m.dosage
		FROM stock_batches b
		JOIN medicines m ON b.medicine_id = m.medicine_id
		WHERE b.batch_id = $1;
	`
	modelBatch, err := scanStockBatch(r.Pool.QueryRow(ctx, query, batchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stock batch by ID %s: %w", batchID, err)
	}

	domainBatch := mapping.ToDomainStockBatch(modelBatch)
	return &domainBatch, nil
}

func (r *PgxStockRepository) ListBatches(ctx context.Context, limit int, offset int) ([]domain.StockBatch, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT b.batch_id, b.medicine_id, b.quantity_received, b.quantity_available, b.batch_reference, b.supplier, b.unit_price, b.expiry_date, b.received_date, b.created_at, b.created_by, b.last_updated_at, b.last_updated_by, m.name, m.dosage
		FROM stock_batches b
		JOIN medicines m ON b.medicine_id = m.medicine_id
		ORDER BY b.received_date DESC, b.created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock batches: %w", err)
	}
	defer rows.Close()

	modelBatches := []models.StockBatch{}
	for rows.Next() {
		modelBatch, err := scanStockBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock batch row: %w", err)
		}
		modelBatches = append(modelBatches, modelBatch)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating stock batch rows: %w", rows.Err())
	}

	return mapping.ToDomainStockBatchSlice(modelBatches), nil
}

// FindBatchesByMedicineID returns the medicine's batches oldest received first,
// the order the distribution engine consumes them in.
func (r *PgxStockRepository) FindBatchesByMedicineID(ctx context.Context, medicineID string) ([]domain.StockBatch, error) {
	query := `
		SELECT b.batch_id, b.medicine_id, b.quantity_received, b.quantity_available, b.batch_reference, b.supplier, b.unit_price, b.expiry_date, b.received_date, b.created_at, b.created_by, b.last_updated_at, b.last_updated_by, m.name, m.dosage
		FROM stock_batches b
		JOIN medicines m ON b.medicine_id = m.medicine_id
		WHERE b.medicine_id = $1
		ORDER BY b.received_date ASC, b.created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, medicineID)
	if err != nil {
		return nil, fmt.Errorf("failed to query batches for medicine %s: %w", medicineID, err)
	}
	defer rows.Close()

	modelBatches := []models.StockBatch{}
	for rows.Next() {
		modelBatch, err := scanStockBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock batch row: %w", err)
		}
		modelBatches = append(modelBatches, modelBatch)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating stock batch rows: %w", rows.Err())
	}

	return mapping.ToDomainStockBatchSlice(modelBatches), nil
}

func (r *PgxStockRepository) GetStockSummary(ctx context.Context, medicineID string) (*domain.MedicineStockSummary, error) {
	query := `
		SELECT b.medicine_id, m.name, m.dosage,
			COALESCE(SUM(b.quantity_received), 0)::bigint,
			COALESCE(SUM(b.quantity_available), 0)::bigint,
			MAX(b.last_updated_at)
		FROM stock_batches b
		JOIN medicines m ON b.medicine_id = m.medicine_id
		WHERE b.medicine_id = $1
		GROUP BY b.medicine_id, m.name, m.dosage;
	`
	var summary domain.MedicineStockSummary
	err := r.Pool.QueryRow(ctx, query, medicineID).Scan(
		&summary.MedicineID,
		&summary.MedicineName,
		&summary.Dosage,
		&summary.TotalReceived,
		&summary.TotalAvailable,
		&summary.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: medicine %s has no stock batches", apperrors.ErrNotFound, medicineID)
		}
		return nil, fmt.Errorf("failed to get stock summary for medicine %s: %w", medicineID, err)
	}

	summary.Classify()
	return &summary, nil
}

func (r *PgxStockRepository) ListStockSummaries(ctx context.Context) ([]domain.MedicineStockSummary, error) {
	query := `
		SELECT b.medicine_id, m.name, m.dosage,
			COALESCE(SUM(b.quantity_received), 0)::bigint,
			COALESCE(SUM(b.quantity_available), 0)::bigint,
			MAX(b.last_updated_at)
		FROM stock_batches b
		JOIN medicines m ON b.medicine_id = m.medicine_id
		GROUP BY b.medicine_id, m.name, m.dosage
		ORDER BY m.name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock summaries: %w", err)
	}
	defer rows.Close()

	summaries := []domain.MedicineStockSummary{}
	for rows.Next() {
		var summary domain.MedicineStockSummary
		err := rows.Scan(
			&summary.MedicineID,
			&summary.MedicineName,
			&summary.Dosage,
			&summary.TotalReceived,
			&summary.TotalAvailable,
			&summary.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock summary row: %w", err)
		}
		summary.Classify()
		summaries = append(summaries, summary)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating stock summary rows: %w", rows.Err())
	}

	return summaries, nil
}

func scanStockBatch(row pgx.Row) (models.StockBatch, error) {
	var modelBatch models.StockBatch
	err := row.Scan(
		&modelBatch.BatchID,
		&modelBatch.MedicineID,
		&modelBatch.QuantityReceived,
		&modelBatch.QuantityAvailable,
		&modelBatch.BatchReference,
		&modelBatch.Supplier,
		&modelBatch.UnitPrice,
		&modelBatch.ExpiryDate,
		&modelBatch.ReceivedDate,
		&modelBatch.CreatedAt,
		&modelBatch.CreatedBy,
		&modelBatch.LastUpdatedAt,
		&modelBatch.LastUpdatedBy,
		&modelBatch.MedicineName,
		&modelBatch.Dosage,
	)
	return modelBatch, err
}
