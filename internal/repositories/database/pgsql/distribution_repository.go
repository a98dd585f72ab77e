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

type PgxDistributionRepository struct {
	BaseRepository
}

func newPgxDistributionRepository(pool *pgxpool.Pool) portsrepo.DistributionRepositoryFacade {
	return &PgxDistributionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxDistributionRepository implements portsrepo.DistributionRepositoryFacade
var _ portsrepo.DistributionRepositoryFacade = (*PgxDistributionRepository)(nil)

// SaveDistribution decrements batch availability oldest batch first and inserts
// the distribution record, all within one database transaction.
func (r *PgxDistributionRepository) SaveDistribution(ctx context.Context, distribution domain.Distribution) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits successfully
	defer r.Rollback(ctx, tx)

	now := distribution.CreatedAt
	userID := distribution.CreatedBy

	// 1. Lock the medicine's batches in consumption order. The row locks
	// serialize concurrent distributions of the same medicine.
	lockQuery := `
		SELECT batch_id, quantity_available
		FROM stock_batches
		WHERE medicine_id = $1
		ORDER BY received_date ASC, created_at ASC
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, lockQuery, distribution.MedicineID)
	if err != nil {
		return translateTxError(fmt.Errorf("failed to lock stock batches for medicine %s: %w", distribution.MedicineID, err))
	}

	lockedBatches := []domain.BatchAvailability{}
	for rows.Next() {
		var lb domain.BatchAvailability
		if err := rows.Scan(&lb.BatchID, &lb.Available); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan locked batch row: %w", err)
		}
		lockedBatches = append(lockedBatches, lb)
	}
	rows.Close()
	if rows.Err() != nil {
		return translateTxError(fmt.Errorf("error iterating locked batch rows: %w", rows.Err()))
	}

	// 2. Plan consumption oldest batch first; nothing is mutated on a shortfall.
	allocations, shortfall := domain.PlanFIFOAllocations(lockedBatches, distribution.Quantity)
	if shortfall > 0 {
		return fmt.Errorf("%w: requested %d, available %d", apperrors.ErrInsufficientStock, distribution.Quantity, distribution.Quantity-shortfall)
	}

	// 3. Apply the decrements as a batch. The guard in the WHERE clause keeps a
	// batch from ever going negative even if an allocation were miscomputed.
	updateQuery := `
		UPDATE stock_batches
		SET quantity_available = quantity_available - $2, last_updated_at = $3, last_updated_by = $4
		WHERE batch_id = $1 AND quantity_available >= $2;
	`
	batch := &pgx.Batch{}
	for _, alloc := range allocations {
		batch.Queue(updateQuery, alloc.BatchID, alloc.Quantity, now, userID)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to decrement batch %s: %w", allocations[i].BatchID, err)
			}
		} else if ct.RowsAffected() == 0 {
			if batchErr == nil {
				batchErr = fmt.Errorf("%w: batch %s changed while locked", apperrors.ErrConflict, allocations[i].BatchID)
			}
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close batch decrement batch: %w", err)
	}
	if batchErr != nil {
		return translateTxError(batchErr)
	}

	// 4. Insert the distribution record.
	modelDist := mapping.ToModelDistribution(distribution)
	insertQuery := `
		INSERT INTO distributions (distribution_id, officer_id, medicine_id, quantity, status, distributed_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelDist.DistributionID,
		modelDist.OfficerID,
		modelDist.MedicineID,
		modelDist.Quantity,
		modelDist.Status,
		modelDist.DistributedAt,
		modelDist.CreatedAt,
		modelDist.CreatedBy,
		modelDist.LastUpdatedAt,
		modelDist.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: distribution %s already exists", apperrors.ErrDuplicate, modelDist.DistributionID)
			case "23503":
				return fmt.Errorf("%w: officer or medicine referenced by distribution does not exist", apperrors.ErrNotFound)
			}
		}
		return translateTxError(fmt.Errorf("failed to insert distribution %s: %w", modelDist.DistributionID, err))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return translateTxError(err)
	}
	return nil
}

func (r *PgxDistributionRepository) FindDistributionByID(ctx context.Context, distributionID string) (*domain.Distribution, error) {
	query := `
		SELECT d.distribution_id, d.officer_id, d.medicine_id, d.quantity, d.status, d.distributed_at, d.created_at, d.created_by, d.last_updated_at, d.last_updated_by, u.name, m.name, m.dosage
		FROM distributions d
		JOIN users u ON d.officer_id = u.user_id
		JOIN medicines m ON d.medicine_id = m.medicine_id
		WHERE d.distribution_id = $1;
	`
	modelDist, err := scanDistribution(r.Pool.QueryRow(ctx, query, distributionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find distribution by ID %s: %w", distributionID, err)
	}

	domainDist := mapping.ToDomainDistribution(modelDist)
	return &domainDist, nil
}

func (r *PgxDistributionRepository) ListDistributions(ctx context.Context, limit int, offset int) ([]domain.Distribution, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT d.distribution_id, d.officer_id, d.medicine_id, d.quantity, d.status, d.distributed_at, d.created_at, d.created_by, d.last_updated_at, d.last_updated_by, u.name, m.name, m.dosage
		FROM distributions d
		JOIN users u ON d.officer_id = u.user_id
		JOIN medicines m ON d.medicine_id = m.medicine_id
		ORDER BY d.distributed_at DESC, d.created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query distributions: %w", err)
	}
	defer rows.Close()

	modelDists := []models.Distribution{}
	for rows.Next() {
		modelDist, err := scanDistribution(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan distribution row: %w", err)
		}
		modelDists = append(modelDists, modelDist)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating distribution rows: %w", rows.Err())
	}

	return mapping.ToDomainDistributionSlice(modelDists), nil
}

func (r *PgxDistributionRepository) ListDistributionsByMedicineID(ctx context.Context, medicineID string) ([]domain.Distribution, error) {
	query := `
		SELECT d.distribution_id, d.officer_id, d.medicine_id, d.quantity, d.status, d.distributed_at, d.created_at, d.created_by, d.last_updated_at, d.last_updated_by, u.name, m.name, m.dosage
		FROM distributions d
		JOIN users u ON d.officer_id = u.user_id
		JOIN medicines m ON d.medicine_id = m.medicine_id
		WHERE d.medicine_id = $1
		ORDER BY d.distributed_at DESC, d.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, medicineID)
	if err != nil {
		return nil, fmt.Errorf("failed to query distributions for medicine %s: %w", medicineID, err)
	}
	defer rows.Close()

	modelDists := []models.Distribution{}
	for rows.Next() {
		modelDist, err := scanDistribution(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan distribution row: %w", err)
		}
		modelDists = append(modelDists, modelDist)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating distribution rows: %w", rows.Err())
	}

	return mapping.ToDomainDistributionSlice(modelDists), nil
}

func scanDistribution(row pgx.Row) (models.Distribution, error) {
	var modelDist models.Distribution
	err := row.Scan(
		&modelDist.DistributionID,
		&modelDist.OfficerID,
		&modelDist.MedicineID,
		&modelDist.Quantity,
		&modelDist.Status,
		&modelDist.DistributedAt,
		&modelDist.CreatedAt,
		&modelDist.CreatedBy,
		&modelDist.LastUpdatedAt,
		&modelDist.LastUpdatedBy,
		&modelDist.OfficerName,
		&modelDist.MedicineName,
		&modelDist.Dosage,
	)
	return modelDist, err
}

// translateTxError maps serialization and deadlock failures to ErrConflict so
// callers can retry, and passes everything else through unchanged.
func translateTxError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%w: %v", apperrors.ErrConflict, err)
		}
	}
	return err
}
