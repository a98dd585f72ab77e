package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medistock/medicine_stock_app/internal/apperrors"
	"github.com/medistock/medicine_stock_app/internal/core/domain"
	portsrepo "github.com/medistock/medicine_stock_app/internal/core/ports/repositories"
	"github.com/medistock/medicine_stock_app/internal/models"
	"github.com/medistock/medicine_stock_app/internal/utils/mapping"
)

type PgxMedicineRepository struct {
	BaseRepository
}

func newPgxMedicineRepository(pool *pgxpool.Pool) portsrepo.MedicineRepositoryFacade {
	return &PgxMedicineRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxMedicineRepository implements portsrepo.MedicineRepositoryFacade
var _ portsrepo.MedicineRepositoryFacade = (*PgxMedicineRepository)(nil)

func (r *PgxMedicineRepository) SaveMedicine(ctx context.Context, medicine domain.Medicine) error {
	modelMed := mapping.ToModelMedicine(medicine)
	query := `
		INSERT INTO medicines (medicine_id, name, dosage, manufacturer, category, expiration_date, instructions, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelMed.MedicineID,
		modelMed.Name,
		modelMed.Dosage,
		modelMed.Manufacturer,
		modelMed.Category,
		modelMed.ExpirationDate,
		modelMed.Instructions,
		modelMed.IsActive,
		modelMed.CreatedAt,
		modelMed.CreatedBy,
		modelMed.LastUpdatedAt,
		modelMed.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: medicine with ID %s already exists", apperrors.ErrDuplicate, modelMed.MedicineID)
		}
		return fmt.Errorf("failed to save medicine %s: %w", modelMed.MedicineID, err)
	}
	return nil
}

func (r *PgxMedicineRepository) FindMedicineByID(ctx context.Context, medicineID string) (*domain.Medicine, error) {
	query := `
		SELECT medicine_id, name, dosage, manufacturer, category, expiration_date, instructions, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM medicines
		WHERE medicine_id = $1;
	`
	var modelMed models.Medicine
	err := r.Pool.QueryRow(ctx, query, medicineID).Scan(
		&modelMed.MedicineID,
		&modelMed.Name,
		&modelMed.Dosage,
		&modelMed.Manufacturer,
		&modelMed.Category,
		&modelMed.ExpirationDate,
		&modelMed.Instructions,
		&modelMed.IsActive,
		&modelMed.CreatedAt,
		&modelMed.CreatedBy,
		&modelMed.LastUpdatedAt,
		&modelMed.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find medicine by ID %s: %w", medicineID, err)
	}

	domainMed := mapping.ToDomainMedicine(modelMed)
	return &domainMed, nil
}

func (r *PgxMedicineRepository) ListMedicines(ctx context.Context, limit int, offset int) ([]domain.Medicine, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT medicine_id, name, dosage, manufacturer, category, expiration_date, instructions, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM medicines
		WHERE is_active = TRUE
		ORDER BY name ASC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query medicines: %w", err)
	}
	defer rows.Close()

	modelMeds := []models.Medicine{}
	for rows.Next() {
		var modelMed models.Medicine
		err := rows.Scan(
			&modelMed.MedicineID,
			&modelMed.Name,
			&modelMed.Dosage,
			&modelMed.Manufacturer,
			&modelMed.Category,
			&modelMed.ExpirationDate,
			&modelMed.Instructions,
			&modelMed.IsActive,
			&modelMed.CreatedAt,
			&modelMed.CreatedBy,
			&modelMed.LastUpdatedAt,
			&modelMed.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan medicine row: %w", err)
		}
		modelMeds = append(modelMeds, modelMed)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating medicine rows: %w", rows.Err())
	}

	return mapping.ToDomainMedicineSlice(modelMeds), nil
}

func (r *PgxMedicineRepository) UpdateMedicine(ctx context.Context, medicine domain.Medicine) error {
	modelMed := mapping.ToModelMedicine(medicine)
	query := `
		UPDATE medicines
		SET name = $1, dosage = $2, manufacturer = $3, category = $4, expiration_date = $5, instructions = $6, last_updated_at = $7, last_updated_by = $8
		WHERE medicine_id = $9 AND is_active = TRUE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelMed.Name,
		modelMed.Dosage,
		modelMed.Manufacturer,
		modelMed.Category,
		modelMed.ExpirationDate,
		modelMed.Instructions,
		modelMed.LastUpdatedAt,
		modelMed.LastUpdatedBy,
		modelMed.MedicineID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update medicine query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("medicine not found or inactive: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMedicineRepository) DeactivateMedicine(ctx context.Context, medicineID string, userID string, now time.Time) error {
	query := `
		UPDATE medicines
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE medicine_id = $3 AND is_active = TRUE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, now, userID, medicineID)
	if err != nil {
		return fmt.Errorf("failed to deactivate medicine %s: %w", medicineID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Distinguish a missing medicine from one that is already inactive.
		_, findErr := r.FindMedicineByID(ctx, medicineID)
		if errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check medicine status after deactivation attempt for %s: %w", medicineID, findErr)
		}
		return apperrors.ErrValidation
	}
	return nil
}
