package repositories

import (
	"context"
	"time"

	"github.com/medistock/medicine_stock_app/internal/core/domain"
)

// MedicineReader defines read operations for the medicine catalog
type MedicineReader interface {
	// FindMedicineByID retrieves a specific medicine by its ID.
	FindMedicineByID(ctx context.Context, medicineID string) (*domain.Medicine, error)

	// ListMedicines retrieves a paginated list of active medicines.
	ListMedicines(ctx context.Context, limit int, offset int) ([]domain.Medicine, error)
}

// MedicineWriter defines write operations for the medicine catalog
type MedicineWriter interface {
	// SaveMedicine persists a new medicine.
	SaveMedicine(ctx context.Context, medicine domain.Medicine) error

	// UpdateMedicine updates an existing medicine's details.
	UpdateMedicine(ctx context.Context, medicine domain.Medicine) error

	// DeactivateMedicine marks a medicine as inactive (soft delete).
	DeactivateMedicine(ctx context.Context, medicineID string, userID string, now time.Time) error
}

// MedicineRepositoryFacade combines all medicine-related repository interfaces
type MedicineRepositoryFacade interface {
	MedicineReader
	MedicineWriter
}
