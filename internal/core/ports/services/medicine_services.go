package services

import (
	"context"

	"github.com/medistock/medicine_stock_app/internal/core/domain"
	"github.com/medistock/medicine_stock_app/internal/dto"
)

// MedicineReaderSvc defines read operations for the medicine catalog
type MedicineReaderSvc interface {
	// GetMedicineByID retrieves a medicine by ID.
	GetMedicineByID(ctx context.Context, medicineID string) (*domain.Medicine, error)

	// ListMedicines retrieves a paginated list of active medicines.
	ListMedicines(ctx context.Context, limit, offset int) ([]domain.Medicine, error)
}

// MedicineWriterSvc defines write operations for the medicine catalog
type MedicineWriterSvc interface {
	// CreateMedicine creates a new catalog entry.
	CreateMedicine(ctx context.Context, req dto.CreateMedicineRequest, creatorUserID string) (*domain.Medicine, error)

	// UpdateMedicine updates an existing catalog entry.
	UpdateMedicine(ctx context.Context, medicineID string, req dto.UpdateMedicineRequest, requestingUserID string) (*domain.Medicine, error)

	// DeleteMedicine marks a medicine as inactive (soft delete).
	DeleteMedicine(ctx context.Context, medicineID string, requestingUserID string) error
}

// MedicineSvcFacade combines all medicine-related service interfaces
type MedicineSvcFacade interface {
	MedicineReaderSvc
	MedicineWriterSvc
}
