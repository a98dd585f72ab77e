package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medistock/medicine_stock_app/internal/core/domain"
	portsrepo "github.com/medistock/medicine_stock_app/internal/core/ports/repositories"
	portssvc "github.com/medistock/medicine_stock_app/internal/core/ports/services"
	"github.com/medistock/medicine_stock_app/internal/dto"
)

type medicineService struct {
	BaseService
	medicineRepo portsrepo.MedicineRepositoryFacade
}

// NewMedicineService creates a new medicine catalog service
func NewMedicineService(medicineRepo portsrepo.MedicineRepositoryFacade) portssvc.MedicineSvcFacade {
	return &medicineService{medicineRepo: medicineRepo}
}

func (s *medicineService) CreateMedicine(ctx context.Context, req dto.CreateMedicineRequest, creatorUserID string) (*domain.Medicine, error) {
	now := time.Now().UTC()
	medicine := domain.Medicine{
		MedicineID:     uuid.NewString(),
		Name:           req.Name,
		Dosage:         req.Dosage,
		Manufacturer:   req.Manufacturer,
		Category:       req.Category,
		ExpirationDate: req.ExpirationDate,
		Instructions:   req.Instructions,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.medicineRepo.SaveMedicine(ctx, medicine); err != nil {
		s.LogError(ctx, err, "Failed to create medicine", "name", req.Name)
		return nil, err
	}

	s.LogInfo(ctx, "Medicine created", "medicine_id", medicine.MedicineID)
	return &medicine, nil
}

func (s *medicineService) GetMedicineByID(ctx context.Context, medicineID string) (*domain.Medicine, error) {
	return s.medicineRepo.FindMedicineByID(ctx, medicineID)
}

func (s *medicineService) ListMedicines(ctx context.Context, limit, offset int) ([]domain.Medicine, error) {
	return s.medicineRepo.ListMedicines(ctx, limit, offset)
}

func (s *medicineService) UpdateMedicine(ctx context.Context, medicineID string, req dto.UpdateMedicineRequest, requestingUserID string) (*domain.Medicine, error) {
	medicine, err := s.medicineRepo.FindMedicineByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		medicine.Name = *req.Name
	}
	if req.Dosage != nil {
		medicine.Dosage = *req.Dosage
	}
	if req.Manufacturer != nil {
		medicine.Manufacturer = *req.Manufacturer
	}
	if req.Category != nil {
		medicine.Category = *req.Category
	}
	if req.ExpirationDate != nil {
		medicine.ExpirationDate = *req.ExpirationDate
	}
	if req.Instructions != nil {
		medicine.Instructions = *req.Instructions
	}
	medicine.LastUpdatedAt = time.Now().UTC()
	medicine.LastUpdatedBy = requestingUserID

	if err := s.medicineRepo.UpdateMedicine(ctx, *medicine); err != nil {
		s.LogError(ctx, err, "Failed to update medicine", "medicine_id", medicineID)
		return nil, err
	}
	return medicine, nil
}

func (s *medicineService) DeleteMedicine(ctx context.Context, medicineID string, requestingUserID string) error {
	now := time.Now().UTC()
	if err := s.medicineRepo.DeactivateMedicine(ctx, medicineID, requestingUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to deactivate medicine", "medicine_id", medicineID)
		return err
	}
	s.LogInfo(ctx, "Medicine deactivated", "medicine_id", medicineID)
	return nil
}
