package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medistock/medicine_stock_app/internal/apperrors"
	"github.com/medistock/medicine_stock_app/internal/core/domain"
	portsrepo "github.com/medistock/medicine_stock_app/internal/core/ports/repositories"
	portssvc "github.com/medistock/medicine_stock_app/internal/core/ports/services"
	"github.com/medistock/medicine_stock_app/internal/dto"
)

// maxDistributeAttempts bounds retries on serialization conflicts.
const maxDistributeAttempts = 3

type distributionService struct {
	BaseService
	distributionRepo portsrepo.DistributionRepositoryFacade
	medicineRepo     portsrepo.MedicineReader
	userRepo         portsrepo.UserReader
}

// NewDistributionService creates a new distribution engine service
func NewDistributionService(
	distributionRepo portsrepo.DistributionRepositoryFacade,
	medicineRepo portsrepo.MedicineReader,
	userRepo portsrepo.UserReader,
) portssvc.DistributionSvcFacade {
	return &distributionService{
		distributionRepo: distributionRepo,
		medicineRepo:     medicineRepo,
		userRepo:         userRepo,
	}
}

// Distribute converts available stock into a completed distribution record.
// The repository applies the decrements and the insert atomically; this layer
// validates the actors and retries transient serialization conflicts.
func (s *distributionService) Distribute(ctx context.Context, req dto.DistributeRequest, creatorUserID string) (*domain.Distribution, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", apperrors.ErrValidation, req.Quantity)
	}

	officer, err := s.userRepo.FindUserByID(ctx, req.OfficerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: officer %s not found", apperrors.ErrValidation, req.OfficerID)
		}
		return nil, err
	}
	if officer.Role != domain.RoleOfficer {
		return nil, fmt.Errorf("%w: user %s is not a field officer", apperrors.ErrValidation, req.OfficerID)
	}
	if !officer.IsActive {
		return nil, fmt.Errorf("%w: officer %s is inactive", apperrors.ErrValidation, req.OfficerID)
	}

	medicine, err := s.medicineRepo.FindMedicineByID(ctx, req.MedicineID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: medicine %s not found", apperrors.ErrValidation, req.MedicineID)
		}
		return nil, err
	}
	if !medicine.IsActive {
		return nil, fmt.Errorf("%w: medicine %s is inactive", apperrors.ErrValidation, req.MedicineID)
	}

	now := time.Now().UTC()
	distribution := domain.Distribution{
		DistributionID: uuid.NewString(),
		OfficerID:      req.OfficerID,
		MedicineID:     req.MedicineID,
		Quantity:       req.Quantity,
		Status:         domain.DistributionCompleted,
		DistributedAt:  now,
		OfficerName:    officer.Name,
		MedicineName:   medicine.Name,
		Dosage:         medicine.Dosage,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	var saveErr error
	for attempt := 1; attempt <= maxDistributeAttempts; attempt++ {
		saveErr = s.distributionRepo.SaveDistribution(ctx, distribution)
		if saveErr == nil {
			break
		}
		if !errors.Is(saveErr, apperrors.ErrConflict) {
			s.LogError(ctx, saveErr, "Failed to save distribution", "distribution_id", distribution.DistributionID)
			return nil, saveErr
		}
		s.LogInfo(ctx, "Retrying distribution after conflict", "distribution_id", distribution.DistributionID, "attempt", attempt)
	}
	if saveErr != nil {
		s.LogError(ctx, saveErr, "Distribution failed after retries", "distribution_id", distribution.DistributionID)
		return nil, saveErr
	}

	s.LogInfo(ctx, "Stock distributed",
		"distribution_id", distribution.DistributionID,
		"medicine_id", distribution.MedicineID,
		"officer_id", distribution.OfficerID,
		"quantity", distribution.Quantity,
	)
	return &distribution, nil
}

func (s *distributionService) GetDistributionByID(ctx context.Context, distributionID string) (*domain.Distribution, error) {
	return s.distributionRepo.FindDistributionByID(ctx, distributionID)
}

func (s *distributionService) ListDistributions(ctx context.Context, limit, offset int) ([]domain.Distribution, error) {
	return s.distributionRepo.ListDistributions(ctx, limit, offset)
}
