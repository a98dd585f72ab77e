package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/medistock/medicine_stock_app/internal/apperrors"
	"github.com/medistock/medicine_stock_app/internal/core/domain"
	portsrepo "github.com/medistock/medicine_stock_app/internal/core/ports/repositories"
	portssvc "github.com/medistock/medicine_stock_app/internal/core/ports/services"
	"github.com/medistock/medicine_stock_app/internal/dto"
)

type stockService struct {
	BaseService
	stockRepo    portsrepo.StockRepositoryFacade
	medicineRepo portsrepo.MedicineReader
}

// NewStockService creates a new stock ledger service
func NewStockService(stockRepo portsrepo.StockRepositoryFacade, medicineRepo portsrepo.MedicineReader) portssvc.StockSvcFacade {
	return &stockService{
		stockRepo:    stockRepo,
		medicineRepo: medicineRepo,
	}
}

// ReceiveStock records one stock receipt as a new batch. Its available
// quantity starts equal to the received quantity.
func (s *stockService) ReceiveStock(ctx context.Context, req dto.ReceiveStockRequest, creatorUserID string) (*domain.StockBatch, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", apperrors.ErrValidation, req.Quantity)
	}

	medicine, err := s.medicineRepo.FindMedicineByID(ctx, req.MedicineID)
	if err != nil {
		return nil, err
	}
	if !medicine.IsActive {
		return nil, fmt.Errorf("%w: medicine %s is inactive", apperrors.ErrValidation, req.MedicineID)
	}

	now := time.Now().UTC()
	receivedDate := now
	if req.ReceivedDate != nil {
		receivedDate = req.ReceivedDate.UTC()
	}
	unitPrice := decimal.Zero
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price cannot be negative", apperrors.ErrValidation)
		}
		unitPrice = *req.UnitPrice
	}

	batch := domain.StockBatch{
		BatchID:           uuid.NewString(),
		MedicineID:        req.MedicineID,
		QuantityReceived:  req.Quantity,
		QuantityAvailable: req.Quantity,
		BatchReference:    req.BatchReference,
		Supplier:          req.Supplier,
		UnitPrice:         unitPrice,
		ExpiryDate:        req.ExpiryDate,
		ReceivedDate:      receivedDate,
		MedicineName:      medicine.Name,
		Dosage:            medicine.Dosage,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.stockRepo.SaveBatch(ctx, batch); err != nil {
		s.LogError(ctx, err, "Failed to save stock batch", "medicine_id", req.MedicineID)
		return nil, err
	}

	s.LogInfo(ctx, "Stock received", "batch_id", batch.BatchID, "medicine_id", batch.MedicineID, "quantity", batch.QuantityReceived)
	return &batch, nil
}

func (s *stockService) ListBatches(ctx context.Context, limit, offset int) ([]domain.StockBatch, error) {
	return s.stockRepo.ListBatches(ctx, limit, offset)
}

func (s *stockService) SummaryFor(ctx context.Context, medicineID string) (*domain.MedicineStockSummary, error) {
	return s.stockRepo.GetStockSummary(ctx, medicineID)
}

func (s *stockService) SummaryAll(ctx context.Context) ([]domain.MedicineStockSummary, error) {
	return s.stockRepo.ListStockSummaries(ctx)
}
