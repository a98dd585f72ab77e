package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/medistock/medicine_stock_app/internal/apperrors"
	"github.com/medistock/medicine_stock_app/internal/core/domain"
	portssvc "github.com/medistock/medicine_stock_app/internal/core/ports/services"
	"github.com/medistock/medicine_stock_app/internal/core/services"
	"github.com/medistock/medicine_stock_app/internal/dto"
)

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) SaveBatch(ctx context.Context, batch domain.StockBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockStockRepository) FindBatchByID(ctx context.Context, batchID string) (*domain.StockBatch, error) {
	args := m.Called(ctx, batchID)
	var batch *domain.StockBatch
	if args.Get(0) != nil {
		batch = args.Get(0).(*domain.StockBatch)
	}
	return batch, args.Error(1)
}

func (m *MockStockRepository) ListBatches(ctx context.Context, limit, offset int) ([]domain.StockBatch, error) {
	args := m.Called(ctx, limit, offset)
	var batches []domain.StockBatch
	if args.Get(0) != nil {
		batches = args.Get(0).([]domain.StockBatch)
	}
	return batches, args.Error(1)
}

func (m *MockStockRepository) FindBatchesByMedicineID(ctx context.Context, medicineID string) ([]domain.StockBatch, error) {
	args := m.Called(ctx, medicineID)
	var batches []domain.StockBatch
	if args.Get(0) != nil {
		batches = args.Get(0).([]domain.StockBatch)
	}
	return batches, args.Error(1)
}

func (m *MockStockRepository) GetStockSummary(ctx context.Context, medicineID string) (*domain.MedicineStockSummary, error) {
	args := m.Called(ctx, medicineID)
	var summary *domain.MedicineStockSummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*domain.MedicineStockSummary)
	}
	return summary, args.Error(1)
}

func (m *MockStockRepository) ListStockSummaries(ctx context.Context) ([]domain.MedicineStockSummary, error) {
	args := m.Called(ctx)
	var summaries []domain.MedicineStockSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]domain.MedicineStockSummary)
	}
	return summaries, args.Error(1)
}

// --- Mock MedicineReader ---
type MockMedicineReader struct {
	mock.Mock
}

func (m *MockMedicineReader) FindMedicineByID(ctx context.Context, medicineID string) (*domain.Medicine, error) {
	args := m.Called(ctx, medicineID)
	var medicine *domain.Medicine
	if args.Get(0) != nil {
		medicine = args.Get(0).(*domain.Medicine)
	}
	return medicine, args.Error(1)
}

func (m *MockMedicineReader) ListMedicines(ctx context.Context, limit, offset int) ([]domain.Medicine, error) {
	args := m.Called(ctx, limit, offset)
	var medicines []domain.Medicine
	if args.Get(0) != nil {
		medicines = args.Get(0).([]domain.Medicine)
	}
	return medicines, args.Error(1)
}

// --- Test Suite ---
type StockServiceTestSuite struct {
	suite.Suite
	mockStockRepo    *MockStockRepository
	mockMedicineRepo *MockMedicineReader
	service          portssvc.StockSvcFacade
}

func (suite *StockServiceTestSuite) SetupTest() {
	suite.mockStockRepo = new(MockStockRepository)
	suite.mockMedicineRepo = new(MockMedicineReader)
	suite.service = services.NewStockService(suite.mockStockRepo, suite.mockMedicineRepo)
}

func activeMedicine(medicineID string) *domain.Medicine {
	return &domain.Medicine{
		MedicineID: medicineID,
		Name:       "Paracetamol",
		Dosage:     "500mg",
		IsActive:   true,
	}
}

// --- ReceiveStock Tests ---
func (suite *StockServiceTestSuite) TestReceiveStock_Success() {
	ctx := context.Background()
	medicineID := uuid.NewString()
	creatorID := uuid.NewString()
	req := dto.ReceiveStockRequest{MedicineID: medicineID, Quantity: 100}

	suite.mockMedicineRepo.On("FindMedicineByID", ctx, medicineID).Return(activeMedicine(medicineID), nil).Once()
	suite.mockStockRepo.On("SaveBatch", ctx, mock.MatchedBy(func(batch domain.StockBatch) bool {
		return batch.MedicineID == medicineID &&
			batch.QuantityReceived == 100 &&
			batch.QuantityAvailable == 100 &&
			batch.CreatedBy == creatorID
	})).Return(nil).Once()

	batch, err := suite.service.ReceiveStock(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(batch)
	suite.NotEmpty(batch.BatchID)
	suite.Equal(int64(100), batch.QuantityAvailable)
	suite.Equal("Paracetamol", batch.MedicineName)
	suite.True(batch.UnitPrice.Equal(decimal.Zero))
	suite.mockStockRepo.AssertExpectations(suite.T())
	suite.mockMedicineRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestReceiveStock_WithBatchMetadata() {
	ctx := context.Background()
	medicineID := uuid.NewString()
	price := decimal.NewFromFloat(1.25)
	expiry := time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC)
	received := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	req := dto.ReceiveStockRequest{
		MedicineID:     medicineID,
		Quantity:       40,
		BatchReference: "BN-2026-001",
		Supplier:       "Acme Pharma",
		UnitPrice:      &price,
		ExpiryDate:     &expiry,
		ReceivedDate:   &received,
	}

	suite.mockMedicineRepo.On("FindMedicineByID", ctx, medicineID).Return(activeMedicine(medicineID), nil).Once()
	suite.mockStockRepo.On("SaveBatch", ctx, mock.MatchedBy(func(batch domain.StockBatch) bool {
		return batch.BatchReference == "BN-2026-001" &&
			batch.Supplier == "Acme Pharma" &&
			batch.UnitPrice.Equal(price) &&
			batch.ReceivedDate.Equal(received)
	})).Return(nil).Once()

	batch, err := suite.service.ReceiveStock(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(batch.ExpiryDate)
	suite.True(batch.ExpiryDate.Equal(expiry))
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestReceiveStock_NonPositiveQuantity() {
	ctx := context.Background()

	for _, quantity := range []int64{0, -5} {
		req := dto.ReceiveStockRequest{MedicineID: uuid.NewString(), Quantity: quantity}

		batch, err := suite.service.ReceiveStock(ctx, req, uuid.NewString())

		suite.Require().Error(err)
		suite.Nil(batch)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockStockRepo.AssertNotCalled(suite.T(), "SaveBatch")
}

func (suite *StockServiceTestSuite) TestReceiveStock_UnknownMedicine() {
	ctx := context.Background()
	medicineID := uuid.NewString()
	req := dto.ReceiveStockRequest{MedicineID: medicineID, Quantity: 10}

	suite.mockMedicineRepo.On("FindMedicineByID", ctx, medicineID).Return(nil, apperrors.ErrNotFound).Once()

	batch, err := suite.service.ReceiveStock(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(batch)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "SaveBatch")
}

func (suite *StockServiceTestSuite) TestReceiveStock_InactiveMedicine() {
	ctx := context.Background()
	medicineID := uuid.NewString()
	medicine := activeMedicine(medicineID)
	medicine.IsActive = false
	req := dto.ReceiveStockRequest{MedicineID: medicineID, Quantity: 10}

	suite.mockMedicineRepo.On("FindMedicineByID", ctx, medicineID).Return(medicine, nil).Once()

	batch, err := suite.service.ReceiveStock(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(batch)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "SaveBatch")
}

func (suite *StockServiceTestSuite) TestReceiveStock_NegativeUnitPrice() {
	ctx := context.Background()
	medicineID := uuid.NewString()
	price := decimal.NewFromInt(-1)
	req := dto.ReceiveStockRequest{MedicineID: medicineID, Quantity: 10, UnitPrice: &price}

	suite.mockMedicineRepo.On("FindMedicineByID", ctx, medicineID).Return(activeMedicine(medicineID), nil).Once()

	batch, err := suite.service.ReceiveStock(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(batch)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "SaveBatch")
}

// --- Summary Tests ---
func (suite *StockServiceTestSuite) TestSummaryFor_Success() {
	ctx := context.Background()
	medicineID := uuid.NewString()
	summary := &domain.MedicineStockSummary{
		MedicineID:     medicineID,
		MedicineName:   "Paracetamol",
		TotalReceived:  100,
		TotalAvailable: 15,
	}
	summary.Classify()

	suite.mockStockRepo.On("GetStockSummary", ctx, medicineID).Return(summary, nil).Once()

	got, err := suite.service.SummaryFor(ctx, medicineID)

	suite.Require().NoError(err)
	suite.Equal(15, got.AvailabilityPercent)
	suite.Equal(domain.StockLow, got.Status)
	suite.True(got.IsLowStock)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestSummaryFor_NoBatches() {
	ctx := context.Background()
	medicineID := uuid.NewString()

	suite.mockStockRepo.On("GetStockSummary", ctx, medicineID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.SummaryFor(ctx, medicineID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func TestStockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StockServiceTestSuite))
}
