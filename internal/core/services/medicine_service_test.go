package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/medistock/medicine_stock_app/internal/apperrors"
	"github.com/medistock/medicine_stock_app/internal/core/domain"
	portssvc "github.com/medistock/medicine_stock_app/internal/core/ports/services"
	"github.com/medistock/medicine_stock_app/internal/core/services"
	"github.com/medistock/medicine_stock_app/internal/dto"
)

// --- Mock MedicineRepository ---
type MockMedicineRepository struct {
	MockMedicineReader
}

func (m *MockMedicineRepository) SaveMedicine(ctx context.Context, medicine domain.Medicine) error {
	args := m.Called(ctx, medicine)
	return args.Error(0)
}

func (m *MockMedicineRepository) UpdateMedicine(ctx context.Context, medicine domain.Medicine) error {
	args := m.Called(ctx, medicine)
	return args.Error(0)
}

func (m *MockMedicineRepository) DeactivateMedicine(ctx context.Context, medicineID string, userID string, now time.Time) error {
	args := m.Called(ctx, medicineID, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type MedicineServiceTestSuite struct {
	suite.Suite
	mockMedicineRepo *MockMedicineRepository
	service          portssvc.MedicineSvcFacade
}

func (suite *MedicineServiceTestSuite) SetupTest() {
	suite.mockMedicineRepo = new(MockMedicineRepository)
	suite.service = services.NewMedicineService(suite.mockMedicineRepo)
}

func (suite *MedicineServiceTestSuite) TestCreateMedicine_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateMedicineRequest{
		Name:           "Amoxicillin",
		Dosage:         "250mg",
		Manufacturer:   "Acme Pharma",
		Category:       "Antibiotic",
		ExpirationDate: time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC),
		Instructions:   "Take with food",
	}

	suite.mockMedicineRepo.On("SaveMedicine", ctx, mock.MatchedBy(func(med domain.Medicine) bool {
		return med.Name == req.Name && med.IsActive && med.CreatedBy == creatorID
	})).Return(nil).Once()

	medicine, err := suite.service.CreateMedicine(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(medicine)
	suite.NotEmpty(medicine.MedicineID)
	suite.Equal("250mg", medicine.Dosage)
	suite.mockMedicineRepo.AssertExpectations(suite.T())
}

func (suite *MedicineServiceTestSuite) TestUpdateMedicine_PartialUpdate() {
	ctx := context.Background()
	medicineID := uuid.NewString()
	requesterID := uuid.NewString()
	existing := &domain.Medicine{
		MedicineID:   medicineID,
		Name:         "Amoxicillin",
		Dosage:       "250mg",
		Manufacturer: "Acme Pharma",
		IsActive:     true,
	}
	newDosage := "500mg"

	suite.mockMedicineRepo.On("FindMedicineByID", ctx, medicineID).Return(existing, nil).Once()
	suite.mockMedicineRepo.On("UpdateMedicine", ctx, mock.MatchedBy(func(med domain.Medicine) bool {
		return med.Dosage == newDosage && med.Name == "Amoxicillin" && med.LastUpdatedBy == requesterID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateMedicine(ctx, medicineID, dto.UpdateMedicineRequest{Dosage: &newDosage}, requesterID)

	suite.Require().NoError(err)
	suite.Equal(newDosage, updated.Dosage)
	suite.Equal("Amoxicillin", updated.Name)
	suite.mockMedicineRepo.AssertExpectations(suite.T())
}

func (suite *MedicineServiceTestSuite) TestUpdateMedicine_NotFound() {
	ctx := context.Background()
	medicineID := uuid.NewString()
	newName := "Renamed"

	suite.mockMedicineRepo.On("FindMedicineByID", ctx, medicineID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateMedicine(ctx, medicineID, dto.UpdateMedicineRequest{Name: &newName}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockMedicineRepo.AssertNotCalled(suite.T(), "UpdateMedicine")
}

func (suite *MedicineServiceTestSuite) TestDeleteMedicine_Success() {
	ctx := context.Background()
	medicineID := uuid.NewString()
	requesterID := uuid.NewString()

	suite.mockMedicineRepo.On("DeactivateMedicine", ctx, medicineID, requesterID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteMedicine(ctx, medicineID, requesterID)

	suite.Require().NoError(err)
	suite.mockMedicineRepo.AssertExpectations(suite.T())
}

func TestMedicineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MedicineServiceTestSuite))
}
