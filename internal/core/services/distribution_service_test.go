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

// --- Mock DistributionRepository ---
type MockDistributionRepository struct {
	mock.Mock
}

func (m *MockDistributionRepository) SaveDistribution(ctx context.Context, distribution domain.Distribution) error {
	args := m.Called(ctx, distribution)
	return args.Error(0)
}

func (m *MockDistributionRepository) FindDistributionByID(ctx context.Context, distributionID string) (*domain.Distribution, error) {
	args := m.Called(ctx, distributionID)
	var dist *domain.Distribution
	if args.Get(0) != nil {
		dist = args.Get(0).(*domain.Distribution)
	}
	return dist, args.Error(1)
}

func (m *MockDistributionRepository) ListDistributions(ctx context.Context, limit, offset int) ([]domain.Distribution, error) {
	args := m.Called(ctx, limit, offset)
	var dists []domain.Distribution
	if args.Get(0) != nil {
		dists = args.Get(0).([]domain.Distribution)
	}
	return dists, args.Error(1)
}

func (m *MockDistributionRepository) ListDistributionsByMedicineID(ctx context.Context, medicineID string) ([]domain.Distribution, error) {
	args := m.Called(ctx, medicineID)
	var dists []domain.Distribution
	if args.Get(0) != nil {
		dists = args.Get(0).([]domain.Distribution)
	}
	return dists, args.Error(1)
}

// --- Mock UserReader ---
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReader) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReader) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserReader) FindOfficers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Test Suite ---
type DistributionServiceTestSuite struct {
	suite.Suite
	mockDistRepo     *MockDistributionRepository
	mockMedicineRepo *MockMedicineReader
	mockUserRepo     *MockUserReader
	service          portssvc.DistributionSvcFacade
}

func (suite *DistributionServiceTestSuite) SetupTest() {
	suite.mockDistRepo = new(MockDistributionRepository)
	suite.mockMedicineRepo = new(MockMedicineReader)
	suite.mockUserRepo = new(MockUserReader)
	suite.service = services.NewDistributionService(suite.mockDistRepo, suite.mockMedicineRepo, suite.mockUserRepo)
}

func activeOfficer(userID string) *domain.User {
	return &domain.User{
		UserID:   userID,
		Username: "officer1",
		Name:     "Officer One",
		Role:     domain.RoleOfficer,
		IsActive: true,
	}
}

// --- Distribute Tests ---
func (suite *DistributionServiceTestSuite) TestDistribute_Success() {
	ctx := context.Background()
	officerID := uuid.NewString()
	medicineID := uuid.NewString()
	creatorID := uuid.NewString()
	req := dto.DistributeRequest{OfficerID: officerID, MedicineID: medicineID, Quantity: 8}

	suite.mockUserRepo.On("FindUserByID", ctx, officerID).Return(activeOfficer(officerID), nil).Once()
	suite.mockMedicineRepo.On("FindMedicineByID", ctx, medicineID).Return(activeMedicine(medicineID), nil).Once()
	suite.mockDistRepo.On("SaveDistribution", ctx, mock.MatchedBy(func(dist domain.Distribution) bool {
		return dist.OfficerID == officerID &&
			dist.MedicineID == medicineID &&
			dist.Quantity == 8 &&
			dist.Status == domain.DistributionCompleted &&
			dist.CreatedBy == creatorID
	})).Return(nil).Once()

	dist, err := suite.service.Distribute(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(dist)
	suite.NotEmpty(dist.DistributionID)
	suite.Equal(domain.DistributionCompleted, dist.Status)
	suite.Equal("Officer One", dist.OfficerName)
	suite.Equal("Paracetamol", dist.MedicineName)
	suite.WithinDuration(time.Now().UTC(), dist.DistributedAt, 5*time.Second)
	suite.mockDistRepo.AssertExpectations(suite.T())
}

func (suite *DistributionServiceTestSuite) TestDistribute_NonPositiveQuantity() {
	ctx := context.Background()

	for _, quantity := range []int64{0, -3} {
		req := dto.DistributeRequest{OfficerID: uuid.NewString(), MedicineID: uuid.NewString(), Quantity: quantity}

		dist, err := suite.service.Distribute(ctx, req, uuid.NewString())

		suite.Require().Error(err)
		suite.Nil(dist)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockDistRepo.AssertNotCalled(suite.T(), "SaveDistribution")
}

func (suite *DistributionServiceTestSuite) TestDistribute_UnknownOfficer() {
	ctx := context.Background()
	officerID := uuid.NewString()
	req := dto.DistributeRequest{OfficerID: officerID, MedicineID: uuid.NewString(), Quantity: 5}

	suite.mockUserRepo.On("FindUserByID", ctx, officerID).Return(nil, apperrors.ErrNotFound).Once()

	dist, err := suite.service.Distribute(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(dist)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDistRepo.AssertNotCalled(suite.T(), "SaveDistribution")
}

func (suite *DistributionServiceTestSuite) TestDistribute_RecipientNotAnOfficer() {
	ctx := context.Background()
	officerID := uuid.NewString()
	admin := activeOfficer(officerID)
	admin.Role = domain.RoleAdmin
	req := dto.DistributeRequest{OfficerID: officerID, MedicineID: uuid.NewString(), Quantity: 5}

	suite.mockUserRepo.On("FindUserByID", ctx, officerID).Return(admin, nil).Once()

	dist, err := suite.service.Distribute(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(dist)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDistRepo.AssertNotCalled(suite.T(), "SaveDistribution")
}

func (suite *DistributionServiceTestSuite) TestDistribute_InactiveOfficer() {
	ctx := context.Background()
	officerID := uuid.NewString()
	officer := activeOfficer(officerID)
	officer.IsActive = false
	req := dto.DistributeRequest{OfficerID: officerID, MedicineID: uuid.NewString(), Quantity: 5}

	suite.mockUserRepo.On("FindUserByID", ctx, officerID).Return(officer, nil).Once()

	dist, err := suite.service.Distribute(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(dist)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDistRepo.AssertNotCalled(suite.T(), "SaveDistribution")
}

func (suite *DistributionServiceTestSuite) TestDistribute_InactiveMedicine() {
	ctx := context.Background()
	officerID := uuid.NewString()
	medicineID := uuid.NewString()
	medicine := activeMedicine(medicineID)
	medicine.IsActive = false
	req := dto.DistributeRequest{OfficerID: officerID, MedicineID: medicineID, Quantity: 5}

	suite.mockUserRepo.On("FindUserByID", ctx, officerID).Return(activeOfficer(officerID), nil).Once()
	suite.mockMedicineRepo.On("FindMedicineByID", ctx, medicineID).Return(medicine, nil).Once()

	dist, err := suite.service.Distribute(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(dist)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDistRepo.AssertNotCalled(suite.T(), "SaveDistribution")
}

func (suite *DistributionServiceTestSuite) TestDistribute_InsufficientStock() {
	ctx := context.Background()
	officerID := uuid.NewString()
	medicineID := uuid.NewString()
	req := dto.DistributeRequest{OfficerID: officerID, MedicineID: medicineID, Quantity: 500}

	suite.mockUserRepo.On("FindUserByID", ctx, officerID).Return(activeOfficer(officerID), nil).Once()
	suite.mockMedicineRepo.On("FindMedicineByID", ctx, medicineID).Return(activeMedicine(medicineID), nil).Once()
	suite.mockDistRepo.On("SaveDistribution", ctx, mock.AnythingOfType("domain.Distribution")).Return(apperrors.ErrInsufficientStock).Once()

	dist, err := suite.service.Distribute(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(dist)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	// Shortfalls are final, not retried.
	suite.mockDistRepo.AssertNumberOfCalls(suite.T(), "SaveDistribution", 1)
}

func (suite *DistributionServiceTestSuite) TestDistribute_RetriesConflictThenSucceeds() {
	ctx := context.Background()
	officerID := uuid.NewString()
	medicineID := uuid.NewString()
	req := dto.DistributeRequest{OfficerID: officerID, MedicineID: medicineID, Quantity: 5}

	suite.mockUserRepo.On("FindUserByID", ctx, officerID).Return(activeOfficer(officerID), nil).Once()
	suite.mockMedicineRepo.On("FindMedicineByID", ctx, medicineID).Return(activeMedicine(medicineID), nil).Once()
	suite.mockDistRepo.On("SaveDistribution", ctx, mock.AnythingOfType("domain.Distribution")).Return(apperrors.ErrConflict).Once()
	suite.mockDistRepo.On("SaveDistribution", ctx, mock.AnythingOfType("domain.Distribution")).Return(nil).Once()

	dist, err := suite.service.Distribute(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(dist)
	suite.mockDistRepo.AssertNumberOfCalls(suite.T(), "SaveDistribution", 2)
}

func (suite *DistributionServiceTestSuite) TestDistribute_ConflictRetriesExhausted() {
	ctx := context.Background()
	officerID := uuid.NewString()
	medicineID := uuid.NewString()
	req := dto.DistributeRequest{OfficerID: officerID, MedicineID: medicineID, Quantity: 5}

	suite.mockUserRepo.On("FindUserByID", ctx, officerID).Return(activeOfficer(officerID), nil).Once()
	suite.mockMedicineRepo.On("FindMedicineByID", ctx, medicineID).Return(activeMedicine(medicineID), nil).Once()
	suite.mockDistRepo.On("SaveDistribution", ctx, mock.AnythingOfType("domain.Distribution")).Return(apperrors.ErrConflict).Times(3)

	dist, err := suite.service.Distribute(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(dist)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockDistRepo.AssertNumberOfCalls(suite.T(), "SaveDistribution", 3)
}

// --- History Tests ---
func (suite *DistributionServiceTestSuite) TestListDistributions_Success() {
	ctx := context.Background()
	expected := []domain.Distribution{
		{DistributionID: uuid.NewString(), Quantity: 10},
		{DistributionID: uuid.NewString(), Quantity: 4},
	}

	suite.mockDistRepo.On("ListDistributions", ctx, 20, 0).Return(expected, nil).Once()

	dists, err := suite.service.ListDistributions(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.Len(dists, 2)
	suite.mockDistRepo.AssertExpectations(suite.T())
}

func TestDistributionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DistributionServiceTestSuite))
}
