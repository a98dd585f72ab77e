package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/medistock/medicine_stock_app/internal/core/domain"
	portssvc "github.com/medistock/medicine_stock_app/internal/core/ports/services"
	"github.com/medistock/medicine_stock_app/internal/core/services"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) CountMedicinesWithStock(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) CountLowStockMedicines(ctx context.Context, thresholdPercent int) (int64, error) {
	args := m.Called(ctx, thresholdPercent)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) CountStockEventsSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) TotalStockValue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo)
}

func (suite *ReportingServiceTestSuite) TestDashboardSummary_Success() {
	ctx := context.Background()
	stockValue := decimal.NewFromFloat(1234.50)

	suite.mockReportingRepo.On("CountMedicinesWithStock", ctx).Return(int64(12), nil).Once()
	suite.mockReportingRepo.On("CountLowStockMedicines", ctx, domain.LowStockThresholdPercent).Return(int64(3), nil).Once()
	suite.mockReportingRepo.On("CountStockEventsSince", ctx, mock.MatchedBy(func(since time.Time) bool {
		// The window is the trailing seven days.
		expected := time.Now().UTC().Add(-7 * 24 * time.Hour)
		return since.Sub(expected).Abs() < 5*time.Second
	})).Return(int64(42), nil).Once()
	suite.mockReportingRepo.On("TotalStockValue", ctx).Return(stockValue, nil).Once()

	summary, err := suite.service.DashboardSummary(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.Equal(int64(12), summary.TotalMedicines)
	suite.Equal(int64(3), summary.LowStockItems)
	suite.Equal(int64(42), summary.StockUpdatesThisWeek)
	suite.True(summary.StockValue.Equal(stockValue))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDashboardSummary_CountError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockReportingRepo.On("CountMedicinesWithStock", ctx).Return(int64(0), expectedErr).Once()

	summary, err := suite.service.DashboardSummary(ctx)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, expectedErr)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "TotalStockValue")
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
