package services

import (
	"context"
	"time"

	"github.com/medistock/medicine_stock_app/internal/core/domain"
	portsrepo "github.com/medistock/medicine_stock_app/internal/core/ports/repositories"
	portssvc "github.com/medistock/medicine_stock_app/internal/core/ports/services"
)

// weekWindow is the rolling window the "updates this week" counter covers.
const weekWindow = 7 * 24 * time.Hour

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: reportingRepo}
}

// DashboardSummary derives the dashboard header counters.
func (s *reportingService) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	totalMedicines, err := s.reportingRepo.CountMedicinesWithStock(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count medicines with stock")
		return nil, err
	}

	lowStock, err := s.reportingRepo.CountLowStockMedicines(ctx, domain.LowStockThresholdPercent)
	if err != nil {
		s.LogError(ctx, err, "Failed to count low stock medicines")
		return nil, err
	}

	since := time.Now().UTC().Add(-weekWindow)
	updatesThisWeek, err := s.reportingRepo.CountStockEventsSince(ctx, since)
	if err != nil {
		s.LogError(ctx, err, "Failed to count stock events")
		return nil, err
	}

	stockValue, err := s.reportingRepo.TotalStockValue(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum stock value")
		return nil, err
	}

	return &domain.DashboardSummary{
		TotalMedicines:       totalMedicines,
		LowStockItems:        lowStock,
		StockUpdatesThisWeek: updatesThisWeek,
		StockValue:           stockValue,
	}, nil
}
