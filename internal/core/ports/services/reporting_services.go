package services

import (
	"context"

	"github.com/medistock/medicine_stock_app/internal/core/domain"
)

// ReportingService defines operations for generating the dashboard counters
type ReportingService interface {
	// DashboardSummary derives the dashboard header counters.
	DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
