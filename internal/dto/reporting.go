package dto

import (
	"github.com/shopspring/decimal"

	"github.com/medistock/medicine_stock_app/internal/core/domain"
)

// DashboardSummaryResponse defines the dashboard header counters.
type DashboardSummaryResponse struct {
	TotalMedicines       int64           `json:"totalMedicines"`
	LowStockItems        int64           `json:"lowStockItems"`
	StockUpdatesThisWeek int64           `json:"stockUpdatesThisWeek"`
	StockValue           decimal.Decimal `json:"stockValue"`
}

// ToDashboardSummaryResponse converts a domain.DashboardSummary.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TotalMedicines:       s.TotalMedicines,
		LowStockItems:        s.LowStockItems,
		StockUpdatesThisWeek: s.StockUpdatesThisWeek,
		StockValue:           s.StockValue,
	}
}
