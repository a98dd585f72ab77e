package domain

import "github.com/shopspring/decimal"

// DashboardSummary holds the counters the dashboard header displays.
type DashboardSummary struct {
	TotalMedicines       int64           `json:"totalMedicines"`       // distinct medicines with at least one batch
	LowStockItems        int64           `json:"lowStockItems"`        // medicines below the low-stock threshold
	StockUpdatesThisWeek int64           `json:"stockUpdatesThisWeek"` // receive + distribution events in the trailing 7 days
	StockValue           decimal.Decimal `json:"stockValue"`           // sum of available quantity x unit price
}
