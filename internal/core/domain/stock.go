package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus classifies how healthy a medicine's availability is.
type StockStatus string

const (
	StockHealthy StockStatus = "HEALTHY" // availability >= 80%
	StockWatch   StockStatus = "WATCH"   // 20% <= availability < 80%
	StockLow     StockStatus = "LOW"     // availability < 20%, or nothing received
)

// LowStockThresholdPercent is the availability percentage below which a
// medicine is flagged as low stock. Matches the dashboard's red band.
const LowStockThresholdPercent = 20

// healthyThresholdPercent marks the bottom of the dashboard's green band.
const healthyThresholdPercent = 80

// StockBatch is one discrete stock-receipt event for a medicine.
// Batches are append-only; QuantityAvailable is decremented exclusively by the
// distribution engine and never incremented after creation.
type StockBatch struct {
	BatchID           string          `json:"batchID"`
	MedicineID        string          `json:"medicineID"`
	QuantityReceived  int64           `json:"quantityReceived"`
	QuantityAvailable int64           `json:"quantityAvailable"`
	BatchReference    string          `json:"batchReference,omitempty"`
	Supplier          string          `json:"supplier,omitempty"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	ExpiryDate        *time.Time      `json:"expiryDate,omitempty"`
	ReceivedDate      time.Time       `json:"receivedDate"`
	// Display data resolved by list reads, empty elsewhere.
	MedicineName string `json:"medicineName,omitempty"`
	Dosage       string `json:"dosage,omitempty"`
	AuditFields
}

// MedicineStockSummary is the derived, never-stored ledger projection for one
// medicine: aggregate received/available quantities and their classification.
type MedicineStockSummary struct {
	MedicineID          string      `json:"medicineID"`
	MedicineName        string      `json:"medicineName"`
	Dosage              string      `json:"dosage"`
	TotalReceived       int64       `json:"totalReceived"`
	TotalAvailable      int64       `json:"totalAvailable"`
	AvailabilityPercent int         `json:"availabilityPercent"`
	Status              StockStatus `json:"status"`
	IsLowStock          bool        `json:"isLowStock"`
	LastUpdatedAt       time.Time   `json:"lastUpdatedAt"`
}

// AvailabilityPercent computes round(100 * available / received), defined as 0
// when nothing has been received.
func AvailabilityPercent(totalReceived, totalAvailable int64) int {
	if totalReceived <= 0 {
		return 0
	}
	// Integer rounding half-up; quantities are non-negative.
	return int((200*totalAvailable + totalReceived) / (2 * totalReceived))
}

// ClassifyStock maps an availability percentage to its status band.
// A medicine with no received stock is treated as LOW.
func ClassifyStock(totalReceived int64, availabilityPercent int) StockStatus {
	switch {
	case totalReceived <= 0:
		return StockLow
	case availabilityPercent >= healthyThresholdPercent:
		return StockHealthy
	case availabilityPercent >= LowStockThresholdPercent:
		return StockWatch
	default:
		return StockLow
	}
}

// Classify fills the derived fields of the summary from its totals.
func (s *MedicineStockSummary) Classify() {
	s.AvailabilityPercent = AvailabilityPercent(s.TotalReceived, s.TotalAvailable)
	s.Status = ClassifyStock(s.TotalReceived, s.AvailabilityPercent)
	s.IsLowStock = s.AvailabilityPercent < LowStockThresholdPercent
}
