package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/medistock/medicine_stock_app/internal/core/domain"
)

// ReceiveStockRequest defines the payload for recording a stock receipt.
type ReceiveStockRequest struct {
	MedicineID     string           `json:"medicineID" binding:"required"`
	Quantity       int64            `json:"quantity" binding:"required,gt=0"`
	BatchReference string           `json:"batchReference,omitempty"`
	Supplier       string           `json:"supplier,omitempty"`
	UnitPrice      *decimal.Decimal `json:"unitPrice,omitempty"`
	ExpiryDate     *time.Time       `json:"expiryDate,omitempty"`
	ReceivedDate   *time.Time       `json:"receivedDate,omitempty"`
}

// StockBatchResponse defines a stock batch returned to callers.
type StockBatchResponse struct {
	BatchID           string          `json:"batchID"`
	MedicineID        string          `json:"medicineID"`
	MedicineName      string          `json:"medicineName,omitempty"`
	Dosage            string          `json:"dosage,omitempty"`
	QuantityReceived  int64           `json:"quantityReceived"`
	QuantityAvailable int64           `json:"quantityAvailable"`
	BatchReference    string          `json:"batchReference,omitempty"`
	Supplier          string          `json:"supplier,omitempty"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	ExpiryDate        *time.Time      `json:"expiryDate,omitempty"`
	ReceivedDate      time.Time       `json:"receivedDate"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ListStockBatchesResponse wraps a page of stock batches.
type ListStockBatchesResponse struct {
	Batches []StockBatchResponse `json:"batches"`
}

// StockSummaryResponse defines the derived ledger row for one medicine.
type StockSummaryResponse struct {
	MedicineID          string             `json:"medicineID"`
	MedicineName        string             `json:"medicineName"`
	Dosage              string             `json:"dosage"`
	TotalReceived       int64              `json:"totalReceived"`
	TotalAvailable      int64              `json:"totalAvailable"`
	AvailabilityPercent int                `json:"availabilityPercent"`
	Status              domain.StockStatus `json:"status"`
	IsLowStock          bool               `json:"isLowStock"`
	LastUpdatedAt       time.Time          `json:"lastUpdatedAt"`
}

// ListStockSummariesResponse wraps the summary rows for every stocked medicine.
type ListStockSummariesResponse struct {
	Summaries []StockSummaryResponse `json:"summaries"`
}

// ToStockBatchResponse converts a domain.StockBatch to StockBatchResponse.
func ToStockBatchResponse(b *domain.StockBatch) StockBatchResponse {
	return StockBatchResponse{
		BatchID:           b.BatchID,
		MedicineID:        b.MedicineID,
		MedicineName:      b.MedicineName,
		Dosage:            b.Dosage,
		QuantityReceived:  b.QuantityReceived,
		QuantityAvailable: b.QuantityAvailable,
		BatchReference:    b.BatchReference,
		Supplier:          b.Supplier,
		UnitPrice:         b.UnitPrice,
		ExpiryDate:        b.ExpiryDate,
		ReceivedDate:      b.ReceivedDate,
		CreatedAt:         b.CreatedAt,
	}
}

// ToStockBatchResponses converts a slice of domain batches.
func ToStockBatchResponses(batches []domain.StockBatch) []StockBatchResponse {
	responses := make([]StockBatchResponse, len(batches))
	for i := range batches {
		responses[i] = ToStockBatchResponse(&batches[i])
	}
	return responses
}

// ToStockSummaryResponse converts a domain.MedicineStockSummary.
func ToStockSummaryResponse(s *domain.MedicineStockSummary) StockSummaryResponse {
	return StockSummaryResponse{
		MedicineID:          s.MedicineID,
		MedicineName:        s.MedicineName,
		Dosage:              s.Dosage,
		TotalReceived:       s.TotalReceived,
		TotalAvailable:      s.TotalAvailable,
		AvailabilityPercent: s.AvailabilityPercent,
		Status:              s.Status,
		IsLowStock:          s.IsLowStock,
		LastUpdatedAt:       s.LastUpdatedAt,
	}
}

// ToStockSummaryResponses converts a slice of domain summaries.
func ToStockSummaryResponses(summaries []domain.MedicineStockSummary) []StockSummaryResponse {
	responses := make([]StockSummaryResponse, len(summaries))
	for i := range summaries {
		responses[i] = ToStockSummaryResponse(&summaries[i])
	}
	return responses
}
